package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/renato0307/keyup/internal/logging"
	"github.com/renato0307/keyup/internal/server"
)

// ServeCmd starts the SSH server
type ServeCmd struct {
	Host           string `help:"Host to bind to" default:"localhost"`
	Port           string `help:"Port to listen on" default:"23234"`
	AuthorizedKeys string `help:"authorized_keys file used for public key auth" default:"~/.ssh/authorized_keys" type:"path"`
}

// Run executes the serve command
func (s *ServeCmd) Run(cli *CLI) error {
	keysConfig, err := cli.keyBindings()
	if err != nil {
		return err
	}

	logging.Logger.Info("Starting keyup SSH server", "host", s.Host, "port", s.Port)

	srv, err := server.NewServer(server.Options{
		AuthorizedKeysPath: s.AuthorizedKeys,
		Host:               s.Host,
		KeyBindings:        keysConfig,
		Port:               s.Port,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("SSH server listening on %s\n", srv.Addr())
	return srv.Start(ctx)
}
