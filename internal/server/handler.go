package server

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/ssh"
	"github.com/google/uuid"

	"github.com/renato0307/keyup/internal/keyup"
	"github.com/renato0307/keyup/internal/logging"
	"github.com/renato0307/keyup/internal/ui"
)

// teaHandler creates a Bubble Tea model for each SSH session. The session's
// lifetime ends when the user quits or the connection drops, whichever
// comes first.
func (s *Server) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()
	sessionID := uuid.New().String()
	startTime := time.Now()

	logging.Logger.Info("New SSH session",
		"session_id", sessionID,
		"user", sess.User(),
		"remote_addr", sess.RemoteAddr().String(),
		"term", pty.Term,
		"window", fmt.Sprintf("%dx%d", pty.Window.Width, pty.Window.Height))

	model, err := newSessionModel(sess.Context(), sessionID, startTime, s.opts)
	if err != nil {
		logging.Logger.Error("Failed to create model for SSH session",
			"error", err,
			"session_id", sessionID)
		return errorModel{err}, nil
	}

	return model, []tea.ProgramOption{tea.WithAltScreen()}
}

// newSessionModel builds the root model on a fresh window whose bindings
// are released when ctx ends
func newSessionModel(ctx context.Context, sessionID string, startTime time.Time, opts Options) (*ui.Model, error) {
	window := keyup.NewWindow()
	lifetime := keyup.LifetimeFromContext(ctx)
	lifetime.OnTeardown(func() {
		logging.Logger.Info("SSH session ended",
			"session_id", sessionID,
			"duration", time.Since(startTime).String())
	})

	model, err := ui.NewModel(window, lifetime, opts.KeyBindings, false)
	if err != nil {
		lifetime.Close()
		return nil, err
	}
	return model, nil
}

// errorModel is a simple model that displays an error
type errorModel struct {
	err error
}

func (e errorModel) Init() tea.Cmd {
	return nil
}

func (e errorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return e, tea.Quit
}

func (e errorModel) View() string {
	return fmt.Sprintf("Error: %v\n", e.err)
}
