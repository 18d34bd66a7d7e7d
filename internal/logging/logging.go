// Package logging owns the process-wide slog logger used by keyup.
package logging

import (
	"cmp"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// DefaultMaxLogFiles is the --max-log-files default. An environment override
// only applies while the flag is left at this value.
const DefaultMaxLogFiles = 1000

// Logger is shared by every package. It discards records until Initialize
// turns debug logging on.
var Logger = slog.New(slog.DiscardHandler)

// Options controls where debug records go.
type Options struct {
	Debug    bool   // write to a fresh file in the log directory
	File     string // write to this file instead, without rotation
	MaxFiles int    // files kept in the log directory, 0 keeps all
}

func (o Options) enabled() bool {
	return o.Debug || o.File != ""
}

// withEnv fills in KEYUP_DEBUG, KEYUP_DEBUG_FILE and KEYUP_MAX_LOG_FILES so
// child processes and SSH sessions inherit the parent's settings.
func (o Options) withEnv() Options {
	if os.Getenv("KEYUP_DEBUG") == "1" {
		o.Debug = true
	}
	if o.File == "" {
		o.File = os.Getenv("KEYUP_DEBUG_FILE")
	}
	if o.MaxFiles == DefaultMaxLogFiles {
		if n, err := strconv.Atoi(os.Getenv("KEYUP_MAX_LOG_FILES")); err == nil {
			o.MaxFiles = n
		}
	}
	return o
}

// Initialize configures Logger and returns the log file path, or "" when
// debug logging stays off.
func Initialize(debug bool, debugFile string, maxLogFiles int) (string, error) {
	opts := Options{Debug: debug, File: debugFile, MaxFiles: maxLogFiles}.withEnv()
	if !opts.enabled() {
		Logger = slog.New(slog.DiscardHandler)
		return "", nil
	}

	path, err := opts.logPath()
	if err != nil {
		return "", err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return "", fmt.Errorf("failed to create log file: %w", err)
	}

	Logger = slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	Logger.Info("Debug logging initialized", "log_file", path, "pid", os.Getpid())
	return path, nil
}

// logPath creates the target directory and, for rotated logs, prunes old
// files before naming a new one.
func (o Options) logPath() (string, error) {
	if o.File != "" {
		if err := os.MkdirAll(filepath.Dir(o.File), 0755); err != nil {
			return "", fmt.Errorf("failed to create log directory: %w", err)
		}
		return o.File, nil
	}

	dir, err := logDir()
	if err != nil {
		return "", fmt.Errorf("failed to get log directory: %w", err)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create log directory: %w", err)
	}

	if o.MaxFiles > 0 {
		// leave room for the file about to be created
		if err := pruneLogs(dir, o.MaxFiles-1); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: log rotation failed: %v\n", err)
		}
	}

	return filepath.Join(dir, uuid.NewString()+".log"), nil
}

// pruneLogs deletes the oldest *.log files in dir until at most keep remain.
// Other files are left alone.
func pruneLogs(dir string, keep int) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read log directory: %w", err)
	}

	type logFile struct {
		path    string
		modTime time.Time
	}
	var logs []logFile
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".log" {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		logs = append(logs, logFile{path: filepath.Join(dir, entry.Name()), modTime: info.ModTime()})
	}

	if len(logs) <= keep {
		return nil
	}

	slices.SortFunc(logs, func(a, b logFile) int {
		return a.modTime.Compare(b.modTime)
	})

	for _, old := range logs[:len(logs)-max(keep, 0)] {
		if err := os.Remove(old.path); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to delete old log file %s: %v\n", old.path, err)
		}
	}
	return nil
}

// logDir follows each platform's convention for application logs.
func logDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Logs", "keyup"), nil
	case "windows":
		base := cmp.Or(os.Getenv("LOCALAPPDATA"), filepath.Join(home, "AppData", "Local"))
		return filepath.Join(base, "keyup", "logs"), nil
	case "linux":
		base := cmp.Or(os.Getenv("XDG_STATE_HOME"), filepath.Join(home, ".local", "state"))
		return filepath.Join(base, "keyup"), nil
	default:
		return filepath.Join(home, ".keyup", "logs"), nil
	}
}
