// Package logs builds the structured logger shared by the command and the REPL.
package logs

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	slogmulti "github.com/samber/slog-multi"
)

// Level is adjusted by the -log-* flags.
var Level = new(slog.LevelVar)

func init() {
	Level.Set(slog.LevelWarn)
}

type Options struct {
	// FilePath, when non-empty, receives a JSON copy of every record.
	FilePath string
}

// DefaultFilePath is the log file used by the command.
func DefaultFilePath() string {
	return filepath.Join(xdg.StateHome, "bfi", "bfi.log")
}

// New returns a logger writing text records to w.
// The returned closer releases the log file, if any.
func New(w io.Writer, opts Options) (*slog.Logger, io.Closer, error) {
	handlers := []slog.Handler{
		slog.NewTextHandler(w, &slog.HandlerOptions{Level: Level}),
	}

	var closer io.Closer = nopCloser{}
	if opts.FilePath != "" {
		if err := os.MkdirAll(filepath.Dir(opts.FilePath), os.ModePerm); err != nil {
			return nil, nil, err
		}
		f, err := os.OpenFile(opts.FilePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, err
		}
		closer = f
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{Level: Level}))
	}

	return slog.New(slogmulti.Fanout(handlers...)), closer, nil
}

// Discard drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: Level}))
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
