package driver

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/takoeight0821/bfi/internal/engine"
)

// Runner executes whole programs, each on a fresh engine.
type Runner struct {
	in     io.Reader
	out    io.Writer
	logger *slog.Logger
}

func NewRunner(in io.Reader, out io.Writer, logger *slog.Logger) *Runner {
	return &Runner{in: in, out: out, logger: logger}
}

// RunSource executes source to completion.
func (r *Runner) RunSource(source string) error {
	r.logger.Debug("execute", "length", len(source))
	return engine.New(r.in, r.out).Execute(source)
}

// RunFile reads the file at path and executes its contents.
func (r *Runner) RunFile(path string) error {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file %q: %w", path, err)
	}
	r.logger.Debug("loaded file", "path", path)

	return r.RunSource(string(bytes))
}
