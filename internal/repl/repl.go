// Package repl implements the interactive session: one engine whose tape
// persists from line to line, plus a few dot-commands.
package repl

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/peterh/liner"
	"github.com/takoeight0821/bfi/internal/engine"
)

const Version = "0.1.0"

type Result int

const (
	Continue Result = iota
	Exit
)

// Prompter reads one line of input. *liner.State satisfies it.
type Prompter interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
}

type Session struct {
	engine *engine.Engine
	out    io.Writer
	errOut io.Writer
	logger *slog.Logger
}

func NewSession(in io.Reader, out, errOut io.Writer, logger *slog.Logger) *Session {
	return &Session{
		engine: engine.New(in, out),
		out:    out,
		errOut: errOut,
		logger: logger,
	}
}

// Run prints the banner and reads lines until .exit or end of input.
func (s *Session) Run(p Prompter) error {
	fmt.Fprintf(s.out, "bfi REPL - v%s\n", Version)
	fmt.Fprintln(s.out, `Type ".help" for more information.`)

	for {
		input, err := p.Prompt("bf> ")
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			return nil
		}
		if err != nil {
			return err
		}
		if strings.TrimSpace(input) != "" {
			p.AppendHistory(input)
		}

		if s.Process(input) == Exit {
			return nil
		}
		fmt.Fprintln(s.out)
	}
}

// Process handles one line of input.
func (s *Session) Process(line string) Result {
	cmd := strings.TrimSpace(line)
	switch cmd {
	case ".exit":
		s.logger.Debug("exit")
		return Exit
	case ".reset":
		s.engine.Reset()
		s.logger.Debug("reset")
		fmt.Fprintln(s.out, "Interpreter state reset.")
	case ".help":
		s.showHelp()
	default:
		if err := s.engine.Execute(cmd); err != nil {
			fmt.Fprintf(s.errOut, "Error: %v\n", err)
		}
	}
	return Continue
}

func (s *Session) showHelp() {
	fmt.Fprintln(s.out, "Available commands:")
	fmt.Fprintln(s.out, ".help  -> Display this message")
	fmt.Fprintln(s.out, ".reset -> Resets the interpreter to its initial state")
	fmt.Fprintln(s.out, ".exit  -> Exits this REPL session")
}

// Engine exposes the session's engine for inspection.
func (s *Session) Engine() *engine.Engine {
	return s.engine
}
