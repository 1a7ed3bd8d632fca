package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/peterh/liner"
	"github.com/takoeight0821/bfi/internal/driver"
	"github.com/takoeight0821/bfi/internal/logs"
	"github.com/takoeight0821/bfi/internal/repl"
)

const help = `bfi v%s - a tape machine interpreter

USAGE:
    bfi [options] [file]

OPTIONS:
    -i, -input FILE   Run FILE
    -log-debug        Set log level to debug
    -log-info         Set log level to info
    -log-warn         Set log level to warn (default)
    -log-error        Set log level to error
    -log-file         Also write logs to %s
    -h, --help        Show this help message

BEHAVIOR:
    If no file is provided, the interpreter starts in REPL mode and
    runs each line as it is typed. The tape is kept between lines.
    If a file is provided, its contents are executed on a fresh tape.

EXAMPLES:
    bfi               # Start REPL mode
    bfi hello.bf      # Run 'hello.bf'
    bfi --help        # Show this help message
`

func main() {
	const (
		inputUsage = "input file path"
	)
	var inputPath string
	flag.StringVar(&inputPath, "input", "", inputUsage)
	flag.StringVar(&inputPath, "i", "", inputUsage+" (shorthand)")
	levelFlag(slog.LevelDebug, "log-debug")
	levelFlag(slog.LevelInfo, "log-info")
	levelFlag(slog.LevelWarn, "log-warn")
	levelFlag(slog.LevelError, "log-error")
	logFile := flag.Bool("log-file", false, "also write logs to the state directory")

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), help, repl.Version, logs.DefaultFilePath())
	}
	flag.Parse()

	switch {
	case flag.NArg() > 1, flag.NArg() == 1 && inputPath != "":
		fmt.Fprintln(os.Stderr, "Incorrect usage. Use -h or --help for instructions.")
		os.Exit(2)
	case flag.NArg() == 1:
		inputPath = flag.Arg(0)
	}

	var opts logs.Options
	if *logFile {
		opts.FilePath = logs.DefaultFilePath()
	}
	logger, closer, err := logs.New(os.Stderr, opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer closer.Close()

	if inputPath == "" {
		err = RunPrompt(logger)
	} else {
		err = RunFile(inputPath, logger)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		closer.Close()
		os.Exit(1)
	}
}

func levelFlag(level slog.Level, name string) {
	flag.BoolFunc(name, "set log level to "+level.String(), func(string) error {
		logs.Level.Set(level)
		return nil
	})
}

var history = filepath.Join(xdg.DataHome, "bfi", ".bfi_history")

func RunPrompt(logger *slog.Logger) error {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	defer func() {
		if err := os.MkdirAll(filepath.Dir(history), os.ModePerm); err != nil {
			logger.Warn("create history directory", "error", err)
		}
		if f, err := os.Create(history); err == nil {
			defer f.Close()
			if _, err := line.WriteHistory(f); err != nil {
				logger.Warn("write history", "error", err)
			}
		}
		line.Close()
	}()

	if f, err := os.Open(history); err == nil {
		defer f.Close()
		if _, err := line.ReadHistory(f); err != nil {
			logger.Warn("read history", "error", err)
		}
	}

	return repl.NewSession(os.Stdin, os.Stdout, os.Stderr, logger).Run(line)
}

func RunFile(path string, logger *slog.Logger) error {
	return driver.NewRunner(os.Stdin, os.Stdout, logger).RunFile(path)
}
