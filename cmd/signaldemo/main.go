package main

import (
	"flag"
	"io"
	"log/slog"
	"os"
	"strings"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("signaldemo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	scenarioPath := fs.String("scenario", "", "YAML scenario file (built-in scenario when empty)")
	logLevel := fs.String("log-level", "info", "debug, info, warn or error")
	logFormat := fs.String("log-format", "text", "text or json")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	logger := newLogger(*logLevel, *logFormat, stderr).With(slog.String("component", "signaldemo"))

	sc := DefaultScenario()
	if *scenarioPath != "" {
		loaded, err := LoadScenario(*scenarioPath)
		if err != nil {
			logger.Error("load scenario", "path", *scenarioPath, "error", err)
			return 1
		}
		sc = loaded
	}

	if err := Run(sc, logger, stdout); err != nil {
		logger.Error("scenario failed", "error", err)
		return 1
	}
	return 0
}

// newLogger defaults to INFO when level is not recognised.
func newLogger(level, format string, w io.Writer) *slog.Logger {
	var l slog.Level
	switch strings.ToUpper(level) {
	case "DEBUG":
		l = slog.LevelDebug
	case "WARN":
		l = slog.LevelWarn
	case "ERROR":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: l}
	if strings.EqualFold(format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
