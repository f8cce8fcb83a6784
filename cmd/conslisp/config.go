package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

const (
	historyFile    = ".conslisp_history"
	envLogLevel    = "CONSLISP_LOG_LEVEL"
	envHistoryPath = "CONSLISP_HISTORY"
)

type config struct {
	script      string
	expr        string
	interactive bool
	logLevel    logrus.Level
	historyPath string
}

// loadConfig parses flags, falling back to environment variables for
// anything not given on the command line.
func loadConfig(args []string) (*config, error) {
	fs := flag.NewFlagSet("conslisp", flag.ContinueOnError)
	expr := fs.String("e", "", "evaluate the given source instead of a file")
	interactive := fs.Bool("i", false, "start an interactive session")
	level := fs.String("log-level", os.Getenv(envLogLevel), "log level (debug, info, warn, error)")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: conslisp [options] [file]\n\nOptions:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg := &config{
		script:      fs.Arg(0),
		expr:        *expr,
		interactive: *interactive,
		logLevel:    logrus.WarnLevel,
		historyPath: os.Getenv(envHistoryPath),
	}

	if *level != "" {
		parsed, err := logrus.ParseLevel(*level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level: %w", err)
		}
		cfg.logLevel = parsed
	}

	if cfg.historyPath == "" {
		if home, err := os.UserHomeDir(); err == nil {
			cfg.historyPath = filepath.Join(home, historyFile)
		}
	}
	return cfg, nil
}
