package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/jpschroeder/conslisp"
	"github.com/peterh/liner"
	"github.com/sirupsen/logrus"
)

const (
	promptMain = "user=> "
	promptCont = "...    "
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := loadConfig(args)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	log := logrus.New()
	log.SetOutput(stderr)
	log.SetLevel(cfg.logLevel)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	session := conslisp.NewSession(conslisp.WithLogger(log))

	switch {
	case cfg.expr != "":
		return runSource(session, cfg.expr, stdout, stderr)
	case cfg.script != "":
		src, err := os.ReadFile(cfg.script)
		if err != nil {
			fmt.Fprintln(stderr, fmt.Errorf("failed to read source file: %w", err))
			return 1
		}
		log.WithField("file", cfg.script).Debug("running script")
		return runSource(session, string(src), stdout, stderr)
	case cfg.interactive || !isInputRedirected(stdin):
		return ReadEvalPrintLoop(session, cfg.historyPath, stdout, stderr)
	default:
		src, err := io.ReadAll(stdin)
		if err != nil {
			fmt.Fprintln(stderr, fmt.Errorf("failed to read stdin: %w", err))
			return 1
		}
		return runSource(session, string(src), stdout, stderr)
	}
}

// runSource evaluates a whole program, printing each expression and its result
func runSource(session *conslisp.Session, src string, stdout, stderr io.Writer) int {
	results, err := session.EvalSource(src)
	if err != nil {
		fmt.Fprintln(stderr, fmt.Errorf("failed to parse source code: %w", err))
		return 1
	}
	for _, res := range results {
		fmt.Fprintln(stdout, res)
	}
	return 0
}

func ReadEvalPrintLoop(session *conslisp.Session, historyPath string, stdout, stderr io.Writer) int {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if historyPath != "" {
		if f, err := os.Open(historyPath); err == nil {
			ln.ReadHistory(f)
			f.Close()
		}
		defer func() {
			if f, err := os.Create(historyPath); err == nil {
				ln.WriteHistory(f)
				f.Close()
			}
		}()
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigs)
	go func() {
		<-sigs
		ln.Close()
		os.Exit(130)
	}()

	for {
		src, ok := readComplete(ln)
		if !ok {
			fmt.Fprintln(stdout)
			return 0
		}

		trimmed := strings.TrimSpace(src)
		if trimmed == "" {
			continue
		}
		if trimmed == ":quit" {
			return 0
		}
		ln.AppendHistory(strings.ReplaceAll(src, "\n", " "))

		exprs, err := conslisp.ReadAll(src)
		if err != nil {
			fmt.Fprintln(stderr, conslisp.PrintError(err))
			continue
		}
		for _, expr := range exprs {
			val, err := session.Eval(expr)
			if err != nil {
				fmt.Fprintln(stdout, conslisp.PrintError(err))
				continue
			}
			fmt.Fprintln(stdout, conslisp.Print(val))
		}
	}
}

// readComplete keeps prompting until the collected lines read as whole
// expressions or fail for a reason other than running out of input.
func readComplete(ln *liner.State) (string, bool) {
	var sb strings.Builder
	for {
		prompt := promptMain
		if sb.Len() > 0 {
			prompt = promptCont
		}

		line, err := ln.Prompt(prompt)
		if err != nil {
			// io.EOF or liner.ErrPromptAborted
			return "", false
		}

		if sb.Len() > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(line)

		src := sb.String()
		if _, err := conslisp.ReadAll(src); !conslisp.IsIncomplete(err) {
			return src, true
		}
	}
}

func isInputRedirected(stdin io.Reader) bool {
	f, isFile := stdin.(*os.File)
	if !isFile {
		return true
	}
	fi, err := f.Stat()
	if err != nil {
		return true
	}
	return (fi.Mode() & os.ModeCharDevice) == 0
}
