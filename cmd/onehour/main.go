package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/sophiajt/onehour"
)

const (
	appName     = "onehour"
	historyFile = ".onehour_history"
	prompt      = ">> "
	banner      = "onehour REPL — Ctrl+C to cancel input, Ctrl+D to exit."
)

func main() {
	var evalStr string
	flag.StringVar(&evalStr, "e", "", "Evaluate the given snippet and exit")
	flag.Parse()

	args := flag.Args()

	switch {
	case evalStr != "":
		os.Exit(runSource(evalStr))
	case len(args) > 0:
		for _, path := range args {
			if code := runFile(path); code != 0 {
				os.Exit(code)
			}
		}
		os.Exit(0)
	default:
		os.Exit(runREPL())
	}
}

func runFile(path string) int {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: cannot read %s: %v\n", appName, path, err)
		return 1
	}
	return runSource(string(src))
}

func runSource(src string) int {
	value, err := onehour.Run(src)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		return 1
	}
	fmt.Println(value)
	return 0
}

func runREPL() int {
	fmt.Println(banner)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	// Load history (best-effort)
	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	// One persistent Evaluator per session, so variables survive between
	// lines.
	eval := onehour.NewEvaluator()

	for {
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			fmt.Println()
			break
		}
		if err != nil {
			// Ctrl+C aborts the current input; let the user start again.
			continue
		}

		if strings.TrimSpace(line) == "" {
			continue
		}

		code, err := onehour.Parse(line)
		if err != nil {
			fmt.Println(err)
			continue
		}
		value, err := eval.Evaluate(code)
		if err != nil {
			fmt.Println(err)
			continue
		}
		fmt.Println(value)

		ln.AppendHistory(line)
	}

	// Persist history (best-effort)
	if f, err := os.Create(histPath); err == nil {
		_, _ = ln.WriteHistory(f)
		_ = f.Close()
	}
	return 0
}
