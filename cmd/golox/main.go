// Command golox is the interpreter's CLI driver: no arguments starts a
// REPL, one argument runs a file, more than one prints a usage line and
// exits 0.
package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"

	lox "github.com/daios-ai/golox"
)

func main() {
	switch len(os.Args) {
	case 1:
		runREPL()
	case 2:
		runFile(os.Args[1])
	default:
		fmt.Println("Usage: golox [script]")
		os.Exit(0)
	}
}

func runFile(path string) {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "golox: %v\n", err)
		os.Exit(1)
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	reporter := lox.NewReporter(
		func(line string) { fmt.Fprintln(os.Stderr, line) },
		func(line string) { fmt.Fprintln(out, line) },
	)
	interp := lox.NewInterpreter(func(line string) { fmt.Fprintln(out, line) })
	lox.Run(strings.TrimPrefix(string(src), "\xef\xbb\xbf"), reporter, interp)
	out.Flush()

	switch {
	case reporter.HadRuntimeError:
		os.Exit(70)
	case reporter.HadError:
		os.Exit(65)
	default:
		os.Exit(0)
	}
}

// runREPL loops reading one line at a time, running it through the same
// pipeline as file mode, and resetting the Reporter's flags between lines
// so neither a compile nor a runtime error can end the session. One
// Interpreter is shared across every line so that globals defined on an
// earlier line stay visible to later ones.
func runREPL() {
	banner := color.New(color.FgCyan, color.Bold)
	prompt := color.New(color.FgGreen)

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	historyPath := historyFilePath()
	if f, err := os.Open(historyPath); err == nil {
		line.ReadHistory(f)
		f.Close()
	}
	defer func() {
		if f, err := os.Create(historyPath); err == nil {
			line.WriteHistory(f)
			f.Close()
		}
	}()

	banner.Println("golox REPL — Ctrl-D or Ctrl-C to exit")

	reporter := lox.NewReporter(
		func(msg string) { fmt.Fprintln(os.Stderr, msg) },
		func(msg string) { fmt.Println(msg) },
	)
	interp := lox.NewInterpreter(func(msg string) { fmt.Println(msg) })

	for {
		input, err := line.Prompt(prompt.Sprint("> "))
		if err != nil {
			// io.EOF (Ctrl-D) or liner.ErrPromptAborted (Ctrl-C): both end
			// the REPL cleanly, matching the "EOF on stdin terminates" rule.
			fmt.Println()
			return
		}
		if input == "" {
			continue
		}
		line.AppendHistory(input)

		reporter.Reset()
		lox.Run(input, reporter, interp)
	}
}

func historyFilePath() string {
	dir, err := os.UserHomeDir()
	if err != nil {
		return ".golox_history"
	}
	return filepath.Join(dir, ".golox_history")
}
