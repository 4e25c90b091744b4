/*
File    : gomix-lox/repl/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package repl implements the Read-Eval-Print Loop for gomix-lox. The REPL
lets users enter statements line by line, see results immediately,
navigate history, and get colored feedback — adapted from the teacher's
repl.Repl onto this language's parser/interp pipeline.
*/
package repl

import (
	"io"
	"strings"

	"github.com/akashmaji946/gomix-lox/config"
	"github.com/akashmaji946/gomix-lox/diag"
	"github.com/akashmaji946/gomix-lox/interp"
	"github.com/akashmaji946/gomix-lox/parser"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

// Color definitions for REPL output, matching the teacher's palette:
// blue for decoration, yellow for results, red for errors, green for the
// banner, cyan for informational text.
var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl is a Read-Eval-Print Loop instance, configured from config.Config.
type Repl struct {
	Banner      string
	Version     string
	Author      string
	Line        string
	License     string
	Prompt      string
	HistoryFile string
}

// NewRepl builds a Repl from a loaded config.Config.
func NewRepl(cfg config.Config) *Repl {
	return &Repl{Banner: cfg.Banner, Version: cfg.Version, Author: cfg.Author, Line: cfg.Line, License: cfg.License, Prompt: cfg.Prompt, HistoryFile: cfg.HistoryFile}
}

// PrintBannerInfo writes the startup banner and usage instructions to w.
func (r *Repl) PrintBannerInfo(w io.Writer) {
	blueColor.Fprintf(w, "%s\n", r.Line)
	greenColor.Fprintf(w, "%s\n", r.Banner)
	blueColor.Fprintf(w, "%s\n", r.Line)
	yellowColor.Fprintln(w, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(w, "%s\n", r.Line)
	cyanColor.Fprintf(w, "%s\n", "Welcome to gomix-lox!")
	cyanColor.Fprintf(w, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(w, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(w, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(w, "%s\n", r.Line)
}

// Start runs the REPL main loop against reader/writer until the user
// exits or EOF is reached. One interp.Interpreter persists across lines,
// so variables and functions declared in an earlier line remain visible.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          r.Prompt,
		HistoryFile:     r.HistoryFile,
		Stdin:           io.NopCloser(reader),
		Stdout:          writer,
		InterruptPrompt: "^C",
		EOFPrompt:       ".exit",
	})
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	it := interp.New(&diag.Collector{})
	it.SetWriter(writer)

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}
		rl.SaveHistory(line)

		r.executeWithRecovery(writer, line, it)
	}
}

// executeWithRecovery parses and evaluates one line with panic recovery,
// so a runtime error reported by the evaluator (a *diag.RuntimeError
// panic) ends that line's evaluation but keeps the REPL running —
// matching the teacher's executeWithRecovery idiom.
func (r *Repl) executeWithRecovery(writer io.Writer, line string, it *interp.Interpreter) {
	defer func() {
		if recovered := recover(); recovered != nil {
			if rerr, ok := recovered.(*diag.RuntimeError); ok {
				redColor.Fprintf(writer, "%s\n", rerr.Error())
				return
			}
			redColor.Fprintf(writer, "[RUNTIME ERROR] %v\n", recovered)
		}
	}()

	par := parser.NewParser(line)
	stmts := par.Parse()

	if par.HasErrors() {
		for _, e := range par.GetErrors() {
			redColor.Fprintf(writer, "%s\n", e)
		}
		return
	}

	result := it.Run(stmts)
	if result.Kind == interp.ValueResult && result.V != nil {
		yellowColor.Fprintf(writer, "%s\n", result.V.Print())
	}
}
