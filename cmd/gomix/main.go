/*
File    : gomix-lox/cmd/gomix/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package main is the entry point for the gomix-lox interpreter. It
provides three modes of operation:
 1. REPL Mode (default): interactive Read-Eval-Print Loop
 2. File Mode: execute a gomix-lox source file given on the command line
 3. Server Mode: a TCP REPL server, one session per connection

The interpreter uses a lexer-parser-interp pipeline to process source.
*/
package main

import (
	"net"
	"os"

	"github.com/akashmaji946/gomix-lox/config"
	"github.com/akashmaji946/gomix-lox/diag"
	"github.com/akashmaji946/gomix-lox/interp"
	"github.com/akashmaji946/gomix-lox/parser"
	"github.com/akashmaji946/gomix-lox/repl"
	"github.com/fatih/color"
)

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

// main dispatches on os.Args:
//
//	gomix                   start interactive REPL mode
//	gomix <path-to-file>    execute a gomix-lox file
//	gomix server <port>     start a REPL server on the given port
//	gomix --help            display help
//	gomix --version         display version information
func main() {
	cfg, err := config.Resolve()
	if err != nil {
		redColor.Fprintf(os.Stderr, "[CONFIG ERROR] %v\n", err)
		cfg = config.Defaults()
	}

	if len(os.Args) > 1 {
		arg := os.Args[1]

		if arg == "--help" || arg == "-h" {
			showHelp()
			os.Exit(0)
		}

		if arg == "--version" || arg == "-v" {
			showVersion(cfg)
			os.Exit(0)
		}

		if arg == "server" {
			if len(os.Args) < 3 {
				redColor.Fprintf(os.Stderr, "[USAGE ERROR] Missing port for server mode. Usage: gomix server <port>\n")
				os.Exit(1)
			}
			startServer(cfg, os.Args[2])
			return
		}

		runFile(cfg, arg)
		return
	}

	repler := repl.NewRepl(cfg)
	repler.Start(os.Stdin, os.Stdout)
}

func showHelp() {
	cyanColor.Println("gomix-lox - A Tree-Walking Interpreter")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	yellowColor.Println("  gomix                     Start interactive REPL mode")
	yellowColor.Println("  gomix <path-to-file>      Execute a gomix-lox file")
	yellowColor.Println("  gomix server <port>       Start REPL server on specified port")
	yellowColor.Println("  gomix --help              Display this help message")
	yellowColor.Println("  gomix --version           Display version information")
	cyanColor.Println("")
	cyanColor.Println("EXAMPLES:")
	yellowColor.Println("  gomix")
	yellowColor.Println("  gomix samples/fib.lox")
	yellowColor.Println("  gomix server 8080")
}

func showVersion(cfg config.Config) {
	cyanColor.Println("gomix-lox - A Tree-Walking Interpreter")
	cyanColor.Printf("Version: %s\n", cfg.Version)
	cyanColor.Printf("License: %s\n", cfg.License)
	cyanColor.Printf("Author : %s\n", cfg.Author)
}

// runFile reads and executes a gomix-lox source file, exiting non-zero on
// any file, parse, or runtime error.
func runFile(cfg config.Config, fileName string) {
	source, err := os.ReadFile(fileName)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] Could not read file '%s': %v\n", fileName, err)
		os.Exit(1)
	}
	executeFileWithRecovery(string(source))
}

// startServer listens on port, handing each accepted connection its own
// REPL session (one session per TCP connection, run concurrently).
func startServer(cfg config.Config, port string) {
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[SERVER ERROR] Failed to start server on port %s: %v\n", port, err)
		os.Exit(1)
	}
	cyanColor.Printf("gomix-lox REPL server listening on :%s\n", port)
	defer listener.Close()

	for {
		conn, err := listener.Accept()
		if err != nil {
			redColor.Fprintf(os.Stderr, "[SERVER ERROR] Failed to accept connection: %v\n", err)
			continue
		}
		go handleClient(cfg, conn)
	}
}

func handleClient(cfg config.Config, conn net.Conn) {
	defer conn.Close()
	cyanColor.Printf("New client connected from %s\n", conn.RemoteAddr())
	repler := repl.NewRepl(cfg)
	repler.Start(conn, conn)
	cyanColor.Printf("Client disconnected from %s\n", conn.RemoteAddr())
}

// executeFileWithRecovery parses and runs source with panic recovery,
// mirroring the teacher's executeFileWithRecovery defer-recover idiom: a
// *diag.RuntimeError panic from the interpreter is caught, printed, and
// turned into a non-zero exit rather than crashing the process.
func executeFileWithRecovery(source string) {
	defer func() {
		if recovered := recover(); recovered != nil {
			if rerr, ok := recovered.(*diag.RuntimeError); ok {
				redColor.Fprintf(os.Stderr, "%s\n", rerr.Error())
				os.Exit(1)
			}
			redColor.Fprintf(os.Stderr, "[RUNTIME ERROR] %v\n", recovered)
			os.Exit(1)
		}
	}()

	par := parser.NewParser(source)
	stmts := par.Parse()

	if par.HasErrors() {
		for _, e := range par.GetErrors() {
			redColor.Fprintf(os.Stderr, "[PARSE ERROR] %s\n", e)
		}
		os.Exit(1)
	}

	it := interp.New(&diag.Collector{})
	result := it.Run(stmts)

	if result.Kind == interp.ValueResult && result.V != nil && !result.V.IsNil() {
		yellowColor.Fprintf(os.Stdout, "%s\n", result.V.Print())
	}
}
