/*
File    : go-gcode/repl/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package repl implements the interactive front-end of the G-code parser.
Each entered line is fed to a persistent parser as one statement; the
resulting tree is echoed back, and diagnostics appear in red. The readline
library provides command history and line editing.
*/
package repl

import (
	"io"
	"strings"

	"github.com/akashmaji946/go-gcode/ast"
	"github.com/akashmaji946/go-gcode/parser"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

// Color definitions for REPL output:
// - blueColor: separators
// - yellowColor: parsed statement trees
// - redColor: diagnostics
// - greenColor: banner
// - cyanColor: usage instructions
var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the configuration of one interactive session.
type Repl struct {
	Banner  string // banner displayed at startup
	Version string // version string
	Line    string // separator line
	Prompt  string // command prompt (e.g. "gcode >>> ")
}

// NewRepl creates a REPL instance.
func NewRepl(banner, version, line, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Line: line, Prompt: prompt}
}

// PrintBannerInfo displays the welcome banner and usage instructions.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version)
	cyanColor.Fprintf(writer, "%s\n", "Enter one G-code statement per line")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the read-parse-print loop until '.exit' or EOF. A single
// parser persists across the session, so its line tracking and
// diagnostics behave exactly as they would over a file.
func (r *Repl) Start(writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	par := parser.NewParser(
		func(msg string) bool {
			redColor.Fprintf(writer, "*** ERROR: %s\n", msg)
			return true
		},
		func(stmt *ast.StatementNode) bool {
			printer := NewTreePrinter()
			stmt.Accept(printer)
			yellowColor.Fprint(writer, printer.String())
			return true
		},
	)

	for {
		line, err := rl.Readline()
		if err != nil {
			// EOF or interrupt
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

		// One line is one statement; the trailing newline completes it.
		par.Parse([]byte(line + "\n"))
	}
}
