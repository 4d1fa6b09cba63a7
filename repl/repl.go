// Package repl implements the interactive Read-Eval-Print Loop for
// golox. It keeps the readline-driven line editing, history, and
// color-coded banner/output of the teacher's repl.Repl
// (akashmaji946/go-mix/repl/repl.go) verbatim in spirit, wired to the
// lexer/parser/resolver/interp pipeline instead of go-mix's single-pass
// evaluator.
//
// Each line is lexed, parsed, and resolved on its own — a top-level
// REPL line never sits inside a block, so the resolver always reports
// it as global, and state persists across lines the same way a script's
// globals would: in the one Interpreter's global Environment kept alive
// for the life of the session.
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/akashmaji946/golox/interp"
	"github.com/akashmaji946/golox/lexer"
	"github.com/akashmaji946/golox/loxerr"
	"github.com/akashmaji946/golox/parser"
	"github.com/akashmaji946/golox/resolver"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the cosmetic configuration for an interactive session.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

// NewRepl creates a Repl ready to Start.
func NewRepl(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo writes the startup banner to writer.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to golox!")
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the REPL until the user exits or EOF is reached on
// stdin. reader is accepted for symmetry with the file/run entry
// points even though readline owns input directly.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	in := interp.New(writer)

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
		r.evalLine(writer, line, in)
	}
}

// evalLine runs one line of source through the full pipeline. Unlike
// file/run mode it never exits the process on error: it prints the
// failure in red and returns control to the prompt.
func (r *Repl) evalLine(writer io.Writer, line string, in *interp.Interpreter) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[RUNTIME ERROR] %v\n", recovered)
		}
	}()

	tokens, lexErrs := lexer.ScanTokens(line)
	if agg := loxerr.Aggregate(lexErrs); agg != nil {
		redColor.Fprintf(writer, "%s\n", agg.Error())
		return
	}

	stmts, parseErrs := parser.Parse(tokens)
	if agg := loxerr.Aggregate(parseErrs); agg != nil {
		redColor.Fprintf(writer, "%s\n", agg.Error())
		return
	}

	depths, resolveErrs := resolver.Resolve(stmts)
	if agg := loxerr.Aggregate(resolveErrs); agg != nil {
		redColor.Fprintf(writer, "%s\n", agg.Error())
		return
	}

	if rte := in.Interpret(stmts, depths); rte != nil {
		redColor.Fprintf(writer, "%s\n", rte.Error())
	}
}
