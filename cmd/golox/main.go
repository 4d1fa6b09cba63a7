// Command golox is the host CLI spec.md §6.4 describes: it reads a
// source file, drives it through the lexer/parser/resolver/interp
// pipeline, and maps each pipeline stage's error category onto the
// external exit-code contract (0 success, 64 usage error, 65
// compile-time error, 70 runtime error).
//
// Subcommand dispatch via Cobra (github.com/spf13/cobra) replaces the
// teacher's hand-rolled `os.Args` switch in main/main.go
// (akashmaji946/go-mix/main/main.go). Every subcommand maps lex/parse/
// resolve errors to exit 65 and runtime errors to exit 70, per the
// external contract this package's doc comment states above.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/astprinter"
	"github.com/akashmaji946/golox/interp"
	"github.com/akashmaji946/golox/lexer"
	"github.com/akashmaji946/golox/loxerr"
	"github.com/akashmaji946/golox/parser"
	"github.com/akashmaji946/golox/repl"
	"github.com/akashmaji946/golox/resolver"
)

const (
	exitSuccess = 0
	exitUsage   = 64
	exitCompile = 65
	exitRuntime = 70
)

func main() {
	root := &cobra.Command{
		Use:     "golox",
		Short:   "A tree-walking interpreter for a small class-based scripting language",
		Version: "0.1.0",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			r := repl.NewRepl(banner, "0.1.0", "golox", separator, "MIT", "golox >>> ")
			r.Start(os.Stdin, os.Stdout)
		},
	}

	root.AddCommand(
		fileCommand("tokenize", "Print every token in a source file", runTokenize),
		fileCommand("parse", "Print the AST of a source file's expression statements", runParse),
		fileCommand("evaluate", "Evaluate a single bare expression and print its value", runEvaluate),
		fileCommand("run", "Execute a full program", runRun),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUsage)
	}
}

const separator = "----------------------------------------"

const banner = `
   ___  ___  __    ____  _  __
  / _ \/ _ \/ /   / __ \| |/_/
 / ___/ // / /___/ /_/ />  <
/_/  /____/_____/\____/_/|_|
`

func fileCommand(use, short string, run func(path string) int) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <file>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			os.Exit(run(args[0]))
		},
	}
}

func readSource(path string) (string, int) {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, (&loxerr.IOError{Cause: err}).Error())
		return "", exitUsage
	}
	return string(data), exitSuccess
}

func runTokenize(path string) int {
	src, code := readSource(path)
	if code != exitSuccess {
		return code
	}

	tokens, errs := lexer.ScanTokens(src)
	if agg := loxerr.Aggregate(errs); agg != nil {
		fmt.Fprintln(os.Stderr, agg.Error())
	}
	fmt.Print(astprinter.PrintTokens(tokens))
	if len(errs) > 0 {
		return exitCompile
	}
	return exitSuccess
}

func runParse(path string) int {
	src, code := readSource(path)
	if code != exitSuccess {
		return code
	}

	tokens, lexErrs := lexer.ScanTokens(src)
	if agg := loxerr.Aggregate(lexErrs); agg != nil {
		fmt.Fprintln(os.Stderr, agg.Error())
		return exitCompile
	}

	stmts, parseErrs := parser.Parse(tokens)
	if agg := loxerr.Aggregate(parseErrs); agg != nil {
		fmt.Fprintln(os.Stderr, agg.Error())
		return exitCompile
	}

	for _, stmt := range stmts {
		if exprStmt, ok := stmt.(*ast.ExpressionStmt); ok {
			fmt.Println(astprinter.Print(exprStmt.Expression))
		}
	}
	return exitSuccess
}

func runEvaluate(path string) int {
	src, code := readSource(path)
	if code != exitSuccess {
		return code
	}

	tokens, lexErrs := lexer.ScanTokens(src)
	if agg := loxerr.Aggregate(lexErrs); agg != nil {
		fmt.Fprintln(os.Stderr, agg.Error())
		return exitCompile
	}

	expr, parseErrs := parser.ParseExpression(tokens)
	if agg := loxerr.Aggregate(parseErrs); agg != nil {
		fmt.Fprintln(os.Stderr, agg.Error())
		return exitCompile
	}

	depths, resolveErrs := resolver.ResolveExpr(expr)
	if agg := loxerr.Aggregate(resolveErrs); agg != nil {
		fmt.Fprintln(os.Stderr, agg.Error())
		return exitCompile
	}

	in := interp.New(os.Stdout)
	value, rte := in.EvaluateExpr(expr, depths)
	if rte != nil {
		fmt.Fprintln(os.Stderr, rte.Error())
		return exitRuntime
	}
	fmt.Println(interp.Stringify(value))
	return exitSuccess
}

func runRun(path string) int {
	src, code := readSource(path)
	if code != exitSuccess {
		return code
	}

	tokens, lexErrs := lexer.ScanTokens(src)
	if agg := loxerr.Aggregate(lexErrs); agg != nil {
		fmt.Fprintln(os.Stderr, agg.Error())
		return exitCompile
	}

	stmts, parseErrs := parser.Parse(tokens)
	if agg := loxerr.Aggregate(parseErrs); agg != nil {
		fmt.Fprintln(os.Stderr, agg.Error())
		return exitCompile
	}

	depths, resolveErrs := resolver.Resolve(stmts)
	if agg := loxerr.Aggregate(resolveErrs); agg != nil {
		fmt.Fprintln(os.Stderr, agg.Error())
		return exitCompile
	}

	in := interp.New(os.Stdout)
	if rte := in.Interpret(stmts, depths); rte != nil {
		fmt.Fprintln(os.Stderr, rte.Error())
		return exitRuntime
	}
	return exitSuccess
}
