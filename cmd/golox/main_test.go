package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSource(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "source.lox")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

func TestRunTokenize_ExitsSuccessOnCleanSource(t *testing.T) {
	path := writeSource(t, "var x = 1;")
	assert.Equal(t, exitSuccess, runTokenize(path))
}

func TestRunTokenize_ExitsCompileOnLexError(t *testing.T) {
	path := writeSource(t, "@")
	assert.Equal(t, exitCompile, runTokenize(path))
}

func TestRunParse_ExitsCompileOnParseError(t *testing.T) {
	path := writeSource(t, "var x = ;")
	assert.Equal(t, exitCompile, runParse(path))
}

func TestRunEvaluate_ExitsSuccessOnBareExpression(t *testing.T) {
	path := writeSource(t, "1 + 2")
	assert.Equal(t, exitSuccess, runEvaluate(path))
}

func TestRunEvaluate_ExitsRuntimeOnRuntimeError(t *testing.T) {
	path := writeSource(t, `-"x"`)
	assert.Equal(t, exitRuntime, runEvaluate(path))
}

func TestRunRun_ExitsSuccessOnProgram(t *testing.T) {
	path := writeSource(t, "print 1 + 2;")
	assert.Equal(t, exitSuccess, runRun(path))
}

func TestRunRun_ExitsCompileOnResolveError(t *testing.T) {
	path := writeSource(t, "var a = a;")
	assert.Equal(t, exitCompile, runRun(path))
}

func TestRunRun_ExitsRuntimeOnRuntimeError(t *testing.T) {
	path := writeSource(t, `-"x";`)
	assert.Equal(t, exitRuntime, runRun(path))
}

func TestRunTokenize_ExitsUsageOnMissingFile(t *testing.T) {
	assert.Equal(t, exitUsage, runTokenize(filepath.Join(t.TempDir(), "nope.lox")))
}
