package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests drive compileCmd/checkCmd's RunE functions directly,
// setting the package-level flag variables the way cobra would after
// parsing — rather than going through Execute(), which registers flags
// on the shared rootCmd and is meant to run exactly once per process
// (mirroring cli/main.go's single Execute()-and-exit entry point).

const loopSrc = "push 1\n" +
	"loop:\n" +
	"push 1\n" +
	"outnum\n" +
	"jump loop\n" +
	"exit\n"

func writeTemp(t *testing.T, name, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestCompileCmdWritesTokensToFile(t *testing.T) {
	dialectFlag = "burghard"
	src := writeTemp(t, "in.wsa", loopSrc)
	out := filepath.Join(filepath.Dir(src), "out.ws")
	outFile = out
	defer func() { outFile = "-" }()

	require.NoError(t, compileCmd.RunE(compileCmd, []string{src}))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestCheckCmdAcceptsValidSource(t *testing.T) {
	dialectFlag = "burghard"
	src := writeTemp(t, "in.wsa", loopSrc)
	assert.NoError(t, checkCmd.RunE(checkCmd, []string{src}))
}

func TestCheckCmdRejectsUnknownDialect(t *testing.T) {
	dialectFlag = "no-such-dialect"
	defer func() { dialectFlag = "burghard" }()
	src := writeTemp(t, "in.wsa", loopSrc)
	assert.Error(t, checkCmd.RunE(checkCmd, []string{src}))
}

func TestCompileCmdReportsUndefinedLabel(t *testing.T) {
	dialectFlag = "burghard"
	src := writeTemp(t, "bad.wsa", "jump nowhere\nexit\n")
	outFile = "-"
	assert.Error(t, compileCmd.RunE(compileCmd, []string{src}))
}
