package cmd

import (
	"bytes"
	"testing"
)

// executeCmd executes the root command with the given args and returns the
// combined output. Cobra command state is global, so tests pass every flag
// they depend on explicitly.
func executeCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	err := rootCmd.Execute()
	return buf.String(), err
}
