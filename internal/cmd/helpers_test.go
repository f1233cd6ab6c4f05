package cmd

import (
	"bytes"
	"testing"
)

// isolate points HOME at a temp dir and clears STACKGEN_* variables.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, key := range []string{"STACKGEN_CONFIG", "STACKGEN_TEMPLATES", "STACKGEN_OUTPUT", "STACKGEN_LOG_TIMESTAMPS"} {
		t.Setenv(key, "")
	}
	return home
}

// execute runs the root command with args and returns its stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}
