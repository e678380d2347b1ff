package main

import (
	"bytes"
	"testing"

	"github.com/spf13/viper"
)

// executeCommand runs a fresh command tree with args and returns its
// combined output.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)

	root := newRootCmd()
	root.SetArgs(args)
	b := new(bytes.Buffer)
	root.SetOut(b)
	root.SetErr(b)
	root.SetIn(bytes.NewBufferString(""))
	err := root.Execute()
	return b.String(), err
}
