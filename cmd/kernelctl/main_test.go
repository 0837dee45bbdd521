package main

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRoot() (*cobra.Command, *bytes.Buffer) {
	configPath = ""
	root := &cobra.Command{Use: "kernelctl"}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a boot configuration file")
	root.AddCommand(newRunCmd())
	root.AddCommand(newInspectCmd())

	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	return root, &buf
}

func TestInspectPrintsIdleSlot(t *testing.T) {
	root, buf := newTestRoot()
	root.SetArgs([]string{"inspect"})
	require.NoError(t, root.Execute())
	assert.Contains(t, buf.String(), "idle")
}

func TestRunCompletesWithoutError(t *testing.T) {
	root, _ := newTestRoot()
	root.SetArgs([]string{"run", "--period", "0s"})
	assert.NoError(t, root.Execute())
}
