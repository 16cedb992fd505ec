// cmd/dotman/root_test.go
// TEST TYPE: CLI Integration Test
// DEPENDENCIES: Filesystem (temp dirs), environment overrides
// PURPOSE: Test the cobra wiring for the local (non-VCS) commands

package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/dotman/pkg/paths"
	"github.com/arthur-debert/dotman/pkg/testutil"
)

// runCommand executes the root command with args, capturing output
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	cmd := NewRootCmd()
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return buf.String(), err
}

// setupCLIEnv points HOME and DOTMAN_DIR at fresh temp dirs
func setupCLIEnv(t *testing.T) (home, repo string) {
	t.Helper()
	home = testutil.TempDir(t)
	repo = testutil.TempDir(t)
	t.Setenv(paths.EnvHome, home)
	t.Setenv(paths.EnvDotmanDir, repo)
	return home, repo
}

func TestNoCommandFails(t *testing.T) {
	setupCLIEnv(t)

	_, err := runCommand(t)
	assert.Error(t, err)
}

func TestUnknownCommandFails(t *testing.T) {
	setupCLIEnv(t)

	_, err := runCommand(t, "frobnicate")
	assert.Error(t, err)
}

func TestAddListRemoveFlow(t *testing.T) {
	home, _ := setupCLIEnv(t)
	testutil.CreateFile(t, home, ".bashrc", "export PATH\n")

	out, err := runCommand(t, "add", ".bashrc")
	require.NoError(t, err)
	assert.Contains(t, out, ".bashrc")

	out, err = runCommand(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "[OK]")
	assert.Contains(t, out, ".bashrc")

	out, err = runCommand(t, "remove", ".bashrc")
	require.NoError(t, err)
	assert.Contains(t, out, ".bashrc")

	out, err = runCommand(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No files tracked.")
}

func TestAddOutsideHomeFailsNonZero(t *testing.T) {
	setupCLIEnv(t)
	outside := testutil.TempDir(t)
	target := testutil.CreateFile(t, outside, "hosts", "x\n")

	_, err := runCommand(t, "add", target)
	assert.Error(t, err)
}

func TestListEmptyRepository(t *testing.T) {
	setupCLIEnv(t)

	out, err := runCommand(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No files tracked.")
}
