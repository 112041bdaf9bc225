package commands

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harborgrid-justin/lithic/internal/config"
)

func TestMain(m *testing.M) {
	color.NoColor = true

	os.Exit(m.Run())
}

func defaultsLoader(string) (*config.Config, error) {
	return &config.Config{
		Output: config.OutputConfig{Color: true},
	}, nil
}

func writeSource(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "component.tsx")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func readSource(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	return string(data)
}

func executeRoot(loader configLoader, args ...string) (string, string, error) {
	cmd := newRootCommandWithDeps(loader)

	var out, errOut bytes.Buffer

	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), errOut.String(), err
}

func TestRoot_NoArgumentPrintsUsage(t *testing.T) {
	t.Parallel()

	out, _, err := executeRoot(defaultsLoader)

	require.ErrorIs(t, err, ErrNoFileArgument)
	assert.Contains(t, out, "Usage:")
	assert.Contains(t, out, "lithic <file>")
}

func TestRoot_PatchApplied(t *testing.T) {
	t.Parallel()

	path := writeSource(t, `import { useEffect, useState } from "react";`+"\n")

	out, _, err := executeRoot(defaultsLoader, path)

	require.NoError(t, err)
	assert.Contains(t, out, "File: "+path)
	assert.Contains(t, out, "✓ Fixed imports")
	assert.Equal(t, `import { useEffect, useState }, useCallback} from "react";`+"\n", readSource(t, path))
}

func TestRoot_NoChangeExitsWithSentinel(t *testing.T) {
	t.Parallel()

	const input = "const plain = true;\n"

	path := writeSource(t, input)

	out, _, err := executeRoot(defaultsLoader, path)

	require.ErrorIs(t, err, ErrNoChange)
	assert.Contains(t, out, "No import changes needed")
	assert.Equal(t, input, readSource(t, path))
}

func TestRoot_SecondRunReportsNoChange(t *testing.T) {
	t.Parallel()

	path := writeSource(t, `import { useState, useEffect } from "react";`+"\n")

	_, _, err := executeRoot(defaultsLoader, path)
	require.NoError(t, err)

	_, _, err = executeRoot(defaultsLoader, path)
	require.ErrorIs(t, err, ErrNoChange)
}

func TestRoot_DryRunLeavesFileUntouched(t *testing.T) {
	t.Parallel()

	const input = `import { useEffect, useState } from "react";` + "\n"

	path := writeSource(t, input)

	out, _, err := executeRoot(defaultsLoader, "--dry-run", path)

	require.NoError(t, err)
	assert.Contains(t, out, "✓ Fixed imports")
	assert.Contains(t, out, "useCallback")
	assert.Equal(t, input, readSource(t, path))
}

func TestRoot_BackupSuffixFlag(t *testing.T) {
	t.Parallel()

	const input = `import { useEffect, useState } from "react";` + "\n"

	path := writeSource(t, input)

	_, _, err := executeRoot(defaultsLoader, "--backup-suffix", ".orig", path)

	require.NoError(t, err)
	assert.Equal(t, input, readSource(t, path+".orig"))
}

func TestRoot_InvalidBackupSuffixFlag(t *testing.T) {
	t.Parallel()

	path := writeSource(t, "anything\n")

	_, _, err := executeRoot(defaultsLoader, "--backup-suffix", "../escape", path)

	require.ErrorIs(t, err, config.ErrBackupSuffixPathSeparator)
}

func TestRoot_MissingFileFails(t *testing.T) {
	t.Parallel()

	_, _, err := executeRoot(defaultsLoader, filepath.Join(t.TempDir(), "absent.tsx"))

	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRoot_ConfigLoadErrorPropagates(t *testing.T) {
	t.Parallel()

	errBroken := errors.New("broken config")

	failingLoader := func(string) (*config.Config, error) {
		return nil, errBroken
	}

	_, _, err := executeRoot(failingLoader, "whatever.tsx")

	require.ErrorIs(t, err, errBroken)
}

func TestRoot_VerboseLogsToStderr(t *testing.T) {
	t.Parallel()

	path := writeSource(t, `import { useEffect, useState } from "react";`+"\n")

	_, errOut, err := executeRoot(defaultsLoader, "--verbose", path)

	require.NoError(t, err)
	assert.Contains(t, errOut, "processed file")
	assert.Contains(t, errOut, "changed=true")
}

func TestRoot_RejectsExtraArguments(t *testing.T) {
	t.Parallel()

	cmd := newRootCommandWithDeps(defaultsLoader)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"one.tsx", "two.tsx"})

	require.Error(t, cmd.Execute())
}

func TestRoot_FlagsRegistered(t *testing.T) {
	t.Parallel()

	cmd := newRootCommandWithDeps(defaultsLoader)

	require.NotNil(t, cmd.Flags().Lookup("dry-run"))
	require.NotNil(t, cmd.Flags().Lookup("diff"))
	require.NotNil(t, cmd.Flags().Lookup("no-color"))
	require.NotNil(t, cmd.Flags().Lookup("backup-suffix"))
	require.NotNil(t, cmd.Flags().Lookup("config"))
}
