package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumedit/internal/application"
	"resumedit/internal/domain"
)

func runCLI(t *testing.T, dir string, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("RESUMEDIT_DATA_DIR", dir)
	t.Setenv("RESUMEDIT_STORAGE", "file")
	t.Setenv("RESUMEDIT_LOG_LEVEL", "error")

	// Flag values outlive a single Execute
	dataDir, storage = "", ""
	exportOutput, exportNoClipboard, resetYes = "", false, false

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	require.NoError(t, shutdown())
	return out.String(), err
}

func TestSetAndGet(t *testing.T) {
	dir := t.TempDir()

	out, err := runCLI(t, dir, "", "set", "contact.email", "me@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Updated contact.email\n", out)

	out, err = runCLI(t, dir, "", "get", "contact.email")
	require.NoError(t, err)
	assert.Equal(t, "me@example.com\n", out)
}

func TestSetFromStdin(t *testing.T) {
	dir := t.TempDir()

	_, err := runCLI(t, dir, "Line one\n\nLine two\n", "set", "summary", "-")
	require.NoError(t, err)

	out, err := runCLI(t, dir, "", "get", "summary")
	require.NoError(t, err)
	assert.Equal(t, "Line one\n\nLine two\n", out)
}

func TestGetUnknownPath(t *testing.T) {
	_, err := runCLI(t, t.TempDir(), "", "get", "contact.fax")
	assert.ErrorIs(t, err, domain.ErrPathNotFound)
}

func TestEntryCommands(t *testing.T) {
	dir := t.TempDir()
	count := len(domain.Default().Education)

	out, err := runCLI(t, dir, "", "add-entry", "education")
	require.NoError(t, err)
	assert.Contains(t, out, "Added education[")

	_, err = runCLI(t, dir, "", "set-entry", "education", "0", "school", "Open University")
	require.NoError(t, err)

	out, err = runCLI(t, dir, "", "show")
	require.NoError(t, err)
	var doc domain.Document
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	require.Len(t, doc.Education, count+1)
	assert.Equal(t, "Open University", doc.Education[0].School)

	_, err = runCLI(t, dir, "", "remove-entry", "education", "x")
	assert.ErrorContains(t, err, "invalid index")

	_, err = runCLI(t, dir, "", "remove-entry", "education", "99")
	assert.ErrorIs(t, err, domain.ErrIndexOutOfRange)
}

func TestPaths(t *testing.T) {
	out, err := runCLI(t, t.TempDir(), "", "paths", "email")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "contact.email"), "got %q", out)
}

func TestExport(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "out", "resume.json")

	out, err := runCLI(t, dir, "", "export", "--no-clipboard", "--output", output)
	require.NoError(t, err)
	assert.Equal(t, "Exported to "+output+"\n", out)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  \"name\": ")
}

func TestResetRequiresConfirmation(t *testing.T) {
	dir := t.TempDir()

	_, err := runCLI(t, dir, "", "set", "name", "Someone Else")
	require.NoError(t, err)

	_, err = runCLI(t, dir, "", "reset")
	assert.ErrorIs(t, err, application.ErrResetNotConfirmed)

	_, err = runCLI(t, dir, "", "reset", "--yes")
	require.NoError(t, err)

	out, err := runCLI(t, dir, "", "get", "name")
	require.NoError(t, err)
	assert.Equal(t, domain.Default().Name+"\n", out)
}

func TestInvalidStorageFlag(t *testing.T) {
	dir := t.TempDir()

	_, err := runCLI(t, dir, "", "--storage", "redis", "show")
	assert.ErrorContains(t, err, "invalid config")

	entries, readErr := os.ReadDir(dir)
	require.NoError(t, readErr)
	assert.Empty(t, entries, "no storage should be opened")
}
