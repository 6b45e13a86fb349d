// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeRoot(t *testing.T, args ...string) error {
	t.Helper()
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	rootCmd.SetOut(io.Discard)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func TestRejectsTooFewArguments(t *testing.T) {
	err := executeRoot(t, "data.csv", "theta")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "3")
}

func TestRejectsTooManyArguments(t *testing.T) {
	err := executeRoot(t, "data.csv", "a", "b", "title", "extra")
	require.Error(t, err)
}

func TestMissingFileErrorNamesPath(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.csv")

	err := executeRoot(t, missing, "a", "b")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CSV not found")
	assert.Contains(t, err.Error(), missing)
}

func TestMissingColumnErrorListsHeader(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "data.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("theta,energy\n0.1,-1.0\n"), 0o644))

	err := executeRoot(t, csvPath, "theta", "fidelity")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "columns not found")
	assert.Contains(t, err.Error(), "theta, energy")
}

func TestEndToEndWritesPNGNextToInput(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "vqe_energy.csv")
	require.NoError(t, os.WriteFile(csvPath,
		[]byte("theta,energy\n0.0,-1.0\n0.5,-1.4\n1.0,-0.9\n"), 0o644))

	require.NoError(t, executeRoot(t, csvPath, "theta", "energy", "VQE sweep"))

	// The output path depends on the input stem and y-column, not the title.
	outPath := filepath.Join(dir, "vqe_energy_energy.png")
	f, err := os.Open(outPath)
	require.NoError(t, err)
	defer f.Close()

	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 960, cfg.Width)
	assert.Equal(t, 720, cfg.Height)
}

func TestNonNumericCellFailsRun(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "data.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("a,b\n1,2\nthree,4\n"), 0o644))

	err := executeRoot(t, csvPath, "a", "b")
	require.Error(t, err)

	// All-or-nothing: no output file on failure.
	_, statErr := os.Stat(filepath.Join(dir, "data_b.png"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestColumnCompletion(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "data.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("chi,energy,error_energy\n2,-1.0,0.5\n"), 0o644))

	cols, directive := columnCompletionFunc(rootCmd, []string{csvPath}, "")
	assert.Equal(t, []string{"chi", "energy", "error_energy"}, cols)
	assert.Equal(t, cobra.ShellCompDirectiveNoFileComp, directive)

	cols, _ = columnCompletionFunc(rootCmd, []string{filepath.Join(dir, "nope.csv")}, "")
	assert.Nil(t, cols)
}
