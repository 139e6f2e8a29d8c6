package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/maisem/volcanium"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func writeSample(t *testing.T) string {
	t.Helper()
	samples, err := volcanium.ExtractSamples(samplesSource)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "16.input")
	require.NoError(t, os.WriteFile(path, []byte(samples["D16p1"].Input), 0644))
	return path
}

func TestCheck(t *testing.T) {
	out, err := run(t, "check", "--config", "")
	require.NoError(t, err)
	assert.Contains(t, out, "D16p1 sample: 1651")
	assert.Contains(t, out, "D16p2 sample: 1707")
}

func TestSolveCommand(t *testing.T) {
	path := writeSample(t)
	out, err := run(t, "solve", "--config", "", "--input", path, "--log-level", "error")
	require.NoError(t, err)
	assert.Equal(t, "1707", strings.TrimSpace(out))

	out, err = run(t, "solve", "--config", "", "--input", path, "--minutes", "30", "--agents", "1", "--prune")
	require.NoError(t, err)
	assert.Equal(t, "1651", strings.TrimSpace(out))
}

func TestSolveCommandErrors(t *testing.T) {
	_, err := run(t, "solve", "--config", "", "--input", "", "--fetch=false")
	assert.ErrorContains(t, err, "--input or --fetch")

	_, err = run(t, "solve", "--config", "", "--input", writeSample(t), "--agents", "9")
	assert.ErrorIs(t, err, volcanium.ErrInvalidConfig)
}

func TestReduceCommand(t *testing.T) {
	out, err := run(t, "reduce", "--config", "", "--input", writeSample(t))
	require.NoError(t, err)
	assert.Contains(t, out, "6 flow valves, total rate 81")
}
