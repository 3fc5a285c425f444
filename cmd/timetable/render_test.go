package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const snapshotBody = `{
	"weekStart": "2025-01-06",
	"weekEnd": "2025-01-12",
	"aircraft": [{
		"aircraftId": 3,
		"tail": "4R-ABC",
		"bars": [
			{"day": "WEDNESDAY", "startMinute": 480, "endMinute": 600, "label": "CMB → DXB", "tripId": 7, "color": "BLUE"},
			{"day": "WEDNESDAY", "startMinute": 660, "endMinute": 780, "label": "DXB → CMB", "tripId": 7, "color": "BLUE"}
		]
	}]
}`

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	root := newRootCmd(&stdout, &stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), err
}

func writeSnapshot(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "week.json")
	require.NoError(t, os.WriteFile(path, []byte(snapshotBody), 0o600))

	return path
}

func TestRenderCmd(t *testing.T) {
	input := writeSnapshot(t)

	t.Run("text_to_stdout", func(t *testing.T) {
		out, err := execute(t, "render", "--input", input, "--width", "144")
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(out, "Week 2025-01-06 to 2025-01-12, hub CMB\n"))
		assert.Contains(t, out, "4R-ABC (#3)")
		assert.Contains(t, out, "~~~~~~")
	})

	t.Run("pdf_to_file", func(t *testing.T) {
		output := filepath.Join(t.TempDir(), "week.pdf")

		out, err := execute(t, "render", "-i", input, "--format", "PDF", "-o", output, "--hub", "cmb")
		require.NoError(t, err)
		assert.Empty(t, out)

		data, err := os.ReadFile(output)
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
	})

	t.Run("other_hub_has_no_turnaround", func(t *testing.T) {
		out, err := execute(t, "render", "--input", input, "--hub", "DXB", "--width", "144")
		require.NoError(t, err)
		assert.NotContains(t, out, "~")
	})

	t.Run("unknown_format", func(t *testing.T) {
		_, err := execute(t, "render", "--input", input, "--format", "svg")
		assert.ErrorContains(t, err, `unknown format "svg"`)
	})

	t.Run("missing_input_flag", func(t *testing.T) {
		_, err := execute(t, "render")
		assert.ErrorContains(t, err, `required flag(s) "input" not set`)
	})

	t.Run("missing_file", func(t *testing.T) {
		_, err := execute(t, "render", "--input", filepath.Join(t.TempDir(), "none.json"))
		assert.ErrorContains(t, err, "failed to load snapshot")
	})
}
