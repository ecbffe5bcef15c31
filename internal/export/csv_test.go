package export

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balkashynov/shiftr/internal/models"
)

var sample = []models.BreakInterval{
	{ID: 1, Date: "2026-10-19", Start: "10:00:00", End: "10:15:00", DurationMinutes: 15},
	{ID: 2, Date: "2026-10-19", Start: "12:00:00", End: "12:30:00", DurationMinutes: 30},
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sample))

	want := "Date,Start Time,End Time,Duration\n" +
		"2026-10-19,10:00:00,10:15:00,15 mins\n" +
		"2026-10-19,12:00:00,12:30:00,30 mins\n"
	assert.Equal(t, want, buf.String())
}

func TestExportFile(t *testing.T) {
	dir := t.TempDir()

	path, err := ExportFile(dir, "2026-10-19", sample)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "breaks_2026-10-19.csv"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "12:00:00,12:30:00,30 mins")
}

func TestExportFile_EmptyIsNoOp(t *testing.T) {
	dir := t.TempDir()

	path, err := ExportFile(dir, "2026-10-19", nil)
	require.NoError(t, err)
	assert.Empty(t, path)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
