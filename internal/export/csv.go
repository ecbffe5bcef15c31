package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/balkashynov/shiftr/internal/models"
)

var header = []string{"Date", "Start Time", "End Time", "Duration"}

// WriteCSV writes one row per break under a header row
func WriteCSV(w io.Writer, breaks []models.BreakInterval) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, b := range breaks {
		row := []string{b.Date, b.Start, b.End, fmt.Sprintf("%d mins", b.DurationMinutes)}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// FileName is the export file name for date
func FileName(date string) string {
	return fmt.Sprintf("breaks_%s.csv", date)
}

// ExportFile writes breaks to dir/breaks_<date>.csv and returns the path.
// With no breaks nothing is written and the path is empty.
func ExportFile(dir, date string, breaks []models.BreakInterval) (string, error) {
	if len(breaks) == 0 {
		return "", nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	path := filepath.Join(dir, FileName(date))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := WriteCSV(f, breaks); err != nil {
		f.Close()
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}
