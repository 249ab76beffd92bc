package csvfile

import (
	"encoding/csv"
	"fmt"
	"os"

	"speakerexport/internal/domain"
)

type csvWriter struct{}

// NewWriter returns a RowWriter that serializes rows to a CSV file.
func NewWriter() domain.RowWriter {
	return &csvWriter{}
}

// Write creates path and writes the header plus all rows. The caller hands
// over the complete sequence; nothing is written incrementally across calls.
func (w *csvWriter) Write(path string, rows []domain.OutputRow) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	cw := csv.NewWriter(f)
	if err := cw.Write(domain.OutputColumns); err != nil {
		f.Close()
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, row := range rows {
		record := []string{
			row.FullName,
			row.SessionTitle,
			row.RecordingURL,
			row.LinkedIn,
			row.BlueSky,
			row.Twitter,
			row.Instagram,
		}
		if err := cw.Write(record); err != nil {
			f.Close()
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		f.Close()
		return fmt.Errorf("failed to flush output file: %w", err)
	}
	return f.Close()
}
