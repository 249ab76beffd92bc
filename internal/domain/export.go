package domain

import (
	"context"
	"errors"
	"time"
)

// ErrNoSpeakerData is returned when the Speakers view fetch succeeds but
// contains no records; the export aborts without writing a file.
var ErrNoSpeakerData = errors.New("no speaker data to process")

// OutputRow is one flattened (speaker, session) pairing ready for tabular
// serialization. Empty strings render as empty CSV fields.
type OutputRow struct {
	FullName     string `json:"full_name"`
	SessionTitle string `json:"session_title"`
	RecordingURL string `json:"recording_url"`
	LinkedIn     string `json:"linkedin_url"`
	BlueSky      string `json:"bluesky_url"`
	Twitter      string `json:"twitter_url"`
	Instagram    string `json:"instagram_url"`
}

// OutputColumns is the CSV header, in the order rows are serialized.
var OutputColumns = []string{
	"Full Name",
	"Session",
	"Recording Url",
	"LinkedIn link",
	"BlueSky link",
	"Twitter link",
	"Instagram link",
}

// ExportRun describes one completed export for the archive and the
// completion notification.
type ExportRun struct {
	ID                  string    `json:"id"`
	EventID             string    `json:"event_id"`
	RowCount            int       `json:"row_count"`
	MissingSpeakerRefs  int       `json:"missing_speaker_refs"`
	DuplicateSpeakerIDs int       `json:"duplicate_speaker_ids"`
	OutputFile          string    `json:"output_file"`
	CreatedAt           time.Time `json:"created_at"`
}

// ScheduleFetcher retrieves raw speaker and session documents from the
// conference API (or a test double). The documents are deserialized JSON
// objects whose shape is owned by the upstream API.
type ScheduleFetcher interface {
	FetchSpeakers(ctx context.Context) ([]map[string]any, error)
	FetchSessions(ctx context.Context) ([]map[string]any, error)
}

// RowWriter serializes the complete row sequence to the given destination.
// It is called at most once per run, after the full sequence is built.
type RowWriter interface {
	Write(path string, rows []OutputRow) error
}

// ExportRepository archives completed runs (infrastructure port, optional).
type ExportRepository interface {
	SaveRun(ctx context.Context, run *ExportRun, rows []OutputRow) error
}

// Mailer defines the contract for sending notifications (infrastructure port).
type Mailer interface {
	Send(to, subject, text string) error
}

// ExportService runs the fetch → normalize → join → write pipeline.
type ExportService interface {
	Run(ctx context.Context) (*ExportRun, error)
}
