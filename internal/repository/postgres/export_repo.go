package postgres

import (
	"context"
	"database/sql"

	"speakerexport/internal/domain"
)

type ExportRepository struct {
	DB *sql.DB
}

func NewExportRepository(db *sql.DB) domain.ExportRepository {
	return &ExportRepository{
		DB: db,
	}
}

// SaveRun archives one export run and its output rows in a single
// transaction, so the archive never holds a partial run.
func (r *ExportRepository) SaveRun(ctx context.Context, run *domain.ExportRun, rows []domain.OutputRow) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	runQuery := `
		INSERT INTO export_runs (id, event_id, row_count, missing_speaker_refs, duplicate_speaker_ids, output_file, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	if _, err := tx.ExecContext(ctx, runQuery, run.ID, run.EventID, run.RowCount, run.MissingSpeakerRefs, run.DuplicateSpeakerIDs, run.OutputFile, run.CreatedAt); err != nil {
		tx.Rollback()
		return err
	}

	rowQuery := `
		INSERT INTO export_rows (run_id, position, full_name, session_title, recording_url, linkedin_url, bluesky_url, twitter_url, instagram_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	for i, row := range rows {
		if _, err := tx.ExecContext(ctx, rowQuery, run.ID, i, row.FullName, row.SessionTitle, row.RecordingURL, row.LinkedIn, row.BlueSky, row.Twitter, row.Instagram); err != nil {
			tx.Rollback()
			return err
		}
	}

	return tx.Commit()
}
