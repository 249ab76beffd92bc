package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"speakerexport/internal/domain"
)

type exportService struct {
	fetcher        domain.ScheduleFetcher
	writer         domain.RowWriter
	repo           domain.ExportRepository // optional
	mailer         domain.Mailer           // optional
	notifyAddress  string
	eventID        string
	outputFile     string
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewExportService returns an ExportService that fetches the event schedule,
// joins speakers with their sessions, and writes the CSV to outputFile.
// repo and mailer may be nil; archiving and notification are then skipped.
func NewExportService(fetcher domain.ScheduleFetcher, writer domain.RowWriter, repo domain.ExportRepository, mailer domain.Mailer, notifyAddress, eventID, outputFile string, logger *slog.Logger, timeout time.Duration) domain.ExportService {
	return &exportService{
		fetcher:        fetcher,
		writer:         writer,
		repo:           repo,
		mailer:         mailer,
		notifyAddress:  notifyAddress,
		eventID:        eventID,
		outputFile:     outputFile,
		logger:         logger,
		contextTimeout: timeout,
	}
}

func (s *exportService) Run(ctx context.Context) (*domain.ExportRun, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	runID := uuid.NewString()
	logger := s.logger.With("run_id", runID, "event_id", s.eventID)

	// 1. Fetch both collections; the join only starts once both are complete.
	logger.Info("fetching speakers")
	rawSpeakers, err := s.fetcher.FetchSpeakers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch speakers: %w", err)
	}
	logger.Info("fetching sessions")
	rawSessions, err := s.fetcher.FetchSessions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sessions: %w", err)
	}

	if len(rawSpeakers) == 0 {
		logger.Warn("no speaker data to process")
		return nil, domain.ErrNoSpeakerData
	}

	// 2. Normalize and join in memory.
	speakers := make([]domain.SpeakerRecord, 0, len(rawSpeakers))
	for _, raw := range rawSpeakers {
		speakers = append(speakers, NormalizeSpeaker(raw))
	}
	sessions := make([]domain.SessionRecord, 0, len(rawSessions))
	for _, raw := range rawSessions {
		sessions = append(sessions, NormalizeSession(raw))
	}

	rows, stats := Join(speakers, sessions)
	if stats.DuplicateSpeakerIDs > 0 {
		logger.Warn("duplicate speaker ids in upstream data, keeping first occurrence", "count", stats.DuplicateSpeakerIDs)
	}
	if stats.MissingSpeakerRefs > 0 {
		logger.Warn("sessions referenced unknown speakers, rows skipped", "count", stats.MissingSpeakerRefs)
	}
	logger.Info("joined schedule data",
		"speakers", len(speakers),
		"sessions", len(sessions),
		"sessions_with_recording", stats.SessionsWithRecording,
		"rows", len(rows))

	// 3. Write the full sequence once.
	if err := s.writer.Write(s.outputFile, rows); err != nil {
		return nil, fmt.Errorf("failed to write output file %s: %w", s.outputFile, err)
	}
	logger.Info("output file written", "file", s.outputFile, "rows", len(rows))

	run := &domain.ExportRun{
		ID:                  runID,
		EventID:             s.eventID,
		RowCount:            len(rows),
		MissingSpeakerRefs:  stats.MissingSpeakerRefs,
		DuplicateSpeakerIDs: stats.DuplicateSpeakerIDs,
		OutputFile:          s.outputFile,
		CreatedAt:           time.Now(),
	}

	// 4. Archive and notify are best-effort: the CSV is the deliverable.
	if s.repo != nil {
		if err := s.repo.SaveRun(ctx, run, rows); err != nil {
			logger.Error("failed to archive export run", "error", err)
		}
	}
	if s.mailer != nil && s.notifyAddress != "" {
		subject := fmt.Sprintf("Speaker export for %s complete", s.eventID)
		body := fmt.Sprintf("Generated %s with %d rows.\nSessions with recordings: %d. Skipped rows (unknown speaker): %d.\n",
			s.outputFile, len(rows), stats.SessionsWithRecording, stats.MissingSpeakerRefs)
		if err := s.mailer.Send(s.notifyAddress, subject, body); err != nil {
			logger.Error("failed to send completion notification", "error", err)
		}
	}

	return run, nil
}
