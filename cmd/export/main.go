package main

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"time"

	_ "github.com/lib/pq"

	"speakerexport/config"
	"speakerexport/internal/adapters/csvfile"
	"speakerexport/internal/adapters/email"
	"speakerexport/internal/adapters/sessionize"
	"speakerexport/internal/domain"
	"speakerexport/internal/repository/postgres"
	"speakerexport/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Exit(1)
	}
	logger := config.NewLogger()

	fetcher := sessionize.NewHTTPFetcher(nil, cfg.APIBaseURL, cfg.EventID)
	writer := csvfile.NewWriter()

	var repo domain.ExportRepository
	if cfg.DBUrl != "" {
		db, err := sql.Open("postgres", cfg.DBUrl)
		if err != nil {
			logger.Error("failed to open database", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		repo = postgres.NewExportRepository(db)
	}

	var mailer domain.Mailer
	if cfg.Email.NotifyAddress != "" {
		mailer, err = email.NewMailer(email.MailerConfig{
			Provider:    cfg.Email.Provider,
			FromAddress: cfg.Email.FromAddress,
			FromName:    cfg.Email.FromName,
			SES: email.SESConfig{
				Region:          cfg.Email.Region,
				AccessKeyID:     cfg.Email.AccessKeyID,
				SecretAccessKey: cfg.Email.SecretAccessKey,
			},
		})
		if err != nil {
			logger.Error("failed to create mailer", "error", err)
			os.Exit(1)
		}
	}

	svc := services.NewExportService(fetcher, writer, repo, mailer, cfg.Email.NotifyAddress, cfg.EventID, cfg.OutputFile, logger, 2*time.Minute)

	run, err := svc.Run(context.Background())
	if err != nil {
		if errors.Is(err, domain.ErrNoSpeakerData) {
			logger.Warn("no speaker data to process, exiting")
			return
		}
		logger.Error("export failed", "error", err)
		os.Exit(1)
	}
	logger.Info("export complete", "file", run.OutputFile, "rows", run.RowCount)
}
