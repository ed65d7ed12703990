// Command ingest creates a subject when needed and loads study material into it.
//
//	ingest -subject bio-101 -name "Introductory Biology" notes.pdf lecture1.md
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"study-assistant/internal/app"
	"study-assistant/internal/config"
	"study-assistant/internal/domain"
	"study-assistant/internal/logger"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	subjectID := flag.String("subject", "", "subject id (letters, digits, - and _)")
	displayName := flag.String("name", "", "display name used when the subject is created")
	flag.Parse()

	if *subjectID == "" || flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: ingest -subject <id> [-name <display name>] <file>...")
		os.Exit(2)
	}

	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	l := logger.Get()
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	container, err := app.New(ctx, cfg, l)
	if err != nil {
		l.Fatal("Failed to initialize application", zap.Error(err))
	}
	defer container.Close()

	if err := run(ctx, container, *subjectID, *displayName, flag.Args(), l); err != nil {
		l.Error("Ingestion failed", zap.String("subject_id", *subjectID), zap.Error(err))
		container.Close()
		logger.Sync()
		os.Exit(1)
	}
}

func run(ctx context.Context, c *app.Container, subjectID, displayName string, paths []string, l *zap.Logger) error {
	_, err := c.Subjects.CreateSubject(ctx, subjectID, displayName)
	var domainErr *domain.DomainError
	switch {
	case err == nil:
		l.Info("Subject created", zap.String("subject_id", subjectID))
	case errors.As(err, &domainErr) && domainErr.Code == domain.CodeSubjectExists:
		l.Info("Using existing subject", zap.String("subject_id", subjectID))
	default:
		return err
	}

	report, err := c.Subjects.IngestFiles(ctx, subjectID, paths)
	if err != nil {
		if report != nil && len(report.Ingested) > 0 {
			l.Warn("Some files were stored before the failure",
				zap.String("subject_id", subjectID), zap.Strings("ingested", report.Ingested))
		}
		return err
	}
	l.Info("Ingestion complete",
		zap.String("subject_id", subjectID),
		zap.Strings("ingested", report.Ingested),
		zap.Strings("skipped", report.Skipped),
		zap.Int("chunks", report.Chunks))
	return nil
}
