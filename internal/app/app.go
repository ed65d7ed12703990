// Package app wires configuration, storage, model backends and services
// into the components used by the command line entrypoints.
package app

import (
	"context"
	"errors"
	"fmt"

	"study-assistant/internal/adapter"
	"study-assistant/internal/adapter/embedding"
	"study-assistant/internal/adapter/llm"
	"study-assistant/internal/adapter/pdf"
	"study-assistant/internal/cache"
	"study-assistant/internal/config"
	"study-assistant/internal/database"
	"study-assistant/internal/domain"
	"study-assistant/internal/quizgen"
	"study-assistant/internal/repository"
	"study-assistant/internal/service"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// Container holds the long-lived dependencies of one process.
type Container struct {
	Config   *config.Config
	DB       *sqlx.DB
	Cache    domain.Cache
	Subjects service.SubjectService
	Study    service.StudyService
	Quizzes  service.QuizService

	closers []func() error
}

// New connects to the database (applying pending migrations), the optional
// redis cache and the configured model providers.
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Container, error) {
	c := &Container{Config: cfg}

	db, err := database.NewSQLXDB(cfg.DB)
	if err != nil {
		return nil, err
	}
	c.DB = db
	c.closers = append(c.closers, db.Close)

	if err := database.RunMigrations(db.DB); err != nil {
		c.Close()
		return nil, err
	}

	if cfg.Redis.Address != "" {
		redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			c.Close()
			return nil, err
		}
		c.Cache = adapter.NewRedisCacheAdapter(redisClient)
		c.closers = append(c.closers, redisClient.Close)
		logger.Info("Redis cache initialized", zap.String("address", cfg.Redis.Address))
	} else {
		logger.Warn("Redis cache is not configured. Running without cache.")
	}

	embedder, err := embedding.NewEmbeddingService(cfg, c.Cache, logger)
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("failed to initialize embedding service: %w", err)
	}
	logger.Info("Embedding service initialized", zap.String("source", cfg.Embedding.Source))

	backend, closeBackend, err := llm.NewBackend(ctx, cfg.LLM)
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("failed to initialize generation backend: %w", err)
	}
	c.closers = append(c.closers, closeBackend)
	logger.Info("Generation backend initialized", zap.String("provider", cfg.LLM.Provider))

	subjectRepo := repository.NewSubjectRepository(db)
	chunkRepo := repository.NewChunkRepository(db)
	quizRepo := repository.NewQuizRecordRepository(db)
	txManager := repository.NewTransactionManagerAdapter(db)
	suppliers := service.NewVectorSupplierFactory(chunkRepo, embedder)

	generator := quizgen.NewGenerator(backend,
		quizgen.WithMaxAttempts(cfg.Quiz.MaxAttempts),
		quizgen.WithCallTimeout(cfg.LLM.Timeout),
		quizgen.WithLogger(logger.Named("quizgen")),
		quizgen.WithObserver(func(ev quizgen.Event) {
			logger.Debug("Quiz generation transition",
				zap.Int("attempt", ev.Attempt),
				zap.Stringer("from", ev.From),
				zap.Stringer("to", ev.To),
				zap.Stringer("outcome", ev.Outcome.Kind),
				zap.Bool("repaired", ev.Repaired))
		}),
	)

	c.Subjects = service.NewSubjectService(subjectRepo, subjectRepo, chunkRepo, txManager,
		pdf.NewParser(), embedder, cfg.Ingestion, logger.Named("subjects"))
	c.Study = service.NewStudyService(subjectRepo, suppliers, backend, cfg.LLM, cfg.Study, logger.Named("study"))
	c.Quizzes = service.NewQuizService(subjectRepo, quizRepo, suppliers, generator, cfg.Quiz, logger.Named("quiz"))
	return c, nil
}

// Close releases resources in reverse order of acquisition.
func (c *Container) Close() error {
	var errs []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	c.closers = nil
	return errors.Join(errs...)
}
