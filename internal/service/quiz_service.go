package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"study-assistant/internal/config"
	"study-assistant/internal/domain"
	"study-assistant/internal/quizgen"
	"study-assistant/internal/util"

	"go.uber.org/zap"
)

// DefaultQuizListLimit bounds ListQuizzes when the caller gives no limit.
const DefaultQuizListLimit = 20

// QuizGenerator runs the structured-output pipeline for one request.
type QuizGenerator interface {
	Generate(ctx context.Context, req domain.QuizRequest, supplier domain.ContextSupplier) (*domain.QuizDocument, error)
}

var _ QuizGenerator = (*quizgen.Generator)(nil)

// QuizService generates quizzes from a subject's material and keeps them.
type QuizService interface {
	GenerateQuiz(ctx context.Context, subjectID string, req domain.QuizRequest) (*domain.QuizRecord, error)
	GetQuiz(ctx context.Context, id string) (*domain.QuizRecord, error)
	ListQuizzes(ctx context.Context, subjectID string, limit int) ([]*domain.QuizRecord, error)
}

type quizService struct {
	subjects     domain.SubjectRepository
	records      domain.QuizRecordRepository
	suppliers    SupplierFactory
	generator    QuizGenerator
	defaultDepth int
	maxQuestions int
	logger       *zap.Logger
}

func NewQuizService(
	subjects domain.SubjectRepository,
	records domain.QuizRecordRepository,
	suppliers SupplierFactory,
	generator QuizGenerator,
	cfg config.QuizConfig,
	logger *zap.Logger,
) QuizService {
	return &quizService{
		subjects:     subjects,
		records:      records,
		suppliers:    suppliers,
		generator:    generator,
		defaultDepth: cfg.DefaultContextDepth,
		maxQuestions: cfg.MaxQuestions,
		logger:       logger,
	}
}

func (s *quizService) GenerateQuiz(ctx context.Context, subjectID string, req domain.QuizRequest) (*domain.QuizRecord, error) {
	req.Topic = strings.TrimSpace(req.Topic)
	if req.ContextDepth == 0 {
		req.ContextDepth = s.defaultDepth
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if s.maxQuestions > 0 && req.QuestionCount > s.maxQuestions {
		return nil, domain.NewInvalidInputError(
			fmt.Sprintf("question_count must be at most %d, got %d", s.maxQuestions, req.QuestionCount))
	}
	if _, err := requireSubject(ctx, s.subjects, subjectID); err != nil {
		return nil, err
	}

	doc, err := s.generator.Generate(ctx, req, s.suppliers(subjectID))
	if err != nil {
		return nil, s.mapGenerationError(subjectID, req, err)
	}

	record := &domain.QuizRecord{
		ID:        util.NewULID(),
		SubjectID: subjectID,
		Topic:     req.Topic,
		Variant:   req.Variant,
		Document:  doc,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.records.SaveQuizRecord(ctx, record); err != nil {
		return nil, domain.NewInternalError("Failed to save generated quiz", err)
	}

	s.logger.Info("Quiz generated and saved",
		zap.String("record_id", record.ID),
		zap.String("subject_id", subjectID),
		zap.String("variant", string(req.Variant)),
		zap.Int("questions", len(doc.Questions)))
	return record, nil
}

func (s *quizService) mapGenerationError(subjectID string, req domain.QuizRequest, err error) error {
	log := s.logger.With(zap.String("subject_id", subjectID), zap.String("topic", req.Topic))

	var genErr *quizgen.GenerationError
	switch {
	case errors.Is(err, quizgen.ErrNoContext):
		log.Warn("No context for quiz topic")
		return domain.NewNoContextError(req.Topic)
	case errors.As(err, &genErr):
		log.Error("Quiz generation failed", zap.Stringer("kind", genErr.Kind), zap.Int("attempts", genErr.Attempts))
		return domain.NewQuizGenerationError(err).
			WithContext("kind", genErr.Kind.String()).
			WithContext("attempts", genErr.Attempts).
			WithContext("reason", genErr.Message)
	}
	if _, ok := asDomainError(err); ok {
		return err
	}
	log.Error("Quiz generation aborted", zap.Error(err))
	return domain.NewInternalError("Failed to generate quiz", err)
}

func (s *quizService) GetQuiz(ctx context.Context, id string) (*domain.QuizRecord, error) {
	record, err := s.records.GetQuizRecordByID(ctx, id)
	if err != nil {
		return nil, domain.NewInternalError("Failed to load quiz", err)
	}
	if record == nil {
		return nil, domain.NewNotFoundError(fmt.Sprintf("Quiz not found: %s", id))
	}
	return record, nil
}

func (s *quizService) ListQuizzes(ctx context.Context, subjectID string, limit int) ([]*domain.QuizRecord, error) {
	if _, err := requireSubject(ctx, s.subjects, subjectID); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = DefaultQuizListLimit
	}
	records, err := s.records.ListQuizRecordsBySubject(ctx, subjectID, limit)
	if err != nil {
		return nil, domain.NewInternalError("Failed to list quizzes", err)
	}
	return records, nil
}
