package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"study-assistant/internal/config"
	"study-assistant/internal/domain"

	"go.uber.org/zap"
)

// DefaultCheatSheetStyle is used when a cheat sheet request names no style.
const DefaultCheatSheetStyle = "cheat_sheet"

// StudyService answers questions and writes cheat sheets from a subject's material.
type StudyService interface {
	Explain(ctx context.Context, subjectID, question string) (string, error)
	CheatSheet(ctx context.Context, subjectID, topic, style string) (string, error)
}

type studyService struct {
	subjects         domain.SubjectRepository
	suppliers        SupplierFactory
	backend          domain.GenerationBackend
	callTimeout      time.Duration
	explanationDepth int
	summaryDepth     int
	logger           *zap.Logger
}

func NewStudyService(
	subjects domain.SubjectRepository,
	suppliers SupplierFactory,
	backend domain.GenerationBackend,
	llmCfg config.LLMConfig,
	studyCfg config.StudyConfig,
	logger *zap.Logger,
) StudyService {
	return &studyService{
		subjects:         subjects,
		suppliers:        suppliers,
		backend:          backend,
		callTimeout:      llmCfg.Timeout,
		explanationDepth: studyCfg.ExplanationDepth,
		summaryDepth:     studyCfg.SummaryDepth,
		logger:           logger,
	}
}

func (s *studyService) Explain(ctx context.Context, subjectID, question string) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", domain.NewInvalidInputError("question is required")
	}
	passages, err := s.retrieve(ctx, subjectID, question, s.explanationDepth)
	if err != nil {
		return "", err
	}
	return s.complete(ctx, "explain", buildExplanationPrompt(question, passages))
}

func (s *studyService) CheatSheet(ctx context.Context, subjectID, topic, style string) (string, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return "", domain.NewInvalidInputError("topic is required")
	}
	if style = strings.TrimSpace(style); style == "" {
		style = DefaultCheatSheetStyle
	}
	passages, err := s.retrieve(ctx, subjectID, topic, s.summaryDepth)
	if err != nil {
		return "", err
	}
	return s.complete(ctx, "cheatsheet", buildCheatSheetPrompt(topic, style, passages))
}

func (s *studyService) retrieve(ctx context.Context, subjectID, query string, depth int) ([]string, error) {
	if _, err := requireSubject(ctx, s.subjects, subjectID); err != nil {
		return nil, err
	}
	passages, err := s.suppliers(subjectID).Retrieve(ctx, query, depth)
	if err != nil {
		if _, ok := asDomainError(err); ok {
			return nil, err
		}
		return nil, domain.NewInternalError("Failed to retrieve context", err)
	}
	if len(passages) == 0 {
		return nil, domain.NewNoContextError(query)
	}
	return passages, nil
}

func (s *studyService) complete(ctx context.Context, task, prompt string) (string, error) {
	if s.callTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.callTimeout)
		defer cancel()
	}

	start := time.Now()
	text, err := s.backend.Complete(ctx, prompt)
	if err != nil {
		s.logger.Error("Study completion failed", zap.String("task", task), zap.Error(err))
		if _, ok := asDomainError(err); ok {
			return "", err
		}
		return "", domain.NewLLMServiceError(err)
	}
	s.logger.Info("Study completion finished", zap.String("task", task), zap.Duration("elapsed", time.Since(start)))
	return strings.TrimSpace(text), nil
}

func buildExplanationPrompt(question string, passages []string) string {
	return fmt.Sprintf(`You are a helpful study assistant. Use the following context to answer the question.

Context:
%s

Question: %s
Answer:`, strings.Join(passages, "\n\n"), question)
}

func buildCheatSheetPrompt(topic, style string, passages []string) string {
	return fmt.Sprintf(`You are a study assistant. Create a high-quality summary using ONLY the context below.
Do not invent facts.

Topic: %s
Style: %s

If style is "cheat_sheet", output:
- Key definitions
- Core concepts
- Important lists/steps
- Common pitfalls/mistakes
- Quick recall section (3-6 bullets)
- If formulas exist, include them

Context:
%s

Cheat Sheet:`, topic, style, strings.Join(passages, "\n\n"))
}
