package dto

import (
	"time"

	"study-assistant/internal/domain"
)

// GenerateQuizRequest is the body of POST /subjects/{id}/quizzes
// @Description Quiz generation parameters. context_depth 0 uses the server default.
type GenerateQuizRequest struct {
	Topic         string `json:"topic" example:"TCP congestion control"`
	QuestionCount int    `json:"question_count" example:"5"`
	QuizVariant   string `json:"quiz_variant" example:"mcq" enums:"mcq,short_answer,true_false"`
	Difficulty    string `json:"difficulty" example:"intermediate"`
	ContextDepth  int    `json:"context_depth,omitempty" example:"3"`
}

// ToDomain converts the request body into a quiz request.
func (r GenerateQuizRequest) ToDomain() domain.QuizRequest {
	return domain.QuizRequest{
		Topic:         r.Topic,
		QuestionCount: r.QuestionCount,
		Variant:       domain.QuizVariant(r.QuizVariant),
		Difficulty:    r.Difficulty,
		ContextDepth:  r.ContextDepth,
	}
}

// QuizRecordResponse represents a stored quiz in the API response
type QuizRecordResponse struct {
	ID          string               `json:"id"`
	SubjectID   string               `json:"subject_id"`
	Topic       string               `json:"topic"`
	QuizVariant string               `json:"quiz_variant"`
	CreatedAt   time.Time            `json:"created_at"`
	Quiz        *domain.QuizDocument `json:"quiz"`
}

type QuizListResponse struct {
	Quizzes []QuizRecordResponse `json:"quizzes"`
}

func NewQuizRecordResponse(r *domain.QuizRecord) QuizRecordResponse {
	return QuizRecordResponse{
		ID:          r.ID,
		SubjectID:   r.SubjectID,
		Topic:       r.Topic,
		QuizVariant: string(r.Variant),
		CreatedAt:   r.CreatedAt,
		Quiz:        r.Document,
	}
}

// HealthResponse reports the state of each dependency.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}
