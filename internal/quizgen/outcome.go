package quizgen

import (
	"errors"
	"fmt"

	"study-assistant/internal/domain"
)

// Kind classifies why a response was rejected.
type Kind int

const (
	KindValid Kind = iota
	// KindMalformed means the text could not be parsed as JSON, or the backend failed.
	KindMalformed
	// KindStructural means the JSON lacks a required field or has a wrong type.
	KindStructural
	// KindContent means the JSON is well-shaped but breaks the task rules.
	KindContent
)

func (k Kind) String() string {
	switch k {
	case KindValid:
		return "valid"
	case KindMalformed:
		return "malformed"
	case KindStructural:
		return "structural"
	case KindContent:
		return "content"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Repairable reports whether a syntax-only repair request can fix this kind.
func (k Kind) Repairable() bool {
	return k == KindMalformed || k == KindStructural
}

// Outcome is the result of evaluating one response. Document is set only
// when Kind is KindValid.
type Outcome struct {
	Kind          Kind
	Message       string
	QuestionIndex int
	Document      *domain.QuizDocument
}

func (o Outcome) Valid() bool {
	return o.Kind == KindValid
}

func (o Outcome) String() string {
	if o.Valid() {
		return "valid"
	}
	if o.QuestionIndex > 0 {
		return fmt.Sprintf("%s: question %d: %s", o.Kind, o.QuestionIndex, o.Message)
	}
	return fmt.Sprintf("%s: %s", o.Kind, o.Message)
}

func validOutcome(doc *domain.QuizDocument) Outcome {
	return Outcome{Kind: KindValid, Document: doc}
}

func invalid(kind Kind, format string, args ...interface{}) Outcome {
	return Outcome{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func (o Outcome) at(index int) Outcome {
	o.QuestionIndex = index
	return o
}

// ErrNoContext is returned before any backend call when the context supplier
// has nothing for the topic.
var ErrNoContext = errors.New("no context found for topic")

// AttemptRecord is the diagnostic kept for one consumed attempt.
type AttemptRecord struct {
	Attempt int
	Kind    Kind
	Message string
}

// GenerationError is returned when the attempt budget runs out.
type GenerationError struct {
	Kind     Kind
	Message  string
	Attempts int
	History  []AttemptRecord
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("quiz generation failed after %d attempts (%s): %s", e.Attempts, e.Kind, e.Message)
}
