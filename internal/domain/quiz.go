package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// QuizVariant determines the required shape of every question in a quiz.
type QuizVariant string

const (
	VariantMCQ         QuizVariant = "mcq"
	VariantShortAnswer QuizVariant = "short_answer"
	VariantTrueFalse   QuizVariant = "true_false"
)

// Variants lists the supported quiz variants in a stable order.
var Variants = []QuizVariant{VariantMCQ, VariantShortAnswer, VariantTrueFalse}

// ParseQuizVariant converts a wire tag into a QuizVariant.
func ParseQuizVariant(s string) (QuizVariant, error) {
	for _, v := range Variants {
		if string(v) == s {
			return v, nil
		}
	}
	return "", fmt.Errorf("unsupported quiz variant: %q", s)
}

// OptionKeys are the answer keys of a multiple-choice question, in order.
var OptionKeys = []string{"A", "B", "C", "D"}

// QuizRequest is the immutable input of one quiz generation.
type QuizRequest struct {
	Topic         string      `json:"topic"`
	QuestionCount int         `json:"question_count"`
	Variant       QuizVariant `json:"quiz_variant"`
	Difficulty    string      `json:"difficulty"`
	ContextDepth  int         `json:"context_depth"`
}

// Validate checks the request before any context lookup or model call.
func (r QuizRequest) Validate() error {
	if r.Topic == "" {
		return NewInvalidInputError("topic is required")
	}
	if r.QuestionCount < 1 {
		return NewInvalidInputError(fmt.Sprintf("question_count must be positive, got %d", r.QuestionCount))
	}
	if r.ContextDepth < 1 {
		return NewInvalidInputError(fmt.Sprintf("context_depth must be positive, got %d", r.ContextDepth))
	}
	if _, err := ParseQuizVariant(string(r.Variant)); err != nil {
		return NewInvalidInputError(err.Error())
	}
	return nil
}

// QuizDocument is a generated quiz that passed validation.
type QuizDocument struct {
	QuizID     string      `json:"quiz_id"`
	Difficulty string      `json:"difficulty"`
	Variant    QuizVariant `json:"quiz_variant"`
	Questions  []Question  `json:"questions"`
}

// MCQPayload holds the fields specific to multiple-choice questions.
type MCQPayload struct {
	Options       map[string]string
	CorrectOption string
}

// ShortAnswerPayload holds the fields specific to short-answer questions.
type ShortAnswerPayload struct {
	ExpectedPoints []string
	Keywords       []string
	MaxScore       int
	SampleAnswer   string
}

// TrueFalsePayload holds the fields specific to true/false questions.
type TrueFalsePayload struct {
	CorrectAnswer bool
}

// Question is one quiz item. Exactly one payload is set, matching Variant.
type Question struct {
	ID          int
	Variant     QuizVariant
	Prompt      string
	Explanation string

	MCQ         *MCQPayload
	ShortAnswer *ShortAnswerPayload
	TrueFalse   *TrueFalsePayload
}

type mcqGrading struct {
	CorrectOption string `json:"correct_option"`
}

type shortAnswerGrading struct {
	ExpectedPoints []string `json:"expected_points"`
	Keywords       []string `json:"keywords"`
	MaxScore       int      `json:"max_score"`
}

type trueFalseGrading struct {
	CorrectAnswer bool `json:"correct_answer"`
}

// questionWire is the flat JSON shape of a question.
type questionWire struct {
	ID           int               `json:"id"`
	Type         QuizVariant       `json:"type"`
	Prompt       string            `json:"prompt"`
	Options      json.RawMessage `json:"options,omitempty"`
	Grading      json.RawMessage `json:"grading"`
	SampleAnswer json.RawMessage `json:"sample_answer,omitempty"`
	Explanation  string          `json:"explanation"`
}

func (q Question) MarshalJSON() ([]byte, error) {
	w := questionWire{
		ID:          q.ID,
		Type:        q.Variant,
		Prompt:      q.Prompt,
		Explanation: q.Explanation,
	}

	var grading interface{}
	switch q.Variant {
	case VariantMCQ:
		if q.MCQ == nil {
			return nil, fmt.Errorf("question %d: missing mcq payload", q.ID)
		}
		if q.MCQ.Options != nil {
			options, err := json.Marshal(q.MCQ.Options)
			if err != nil {
				return nil, err
			}
			w.Options = options
		}
		grading = mcqGrading{CorrectOption: q.MCQ.CorrectOption}
	case VariantShortAnswer:
		if q.ShortAnswer == nil {
			return nil, fmt.Errorf("question %d: missing short_answer payload", q.ID)
		}
		if q.ShortAnswer.SampleAnswer != "" {
			sample, err := json.Marshal(q.ShortAnswer.SampleAnswer)
			if err != nil {
				return nil, err
			}
			w.SampleAnswer = sample
		}
		grading = shortAnswerGrading{
			ExpectedPoints: q.ShortAnswer.ExpectedPoints,
			Keywords:       q.ShortAnswer.Keywords,
			MaxScore:       q.ShortAnswer.MaxScore,
		}
	case VariantTrueFalse:
		if q.TrueFalse == nil {
			return nil, fmt.Errorf("question %d: missing true_false payload", q.ID)
		}
		grading = trueFalseGrading{CorrectAnswer: q.TrueFalse.CorrectAnswer}
	default:
		return nil, fmt.Errorf("question %d: unsupported variant %q", q.ID, q.Variant)
	}

	raw, err := json.Marshal(grading)
	if err != nil {
		return nil, err
	}
	w.Grading = raw
	return json.Marshal(w)
}

// UnmarshalJSON decodes the flat wire shape strictly: unknown variants and
// mistyped grading fields are errors. options and sample_answer are only read
// for the variants that use them; elsewhere they are ignored whatever their type.
func (q *Question) UnmarshalJSON(data []byte) error {
	var w questionWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	out := Question{
		ID:          w.ID,
		Variant:     w.Type,
		Prompt:      w.Prompt,
		Explanation: w.Explanation,
	}

	switch w.Type {
	case VariantMCQ:
		var g mcqGrading
		if err := json.Unmarshal(w.Grading, &g); err != nil {
			return fmt.Errorf("mcq grading: %w", err)
		}
		var options map[string]string
		if len(w.Options) > 0 {
			if err := json.Unmarshal(w.Options, &options); err != nil {
				return fmt.Errorf("mcq options: %w", err)
			}
		}
		out.MCQ = &MCQPayload{Options: options, CorrectOption: g.CorrectOption}
	case VariantShortAnswer:
		var g shortAnswerGrading
		if err := json.Unmarshal(w.Grading, &g); err != nil {
			return fmt.Errorf("short_answer grading: %w", err)
		}
		var sample string
		if len(w.SampleAnswer) > 0 {
			if err := json.Unmarshal(w.SampleAnswer, &sample); err != nil {
				return fmt.Errorf("short_answer sample_answer: %w", err)
			}
		}
		out.ShortAnswer = &ShortAnswerPayload{
			ExpectedPoints: g.ExpectedPoints,
			Keywords:       g.Keywords,
			MaxScore:       g.MaxScore,
			SampleAnswer:   sample,
		}
	case VariantTrueFalse:
		var g trueFalseGrading
		if err := json.Unmarshal(w.Grading, &g); err != nil {
			return fmt.Errorf("true_false grading: %w", err)
		}
		out.TrueFalse = &TrueFalsePayload{CorrectAnswer: g.CorrectAnswer}
	default:
		return fmt.Errorf("unsupported question type %q", w.Type)
	}

	*q = out
	return nil
}

// QuizRecord is a generated quiz persisted for a subject.
type QuizRecord struct {
	ID        string
	SubjectID string
	Topic     string
	Variant   QuizVariant
	Document  *QuizDocument
	CreatedAt time.Time
}
