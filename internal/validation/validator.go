package validation

import (
	"regexp"
	"strings"

	"study-assistant/internal/domain"
	"study-assistant/internal/dto"
)

const (
	maxQuestionLength = 2000
	maxTopicLength    = 500
	maxNameLength     = 200
	maxContextDepth   = 20
)

var ulidPattern = regexp.MustCompile(`^[0-9A-HJKMNP-TV-Z]{26}$`)

// Validator provides request validation functionality
type Validator struct {
	maxQuestions int
}

// NewValidator creates a validator. maxQuestions caps question_count.
func NewValidator(maxQuestions int) *Validator {
	return &Validator{maxQuestions: maxQuestions}
}

// ValidateSubjectID validates a subject id from a path or body.
func (v *Validator) ValidateSubjectID(field, id string) domain.ValidationErrors {
	var errors domain.ValidationErrors
	if strings.TrimSpace(id) == "" {
		return append(errors, domain.NewMissingFieldError(field))
	}
	if domain.ValidateSubjectID(id) != nil {
		errors = append(errors, domain.NewInvalidFormatError(field, id))
	}
	return errors
}

func (v *Validator) ValidateQuizID(id string) domain.ValidationErrors {
	var errors domain.ValidationErrors
	if strings.TrimSpace(id) == "" {
		return append(errors, domain.NewMissingFieldError("id"))
	}
	if !ulidPattern.MatchString(id) {
		errors = append(errors, domain.NewInvalidFormatError("id", id))
	}
	return errors
}

func (v *Validator) ValidateCreateSubjectRequest(req *dto.CreateSubjectRequest) domain.ValidationErrors {
	errors := v.ValidateSubjectID("id", req.ID)
	if len(req.Name) > maxNameLength {
		errors = append(errors, domain.NewOutOfRangeError("name", len(req.Name), 0, maxNameLength))
	}
	return errors
}

func (v *Validator) ValidateExplainRequest(req *dto.ExplainRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors
	if strings.TrimSpace(req.Question) == "" {
		errors = append(errors, domain.NewMissingFieldError("question"))
	} else if len(req.Question) > maxQuestionLength {
		errors = append(errors, domain.NewOutOfRangeError("question", len(req.Question), 1, maxQuestionLength))
	}
	return errors
}

func (v *Validator) ValidateCheatSheetRequest(req *dto.CheatSheetRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors
	if strings.TrimSpace(req.Topic) == "" {
		errors = append(errors, domain.NewMissingFieldError("topic"))
	} else if len(req.Topic) > maxTopicLength {
		errors = append(errors, domain.NewOutOfRangeError("topic", len(req.Topic), 1, maxTopicLength))
	}
	return errors
}

// ValidateGenerateQuizRequest collects every field problem of a quiz request.
func (v *Validator) ValidateGenerateQuizRequest(req *dto.GenerateQuizRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(req.Topic) == "" {
		errors = append(errors, domain.NewMissingFieldError("topic"))
	} else if len(req.Topic) > maxTopicLength {
		errors = append(errors, domain.NewOutOfRangeError("topic", len(req.Topic), 1, maxTopicLength))
	}

	if req.QuestionCount < 1 || (v.maxQuestions > 0 && req.QuestionCount > v.maxQuestions) {
		errors = append(errors, domain.NewOutOfRangeError("question_count", req.QuestionCount, 1, v.maxQuestions))
	}

	if req.QuizVariant == "" {
		errors = append(errors, domain.NewMissingFieldError("quiz_variant"))
	} else if _, err := domain.ParseQuizVariant(req.QuizVariant); err != nil {
		errors = append(errors, domain.NewInvalidFormatError("quiz_variant", req.QuizVariant))
	}

	if req.ContextDepth < 0 || req.ContextDepth > maxContextDepth {
		errors = append(errors, domain.NewOutOfRangeError("context_depth", req.ContextDepth, 0, maxContextDepth))
	}

	return errors
}
