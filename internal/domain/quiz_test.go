package domain

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuizRequest_Validate(t *testing.T) {
	valid := QuizRequest{Topic: "TCP", QuestionCount: 3, Variant: VariantMCQ, Difficulty: "easy", ContextDepth: 3}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(r *QuizRequest)
	}{
		{"empty topic", func(r *QuizRequest) { r.Topic = "" }},
		{"zero questions", func(r *QuizRequest) { r.QuestionCount = 0 }},
		{"negative depth", func(r *QuizRequest) { r.ContextDepth = -1 }},
		{"unknown variant", func(r *QuizRequest) { r.Variant = "essay" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := valid
			tt.mutate(&r)
			err := r.Validate()
			var domainErr *DomainError
			require.ErrorAs(t, err, &domainErr)
			assert.Equal(t, CodeInvalidInput, domainErr.Code)
		})
	}
}

func TestQuestion_JSONWireShape(t *testing.T) {
	q := Question{
		ID:          1,
		Variant:     VariantMCQ,
		Prompt:      "Pick one",
		Explanation: "Because.",
		MCQ: &MCQPayload{
			Options:       map[string]string{"A": "a", "B": "b", "C": "c", "D": "d"},
			CorrectOption: "C",
		},
	}

	raw, err := json.Marshal(q)
	require.NoError(t, err)

	var flat map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &flat))
	assert.Equal(t, "mcq", flat["type"])
	assert.Equal(t, "Pick one", flat["prompt"])
	assert.Equal(t, map[string]interface{}{"correct_option": "C"}, flat["grading"])
	assert.NotContains(t, flat, "sample_answer")

	var back Question
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, q, back)
}

func TestQuestion_UnmarshalRejectsMistypedGrading(t *testing.T) {
	var q Question
	err := json.Unmarshal([]byte(`{"id":1,"type":"true_false","prompt":"p","grading":{"correct_answer":"true"},"explanation":"e"}`), &q)
	assert.Error(t, err)

	err = json.Unmarshal([]byte(`{"id":1,"type":"essay","prompt":"p","grading":{},"explanation":"e"}`), &q)
	assert.Error(t, err)
}

func TestQuestion_UnmarshalIgnoresFieldsOfOtherVariants(t *testing.T) {
	var q Question
	err := json.Unmarshal([]byte(`{"id":1,"type":"true_false","prompt":"p","options":["True","False"],"grading":{"correct_answer":true},"explanation":"e"}`), &q)
	require.NoError(t, err)
	require.NotNil(t, q.TrueFalse)
	assert.True(t, q.TrueFalse.CorrectAnswer)
	assert.Nil(t, q.MCQ)

	err = json.Unmarshal([]byte(`{"id":2,"type":"mcq","prompt":"p","options":{"A":"a","B":"b","C":"c","D":"d"},"sample_answer":{"x":1},"grading":{"correct_option":"B"},"explanation":"e"}`), &q)
	require.NoError(t, err)
	require.NotNil(t, q.MCQ)
	assert.Equal(t, "B", q.MCQ.CorrectOption)
	assert.Len(t, q.MCQ.Options, 4)
}

func TestQuestion_UnmarshalRejectsMistypedVariantFields(t *testing.T) {
	var q Question
	err := json.Unmarshal([]byte(`{"id":1,"type":"mcq","prompt":"p","options":["a","b"],"grading":{"correct_option":"A"},"explanation":"e"}`), &q)
	assert.Error(t, err)

	err = json.Unmarshal([]byte(`{"id":1,"type":"short_answer","prompt":"p","sample_answer":7,"grading":{"expected_points":["x"],"keywords":[],"max_score":1},"explanation":"e"}`), &q)
	assert.Error(t, err)
}

func TestQuestion_MarshalRequiresPayload(t *testing.T) {
	_, err := json.Marshal(Question{ID: 1, Variant: VariantTrueFalse, Prompt: "p", Explanation: "e"})
	assert.Error(t, err)
}

func TestValidateSubjectID(t *testing.T) {
	for _, id := range []string{"networks", "CS-101", "os_2024", "a"} {
		assert.NoError(t, ValidateSubjectID(id), id)
	}
	for _, id := range []string{"", "has space", "slash/id", "ünicode", string(make([]byte, 51))} {
		assert.Error(t, ValidateSubjectID(id), id)
	}
}

func TestDomainError_Unwrap(t *testing.T) {
	cause := errors.New("disk full")
	err := NewIngestionError("notes.pdf", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "Failed to ingest file: notes.pdf: disk full", err.Error())

	raw, jsonErr := json.Marshal(err)
	require.NoError(t, jsonErr)
	assert.JSONEq(t, `{"code":"INGESTION_FAILED","message":"Failed to ingest file: notes.pdf"}`, string(raw))
}
