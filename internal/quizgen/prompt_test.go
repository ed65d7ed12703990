package quizgen

import (
	"encoding/json"
	"strings"
	"testing"

	"study-assistant/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_EveryVariantRegistered(t *testing.T) {
	for _, variant := range domain.Variants {
		spec, err := Lookup(variant)
		require.NoError(t, err)
		assert.Equal(t, variant, spec.Variant)
		assert.NotEmpty(t, spec.ExtraRules)

		// The schema shown to the model must itself be a valid one-question quiz.
		var doc interface{}
		require.NoError(t, json.Unmarshal([]byte(spec.DocumentSchema()), &doc), spec.DocumentSchema())
		root := doc.(map[string]interface{})
		root["quiz_variant"] = string(variant)
		outcome := Validate(doc, variant, 1)
		assert.True(t, outcome.Valid(), outcome.String())
	}

	_, err := Lookup("essay")
	assert.Error(t, err)
}

func TestBuildPrompt(t *testing.T) {
	req := domain.QuizRequest{
		Topic:         "TCP reliability",
		QuestionCount: 3,
		Variant:       domain.VariantMCQ,
		Difficulty:    "hard",
		ContextDepth:  2,
	}
	spec, err := Lookup(req.Variant)
	require.NoError(t, err)

	prompt := BuildPrompt(req, []string{"passage one", "passage two"}, spec)

	assert.Contains(t, prompt, "Use ONLY information from the context")
	assert.Contains(t, prompt, "Generate EXACTLY 3 questions")
	assert.Contains(t, prompt, `ALL questions MUST be type "mcq"`)
	assert.Contains(t, prompt, "Do NOT mix question types")
	assert.Contains(t, prompt, "1, 2, 3, ... up to 3")
	assert.Contains(t, prompt, "Start directly with {")
	assert.Contains(t, prompt, "Difficulty level: hard")
	assert.Contains(t, prompt, "None of the above")
	assert.Contains(t, prompt, `"correct_option": "B"`)
	assert.Contains(t, prompt, "passage one\n\npassage two")
	assert.True(t, strings.Index(prompt, "CONTEXT:") < strings.Index(prompt, "TOPIC: TCP reliability"))

	assert.Equal(t, prompt, BuildPrompt(req, []string{"passage one", "passage two"}, spec))
}

func TestBuildRepairPrompt(t *testing.T) {
	raw := `{"quiz_id": "q", "questions": [ {"id": 1,, } ]`

	prompt := BuildRepairPrompt(raw, domain.VariantTrueFalse, 2)

	assert.True(t, isRepairPrompt(prompt))
	assert.Contains(t, prompt, raw)
	assert.Contains(t, prompt, "Exactly 2 questions")
	assert.Contains(t, prompt, `type "true_false"`)
	assert.Contains(t, prompt, "Do NOT change any content")
	assert.NotContains(t, prompt, "CONTEXT:")
}
