package quizgen

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func deepCopy(t *testing.T, v interface{}) interface{} {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	var out interface{}
	require.NoError(t, json.Unmarshal(b, &out))
	return out
}

func TestAutoFix_OptionsListBecomesMapping(t *testing.T) {
	q := mcqQuestion(1)
	q["options"] = []interface{}{"first", "second", "third", "fourth"}
	doc := parse(t, quizDoc("mcq", q))

	fixes := AutoFix(doc)

	require.Len(t, fixes, 1)
	assert.Equal(t, 1, fixes[0].Question)
	options := doc.(map[string]interface{})["questions"].([]interface{})[0].(map[string]interface{})["options"]
	assert.Equal(t, map[string]interface{}{
		"A": "first",
		"B": "second",
		"C": "third",
		"D": "fourth",
	}, options)
}

func TestAutoFix_OptionsListOfWrongLengthUntouched(t *testing.T) {
	q := mcqQuestion(1)
	q["options"] = []interface{}{"first", "second", "third"}
	doc := parse(t, quizDoc("mcq", q))

	assert.Empty(t, AutoFix(doc))
	options := doc.(map[string]interface{})["questions"].([]interface{})[0].(map[string]interface{})["options"]
	assert.Len(t, options, 3)
}

func TestAutoFix_TrueFalseStrings(t *testing.T) {
	tests := []struct {
		in   interface{}
		want interface{}
	}{
		{in: "true", want: true},
		{in: "TRUE", want: true},
		{in: "False", want: false},
		{in: "maybe", want: "maybe"},
		{in: true, want: true},
		{in: false, want: false},
	}

	for _, tt := range tests {
		q := trueFalseQuestion(1)
		q["grading"] = map[string]interface{}{"correct_answer": tt.in}
		doc := parse(t, quizDoc("true_false", q))

		AutoFix(doc)

		grading := doc.(map[string]interface{})["questions"].([]interface{})[0].(map[string]interface{})["grading"]
		assert.Equal(t, tt.want, grading.(map[string]interface{})["correct_answer"], "input %v", tt.in)
	}
}

func TestAutoFix_BooleanDocumentUnchanged(t *testing.T) {
	doc := parse(t, quizDoc("true_false", questionsOf(trueFalseQuestion, 3)...))
	before := deepCopy(t, doc)

	fixes := AutoFix(doc)

	assert.Empty(t, fixes)
	assert.Equal(t, before, doc)
}

func TestAutoFix_RenamesQuestionToPrompt(t *testing.T) {
	q := trueFalseQuestion(1)
	q["question"] = q["prompt"]
	delete(q, "prompt")
	doc := parse(t, quizDoc("true_false", q))

	AutoFix(doc)

	fixed := doc.(map[string]interface{})["questions"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, "TCP is connection oriented (1).", fixed["prompt"])
	assert.NotContains(t, fixed, "question")
}

func TestAutoFix_KeepsPromptWhenBothPresent(t *testing.T) {
	q := trueFalseQuestion(1)
	q["question"] = "other wording"
	doc := parse(t, quizDoc("true_false", q))

	AutoFix(doc)

	fixed := doc.(map[string]interface{})["questions"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, "TCP is connection oriented (1).", fixed["prompt"])
	assert.Equal(t, "other wording", fixed["question"])
}

func TestAutoFix_StringIDs(t *testing.T) {
	q1, q2 := trueFalseQuestion(1), trueFalseQuestion(2)
	q1["id"] = "1"
	q2["id"] = "two"
	doc := parse(t, quizDoc("true_false", q1, q2))

	AutoFix(doc)

	qs := doc.(map[string]interface{})["questions"].([]interface{})
	assert.Equal(t, float64(1), qs[0].(map[string]interface{})["id"])
	assert.Equal(t, "two", qs[1].(map[string]interface{})["id"])
}

func TestAutoFix_RenamesLegacyVariantKey(t *testing.T) {
	root := quizDoc("mcq", mcqQuestion(1))
	root["quiz_type"] = root["quiz_variant"]
	delete(root, "quiz_variant")
	doc := parse(t, root)

	fixes := AutoFix(doc)

	require.Len(t, fixes, 1)
	assert.Equal(t, 0, fixes[0].Question)
	assert.Equal(t, "mcq", doc.(map[string]interface{})["quiz_variant"])
}

func TestAutoFix_Idempotent(t *testing.T) {
	mcq := mcqQuestion(1)
	mcq["options"] = []interface{}{"a", "b", "c", "d"}
	mcq["id"] = "1"
	mcq["question"] = mcq["prompt"]
	delete(mcq, "prompt")

	tf := trueFalseQuestion(2)
	tf["grading"] = map[string]interface{}{"correct_answer": "false"}

	root := quizDoc("mcq", mcq, tf)
	root["quiz_type"] = "mcq"
	delete(root, "quiz_variant")

	docs := []interface{}{
		parse(t, root),
		parse(t, quizDoc("short_answer", questionsOf(shortAnswerQuestion, 2)...)),
		parse(t, []interface{}{1, 2, 3}),
		parse(t, map[string]interface{}{"questions": "not a list"}),
		nil,
	}

	for i, doc := range docs {
		AutoFix(doc)
		once := deepCopy(t, doc)
		second := AutoFix(doc)
		assert.Empty(t, second, "doc %d", i)
		assert.Equal(t, once, deepCopy(t, doc), "doc %d", i)
	}
}

func TestAutoFix_NeverPanicsOnOddShapes(t *testing.T) {
	odd := []interface{}{
		"string root",
		map[string]interface{}{"questions": []interface{}{"x", 3, nil}},
		map[string]interface{}{"questions": []interface{}{map[string]interface{}{"type": "true_false", "grading": "yes"}}},
		map[string]interface{}{"questions": []interface{}{map[string]interface{}{"type": 7, "options": []interface{}{1, 2, 3, 4}}}},
	}
	for _, doc := range odd {
		assert.NotPanics(t, func() { AutoFix(doc) })
	}
}
