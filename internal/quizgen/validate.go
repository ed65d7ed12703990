package quizgen

import (
	"encoding/json"
	"strings"

	"study-assistant/internal/domain"
)

var (
	rootKeys     = []string{"quiz_id", "difficulty", "quiz_variant", "questions"}
	questionKeys = []string{"id", "type", "prompt", "grading", "explanation"}
)

// Validate checks an auto-fixed document against the rules of the requested
// variant and count, stopping at the first violation. It never mutates doc.
// A document that passes is decoded into a typed QuizDocument.
func Validate(doc interface{}, variant domain.QuizVariant, questionCount int) Outcome {
	spec, err := Lookup(variant)
	if err != nil {
		return invalid(KindContent, "%v", err)
	}

	root, ok := doc.(map[string]interface{})
	if !ok {
		return invalid(KindStructural, "quiz must be a JSON object")
	}
	for _, key := range rootKeys {
		if _, present := root[key]; !present {
			return invalid(KindStructural, "missing top level key %q", key)
		}
	}
	questions, ok := root["questions"].([]interface{})
	if !ok {
		return invalid(KindStructural, "questions must be an array")
	}
	if len(questions) == 0 {
		return invalid(KindContent, "questions array is empty")
	}

	if len(questions) != questionCount {
		return invalid(KindContent, "expected %d questions, got %d", questionCount, len(questions))
	}

	for i, item := range questions {
		if o := checkQuestion(item, spec); o != nil {
			return o.at(i + 1)
		}
	}

	for i, item := range questions {
		id, ok := asInt(item.(map[string]interface{})["id"])
		if !ok {
			return invalid(KindStructural, "question id must be an integer").at(i + 1)
		}
		if id != i+1 {
			return invalid(KindStructural, "question ids must run 1..%d in order, found %d at position %d",
				questionCount, id, i+1).at(i + 1)
		}
	}

	if tag, _ := root["quiz_variant"].(string); tag != string(variant) {
		return invalid(KindContent, "quiz_variant must be %q, got %q", string(variant), tag)
	}

	return decode(root)
}

func checkQuestion(item interface{}, spec *VariantSpec) *Outcome {
	q, ok := item.(map[string]interface{})
	if !ok {
		return structural("question must be an object")
	}
	for _, key := range questionKeys {
		if _, present := q[key]; !present {
			return structural("missing question field %q", key)
		}
	}
	if _, ok := q["grading"].(map[string]interface{}); !ok {
		return structural("grading must be an object")
	}

	qType, ok := q["type"].(string)
	if !ok {
		return structural("type must be a string")
	}
	if qType != string(spec.Variant) {
		return content("question type mismatch: expected %q, got %q", string(spec.Variant), qType)
	}

	for _, key := range []string{"prompt", "explanation"} {
		text, ok := q[key].(string)
		if !ok {
			return structural("%s must be a string", key)
		}
		if strings.TrimSpace(text) == "" {
			return content("%s cannot be empty", key)
		}
	}

	return spec.check(q)
}

// decode re-encodes the checked tree and decodes it into the typed model.
func decode(root map[string]interface{}) Outcome {
	raw, err := json.Marshal(root)
	if err != nil {
		return invalid(KindStructural, "re-encoding document: %v", err)
	}
	var doc domain.QuizDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return invalid(KindStructural, "decoding document: %v", err)
	}
	return validOutcome(&doc)
}

// Evaluate runs one raw response through sanitize, parse, auto-fix and
// validate.
func Evaluate(raw string, variant domain.QuizVariant, questionCount int) (Outcome, []Correction) {
	cleaned := Sanitize(raw)
	if cleaned == "" {
		return invalid(KindMalformed, "response contains no JSON"), nil
	}

	var doc interface{}
	if err := json.Unmarshal([]byte(cleaned), &doc); err != nil {
		return invalid(KindMalformed, "invalid JSON: %v", err), nil
	}

	fixes := AutoFix(doc)
	return Validate(doc, variant, questionCount), fixes
}
