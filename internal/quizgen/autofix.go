package quizgen

import (
	"strconv"
	"strings"

	"study-assistant/internal/domain"
)

// Correction records one normalization applied by AutoFix. Question is
// 1-based; 0 means the document root.
type Correction struct {
	Question int
	Fix      string
}

// AutoFix normalizes common model mistakes in a parsed document, in place.
// It only renames keys and coerces types, never touches wording or question
// count, and is idempotent. Shapes it does not recognize are left for the
// validator to reject.
func AutoFix(doc interface{}) []Correction {
	root, ok := doc.(map[string]interface{})
	if !ok {
		return nil
	}

	var fixes []Correction
	if v, hasLegacy := root["quiz_type"]; hasLegacy {
		if _, hasVariant := root["quiz_variant"]; !hasVariant {
			root["quiz_variant"] = v
			delete(root, "quiz_type")
			fixes = append(fixes, Correction{Fix: "renamed quiz_type to quiz_variant"})
		}
	}

	questions, ok := root["questions"].([]interface{})
	if !ok {
		return fixes
	}
	rootVariant, _ := root["quiz_variant"].(string)

	for i, item := range questions {
		q, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		for _, fix := range fixQuestion(q, rootVariant) {
			fixes = append(fixes, Correction{Question: i + 1, Fix: fix})
		}
	}
	return fixes
}

func fixQuestion(q map[string]interface{}, rootVariant string) []string {
	var fixes []string

	if text, hasQuestion := q["question"]; hasQuestion {
		if _, hasPrompt := q["prompt"]; !hasPrompt {
			q["prompt"] = text
			delete(q, "question")
			fixes = append(fixes, "renamed question to prompt")
		}
	}

	variant, ok := q["type"].(string)
	if !ok {
		variant = rootVariant
	}

	switch domain.QuizVariant(variant) {
	case domain.VariantMCQ:
		if opts, isList := q["options"].([]interface{}); isList && len(opts) == len(domain.OptionKeys) {
			mapped := make(map[string]interface{}, len(opts))
			for i, key := range domain.OptionKeys {
				mapped[key] = opts[i]
			}
			q["options"] = mapped
			fixes = append(fixes, "converted options list to A-D mapping")
		}
	case domain.VariantTrueFalse:
		if grading, isMap := q["grading"].(map[string]interface{}); isMap {
			if s, isString := grading["correct_answer"].(string); isString {
				switch strings.ToLower(strings.TrimSpace(s)) {
				case "true":
					grading["correct_answer"] = true
					fixes = append(fixes, "coerced correct_answer string to boolean")
				case "false":
					grading["correct_answer"] = false
					fixes = append(fixes, "coerced correct_answer string to boolean")
				}
			}
		}
	}

	// Parsed JSON numbers are float64, so the coerced id uses the same representation.
	if s, isString := q["id"].(string); isString {
		if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
			q["id"] = float64(n)
			fixes = append(fixes, "coerced string id to integer")
		}
	}

	return fixes
}
