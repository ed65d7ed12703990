package quizgen

import (
	"fmt"
	"strings"

	"study-assistant/internal/domain"
)

// VariantSpec is everything variant-specific about a quiz: the one-question
// template shown to the model, the extra rules and the validator.
type VariantSpec struct {
	Variant    domain.QuizVariant
	Schema     string
	ExtraRules []string
	check      func(q map[string]interface{}) *Outcome
}

var registry = map[domain.QuizVariant]*VariantSpec{
	domain.VariantMCQ: {
		Variant: domain.VariantMCQ,
		Schema: `{
  "id": 1,
  "type": "mcq",
  "prompt": "What is the main purpose of X?",
  "options": {
    "A": "First option",
    "B": "Second option",
    "C": "Third option",
    "D": "Fourth option"
  },
  "grading": {
    "correct_option": "B"
  },
  "explanation": "One sentence explaining the answer."
}`,
		ExtraRules: []string{
			"This quiz is MULTIPLE-CHOICE ONLY.",
			"Do NOT generate true/false or yes/no questions.",
			"Each question MUST have exactly four options keyed A, B, C, D.",
			"All four options must be plausible but only one correct.",
			`Do NOT use options like "All of the above" or "None of the above".`,
		},
		check: checkMCQ,
	},
	domain.VariantShortAnswer: {
		Variant: domain.VariantShortAnswer,
		Schema: `{
  "id": 1,
  "type": "short_answer",
  "prompt": "Explain the concept of X.",
  "grading": {
    "expected_points": ["First key point", "Second key point", "Third key point"],
    "keywords": ["keyword1", "keyword2", "keyword3"],
    "max_score": 3
  },
  "sample_answer": "A sample answer demonstrating the expected response.",
  "explanation": "One sentence explaining what a good answer covers."
}`,
		ExtraRules: []string{
			"This quiz is SHORT ANSWER ONLY.",
			"Questions should require explanation or description.",
			"Provide 3-5 expected points in the grading section.",
			"Include 4-6 relevant keywords.",
			"max_score must be a positive integer.",
		},
		check: checkShortAnswer,
	},
	domain.VariantTrueFalse: {
		Variant: domain.VariantTrueFalse,
		Schema: `{
  "id": 1,
  "type": "true_false",
  "prompt": "X is responsible for Y.",
  "grading": {
    "correct_answer": true
  },
  "explanation": "One sentence justifying the answer."
}`,
		ExtraRules: []string{
			"This quiz is TRUE/FALSE ONLY.",
			"Questions must be statements that are definitively true or false.",
			"Avoid ambiguous statements.",
			"correct_answer must be the JSON boolean true or false, never a string.",
		},
		check: checkTrueFalse,
	},
}

// Lookup returns the spec registered for a variant.
func Lookup(variant domain.QuizVariant) (*VariantSpec, error) {
	spec, ok := registry[variant]
	if !ok {
		return nil, fmt.Errorf("no schema registered for quiz variant %q", variant)
	}
	return spec, nil
}

// DocumentSchema wraps the one-question template in the root document shape.
func (s *VariantSpec) DocumentSchema() string {
	indented := strings.ReplaceAll(s.Schema, "\n", "\n    ")
	return fmt.Sprintf(`{
  "quiz_id": "string",
  "difficulty": "string",
  "quiz_variant": %q,
  "questions": [
    %s
  ]
}`, string(s.Variant), indented)
}

func structural(format string, args ...interface{}) *Outcome {
	o := invalid(KindStructural, format, args...)
	return &o
}

func content(format string, args ...interface{}) *Outcome {
	o := invalid(KindContent, format, args...)
	return &o
}

func checkMCQ(q map[string]interface{}) *Outcome {
	options, ok := q["options"].(map[string]interface{})
	if !ok {
		return structural("mcq options must be an object keyed A, B, C, D")
	}
	if len(options) != len(domain.OptionKeys) {
		return structural("mcq options must have exactly the keys A, B, C, D, got %d keys", len(options))
	}
	for _, key := range domain.OptionKeys {
		raw, present := options[key]
		if !present {
			return structural("mcq options missing key %s", key)
		}
		text, isString := raw.(string)
		if !isString {
			return structural("mcq option %s must be a string", key)
		}
		if strings.TrimSpace(text) == "" {
			return content("mcq option %s cannot be empty", key)
		}
	}

	grading := q["grading"].(map[string]interface{})
	raw, present := grading["correct_option"]
	if !present {
		return structural("grading.correct_option is required")
	}
	correct, isString := raw.(string)
	if !isString {
		return structural("grading.correct_option must be a string")
	}
	for _, key := range domain.OptionKeys {
		if correct == key {
			return nil
		}
	}
	return content("grading.correct_option must be one of A, B, C, D, got %q", correct)
}

func checkTrueFalse(q map[string]interface{}) *Outcome {
	grading := q["grading"].(map[string]interface{})
	raw, present := grading["correct_answer"]
	if !present {
		return structural("grading.correct_answer is required")
	}
	if _, ok := raw.(bool); !ok {
		return structural("grading.correct_answer must be a boolean, got %T", raw)
	}
	return nil
}

func checkShortAnswer(q map[string]interface{}) *Outcome {
	grading := q["grading"].(map[string]interface{})

	if o := checkStringList(grading, "expected_points", true); o != nil {
		return o
	}
	if o := checkStringList(grading, "keywords", false); o != nil {
		return o
	}

	raw, present := grading["max_score"]
	if !present {
		return structural("grading.max_score is required")
	}
	score, ok := asInt(raw)
	if !ok {
		return structural("grading.max_score must be an integer")
	}
	if score < 1 {
		return content("grading.max_score must be positive, got %d", score)
	}

	raw, present = q["sample_answer"]
	if !present {
		return structural("sample_answer is required")
	}
	sample, ok := raw.(string)
	if !ok {
		return structural("sample_answer must be a string")
	}
	if strings.TrimSpace(sample) == "" {
		return content("sample_answer cannot be empty")
	}
	return nil
}

func checkStringList(grading map[string]interface{}, field string, nonEmpty bool) *Outcome {
	list, ok := grading[field].([]interface{})
	if !ok {
		return structural("grading.%s must be an array", field)
	}
	if len(list) < 2 {
		return structural("grading.%s needs at least 2 entries, got %d", field, len(list))
	}
	for i, item := range list {
		s, isString := item.(string)
		if !isString {
			return structural("grading.%s[%d] must be a string", field, i)
		}
		if nonEmpty && strings.TrimSpace(s) == "" {
			return content("grading.%s[%d] cannot be empty", field, i)
		}
	}
	return nil
}

// asInt accepts JSON numbers with an integral value and Go ints.
func asInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if n != float64(int(n)) {
			return 0, false
		}
		return int(n), true
	default:
		return 0, false
	}
}
