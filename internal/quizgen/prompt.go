package quizgen

import (
	"fmt"
	"strings"

	"study-assistant/internal/domain"
)

// BuildPrompt composes the generation prompt. Only the context and the
// request fields vary between calls.
func BuildPrompt(req domain.QuizRequest, passages []string, spec *VariantSpec) string {
	var b strings.Builder

	b.WriteString("You are a teaching assistant creating a quiz for students.\n\n")
	b.WriteString("STRICT RULES:\n")
	b.WriteString("- Use ONLY information from the context provided below\n")
	b.WriteString("- Do NOT invent, assume, or add any facts not in the context\n")
	fmt.Fprintf(&b, "- Difficulty level: %s\n", req.Difficulty)
	fmt.Fprintf(&b, "- Generate EXACTLY %d questions - no more, no less\n", req.QuestionCount)
	fmt.Fprintf(&b, "- ALL questions MUST be type %q\n", string(req.Variant))
	b.WriteString("- Do NOT mix question types under any circumstances\n")
	fmt.Fprintf(&b, "- Question ids must be the integers 1, 2, 3, ... up to %d in order\n", req.QuestionCount)
	b.WriteString("- Each explanation must be one clear sentence\n")
	for _, rule := range spec.ExtraRules {
		fmt.Fprintf(&b, "- %s\n", rule)
	}

	b.WriteString("\nOUTPUT FORMAT:\n")
	b.WriteString("- Return ONLY valid JSON\n")
	b.WriteString("- NO markdown code blocks\n")
	b.WriteString("- NO additional commentary or text\n")
	b.WriteString("- Start directly with {\n")

	b.WriteString("\nREQUIRED JSON STRUCTURE:\n")
	b.WriteString(spec.DocumentSchema())

	b.WriteString("\n\nCONTEXT:\n")
	b.WriteString(strings.Join(passages, "\n\n"))

	fmt.Fprintf(&b, "\n\nTOPIC: %s\n\nGenerate the quiz now:", req.Topic)
	return b.String()
}

// BuildRepairPrompt asks the backend to fix JSON syntax in a previous
// response without touching its content.
func BuildRepairPrompt(raw string, variant domain.QuizVariant, questionCount int) string {
	var b strings.Builder

	b.WriteString("You are a JSON repair assistant. Your ONLY job is to fix JSON syntax errors.\n\n")
	b.WriteString("RULES:\n")
	b.WriteString("- Fix ONLY JSON structure and syntax (missing commas, quotes, brackets, braces)\n")
	b.WriteString("- Do NOT change any content, wording, or answers\n")
	b.WriteString("- Do NOT add or remove questions\n")
	b.WriteString("- Do NOT change question types\n")
	b.WriteString("- Keep all existing field values exactly as they are\n")
	b.WriteString("- Return ONLY valid JSON, no markdown, no comments\n\n")

	b.WriteString("The JSON should have:\n")
	b.WriteString("- quiz_id, difficulty, quiz_variant, questions (array)\n")
	fmt.Fprintf(&b, "- Exactly %d questions\n", questionCount)
	fmt.Fprintf(&b, "- All questions of type %q\n\n", string(variant))

	b.WriteString("BROKEN JSON:\n")
	b.WriteString(raw)
	b.WriteString("\n\nREPAIRED JSON:")
	return b.String()
}
