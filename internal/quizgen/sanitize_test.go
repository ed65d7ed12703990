package quizgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "plain object", raw: `{"a":1}`, want: `{"a":1}`},
		{name: "surrounding whitespace", raw: "\n\t {\"a\":1}  \n", want: `{"a":1}`},
		{name: "json fence", raw: "```json\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "bare fence", raw: "```\n{\"a\":1}\n```\n", want: `{"a":1}`},
		{name: "leading prose", raw: "Here is your quiz:\n{\"a\":1}", want: `{"a":1}`},
		{name: "trailing prose", raw: "{\"a\":1}\nHope this helps!", want: `{"a":1}`},
		{name: "reasoning block", raw: "<think>\nlet me count {braces}\n</think>\n{\"a\":1}", want: `{"a":1}`},
		{name: "two reasoning blocks", raw: "<think>a</think>\n<think>b {c}</think>{\"a\":1}", want: `{"a":1}`},
		{name: "think tags inside json kept", raw: `{"prompt":"What does <think>x</think> mark?"}`, want: `{"prompt":"What does <think>x</think> mark?"}`},
		{name: "unclosed reasoning block", raw: "<think>still going {\"a\":1}", want: `{"a":1}`},
		{name: "nested braces kept", raw: `x {"a":{"b":2}} y`, want: `{"a":{"b":2}}`},
		{name: "no braces", raw: "I cannot help with that.", want: "I cannot help with that."},
		{name: "empty", raw: "   ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitize(tt.raw))
		})
	}
}

func TestSanitize_TruncatedStaysUnparseable(t *testing.T) {
	// Missing closing brace: everything from the first { is kept.
	assert.Equal(t, `{"a":{"b":2}`, Sanitize(`prefix {"a":{"b":2}`))
}
