package quizgen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func mcqQuestion(id int) map[string]interface{} {
	return map[string]interface{}{
		"id":     id,
		"type":   "mcq",
		"prompt": fmt.Sprintf("What does TCP guarantee (%d)?", id),
		"options": map[string]interface{}{
			"A": "Reliable delivery",
			"B": "Lowest latency",
			"C": "Multicast",
			"D": "No handshakes",
		},
		"grading":     map[string]interface{}{"correct_option": "A"},
		"explanation": "TCP retransmits lost segments.",
	}
}

func trueFalseQuestion(id int) map[string]interface{} {
	return map[string]interface{}{
		"id":          id,
		"type":        "true_false",
		"prompt":      fmt.Sprintf("TCP is connection oriented (%d).", id),
		"grading":     map[string]interface{}{"correct_answer": true},
		"explanation": "TCP uses a three-way handshake.",
	}
}

func shortAnswerQuestion(id int) map[string]interface{} {
	return map[string]interface{}{
		"id":     id,
		"type":   "short_answer",
		"prompt": fmt.Sprintf("Explain TCP flow control (%d).", id),
		"grading": map[string]interface{}{
			"expected_points": []interface{}{"Receiver window", "Sender adapts rate"},
			"keywords":        []interface{}{"window", "ack"},
			"max_score":       2,
		},
		"sample_answer": "The receiver advertises a window the sender must respect.",
		"explanation":   "Flow control prevents overrunning the receiver.",
	}
}

func quizDoc(variant string, questions ...map[string]interface{}) map[string]interface{} {
	qs := make([]interface{}, len(questions))
	for i, q := range questions {
		qs[i] = q
	}
	return map[string]interface{}{
		"quiz_id":      "quiz-1",
		"difficulty":   "intermediate",
		"quiz_variant": variant,
		"questions":    qs,
	}
}

func questionsOf(build func(int) map[string]interface{}, n int) []map[string]interface{} {
	out := make([]map[string]interface{}, n)
	for i := range out {
		out[i] = build(i + 1)
	}
	return out
}

func toJSON(t *testing.T, v interface{}) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// parse round-trips v through JSON so numbers have their parsed representation.
func parse(t *testing.T, v interface{}) interface{} {
	t.Helper()
	var out interface{}
	require.NoError(t, json.Unmarshal([]byte(toJSON(t, v)), &out))
	return out
}

type reply struct {
	text string
	err  error
}

// scriptedBackend answers from a fixed script and records every prompt.
type scriptedBackend struct {
	mu      sync.Mutex
	replies []reply
	prompts []string
}

func newScriptedBackend(replies ...reply) *scriptedBackend {
	return &scriptedBackend{replies: replies}
}

func (b *scriptedBackend) Complete(_ context.Context, prompt string) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.prompts = append(b.prompts, prompt)
	if len(b.replies) == 0 {
		return "", errors.New("script exhausted")
	}
	r := b.replies[0]
	b.replies = b.replies[1:]
	return r.text, r.err
}

func (b *scriptedBackend) calls() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.prompts)
}

func (b *scriptedBackend) repairCalls() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := 0
	for _, p := range b.prompts {
		if isRepairPrompt(p) {
			n++
		}
	}
	return n
}

func isRepairPrompt(p string) bool {
	return strings.HasPrefix(p, "You are a JSON repair assistant")
}

type staticSupplier struct {
	passages []string
	err      error
	calls    int
}

func (s *staticSupplier) Retrieve(_ context.Context, _ string, _ int) ([]string, error) {
	s.calls++
	return s.passages, s.err
}

func tcpContext() *staticSupplier {
	return &staticSupplier{passages: []string{
		"TCP provides reliable delivery through acknowledgements and retransmission.",
		"TCP is connection oriented and uses a three-way handshake.",
	}}
}
