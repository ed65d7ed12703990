package domain

import (
	"context"
)

// GenerationBackend is a text-completion capability. Implementations do not
// retry; callers own the retry budget.
type GenerationBackend interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// ContextSupplier returns passages grounding a topic, most relevant first.
// An empty result is valid.
type ContextSupplier interface {
	Retrieve(ctx context.Context, topic string, depth int) ([]string, error)
}

// PDFParser extracts plain text from a PDF file.
type PDFParser interface {
	Parse(ctx context.Context, path string) (string, error)
}
