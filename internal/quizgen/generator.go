package quizgen

import (
	"context"
	"fmt"
	"time"

	"study-assistant/internal/domain"

	"go.uber.org/zap"
)

const (
	DefaultMaxAttempts = 3
	DefaultCallTimeout = 60 * time.Second
)

// State is the position of one Generate call in its state machine.
type State int

const (
	StateFresh State = iota
	StateHaveRaw
	StateDone
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateFresh:
		return "fresh"
	case StateHaveRaw:
		return "have_raw"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Event is reported to an Observer after every consumed attempt and once at
// the end of a call.
type Event struct {
	Attempt int
	From    State
	To      State
	Outcome Outcome
	// Repaired is true when a repair prompt was sent during this attempt.
	Repaired bool
	Fixes    []Correction
}

// Observer receives state machine events. It is called synchronously.
type Observer func(Event)

// Generator drives the generate, evaluate, repair or regenerate loop. It holds
// no per-call state, so one Generator can serve concurrent calls.
type Generator struct {
	backend     domain.GenerationBackend
	maxAttempts int
	callTimeout time.Duration
	logger      *zap.Logger
	observer    Observer
}

type Option func(*Generator)

func WithMaxAttempts(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.maxAttempts = n
		}
	}
}

// WithCallTimeout bounds each backend call. Zero disables the bound.
func WithCallTimeout(d time.Duration) Option {
	return func(g *Generator) {
		g.callTimeout = d
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

func WithObserver(o Observer) Option {
	return func(g *Generator) {
		g.observer = o
	}
}

func NewGenerator(backend domain.GenerationBackend, opts ...Option) *Generator {
	g := &Generator{
		backend:     backend,
		maxAttempts: DefaultMaxAttempts,
		callTimeout: DefaultCallTimeout,
		logger:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate produces a validated quiz for req, grounded in passages from
// supplier. It returns ErrNoContext without calling the backend when the
// supplier has nothing, and a *GenerationError once the attempt budget is spent.
func (g *Generator) Generate(ctx context.Context, req domain.QuizRequest, supplier domain.ContextSupplier) (*domain.QuizDocument, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	spec, err := Lookup(req.Variant)
	if err != nil {
		return nil, err
	}

	passages, err := supplier.Retrieve(ctx, req.Topic, req.ContextDepth)
	if err != nil {
		return nil, fmt.Errorf("retrieving context for %q: %w", req.Topic, err)
	}
	if len(passages) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoContext, req.Topic)
	}

	log := g.logger.With(
		zap.String("topic", req.Topic),
		zap.String("variant", string(req.Variant)),
		zap.Int("question_count", req.QuestionCount),
	)
	prompt := BuildPrompt(req, passages, spec)

	state := StateFresh
	var raw string
	var last Outcome
	history := make([]AttemptRecord, 0, g.maxAttempts)

	for attempt := 1; attempt <= g.maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		from := state
		ev := Event{Attempt: attempt, From: from}

		if state == StateFresh {
			text, err := g.complete(ctx, prompt)
			if err != nil {
				// No text to repair, so the next attempt regenerates.
				last = invalid(KindMalformed, "backend call failed: %v", err)
				log.Warn("Generation backend call failed", zap.Int("attempt", attempt), zap.Error(err))
				history = append(history, AttemptRecord{Attempt: attempt, Kind: last.Kind, Message: last.Message})
				ev.Outcome, ev.To = last, StateFresh
				g.notify(ev)
				continue
			}
			raw = text
			state = StateHaveRaw
		}

		outcome, fixes := Evaluate(raw, req.Variant, req.QuestionCount)
		ev.Outcome, ev.Fixes = outcome, fixes
		for _, fix := range fixes {
			log.Info("Auto-fixed quiz response",
				zap.Int("attempt", attempt), zap.Int("question", fix.Question), zap.String("fix", fix.Fix))
		}

		if outcome.Valid() {
			ev.To = StateDone
			g.notify(ev)
			log.Info("Quiz generated", zap.Int("attempts", attempt))
			return outcome.Document, nil
		}

		last = outcome
		history = append(history, AttemptRecord{Attempt: attempt, Kind: outcome.Kind, Message: outcome.String()})
		log.Warn("Quiz response rejected",
			zap.Int("attempt", attempt),
			zap.Stringer("kind", outcome.Kind),
			zap.Int("question", outcome.QuestionIndex),
			zap.String("message", outcome.Message))

		switch {
		case outcome.Kind.Repairable() && attempt < g.maxAttempts:
			repaired, err := g.complete(ctx, BuildRepairPrompt(raw, req.Variant, req.QuestionCount))
			ev.Repaired = true
			if err != nil {
				log.Warn("Repair call failed, regenerating", zap.Int("attempt", attempt), zap.Error(err))
				raw, state = "", StateFresh
			} else {
				raw = repaired
			}
		case outcome.Kind.Repairable():
			// Last attempt: nothing would evaluate a repaired response.
		default:
			raw, state = "", StateFresh
		}
		ev.To = state
		g.notify(ev)
	}

	g.notify(Event{Attempt: g.maxAttempts, From: state, To: StateFailed, Outcome: last})
	log.Error("Quiz generation exhausted its attempts",
		zap.Int("attempts", g.maxAttempts), zap.Stringer("kind", last.Kind), zap.String("message", last.Message))
	return nil, &GenerationError{
		Kind:     last.Kind,
		Message:  last.String(),
		Attempts: g.maxAttempts,
		History:  history,
	}
}

type completion struct {
	text string
	err  error
}

// complete calls the backend under the per-call timeout. The result channel is
// buffered so a backend that ignores cancellation cannot block its goroutine.
func (g *Generator) complete(ctx context.Context, prompt string) (string, error) {
	callCtx := ctx
	if g.callTimeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, g.callTimeout)
		defer cancel()
	}

	done := make(chan completion, 1)
	go func() {
		text, err := g.backend.Complete(callCtx, prompt)
		done <- completion{text: text, err: err}
	}()

	select {
	case res := <-done:
		if res.err != nil {
			return "", res.err
		}
		return res.text, nil
	case <-callCtx.Done():
		if ctx.Err() == nil {
			return "", fmt.Errorf("backend call timed out after %s: %w", g.callTimeout, callCtx.Err())
		}
		return "", ctx.Err()
	}
}

func (g *Generator) notify(ev Event) {
	if g.observer != nil {
		g.observer(ev)
	}
}
