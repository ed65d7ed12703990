package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"study-assistant/internal/config"
	"study-assistant/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newStudyService(subjects *MockSubjectRepository, supplier domain.ContextSupplier, backend domain.GenerationBackend, timeout time.Duration) StudyService {
	return NewStudyService(subjects, supplierFactory(supplier), backend,
		config.LLMConfig{Timeout: timeout},
		config.StudyConfig{ExplanationDepth: 3, SummaryDepth: 8},
		zap.NewNop())
}

func TestExplain(t *testing.T) {
	subjects := new(MockSubjectRepository)
	backend := new(MockGenerationBackend)
	subjects.On("GetSubjectByID", mock.Anything, "net").Return(&domain.Subject{ID: "net"}, nil).Once()
	backend.On("Complete", mock.Anything, mock.MatchedBy(func(p string) bool {
		return containsAll(p, "helpful study assistant", "TCP retransmits.", "Question: Why is TCP reliable?")
	})).Return("  Because it retransmits.\n", nil).Once()

	svc := newStudyService(subjects, staticSupplier{passages: []string{"TCP retransmits."}}, backend, time.Second)
	answer, err := svc.Explain(context.Background(), "net", "Why is TCP reliable?")

	require.NoError(t, err)
	assert.Equal(t, "Because it retransmits.", answer)
	backend.AssertExpectations(t)
}

func TestExplain_NoContext(t *testing.T) {
	subjects := new(MockSubjectRepository)
	backend := new(MockGenerationBackend)
	subjects.On("GetSubjectByID", mock.Anything, "net").Return(&domain.Subject{ID: "net"}, nil).Once()

	svc := newStudyService(subjects, staticSupplier{}, backend, time.Second)
	_, err := svc.Explain(context.Background(), "net", "Why?")

	assertCode(t, err, domain.CodeNoContext)
	backend.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything)
}

func TestExplain_EmptyQuestion(t *testing.T) {
	svc := newStudyService(new(MockSubjectRepository), staticSupplier{}, new(MockGenerationBackend), time.Second)

	_, err := svc.Explain(context.Background(), "net", "   ")

	assertCode(t, err, domain.CodeInvalidInput)
}

func TestCheatSheet_DefaultStyleAndTimeout(t *testing.T) {
	subjects := new(MockSubjectRepository)
	backend := new(MockGenerationBackend)
	subjects.On("GetSubjectByID", mock.Anything, "net").Return(&domain.Subject{ID: "net"}, nil).Once()
	backend.On("Complete", mock.MatchedBy(func(ctx context.Context) bool {
		_, ok := ctx.Deadline()
		return ok
	}), mock.MatchedBy(func(p string) bool {
		return containsAll(p, "Topic: tcp", "Style: cheat_sheet", "Key definitions", "Cheat Sheet:")
	})).Return("- SYN", nil).Once()

	svc := newStudyService(subjects, staticSupplier{passages: []string{"SYN, SYN-ACK, ACK"}}, backend, time.Minute)
	sheet, err := svc.CheatSheet(context.Background(), "net", "tcp", "")

	require.NoError(t, err)
	assert.Equal(t, "- SYN", sheet)
	backend.AssertExpectations(t)
}

func TestCheatSheet_BackendFailure(t *testing.T) {
	subjects := new(MockSubjectRepository)
	backend := new(MockGenerationBackend)
	subjects.On("GetSubjectByID", mock.Anything, "net").Return(&domain.Subject{ID: "net"}, nil).Once()
	backend.On("Complete", mock.Anything, mock.Anything).Return("", errors.New("connection refused")).Once()

	svc := newStudyService(subjects, staticSupplier{passages: []string{"x"}}, backend, time.Second)
	_, err := svc.CheatSheet(context.Background(), "net", "tcp", "outline")

	assertCode(t, err, domain.CodeLLMServiceError)
}

func TestCheatSheet_UnknownSubject(t *testing.T) {
	subjects := new(MockSubjectRepository)
	subjects.On("GetSubjectByID", mock.Anything, "ghost").Return(nil, nil).Once()

	svc := newStudyService(subjects, staticSupplier{passages: []string{"x"}}, new(MockGenerationBackend), time.Second)
	_, err := svc.CheatSheet(context.Background(), "ghost", "tcp", "")

	assertCode(t, err, domain.CodeSubjectNotFound)
}
