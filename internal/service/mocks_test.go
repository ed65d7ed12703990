package service

import (
	"context"

	"study-assistant/internal/domain"

	"github.com/stretchr/testify/mock"
)

// --- MockSubjectRepository ---
type MockSubjectRepository struct {
	mock.Mock
}

func (m *MockSubjectRepository) CreateSubject(ctx context.Context, subject *domain.Subject) error {
	args := m.Called(ctx, subject)
	return args.Error(0)
}

func (m *MockSubjectRepository) GetSubjectByID(ctx context.Context, id string) (*domain.Subject, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Subject), args.Error(1)
}

func (m *MockSubjectRepository) ListSubjects(ctx context.Context) ([]*domain.Subject, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Subject), args.Error(1)
}

// --- MockSubjectFileRepository ---
type MockSubjectFileRepository struct {
	mock.Mock
}

func (m *MockSubjectFileRepository) ListFileNames(ctx context.Context, subjectID string) ([]string, error) {
	args := m.Called(ctx, subjectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockSubjectFileRepository) CreateFile(ctx context.Context, file *domain.SubjectFile) error {
	args := m.Called(ctx, file)
	return args.Error(0)
}

// --- MockChunkRepository ---
type MockChunkRepository struct {
	mock.Mock
}

func (m *MockChunkRepository) SaveChunks(ctx context.Context, chunks []*domain.Chunk) error {
	args := m.Called(ctx, chunks)
	return args.Error(0)
}

func (m *MockChunkRepository) ListChunksBySubject(ctx context.Context, subjectID string) ([]*domain.Chunk, error) {
	args := m.Called(ctx, subjectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Chunk), args.Error(1)
}

// --- MockQuizRecordRepository ---
type MockQuizRecordRepository struct {
	mock.Mock
}

func (m *MockQuizRecordRepository) SaveQuizRecord(ctx context.Context, record *domain.QuizRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockQuizRecordRepository) GetQuizRecordByID(ctx context.Context, id string) (*domain.QuizRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.QuizRecord), args.Error(1)
}

func (m *MockQuizRecordRepository) ListQuizRecordsBySubject(ctx context.Context, subjectID string, limit int) ([]*domain.QuizRecord, error) {
	args := m.Called(ctx, subjectID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.QuizRecord), args.Error(1)
}

// --- MockEmbeddingService ---
type MockEmbeddingService struct {
	mock.Mock
}

func (m *MockEmbeddingService) EmbedQuery(ctx context.Context, text string) ([]float32, error) {
	args := m.Called(ctx, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]float32), args.Error(1)
}

func (m *MockEmbeddingService) EmbedDocuments(ctx context.Context, texts []string) ([][]float32, error) {
	args := m.Called(ctx, texts)
	if fn, ok := args.Get(0).(func([]string) [][]float32); ok {
		return fn(texts), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([][]float32), args.Error(1)
}

// --- MockPDFParser ---
type MockPDFParser struct {
	mock.Mock
}

func (m *MockPDFParser) Parse(ctx context.Context, path string) (string, error) {
	args := m.Called(ctx, path)
	return args.String(0), args.Error(1)
}

// --- MockGenerationBackend ---
type MockGenerationBackend struct {
	mock.Mock
}

func (m *MockGenerationBackend) Complete(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

// --- MockQuizGenerator ---
type MockQuizGenerator struct {
	mock.Mock
}

func (m *MockQuizGenerator) Generate(ctx context.Context, req domain.QuizRequest, supplier domain.ContextSupplier) (*domain.QuizDocument, error) {
	args := m.Called(ctx, req, supplier)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.QuizDocument), args.Error(1)
}

// inlineTxManager runs fn directly and records how often it was used.
type inlineTxManager struct {
	calls int
}

func (m *inlineTxManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

// staticSupplier returns fixed passages regardless of the query.
type staticSupplier struct {
	passages []string
	err      error
}

func (s staticSupplier) Retrieve(ctx context.Context, topic string, depth int) ([]string, error) {
	return s.passages, s.err
}

func supplierFactory(s domain.ContextSupplier) SupplierFactory {
	return func(string) domain.ContextSupplier { return s }
}
