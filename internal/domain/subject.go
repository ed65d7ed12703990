package domain

import (
	"context"
	"fmt"
	"regexp"
	"time"
)

var subjectIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{1,50}$`)

// Subject groups the files and chunks a learner studies together.
type Subject struct {
	ID          string    `json:"id"`
	DisplayName string    `json:"display_name"`
	CreatedAt   time.Time `json:"created_at"`
	Files       []string  `json:"files"`
}

// ValidateSubjectID reports whether id may be used as a subject identifier.
func ValidateSubjectID(id string) error {
	if !subjectIDPattern.MatchString(id) {
		return fmt.Errorf("subject id %q must match %s", id, subjectIDPattern.String())
	}
	return nil
}

// SubjectFile records a file already ingested into a subject.
type SubjectFile struct {
	ID         string
	SubjectID  string
	FileName   string
	ChunkCount int
	CreatedAt  time.Time
}

// Chunk is an embedded passage of an ingested file.
type Chunk struct {
	ID        string
	SubjectID string
	FileID    string
	Position  int
	Content   string
	Embedding []float32
}

// IngestionReport summarises one IngestFiles call.
type IngestionReport struct {
	Ingested []string `json:"ingested"`
	Skipped  []string `json:"skipped"`
	Chunks   int      `json:"chunks"`
}

type SubjectRepository interface {
	CreateSubject(ctx context.Context, subject *Subject) error
	GetSubjectByID(ctx context.Context, id string) (*Subject, error)
	ListSubjects(ctx context.Context) ([]*Subject, error)
}

type SubjectFileRepository interface {
	ListFileNames(ctx context.Context, subjectID string) ([]string, error)
	CreateFile(ctx context.Context, file *SubjectFile) error
}

type ChunkRepository interface {
	SaveChunks(ctx context.Context, chunks []*Chunk) error
	ListChunksBySubject(ctx context.Context, subjectID string) ([]*Chunk, error)
}

type QuizRecordRepository interface {
	SaveQuizRecord(ctx context.Context, record *QuizRecord) error
	GetQuizRecordByID(ctx context.Context, id string) (*QuizRecord, error)
	ListQuizRecordsBySubject(ctx context.Context, subjectID string, limit int) ([]*QuizRecord, error)
}
