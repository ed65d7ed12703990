package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"study-assistant/internal/domain"
	"study-assistant/internal/repository/models"
)

// QuizRecordRepositoryImpl implements domain.QuizRecordRepository using sqlx.
// The validated quiz document is stored as JSON.
type QuizRecordRepositoryImpl struct {
	db DBTX
}

var _ domain.QuizRecordRepository = (*QuizRecordRepositoryImpl)(nil)

func NewQuizRecordRepository(db DBTX) *QuizRecordRepositoryImpl {
	return &QuizRecordRepositoryImpl{db: db}
}

const quizRecordColumns = `id, subject_id, topic, quiz_variant, document, created_at`

func (r *QuizRecordRepositoryImpl) SaveQuizRecord(ctx context.Context, record *domain.QuizRecord) error {
	doc, err := json.Marshal(record.Document)
	if err != nil {
		return fmt.Errorf("failed to encode quiz document: %w", err)
	}
	model := models.QuizRecord{
		ID:        record.ID,
		SubjectID: record.SubjectID,
		Topic:     record.Topic,
		Variant:   string(record.Variant),
		Document:  models.JSONText(doc),
		CreatedAt: record.CreatedAt,
	}
	query := `INSERT INTO quiz_records (` + quizRecordColumns + `)
		VALUES (:id, :subject_id, :topic, :quiz_variant, :document, :created_at)`
	if _, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, model); err != nil {
		return fmt.Errorf("failed to save quiz record %s: %w", record.ID, err)
	}
	return nil
}

// GetQuizRecordByID returns nil when no record has the given id.
func (r *QuizRecordRepositoryImpl) GetQuizRecordByID(ctx context.Context, id string) (*domain.QuizRecord, error) {
	var model models.QuizRecord
	query := `SELECT ` + quizRecordColumns + ` FROM quiz_records WHERE id = ?`
	if err := GetExecutor(ctx, r.db).GetContext(ctx, &model, query, id); err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get quiz record %s: %w", id, err)
	}
	return toDomainQuizRecord(&model)
}

// ListQuizRecordsBySubject returns the newest records first.
func (r *QuizRecordRepositoryImpl) ListQuizRecordsBySubject(ctx context.Context, subjectID string, limit int) ([]*domain.QuizRecord, error) {
	var rows []models.QuizRecord
	query := `SELECT ` + quizRecordColumns + ` FROM quiz_records
		WHERE subject_id = ? ORDER BY created_at DESC, id DESC LIMIT ?`
	if err := GetExecutor(ctx, r.db).SelectContext(ctx, &rows, query, subjectID, limit); err != nil {
		return nil, fmt.Errorf("failed to list quiz records of subject %s: %w", subjectID, err)
	}

	records := make([]*domain.QuizRecord, 0, len(rows))
	for i := range rows {
		rec, err := toDomainQuizRecord(&rows[i])
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

func toDomainQuizRecord(m *models.QuizRecord) (*domain.QuizRecord, error) {
	var doc domain.QuizDocument
	if err := json.Unmarshal(m.Document, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode quiz document of record %s: %w", m.ID, err)
	}
	return &domain.QuizRecord{
		ID:        m.ID,
		SubjectID: m.SubjectID,
		Topic:     m.Topic,
		Variant:   domain.QuizVariant(m.Variant),
		Document:  &doc,
		CreatedAt: m.CreatedAt,
	}, nil
}
