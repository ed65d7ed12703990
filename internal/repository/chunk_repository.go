package repository

import (
	"context"
	"fmt"

	"study-assistant/internal/domain"
	"study-assistant/internal/repository/models"
)

// ChunkRepositoryImpl implements domain.ChunkRepository using sqlx.
type ChunkRepositoryImpl struct {
	db DBTX
}

var _ domain.ChunkRepository = (*ChunkRepositoryImpl)(nil)

func NewChunkRepository(db DBTX) *ChunkRepositoryImpl {
	return &ChunkRepositoryImpl{db: db}
}

// SaveChunks inserts chunks one row at a time. Call it inside a transaction to
// store a file atomically.
func (r *ChunkRepositoryImpl) SaveChunks(ctx context.Context, chunks []*domain.Chunk) error {
	if len(chunks) == 0 {
		return nil
	}
	query := `INSERT INTO chunks (id, subject_id, file_id, position, content, embedding)
		VALUES (:id, :subject_id, :file_id, :position, :content, :embedding)`
	exec := GetExecutor(ctx, r.db)
	for _, c := range chunks {
		model := models.Chunk{
			ID:        c.ID,
			SubjectID: c.SubjectID,
			FileID:    c.FileID,
			Position:  c.Position,
			Content:   c.Content,
			Embedding: models.Vector(c.Embedding),
		}
		if _, err := exec.NamedExecContext(ctx, query, model); err != nil {
			return fmt.Errorf("failed to save chunk %d of file %s: %w", c.Position, c.FileID, err)
		}
	}
	return nil
}

func (r *ChunkRepositoryImpl) ListChunksBySubject(ctx context.Context, subjectID string) ([]*domain.Chunk, error) {
	var rows []models.Chunk
	query := `SELECT id, subject_id, file_id, position, content, embedding
		FROM chunks WHERE subject_id = ? ORDER BY file_id, position`
	if err := GetExecutor(ctx, r.db).SelectContext(ctx, &rows, query, subjectID); err != nil {
		return nil, fmt.Errorf("failed to list chunks of subject %s: %w", subjectID, err)
	}

	chunks := make([]*domain.Chunk, len(rows))
	for i, m := range rows {
		chunks[i] = &domain.Chunk{
			ID:        m.ID,
			SubjectID: m.SubjectID,
			FileID:    m.FileID,
			Position:  m.Position,
			Content:   m.Content,
			Embedding: []float32(m.Embedding),
		}
	}
	return chunks, nil
}
