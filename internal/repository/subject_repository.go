package repository

import (
	"context"
	"fmt"

	"study-assistant/internal/domain"
	"study-assistant/internal/repository/models"
)

// SubjectRepositoryImpl implements domain.SubjectRepository and
// domain.SubjectFileRepository using sqlx.
type SubjectRepositoryImpl struct {
	db DBTX
}

var (
	_ domain.SubjectRepository     = (*SubjectRepositoryImpl)(nil)
	_ domain.SubjectFileRepository = (*SubjectRepositoryImpl)(nil)
)

func NewSubjectRepository(db DBTX) *SubjectRepositoryImpl {
	return &SubjectRepositoryImpl{db: db}
}

// CreateSubject inserts a new subject. An existing id yields a SubjectExists error.
func (r *SubjectRepositoryImpl) CreateSubject(ctx context.Context, subject *domain.Subject) error {
	model := models.Subject{
		ID:          subject.ID,
		DisplayName: subject.DisplayName,
		CreatedAt:   subject.CreatedAt,
	}
	query := `INSERT INTO subjects (id, display_name, created_at) VALUES (:id, :display_name, :created_at)`
	if _, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, model); err != nil {
		if isUniqueViolation(err) {
			return domain.NewSubjectExistsError(subject.ID)
		}
		return fmt.Errorf("failed to create subject %s: %w", subject.ID, err)
	}
	return nil
}

// GetSubjectByID returns the subject with its file names, or nil if it does not exist.
func (r *SubjectRepositoryImpl) GetSubjectByID(ctx context.Context, id string) (*domain.Subject, error) {
	var model models.Subject
	query := `SELECT id, display_name, created_at FROM subjects WHERE id = ?`
	if err := GetExecutor(ctx, r.db).GetContext(ctx, &model, query, id); err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get subject %s: %w", id, err)
	}

	files, err := r.ListFileNames(ctx, id)
	if err != nil {
		return nil, err
	}
	subject := toDomainSubject(&model)
	subject.Files = files
	return subject, nil
}

func (r *SubjectRepositoryImpl) ListSubjects(ctx context.Context) ([]*domain.Subject, error) {
	var rows []models.Subject
	query := `SELECT id, display_name, created_at FROM subjects ORDER BY id`
	if err := GetExecutor(ctx, r.db).SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to list subjects: %w", err)
	}

	var files []models.SubjectFile
	filesQuery := `SELECT subject_id, file_name FROM subject_files ORDER BY subject_id, file_name`
	if err := GetExecutor(ctx, r.db).SelectContext(ctx, &files, filesQuery); err != nil {
		return nil, fmt.Errorf("failed to list subject files: %w", err)
	}
	bySubject := make(map[string][]string)
	for _, f := range files {
		bySubject[f.SubjectID] = append(bySubject[f.SubjectID], f.FileName)
	}

	subjects := make([]*domain.Subject, len(rows))
	for i := range rows {
		subjects[i] = toDomainSubject(&rows[i])
		if names, ok := bySubject[rows[i].ID]; ok {
			subjects[i].Files = names
		}
	}
	return subjects, nil
}

// ListFileNames returns the base names of the files already ingested into a subject.
func (r *SubjectRepositoryImpl) ListFileNames(ctx context.Context, subjectID string) ([]string, error) {
	names := []string{}
	query := `SELECT file_name FROM subject_files WHERE subject_id = ? ORDER BY file_name`
	if err := GetExecutor(ctx, r.db).SelectContext(ctx, &names, query, subjectID); err != nil {
		return nil, fmt.Errorf("failed to list files of subject %s: %w", subjectID, err)
	}
	return names, nil
}

func (r *SubjectRepositoryImpl) CreateFile(ctx context.Context, file *domain.SubjectFile) error {
	model := models.SubjectFile{
		ID:         file.ID,
		SubjectID:  file.SubjectID,
		FileName:   file.FileName,
		ChunkCount: file.ChunkCount,
		CreatedAt:  file.CreatedAt,
	}
	query := `INSERT INTO subject_files (id, subject_id, file_name, chunk_count, created_at)
		VALUES (:id, :subject_id, :file_name, :chunk_count, :created_at)`
	if _, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, model); err != nil {
		return fmt.Errorf("failed to record file %s for subject %s: %w", file.FileName, file.SubjectID, err)
	}
	return nil
}

func toDomainSubject(m *models.Subject) *domain.Subject {
	return &domain.Subject{
		ID:          m.ID,
		DisplayName: m.DisplayName,
		CreatedAt:   m.CreatedAt,
		Files:       []string{},
	}
}
