package service

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"study-assistant/internal/config"
	"study-assistant/internal/domain"
	"study-assistant/internal/util"

	"github.com/tmc/langchaingo/textsplitter"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// SubjectService manages subjects and the material ingested into them.
type SubjectService interface {
	CreateSubject(ctx context.Context, id, displayName string) (*domain.Subject, error)
	ListSubjects(ctx context.Context) ([]*domain.Subject, error)
	GetSubject(ctx context.Context, id string) (*domain.Subject, error)
	IngestFiles(ctx context.Context, subjectID string, paths []string) (*domain.IngestionReport, error)
}

type subjectService struct {
	subjects    domain.SubjectRepository
	files       domain.SubjectFileRepository
	chunks      domain.ChunkRepository
	txManager   domain.TransactionManager
	parser      domain.PDFParser
	embedder    domain.EmbeddingService
	splitter    textsplitter.TextSplitter
	maxParallel int
	logger      *zap.Logger
}

func NewSubjectService(
	subjects domain.SubjectRepository,
	files domain.SubjectFileRepository,
	chunks domain.ChunkRepository,
	txManager domain.TransactionManager,
	parser domain.PDFParser,
	embedder domain.EmbeddingService,
	cfg config.IngestionConfig,
	logger *zap.Logger,
) SubjectService {
	maxParallel := cfg.MaxParallelFiles
	if maxParallel < 1 {
		maxParallel = 1
	}
	return &subjectService{
		subjects:  subjects,
		files:     files,
		chunks:    chunks,
		txManager: txManager,
		parser:    parser,
		embedder:  embedder,
		splitter: textsplitter.NewRecursiveCharacter(
			textsplitter.WithChunkSize(cfg.ChunkSize),
			textsplitter.WithChunkOverlap(cfg.ChunkOverlap),
		),
		maxParallel: maxParallel,
		logger:      logger,
	}
}

func (s *subjectService) CreateSubject(ctx context.Context, id, displayName string) (*domain.Subject, error) {
	if err := domain.ValidateSubjectID(id); err != nil {
		return nil, domain.NewInvalidInputError(err.Error())
	}
	displayName = strings.TrimSpace(displayName)
	if displayName == "" {
		displayName = id
	}

	subject := &domain.Subject{
		ID:          id,
		DisplayName: displayName,
		CreatedAt:   time.Now().UTC(),
		Files:       []string{},
	}
	if err := s.subjects.CreateSubject(ctx, subject); err != nil {
		if _, ok := asDomainError(err); ok {
			return nil, err
		}
		return nil, domain.NewInternalError("Failed to create subject", err)
	}

	s.logger.Info("Subject created", zap.String("subject_id", id), zap.String("display_name", displayName))
	return subject, nil
}

func (s *subjectService) ListSubjects(ctx context.Context) ([]*domain.Subject, error) {
	subjects, err := s.subjects.ListSubjects(ctx)
	if err != nil {
		return nil, domain.NewInternalError("Failed to list subjects", err)
	}
	return subjects, nil
}

func (s *subjectService) GetSubject(ctx context.Context, id string) (*domain.Subject, error) {
	return requireSubject(ctx, s.subjects, id)
}

// parsedFile is the output of the concurrent parse stage for one input path.
type parsedFile struct {
	name   string
	chunks []string
}

// IngestFiles parses, chunks, embeds and stores every file whose base name is
// not yet recorded for the subject. Parsing runs concurrently; each file is
// stored in its own transaction. A storage failure returns the error together
// with the report of the files committed before it, which are also attached
// to the error's context under "ingested".
func (s *subjectService) IngestFiles(ctx context.Context, subjectID string, paths []string) (*domain.IngestionReport, error) {
	if _, err := requireSubject(ctx, s.subjects, subjectID); err != nil {
		return nil, err
	}
	log := s.logger.With(zap.String("subject_id", subjectID))

	known, err := s.files.ListFileNames(ctx, subjectID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to list ingested files", err)
	}
	seen := make(map[string]bool, len(known))
	for _, name := range known {
		seen[name] = true
	}

	report := &domain.IngestionReport{Ingested: []string{}, Skipped: []string{}}
	var pending []string
	for _, path := range paths {
		name := filepath.Base(path)
		if seen[name] {
			log.Info("File already ingested, skipping", zap.String("file", name))
			report.Skipped = append(report.Skipped, name)
			continue
		}
		seen[name] = true
		pending = append(pending, path)
	}
	if len(pending) == 0 {
		return report, nil
	}

	parsed := make([]parsedFile, len(pending))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxParallel)
	for i, path := range pending {
		g.Go(func() error {
			name := filepath.Base(path)
			text, err := s.parser.Parse(gctx, path)
			if err != nil {
				return domain.NewIngestionError(name, err)
			}
			chunks, err := s.splitter.SplitText(text)
			if err != nil {
				return domain.NewIngestionError(name, fmt.Errorf("splitting text: %w", err))
			}
			parsed[i] = parsedFile{name: name, chunks: nonEmpty(chunks)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Error("Failed to parse files", zap.Error(err))
		return nil, err
	}

	for _, pf := range parsed {
		n, err := s.storeFile(ctx, subjectID, pf)
		if err != nil {
			log.Error("Failed to store file",
				zap.String("file", pf.name), zap.Strings("committed", report.Ingested), zap.Error(err))
			var domainErr *domain.DomainError
			if errors.As(err, &domainErr) {
				domainErr.WithContext("ingested", append([]string{}, report.Ingested...))
			}
			return report, err
		}
		report.Ingested = append(report.Ingested, pf.name)
		report.Chunks += n
		log.Info("File ingested", zap.String("file", pf.name), zap.Int("chunks", n))
	}
	return report, nil
}

func (s *subjectService) storeFile(ctx context.Context, subjectID string, pf parsedFile) (int, error) {
	var vectors [][]float32
	if len(pf.chunks) > 0 {
		var err error
		vectors, err = s.embedder.EmbedDocuments(ctx, pf.chunks)
		if err != nil {
			return 0, domain.NewIngestionError(pf.name, fmt.Errorf("embedding chunks: %w", err))
		}
		if len(vectors) != len(pf.chunks) {
			return 0, domain.NewIngestionError(pf.name,
				fmt.Errorf("embedding returned %d vectors for %d chunks", len(vectors), len(pf.chunks)))
		}
	} else {
		s.logger.Warn("File produced no text", zap.String("subject_id", subjectID), zap.String("file", pf.name))
	}

	file := &domain.SubjectFile{
		ID:         util.NewULID(),
		SubjectID:  subjectID,
		FileName:   pf.name,
		ChunkCount: len(pf.chunks),
		CreatedAt:  time.Now().UTC(),
	}
	chunks := make([]*domain.Chunk, len(pf.chunks))
	for i, content := range pf.chunks {
		chunks[i] = &domain.Chunk{
			ID:        util.NewULID(),
			SubjectID: subjectID,
			FileID:    file.ID,
			Position:  i,
			Content:   content,
			Embedding: vectors[i],
		}
	}

	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.files.CreateFile(txCtx, file); err != nil {
			return err
		}
		return s.chunks.SaveChunks(txCtx, chunks)
	})
	if err != nil {
		return 0, domain.NewIngestionError(pf.name, err)
	}
	return len(chunks), nil
}

func nonEmpty(chunks []string) []string {
	out := chunks[:0]
	for _, c := range chunks {
		if strings.TrimSpace(c) != "" {
			out = append(out, c)
		}
	}
	return out
}
