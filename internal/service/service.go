package service

import (
	"context"
	"errors"

	"study-assistant/internal/domain"
)

// SupplierFactory returns the context supplier scoped to one subject.
type SupplierFactory func(subjectID string) domain.ContextSupplier

// NewVectorSupplierFactory builds retrievers over the stored chunk embeddings.
func NewVectorSupplierFactory(chunks domain.ChunkRepository, embedder domain.EmbeddingService) SupplierFactory {
	return func(subjectID string) domain.ContextSupplier {
		return NewVectorRetriever(subjectID, chunks, embedder)
	}
}

func asDomainError(err error) (*domain.DomainError, bool) {
	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		return domainErr, true
	}
	return nil, false
}

// requireSubject loads a subject and turns a missing row into SubjectNotFound.
func requireSubject(ctx context.Context, repo domain.SubjectRepository, id string) (*domain.Subject, error) {
	subject, err := repo.GetSubjectByID(ctx, id)
	if err != nil {
		return nil, domain.NewInternalError("Failed to load subject", err)
	}
	if subject == nil {
		return nil, domain.NewSubjectNotFoundError(id)
	}
	return subject, nil
}
