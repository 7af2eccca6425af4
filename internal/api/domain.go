package api

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/JaimeStill/homework/internal/extraction"
	"github.com/JaimeStill/homework/internal/problems"
	"github.com/JaimeStill/homework/internal/uploads"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Problems problems.System
	Uploads  uploads.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime) *Domain {
	uploadsSystem := uploads.New(
		runtime.Database.Connection(),
		runtime.Storage,
		runtime.Extractor,
		runtime.Logger,
		runtime.Pagination,
	)

	problemsSystem := problems.New(
		runtime.Database.Connection(),
		runtime.Workflow,
		uploadSource{uploadsSystem},
		runtime.Logger,
		runtime.Pagination,
	)

	return &Domain{
		Problems: problemsSystem,
		Uploads:  uploadsSystem,
	}
}

// uploadSource exposes upload texts to the problem domain.
type uploadSource struct {
	uploads uploads.System
}

func (s uploadSource) Sources(ctx context.Context, ids []uuid.UUID) ([]extraction.Source, error) {
	sources, err := s.uploads.Sources(ctx, ids)
	if errors.Is(err, uploads.ErrNotFound) {
		return nil, fmt.Errorf("%w: %w", problems.ErrUploadNotFound, err)
	}
	return sources, err
}
