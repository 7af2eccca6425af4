package uploads

import (
	"context"

	"github.com/google/uuid"

	"github.com/JaimeStill/homework/internal/extraction"
	"github.com/JaimeStill/homework/pkg/pagination"
	"github.com/JaimeStill/homework/pkg/storage"
)

// System defines the public contract for upload domain operations.
type System interface {
	Handler(maxUploadSize int64) *Handler

	// Create extracts, stores and registers every file. Nothing is kept
	// when any file fails.
	Create(ctx context.Context, cmd CreateCommand) (*CreateResult, error)

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Upload], error)

	Find(ctx context.Context, id uuid.UUID) (*Upload, error)
	// Download opens the stored file. The caller must close Body.
	Download(ctx context.Context, id uuid.UUID) (*Upload, *storage.BlobContent, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// Sources returns the extracted texts of ids in order, named by
	// filename, for combination with extraction.Combine.
	Sources(ctx context.Context, ids []uuid.UUID) ([]extraction.Source, error)
}
