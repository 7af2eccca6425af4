package problems

import (
	"context"

	"github.com/google/uuid"

	"github.com/JaimeStill/homework/internal/extraction"
	"github.com/JaimeStill/homework/pkg/pagination"
)

// System defines the public contract for problem domain operations.
type System interface {
	Handler() *Handler

	// Analyze runs the workflow over the submitted text. Persistence is
	// best-effort: a failed insert is logged and reported through
	// AnalyzeResult.Saved.
	Analyze(ctx context.Context, cmd AnalyzeCommand) (*AnalyzeResult, error)
	Parse(cmd ParseCommand) ParseResult

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Problem], error)

	Find(ctx context.Context, id uuid.UUID) (*Problem, error)
	History(ctx context.Context, email string) ([]Problem, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// UploadSource resolves upload IDs to their extracted text, in the order
// given. Unknown IDs are reported as ErrUploadNotFound.
type UploadSource interface {
	Sources(ctx context.Context, ids []uuid.UUID) ([]extraction.Source, error)
}
