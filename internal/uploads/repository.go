package uploads

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/url"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/JaimeStill/homework/internal/extraction"
	"github.com/JaimeStill/homework/internal/prompts"
	"github.com/JaimeStill/homework/pkg/formatting"
	"github.com/JaimeStill/homework/pkg/pagination"
	"github.com/JaimeStill/homework/pkg/query"
	"github.com/JaimeStill/homework/pkg/repository"
	"github.com/JaimeStill/homework/pkg/storage"
)

const insertUpload = `
	INSERT INTO uploads(id, user_email, filename, content_type, size_bytes, page_count, storage_key,
		upload_type, extraction_method, extracted_text)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	RETURNING id, user_email, filename, content_type, size_bytes, page_count, storage_key,
		upload_type, extraction_method, extracted_text, uploaded_at`

// Extractor recovers the text of uploaded files.
type Extractor interface {
	ExtractAll(ctx context.Context, files []extraction.File, stage prompts.Stage) ([]extraction.Result, error)
}

type repo struct {
	db         *sql.DB
	storage    storage.System
	extractor  Extractor
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates an upload repository implementing the System interface.
func New(
	db *sql.DB,
	store storage.System,
	extractor Extractor,
	logger *slog.Logger,
	pagination pagination.Config,
) System {
	return &repo{
		db:         db,
		storage:    store,
		extractor:  extractor,
		logger:     logger.With("system", "uploads"),
		pagination: pagination,
	}
}

func (r *repo) Handler(maxUploadSize int64) *Handler {
	return NewHandler(r, r.logger, r.pagination, maxUploadSize)
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*CreateResult, error) {
	if len(cmd.Files) == 0 {
		return nil, ErrNoFiles
	}
	if !ValidType(cmd.Type) {
		return nil, ErrInvalidType
	}
	if cmd.Type == "" {
		cmd.Type = TypeCombined
	}
	for _, f := range cmd.Files {
		if !extraction.Supported(f.ContentType) {
			return nil, fmt.Errorf("%s: %w", f.Name, extraction.ErrUnsupportedType)
		}
	}

	results, err := r.extractor.ExtractAll(ctx, cmd.Files, prompts.ExtractStage(cmd.Type))
	if err != nil {
		return nil, err
	}

	var email *string
	if cmd.UserEmail != "" {
		email = &cmd.UserEmail
	}

	var keys []string
	rows := make([][]any, len(cmd.Files))
	for i, f := range cmd.Files {
		id := uuid.New()
		key := buildStorageKey(id, sanitizeFilename(f.Name))

		if err := r.storage.Upload(ctx, key, bytes.NewReader(f.Data), f.ContentType); err != nil {
			r.compensate(ctx, keys)
			return nil, fmt.Errorf("upload blob: %w", err)
		}
		keys = append(keys, key)

		rows[i] = []any{
			id,
			email,
			f.Name,
			f.ContentType,
			int64(len(f.Data)),
			results[i].PageCount,
			key,
			cmd.Type,
			results[i].Method,
			results[i].Text,
		}
	}

	uploads, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) ([]Upload, error) {
		out := make([]Upload, 0, len(rows))
		for _, args := range rows {
			u, err := repository.QueryOne(ctx, tx, insertUpload, args, scanUpload)
			if err != nil {
				return nil, err
			}
			out = append(out, u)
		}
		return out, nil
	})
	if err != nil {
		r.compensate(ctx, keys)
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	for _, u := range uploads {
		r.logger.Info(
			"upload created",
			"id", u.ID,
			"filename", u.Filename,
			"size", formatting.FormatBytes(u.SizeBytes, 1),
			"method", u.ExtractionMethod,
		)
	}

	return &CreateResult{
		Uploads:      uploads,
		CombinedText: extraction.Combine(extraction.Sources(results)),
	}, nil
}

func (r *repo) List(
	ctx context.Context,
	page pagination.PageRequest,
	filters Filters,
) (*pagination.PageResult[Upload], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "Filename", "ExtractedText")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	result, err := repository.QueryPage(ctx, r.db, qb, page, scanUpload)
	if err != nil {
		return nil, fmt.Errorf("query uploads: %w", err)
	}
	return result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Upload, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	u, err := repository.QueryOne(ctx, r.db, q, args, scanUpload)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &u, nil
}

func (r *repo) Download(ctx context.Context, id uuid.UUID) (*Upload, *storage.BlobContent, error) {
	u, err := r.Find(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	blob, err := r.storage.Download(ctx, u.StorageKey)
	if err != nil {
		return nil, nil, err
	}
	return u, blob, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	u, err := r.Find(ctx, id)
	if err != nil {
		return err
	}

	_, err = repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		return struct{}{}, repository.ExecExpectOne(
			ctx, tx,
			"DELETE FROM uploads WHERE id = $1",
			id,
		)
	})
	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	if delErr := r.storage.Delete(ctx, u.StorageKey); delErr != nil {
		r.logger.Warn(
			"blob delete failed after DB delete",
			"key", u.StorageKey,
			"error", delErr,
		)
	}

	r.logger.Info("upload deleted", "id", id)
	return nil
}

func (r *repo) Sources(ctx context.Context, ids []uuid.UUID) ([]extraction.Source, error) {
	sources := make([]extraction.Source, 0, len(ids))
	for _, id := range ids {
		u, err := r.Find(ctx, id)
		if err != nil {
			return nil, err
		}
		sources = append(sources, extraction.Source{Name: u.Filename, Text: u.ExtractedText})
	}
	return sources, nil
}

func (r *repo) compensate(ctx context.Context, keys []string) {
	ctx = context.WithoutCancel(ctx)
	for _, key := range keys {
		if err := r.storage.Delete(ctx, key); err != nil {
			r.logger.Warn("compensating blob delete failed", "key", key, "error", err)
		}
	}
}

func buildStorageKey(id uuid.UUID, filename string) string {
	return fmt.Sprintf("uploads/%s/%s", id, filename)
}

func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	if name == "." || name == "/" || name == "" {
		name = "upload"
	}
	return url.PathEscape(name)
}
