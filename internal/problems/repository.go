package problems

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/JaimeStill/homework/analysis"
	"github.com/JaimeStill/homework/internal/extraction"
	"github.com/JaimeStill/homework/internal/workflow"
	"github.com/JaimeStill/homework/pkg/pagination"
	"github.com/JaimeStill/homework/pkg/query"
	"github.com/JaimeStill/homework/pkg/repository"
)

const insertProblem = `
	INSERT INTO problems(id, user_email, problem_text, user_solution, correct_solution, wolfram_solution,
		error_type, error_description, hints, confidence_score, topic, difficulty_level, mode)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	RETURNING id, user_email, problem_text, user_solution, correct_solution, wolfram_solution,
		error_type, error_description, hints, confidence_score, topic, difficulty_level, mode, created_at`

type repo struct {
	db         *sql.DB
	runtime    *workflow.Runtime
	uploads    UploadSource
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates a problem repository implementing the System interface. A
// nil db disables persistence; a nil uploads rejects upload_ids.
func New(
	db *sql.DB,
	runtime *workflow.Runtime,
	uploads UploadSource,
	logger *slog.Logger,
	pagination pagination.Config,
) System {
	return &repo{
		db:         db,
		runtime:    runtime,
		uploads:    uploads,
		logger:     logger.With("system", "problems"),
		pagination: pagination,
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger, r.pagination)
}

func (r *repo) Analyze(ctx context.Context, cmd AnalyzeCommand) (*AnalyzeResult, error) {
	mode, err := workflow.ParseMode(cmd.Mode)
	if err != nil {
		return nil, err
	}

	text, err := r.resolveText(ctx, cmd)
	if err != nil {
		return nil, err
	}

	out, err := workflow.Execute(ctx, r.runtime, text, mode)
	if err != nil {
		return nil, err
	}

	result := &AnalyzeResult{
		Mode:     out.Mode,
		Fallback: out.Fallback,
		ParsedContent: analysis.Segmentation{
			OriginalProblem: out.Analysis.OriginalProblem,
			StudentSolution: out.Analysis.StudentSolution,
		},
		WolframSolution: out.WolframSolution,
		Analysis:        out.Analysis,
	}

	if cmd.UserEmail == "" || r.db == nil {
		return result, nil
	}

	saved, err := r.insert(ctx, fromOutcome(cmd, out))
	if err != nil {
		r.logger.Warn("problem save failed, continuing without saving", "error", err)
		return result, nil
	}

	result.ID = &saved.ID
	result.Saved = true
	r.logger.Info("problem analyzed", "id", saved.ID, "mode", out.Mode, "error_type", saved.ErrorType)
	return result, nil
}

func (r *repo) Parse(cmd ParseCommand) ParseResult {
	normalized := analysis.Normalize(cmd.Text)
	seg := analysis.Segment(normalized)

	lines := 0
	if cmd.Text != "" {
		lines = strings.Count(cmd.Text, "\n") + 1
	}

	return ParseResult{
		InputLength:    len([]rune(cmd.Text)),
		InputLines:     lines,
		Normalized:     normalized,
		Parsed:         seg,
		ProblemLength:  len([]rune(seg.OriginalProblem)),
		SolutionLength: len([]rune(seg.StudentSolution)),
	}
}

func (r *repo) List(
	ctx context.Context,
	page pagination.PageRequest,
	filters Filters,
) (*pagination.PageResult[Problem], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "ProblemText", "UserSolution")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	result, err := repository.QueryPage(ctx, r.db, qb, page, scanProblem)
	if err != nil {
		return nil, fmt.Errorf("query problems: %w", err)
	}
	return result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Problem, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	p, err := repository.QueryOne(ctx, r.db, q, args, scanProblem)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &p, nil
}

func (r *repo) History(ctx context.Context, email string) ([]Problem, error) {
	if email == "" {
		return nil, ErrEmailRequired
	}

	q, args := query.
		NewBuilder(projection, defaultSort).
		WhereEquals("UserEmail", email).
		BuildPage(1, historyLimit)

	problems, err := repository.QueryMany(ctx, r.db, q, args, scanProblem)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	return problems, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		return struct{}{}, repository.ExecExpectOne(
			ctx, tx,
			"DELETE FROM problems WHERE id = $1",
			id,
		)
	})
	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("problem deleted", "id", id)
	return nil
}

// resolveText combines the submitted text with the texts of the
// referenced uploads, submitted text first.
func (r *repo) resolveText(ctx context.Context, cmd AnalyzeCommand) (string, error) {
	var sources []extraction.Source
	if strings.TrimSpace(cmd.ProblemText) != "" {
		sources = append(sources, extraction.Source{Text: cmd.ProblemText})
	}

	if len(cmd.UploadIDs) > 0 {
		if r.uploads == nil {
			return "", ErrUploadNotFound
		}
		uploaded, err := r.uploads.Sources(ctx, cmd.UploadIDs)
		if err != nil {
			return "", err
		}
		sources = append(sources, uploaded...)
	}

	text := extraction.Combine(sources)
	if strings.TrimSpace(text) == "" {
		return "", ErrInvalidInput
	}
	return text, nil
}

func (r *repo) insert(ctx context.Context, p Problem) (Problem, error) {
	args := []any{
		uuid.New(),
		p.UserEmail,
		p.ProblemText,
		p.UserSolution,
		p.CorrectSolution,
		p.WolframSolution,
		p.ErrorType,
		p.ErrorDescription,
		p.Hints,
		p.ConfidenceScore,
		p.Topic,
		p.DifficultyLevel,
		p.Mode,
	}

	return repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Problem, error) {
		return repository.QueryOne(ctx, tx, insertProblem, args, scanProblem)
	})
}
