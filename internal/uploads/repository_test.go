package uploads_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/JaimeStill/homework/internal/extraction"
	"github.com/JaimeStill/homework/internal/prompts"
	"github.com/JaimeStill/homework/internal/uploads"
	"github.com/JaimeStill/homework/pkg/lifecycle"
	"github.com/JaimeStill/homework/pkg/storage"
)

type fakeExtractor struct {
	stage prompts.Stage
}

func (f *fakeExtractor) ExtractAll(_ context.Context, files []extraction.File, stage prompts.Stage) ([]extraction.Result, error) {
	f.stage = stage
	out := make([]extraction.Result, len(files))
	for i, file := range files {
		out[i] = extraction.Result{Name: file.Name, Text: string(file.Data), Method: extraction.MethodVision}
	}
	return out, nil
}

// fakeStore fails every upload after the first failAfter. When cancel is
// set it runs on the failing upload.
type fakeStore struct {
	failAfter int
	cancel    context.CancelFunc
	uploaded  []string
	deleted   []string
}

func (s *fakeStore) Start(*lifecycle.Coordinator) error { return nil }

func (s *fakeStore) Upload(_ context.Context, key string, _ io.Reader, _ string) error {
	if len(s.uploaded) >= s.failAfter {
		if s.cancel != nil {
			s.cancel()
		}
		return errors.New("storage unavailable")
	}
	s.uploaded = append(s.uploaded, key)
	return nil
}

func (s *fakeStore) Download(context.Context, string) (*storage.BlobContent, error) {
	return nil, storage.ErrNotFound
}

func (s *fakeStore) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.deleted = append(s.deleted, key)
	return nil
}

func (s *fakeStore) Find(context.Context, string) (*storage.BlobMeta, error) {
	return nil, storage.ErrNotFound
}

func (s *fakeStore) List(context.Context, string, string, int32) (*storage.BlobList, error) {
	return &storage.BlobList{}, nil
}

func TestCreateValidation(t *testing.T) {
	png := extraction.File{Name: "a.png", ContentType: "image/png", Data: []byte("a")}

	tests := []struct {
		name string
		cmd  uploads.CreateCommand
		want error
	}{
		{"no files", uploads.CreateCommand{}, uploads.ErrNoFiles},
		{"bad type", uploads.CreateCommand{Files: []extraction.File{png}, Type: "essay"}, uploads.ErrInvalidType},
		{
			"unsupported",
			uploads.CreateCommand{Files: []extraction.File{{Name: "a.txt", ContentType: "text/plain"}}},
			extraction.ErrUnsupportedType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sys := uploads.New(nil, &fakeStore{}, &fakeExtractor{}, discard(), pageConfig)
			if _, err := sys.Create(context.Background(), tt.cmd); !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestCreateCompensatesBlobs(t *testing.T) {
	store := &fakeStore{failAfter: 1}
	extractor := &fakeExtractor{}
	sys := uploads.New(nil, store, extractor, discard(), pageConfig)

	_, err := sys.Create(context.Background(), uploads.CreateCommand{
		Type: uploads.TypeProblem,
		Files: []extraction.File{
			{Name: "one.png", ContentType: "image/png", Data: []byte("1")},
			{Name: "two.png", ContentType: "image/png", Data: []byte("2")},
		},
	})
	if err == nil {
		t.Fatal("Create error = nil, want storage failure")
	}

	if extractor.stage != prompts.StageExtractProblem {
		t.Errorf("stage = %q, want %q", extractor.stage, prompts.StageExtractProblem)
	}
	if len(store.uploaded) != 1 {
		t.Fatalf("uploaded = %v, want one blob", store.uploaded)
	}
	if len(store.deleted) != 1 || store.deleted[0] != store.uploaded[0] {
		t.Errorf("deleted = %v, want %v", store.deleted, store.uploaded)
	}
}

func TestCreateCompensatesAfterCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store := &fakeStore{failAfter: 1, cancel: cancel}
	sys := uploads.New(nil, store, &fakeExtractor{}, discard(), pageConfig)

	_, err := sys.Create(ctx, uploads.CreateCommand{
		Files: []extraction.File{
			{Name: "one.png", ContentType: "image/png", Data: []byte("1")},
			{Name: "two.png", ContentType: "image/png", Data: []byte("2")},
		},
	})
	if err == nil {
		t.Fatal("Create error = nil, want storage failure")
	}
	if ctx.Err() == nil {
		t.Fatal("request context still live")
	}
	if len(store.deleted) != 1 || store.deleted[0] != store.uploaded[0] {
		t.Errorf("deleted = %v, want %v", store.deleted, store.uploaded)
	}
}
