package uploads_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/JaimeStill/homework/internal/extraction"
	"github.com/JaimeStill/homework/internal/uploads"
	"github.com/JaimeStill/homework/pkg/pagination"
	"github.com/JaimeStill/homework/pkg/routes"
	"github.com/JaimeStill/homework/pkg/storage"
)

const maxUploadSize = 1024

var pageConfig = pagination.Config{DefaultPageSize: 20, MaxPageSize: 100}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type mockSystem struct {
	uploads []uploads.Upload
	content map[uuid.UUID][]byte
	created []uploads.CreateCommand
	filters uploads.Filters
}

func (m *mockSystem) Handler(maxUploadSize int64) *uploads.Handler {
	return uploads.NewHandler(m, discard(), pageConfig, maxUploadSize)
}

func (m *mockSystem) Create(_ context.Context, cmd uploads.CreateCommand) (*uploads.CreateResult, error) {
	m.created = append(m.created, cmd)

	var sources []extraction.Source
	var out []uploads.Upload
	for _, f := range cmd.Files {
		out = append(out, uploads.Upload{ID: uuid.New(), Filename: f.Name, ContentType: f.ContentType})
		sources = append(sources, extraction.Source{Name: f.Name, Text: string(f.Data)})
	}
	return &uploads.CreateResult{Uploads: out, CombinedText: extraction.Combine(sources)}, nil
}

func (m *mockSystem) List(_ context.Context, page pagination.PageRequest, f uploads.Filters) (*pagination.PageResult[uploads.Upload], error) {
	m.filters = f
	result := pagination.NewPageResult(m.uploads, len(m.uploads), page.Page, page.PageSize)
	return &result, nil
}

func (m *mockSystem) Find(_ context.Context, id uuid.UUID) (*uploads.Upload, error) {
	for _, u := range m.uploads {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, uploads.ErrNotFound
}

func (m *mockSystem) Download(ctx context.Context, id uuid.UUID) (*uploads.Upload, *storage.BlobContent, error) {
	u, err := m.Find(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	data := m.content[id]
	return u, &storage.BlobContent{
		Body:          io.NopCloser(bytes.NewReader(data)),
		ContentType:   u.ContentType,
		ContentLength: int64(len(data)),
	}, nil
}

func (m *mockSystem) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := m.Find(ctx, id)
	return err
}

func (m *mockSystem) Sources(context.Context, []uuid.UUID) ([]extraction.Source, error) {
	return nil, nil
}

func seed() *mockSystem {
	id := uuid.New()
	return &mockSystem{
		uploads: []uploads.Upload{{
			ID:          id,
			Filename:    "homework.png",
			ContentType: "image/png",
			UploadedAt:  time.Now(),
		}},
		content: map[uuid.UUID][]byte{id: []byte("png-bytes")},
	}
}

func newMux(sys *mockSystem) *http.ServeMux {
	mux := http.NewServeMux()
	routes.Register(mux, sys.Handler(maxUploadSize).Routes())
	return mux
}

type part struct {
	name        string
	contentType string
	data        string
}

func multipartRequest(t *testing.T, fields map[string]string, parts ...part) *http.Request {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatal(err)
		}
	}
	for _, p := range parts {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="file"; filename="`+p.name+`"`)
		h.Set("Content-Type", p.contentType)
		w, err := mw.CreatePart(h)
		if err != nil {
			t.Fatal(err)
		}
		w.Write([]byte(p.data))
	}
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/uploads", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestHandlerUpload(t *testing.T) {
	sys := seed()
	mux := newMux(sys)

	req := multipartRequest(t,
		map[string]string{"user_email": "student@example.com", "type": "solution"},
		part{"problem.png", "image/png", "Solve 2x = 4"},
		part{"work.pdf", "application/pdf", "x = 2"},
	)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body)
	}

	var res uploads.CreateResult
	if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(res.Uploads) != 2 {
		t.Errorf("len(Uploads) = %d, want 2", len(res.Uploads))
	}
	if want := "Solve 2x = 4\n\n--- From work.pdf ---\nx = 2"; res.CombinedText != want {
		t.Errorf("CombinedText = %q, want %q", res.CombinedText, want)
	}

	cmd := sys.created[0]
	if cmd.UserEmail != "student@example.com" || cmd.Type != "solution" {
		t.Errorf("command = %+v", cmd)
	}
	if cmd.Files[1].ContentType != "application/pdf" {
		t.Errorf("ContentType = %q, want application/pdf", cmd.Files[1].ContentType)
	}
}

func TestHandlerUploadRejects(t *testing.T) {
	tests := []struct {
		name   string
		parts  []part
		status int
	}{
		{"no files", nil, http.StatusBadRequest},
		{"unsupported type", []part{{"notes.txt", "text/plain", "2 + 2"}}, http.StatusUnsupportedMediaType},
		{"too large", []part{{"big.png", "image/png", strings.Repeat("x", maxUploadSize+1)}}, http.StatusRequestEntityTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sys := seed()
			rec := httptest.NewRecorder()
			newMux(sys).ServeHTTP(rec, multipartRequest(t, nil, tt.parts...))

			if rec.Code != tt.status {
				t.Errorf("status = %d, want %d: %s", rec.Code, tt.status, rec.Body)
			}
			if len(sys.created) != 0 {
				t.Errorf("Create called %d times, want 0", len(sys.created))
			}
		})
	}
}

func TestHandlerDownload(t *testing.T) {
	sys := seed()
	mux := newMux(sys)
	id := sys.uploads[0].ID

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/uploads/"+id.String()+"/download", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("Content-Type = %q, want image/png", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "homework.png") {
		t.Errorf("Content-Disposition = %q, want filename", cd)
	}
	if rec.Body.String() != "png-bytes" {
		t.Errorf("body = %q, want png-bytes", rec.Body)
	}

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/uploads/"+uuid.NewString()+"/download", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("missing status = %d, want 404", rec.Code)
	}
}

func TestHandlerListAndFind(t *testing.T) {
	sys := seed()
	mux := newMux(sys)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/uploads?filename=home", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d, want 200", rec.Code)
	}
	if sys.filters.Filename == nil || *sys.filters.Filename != "home" {
		t.Errorf("filters = %+v, want filename home", sys.filters)
	}

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/uploads/"+sys.uploads[0].ID.String(), nil))
	if rec.Code != http.StatusOK {
		t.Errorf("find status = %d, want 200", rec.Code)
	}

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/uploads/bogus", nil))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("delete bad id status = %d, want 400", rec.Code)
	}
}
