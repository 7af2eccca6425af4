package api

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/JaimeStill/homework/pkg/handlers"
	"github.com/JaimeStill/homework/pkg/routes"
	"github.com/JaimeStill/homework/pkg/storage"
)

// uploadPrefix scopes blob browsing to uploaded homework files.
const uploadPrefix = "uploads/"

// storageHandler exposes read-only blob metadata for uploaded files.
// Content is served by the uploads domain.
type storageHandler struct {
	store       storage.System
	logger      *slog.Logger
	maxListSize int32
}

func newStorageHandler(store storage.System, logger *slog.Logger, maxListSize int32) *storageHandler {
	return &storageHandler{
		store:       store,
		logger:      logger.With("handler", "storage"),
		maxListSize: maxListSize,
	}
}

func (h *storageHandler) routes() routes.Group {
	return routes.Group{
		Prefix: "/storage",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.list},
			{Method: "GET", Pattern: "/{key...}", Handler: h.find},
		},
	}
}

// list pages blob metadata below uploads/, optionally narrowed by an
// upload ID prefix.
func (h *storageHandler) list(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	maxResults, err := storage.ParseMaxResults(q.Get("max_results"), h.maxListSize)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	prefix := uploadPrefix + strings.TrimPrefix(q.Get("prefix"), uploadPrefix)

	result, err := h.store.List(r.Context(), prefix, q.Get("marker"), maxResults)
	if err != nil {
		handlers.RespondError(w, h.logger, storage.MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *storageHandler) find(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")
	if !strings.HasPrefix(key, uploadPrefix) {
		key = uploadPrefix + key
	}

	meta, err := h.store.Find(r.Context(), key)
	if err != nil {
		handlers.RespondError(w, h.logger, storage.MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, meta)
}
