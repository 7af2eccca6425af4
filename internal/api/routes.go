package api

import (
	"net/http"

	"github.com/JaimeStill/homework/internal/config"
	"github.com/JaimeStill/homework/pkg/routes"
)

func registerRoutes(
	mux *http.ServeMux,
	domain *Domain,
	cfg *config.Config,
	runtime *Runtime,
) {
	storageHandler := newStorageHandler(
		runtime.Storage,
		runtime.Logger,
		cfg.Storage.MaxListSize,
	)

	routes.Register(
		mux,
		domain.Problems.Handler().Routes(),
		domain.Uploads.Handler(cfg.API.MaxUploadSizeBytes()).Routes(),
		storageHandler.routes(),
	)
}
