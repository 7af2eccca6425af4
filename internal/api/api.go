// Package api mounts the problems and uploads domains, plus a read-only
// view of stored upload blobs, under the configured base path.
package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/JaimeStill/homework/internal/config"
	"github.com/JaimeStill/homework/internal/infrastructure"
	"github.com/JaimeStill/homework/pkg/middleware"
	"github.com/JaimeStill/homework/pkg/module"
)

// NewModule builds the API module. Requests pass through CORS first and
// are logged with the api module logger.
func NewModule(cfg *config.Config, infra *infrastructure.Infrastructure) (*module.Module, error) {
	base := cfg.API.BasePath
	if !strings.HasPrefix(base, "/") || strings.Count(base, "/") != 1 {
		return nil, fmt.Errorf("api: invalid base path %q", base)
	}

	rt := NewRuntime(cfg, infra)

	mux := http.NewServeMux()
	registerRoutes(mux, NewDomain(rt), cfg, rt)

	api := module.New(base, mux)
	api.Use(middleware.CORS(&cfg.API.CORS))
	api.Use(middleware.Logger(rt.Logger))

	rt.Logger.Info(
		"api mounted",
		"base_path", base,
		"default_mode", rt.Workflow.DefaultMode(),
		"wolfram", rt.Wolfram != nil,
	)
	return api, nil
}
