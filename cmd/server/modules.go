package main

import (
	"net/http"

	"github.com/JaimeStill/homework/internal/api"
	"github.com/JaimeStill/homework/internal/config"
	"github.com/JaimeStill/homework/internal/infrastructure"
	"github.com/JaimeStill/homework/pkg/handlers"
	"github.com/JaimeStill/homework/pkg/module"
)

type Modules struct {
	API *module.Module
}

func NewModules(infra *infrastructure.Infrastructure, cfg *config.Config) (*Modules, error) {
	apiModule, err := api.NewModule(cfg, infra)
	if err != nil {
		return nil, err
	}

	return &Modules{API: apiModule}, nil
}

func (m *Modules) Mount(router *module.Router) {
	router.Mount(m.API)
}

type healthStatus struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
	LLM     bool   `json:"llm"`
	Wolfram bool   `json:"wolfram"`
}

func buildRouter(infra *infrastructure.Infrastructure, version string) *module.Router {
	router := module.NewRouter()

	router.HandleNative("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		handlers.RespondJSON(w, http.StatusOK, healthStatus{
			Status:  "ok",
			Version: version,
			LLM:     infra.LLM != nil,
			Wolfram: infra.Wolfram != nil,
		})
	})

	router.HandleNative("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		if !infra.Lifecycle.Ready() {
			handlers.RespondJSON(w, http.StatusServiceUnavailable, healthStatus{Status: "not ready"})
			return
		}
		handlers.RespondJSON(w, http.StatusOK, healthStatus{Status: "ready"})
	})

	return router
}
