package testutil

import (
	"net/http"
	"time"

	"github.com/AlexXia007/comfyui-nodes/internal/fetch"
	"github.com/AlexXia007/comfyui-nodes/internal/graph"
	"github.com/AlexXia007/comfyui-nodes/internal/handler/api"
	cMiddleware "github.com/AlexXia007/comfyui-nodes/internal/middleware"
	"github.com/AlexXia007/comfyui-nodes/internal/node"
	"github.com/AlexXia007/comfyui-nodes/internal/storage"
	"github.com/AlexXia007/comfyui-nodes/internal/usecase/match"
	"github.com/AlexXia007/comfyui-nodes/internal/usecase/upload"
	"github.com/AlexXia007/comfyui-nodes/internal/usecase/validate"
	"github.com/AlexXia007/comfyui-nodes/internal/uuid"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// BuildHost assembles the node host the way the daemon does, minus the
// listener: all three nodes registered, with routing, auth and fallback
// handlers in place. An empty jwtPublicKey leaves the host unauthenticated.
func BuildHost(jwtPublicKey string) http.Handler {
	uploaderSvc := upload.NewUploader(storage.New, uuid.NewUUID)
	validatorSvc := validate.NewInputValidator(fetch.NewHTTPFetcher(5*time.Second, 8<<20))
	matcherSvc := match.NewErrorMatcher()

	reg := graph.NewRegistry()
	reg.MustRegister(node.NewUpload(uploaderSvc))
	reg.MustRegister(node.NewValidator(validatorSvc))
	reg.MustRegister(node.NewMatcher(matcherSvc))

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cMiddleware.WithHostAuth(jwtPublicKey))
	r.NotFound(api.NotFoundHandler())
	r.MethodNotAllowed(api.MethodNotAllowedHandler())

	r.Get("/nodes", api.ListNodesHandler(reg))
	r.With(cMiddleware.WithNode(reg)).
		Post("/nodes/{id}/run", api.RunNodeHandler())

	return r
}
