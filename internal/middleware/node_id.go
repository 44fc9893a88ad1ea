package middleware

import (
	"context"
	"fmt"
	"net/http"

	"github.com/AlexXia007/comfyui-nodes/internal/api_context"
	"github.com/AlexXia007/comfyui-nodes/internal/graph"
	"github.com/AlexXia007/comfyui-nodes/internal/handler/api"
	"github.com/go-chi/chi/v5"
)

func WithNode(reg *graph.Registry) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := chi.URLParam(r, "id")
			if id == "" {
				api.WriteError(w, http.StatusBadRequest, "node ID is required", nil)
				return
			}
			n, ok := reg.Get(id)
			if !ok {
				api.WriteError(w, http.StatusNotFound, fmt.Sprintf("node %q does not exist", id), nil)
				return
			}

			// stash it in context and call the real handler
			ctx := context.WithValue(r.Context(), api_context.NodeKey, n)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
