package api

import (
	"log"
	"net/http"

	"github.com/AlexXia007/comfyui-nodes/internal/graph"
)

func ListNodesHandler(reg *graph.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		descriptors := reg.Descriptors()

		RespondJSON(w, http.StatusOK, descriptors)
		log.Printf("✅  Listed %d nodes", len(descriptors))
	}
}
