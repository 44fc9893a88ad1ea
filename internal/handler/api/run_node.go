package api

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/AlexXia007/comfyui-nodes/internal/api_context"
	"github.com/AlexXia007/comfyui-nodes/internal/graph"
)

type RunNodeRequest struct {
	Inputs json.RawMessage `json:"inputs"`
}

type RunNodeResponse struct {
	Outputs graph.Outputs `json:"outputs"`
}

func RunNodeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		n, ok := api_context.NodeFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "node is required", nil)
			return
		}
		id := n.Descriptor().ID

		// An empty body runs the node on its defaults.
		var req RunNodeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			WriteError(w, http.StatusBadRequest, "invalid request payload", err)
			return
		}
		if len(req.Inputs) == 0 {
			req.Inputs = json.RawMessage("{}")
		}

		out, err := n.Run(r.Context(), req.Inputs)
		if err != nil {
			writeRunError(w, id, err)
			return
		}

		RespondJSON(w, http.StatusOK, RunNodeResponse{Outputs: out})
		log.Printf("✅  Successfully ran node %q", id)
	}
}
