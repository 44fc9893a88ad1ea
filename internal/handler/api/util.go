package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/AlexXia007/comfyui-nodes/internal/logger"
	"github.com/AlexXia007/comfyui-nodes/internal/node"
	"github.com/AlexXia007/comfyui-nodes/internal/payload"
	"github.com/AlexXia007/comfyui-nodes/internal/usecase/match"
	"github.com/AlexXia007/comfyui-nodes/internal/usecase/upload"
	"github.com/AlexXia007/comfyui-nodes/internal/usecase/validate"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func WriteError(w http.ResponseWriter, status int, msg string, err error) {
	ctx := context.Background()
	if err != nil {
		logger.Errorf(ctx, "❌  %s: %v", msg, err)
	} else {
		logger.Error(ctx, "❌  "+msg)
	}
	w.Header().Set("Cache-Control", "no-store, max-age=0, must-revalidate")
	RespondJSON(w, status, ErrorResponse{Error: msg})
}

// writeRunError sorts run failures into client mistakes (422), storage
// trouble (502) and everything else (500).
func writeRunError(w http.ResponseWriter, id string, err error) {
	var limitErr *validate.LimitError
	var matchErr *match.MatchError
	switch {
	case errors.Is(err, node.ErrInvalidInput),
		errors.Is(err, payload.ErrNoPayload),
		errors.Is(err, match.ErrBadRules),
		errors.As(err, &limitErr),
		errors.As(err, &matchErr):
		WriteError(w, http.StatusUnprocessableEntity, err.Error(), nil)
	case errors.Is(err, upload.ErrUploadFailed):
		WriteError(w, http.StatusBadGateway, err.Error(), nil)
	default:
		WriteError(w, http.StatusInternalServerError, fmt.Sprintf("could not run node %q", id), err)
	}
}

func RespondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Errorf(context.Background(), "❌  Failed to encode JSON response: %v", err)
	}
}
