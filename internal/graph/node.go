package graph

import (
	"context"
	"encoding/json"
)

// Outputs maps declared output slot names to their produced values.
type Outputs map[string]any

// Node is one executable unit of the pack. Run receives the raw JSON object
// of input values keyed by slot name and must be safe for concurrent use.
type Node interface {
	Descriptor() Descriptor
	Run(ctx context.Context, inputs json.RawMessage) (Outputs, error)
}
