package mock

import (
	"context"
	"encoding/json"

	"github.com/AlexXia007/comfyui-nodes/internal/graph"
)

// Node implements graph.Node for tests.
type Node struct {
	Desc graph.Descriptor

	// captured inputs
	In json.RawMessage

	Out    graph.Outputs
	Err    error
	Called bool
}

func (m *Node) Descriptor() graph.Descriptor {
	return m.Desc
}

func (m *Node) Run(ctx context.Context, inputs json.RawMessage) (graph.Outputs, error) {
	m.Called = true
	m.In = inputs
	return m.Out, m.Err
}
