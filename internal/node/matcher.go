package node

import (
	"context"
	"encoding/json"

	"github.com/AlexXia007/comfyui-nodes/internal/graph"
	"github.com/AlexXia007/comfyui-nodes/internal/port"
)

// matcherRequest is the wire form of one matching run.
type matcherRequest struct {
	InputText1 string `json:"input_text1"`
	InputText2 string `json:"input_text2"`
	InputText3 string `json:"input_text3"`

	ErrorRules  string `json:"error_rules"`
	FuzzyMatch  bool   `json:"fuzzy_match"`
	SystemError *bool  `json:"system_error"`
}

type matcherNode struct {
	matcher port.ErrorMatcher
}

// NewMatcher wraps the error matching pipeline as a graph node.
func NewMatcher(matcher port.ErrorMatcher) graph.Node {
	return &matcherNode{matcher: matcher}
}

func (n *matcherNode) Descriptor() graph.Descriptor {
	return graph.Descriptor{
		ID:          "error_matcher",
		DisplayName: "Error Matcher Node",
		Category:    "AIxIA_nodes_tools",
		Inputs: map[string]graph.PortSpec{
			"input_text1": {Type: graph.TypeString, Required: true, Default: "", Multiline: true},
			"input_text2": {Type: graph.TypeString, Required: true, Default: "", Multiline: true},
			"input_text3": {Type: graph.TypeString, Required: true, Default: "", Multiline: true},
			"error_rules": {
				Type: graph.TypeString, Default: "", Multiline: true,
				Tooltip: `One rule per line as "match text":"error code":"error message"`,
			},
			"fuzzy_match": {
				Type: graph.TypeBool, Default: false,
				Tooltip: "Match rule text as a substring instead of the whole trimmed input",
			},
			"system_error": {
				Type: graph.TypeBool, Default: true,
				Tooltip: "Raise a run error on match instead of reporting it through the outputs",
			},
		},
		Outputs: []graph.OutputSpec{
			{Name: "error_code", Type: graph.TypeString},
			{Name: "error_message", Type: graph.TypeString},
		},
	}
}

func (n *matcherNode) Run(ctx context.Context, inputs json.RawMessage) (graph.Outputs, error) {
	var req matcherRequest
	if err := json.Unmarshal(inputs, &req); err != nil {
		return nil, invalidInput(err)
	}

	systemError := true
	if req.SystemError != nil {
		systemError = *req.SystemError
	}

	out, err := n.matcher.MatchError(ctx, port.MatchInput{
		Texts:       []string{req.InputText1, req.InputText2, req.InputText3},
		Rules:       req.ErrorRules,
		FuzzyMatch:  req.FuzzyMatch,
		SystemError: systemError,
	})
	if err != nil {
		return nil, err
	}
	return graph.Outputs{
		"error_code":    out.Code,
		"error_message": out.Message,
	}, nil
}
