package node

import (
	"context"
	"encoding/json"

	"github.com/AlexXia007/comfyui-nodes/internal/graph"
	"github.com/AlexXia007/comfyui-nodes/internal/port"
	"github.com/AlexXia007/comfyui-nodes/internal/validation"
)

// validatorRequest is the wire form of one validation run. Every slot is
// optional; absent limits read as their disabled defaults.
type validatorRequest struct {
	PromptText string `json:"prompt_text"`
	ImageURLs  string `json:"image_urls"`

	BannedWords        string `json:"banned_words"`
	CharCountLimit     string `json:"char_count_limit"`
	SupportedLanguages string `json:"supported_languages"`

	URLEncoding       *bool  `json:"url_encoding"`
	ImageCountLimit   string `json:"image_count_limit"`
	TotalSizeLimit    string `json:"total_size_limit"`
	SingleSizeLimit   string `json:"single_size_limit"`
	LongEdgeLimit     string `json:"long_edge_limit"`
	ShortEdgeLimit    string `json:"short_edge_limit"`
	AspectRatioLimit  string `json:"aspect_ratio_limit"`
	FixedRatios       string `json:"fixed_ratios"`
	ImageFormats      string `json:"image_formats"`
	TransparencyCheck string `json:"transparency_check" validate:"omitempty,oneof=disabled only_transparent no_transparent"`

	TriggerSystemError bool `json:"trigger_system_error"`
}

type validatorNode struct {
	validator port.InputValidator
}

// NewValidator wraps the input validation pipeline as a graph node.
func NewValidator(validator port.InputValidator) graph.Node {
	return &validatorNode{validator: validator}
}

func (n *validatorNode) Descriptor() graph.Descriptor {
	return graph.Descriptor{
		ID:          "input_validator",
		DisplayName: "Input Validator Node",
		Category:    "AIxIA_nodes_tools",
		Inputs: map[string]graph.PortSpec{
			"prompt_text": {Type: graph.TypeString, Default: "", Multiline: true},
			"image_urls":  {Type: graph.TypeString, Default: "", Multiline: true, Tooltip: "Image URLs, one per line"},
			"banned_words": {
				Type: graph.TypeString, Default: "",
				Tooltip: "Banned words separated by semicolons; any hit fails, e.g. badword1;badword2",
			},
			"char_count_limit": {
				Type: graph.TypeString, Default: "0,0",
				Tooltip: "Character count bounds as min,max, e.g. 10,500",
			},
			"supported_languages": {
				Type: graph.TypeString, Default: "",
				Tooltip: "Allowed languages separated by commas, e.g. zh,en,ja,ko",
			},
			"url_encoding": {
				Type: graph.TypeBool, Default: true,
				Tooltip: "Percent-encode non-ASCII URLs before returning them",
			},
			"image_count_limit": {
				Type: graph.TypeString, Default: "0,0",
				Tooltip: "Image count bounds as min,max, e.g. 1,10",
			},
			"total_size_limit": {
				Type: graph.TypeString, Default: "0,0",
				Tooltip: "Total image size bounds in KB as min,max, e.g. 100,10240",
			},
			"single_size_limit": {
				Type: graph.TypeString, Default: "0,0",
				Tooltip: "Single image size bounds in KB as min,max, e.g. 10,4096",
			},
			"long_edge_limit": {
				Type: graph.TypeString, Default: "0,0",
				Tooltip: "Long edge bounds in pixels as min,max, e.g. 10,3000",
			},
			"short_edge_limit": {
				Type: graph.TypeString, Default: "0,0",
				Tooltip: "Short edge bounds in pixels as min,max, e.g. 10,3000",
			},
			"aspect_ratio_limit": {
				Type: graph.TypeString, Default: "0,0",
				Tooltip: "Short to long edge ratio bounds as min,max, e.g. 0.1,0.9",
			},
			"fixed_ratios": {
				Type: graph.TypeString, Default: "0:0",
				Tooltip: "Allowed aspect ratios separated by commas, e.g. 4:3,16:9",
			},
			"image_formats": {
				Type: graph.TypeString, Default: "",
				Tooltip: "Allowed image formats separated by commas, e.g. jpg,png,webp",
			},
			"transparency_check": {
				Type: graph.TypeEnum, Default: "disabled",
				Options: []string{"disabled", "only_transparent", "no_transparent"},
				Tooltip: "Transparent background requirement",
			},
			"trigger_system_error": {
				Type: graph.TypeBool, Default: false,
				Tooltip: "Raise a run error instead of reporting failures through the outputs",
			},
		},
		Outputs: []graph.OutputSpec{
			{Name: "status_code", Type: graph.TypeString},
			{Name: "status", Type: graph.TypeString},
			{Name: "error_message", Type: graph.TypeString},
			{Name: "image_urls", Type: graph.TypeString},
			{Name: "prompt_text", Type: graph.TypeString},
			{Name: "prompt_status", Type: graph.TypeString},
			{Name: "image_status", Type: graph.TypeString},
		},
	}
}

func (n *validatorNode) Run(ctx context.Context, inputs json.RawMessage) (graph.Outputs, error) {
	var req validatorRequest
	if err := json.Unmarshal(inputs, &req); err != nil {
		return nil, invalidInput(err)
	}
	if err := validation.ValidateStruct(&req); err != nil {
		return nil, invalidInput(err)
	}

	urlEncoding := true
	if req.URLEncoding != nil {
		urlEncoding = *req.URLEncoding
	}

	out, err := n.validator.ValidateInput(ctx, port.ValidationInput{
		PromptText:         req.PromptText,
		ImageURLs:          req.ImageURLs,
		BannedWords:        req.BannedWords,
		CharCountLimit:     req.CharCountLimit,
		SupportedLanguages: req.SupportedLanguages,
		URLEncoding:        urlEncoding,
		ImageCountLimit:    req.ImageCountLimit,
		TotalSizeLimit:     req.TotalSizeLimit,
		SingleSizeLimit:    req.SingleSizeLimit,
		LongEdgeLimit:      req.LongEdgeLimit,
		ShortEdgeLimit:     req.ShortEdgeLimit,
		AspectRatioLimit:   req.AspectRatioLimit,
		FixedRatios:        req.FixedRatios,
		ImageFormats:       req.ImageFormats,
		TransparencyCheck:  req.TransparencyCheck,
		TriggerSystemError: req.TriggerSystemError,
	})
	if err != nil {
		return nil, err
	}
	return graph.Outputs{
		"status_code":   out.StatusCode,
		"status":        out.Status,
		"error_message": out.ErrorMessage,
		"image_urls":    out.ImageURLs,
		"prompt_text":   out.PromptText,
		"prompt_status": out.PromptStatus,
		"image_status":  out.ImageStatus,
	}, nil
}
