package port

import (
	"context"

	"github.com/AlexXia007/comfyui-nodes/internal/payload"
	"github.com/AlexXia007/comfyui-nodes/internal/uuid"
)

type UUIDGen func() uuid.UUID

// Uploader encodes one media payload and writes it to object storage.
type Uploader interface {
	Upload(ctx context.Context, in UploadInput) (UploadOutput, error)
}

// UploadConfig is the per-run storage destination. Endpoint, key pair and
// bucket are required; the endpoint must include an http or https scheme.
type UploadConfig struct {
	Endpoint        string
	AccessKeyID     string
	AccessKeySecret string
	SecurityToken   string
	Bucket          string
	Prefix          string
	UseSignedURL    bool
	SignedURLExpire int
}

type UploadInput struct {
	Image  *payload.Image
	Audio  *payload.Audio
	Video  *payload.Video
	Config UploadConfig

	// Non-empty values replace the encoder's generated name and MIME type.
	FileName string
	MimeType string
}
type UploadOutput struct {
	URL string `json:"url"`
	Key string `json:"key"`
}

// InputValidator screens a prompt text and a list of image URLs against
// configured limits and reports a status code plus message.
type InputValidator interface {
	ValidateInput(ctx context.Context, in ValidationInput) (ValidationOutput, error)
}

// ValidationInput carries the texts under screening plus the raw limit
// strings exactly as configured on the node; parse failures of a limit are
// reported through the result codes, not at decode time.
type ValidationInput struct {
	PromptText string
	ImageURLs  string

	BannedWords        string
	CharCountLimit     string
	SupportedLanguages string

	URLEncoding       bool
	ImageCountLimit   string
	TotalSizeLimit    string
	SingleSizeLimit   string
	LongEdgeLimit     string
	ShortEdgeLimit    string
	AspectRatioLimit  string
	FixedRatios       string
	ImageFormats      string
	TransparencyCheck string

	TriggerSystemError bool
}
type ValidationOutput struct {
	StatusCode   string `json:"status_code"`
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	ImageURLs    string `json:"image_urls"`
	PromptText   string `json:"prompt_text"`
	PromptStatus string `json:"prompt_status"`
	ImageStatus  string `json:"image_status"`
}

// ErrorMatcher scans input texts against configured rules and reports or
// raises the first matching error.
type ErrorMatcher interface {
	MatchError(ctx context.Context, in MatchInput) (MatchOutput, error)
}
type MatchInput struct {
	Texts       []string
	Rules       string
	FuzzyMatch  bool
	SystemError bool
}
type MatchOutput struct {
	Code    string `json:"error_code"`
	Message string `json:"error_message"`
}
