package upload

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/AlexXia007/comfyui-nodes/internal/port"
)

// validateConfig rejects an unusable destination before any client is
// constructed or any byte is written.
func validateConfig(cfg port.UploadConfig) error {
	if cfg.Endpoint == "" || cfg.AccessKeyID == "" || cfg.AccessKeySecret == "" || cfg.Bucket == "" {
		return errors.New("endpoint, access key pair and bucket are all required")
	}
	u, err := url.Parse(cfg.Endpoint)
	if err != nil {
		return fmt.Errorf("endpoint %q is not a valid URL: %v", cfg.Endpoint, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("endpoint %q must include an http or https scheme", cfg.Endpoint)
	}
	return nil
}
