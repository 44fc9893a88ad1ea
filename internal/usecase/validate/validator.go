package validate

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/AlexXia007/comfyui-nodes/internal/port"
)

const (
	statusSuccess = "success"
	statusError   = "error"
	statusFailed  = "failed"
	statusNoInput = "no_input"
)

type validatorSrv struct {
	fetcher port.Fetcher
}

// NewInputValidator wires the screening rules around the fetcher used to
// probe the listed image URLs.
func NewInputValidator(f port.Fetcher) port.InputValidator {
	return &validatorSrv{fetcher: f}
}

// ValidateInput screens the prompt text and the image URL list against the
// configured limits. The first triggered limit per side wins, a prompt
// failure takes precedence over an image failure in the final code, and with
// TriggerSystemError set any final code other than 200 is returned as a
// *LimitError instead of outputs.
func (s *validatorSrv) ValidateInput(ctx context.Context, in port.ValidationInput) (port.ValidationOutput, error) {
	hasPrompt := strings.TrimSpace(in.PromptText) != ""
	hasImages := strings.TrimSpace(in.ImageURLs) != ""

	if !hasPrompt && !hasImages {
		return port.ValidationOutput{
			StatusCode:   "400",
			Status:       statusError,
			ErrorMessage: "at least one of prompt_text or image_urls is required",
			PromptStatus: statusNoInput,
			ImageStatus:  statusNoInput,
		}, nil
	}

	out := port.ValidationOutput{
		StatusCode: "200",
		Status:     statusSuccess,
		PromptText: in.PromptText,
	}

	var promptErr *LimitError
	if hasPrompt {
		promptErr = checkPrompt(in)
		if promptErr != nil {
			out.PromptStatus = statusFailed
			out.StatusCode = promptErr.Code
			out.Status = statusError
			out.ErrorMessage = promptErr.Message
		} else {
			out.PromptStatus = statusSuccess
		}
	} else {
		out.PromptStatus = statusNoInput
	}

	if hasImages {
		urls := splitURLs(in.ImageURLs)
		imageErr, processed := s.checkImages(ctx, in, urls)
		if len(processed) > 0 {
			out.ImageURLs = strings.Join(processed, "\n")
		} else {
			out.ImageURLs = in.ImageURLs
		}
		if imageErr != nil {
			out.ImageStatus = statusFailed
			if promptErr == nil {
				out.StatusCode = imageErr.Code
				out.Status = statusError
				out.ErrorMessage = imageErr.Message
			}
		} else {
			out.ImageStatus = statusSuccess
		}
	} else {
		out.ImageStatus = statusNoInput
	}

	if in.TriggerSystemError && out.StatusCode != "200" {
		return port.ValidationOutput{}, &LimitError{Code: out.StatusCode, Message: out.ErrorMessage}
	}
	return out, nil
}

// checkPrompt runs the prompt limits in order and stops at the first failure.
func checkPrompt(in port.ValidationInput) *LimitError {
	if lerr := checkBannedWords(in.PromptText, in.BannedWords); lerr != nil {
		return lerr
	}
	if lerr := checkCharCount(in.PromptText, in.CharCountLimit); lerr != nil {
		return lerr
	}
	return checkLanguage(in.PromptText, in.SupportedLanguages)
}

// checkImages runs the image limits cheapest first: the count check needs no
// network, then every URL is fetched and probed, then the size and per-image
// checks run over the probed data. The second return value is the URL list
// with non-ASCII entries percent-encoded.
func (s *validatorSrv) checkImages(ctx context.Context, in port.ValidationInput, urls []string) (*LimitError, []string) {
	if len(urls) == 0 {
		return &LimitError{Code: "418", Message: "no usable image URL found"}, nil
	}

	processed := make([]string, 0, len(urls))
	for _, u := range urls {
		if in.URLEncoding && hasNonASCII(u) {
			processed = append(processed, encodeURL(u))
		} else {
			processed = append(processed, u)
		}
	}

	if lerr := checkImageCount(len(urls), in.ImageCountLimit); lerr != nil {
		return lerr, processed
	}

	infos := make([]imageInfo, 0, len(urls))
	for i, u := range urls {
		data, err := s.fetcher.Fetch(ctx, u)
		if err != nil {
			return &LimitError{Code: "416", Message: fmt.Sprintf("image %d could not be read: %v", i+1, err)}, processed
		}
		info, err := probeImage(data)
		if err != nil {
			return &LimitError{Code: "416", Message: fmt.Sprintf("image %d could not be read: %v", i+1, err)}, processed
		}
		infos = append(infos, info)
	}

	if lerr := checkTotalSize(infos, in.TotalSizeLimit); lerr != nil {
		return lerr, processed
	}

	for i, info := range infos {
		if lerr := checkOneImage(info, in); lerr != nil {
			lerr.Message = fmt.Sprintf("image %d: %s", i+1, lerr.Message)
			return lerr, processed
		}
	}
	return nil, processed
}

// checkOneImage runs the per-image limits in order and stops at the first
// failure.
func checkOneImage(info imageInfo, in port.ValidationInput) *LimitError {
	if lerr := checkSingleSize(info, in.SingleSizeLimit); lerr != nil {
		return lerr
	}
	if lerr := checkEdges(info, in.LongEdgeLimit, in.ShortEdgeLimit); lerr != nil {
		return lerr
	}
	if lerr := checkAspectRatio(info, in.AspectRatioLimit); lerr != nil {
		return lerr
	}
	if lerr := checkFixedRatios(info, in.FixedRatios); lerr != nil {
		return lerr
	}
	if lerr := checkFormat(info, in.ImageFormats); lerr != nil {
		return lerr
	}
	return checkTransparency(info, in.TransparencyCheck)
}

func splitURLs(raw string) []string {
	var urls []string
	for _, line := range strings.Split(raw, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			urls = append(urls, line)
		}
	}
	return urls
}

func hasNonASCII(s string) bool {
	for _, r := range s {
		if r > 127 {
			return true
		}
	}
	return false
}

// encodeURL percent-encodes the path and query of one URL, leaving it
// untouched when it cannot be parsed. The fragment is dropped.
func encodeURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	out := u.Scheme + "://" + u.Host + u.EscapedPath()
	if q := u.Query().Encode(); q != "" {
		out += "?" + q
	}
	return out
}
