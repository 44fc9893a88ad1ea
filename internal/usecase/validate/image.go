package validate

import (
	"bytes"
	"fmt"
	"image"
	"math"
	"strings"

	// register the decoders the URL probe must understand
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/gabriel-vasile/mimetype"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// imageInfo is what the checks need to know about one fetched image.
type imageInfo struct {
	Width    int
	Height   int
	SizeKB   float64
	Format   string
	HasAlpha bool
}

// probeImage decodes one downloaded image and reads its dimensions, format
// name and whether any pixel is less than fully opaque.
func probeImage(data []byte) (imageInfo, error) {
	img, decodedAs, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return imageInfo{}, fmt.Errorf("decoding image: %w", err)
	}

	format := strings.TrimPrefix(mimetype.Detect(data).Extension(), ".")
	if format == "" {
		format = decodedAs
	}

	b := img.Bounds()
	return imageInfo{
		Width:    b.Dx(),
		Height:   b.Dy(),
		SizeKB:   float64(len(data)) / 1024,
		Format:   format,
		HasAlpha: !isOpaque(img),
	}, nil
}

type opaquer interface {
	Opaque() bool
}

func isOpaque(img image.Image) bool {
	if o, ok := img.(opaquer); ok {
		return o.Opaque()
	}
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a < 0xffff {
				return false
			}
		}
	}
	return true
}

func checkImageCount(count int, limitStr string) *LimitError {
	b, err := parseBounds(limitStr)
	if err != nil {
		return &LimitError{Code: "417", Message: fmt.Sprintf("bad image count limit: %v", err)}
	}
	if b == nil {
		return nil
	}
	if b.min > 0 && count < b.min {
		return &LimitError{Code: "401", Message: fmt.Sprintf("too few images, got %d, at least %d required", count, b.min)}
	}
	if b.max > 0 && count > b.max {
		return &LimitError{Code: "402", Message: fmt.Sprintf("too many images, got %d, at most %d allowed", count, b.max)}
	}
	return nil
}

func checkTotalSize(infos []imageInfo, limitStr string) *LimitError {
	b, err := parseBounds(limitStr)
	if err != nil {
		return &LimitError{Code: "417", Message: fmt.Sprintf("bad total size limit: %v", err)}
	}
	if b == nil {
		return nil
	}
	var total float64
	for _, info := range infos {
		total += info.SizeKB
	}
	if b.min > 0 && total < float64(b.min) {
		return &LimitError{Code: "403", Message: fmt.Sprintf("total image size too small, %dKB, at least %dKB required", int(total), b.min)}
	}
	if b.max > 0 && total > float64(b.max) {
		return &LimitError{Code: "404", Message: fmt.Sprintf("total image size too large, %dKB, at most %dKB allowed", int(total), b.max)}
	}
	return nil
}

func checkSingleSize(info imageInfo, limitStr string) *LimitError {
	b, err := parseBounds(limitStr)
	if err != nil {
		return &LimitError{Code: "417", Message: fmt.Sprintf("bad single size limit: %v", err)}
	}
	if b == nil {
		return nil
	}
	if b.min > 0 && info.SizeKB < float64(b.min) {
		return &LimitError{Code: "405", Message: fmt.Sprintf("image too small, %dKB, at least %dKB required", int(info.SizeKB), b.min)}
	}
	if b.max > 0 && info.SizeKB > float64(b.max) {
		return &LimitError{Code: "406", Message: fmt.Sprintf("image too large, %dKB, at most %dKB allowed", int(info.SizeKB), b.max)}
	}
	return nil
}

func checkEdges(info imageInfo, longLimit, shortLimit string) *LimitError {
	longEdge, shortEdge := info.Width, info.Height
	if shortEdge > longEdge {
		longEdge, shortEdge = shortEdge, longEdge
	}

	b, err := parseBounds(longLimit)
	if err != nil {
		return &LimitError{Code: "417", Message: fmt.Sprintf("bad long edge limit: %v", err)}
	}
	if b != nil {
		if b.min > 0 && longEdge < b.min {
			return &LimitError{Code: "407", Message: fmt.Sprintf("long edge too small, %dpx, at least %dpx required", longEdge, b.min)}
		}
		if b.max > 0 && longEdge > b.max {
			return &LimitError{Code: "408", Message: fmt.Sprintf("long edge too large, %dpx, at most %dpx allowed", longEdge, b.max)}
		}
	}

	b, err = parseBounds(shortLimit)
	if err != nil {
		return &LimitError{Code: "417", Message: fmt.Sprintf("bad short edge limit: %v", err)}
	}
	if b != nil {
		if b.min > 0 && shortEdge < b.min {
			return &LimitError{Code: "409", Message: fmt.Sprintf("short edge too small, %dpx, at least %dpx required", shortEdge, b.min)}
		}
		if b.max > 0 && shortEdge > b.max {
			return &LimitError{Code: "410", Message: fmt.Sprintf("short edge too large, %dpx, at most %dpx allowed", shortEdge, b.max)}
		}
	}
	return nil
}

// checkAspectRatio bounds the short/long edge quotient, which is always in
// (0, 1].
func checkAspectRatio(info imageInfo, limitStr string) *LimitError {
	b, err := parseRatioBounds(limitStr)
	if err != nil {
		return &LimitError{Code: "417", Message: fmt.Sprintf("bad aspect ratio limit: %v", err)}
	}
	if b == nil {
		return nil
	}

	longEdge, shortEdge := info.Width, info.Height
	if shortEdge > longEdge {
		longEdge, shortEdge = shortEdge, longEdge
	}
	ratio := float64(shortEdge) / float64(longEdge)

	if b.min > 0 && ratio < b.min {
		return &LimitError{Code: "411", Message: fmt.Sprintf("edge ratio too small, %.2f, at least %v required", ratio, b.min)}
	}
	if b.max > 0 && ratio > b.max {
		return &LimitError{Code: "412", Message: fmt.Sprintf("edge ratio too large, %.2f, at most %v allowed", ratio, b.max)}
	}
	return nil
}

func checkFixedRatios(info imageInfo, limitStr string) *LimitError {
	ratios, err := parseFixedRatios(limitStr)
	if err != nil {
		return &LimitError{Code: "417", Message: fmt.Sprintf("bad fixed ratio limit: %v", err)}
	}
	if len(ratios) == 0 {
		return nil
	}

	current := float64(info.Width) / float64(info.Height)
	for _, target := range ratios {
		if math.Abs(current-target) < 0.01 {
			return nil
		}
	}
	return &LimitError{
		Code:    "413",
		Message: fmt.Sprintf("aspect ratio not allowed, %d:%d is about %.2f, allowed: %s", info.Width, info.Height, current, limitStr),
	}
}

// checkFormat treats jpg and jpeg as the same format.
func checkFormat(info imageInfo, limitStr string) *LimitError {
	if strings.TrimSpace(limitStr) == "" {
		return nil
	}
	var allowed []string
	for _, f := range strings.Split(limitStr, ",") {
		allowed = append(allowed, strings.ToLower(strings.TrimSpace(f)))
	}

	format := strings.ToLower(info.Format)
	for _, f := range allowed {
		if f == format {
			return nil
		}
		if f == "jpg" && format == "jpeg" || f == "jpeg" && format == "jpg" {
			return nil
		}
	}
	return &LimitError{Code: "414", Message: fmt.Sprintf("image format not supported, got %s, allowed: %s", info.Format, limitStr)}
}

func checkTransparency(info imageInfo, mode string) *LimitError {
	switch mode {
	case "only_transparent":
		if !info.HasAlpha {
			return &LimitError{Code: "415", Message: "image must have a transparent background"}
		}
	case "no_transparent":
		if info.HasAlpha {
			return &LimitError{Code: "415", Message: "image must not have a transparent background"}
		}
	}
	return nil
}
