package node

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"

	// register the frame formats a graph host may send
	_ "image/jpeg"
	_ "image/png"

	"github.com/AlexXia007/comfyui-nodes/internal/payload"
	_ "golang.org/x/image/webp"
)

// wireImage carries an image payload as base64 encoded frames.
type wireImage struct {
	Frames []string `json:"frames" validate:"required,min=1"`
}

func (w *wireImage) decode() (*payload.Image, error) {
	frames := make([]image.Image, 0, len(w.Frames))
	for i, enc := range w.Frames {
		raw, err := base64.StdEncoding.DecodeString(enc)
		if err != nil {
			return nil, fmt.Errorf("frame %d is not valid base64: %v", i+1, err)
		}
		img, _, err := image.Decode(bytes.NewReader(raw))
		if err != nil {
			return nil, fmt.Errorf("frame %d could not be decoded: %v", i+1, err)
		}
		frames = append(frames, img)
	}
	return &payload.Image{Frames: frames}, nil
}

// wireAudio carries the sample buffer as channel-major float slices. The
// rate can arrive as sample_rate or the shorter sr; sample_rate wins when
// both are present.
type wireAudio struct {
	Samples    [][]float64 `json:"samples" validate:"required,min=1"`
	SampleRate *int        `json:"sample_rate"`
	SR         *int        `json:"sr"`
}

func (w *wireAudio) decode() *payload.Audio {
	aud := &payload.Audio{Samples: w.Samples}
	if w.SampleRate != nil {
		aud.SampleRate = *w.SampleRate
	} else if w.SR != nil {
		aud.SampleRate = *w.SR
	}
	return aud
}

// wireVideo carries raw container bytes as base64.
type wireVideo struct {
	Data string `json:"data" validate:"required"`
}

func (w *wireVideo) decode() (*payload.Video, error) {
	raw, err := base64.StdEncoding.DecodeString(w.Data)
	if err != nil {
		return nil, fmt.Errorf("video data is not valid base64: %v", err)
	}
	return &payload.Video{Data: raw}, nil
}
