package payload

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"image/png"

	"github.com/AlexXia007/comfyui-nodes/internal/uuid"
)

// Object is an encoded payload ready for storage: raw bytes plus the default
// file name and MIME type derived from the variant.
type Object struct {
	Data []byte
	Name string
	MIME string
}

// Encode normalizes a payload into an Object. A single image frame becomes a
// PNG, several frames become a ZIP of PNGs, audio becomes a 16-bit PCM WAV at
// the resolved sample rate, and video bytes pass through untouched.
func Encode(p Payload, gen func() uuid.UUID) (Object, error) {
	switch v := p.(type) {
	case *Image:
		return encodeImage(v, gen)
	case *Audio:
		return encodeAudio(v, gen)
	case *Video:
		if len(v.Data) == 0 {
			return Object{}, errors.New("video payload is empty")
		}
		return Object{
			Data: v.Data,
			Name: fmt.Sprintf("video_%s.mp4", gen().Short()),
			MIME: "video/mp4",
		}, nil
	}
	return Object{}, fmt.Errorf("unsupported payload type %T", p)
}

func encodeImage(img *Image, gen func() uuid.UUID) (Object, error) {
	if len(img.Frames) == 0 {
		return Object{}, errors.New("image payload has no frames")
	}

	// Fastest compression level, frames are written once and never re-read.
	enc := png.Encoder{CompressionLevel: png.BestSpeed}

	if len(img.Frames) == 1 {
		var buf bytes.Buffer
		if err := enc.Encode(&buf, img.Frames[0]); err != nil {
			return Object{}, fmt.Errorf("encoding PNG: %w", err)
		}
		return Object{
			Data: buf.Bytes(),
			Name: fmt.Sprintf("image_%s.png", gen().Short()),
			MIME: "image/png",
		}, nil
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for i, frame := range img.Frames {
		w, err := zw.Create(fmt.Sprintf("image_%04d.png", i+1))
		if err != nil {
			return Object{}, fmt.Errorf("creating ZIP entry %d: %w", i+1, err)
		}
		if err := enc.Encode(w, frame); err != nil {
			return Object{}, fmt.Errorf("encoding PNG frame %d: %w", i+1, err)
		}
	}
	if err := zw.Close(); err != nil {
		return Object{}, fmt.Errorf("closing ZIP archive: %w", err)
	}
	return Object{
		Data: buf.Bytes(),
		Name: fmt.Sprintf("images_%s.zip", gen().Short()),
		MIME: "application/zip",
	}, nil
}

func encodeAudio(aud *Audio, gen func() uuid.UUID) (Object, error) {
	data, err := encodeWAV(aud.Samples, ResolveSampleRate(aud))
	if err != nil {
		return Object{}, err
	}
	return Object{
		Data: data,
		Name: fmt.Sprintf("audio_%s.wav", gen().Short()),
		MIME: "audio/wav",
	}, nil
}
