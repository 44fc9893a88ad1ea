package payload

import (
	"errors"
	"image"
)

// Image is a stack of decoded raster frames.
type Image struct {
	Frames []image.Image
}

// Audio is channel-major PCM samples in the [-1, 1] range.
type Audio struct {
	Samples    [][]float64
	SampleRate int
}

// Video is an already-encoded container, passed through untouched.
type Video struct {
	Data []byte
}

// Payload is the sealed union over the three media variants.
type Payload interface{ isPayload() }

func (*Image) isPayload() {}
func (*Audio) isPayload() {}
func (*Video) isPayload() {}

// ErrNoPayload is returned when no media slot is populated.
var ErrNoPayload = errors.New("no payload provided: connect one of image, audio or video")

// Select returns the populated payload. When more than one slot is connected,
// image wins over audio, and audio wins over video.
func Select(img *Image, aud *Audio, vid *Video) (Payload, error) {
	switch {
	case img != nil:
		return img, nil
	case aud != nil:
		return aud, nil
	case vid != nil:
		return vid, nil
	}
	return nil, ErrNoPayload
}

// DefaultSampleRate is assumed when an audio payload declares no rate.
const DefaultSampleRate = 44100

// ResolveSampleRate returns the declared sample rate, or DefaultSampleRate
// when the payload declares none.
func ResolveSampleRate(a *Audio) int {
	if a != nil && a.SampleRate > 0 {
		return a.SampleRate
	}
	return DefaultSampleRate
}
