package payload

import (
	"archive/zip"
	"bytes"
	"encoding/binary"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/AlexXia007/comfyui-nodes/internal/uuid"
)

func fixedGen() uuid.UUID {
	var u uuid.UUID
	if err := u.UnmarshalText([]byte("01020304-0506-0708-090a-0b0c0d0e0f10")); err != nil {
		panic(err)
	}
	return u
}

func testFrame(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 0x80, A: 0xff})
		}
	}
	return img
}

func TestEncode_SingleFrame(t *testing.T) {
	obj, err := Encode(&Image{Frames: []image.Image{testFrame(4, 3)}}, fixedGen)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if obj.Name != "image_01020304.png" {
		t.Errorf("Name = %q; want %q", obj.Name, "image_01020304.png")
	}
	if obj.MIME != "image/png" {
		t.Errorf("MIME = %q; want %q", obj.MIME, "image/png")
	}

	decoded, err := png.Decode(bytes.NewReader(obj.Data))
	if err != nil {
		t.Fatalf("payload is not a decodable PNG: %v", err)
	}
	if b := decoded.Bounds(); b.Dx() != 4 || b.Dy() != 3 {
		t.Errorf("decoded bounds = %dx%d; want 4x3", b.Dx(), b.Dy())
	}
}

func TestEncode_MultipleFrames(t *testing.T) {
	frames := []image.Image{testFrame(2, 2), testFrame(2, 2), testFrame(2, 2)}
	obj, err := Encode(&Image{Frames: frames}, fixedGen)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if obj.Name != "images_01020304.zip" {
		t.Errorf("Name = %q; want %q", obj.Name, "images_01020304.zip")
	}
	if obj.MIME != "application/zip" {
		t.Errorf("MIME = %q; want %q", obj.MIME, "application/zip")
	}

	zr, err := zip.NewReader(bytes.NewReader(obj.Data), int64(len(obj.Data)))
	if err != nil {
		t.Fatalf("payload is not a readable ZIP: %v", err)
	}
	if len(zr.File) != 3 {
		t.Fatalf("ZIP entry count = %d; want 3", len(zr.File))
	}
	for i, f := range zr.File {
		want := fmt.Sprintf("image_%04d.png", i+1)
		if f.Name != want {
			t.Errorf("entry %d name = %q; want %q", i, f.Name, want)
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("opening entry %q: %v", f.Name, err)
		}
		if _, err := png.Decode(rc); err != nil {
			t.Errorf("entry %q is not a decodable PNG: %v", f.Name, err)
		}
		rc.Close()
	}
}

func TestEncode_NoFrames(t *testing.T) {
	_, err := Encode(&Image{}, fixedGen)
	if err == nil {
		t.Fatal("expected error for image payload without frames, got nil")
	}
}

func TestEncode_Audio(t *testing.T) {
	aud := &Audio{
		Samples:    [][]float64{{0, 0.5, 2.0}, {0, -0.5, -2.0}},
		SampleRate: 22050,
	}
	obj, err := Encode(aud, fixedGen)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if obj.Name != "audio_01020304.wav" {
		t.Errorf("Name = %q; want %q", obj.Name, "audio_01020304.wav")
	}
	if obj.MIME != "audio/wav" {
		t.Errorf("MIME = %q; want %q", obj.MIME, "audio/wav")
	}

	data := obj.Data
	if string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
		t.Fatal("payload does not carry a RIFF/WAVE header")
	}
	if ch := binary.LittleEndian.Uint16(data[22:24]); ch != 2 {
		t.Errorf("channel count = %d; want 2", ch)
	}
	if rate := binary.LittleEndian.Uint32(data[24:28]); rate != 22050 {
		t.Errorf("sample rate = %d; want 22050", rate)
	}
	if bits := binary.LittleEndian.Uint16(data[34:36]); bits != 16 {
		t.Errorf("bits per sample = %d; want 16", bits)
	}
	// 3 frames x 2 channels x 2 bytes
	if dataLen := binary.LittleEndian.Uint32(data[40:44]); dataLen != 12 {
		t.Errorf("data chunk length = %d; want 12", dataLen)
	}

	// Frame 3 was out of range on both channels and must be clamped.
	pcm := data[44:]
	if v := int16(binary.LittleEndian.Uint16(pcm[8:10])); v != 32767 {
		t.Errorf("clamped positive sample = %d; want 32767", v)
	}
	if v := int16(binary.LittleEndian.Uint16(pcm[10:12])); v != -32767 {
		t.Errorf("clamped negative sample = %d; want -32767", v)
	}
}

func TestEncode_Audio_DefaultRate(t *testing.T) {
	obj, err := Encode(&Audio{Samples: [][]float64{{0.1, 0.2}}}, fixedGen)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rate := binary.LittleEndian.Uint32(obj.Data[24:28]); rate != 44100 {
		t.Errorf("sample rate = %d; want default 44100", rate)
	}
}

func TestEncode_Audio_Errors(t *testing.T) {
	tests := []struct {
		name string
		aud  *Audio
	}{
		{"no channels", &Audio{}},
		{"mismatched channel lengths", &Audio{Samples: [][]float64{{0, 0}, {0}}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Encode(tc.aud, fixedGen); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestEncode_Video(t *testing.T) {
	raw := []byte{0x00, 0x00, 0x00, 0x18, 0x66, 0x74, 0x79, 0x70}
	obj, err := Encode(&Video{Data: raw}, fixedGen)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !bytes.Equal(obj.Data, raw) {
		t.Error("video bytes were not passed through untouched")
	}
	if obj.Name != "video_01020304.mp4" {
		t.Errorf("Name = %q; want %q", obj.Name, "video_01020304.mp4")
	}
	if obj.MIME != "video/mp4" {
		t.Errorf("MIME = %q; want %q", obj.MIME, "video/mp4")
	}
}

func TestEncode_Video_Empty(t *testing.T) {
	if _, err := Encode(&Video{}, fixedGen); err == nil {
		t.Error("expected error for empty video payload, got nil")
	}
}
