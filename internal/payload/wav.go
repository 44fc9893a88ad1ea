package payload

import (
	"bytes"
	"encoding/binary"
	"errors"
)

// encodeWAV renders channel-major samples as a PCM16 RIFF/WAVE file. Samples
// are clamped to [-1, 1] before scaling and channels are interleaved per
// frame, so every channel must carry the same number of samples.
func encodeWAV(samples [][]float64, sampleRate int) ([]byte, error) {
	channels := len(samples)
	if channels == 0 {
		return nil, errors.New("audio payload has no samples")
	}
	frames := len(samples[0])
	for _, ch := range samples[1:] {
		if len(ch) != frames {
			return nil, errors.New("audio channels have mismatched lengths")
		}
	}

	dataLen := frames * channels * 2
	buf := bytes.NewBuffer(make([]byte, 0, 44+dataLen))

	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, uint32(36+dataLen))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	binary.Write(buf, binary.LittleEndian, uint32(16))
	binary.Write(buf, binary.LittleEndian, uint16(1)) // PCM
	binary.Write(buf, binary.LittleEndian, uint16(channels))
	binary.Write(buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(buf, binary.LittleEndian, uint32(sampleRate*channels*2))
	binary.Write(buf, binary.LittleEndian, uint16(channels*2))
	binary.Write(buf, binary.LittleEndian, uint16(16))

	buf.WriteString("data")
	binary.Write(buf, binary.LittleEndian, uint32(dataLen))

	pcm := make([]byte, dataLen)
	off := 0
	for i := 0; i < frames; i++ {
		for c := 0; c < channels; c++ {
			s := samples[c][i]
			if s > 1 {
				s = 1
			} else if s < -1 {
				s = -1
			}
			binary.LittleEndian.PutUint16(pcm[off:], uint16(int16(s*32767)))
			off += 2
		}
	}
	buf.Write(pcm)

	return buf.Bytes(), nil
}
