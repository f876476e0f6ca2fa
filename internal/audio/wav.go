package audio

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

const wavHeaderLen = 44

// EncodeWAV wraps raw little-endian PCM data in a WAV container.
func EncodeWAV(pcm []byte, sampleRate, channels, bytesPerSample int) []byte {
	dataLen := len(pcm)

	buf := &bytes.Buffer{}
	buf.Grow(wavHeaderLen + dataLen)

	buf.WriteString("RIFF")
	_ = binary.Write(buf, binary.LittleEndian, uint32(wavHeaderLen-8+dataLen))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	_ = binary.Write(buf, binary.LittleEndian, uint32(16))
	_ = binary.Write(buf, binary.LittleEndian, uint16(1)) // PCM
	_ = binary.Write(buf, binary.LittleEndian, uint16(channels))
	_ = binary.Write(buf, binary.LittleEndian, uint32(sampleRate))
	_ = binary.Write(buf, binary.LittleEndian, uint32(sampleRate*channels*bytesPerSample))
	_ = binary.Write(buf, binary.LittleEndian, uint16(channels*bytesPerSample))
	_ = binary.Write(buf, binary.LittleEndian, uint16(bytesPerSample*8))

	buf.WriteString("data")
	_ = binary.Write(buf, binary.LittleEndian, uint32(dataLen))
	buf.Write(pcm)

	return buf.Bytes()
}

// Format describes the fmt chunk of a WAV file.
type Format struct {
	Channels      int
	SampleRate    int
	BitsPerSample int
}

// ParseWAV validates a PCM WAV file and returns its format. Chunks other
// than fmt and data (LIST, JUNK, ...) are skipped. Uploaded audio is checked
// with it before it is sent anywhere.
func ParseWAV(data []byte) (Format, error) {
	if len(data) < 12 || string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
		return Format{}, fmt.Errorf("wav: missing RIFF/WAVE signature")
	}

	var (
		format  Format
		haveFmt bool
	)
	for off := 12; off+8 <= len(data); {
		id := string(data[off : off+4])
		size := int(binary.LittleEndian.Uint32(data[off+4 : off+8]))
		body := off + 8

		switch id {
		case "fmt ":
			if size < 16 || body+16 > len(data) {
				return Format{}, fmt.Errorf("wav: truncated fmt chunk")
			}
			if audioFormat := binary.LittleEndian.Uint16(data[body : body+2]); audioFormat != 1 {
				return Format{}, fmt.Errorf("wav: unsupported encoding %d (want PCM)", audioFormat)
			}
			format = Format{
				Channels:      int(binary.LittleEndian.Uint16(data[body+2 : body+4])),
				SampleRate:    int(binary.LittleEndian.Uint32(data[body+4 : body+8])),
				BitsPerSample: int(binary.LittleEndian.Uint16(data[body+14 : body+16])),
			}
			haveFmt = true
		case "data":
			if !haveFmt {
				return Format{}, fmt.Errorf("wav: data chunk before fmt chunk")
			}
			return format, nil
		}

		// Chunk bodies are padded to an even length.
		off = body + size + size%2
	}

	if !haveFmt {
		return Format{}, fmt.Errorf("wav: missing fmt chunk")
	}
	return Format{}, fmt.Errorf("wav: missing data chunk")
}
