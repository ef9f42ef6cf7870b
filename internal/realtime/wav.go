package realtime

import (
	"encoding/binary"
	"fmt"
	"os"
)

// writeWAV wraps raw s16le PCM in a minimal RIFF/WAVE container so the
// recognizer can consume a collected window as a regular audio file.
func writeWAV(path string, pcm []byte, sampleRate, channels int) error {
	const headerSize = 44
	const bitsPerSample = 16

	blockAlign := channels * bitsPerSample / 8
	byteRate := sampleRate * blockAlign

	buf := make([]byte, headerSize, headerSize+len(pcm))

	copy(buf[0:4], "RIFF")
	binary.LittleEndian.PutUint32(buf[4:8], uint32(36+len(pcm)))
	copy(buf[8:12], "WAVE")

	copy(buf[12:16], "fmt ")
	binary.LittleEndian.PutUint32(buf[16:20], 16) // PCM fmt chunk size
	binary.LittleEndian.PutUint16(buf[20:22], 1)  // PCM
	binary.LittleEndian.PutUint16(buf[22:24], uint16(channels))
	binary.LittleEndian.PutUint32(buf[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(buf[28:32], uint32(byteRate))
	binary.LittleEndian.PutUint16(buf[32:34], uint16(blockAlign))
	binary.LittleEndian.PutUint16(buf[34:36], bitsPerSample)

	copy(buf[36:40], "data")
	binary.LittleEndian.PutUint32(buf[40:44], uint32(len(pcm)))

	buf = append(buf, pcm...)

	if err := os.WriteFile(path, buf, 0644); err != nil {
		return fmt.Errorf("write wav: %w", err)
	}
	return nil
}
