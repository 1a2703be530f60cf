// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"bytes"
	"encoding/binary"
)

// WAVFile builds a canonical 44-byte-header PCM WAV file around data.
func WAVFile(sampleRate, channels, bitsPerSample int, data []byte) []byte {
	return wavFile(1, sampleRate, channels, bitsPerSample, data)
}

// WAVFileWithFormat is WAVFile with an explicit fmt chunk audio format tag
// (1 = PCM, 3 = IEEE float, ...).
func WAVFileWithFormat(audioFormat uint16, sampleRate, channels, bitsPerSample int, data []byte) []byte {
	return wavFile(audioFormat, sampleRate, channels, bitsPerSample, data)
}

func wavFile(audioFormat uint16, sampleRate, channels, bitsPerSample int, data []byte) []byte {
	buf := new(bytes.Buffer)

	numChannels := uint16(channels)
	bits := uint16(bitsPerSample)
	byteRate := uint32(sampleRate) * uint32(numChannels) * uint32(bits/8)
	blockAlign := numChannels * (bits / 8)
	dataSize := uint32(len(data))
	riffSize := 36 + dataSize

	// RIFF header
	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, riffSize)
	buf.WriteString("WAVE")

	// fmt chunk
	buf.WriteString("fmt ")
	binary.Write(buf, binary.LittleEndian, uint32(16))
	binary.Write(buf, binary.LittleEndian, audioFormat)
	binary.Write(buf, binary.LittleEndian, numChannels)
	binary.Write(buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(buf, binary.LittleEndian, byteRate)
	binary.Write(buf, binary.LittleEndian, blockAlign)
	binary.Write(buf, binary.LittleEndian, bits)

	// data chunk
	buf.WriteString("data")
	binary.Write(buf, binary.LittleEndian, dataSize)
	buf.Write(data)

	return buf.Bytes()
}
