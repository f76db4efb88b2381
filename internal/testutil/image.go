// Package testutil builds small real image files for tests.
package testutil

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// NewTestImage returns a gradient image so that resampling has real pixel
// data to work with.
func NewTestImage(width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.NRGBA{
				R: uint8(x * 255 / width),
				G: uint8(y * 255 / height),
				B: uint8((x + y) * 255 / (width + height)),
				A: 255,
			})
		}
	}
	return img
}

// EXIFPayload returns a minimal valid EXIF APP1 payload: the Exif header
// followed by a big-endian TIFF structure holding a single Make tag.
func EXIFPayload() []byte {
	var buf bytes.Buffer

	buf.WriteString("Exif\x00\x00")

	// TIFF header
	buf.WriteString("MM")
	binary.Write(&buf, binary.BigEndian, uint16(0x002A))
	binary.Write(&buf, binary.BigEndian, uint32(8)) // IFD0 offset

	// IFD0 with one entry
	binary.Write(&buf, binary.BigEndian, uint16(1))      // entry count
	binary.Write(&buf, binary.BigEndian, uint16(0x010F)) // Make
	binary.Write(&buf, binary.BigEndian, uint16(2))      // ASCII
	binary.Write(&buf, binary.BigEndian, uint32(4))      // value length
	buf.WriteString("Go!\x00")                           // inline value
	binary.Write(&buf, binary.BigEndian, uint32(0)) // no next IFD

	return buf.Bytes()
}

// EncodeJPEG encodes an image to JPEG bytes, optionally splicing in the
// minimal EXIF payload after the SOI marker.
func EncodeJPEG(t *testing.T, img image.Image, withEXIF bool) []byte {
	t.Helper()

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 95}); err != nil {
		t.Fatalf("Failed to encode JPEG: %v", err)
	}

	if !withEXIF {
		return buf.Bytes()
	}

	data := buf.Bytes()
	payload := EXIFPayload()

	out := make([]byte, 0, len(data)+4+len(payload))
	out = append(out, data[0], data[1]) // SOI
	out = append(out, 0xFF, 0xE1)
	out = binary.BigEndian.AppendUint16(out, uint16(len(payload)+2))
	out = append(out, payload...)
	out = append(out, data[2:]...)

	return out
}

// WriteJPEG writes a JPEG file of the given dimensions, with or without an
// EXIF block, and returns its path.
func WriteJPEG(t *testing.T, path string, width, height int, withEXIF bool) string {
	t.Helper()

	data := EncodeJPEG(t, NewTestImage(width, height), withEXIF)
	writeFile(t, path, data)
	return path
}

// WritePNG writes a PNG file of the given dimensions and returns its path.
// PNG files never carry an EXIF APP1 segment.
func WritePNG(t *testing.T, path string, width, height int) string {
	t.Helper()

	var buf bytes.Buffer
	if err := png.Encode(&buf, NewTestImage(width, height)); err != nil {
		t.Fatalf("Failed to encode PNG: %v", err)
	}
	writeFile(t, path, buf.Bytes())
	return path
}

// WriteFile writes arbitrary bytes, creating parent directories as needed.
func WriteFile(t *testing.T, path string, data []byte) string {
	t.Helper()
	writeFile(t, path, data)
	return path
}

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create directory for %s: %v", path, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
}

// ImageDims decodes an image file and returns its dimensions.
func ImageDims(t *testing.T, path string) (int, int) {
	t.Helper()

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Failed to open %s: %v", path, err)
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		t.Fatalf("Failed to decode %s: %v", path, err)
	}
	return cfg.Width, cfg.Height
}
