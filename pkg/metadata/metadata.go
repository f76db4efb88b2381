// Package metadata extracts and re-embeds EXIF metadata in JPEG files.
//
// The resize operation re-encodes every image, which strips whatever the
// encoder does not know about. This package pulls the raw APP1 segment out
// of the source file before decoding and splices the identical bytes back
// into the encoded result, so the metadata survives the round trip
// untouched. An image without an EXIF block is a hard error: the run is
// aborted rather than silently producing a stripped file.
package metadata

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rwcarlsen/goexif/exif"

	derrors "downsizer/pkg/errors"
)

// exifHeader prefixes the payload of an EXIF APP1 segment
var exifHeader = []byte("Exif\x00\x00")

const (
	markerSOI  = 0xD8
	markerEOI  = 0xD9
	markerSOS  = 0xDA
	markerAPP1 = 0xE1
)

// ErrNoSegment reports that no EXIF APP1 segment was found
var ErrNoSegment = errors.New("no EXIF segment found")

// Metadata holds the raw EXIF block of one image along with its parsed form
type Metadata struct {
	// Raw is the APP1 payload, including the Exif header prefix
	Raw []byte

	parsed *exif.Exif
}

// Extract reads the EXIF block from the image at path. It returns a typed
// missing_metadata error when the file is not a JPEG or carries no EXIF
// APP1 segment, and a decode error when the file cannot be read at all.
func Extract(path string) (*Metadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, derrors.New(derrors.ErrorTypeDecode, path, err)
	}

	raw, err := findAPP1(data)
	if err != nil {
		return nil, derrors.New(derrors.ErrorTypeMissingMetadata, path, err)
	}

	parsed, err := exif.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, derrors.New(derrors.ErrorTypeMissingMetadata, path, err)
	}

	return &Metadata{Raw: raw, parsed: parsed}, nil
}

// DateTime returns the capture time recorded in the EXIF block, when present
func (m *Metadata) DateTime() (time.Time, error) {
	return m.parsed.DateTime()
}

// Tag returns the string form of an EXIF tag, when present
func (m *Metadata) Tag(name exif.FieldName) (string, bool) {
	tag, err := m.parsed.Get(name)
	if err != nil {
		return "", false
	}
	value, err := tag.StringVal()
	if err != nil {
		return tag.String(), true
	}
	return value, true
}

// Embed splices the raw EXIF block into an encoded JPEG, right after the
// SOI marker, and returns the combined bytes.
func (m *Metadata) Embed(jpegData []byte) ([]byte, error) {
	if len(jpegData) < 2 || jpegData[0] != 0xFF || jpegData[1] != markerSOI {
		return nil, errors.New("not a JPEG stream")
	}

	// Segment length field counts itself plus the payload
	segmentLength := len(m.Raw) + 2
	if segmentLength > 0xFFFF {
		return nil, fmt.Errorf("EXIF block too large: %d bytes", len(m.Raw))
	}

	out := make([]byte, 0, len(jpegData)+4+len(m.Raw))
	out = append(out, 0xFF, markerSOI)
	out = append(out, 0xFF, markerAPP1)
	out = binary.BigEndian.AppendUint16(out, uint16(segmentLength))
	out = append(out, m.Raw...)
	out = append(out, jpegData[2:]...)

	return out, nil
}

// findAPP1 scans the JPEG segment list for an EXIF APP1 segment and returns
// its payload. Scanning stops at SOS since metadata segments only appear
// before the entropy-coded image data.
func findAPP1(data []byte) ([]byte, error) {
	if len(data) < 2 || data[0] != 0xFF || data[1] != markerSOI {
		return nil, errors.New("not a JPEG file")
	}

	offset := 2
	for offset+4 <= len(data) {
		if data[offset] != 0xFF {
			return nil, fmt.Errorf("corrupt segment marker at offset %d", offset)
		}

		marker := data[offset+1]
		if marker == markerSOS || marker == markerEOI {
			break
		}

		length := int(binary.BigEndian.Uint16(data[offset+2 : offset+4]))
		if length < 2 || offset+2+length > len(data) {
			return nil, fmt.Errorf("corrupt segment length at offset %d", offset)
		}

		payload := data[offset+4 : offset+2+length]
		if marker == markerAPP1 && bytes.HasPrefix(payload, exifHeader) {
			return payload, nil
		}

		offset += 2 + length
	}

	return nil, ErrNoSegment
}
