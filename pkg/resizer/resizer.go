package resizer

import (
	"bytes"
	"fmt"
	"os"

	"github.com/disintegration/imaging"

	"downsizer/pkg/config"
	derrors "downsizer/pkg/errors"
	"downsizer/pkg/logger"
	"downsizer/pkg/metadata"
	"downsizer/pkg/scale"
)

// Resizer downsizes single image files in place.
type Resizer struct {
	maxDimension int
	quality      int
	logger       logger.Logger
}

// New creates a Resizer from the resize configuration.
func New(cfg *config.ResizeConfig, log logger.Logger) *Resizer {
	return &Resizer{
		maxDimension: cfg.MaxDimension,
		quality:      cfg.JPEGQuality,
		logger:       log,
	}
}

// Result describes one completed resize.
type Result struct {
	Path      string
	OldWidth  int
	OldHeight int
	Spec      scale.Spec
}

// ResizeFile downsizes one image and overwrites it at the same path,
// carrying the original EXIF block over into the new encoding. The
// returned Result reports the dimensions before and after.
//
// The EXIF block is read before the image is decoded, so a file without
// metadata aborts before any pixel work happens and nothing is written.
func (r *Resizer) ResizeFile(path string) (Result, error) {
	meta, err := metadata.Extract(path)
	if err != nil {
		return Result{}, err
	}

	src, err := imaging.Open(path)
	if err != nil {
		return Result{}, derrors.New(derrors.ErrorTypeDecode, path, err)
	}

	bounds := src.Bounds()
	spec, err := scale.Fit(bounds.Dx(), bounds.Dy(), r.maxDimension)
	if err != nil {
		return Result{}, derrors.New(derrors.ErrorTypeDecode, path, err)
	}

	resized := imaging.Resize(src, spec.Width, spec.Height, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, resized, imaging.JPEG, imaging.JPEGQuality(r.quality)); err != nil {
		return Result{}, derrors.New(derrors.ErrorTypeWrite, path, err)
	}

	data, err := meta.Embed(buf.Bytes())
	if err != nil {
		return Result{}, derrors.New(derrors.ErrorTypeWrite, path, err)
	}

	if err := writeAtomic(path, data); err != nil {
		return Result{}, err
	}

	r.logger.WithFields(map[string]interface{}{
		"file":   path,
		"scale":  fmt.Sprintf("%.3f", spec.Scale),
		"width":  spec.Width,
		"height": spec.Height,
	}).Debug("Resized image")

	return Result{
		Path:      path,
		OldWidth:  bounds.Dx(),
		OldHeight: bounds.Dy(),
		Spec:      spec,
	}, nil
}

// writeAtomic replaces the file contents via a temporary file and rename,
// so a failed write never leaves a truncated image behind.
func writeAtomic(path string, data []byte) error {
	mode := os.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	tempFile := path + ".tmp"
	out, err := os.OpenFile(tempFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode)
	if err != nil {
		return derrors.New(derrors.ErrorTypeWrite, path, err)
	}

	_, err = out.Write(data)
	closeErr := out.Close()

	if err != nil {
		os.Remove(tempFile)
		return derrors.New(derrors.ErrorTypeWrite, path, err)
	}
	if closeErr != nil {
		os.Remove(tempFile)
		return derrors.New(derrors.ErrorTypeWrite, path, closeErr)
	}

	if err := os.Rename(tempFile, path); err != nil {
		os.Remove(tempFile)
		return derrors.New(derrors.ErrorTypeWrite, path, err)
	}

	return nil
}
