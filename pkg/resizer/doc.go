// Package resizer implements the per-file downsize operation.
//
// Each file goes through the same pipeline:
//   - the raw EXIF block is extracted (and required to exist)
//   - the image is decoded and resampled with a Lanczos filter to the
//     dimensions computed by the scale package
//   - the result is re-encoded as JPEG at the configured quality with the
//     original EXIF block spliced back in
//   - the bytes replace the original file via a temp-file-and-rename write
//
// The overwrite is destructive. The backup package is the only recovery
// path when it was allowed to run.
//
// Usage:
//
//	r := resizer.New(&cfg.Resize, logger.GetLogger())
//	spec, err := r.ResizeFile("/photos/trip/IMG_1234.jpg")
//	if err != nil {
//	    // the file was left untouched
//	}
package resizer
