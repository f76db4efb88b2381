// Package scale computes target dimensions for the resize operation.
//
// The scale factor is the ratio between the requested maximum dimension and
// the larger of the image's current width and height. Both dimensions are
// multiplied by the same factor and truncated to integers, so the aspect
// ratio survives within one pixel of rounding. The factor is applied even
// when it is greater than one: an image already smaller than the target is
// upscaled rather than left alone.
package scale

import "fmt"

// Spec describes one resize: the requested maximum dimension, the uniform
// scale factor derived from it, and the resulting integer dimensions.
type Spec struct {
	MaxDimension int
	Scale        float64
	Width        int
	Height       int
}

// Fit computes the Spec for an image of the given dimensions and a target
// maximum dimension. The source dimensions must be positive.
func Fit(width, height, maxDimension int) (Spec, error) {
	if width <= 0 || height <= 0 {
		return Spec{}, fmt.Errorf("invalid source dimensions %dx%d", width, height)
	}

	current := width
	if height > current {
		current = height
	}

	factor := float64(maxDimension) / float64(current)

	return Spec{
		MaxDimension: maxDimension,
		Scale:        factor,
		Width:        int(float64(width) * factor),
		Height:       int(float64(height) * factor),
	}, nil
}
