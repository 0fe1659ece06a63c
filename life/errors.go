package life

import (
	"github.com/pkg/errors"
)

var (
	// ErrInvalidConfig is returned when Params fail validation
	ErrInvalidConfig = errors.New("life: invalid configuration")
	// ErrDegenerateSurface is returned for a non-positive width or height
	ErrDegenerateSurface = errors.New("life: degenerate surface")
)

func checkSurface(width, height float64) error {
	if !(width > 0) || !(height > 0) {
		return errors.Wrapf(ErrDegenerateSurface, "surface %gx%g", width, height)
	}
	return nil
}

func invalidConfig(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidConfig, format, args...)
}
