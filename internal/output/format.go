package output

import (
	"errors"
	"fmt"
	"strings"
)

// Format is a frame file format.
type Format string

const (
	WebP Format = "webp"
	PNG  Format = "png"
	TIFF Format = "tiff"
	SVG  Format = "svg"
)

// ErrUnknownFormat is returned for format names outside webp, png, tiff and svg.
var ErrUnknownFormat = errors.New("output: unknown format")

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case WebP, PNG, TIFF, SVG:
		return f, nil
	case "tif":
		return TIFF, nil
	case "":
		return WebP, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Ext returns the file extension including the dot.
func (f Format) Ext() string {
	return "." + string(f)
}

// IsRaster reports whether frames in this format are encoded from pixels.
func (f Format) IsRaster() bool {
	return f != SVG
}
