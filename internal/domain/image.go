package domain

import (
	"fmt"
	"strings"
)

// ImageSize is the resolution class of a generated thumbnail.
// It is a closed set: 1K, 2K and 4K.
type ImageSize string

// Supported image sizes
const (
	ImageSize1K ImageSize = "1K"
	ImageSize2K ImageSize = "2K"
	ImageSize4K ImageSize = "4K"
)

// ImageSizes lists every valid ImageSize in ascending order.
var ImageSizes = []ImageSize{ImageSize1K, ImageSize2K, ImageSize4K}

// Valid reports whether s is one of the supported sizes.
func (s ImageSize) Valid() bool {
	switch s {
	case ImageSize1K, ImageSize2K, ImageSize4K:
		return true
	}
	return false
}

// ParseImageSize converts a string such as "2K" or "2k" to an ImageSize.
func ParseImageSize(raw string) (ImageSize, error) {
	size := ImageSize(strings.ToUpper(strings.TrimSpace(raw)))
	if !size.Valid() {
		return "", fmt.Errorf("%w: %q (want one of 1K, 2K, 4K)", ErrInvalidImageSize, raw)
	}
	return size, nil
}
