package parse

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidSize = errors.New("parse: invalid size string")

// Size parses "1000" into (1000, 1000) and "1920x1080" into (1920, 1080).
func Size(s string) (width, height int, err error) {
	w, h, found := strings.Cut(s, "x")
	width, err = strconv.Atoi(w)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidSize, s)
	}
	height = width
	if found {
		height, err = strconv.Atoi(h)
		if err != nil {
			return 0, 0, fmt.Errorf("%w: %q", ErrInvalidSize, s)
		}
	}
	if width <= 0 || height <= 0 {
		return 0, 0, fmt.Errorf("%w: %q must be positive", ErrInvalidSize, s)
	}
	return width, height, nil
}
