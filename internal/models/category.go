package models

import (
	"fmt"
	"strings"
)

// Category is the kind of used gear a snapshot covers.
type Category int

const (
	CategoryCamera Category = iota
	CategoryLens
)

// ErrUnknownCategory is returned when a string cannot be mapped to a category.
var ErrUnknownCategory = fmt.Errorf("unknown category, expected one of: camera, lens")

// ParseCategory maps a CLI name ("camera" or "lens", case-insensitive) to a Category.
func ParseCategory(value string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "camera":
		return CategoryCamera, nil
	case "lens":
		return CategoryLens, nil
	default:
		return 0, fmt.Errorf("%w: got %q", ErrUnknownCategory, value)
	}
}

// String returns the singular CLI name of the category.
func (c Category) String() string {
	if c == CategoryLens {
		return "lens"
	}
	return "camera"
}

// APICode returns the code the upstream API uses for the category.
func (c Category) APICode() string {
	if c == CategoryLens {
		return "OB"
	}
	return "CO"
}

// Plural returns the display label used in notifications.
func (c Category) Plural() string {
	if c == CategoryLens {
		return "lenses"
	}
	return "cameras"
}
