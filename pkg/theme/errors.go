package theme

import "errors"

var (
	// ErrInvalidColor is returned for color literals that are not #RRGGBB or #RRGGBBAA.
	ErrInvalidColor = errors.New("invalid color literal")
	// ErrInvalidSelector is returned for empty or malformed scope selectors.
	ErrInvalidSelector = errors.New("invalid scope selector")
	// ErrInvalidFontStyle is returned for unknown fontStyle words.
	ErrInvalidFontStyle = errors.New("invalid font style")
	// ErrUnknownVariant is returned when a variant name is neither dark nor light.
	ErrUnknownVariant = errors.New("unknown theme variant")
	// ErrUnsupportedFormat is returned by the codec for unknown document formats.
	ErrUnsupportedFormat = errors.New("unsupported theme format")
	// ErrNotFound is returned by the registry when no theme matches a lookup.
	ErrNotFound = errors.New("theme not found")
)
