package stillness

import "errors"

var (
	// ErrEmptyPalette is returned when a palette with no colours is installed.
	ErrEmptyPalette = errors.New("stillness: palette has no colours")

	// ErrUnknownTheme is returned for a theme name that is not built in.
	ErrUnknownTheme = errors.New("stillness: unknown theme")

	// ErrInvalidHex is returned by ParseHex for malformed colour strings.
	ErrInvalidHex = errors.New("stillness: invalid hex colour")
)
