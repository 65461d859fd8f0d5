package scene

import "errors"

var (
	// ErrUnknownFormat is returned for scene formats other than TOML and YAML.
	ErrUnknownFormat = errors.New("scene: unknown format")

	// ErrUnknownKind is returned for a shape kind Build does not know.
	ErrUnknownKind = errors.New("scene: unknown shape kind")

	// ErrInvalidShape is returned when a shape lacks the fields its kind
	// needs or has malformed coordinates.
	ErrInvalidShape = errors.New("scene: invalid shape")

	// ErrCanvasSize is returned by Render when width or height is not
	// positive.
	ErrCanvasSize = errors.New("scene: canvas size must be positive")
)
