package conf

import "errors"

var (
	// ErrFinal is returned when a Set addresses a node that forbids
	// override.
	ErrFinal = errors.New("cannot override final node")

	// ErrValue is returned by value coercion helpers when a node's
	// scalar value does not have the requested shape.
	ErrValue = errors.New("bad config value")
)
