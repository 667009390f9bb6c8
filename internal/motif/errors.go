package motif

import "errors"

// Domain errors for scene and capture operations.
var (
	// ErrUnknownScene indicates a scene name with no registered constructor.
	ErrUnknownScene = errors.New("motif: unknown scene")

	// ErrNoFrames indicates an encode of a recording that captured nothing.
	ErrNoFrames = errors.New("motif: no frames recorded")
)
