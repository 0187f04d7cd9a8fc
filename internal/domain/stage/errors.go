package stage

import "errors"

var (
	// ErrStageNotFound indicates the stage doesn't exist.
	ErrStageNotFound = errors.New("stage not found")
	// ErrInvalidInput indicates invalid stage input.
	ErrInvalidInput = errors.New("invalid stage input")
)
