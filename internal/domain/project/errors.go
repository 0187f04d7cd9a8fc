package project

import "errors"

// DuplicateMessage is shown to users when a project number is already taken.
const DuplicateMessage = "Project is already available in the List."

var (
	// ErrProjectNotFound indicates the project doesn't exist.
	ErrProjectNotFound = errors.New("project not found")
	// ErrInvalidInput indicates invalid project input.
	ErrInvalidInput = errors.New("invalid project input")
	// ErrDuplicateNumber indicates another project already uses the project number.
	ErrDuplicateNumber = errors.New("duplicate project number")
)
