package taskfile

import "errors"

var (
	// ErrNoDescription indicates the task file has no usable description.
	ErrNoDescription = errors.New("task description missing")
	// ErrSchemaInvalid indicates the task file does not satisfy the schema.
	ErrSchemaInvalid = errors.New("task file does not match schema")
)
