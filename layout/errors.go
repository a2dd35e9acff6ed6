package layout

import (
	"errors"
	"fmt"
)

// ErrUnknownBlock reports a block type the engine does not understand.
var ErrUnknownBlock = errors.New("layout: unknown block type")

// RenderError represents a failure during a specific rendering
// operation. It wraps an underlying error and includes the operation
// name for context.
type RenderError struct {
	Op  string // operation name, e.g. "heading", "table"
	Err error  // underlying error
}

func (e *RenderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("layout.%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("layout.%s: unknown error", e.Op)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// newRenderError creates a RenderError wrapping err with operation context.
func newRenderError(op string, err error) *RenderError {
	return &RenderError{Op: op, Err: err}
}
