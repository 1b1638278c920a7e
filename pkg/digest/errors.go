package digest

import (
	"errors"
	"fmt"
)

// ErrEmptyPool indicates the candidate pool contained no usable documents
var ErrEmptyPool = errors.New("empty document pool")

// SchemaError indicates an oracle response for a structured call did not
// conform to the declared shape. Fatal for the current batch attempt; the
// pipeline applies its bounded retry and then surfaces it to the caller.
type SchemaError struct {
	Call string
	Err  error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("oracle schema violation in %s: %v", e.Call, e.Err)
}

func (e *SchemaError) Unwrap() error { return e.Err }
