package keyup

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyKey  = errors.New("empty key identifier")
	ErrNilAction = errors.New("nil action")
	ErrNilScope  = errors.New("nil scope")
	ErrNilSource = errors.New("nil input source")
)

// BindingError reports a malformed binding and its position in the set.
type BindingError struct {
	Index int
	Key   string
	Err   error
}

func (e *BindingError) Error() string {
	return fmt.Sprintf("binding %d (key %q): %v", e.Index, e.Key, e.Err)
}

func (e *BindingError) Unwrap() error {
	return e.Err
}
