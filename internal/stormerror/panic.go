package stormerror

import "fmt"

// PanicError wraps a value recovered from a panic in a scenario, helper or
// test case, along with the stack of the goroutine that panicked.
type PanicError struct {
	value any
	Stack []byte
}

func NewPanicError(value any, stack []byte) PanicError {
	return PanicError{
		value: value,
		Stack: stack,
	}
}

func (pe PanicError) Error() string {
	return fmt.Sprintf("panic occurred: %v", pe.value)
}

// Value returns what was passed to panic().
func (pe PanicError) Value() any {
	return pe.value
}
