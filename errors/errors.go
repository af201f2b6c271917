package errors

import "fmt"

var (
	ErrUnknownVariant = fmt.Errorf("unknown furniture variant")
	ErrInvalidRequest = fmt.Errorf("invalid demonstration request")
)
