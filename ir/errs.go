package ir

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrConstruction is wrapped by every error a Constructor returns
	// through Construct.
	ErrConstruction = errors.New("construction error")

	ErrArity  = errors.New("wrong argument count")
	ErrDomain = errors.New("argument out of domain")
)

// ConstructionError reports a registered type rejecting its arguments.
type ConstructionError struct {
	Name string
	Args []*Node
	Err  error
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("%s: %s(%s): %s", ErrConstruction, e.Name, argsSummary(e.Args), e.Err)
}

func (e *ConstructionError) Unwrap() []error {
	return []error{ErrConstruction, e.Err}
}

func argsSummary(args []*Node) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.summary()
	}
	return strings.Join(parts, ", ")
}

func arityErr(name string, args []*Node, want int) error {
	return &ConstructionError{
		Name: name,
		Args: args,
		Err:  fmt.Errorf("%w: want %d, got %d", ErrArity, want, len(args)),
	}
}
