package chalk

import "fmt"

// The error taxonomy is small and deliberate: every public operation either
// succeeds completely or returns one of these before touching any visual
// state. There is nothing to retry — callers catch and skip a step.

// ShapeError reports a logical value whose atoms cannot be displayed.
type ShapeError struct {
	Index int // position of the offending atom
	Value any
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("chalk: unsupported atom %T at index %d", e.Value, e.Index)
}

// IndexError reports an index or pointer operation outside current bounds.
type IndexError struct {
	Op    string
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("chalk: %s: index %d out of range [0, %d)", e.Op, e.Index, e.Len)
}

// NotFoundError reports a value- or label-targeted operation whose target is
// absent from the current state.
type NotFoundError struct {
	Target any
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("chalk: target %v not found", e.Target)
}

// ConfigError reports invalid construction or styling configuration. It is
// returned at construction or theme-load time, never lazily at first render.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("chalk: invalid config %s: %s", e.Field, e.Reason)
}
