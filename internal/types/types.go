// Package types contains common interfaces implemented by URI records.
package types

import "io"

// Renderer is an interface that is used to render a type to a string or a writer.
type Renderer interface {
	// Render renders the type to a string.
	Render() string
	// RenderTo renders the type to a writer.
	RenderTo(w io.Writer) (int, error)
}

type Equalable interface {
	Equal(val any) bool
}

type ZeroFlag interface {
	IsZero() bool
}

// IsZero returns true if v is nil or has method `IsZero() bool` and it returns true.
func IsZero(v any) bool {
	if v == nil {
		return true
	}
	vv, ok := v.(ZeroFlag)
	return ok && vv.IsZero()
}
