package uri

import "github.com/ghettovoice/urisplit/internal/types"

// Builder assembles an [Owned] URI component by component.
//
// No validation is done, any combination of components is accepted
// (e.g. a port without a host). The zero value is ready to use.
type Builder struct {
	u Owned
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder { return &Builder{} }

// BuilderFrom returns a builder seeded with the components of c.
func BuilderFrom(c Components) *Builder {
	b := NewBuilder()
	if types.IsZero(c) {
		return b
	}
	return b.Scheme(c.Scheme()).
		Userinfo(c.Userinfo()).
		Host(c.Host()).
		Port(c.Port()).
		Path(c.Path()).
		Query(c.Query()).
		Fragment(c.Fragment())
}

func (b *Builder) Scheme(v string) *Builder {
	b.u.SetScheme(v)
	return b
}

func (b *Builder) Userinfo(v string) *Builder {
	b.u.SetUserinfo(v)
	return b
}

func (b *Builder) Host(v string) *Builder {
	b.u.SetHost(v)
	return b
}

func (b *Builder) Port(v string) *Builder {
	b.u.SetPort(v)
	return b
}

func (b *Builder) Path(v string) *Builder {
	b.u.SetPath(v)
	return b
}

func (b *Builder) Query(v string) *Builder {
	b.u.SetQuery(v)
	return b
}

func (b *Builder) Fragment(v string) *Builder {
	b.u.SetFragment(v)
	return b
}

// Build returns a copy of the assembled URI.
// The builder can be reused, later changes do not affect returned values.
func (b *Builder) Build() Owned { return b.u }
