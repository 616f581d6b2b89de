package uri

//go:generate go tool errtrace -w .
//go:generate go tool mockgen -destination ../internal/testutil/urimock/components.go -package urimock . Components

import (
	"iter"
	"log/slog"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/urisplit/internal/types"
)

// Storage is the set of string types a [URI] can keep its components in.
type Storage interface {
	~string
}

// Span is a component sliced from the parsed input without copying.
// It shares memory with the input and keeps the input alive while referenced.
type Span string

// Components is the read-only accessor contract shared by all URI records.
type Components interface {
	Scheme() string
	Userinfo() string
	Host() string
	Port() string
	Path() string
	Query() string
	Fragment() string
}

var (
	_ Components      = View{}
	_ Components      = Owned{}
	_ types.Renderer  = View{}
	_ types.Renderer  = Owned{}
	_ types.Equalable = Owned{}
	_ types.ZeroFlag  = Owned{}
	_ slog.LogValuer  = Owned{}
	_ textUnmarshaler = (*Owned)(nil)
	_ textUnmarshaler = (*View)(nil)
)

type textUnmarshaler interface {
	UnmarshalText(text []byte) error
}

// URI holds the raw components of a URI reference.
// Absent and empty components are both the empty string.
//
// The zero value is an empty URI. URI values are comparable with ==.
type URI[S Storage] struct {
	scheme   S
	userinfo S
	host     S
	port     S
	path     S
	query    S
	fragment S
}

// View is a URI returned by [Parse], its components reference the parsed input.
type View = URI[Span]

// Owned is a URI with independently allocated components.
type Owned = URI[string]

// Scheme returns the scheme without the trailing ":".
func (u URI[S]) Scheme() string { return string(u.scheme) }

// Userinfo returns the userinfo without the trailing "@".
func (u URI[S]) Userinfo() string { return string(u.userinfo) }

// Host returns the host. A bracketed IP literal keeps its brackets.
func (u URI[S]) Host() string { return string(u.host) }

// Port returns the port without the leading ":".
func (u URI[S]) Port() string { return string(u.port) }

// Path returns the path.
func (u URI[S]) Path() string { return string(u.path) }

// Query returns the query without the leading "?".
func (u URI[S]) Query() string { return string(u.query) }

// Fragment returns the fragment without the leading "#".
func (u URI[S]) Fragment() string { return string(u.fragment) }

func (u *URI[S]) SetScheme(v S)   { u.scheme = keep(v) }
func (u *URI[S]) SetUserinfo(v S) { u.userinfo = keep(v) }
func (u *URI[S]) SetHost(v S)     { u.host = keep(v) }
func (u *URI[S]) SetPort(v S)     { u.port = keep(v) }
func (u *URI[S]) SetPath(v S)     { u.path = keep(v) }
func (u *URI[S]) SetQuery(v S)    { u.query = keep(v) }
func (u *URI[S]) SetFragment(v S) { u.fragment = keep(v) }

// keep stores v by reference for Span and as a fresh copy for any other storage.
func keep[S Storage](v S) S {
	if _, ok := any(v).(Span); ok {
		return v
	}
	return S(strings.Clone(string(v)))
}

// Own returns a copy of the URI that does not share memory with the parsed input.
func (u URI[S]) Own() Owned {
	return Owned{
		scheme:   strings.Clone(string(u.scheme)),
		userinfo: strings.Clone(string(u.userinfo)),
		host:     strings.Clone(string(u.host)),
		port:     strings.Clone(string(u.port)),
		path:     strings.Clone(string(u.path)),
		query:    strings.Clone(string(u.query)),
		fragment: strings.Clone(string(u.fragment)),
	}
}

// All returns an iterator over component names and values in rendering order,
// empty components included.
func (u URI[S]) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		_ = yield("scheme", string(u.scheme)) &&
			yield("userinfo", string(u.userinfo)) &&
			yield("host", string(u.host)) &&
			yield("port", string(u.port)) &&
			yield("path", string(u.path)) &&
			yield("query", string(u.query)) &&
			yield("fragment", string(u.fragment))
	}
}

// IsZero reports whether all components are empty.
func (u URI[S]) IsZero() bool { return u == URI[S]{} }

// Equal reports whether val holds the same components.
// val can be a [View] or an [Owned] value or pointer, or any other [Components].
func (u URI[S]) Equal(val any) bool {
	var other Components
	switch v := val.(type) {
	case View:
		other = v
	case *View:
		if v == nil {
			return false
		}
		other = *v
	case Owned:
		other = v
	case *Owned:
		if v == nil {
			return false
		}
		other = *v
	case Components:
		other = v
	default:
		return false
	}

	return u.Scheme() == other.Scheme() &&
		u.Userinfo() == other.Userinfo() &&
		u.Host() == other.Host() &&
		u.Port() == other.Port() &&
		u.Path() == other.Path() &&
		u.Query() == other.Query() &&
		u.Fragment() == other.Fragment()
}

// LogValue implements [slog.LogValuer], it logs non-empty components as a group.
func (u URI[S]) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, 7)
	for k, v := range u.All() {
		if v != "" {
			attrs = append(attrs, slog.String(k, v))
		}
	}
	return slog.GroupValue(attrs...)
}

// MarshalText implements [encoding.TextMarshaler].
func (u URI[S]) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
// On failure the URI is reset to zero.
func (u *URI[S]) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		*u = URI[S]{}
		return errtrace.Wrap(err)
	}
	*u = URI[S]{
		scheme:   S(v.scheme),
		userinfo: S(v.userinfo),
		host:     S(v.host),
		port:     S(v.port),
		path:     S(v.path),
		query:    S(v.query),
		fragment: S(v.fragment),
	}
	return nil
}
