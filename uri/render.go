package uri

import (
	"fmt"
	"io"
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/urisplit/internal/errorutil"
	"github.com/ghettovoice/urisplit/internal/ioutil"
	"github.com/ghettovoice/urisplit/internal/util"
)

// Format returns the canonical string form of c.
func Format(c Components) string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	RenderTo(sb, c) //nolint:errcheck
	return sb.String()
}

// RenderTo writes the canonical string form of c to w.
//
// Components are written in order, each only when non-empty:
// "scheme:", then "//userinfo@host:port" when any of userinfo, host or port is set,
// then the path, "?query" and "#fragment".
func RenderTo(w io.Writer, c Components) (num int, err error) {
	if w == nil {
		return 0, errtrace.Wrap(errorutil.NewInvalidArgumentError("nil writer"))
	}
	if c == nil {
		return 0, nil
	}

	var (
		scheme   = c.Scheme()
		userinfo = c.Userinfo()
		host     = c.Host()
		port     = c.Port()
	)

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.WriteIf(scheme != "", scheme, ":")
	if userinfo != "" || host != "" || port != "" {
		cw.WriteString("//")
		cw.WriteIf(userinfo != "", userinfo, "@")
		cw.WriteString(host)
		cw.WriteIf(port != "", ":", port)
	}
	cw.WriteString(c.Path())
	if q := c.Query(); q != "" {
		cw.WriteStrings("?", q)
	}
	if f := c.Fragment(); f != "" {
		cw.WriteStrings("#", f)
	}
	return errtrace.Wrap2(cw.Result())
}

// RenderTo writes the canonical string form of the URI to w.
func (u URI[S]) RenderTo(w io.Writer) (num int, err error) {
	return errtrace.Wrap2(RenderTo(w, u))
}

// Render returns the canonical string form of the URI.
func (u URI[S]) Render() string { return Format(u) }

// String returns the canonical string form of the URI.
func (u URI[S]) String() string { return Format(u) }

type fields struct {
	Scheme, Userinfo, Host, Port, Path, Query, Fragment string
}

// Format implements [fmt.Formatter].
//
// Verbs %s and %v print the canonical string, %q prints it quoted.
// %#v and any other verb print the components as a struct.
func (u URI[S]) Format(f fmt.State, verb rune) {
	switch {
	case verb == 's', verb == 'v' && !f.Flag('#'):
		u.RenderTo(f) //nolint:errcheck
	case verb == 'q':
		fmt.Fprint(f, strconv.Quote(u.String()))
	default:
		fmt.Fprintf(f, fmt.FormatString(f, verb), fields{
			Scheme:   u.Scheme(),
			Userinfo: u.Userinfo(),
			Host:     u.Host(),
			Port:     u.Port(),
			Path:     u.Path(),
			Query:    u.Query(),
			Fragment: u.Fragment(),
		})
	}
}
