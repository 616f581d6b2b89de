package uri

import (
	"context"
	"log/slog"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/urisplit/internal/grammar"
	"github.com/ghettovoice/urisplit/internal/log"
	"github.com/ghettovoice/urisplit/internal/util"
)

// Parser splits URI references into components.
// The zero value is ready to use.
type Parser struct {
	// Log is used to report rejected input at debug level.
	// If nil, nothing is logged.
	Log *slog.Logger
}

func (p *Parser) log() *slog.Logger {
	if p == nil || p.Log == nil {
		return log.Noop
	}
	return p.Log
}

var defParser Parser

// Parse splits s into components with the default [Parser].
//
// The returned [View] references s. Use [URI.Own] to detach it.
// On failure the error is a [*ParseError] and the returned View is zero.
func Parse(s string) (View, error) {
	return errtrace.Wrap2(defParser.Parse(s))
}

// Parse splits s into components.
// Any input is accepted except a malformed scheme or an authority with a space.
func (p *Parser) Parse(s string) (View, error) {
	u, err := parse(s)
	if err != nil {
		p.log().LogAttrs(context.Background(), slog.LevelDebug, "reject URI",
			slog.Any(log.InputKey, log.StringValue(s)),
			slog.Any("error", err),
		)
		return View{}, errtrace.Wrap(err)
	}
	return u, nil
}

func parse(s string) (View, error) {
	var u View

	// scheme ":", only when no "/" comes before the colon
	if i := strings.IndexByte(s, ':'); i >= 0 && strings.IndexByte(s[:i], '/') < 0 {
		if !grammar.IsScheme(s[:i]) {
			return View{}, errtrace.Wrap(newParseError(ErrInvalidScheme))
		}
		u.scheme = Span(s[:i])
		s = s[i+1:]
	}

	// "//" authority
	if rest, ok := strings.CutPrefix(s, "//"); ok {
		end := strings.IndexAny(rest, "/?#")
		if end < 0 {
			end = len(rest)
		}
		auth := rest[:end]
		if strings.IndexByte(auth, ' ') >= 0 {
			return View{}, errtrace.Wrap(newParseError(ErrInvalidAuthority))
		}
		u.userinfo, u.host, u.port = splitAuthority(auth)
		s = rest[end:]
	}

	end := strings.IndexAny(s, "?#")
	if end < 0 {
		end = len(s)
	}
	u.path = Span(s[:end])
	s = s[end:]

	if rest, ok := strings.CutPrefix(s, "?"); ok {
		end = strings.IndexByte(rest, '#')
		if end < 0 {
			end = len(rest)
		}
		u.query = Span(rest[:end])
		s = rest[end:]
	}

	if rest, ok := strings.CutPrefix(s, "#"); ok {
		u.fragment = Span(rest)
	}
	return u, nil
}

// splitAuthority splits an authority into userinfo, host and port.
// Userinfo ends at the first "@". A host starting with "[" runs through the matching "]"
// and keeps the brackets; without "]" host and port stay empty.
func splitAuthority(auth string) (userinfo, host, port Span) {
	if ui, rest, ok := util.CutByte(auth, '@'); ok {
		userinfo, auth = Span(ui), rest
	}

	if strings.HasPrefix(auth, "[") {
		end := strings.IndexByte(auth, ']')
		if end < 0 {
			return userinfo, "", ""
		}
		host = Span(auth[:end+1])
		if rest, ok := strings.CutPrefix(auth[end+1:], ":"); ok {
			port = Span(rest)
		}
		return userinfo, host, port
	}

	h, p, _ := util.CutByte(auth, ':')
	return userinfo, Span(h), Span(p)
}
