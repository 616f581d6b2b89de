// Package grammar contains syntax rules of URI components.
package grammar

import "github.com/ghettovoice/abnf"

func init() {
	abnf.EnableNodeCache(1024)
}

// IsScheme reports whether the whole s is a syntactically valid URI scheme.
func IsScheme[T ~string | ~[]byte](s T) bool {
	if len(s) == 0 || !isAlpha(s[0]) {
		return false
	}

	ns := abnf.NewNodes()
	defer ns.Free()

	if err := Scheme([]byte(s), ns); err != nil {
		return false
	}
	return ns.Best().Len() == len(s)
}

func isAlpha(c byte) bool { return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' }
