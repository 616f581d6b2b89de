package grammar

import "github.com/ghettovoice/abnf"

// RFC 3986, section 3.1:
//
//	scheme = ALPHA *( ALPHA / DIGIT / "+" / "-" / "." )
var (
	alpha = abnf.AltFirst(
		"ALPHA",
		abnf.Range("%x41-5A", []byte{0x41}, []byte{0x5A}),
		abnf.Range("%x61-7A", []byte{0x61}, []byte{0x7A}),
	)

	digit = abnf.Range("DIGIT", []byte{0x30}, []byte{0x39})

	schemeChar = abnf.AltFirst(
		`ALPHA / DIGIT / "+" / "-" / "."`,
		alpha,
		digit,
		abnf.Range(`"+"`, []byte{'+'}, []byte{'+'}),
		abnf.Range(`"-"`, []byte{'-'}, []byte{'-'}),
		abnf.Range(`"."`, []byte{'.'}, []byte{'.'}),
	)

	scheme = abnf.Concat(
		"scheme",
		alpha,
		abnf.Repeat0Inf(`*( ALPHA / DIGIT / "+" / "-" / "." )`, schemeChar),
	)
)

// Scheme matches the scheme rule against s.
func Scheme(s []byte, ns *abnf.Nodes) error {
	return scheme(s, 0, ns) //errtrace:skip
}
