// Package nationality provides an ISO 3166-1 alpha-2 nationality value type
// and its persistence adapters. The code is stored as a 2-character text
// column; application code sees a small value object that derives the
// human-readable name from a static table.
package nationality

import "fmt"

// Nationality wraps a single ISO 3166-1 alpha-2 code. The zero value is the
// absent ("null") nationality. The struct is comparable, so == and map-key
// hashing follow the code alone; two absent values compare equal.
//
// Construction performs no validation: arbitrary strings are accepted and
// simply fail to resolve a name.
type Nationality struct {
	code string
}

// New wraps a raw code. The empty string yields the absent nationality.
func New(code string) Nationality {
	return Nationality{code: code}
}

// Code returns the raw stored code, empty when absent.
func (n Nationality) Code() string {
	return n.code
}

// String returns the code itself, or the empty string when absent.
func (n Nationality) String() string {
	return n.code
}

// IsZero reports whether no code is set.
func (n Nationality) IsZero() bool {
	return n.code == ""
}

// Name resolves the display name via the table. Unknown codes return
// ("", false) rather than an error.
func (n Nationality) Name() (string, bool) {
	return NameFor(n.code)
}

// EqualString compares against any operand by coercing it to its string
// form first. The operand does not need to be a valid country code; the
// comparison is deliberately lenient.
func (n Nationality) EqualString(other any) bool {
	return n.code == coerce(other)
}

// Compare orders the nationality against an arbitrary operand by string
// form, returning -1, 0 or 1.
func (n Nationality) Compare(other any) int {
	s := coerce(other)
	switch {
	case n.code < s:
		return -1
	case n.code > s:
		return 1
	default:
		return 0
	}
}

func coerce(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}
