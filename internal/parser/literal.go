package parser

import "strconv"

// Kind is the variant held by a Literal.
type Kind int

// Literal variants.
const (
	KindBool Kind = iota
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

// Literal is a scalar value scanned from the right-hand side of a key line.
// The zero value is Bool(false).
type Literal struct {
	kind Kind
	b    bool
	s    string
}

// Bool returns a boolean literal.
func Bool(b bool) Literal {
	return Literal{kind: KindBool, b: b}
}

// Text returns a string literal.
func Text(s string) Literal {
	return Literal{kind: KindText, s: s}
}

// Kind reports which variant is active.
func (l Literal) Kind() Kind {
	return l.kind
}

// Bool returns the boolean value and whether l is a boolean literal.
func (l Literal) Bool() (bool, bool) {
	return l.b, l.kind == KindBool
}

// Text returns the string value and whether l is a string literal.
func (l Literal) Text() (string, bool) {
	return l.s, l.kind == KindText
}

// String stringifies either variant: booleans become "true"/"false",
// strings are returned verbatim.
func (l Literal) String() string {
	if l.kind == KindBool {
		return strconv.FormatBool(l.b)
	}
	return l.s
}

// Equal reports whether both literals hold the same variant and value.
func (l Literal) Equal(o Literal) bool {
	return l == o
}

// GoString keeps the variant visible in %#v and test failure output.
func (l Literal) GoString() string {
	if l.kind == KindBool {
		return "parser.Bool(" + strconv.FormatBool(l.b) + ")"
	}
	return "parser.Text(" + strconv.Quote(l.s) + ")"
}

// Scan converts the trimmed text after a key's colon into a Literal.
// A single trailing comma is dropped first. Strings are delimited by ' or "
// and copied verbatim up to the next occurrence of the same delimiter;
// backslashes carry no meaning and anything after the closing delimiter is
// ignored.
func Scan(fragment string) (Literal, error) {
	if n := len(fragment); n > 0 && fragment[n-1] == ',' {
		fragment = fragment[:n-1]
	}
	if fragment == "" {
		return Literal{}, ErrEmptyValue
	}

	switch fragment {
	case "true":
		return Bool(true), nil
	case "false":
		return Bool(false), nil
	}

	delim := fragment[0]
	if delim != '\'' && delim != '"' {
		return Literal{}, &ValueError{Err: ErrInvalidValue, Fragment: fragment}
	}

	// Both delimiters are ASCII, so a byte search cannot land inside a
	// multi-byte rune.
	for i := 1; i < len(fragment); i++ {
		if fragment[i] == delim {
			return Text(fragment[1:i]), nil
		}
	}
	return Literal{}, &ValueError{Err: ErrUnterminatedString, Fragment: fragment}
}
