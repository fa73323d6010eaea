package ascii

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/gomoc/moc2"
	"github.com/katalvlaran/gomoc/qty"
)

// Encode2D renders a 2-D MOC as one line per element: the element's outer
// token stream, a bare `s` separator, then the inner token stream. Elements
// are newline-separated.
func Encode2D[T qty.Index, Q qty.Quantity, U qty.Index, R qty.Quantity](m moc2.RangeMOC2[T, Q, U, R]) string {
	elems := m.Elements()
	lines := make([]string, 0, len(elems))
	for _, e := range elems {
		lines = append(lines, Encode(e.Outer)+" s "+Encode(e.Inner))
	}
	return strings.Join(lines, "\n")
}

// Decode2D parses the Encode2D format back into a RangeMOC2.
func Decode2D[T qty.Index, Q qty.Quantity, U qty.Index, R qty.Quantity](outerQ Q, innerQ R, s string) (moc2.RangeMOC2[T, Q, U, R], error) {
	var zero moc2.RangeMOC2[T, Q, U, R]
	var elements []moc2.Element[T, Q, U, R]

	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		outerPart, innerPart, ok := cutSeparator(line)
		if !ok {
			return zero, ErrMalformed
		}
		outer, err := Decode[T, Q](outerQ, outerPart)
		if err != nil {
			return zero, fmt.Errorf("ascii.Decode2D: %w", err)
		}
		inner, err := Decode[U, R](innerQ, innerPart)
		if err != nil {
			return zero, fmt.Errorf("ascii.Decode2D: %w", err)
		}
		elements = append(elements, moc2.Element[T, Q, U, R]{Outer: outer, Inner: inner})
	}
	return moc2.New(elements), nil
}

// cutSeparator splits a line on a standalone "s" token (surrounded by
// whitespace), the only place the letter s is a token rather than part of
// a depth/idx pair.
func cutSeparator(line string) (outer, inner string, ok bool) {
	fields := strings.Fields(line)
	for i, f := range fields {
		if f == "s" {
			return strings.Join(fields[:i], " "), strings.Join(fields[i+1:], " "), true
		}
	}
	return "", "", false
}
