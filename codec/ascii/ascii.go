package ascii

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/gomoc/moc"
	"github.com/katalvlaran/gomoc/qty"
)

// Encode renders m as a flat `depth/idx[-idx] …` token stream, terminated
// by a bare `d_max/` token (present even when m is empty).
func Encode[T qty.Index, Q qty.Quantity](m moc.RangeMOC[T, Q]) string {
	return strings.Join(tokens(m), " ")
}

// EncodeFolded is Encode but wraps the token stream so no rendered line
// exceeds width characters (a width <= 0 disables folding).
func EncodeFolded[T qty.Index, Q qty.Quantity](m moc.RangeMOC[T, Q], width int) string {
	toks := tokens(m)
	if width <= 0 {
		return strings.Join(toks, " ")
	}
	var lines []string
	var cur strings.Builder
	for _, tok := range toks {
		candidate := tok
		if cur.Len() > 0 {
			candidate = " " + tok
		}
		if cur.Len()+len(candidate) > width && cur.Len() > 0 {
			lines = append(lines, cur.String())
			cur.Reset()
			candidate = tok
		}
		cur.WriteString(candidate)
	}
	if cur.Len() > 0 {
		lines = append(lines, cur.String())
	}
	return strings.Join(lines, "\n")
}

func tokens[T qty.Index, Q qty.Quantity](m moc.RangeMOC[T, Q]) []string {
	cells := m.Cells()
	toks := make([]string, 0, len(cells)+1)
	i := 0
	for i < len(cells) {
		d := cells[i].Depth
		lo := cells[i].Idx
		hi := lo
		j := i + 1
		for j < len(cells) && cells[j].Depth == d && cells[j].Idx == hi+1 {
			hi = cells[j].Idx
			j++
		}
		if lo == hi {
			toks = append(toks, fmt.Sprintf("%d/%d", d, lo))
		} else {
			toks = append(toks, fmt.Sprintf("%d/%d-%d", d, lo, hi))
		}
		i = j
	}
	toks = append(toks, fmt.Sprintf("%d/", m.Depth()))
	return toks
}

// Decode parses a `depth/idx[-idx] …` stream (whitespace, comma, or
// newline separated) into a RangeMOC. Exactly one bare `depth/` terminal
// token must be present; it sets the declared depth.
func Decode[T qty.Index, Q qty.Quantity](q Q, s string) (moc.RangeMOC[T, Q], error) {
	var zero moc.RangeMOC[T, Q]
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\n' || r == '\t' || r == '\r'
	})

	var cells []qty.Cell
	var dMax uint8
	dMaxSet := false

	for _, tok := range fields {
		parts := strings.SplitN(tok, "/", 2)
		if len(parts) != 2 {
			return zero, ErrMalformed
		}
		d64, err := strconv.ParseUint(parts[0], 10, 8)
		if err != nil {
			return zero, ErrMalformed
		}
		d := uint8(d64)

		if parts[1] == "" {
			if dMaxSet {
				return zero, ErrMalformed
			}
			dMax = d
			dMaxSet = true
			continue
		}
		if dMaxSet {
			return zero, ErrMalformed
		}

		if lo, hi, ok := strings.Cut(parts[1], "-"); ok {
			loV, err1 := strconv.ParseUint(lo, 10, 64)
			hiV, err2 := strconv.ParseUint(hi, 10, 64)
			if err1 != nil || err2 != nil || hiV < loV {
				return zero, ErrMalformed
			}
			for v := loV; v <= hiV; v++ {
				cells = append(cells, qty.Cell{Depth: d, Idx: v})
			}
		} else {
			v, err := strconv.ParseUint(parts[1], 10, 64)
			if err != nil {
				return zero, ErrMalformed
			}
			cells = append(cells, qty.Cell{Depth: d, Idx: v})
		}
	}

	if !dMaxSet {
		return zero, ErrMalformed
	}
	out, err := moc.FromCells[T, Q](q, dMax, cells)
	if err != nil {
		return zero, fmt.Errorf("ascii.Decode: %w", err)
	}
	return out, nil
}
