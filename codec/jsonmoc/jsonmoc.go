package jsonmoc

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/gomoc/moc"
	"github.com/katalvlaran/gomoc/qty"
)

// Encode renders m as `{"<d1>":[idx,"idx-idx",…], …}`, one array per depth
// present in m's cell decomposition plus m's own declared depth, in the
// order depths are first encountered while scanning Cells() ascending.
func Encode[T qty.Index, Q qty.Quantity](m moc.RangeMOC[T, Q]) string {
	cells := m.Cells()

	order := make([]uint8, 0, 4)
	byDepth := make(map[uint8][]uint64, 4)
	seen := make(map[uint8]bool, 4)
	for _, c := range cells {
		if !seen[c.Depth] {
			seen[c.Depth] = true
			order = append(order, c.Depth)
		}
		byDepth[c.Depth] = append(byDepth[c.Depth], c.Idx)
	}
	if !seen[m.Depth()] {
		order = append(order, m.Depth())
	}

	var b strings.Builder
	b.WriteByte('{')
	for i, d := range order {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "%q:[", strconv.FormatUint(uint64(d), 10))
		b.WriteString(runTokens(byDepth[d]))
		b.WriteByte(']')
	}
	b.WriteByte('}')
	return b.String()
}

// runTokens coalesces ascending idxs into comma-separated `idx` or
// `"lo-hi"` JSON tokens.
func runTokens(idxs []uint64) string {
	var parts []string
	i := 0
	for i < len(idxs) {
		lo := idxs[i]
		hi := lo
		j := i + 1
		for j < len(idxs) && idxs[j] == hi+1 {
			hi = idxs[j]
			j++
		}
		if lo == hi {
			parts = append(parts, strconv.FormatUint(lo, 10))
		} else {
			parts = append(parts, fmt.Sprintf("%q", fmt.Sprintf("%d-%d", lo, hi)))
		}
		i = j
	}
	return strings.Join(parts, ",")
}

// Decode parses the Encode format back into a RangeMOC. The declared depth
// is the maximum numeric key present.
func Decode[T qty.Index, Q qty.Quantity](q Q, s string) (moc.RangeMOC[T, Q], error) {
	var zero moc.RangeMOC[T, Q]
	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()

	if tok, err := dec.Token(); err != nil || tok != json.Delim('{') {
		return zero, ErrMalformed
	}

	var cells []qty.Cell
	var dMax uint8
	haveAny := false

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return zero, ErrMalformed
		}
		key, ok := keyTok.(string)
		if !ok {
			return zero, ErrMalformed
		}
		d64, err := strconv.ParseUint(key, 10, 8)
		if err != nil {
			return zero, ErrMalformed
		}
		d := uint8(d64)
		haveAny = true
		if d > dMax {
			dMax = d
		}

		if tok, err := dec.Token(); err != nil || tok != json.Delim('[') {
			return zero, ErrMalformed
		}
		for dec.More() {
			elemTok, err := dec.Token()
			if err != nil {
				return zero, ErrMalformed
			}
			switch v := elemTok.(type) {
			case json.Number:
				idx, err := strconv.ParseUint(v.String(), 10, 64)
				if err != nil {
					return zero, ErrMalformed
				}
				cells = append(cells, qty.Cell{Depth: d, Idx: idx})
			case string:
				lo, hi, ok := strings.Cut(v, "-")
				if !ok {
					return zero, ErrMalformed
				}
				loV, err1 := strconv.ParseUint(lo, 10, 64)
				hiV, err2 := strconv.ParseUint(hi, 10, 64)
				if err1 != nil || err2 != nil || hiV < loV {
					return zero, ErrMalformed
				}
				for i := loV; i <= hiV; i++ {
					cells = append(cells, qty.Cell{Depth: d, Idx: i})
				}
			default:
				return zero, ErrMalformed
			}
		}
		if tok, err := dec.Token(); err != nil || tok != json.Delim(']') {
			return zero, ErrMalformed
		}
	}
	if tok, err := dec.Token(); err != nil || tok != json.Delim('}') {
		return zero, ErrMalformed
	}
	if !haveAny {
		return zero, ErrMalformed
	}

	out, err := moc.FromCells[T, Q](q, dMax, cells)
	if err != nil {
		return zero, fmt.Errorf("jsonmoc.Decode: %w", err)
	}
	return out, nil
}
