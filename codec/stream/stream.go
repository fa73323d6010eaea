package stream

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/gomoc/moc"
	"github.com/katalvlaran/gomoc/qty"
)

// Encode writes m's preamble and cell tokens to w, one token per line, in
// the ascending order Cells() already produces them.
func Encode[T qty.Index, Q qty.Quantity](w io.Writer, m moc.RangeMOC[T, Q]) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "qty=%s\n", m.Quantity().Name()); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(bw, "depth=%d\n", m.Depth()); err != nil {
		return err
	}
	for _, tok := range lineTokens(m.Cells()) {
		if _, err := fmt.Fprintln(bw, tok); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// lineTokens coalesces contiguous same-depth cells into `depth/idx[-idx]`
// tokens, one per returned entry.
func lineTokens(cells []qty.Cell) []string {
	toks := make([]string, 0, len(cells))
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
	return toks
}

// Decode reads the Encode format from r. Cells are trusted to already be
// in ascending order within each depth bucket; Decode checks this in a
// single forward pass and fails with ErrOutOfOrder rather than sorting.
func Decode[T qty.Index, Q qty.Quantity](q Q, r io.Reader) (moc.RangeMOC[T, Q], error) {
	var zero moc.RangeMOC[T, Q]
	sc := bufio.NewScanner(r)

	if !sc.Scan() {
		return zero, ErrMalformed
	}
	qtyLine := strings.TrimSpace(sc.Text())
	name, ok := strings.CutPrefix(qtyLine, "qty=")
	if !ok {
		return zero, ErrMalformed
	}
	if !strings.EqualFold(name, q.Name()) {
		return zero, ErrQuantityMismatch
	}

	if !sc.Scan() {
		return zero, ErrMalformed
	}
	depthLine := strings.TrimSpace(sc.Text())
	depthStr, ok := strings.CutPrefix(depthLine, "depth=")
	if !ok {
		return zero, ErrMalformed
	}
	d64, err := strconv.ParseUint(depthStr, 10, 8)
	if err != nil {
		return zero, ErrMalformed
	}
	dMax := uint8(d64)

	var cells []qty.Cell
	lastDepth := map[uint8]uint64{}
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		depth, lo, hi, err := parseToken(line)
		if err != nil {
			return zero, err
		}
		if last, seen := lastDepth[depth]; seen && lo <= last {
			return zero, ErrOutOfOrder
		}
		lastDepth[depth] = hi
		for v := lo; v <= hi; v++ {
			cells = append(cells, qty.Cell{Depth: depth, Idx: v})
		}
	}
	if err := sc.Err(); err != nil {
		return zero, err
	}

	out, err := moc.FromCells[T, Q](q, dMax, cells)
	if err != nil {
		return zero, fmt.Errorf("stream.Decode: %w", err)
	}
	return out, nil
}

func parseToken(tok string) (depth uint8, lo, hi uint64, err error) {
	parts := strings.SplitN(tok, "/", 2)
	if len(parts) != 2 || parts[1] == "" {
		return 0, 0, 0, ErrMalformed
	}
	d64, err := strconv.ParseUint(parts[0], 10, 8)
	if err != nil {
		return 0, 0, 0, ErrMalformed
	}
	if loS, hiS, ok := strings.Cut(parts[1], "-"); ok {
		loV, err1 := strconv.ParseUint(loS, 10, 64)
		hiV, err2 := strconv.ParseUint(hiS, 10, 64)
		if err1 != nil || err2 != nil || hiV < loV {
			return 0, 0, 0, ErrMalformed
		}
		return uint8(d64), loV, hiV, nil
	}
	v, err := strconv.ParseUint(parts[1], 10, 64)
	if err != nil {
		return 0, 0, 0, ErrMalformed
	}
	return uint8(d64), v, v, nil
}
