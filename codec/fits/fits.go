package fits

import (
	"bufio"
	"compress/gzip"
	"encoding/binary"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/gomoc/moc"
	"github.com/katalvlaran/gomoc/qty"
	"github.com/katalvlaran/gomoc/rangeset"
)

// widthFor returns the integer byte width and TFORM1 code for a depth,
// matching the MOC-set store's u32/u64 split (depth <= 13 uses 4 bytes).
func widthFor(depth uint8) (width int, tform string) {
	if depth <= 13 {
		return 4, "1J"
	}
	return 8, "1K"
}

func orderKeys(q qty.Quantity, depth uint8) []string {
	cards := []string{cardInt("MOCORDER", int64(depth))}
	switch q.Name() {
	case "SPACE":
		cards = append(cards, cardString("COORDSYS", "C"), cardInt("MOCORD_S", int64(depth)))
	case "TIME":
		cards = append(cards, cardString("TIMESYS", "TCB"), cardInt("MOCORD_T", int64(depth)))
	}
	return cards
}

// EncodeRange writes m as a FITS v2.0 RANGE binary table.
func EncodeRange[T qty.Index, Q qty.Quantity](w io.Writer, m moc.RangeMOC[T, Q], tool string) error {
	ranges := m.Ranges()
	depth := m.Depth()
	width, tform := widthFor(depth)
	naxis2 := 2 * len(ranges)

	cards := append([]string{}, primaryHeader()...)
	if err := writeHeader(w, cards); err != nil {
		return err
	}

	bt := []string{
		cardString("XTENSION", "BINTABLE"),
		cardInt("BITPIX", 8),
		cardInt("NAXIS", 2),
		cardInt("NAXIS1", int64(width)),
		cardInt("NAXIS2", int64(naxis2)),
		cardInt("PCOUNT", 0),
		cardInt("GCOUNT", 1),
		cardInt("TFIELDS", 1),
		cardString("TTYPE1", "RANGE"),
		cardString("TFORM1", tform),
		cardBool("MOC", true),
		cardString("MOCVERS", "2.0"),
		cardInt("MOCDIM", 1),
		cardString("ORDERING", "RANGE"),
	}
	bt = append(bt, orderKeys(m.Quantity(), depth)...)
	bt = append(bt, cardString("MOCTOOL", tool))
	if err := writeHeader(w, bt); err != nil {
		return err
	}

	var dataLen int
	bw := bufio.NewWriter(w)
	for _, r := range ranges {
		if err := writeInt(bw, width, uint64(r.Lo)); err != nil {
			return err
		}
		if err := writeInt(bw, width, uint64(r.Hi)); err != nil {
			return err
		}
		dataLen += 2 * width
	}
	for dataLen%blockSize != 0 {
		if err := bw.WriteByte(0); err != nil {
			return err
		}
		dataLen++
	}
	return bw.Flush()
}

// EncodeUniq writes m as a FITS v1.0 UNIQ binary table (S-MOC only).
func EncodeUniq[T qty.Index, Q qty.Quantity](w io.Writer, m moc.RangeMOC[T, Q], tool string) error {
	uniqs := m.Uniqs()
	depth := m.Depth()
	width, tform := widthFor(depth)
	naxis2 := len(uniqs)

	if err := writeHeader(w, primaryHeader()); err != nil {
		return err
	}

	bt := []string{
		cardString("XTENSION", "BINTABLE"),
		cardInt("BITPIX", 8),
		cardInt("NAXIS", 2),
		cardInt("NAXIS1", int64(width)),
		cardInt("NAXIS2", int64(naxis2)),
		cardInt("PCOUNT", 0),
		cardInt("GCOUNT", 1),
		cardInt("TFIELDS", 1),
		cardString("TTYPE1", "UNIQ"),
		cardString("TFORM1", tform),
		cardBool("MOC", true),
		cardString("MOCVERS", "1.0"),
		cardInt("MOCDIM", 1),
		cardString("ORDERING", "NUNIQ"),
		cardInt("MOCORDER", int64(depth)),
		cardString("MOCTOOL", tool),
	}
	if err := writeHeader(w, bt); err != nil {
		return err
	}

	var dataLen int
	bw := bufio.NewWriter(w)
	for _, u := range uniqs {
		if err := writeInt(bw, width, u); err != nil {
			return err
		}
		dataLen += width
	}
	for dataLen%blockSize != 0 {
		if err := bw.WriteByte(0); err != nil {
			return err
		}
		dataLen++
	}
	return bw.Flush()
}

// Decode reads either FITS variant, transparently unwrapping gzip and
// dispatching on the ORDERING header key.
func Decode[T qty.Index, Q qty.Quantity](q Q, r io.Reader) (moc.RangeMOC[T, Q], error) {
	var zero moc.RangeMOC[T, Q]

	br := bufio.NewReader(r)
	magic, err := br.Peek(2)
	var src io.Reader = br
	if err == nil && len(magic) == 2 && magic[0] == 0x1f && magic[1] == 0x8b {
		gz, gzErr := gzip.NewReader(br)
		if gzErr != nil {
			return zero, fmt.Errorf("fits.Decode: %w", gzErr)
		}
		defer gz.Close()
		src = gz
	}

	if _, err := readHeader(src); err != nil {
		return zero, err
	}
	hdr, err := readHeader(src)
	if err != nil {
		return zero, err
	}

	ordering := hdr["ORDERING"]
	tform := hdr["TFORM1"]
	width, err := widthOfTform(tform)
	if err != nil {
		return zero, err
	}
	naxis2, err := strconv.Atoi(hdr["NAXIS2"])
	if err != nil {
		return zero, ErrMalformed
	}

	switch ordering {
	case "RANGE":
		n := naxis2 / 2
		ranges := make([]rangeset.Range[T], 0, n)
		for i := 0; i < n; i++ {
			lo, err := readInt(src, width)
			if err != nil {
				return zero, err
			}
			hi, err := readInt(src, width)
			if err != nil {
				return zero, err
			}
			ranges = append(ranges, rangeset.Range[T]{Lo: T(lo), Hi: T(hi)})
		}
		depth64, err := strconv.Atoi(firstNonEmpty(hdr["MOCORDER"], hdr["MOCORD_S"], hdr["MOCORD_T"]))
		if err != nil {
			return zero, ErrMalformed
		}
		out, err := moc.FromRanges[T, Q](q, uint8(depth64), ranges, false)
		if err != nil {
			return zero, fmt.Errorf("fits.Decode: %w", err)
		}
		return out, nil

	case "NUNIQ":
		depth64, err := strconv.Atoi(hdr["MOCORDER"])
		if err != nil {
			return zero, ErrMalformed
		}
		uniqs := make([]uint64, 0, naxis2)
		for i := 0; i < naxis2; i++ {
			u, err := readInt(src, width)
			if err != nil {
				return zero, err
			}
			if u == 0 {
				continue
			}
			c := qty.UniqToCell(q, u)
			if int(c.Depth) > depth64 {
				continue
			}
			uniqs = append(uniqs, u)
		}
		out, err := moc.FromUniqs[T, Q](q, uniqs)
		if err != nil {
			return zero, fmt.Errorf("fits.Decode: %w", err)
		}
		return out, nil

	default:
		return zero, ErrUnsupportedOrdering
	}
}

func firstNonEmpty(vs ...string) string {
	for _, v := range vs {
		if v != "" {
			return v
		}
	}
	return ""
}

func widthOfTform(tform string) (int, error) {
	switch tform {
	case "1J", "J":
		return 4, nil
	case "1K", "K":
		return 8, nil
	default:
		return 0, ErrMalformed
	}
}

func writeInt(w io.Writer, width int, v uint64) error {
	if width == 4 {
		var b [4]byte
		binary.BigEndian.PutUint32(b[:], uint32(v))
		_, err := w.Write(b[:])
		return err
	}
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	_, err := w.Write(b[:])
	return err
}

func readInt(r io.Reader, width int) (uint64, error) {
	if width == 4 {
		var b [4]byte
		if _, err := io.ReadFull(r, b[:]); err != nil {
			return 0, ErrMalformed
		}
		return uint64(binary.BigEndian.Uint32(b[:])), nil
	}
	var b [8]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, ErrMalformed
	}
	return binary.BigEndian.Uint64(b[:]), nil
}
