package mocset

import (
	"fmt"
	"os"

	"github.com/katalvlaran/gomoc/moc"
	"github.com/katalvlaran/gomoc/qty"
	"github.com/katalvlaran/gomoc/rangeset"
)

// Listing is one slot's summary as emitted by List.
type Listing struct {
	Slot     int
	ID       uint64
	Status   Status
	Depth    uint8
	NRanges  int
	ByteSize int64
}

// List emits (id, status, depth, n_ranges, byte_size) for every slot up to
// the first Free one.
func List(path string) ([]Listing, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mocset.List: %w", err)
	}
	defer f.Close()

	n, err := readN(f)
	if err != nil {
		return nil, fmt.Errorf("mocset.List: %w", err)
	}

	var out []Listing
	for i := 1; i < n; i++ {
		s, err := readSlot(f, i)
		if err != nil {
			return nil, fmt.Errorf("mocset.List: %w", err)
		}
		if s.status == StatusFree {
			break
		}
		prev, err := readIndexEntry(f, n, i-1)
		if err != nil {
			return nil, fmt.Errorf("mocset.List: %w", err)
		}
		cur, err := readIndexEntry(f, n, i)
		if err != nil {
			return nil, fmt.Errorf("mocset.List: %w", err)
		}
		size := cur - prev
		width := widthFor(s.depth)
		out = append(out, Listing{
			Slot:     i,
			ID:       s.id,
			Status:   s.status,
			Depth:    s.depth,
			NRanges:  int(size) / (2 * width),
			ByteSize: size,
		})
	}
	return out, nil
}

// Append writes m's range payload to the end of the data region and
// publishes a new Valid slot under id, following the lock -> data ->
// index -> metadata write order.
func Append[T qty.Index, Q qty.Quantity](path string, id uint64, m moc.RangeMOC[T, Q]) error {
	unlock, err := lockFile(path)
	if err != nil {
		return fmt.Errorf("mocset.Append: %w", err)
	}
	defer unlock()

	f, err := os.OpenFile(path, os.O_RDWR, 0o644)
	if err != nil {
		return fmt.Errorf("mocset.Append: %w", err)
	}
	defer f.Close()

	n, err := readN(f)
	if err != nil {
		return fmt.Errorf("mocset.Append: %w", err)
	}

	slotIdx := -1
	for i := 1; i < n; i++ {
		s, err := readSlot(f, i)
		if err != nil {
			return fmt.Errorf("mocset.Append: %w", err)
		}
		if s.status == StatusFree {
			slotIdx = i
			break
		}
	}
	if slotIdx < 0 {
		return ErrStoreFull
	}

	depth := m.Depth()
	width := widthFor(depth)
	ranges := m.Ranges()

	prevEnd, err := readIndexEntry(f, n, slotIdx-1)
	if err != nil {
		return fmt.Errorf("mocset.Append: %w", err)
	}

	payload := make([]byte, 0, len(ranges)*2*width)
	for _, r := range ranges {
		payload = appendInt(payload, width, uint64(r.Lo))
		payload = appendInt(payload, width, uint64(r.Hi))
	}
	if _, err := f.WriteAt(payload, prevEnd); err != nil {
		return fmt.Errorf("mocset.Append: %w", err)
	}

	newEnd := prevEnd + int64(len(payload))
	if err := writeIndexEntry(f, n, slotIdx, newEnd); err != nil {
		return fmt.Errorf("mocset.Append: %w", err)
	}

	if err := writeSlot(f, slotIdx, slot{status: StatusValid, depth: depth, id: id}); err != nil {
		return fmt.Errorf("mocset.Append: %w", err)
	}
	return nil
}

func appendInt(b []byte, width int, v uint64) []byte {
	if width == 4 {
		return append(b, byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
	}
	return append(b, byte(v), byte(v>>8), byte(v>>16), byte(v>>24), byte(v>>32), byte(v>>40), byte(v>>48), byte(v>>56))
}

// ChgStatus updates the status byte of every slot whose identifier is in
// ids. Each update is a single-byte write, atomic with respect to
// concurrent lock-free readers.
func ChgStatus(path string, status Status, ids ...uint64) error {
	f, err := os.OpenFile(path, os.O_RDWR, 0o644)
	if err != nil {
		return fmt.Errorf("mocset.ChgStatus: %w", err)
	}
	defer f.Close()

	n, err := readN(f)
	if err != nil {
		return fmt.Errorf("mocset.ChgStatus: %w", err)
	}

	want := make(map[uint64]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	matched := 0
	for i := 1; i < n; i++ {
		s, err := readSlot(f, i)
		if err != nil {
			return fmt.Errorf("mocset.ChgStatus: %w", err)
		}
		if s.status == StatusFree {
			break
		}
		if want[s.id] {
			if _, err := f.WriteAt([]byte{byte(status)}, metadataOffset(i)); err != nil {
				return fmt.Errorf("mocset.ChgStatus: %w", err)
			}
			matched++
		}
	}
	if matched == 0 {
		return ErrNotFound
	}
	return nil
}

// Purge rewrites a new store dropping Removed entries, then atomically
// renames it over path while holding the write lock. When n128 <= 0 it
// defaults to enough 128-slot blocks for slot 0 plus the kept entries, plus
// one spare block. A store holds MOCs
// of a single Quantity Q, declared by the caller (the file format itself
// does not record it).
func Purge[T qty.Index, Q qty.Quantity](path string, q Q, n128 int) error {
	unlock, err := lockFile(path)
	if err != nil {
		return fmt.Errorf("mocset.Purge: %w", err)
	}
	defer unlock()

	listings, err := List(path)
	if err != nil {
		return fmt.Errorf("mocset.Purge: %w", err)
	}
	kept := listings[:0:0]
	for _, l := range listings {
		if l.Status != StatusRemoved {
			kept = append(kept, l)
		}
	}

	if n128 <= 0 {
		n128 = (len(kept)+1+127)/128 + 1
	}

	tmpPath := path + ".purge.tmp"
	if err := Make(tmpPath, n128); err != nil {
		return fmt.Errorf("mocset.Purge: %w", err)
	}

	src, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("mocset.Purge: %w", err)
	}
	defer src.Close()
	origN, err := readN(src)
	if err != nil {
		return fmt.Errorf("mocset.Purge: %w", err)
	}

	for _, l := range kept {
		prev, err := readIndexEntry(src, origN, l.Slot-1)
		if err != nil {
			return fmt.Errorf("mocset.Purge: %w", err)
		}
		payload := make([]byte, l.ByteSize)
		if _, err := src.ReadAt(payload, prev); err != nil {
			return fmt.Errorf("mocset.Purge: %w", err)
		}
		ranges := decodeRanges[T](payload, widthFor(l.Depth))
		m, err := moc.FromRanges[T, Q](q, l.Depth, ranges, false)
		if err != nil {
			return fmt.Errorf("mocset.Purge: %w", err)
		}
		if err := Append(tmpPath, l.ID, m); err != nil {
			return fmt.Errorf("mocset.Purge: %w", err)
		}
		if l.Status == StatusDeprecated {
			if err := ChgStatus(tmpPath, StatusDeprecated, l.ID); err != nil {
				return fmt.Errorf("mocset.Purge: %w", err)
			}
		}
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("mocset.Purge: %w", err)
	}
	return nil
}

func decodeRanges[T qty.Index](payload []byte, width int) []rangeset.Range[T] {
	n := len(payload) / (2 * width)
	out := make([]rangeset.Range[T], 0, n)
	for i := 0; i < n; i++ {
		off := i * 2 * width
		lo := decodeInt(payload[off : off+width])
		hi := decodeInt(payload[off+width : off+2*width])
		out = append(out, rangeset.Range[T]{Lo: T(lo), Hi: T(hi)})
	}
	return out
}

func decodeInt(b []byte) uint64 {
	var v uint64
	for i := len(b) - 1; i >= 0; i-- {
		v = v<<8 | uint64(b[i])
	}
	return v
}
