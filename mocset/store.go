package mocset

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// Make creates a new store file at path sized for N = n128*128 slots. The
// metadata block is zeroed (every slot Free) except slot 0,
// which stores N; the cumulative index is zeroed except entry 0, which
// stores the header size.
func Make(path string, n128 int) error {
	n := n128 * 128
	headerSize := int64(16 * n)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("mocset.Make: %w", err)
	}
	defer f.Close()

	if err := f.Truncate(headerSize); err != nil {
		return fmt.Errorf("mocset.Make: %w", err)
	}

	var slot0 [8]byte
	putUint64(slot0[:], uint64(n))
	if _, err := f.WriteAt(slot0[:], 0); err != nil {
		return fmt.Errorf("mocset.Make: %w", err)
	}

	var entry0 [8]byte
	putUint64(entry0[:], uint64(headerSize))
	if _, err := f.WriteAt(entry0[:], int64(n)*8); err != nil {
		return fmt.Errorf("mocset.Make: %w", err)
	}

	return nil
}

// readN reads slot 0 to recover N, the configured slot count.
func readN(f *os.File) (int, error) {
	var b [8]byte
	if _, err := f.ReadAt(b[:], 0); err != nil {
		return 0, fmt.Errorf("mocset: reading slot 0: %w", err)
	}
	n := int(getUint64(b[:]))
	if n <= 0 {
		return 0, ErrCorruptHeader
	}
	return n, nil
}

func metadataOffset(i int) int64 { return int64(i) * 8 }
func indexOffset(n, k int) int64 { return int64(n)*8 + int64(k)*8 }
func headerSize(n int) int64     { return int64(16 * n) }

func readSlot(f *os.File, i int) (slot, error) {
	var b [8]byte
	if _, err := f.ReadAt(b[:], metadataOffset(i)); err != nil {
		return slot{}, fmt.Errorf("mocset: reading slot %d: %w", i, err)
	}
	return decodeSlot(b), nil
}

func writeSlot(f *os.File, i int, s slot) error {
	b := encodeSlot(s)
	_, err := f.WriteAt(b[:], metadataOffset(i))
	return err
}

func readIndexEntry(f *os.File, n, k int) (int64, error) {
	var b [8]byte
	if _, err := f.ReadAt(b[:], indexOffset(n, k)); err != nil {
		return 0, fmt.Errorf("mocset: reading index entry %d: %w", k, err)
	}
	return int64(getUint64(b[:])), nil
}

func writeIndexEntry(f *os.File, n, k int, offset int64) error {
	var b [8]byte
	putUint64(b[:], uint64(offset))
	_, err := f.WriteAt(b[:], indexOffset(n, k))
	return err
}

// lockFile acquires an advisory exclusive flock on <path>.lock, blocking
// until available, and returns a release function.
func lockFile(path string) (func() error, error) {
	lf, err := os.OpenFile(path+".lock", os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return nil, fmt.Errorf("mocset: opening lock file: %w", err)
	}
	if err := unix.Flock(int(lf.Fd()), unix.LOCK_EX); err != nil {
		lf.Close()
		return nil, fmt.Errorf("mocset: acquiring lock: %w", err)
	}
	return func() error {
		if err := unix.Flock(int(lf.Fd()), unix.LOCK_UN); err != nil {
			lf.Close()
			return err
		}
		return lf.Close()
	}, nil
}
