package mocset

// widthFor returns the payload integer byte width for a stored MOC's
// depth, matching the FITS codec's u32/u64 split.
func widthFor(depth uint8) int {
	if depth <= 13 {
		return 4
	}
	return 8
}
