package region

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/gomoc/healpix"
	"github.com/katalvlaran/gomoc/moc"
	"github.com/katalvlaran/gomoc/qty"
)

// FromKwFile parses a plain-text keyword description of a compound
// region, one shape per line, and returns the union of all shapes. Blank
// lines and lines starting with '#' are ignored. Recognized keywords
// (all angles in radians):
//
//	CONE    depth lon lat radius
//	RING    depth lon lat innerRadius outerRadius
//	BOX     depth lon lat halfWidth halfHeight positionAngle
//	ZONE    depth lonMin lonMax latMin latMax
//	POLYGON depth complement(0|1) lon1 lat1 lon2 lat2 ...
//
// Grounded on the teacher's line-oriented, error-wrapped text parsing
// style; bufio.Scanner is stdlib because the keyword grammar is a small
// fixed vocabulary and no example repo pulls in a config-file parsing
// library for anything this simple.
func FromKwFile[T qty.Index](r io.Reader, opts ...Option) (moc.RangeMOC[T, qty.Space], error) {
	var zero moc.RangeMOC[T, qty.Space]
	var parts []moc.RangeMOC[T, qty.Space]

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		kw := strings.ToUpper(fields[0])
		args := fields[1:]

		var m moc.RangeMOC[T, qty.Space]
		var err error
		switch kw {
		case "CONE":
			m, err = kwCone[T](args, opts...)
		case "RING":
			m, err = kwRing[T](args, opts...)
		case "BOX":
			m, err = kwBox[T](args, opts...)
		case "ZONE":
			m, err = kwZone[T](args, opts...)
		case "POLYGON":
			m, err = kwPolygon[T](args, opts...)
		default:
			err = fmt.Errorf("unknown keyword %q", kw)
		}
		if err != nil {
			return zero, fmt.Errorf("region.FromKwFile: line %d: %w: %v", lineNo, ErrKwFile, err)
		}
		parts = append(parts, m)
	}
	if err := scanner.Err(); err != nil {
		return zero, fmt.Errorf("region.FromKwFile: %w", err)
	}
	if len(parts) == 0 {
		return zero, fmt.Errorf("region.FromKwFile: %w: no shapes", ErrKwFile)
	}
	return moc.UnionAll(parts), nil
}

func parseFloats(args []string) ([]float64, error) {
	out := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func parseDepth(args []string) (uint8, []string, error) {
	if len(args) == 0 {
		return 0, nil, fmt.Errorf("missing depth")
	}
	d, err := strconv.ParseUint(args[0], 10, 8)
	if err != nil {
		return 0, nil, err
	}
	return uint8(d), args[1:], nil
}

func kwCone[T qty.Index](args []string, opts ...Option) (moc.RangeMOC[T, qty.Space], error) {
	d, rest, err := parseDepth(args)
	if err != nil {
		return moc.RangeMOC[T, qty.Space]{}, err
	}
	f, err := parseFloats(rest)
	if err != nil || len(f) != 3 {
		return moc.RangeMOC[T, qty.Space]{}, fmt.Errorf("CONE expects depth lon lat radius")
	}
	return Cone[T](d, healpix.LonLat{Lon: f[0], Lat: f[1]}, f[2], opts...)
}

func kwRing[T qty.Index](args []string, opts ...Option) (moc.RangeMOC[T, qty.Space], error) {
	d, rest, err := parseDepth(args)
	if err != nil {
		return moc.RangeMOC[T, qty.Space]{}, err
	}
	f, err := parseFloats(rest)
	if err != nil || len(f) != 4 {
		return moc.RangeMOC[T, qty.Space]{}, fmt.Errorf("RING expects depth lon lat inner outer")
	}
	return Ring[T](d, healpix.LonLat{Lon: f[0], Lat: f[1]}, f[2], f[3], opts...)
}

func kwBox[T qty.Index](args []string, opts ...Option) (moc.RangeMOC[T, qty.Space], error) {
	d, rest, err := parseDepth(args)
	if err != nil {
		return moc.RangeMOC[T, qty.Space]{}, err
	}
	f, err := parseFloats(rest)
	if err != nil || len(f) != 5 {
		return moc.RangeMOC[T, qty.Space]{}, fmt.Errorf("BOX expects depth lon lat halfWidth halfHeight positionAngle")
	}
	return Box[T](d, healpix.LonLat{Lon: f[0], Lat: f[1]}, f[2], f[3], f[4], opts...)
}

func kwZone[T qty.Index](args []string, opts ...Option) (moc.RangeMOC[T, qty.Space], error) {
	d, rest, err := parseDepth(args)
	if err != nil {
		return moc.RangeMOC[T, qty.Space]{}, err
	}
	f, err := parseFloats(rest)
	if err != nil || len(f) != 4 {
		return moc.RangeMOC[T, qty.Space]{}, fmt.Errorf("ZONE expects depth lonMin lonMax latMin latMax")
	}
	return Zone[T](d, f[0], f[1], f[2], f[3], opts...)
}

func kwPolygon[T qty.Index](args []string, opts ...Option) (moc.RangeMOC[T, qty.Space], error) {
	d, rest, err := parseDepth(args)
	if err != nil {
		return moc.RangeMOC[T, qty.Space]{}, err
	}
	if len(rest) < 1 {
		return moc.RangeMOC[T, qty.Space]{}, fmt.Errorf("POLYGON expects depth complement lon1 lat1 ...")
	}
	complement := rest[0] == "1"
	coords, err := parseFloats(rest[1:])
	if err != nil || len(coords) < 6 || len(coords)%2 != 0 {
		return moc.RangeMOC[T, qty.Space]{}, fmt.Errorf("POLYGON expects an even number of coordinates, at least 3 vertices")
	}
	verts := make([]healpix.LonLat, len(coords)/2)
	for i := range verts {
		verts[i] = healpix.LonLat{Lon: coords[2*i], Lat: coords[2*i+1]}
	}
	return Polygon[T](d, verts, complement, opts...)
}
