package healpix

import (
	"math"

	"github.com/katalvlaran/gomoc/qty"
)

// Reference is a simplified, self-consistent stand-in for a real HEALPix
// binding: it partitions the sphere into 12 base pixels (3 latitude bands
// x 4 longitude quadrants) and recursively subdivides each by bit
// interleaving its local (ix, iy) grid coordinates, so that subdividing
// cell i at depth d always yields children 4i, 4i+1, 4i+2, 4i+3 at depth
// d+1 — the invariant the whole range-based MOC engine depends on. It is
// not area-accurate in the way a true HEALPix pixelization is; that
// precision is explicitly out of scope for the core engine (spec.md §1)
// and belongs to an external collaborator in a production deployment.
type Reference struct{}

const (
	halfPi = math.Pi / 2
)

// baseRect returns the (lonMin,lonMax,zMin,zMax) rectangle of base pixel
// bp in [0,12): zBand = bp/4 (0=north cap, 1=equatorial, 2=south cap),
// lonQuadrant = bp%4.
func baseRect(bp uint64) (lonMin, lonMax, zMin, zMax float64) {
	zBand := bp / 4
	lonQuad := bp % 4
	lonMin = float64(lonQuad) * halfPi
	lonMax = lonMin + halfPi
	switch zBand {
	case 0:
		zMin, zMax = 1.0/3.0, 1.0
	case 1:
		zMin, zMax = -1.0/3.0, 1.0/3.0
	default:
		zMin, zMax = -1.0, -1.0/3.0
	}
	return
}

func interleave(ix, iy uint64) uint64 {
	var out uint64
	for k := uint(0); k < 32; k++ {
		out |= ((ix >> k) & 1) << (2 * k)
		out |= ((iy >> k) & 1) << (2*k + 1)
	}
	return out
}

func deinterleave(v uint64) (ix, iy uint64) {
	for k := uint(0); k < 32; k++ {
		ix |= ((v >> (2 * k)) & 1) << k
		iy |= ((v >> (2*k + 1)) & 1) << k
	}
	return
}

// cellIndex composes the global depth-d index of base pixel bp with local
// grid coordinates (ix, iy) in [0, 2^d).
func cellIndex(bp uint64, d uint8, ix, iy uint64) uint64 {
	return bp<<(2*uint64(d)) + interleave(ix, iy)
}

// indexToLocal decomposes a global depth-d index into (bp, ix, iy).
func indexToLocal(d uint8, i uint64) (bp, ix, iy uint64) {
	n := uint64(1) << (2 * uint64(d))
	bp = i / n
	ix, iy = deinterleave(i % n)
	return
}

// rect is a lon/z rectangle at some depth within a base pixel.
type rect struct{ lonMin, lonMax, zMin, zMax float64 }

func (r rect) mid() LonLat {
	return LonLat{Lon: (r.lonMin + r.lonMax) / 2, Lat: math.Asin(clamp((r.zMin+r.zMax)/2, -1, 1))}
}

func (r rect) corners() [4]LonLat {
	return [4]LonLat{
		{Lon: r.lonMin, Lat: math.Asin(clamp(r.zMin, -1, 1))},
		{Lon: r.lonMin, Lat: math.Asin(clamp(r.zMax, -1, 1))},
		{Lon: r.lonMax, Lat: math.Asin(clamp(r.zMin, -1, 1))},
		{Lon: r.lonMax, Lat: math.Asin(clamp(r.zMax, -1, 1))},
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (r rect) contains(p LonLat) bool {
	z := math.Sin(p.Lat)
	return r.lonMin <= p.Lon && p.Lon <= r.lonMax && r.zMin <= z && z <= r.zMax
}

func (r rect) child(bx, by uint64) rect {
	lonMid := (r.lonMin + r.lonMax) / 2
	zMid := (r.zMin + r.zMax) / 2
	out := r
	if bx == 0 {
		out.lonMax = lonMid
	} else {
		out.lonMin = lonMid
	}
	if by == 0 {
		out.zMax = zMid
	} else {
		out.zMin = zMid
	}
	return out
}

// AngularDistance returns the great-circle angular separation (radians)
// between two positions.
func AngularDistance(a, b LonLat) float64 {
	cosC := math.Sin(a.Lat)*math.Sin(b.Lat) + math.Cos(a.Lat)*math.Cos(b.Lat)*math.Cos(a.Lon-b.Lon)
	return math.Acos(clamp(cosC, -1, 1))
}

// classification of a rectangle relative to a region predicate.
type classification int

const (
	fullOut classification = iota
	fullIn
	partial
)

func classify(r rect, contains func(LonLat) bool) classification {
	pts := r.corners()
	allIn, allOut := true, true
	for _, p := range pts {
		if contains(p) {
			allOut = false
		} else {
			allIn = false
		}
	}
	mid := r.mid()
	midIn := contains(mid)
	if midIn {
		allOut = false
	} else {
		allIn = false
	}
	switch {
	case allIn:
		return fullIn
	case allOut:
		return fullOut
	default:
		return partial
	}
}

// rasterizeByContains recursively descends the 12 base pixels down to
// depth dMax, classifying each visited cell against contains and only
// splitting cells classified as partial.
func rasterizeByContains(dMax uint8, contains func(LonLat) bool) BMOC {
	var cells []BCell
	var descend func(bp uint64, d uint8, ix, iy uint64, r rect)
	descend = func(bp uint64, d uint8, ix, iy uint64, r rect) {
		status := classify(r, contains)
		idx := cellIndex(bp, d, ix, iy)
		switch {
		case status == fullIn:
			cells = append(cells, BCell{Depth: d, Idx: idx, In: true, Visited: true})
		case status == fullOut:
			cells = append(cells, BCell{Depth: d, Idx: idx, In: false, Visited: true})
		case d == dMax:
			cells = append(cells, BCell{Depth: d, Idx: idx, In: contains(r.mid()), Visited: true})
		default:
			for sub := uint64(0); sub < 4; sub++ {
				bx, by := sub&1, (sub>>1)&1
				descend(bp, d+1, 2*ix+bx, 2*iy+by, r.child(bx, by))
			}
		}
	}
	for bp := uint64(0); bp < 12; bp++ {
		lonMin, lonMax, zMin, zMax := baseRect(bp)
		descend(bp, 0, 0, 0, rect{lonMin, lonMax, zMin, zMax})
	}
	return BMOC{Cells: cells}
}

func (Reference) Cone(d uint8, center LonLat, radius float64) BMOC {
	return rasterizeByContains(d, func(p LonLat) bool { return AngularDistance(p, center) <= radius })
}

func (Reference) Ring(d uint8, center LonLat, innerRadius, outerRadius float64) BMOC {
	return rasterizeByContains(d, func(p LonLat) bool {
		dist := AngularDistance(p, center)
		return dist > innerRadius && dist <= outerRadius
	})
}

func (Reference) Ellipse(d uint8, center LonLat, a, b, positionAngle float64) BMOC {
	return rasterizeByContains(d, func(p LonLat) bool {
		dx, dy := tangentPlane(center, p)
		ca, sa := math.Cos(positionAngle), math.Sin(positionAngle)
		u := dx*ca + dy*sa
		v := -dx*sa + dy*ca
		return (u*u)/(a*a)+(v*v)/(b*b) <= 1
	})
}

func (Reference) Box(d uint8, center LonLat, halfWidth, halfHeight, positionAngle float64) BMOC {
	return rasterizeByContains(d, func(p LonLat) bool {
		dx, dy := tangentPlane(center, p)
		ca, sa := math.Cos(positionAngle), math.Sin(positionAngle)
		u := dx*ca + dy*sa
		v := -dx*sa + dy*ca
		return math.Abs(u) <= halfWidth && math.Abs(v) <= halfHeight
	})
}

func (Reference) Zone(d uint8, lonMin, lonMax, latMin, latMax float64) BMOC {
	return rasterizeByContains(d, func(p LonLat) bool {
		return lonMin <= p.Lon && p.Lon <= lonMax && latMin <= p.Lat && p.Lat <= latMax
	})
}

// Polygon tests point-in-polygon via the standard planar crossing-number
// algorithm applied directly to (lon, lat), an approximation adequate for
// polygons that do not wrap the poles or the lon=0 meridian (spec.md §9's
// "smallest-area interpretation" for self-intersecting input is
// approximated by the crossing-number rule's natural even-odd behavior).
func (Reference) Polygon(d uint8, vertices []LonLat, complement bool) BMOC {
	inside := func(p LonLat) bool {
		in := pointInPolygon(p, vertices)
		if complement {
			return !in
		}
		return in
	}
	return rasterizeByContains(d, inside)
}

func pointInPolygon(p LonLat, poly []LonLat) bool {
	if len(poly) < 3 {
		return false
	}
	inside := false
	n := len(poly)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		vi, vj := poly[i], poly[j]
		if (vi.Lat > p.Lat) != (vj.Lat > p.Lat) {
			lonAtCross := vi.Lon + (p.Lat-vi.Lat)/(vj.Lat-vi.Lat)*(vj.Lon-vi.Lon)
			if p.Lon < lonAtCross {
				inside = !inside
			}
		}
	}
	return inside
}

// tangentPlane returns an approximate local gnomonic-ish offset (dLon *
// cos(lat), dLat) of p relative to center, used by Box/Ellipse.
func tangentPlane(center, p LonLat) (dx, dy float64) {
	dx = (p.Lon - center.Lon) * math.Cos(center.Lat)
	dy = p.Lat - center.Lat
	return
}

func (Reference) PositionToNested(d uint8, pos LonLat) uint64 {
	lon := math.Mod(pos.Lon, 2*math.Pi)
	if lon < 0 {
		lon += 2 * math.Pi
	}
	z := math.Sin(pos.Lat)
	lonQuad := uint64(lon / halfPi)
	if lonQuad > 3 {
		lonQuad = 3
	}
	var zBand uint64
	switch {
	case z > 1.0/3.0:
		zBand = 0
	case z < -1.0/3.0:
		zBand = 2
	default:
		zBand = 1
	}
	bp := zBand*4 + lonQuad
	lonMin, _, zMin, zMax := baseRect(bp)
	n := uint64(1) << d
	localLon := lon - lonMin
	ix := uint64(localLon / (halfPi / float64(n)))
	iy := uint64((z - zMin) / ((zMax - zMin) / float64(n)))
	if ix >= n {
		ix = n - 1
	}
	if iy >= n {
		iy = n - 1
	}
	return cellIndex(bp, d, ix, iy)
}

func (Reference) Neighbours4(d uint8, i uint64) []qty.Cell {
	bp, ix, iy := indexToLocal(d, i)
	n := uint64(1) << d
	var out []qty.Cell
	add := func(nbp, nix, niy uint64, ok bool) {
		if ok {
			out = append(out, qty.Cell{Depth: d, Idx: cellIndex(nbp, d, nix, niy)})
		}
	}
	add(bp, ix, iy-1, iy > 0)
	add(bp, ix, iy+1, iy+1 < n)
	add(bp, ix-1, iy, ix > 0)
	add(bp, ix+1, iy, ix+1 < n)
	return out
}

func (Reference) Neighbours8(d uint8, i uint64) []qty.Cell {
	bp, ix, iy := indexToLocal(d, i)
	n := uint64(1) << d
	out := Reference{}.Neighbours4(d, i)
	add := func(nix, niy uint64, ok bool) {
		if ok {
			out = append(out, qty.Cell{Depth: d, Idx: cellIndex(bp, d, nix, niy)})
		}
	}
	add(ix-1, iy-1, ix > 0 && iy > 0)
	add(ix+1, iy-1, ix+1 < n && iy > 0)
	add(ix-1, iy+1, ix > 0 && iy+1 < n)
	add(ix+1, iy+1, ix+1 < n && iy+1 < n)
	return out
}
