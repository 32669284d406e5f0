// Package geofence decides whether a GPS fix lies inside a post boundary.
// Everything here is pure; callers carry the previous State between fixes
// to get hysteresis.
package geofence

import (
	"fmt"
	"math"

	apperrors "guard-deployment-backend/internal/errors"
)

const earthRadiusMeters = 6371000.0

// State is the last known membership of a tracked point
type State string

const (
	StateUnknown State = ""
	StateInside  State = "INSIDE"
	StateOutside State = "OUTSIDE"
)

// StateOf converts a membership decision to a State
func StateOf(inside bool) State {
	if inside {
		return StateInside
	}
	return StateOutside
}

// Point is a WGS84 coordinate in degrees
type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Validate rejects coordinates outside -90..90 / -180..180
func (p Point) Validate() error {
	if math.IsNaN(p.Lat) || math.IsNaN(p.Lon) ||
		p.Lat < -90 || p.Lat > 90 || p.Lon < -180 || p.Lon > 180 {
		return fmt.Errorf("%w: (%v, %v)", apperrors.ErrInvalidCoordinates, p.Lat, p.Lon)
	}
	return nil
}

// Shape of a boundary
type Shape int

const (
	ShapeCircle Shape = iota
	ShapePolygon
)

// Boundary is either a circle (Center, RadiusMeters) or a polygon ring (Vertices)
type Boundary struct {
	Shape        Shape
	Center       Point
	RadiusMeters float64
	Vertices     []Point
}

// Circle builds a circular boundary
func Circle(center Point, radiusMeters float64) Boundary {
	return Boundary{Shape: ShapeCircle, Center: center, RadiusMeters: radiusMeters}
}

// Polygon builds a polygon boundary; the ring closes implicitly
func Polygon(vertices ...Point) Boundary {
	return Boundary{Shape: ShapePolygon, Vertices: vertices}
}

// Validate checks the boundary is usable
func (b Boundary) Validate() error {
	switch b.Shape {
	case ShapeCircle:
		if err := b.Center.Validate(); err != nil {
			return err
		}
		if math.IsNaN(b.RadiusMeters) || b.RadiusMeters < 0 {
			return fmt.Errorf("%w: radius %v", apperrors.ErrInvalidBoundary, b.RadiusMeters)
		}
	case ShapePolygon:
		if len(b.Vertices) < 3 {
			return fmt.Errorf("%w: polygon needs at least 3 vertices", apperrors.ErrInvalidBoundary)
		}
		for _, v := range b.Vertices {
			if err := v.Validate(); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("%w: unknown shape %d", apperrors.ErrInvalidBoundary, b.Shape)
	}
	return nil
}

// Centroid is the circle centre or the vertex average of a polygon
func (b Boundary) Centroid() Point {
	if b.Shape == ShapeCircle || len(b.Vertices) == 0 {
		return b.Center
	}
	var lat, lon float64
	for _, v := range b.Vertices {
		lat += v.Lat
		lon += v.Lon
	}
	n := float64(len(b.Vertices))
	return Point{Lat: lat / n, Lon: lon / n}
}

// HaversineMeters is the great-circle distance between two points
func HaversineMeters(a, b Point) float64 {
	dLat := degreesToRadians(b.Lat - a.Lat)
	dLon := degreesToRadians(b.Lon - a.Lon)

	lat1R := degreesToRadians(a.Lat)
	lat2R := degreesToRadians(b.Lat)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1R)*math.Cos(lat2R)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return earthRadiusMeters * c
}

// IsInside decides membership of p in b.
//
// A point that was inside stays inside until it passes radius+hysteresis
// (circle) or moves more than hysteresis metres beyond the nearest edge
// (polygon). A point that was outside or unknown enters only at the
// boundary proper.
func IsInside(p Point, b Boundary, previous State, hysteresisMeters float64) (bool, error) {
	if err := p.Validate(); err != nil {
		return false, err
	}
	if err := b.Validate(); err != nil {
		return false, err
	}
	if math.IsNaN(hysteresisMeters) || hysteresisMeters < 0 {
		hysteresisMeters = 0
	}

	switch b.Shape {
	case ShapeCircle:
		threshold := b.RadiusMeters
		if previous == StateInside {
			threshold += hysteresisMeters
		}
		return HaversineMeters(p, b.Center) <= threshold, nil
	default:
		if pointInPolygon(p, b.Vertices) {
			return true, nil
		}
		if previous == StateInside && hysteresisMeters > 0 {
			return distanceToRingMeters(p, b.Vertices) <= hysteresisMeters, nil
		}
		return false, nil
	}
}

// Distance reports metres from p to the centre of a circle, or to the
// nearest edge of a polygon (zero when inside it)
func Distance(p Point, b Boundary) (float64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	if err := b.Validate(); err != nil {
		return 0, err
	}
	if b.Shape == ShapeCircle {
		return HaversineMeters(p, b.Center), nil
	}
	if pointInPolygon(p, b.Vertices) {
		return 0, nil
	}
	return distanceToRingMeters(p, b.Vertices), nil
}

// pointInPolygon is the even-odd ray casting test in lon/lat space
func pointInPolygon(p Point, ring []Point) bool {
	inside := false
	j := len(ring) - 1
	for i := 0; i < len(ring); i++ {
		vi, vj := ring[i], ring[j]
		if (vi.Lat > p.Lat) != (vj.Lat > p.Lat) {
			crossLon := (vj.Lon-vi.Lon)*(p.Lat-vi.Lat)/(vj.Lat-vi.Lat) + vi.Lon
			if p.Lon < crossLon {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}

// distanceToRingMeters projects the ring onto a local equirectangular plane
// centred on p. Post geofences are at most a few kilometres across, where
// the projection error is far below GPS noise.
func distanceToRingMeters(p Point, ring []Point) float64 {
	cosLat := math.Cos(degreesToRadians(p.Lat))
	project := func(q Point) (float64, float64) {
		x := degreesToRadians(q.Lon-p.Lon) * cosLat * earthRadiusMeters
		y := degreesToRadians(q.Lat-p.Lat) * earthRadiusMeters
		return x, y
	}

	best := math.Inf(1)
	j := len(ring) - 1
	for i := 0; i < len(ring); i++ {
		ax, ay := project(ring[j])
		bx, by := project(ring[i])
		if d := distanceToSegment(ax, ay, bx, by); d < best {
			best = d
		}
		j = i
	}
	return best
}

// distanceToSegment is the distance from the origin to segment AB
func distanceToSegment(ax, ay, bx, by float64) float64 {
	dx, dy := bx-ax, by-ay
	lenSq := dx*dx + dy*dy
	t := 0.0
	if lenSq > 0 {
		t = -(ax*dx + ay*dy) / lenSq
		t = math.Max(0, math.Min(1, t))
	}
	cx, cy := ax+t*dx, ay+t*dy
	return math.Hypot(cx, cy)
}

func degreesToRadians(d float64) float64 {
	return d * math.Pi / 180
}
