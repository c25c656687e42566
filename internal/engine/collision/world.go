package collision

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/showroom/pkg/math"
)

// Triangle is one face of the static collision geometry.
type Triangle struct {
	A, B, C math.Vec3
}

// Normal returns the (unnormalized-safe) unit normal of the triangle,
// or the zero vector for a degenerate face.
func (t Triangle) Normal() math.Vec3 {
	return t.B.Sub(t.A).Cross(t.C.Sub(t.A)).Normalize()
}

// Contact is the result of an overlap query: the direction to push the
// capsule and how far.
type Contact struct {
	Normal math.Vec3
	Depth  float32
}

// World is the static collision world: a triangle soup built once from
// the solid scene geometry, indexed by a uniform grid on the ground
// plane. Immutable after construction.
type World struct {
	triangles []Triangle
	cellSize  float32
	cells     map[cellKey][]int32
}

type cellKey struct {
	X, Z int32
}

// DefaultCellSize is the broad-phase grid resolution in world units.
const DefaultCellSize = 2.0

// BuildWorld indexes a snapshot of solid geometry. The triangle slice is
// copied; the caller may discard it. cellSize <= 0 selects the default.
func BuildWorld(triangles []Triangle, cellSize float32) *World {
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}
	w := &World{
		triangles: append([]Triangle(nil), triangles...),
		cellSize:  cellSize,
		cells:     make(map[cellKey][]int32, len(triangles)),
	}

	for i, tri := range w.triangles {
		minX := math32.Min(tri.A.X, math32.Min(tri.B.X, tri.C.X))
		maxX := math32.Max(tri.A.X, math32.Max(tri.B.X, tri.C.X))
		minZ := math32.Min(tri.A.Z, math32.Min(tri.B.Z, tri.C.Z))
		maxZ := math32.Max(tri.A.Z, math32.Max(tri.B.Z, tri.C.Z))

		lo := w.cellOf(minX, minZ)
		hi := w.cellOf(maxX, maxZ)
		for cx := lo.X; cx <= hi.X; cx++ {
			for cz := lo.Z; cz <= hi.Z; cz++ {
				key := cellKey{X: cx, Z: cz}
				w.cells[key] = append(w.cells[key], int32(i))
			}
		}
	}

	return w
}

// TriangleCount returns the number of indexed faces.
func (w *World) TriangleCount() int {
	return len(w.triangles)
}

func (w *World) cellOf(x, z float32) cellKey {
	return cellKey{
		X: int32(math32.Floor(x / w.cellSize)),
		Z: int32(math32.Floor(z / w.cellSize)),
	}
}

// DeepestContact finds the deepest overlap between the capsule and the
// world geometry. Returns false when the capsule is clear.
func (w *World) DeepestContact(c Capsule) (Contact, bool) {
	minCell := w.cellOf(c.A.X-c.Radius, c.A.Z-c.Radius)
	maxCell := w.cellOf(c.A.X+c.Radius, c.A.Z+c.Radius)

	var best Contact
	found := false
	seen := make(map[int32]struct{}, 16)

	for cx := minCell.X; cx <= maxCell.X; cx++ {
		for cz := minCell.Z; cz <= maxCell.Z; cz++ {
			for _, idx := range w.cells[cellKey{X: cx, Z: cz}] {
				if _, ok := seen[idx]; ok {
					continue
				}
				seen[idx] = struct{}{}

				if contact, ok := w.capsuleTriangle(c, w.triangles[idx]); ok {
					if !found || contact.Depth > best.Depth {
						best = contact
						found = true
					}
				}
			}
		}
	}

	return best, found
}

// capsuleTriangle tests one capsule/triangle pair.
func (w *World) capsuleTriangle(c Capsule, tri Triangle) (Contact, bool) {
	onSeg, onTri := closestPtSegmentTriangle(c.A, c.B, tri.A, tri.B, tri.C)
	diff := onSeg.Sub(onTri)
	dist := diff.Length()

	if dist >= c.Radius {
		return Contact{}, false
	}

	if dist > 1e-5 {
		return Contact{
			Normal: diff.Scale(1 / dist),
			Depth:  c.Radius - dist,
		}, true
	}

	// The segment touches (or pierces) the face. Fall back to the face
	// normal, oriented toward the capsule, with a full-radius push.
	n := tri.Normal()
	if n.Dot(c.A.Sub(tri.A)) < 0 {
		n = n.Scale(-1)
	}
	return Contact{Normal: n, Depth: c.Radius}, true
}
