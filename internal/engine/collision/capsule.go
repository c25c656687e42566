// Package collision provides the static collision world and capsule
// queries for the precise movement strategy.
package collision

import (
	"github.com/Faultbox/showroom/pkg/math"
)

// Capsule is a vertical line segment plus radius, approximating a
// standing character. A is the bottom end, B the top end of the segment
// (sphere centers, not the outer extents).
type Capsule struct {
	A      math.Vec3
	B      math.Vec3
	Radius float32
}

// NewCapsule builds a capsule for an agent standing at feet position
// with the given total height and radius.
func NewCapsule(feet math.Vec3, height, radius float32) Capsule {
	if height < 2*radius {
		height = 2 * radius
	}
	return Capsule{
		A:      math.Vec3{X: feet.X, Y: feet.Y + radius, Z: feet.Z},
		B:      math.Vec3{X: feet.X, Y: feet.Y + height - radius, Z: feet.Z},
		Radius: radius,
	}
}

// Translate returns the capsule moved by delta.
func (c Capsule) Translate(delta math.Vec3) Capsule {
	return Capsule{A: c.A.Add(delta), B: c.B.Add(delta), Radius: c.Radius}
}

// Feet returns the bottom point of the capsule volume.
func (c Capsule) Feet() math.Vec3 {
	return math.Vec3{X: c.A.X, Y: c.A.Y - c.Radius, Z: c.A.Z}
}

// closestPtPointTriangle returns the point on triangle abc closest to p.
func closestPtPointTriangle(p, a, b, c math.Vec3) math.Vec3 {
	ab := b.Sub(a)
	ac := c.Sub(a)
	ap := p.Sub(a)

	// Vertex region A
	d1 := ab.Dot(ap)
	d2 := ac.Dot(ap)
	if d1 <= 0 && d2 <= 0 {
		return a
	}

	// Vertex region B
	bp := p.Sub(b)
	d3 := ab.Dot(bp)
	d4 := ac.Dot(bp)
	if d3 >= 0 && d4 <= d3 {
		return b
	}

	// Edge region AB
	vc := d1*d4 - d3*d2
	if vc <= 0 && d1 >= 0 && d3 <= 0 {
		v := d1 / (d1 - d3)
		return a.Add(ab.Scale(v))
	}

	// Vertex region C
	cp := p.Sub(c)
	d5 := ab.Dot(cp)
	d6 := ac.Dot(cp)
	if d6 >= 0 && d5 <= d6 {
		return c
	}

	// Edge region AC
	vb := d5*d2 - d1*d6
	if vb <= 0 && d2 >= 0 && d6 <= 0 {
		w := d2 / (d2 - d6)
		return a.Add(ac.Scale(w))
	}

	// Edge region BC
	va := d3*d6 - d5*d4
	if va <= 0 && (d4-d3) >= 0 && (d5-d6) >= 0 {
		w := (d4 - d3) / ((d4 - d3) + (d5 - d6))
		return b.Add(c.Sub(b).Scale(w))
	}

	// Interior
	denom := 1 / (va + vb + vc)
	v := vb * denom
	w := vc * denom
	return a.Add(ab.Scale(v)).Add(ac.Scale(w))
}

// closestPtSegmentSegment returns the closest points between segments
// p1q1 and p2q2.
func closestPtSegmentSegment(p1, q1, p2, q2 math.Vec3) (c1, c2 math.Vec3) {
	d1 := q1.Sub(p1)
	d2 := q2.Sub(p2)
	r := p1.Sub(p2)
	a := d1.Dot(d1)
	e := d2.Dot(d2)
	f := d2.Dot(r)

	var s, t float32

	const eps = 1e-8
	if a <= eps && e <= eps {
		return p1, p2
	}
	if a <= eps {
		s = 0
		t = math.Clamp(f/e, 0, 1)
	} else {
		c := d1.Dot(r)
		if e <= eps {
			t = 0
			s = math.Clamp(-c/a, 0, 1)
		} else {
			b := d1.Dot(d2)
			denom := a*e - b*b
			if denom > eps {
				s = math.Clamp((b*f-c*e)/denom, 0, 1)
			} else {
				s = 0
			}
			t = (b*s + f) / e
			if t < 0 {
				t = 0
				s = math.Clamp(-c/a, 0, 1)
			} else if t > 1 {
				t = 1
				s = math.Clamp((b-c)/a, 0, 1)
			}
		}
	}

	return p1.Add(d1.Scale(s)), p2.Add(d2.Scale(t))
}

// closestPtSegmentTriangle returns the closest points between segment pq
// and triangle abc.
func closestPtSegmentTriangle(p, q, a, b, c math.Vec3) (onSeg, onTri math.Vec3) {
	// Candidate pairs: each segment endpoint against the triangle, and
	// the segment against each triangle edge.
	bestSeg := p
	bestTri := closestPtPointTriangle(p, a, b, c)
	bestDist := bestSeg.Sub(bestTri).Dot(bestSeg.Sub(bestTri))

	consider := func(s, tr math.Vec3) {
		d := s.Sub(tr).Dot(s.Sub(tr))
		if d < bestDist {
			bestDist = d
			bestSeg = s
			bestTri = tr
		}
	}

	tq := closestPtPointTriangle(q, a, b, c)
	consider(q, tq)

	s1, t1 := closestPtSegmentSegment(p, q, a, b)
	consider(s1, t1)
	s2, t2 := closestPtSegmentSegment(p, q, b, c)
	consider(s2, t2)
	s3, t3 := closestPtSegmentSegment(p, q, c, a)
	consider(s3, t3)

	return bestSeg, bestTri
}
