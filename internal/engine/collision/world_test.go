package collision

import (
	"testing"

	"github.com/Faultbox/showroom/pkg/math"
)

// wall builds a vertical quad in the XY plane at the given Z, spanning
// [-w,w] in X and [0,h] in Y.
func wall(z, w, h float32) []Triangle {
	a := math.Vec3{X: -w, Y: 0, Z: z}
	b := math.Vec3{X: w, Y: 0, Z: z}
	c := math.Vec3{X: w, Y: h, Z: z}
	d := math.Vec3{X: -w, Y: h, Z: z}
	return []Triangle{
		{A: a, B: b, C: c},
		{A: a, B: c, C: d},
	}
}

func TestDeepestContactClear(t *testing.T) {
	w := BuildWorld(wall(5, 10, 3), 0)

	c := NewCapsule(math.Vec3{X: 0, Y: 0, Z: 0}, 1.7, 0.3)
	if _, ok := w.DeepestContact(c); ok {
		t.Error("expected no contact far from wall")
	}
}

func TestDeepestContactPenetrating(t *testing.T) {
	w := BuildWorld(wall(5, 10, 3), 0)

	// Standing 0.1 units from the wall with radius 0.3: penetrating 0.2.
	c := NewCapsule(math.Vec3{X: 0, Y: 0, Z: 4.9}, 1.7, 0.3)
	contact, ok := w.DeepestContact(c)
	if !ok {
		t.Fatal("expected contact against wall")
	}

	// Normal must point back toward the agent (negative Z).
	if contact.Normal.Z >= 0 {
		t.Errorf("contact normal %v should point away from wall", contact.Normal)
	}
	if contact.Depth < 0.19 || contact.Depth > 0.21 {
		t.Errorf("penetration depth = %v, want ~0.2", contact.Depth)
	}

	// Pushing out by normal*depth clears the contact.
	resolved := c.Translate(contact.Normal.Scale(contact.Depth))
	if c2, ok := w.DeepestContact(resolved); ok && c2.Depth > 1e-3 {
		t.Errorf("still penetrating %v after push-out", c2.Depth)
	}
}

func TestDeepestContactPicksDeepest(t *testing.T) {
	// Two parallel walls; the capsule overlaps both but is deeper into
	// the near one.
	tris := append(wall(1.0, 10, 3), wall(1.4, 10, 3)...)
	w := BuildWorld(tris, 0)

	c := NewCapsule(math.Vec3{X: 0, Y: 0, Z: 0.95}, 1.7, 0.5)
	contact, ok := w.DeepestContact(c)
	if !ok {
		t.Fatal("expected contact")
	}

	// Penetration into z=1.0 wall is 0.45; into z=1.4 wall is 0.05.
	if contact.Depth < 0.44 || contact.Depth > 0.46 {
		t.Errorf("deepest depth = %v, want ~0.45", contact.Depth)
	}
}

func TestBuildWorldCopiesInput(t *testing.T) {
	tris := wall(5, 10, 3)
	w := BuildWorld(tris, 0)

	// Mutating the caller's slice must not affect the world.
	tris[0].A.Z = -100
	c := NewCapsule(math.Vec3{X: 0, Y: 0, Z: 4.9}, 1.7, 0.3)
	if _, ok := w.DeepestContact(c); !ok {
		t.Error("world geometry changed after caller mutation")
	}

	if w.TriangleCount() != 2 {
		t.Errorf("TriangleCount = %d, want 2", w.TriangleCount())
	}
}

func TestCapsuleMinHeight(t *testing.T) {
	// Height shorter than the diameter degenerates to a sphere-like
	// capsule rather than an inverted segment.
	c := NewCapsule(math.Vec3{}, 0.1, 0.3)
	if c.B.Y < c.A.Y {
		t.Errorf("capsule segment inverted: A.Y=%v B.Y=%v", c.A.Y, c.B.Y)
	}
}
