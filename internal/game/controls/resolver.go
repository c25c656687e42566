package controls

import (
	"github.com/Faultbox/showroom/internal/engine/collision"
	"github.com/Faultbox/showroom/internal/game/entity"
	"github.com/Faultbox/showroom/pkg/math"
)

// Resolver corrects the agent position after integration. The two
// implementations are the precise capsule-vs-mesh strategy and the
// simplified bounds-and-obstacles strategy; the environment picks one
// at build time.
type Resolver interface {
	Resolve(a *entity.Agent)
}

// MeshResolver is the precise strategy: the agent is a vertical capsule
// pushed out of a static triangle-mesh world by the deepest contact.
type MeshResolver struct {
	World  *collision.World
	Height float32
}

// NewMeshResolver wraps a built collision world. A nil world disables
// collision entirely (free movement).
func NewMeshResolver(world *collision.World, height float32) *MeshResolver {
	return &MeshResolver{World: world, Height: height}
}

// Resolve pushes the agent capsule out of penetration along the contact
// normal. Only the penetrating component is corrected, so tangential
// motion survives and the agent slides along walls.
func (r *MeshResolver) Resolve(a *entity.Agent) {
	if r.World == nil {
		return
	}

	c := collision.NewCapsule(a.Position, r.Height, a.Radius)
	contact, ok := r.World.DeepestContact(c)
	if !ok {
		return
	}

	c = c.Translate(contact.Normal.Scale(contact.Depth))
	// Re-sync the planar position from the corrected capsule; the agent
	// height stays fixed.
	a.SetPlanar(c.Feet().XZ())
}

// Rect is an axis-aligned rectangular bound on the ground plane.
type Rect struct {
	MinX, MinZ float32
	MaxX, MaxZ float32
}

// Circle is a circular bound or obstacle on the ground plane.
type Circle struct {
	Center math.Vec2
	Radius float32
}

// BoundsResolver is the simplified strategy: clamp to a rectangular or
// circular bound, then push out of circular obstacles. All fields are
// set once by the environment and read-only afterwards.
type BoundsResolver struct {
	Rect      *Rect   // Rectangular bound, or nil
	Circle    *Circle // Circular bound, used when Rect is nil
	Obstacles []Circle
}

// Resolve clamps the agent inside the bound and outside every obstacle.
// Obstacles are evaluated independently in list order with no iterative
// relaxation: with deeply overlapping obstacles the last push wins, so
// environments must not place conflicting overlaps.
func (r *BoundsResolver) Resolve(a *entity.Agent) {
	p := a.Planar()

	if r.Rect != nil {
		p.X = math.Clamp(p.X, r.Rect.MinX+a.Radius, r.Rect.MaxX-a.Radius)
		p.Z = math.Clamp(p.Z, r.Rect.MinZ+a.Radius, r.Rect.MaxZ-a.Radius)
	} else if r.Circle != nil {
		limit := r.Circle.Radius - a.Radius
		offset := p.Sub(r.Circle.Center)
		if d := offset.Length(); d > limit {
			p = r.Circle.Center.Add(offset.Scale(limit / d))
		}
	}

	for _, obs := range r.Obstacles {
		minDist := obs.Radius + a.Radius
		offset := p.Sub(obs.Center)
		d := offset.Length()
		if d >= minDist {
			continue
		}
		if d == 0 {
			// Agent exactly on the obstacle center: push along +X.
			offset = math.Vec2{X: 1}
			d = 1
		}
		p = obs.Center.Add(offset.Scale(minDist / d))
	}

	a.SetPlanar(p)
}

// NullResolver performs no correction: free movement when the
// environment configures neither strategy.
type NullResolver struct{}

// Resolve is a no-op.
func (NullResolver) Resolve(a *entity.Agent) {}
