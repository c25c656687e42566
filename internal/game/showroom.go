package game

import (
	"github.com/Faultbox/showroom/internal/config"
	"github.com/Faultbox/showroom/internal/engine/collision"
	"github.com/Faultbox/showroom/internal/game/controls"
	"github.com/Faultbox/showroom/internal/game/entity"
	"github.com/Faultbox/showroom/pkg/math"
)

// The demo gallery: a 20x20 walled room with two pillars and three
// exhibits. Real deployments swap this for scene geometry; the demo
// hardcodes a floor plan so the driver runs standalone.
const (
	roomHalf   = 10.0
	wallHeight = 3.0
	pillarHalf = 0.5
)

var pillarCenters = []math.Vec2{
	{X: -4, Z: 4},
	{X: 4, Z: 4},
}

// quad builds the two triangles of a rectangular face. Corners are
// given in winding order.
func quad(a, b, c, d math.Vec3) []collision.Triangle {
	return []collision.Triangle{
		{A: a, B: b, C: c},
		{A: a, B: c, C: d},
	}
}

// box builds the four side faces of an axis-aligned box on the ground
// plane. Top and bottom faces are omitted: the capsule never approaches
// them without vertical movement.
func box(minX, minZ, maxX, maxZ, height float32) []collision.Triangle {
	var tris []collision.Triangle
	tris = append(tris, quad(
		math.Vec3{X: minX, Y: 0, Z: minZ}, math.Vec3{X: maxX, Y: 0, Z: minZ},
		math.Vec3{X: maxX, Y: height, Z: minZ}, math.Vec3{X: minX, Y: height, Z: minZ})...)
	tris = append(tris, quad(
		math.Vec3{X: minX, Y: 0, Z: maxZ}, math.Vec3{X: maxX, Y: 0, Z: maxZ},
		math.Vec3{X: maxX, Y: height, Z: maxZ}, math.Vec3{X: minX, Y: height, Z: maxZ})...)
	tris = append(tris, quad(
		math.Vec3{X: minX, Y: 0, Z: minZ}, math.Vec3{X: minX, Y: 0, Z: maxZ},
		math.Vec3{X: minX, Y: height, Z: maxZ}, math.Vec3{X: minX, Y: height, Z: minZ})...)
	tris = append(tris, quad(
		math.Vec3{X: maxX, Y: 0, Z: minZ}, math.Vec3{X: maxX, Y: 0, Z: maxZ},
		math.Vec3{X: maxX, Y: height, Z: maxZ}, math.Vec3{X: maxX, Y: height, Z: minZ})...)
	return tris
}

// galleryMesh builds the triangle soup for the precise strategy: the
// four room walls plus the pillar boxes.
func galleryMesh() []collision.Triangle {
	tris := box(-roomHalf, -roomHalf, roomHalf, roomHalf, wallHeight)
	for _, c := range pillarCenters {
		tris = append(tris, box(
			c.X-pillarHalf, c.Z-pillarHalf,
			c.X+pillarHalf, c.Z+pillarHalf,
			wallHeight)...)
	}
	return tris
}

// galleryBounds builds the simplified representation of the same floor
// plan: a rect bound and circle obstacles circumscribing the pillars.
func galleryBounds() *controls.BoundsResolver {
	r := &controls.BoundsResolver{
		Rect: &controls.Rect{
			MinX: -roomHalf, MinZ: -roomHalf,
			MaxX: roomHalf, MaxZ: roomHalf,
		},
	}
	for _, c := range pillarCenters {
		r.Obstacles = append(r.Obstacles, controls.Circle{
			Center: c,
			Radius: pillarHalf * 1.4143, // circumscribed
		})
	}
	return r
}

// galleryCandidates places the demo exhibits along the far wall.
func galleryCandidates() []*entity.Candidate {
	return []*entity.Candidate{
		{
			Position:    math.Vec3{X: -6, Z: 9.5},
			Interactive: true,
			Title:       "Horizon Study",
			URL:         "https://example.com/exhibits/horizon-study",
			Kind:        "painting",
		},
		{
			Position:    math.Vec3{X: 0, Z: 9.5},
			Interactive: true,
			Title:       "Showroom Welcome",
			URL:         "https://example.com/exhibits/welcome",
			Kind:        "video",
		},
		{
			Position:    math.Vec3{X: 6, Z: 9.5},
			Interactive: true,
			Title:       "Bronze Figure",
			URL:         "https://example.com/exhibits/bronze-figure",
			Kind:        "model",
		},
		// Decorative plant: placed but never selectable.
		{
			Position: math.Vec3{X: -9, Z: -9},
			Title:    "Plant",
			Kind:     "decoration",
		},
	}
}

// buildResolver picks the collision strategy for the demo: the walled
// first-person gallery uses the capsule-vs-mesh strategy, the isometric
// view the planar bounds. Both describe the same floor plan.
func buildResolver(mode string, ctl config.ControlsConfig) controls.Resolver {
	if mode == "isometric" {
		return galleryBounds()
	}
	world := collision.BuildWorld(galleryMesh(), 0)
	return controls.NewMeshResolver(world, ctl.AgentHeight)
}
