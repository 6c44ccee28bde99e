// Package entity supplies a representative set of concrete EntityKind
// behaviours (item, falling block, TNT, generic living/mob) consumed by
// server/world's SpawnEntity/NaturalSpawnFactory seams. Grounded on the
// teacher's server/entity/movement.go MovementComputer, generalized from
// dragonfly's tx/cube.BBox swept collision down to the single-point
// ground/ceiling test this core's BBox type supports — full shape-aware
// collision belongs to the host's richer block model, out of spec.md's scope.
package entity

import (
	"github.com/beta173/corestone/server/world"
	"github.com/go-gl/mathgl/mgl64"
)

// MovementComputer integrates gravity and drag on an entity's velocity and
// resolves vertical collision against the block directly below/above its
// feet, the same Gravity/Drag vocabulary as the teacher's
// MovementComputer but trimmed to what a headless core can evaluate without
// a per-block collision shape model.
type MovementComputer struct {
	Gravity, Drag float64

	onGround bool
}

// TickMovement advances pos/vel by one tick and returns the new values plus
// whether the entity is now on the ground.
func (c *MovementComputer) TickMovement(w *world.World, pos, vel mgl64.Vec3) (newPos, newVel mgl64.Vec3, onGround bool) {
	vel = c.applyVerticalForces(vel)
	vel = c.applyHorizontalDrag(vel)

	next := pos.Add(vel)
	feetBelow := world.BlockPos{X: int(floor(next.X())), Y: int(floor(next.Y() - 0.01)), Z: int(floor(next.Z()))}

	if vel.Y() <= 0 && c.solidAt(w, feetBelow) {
		next[1] = float64(feetBelow.Y + 1)
		vel[1] = 0
		c.onGround = true
	} else {
		headAbove := world.BlockPos{X: int(floor(next.X())), Y: int(floor(next.Y() + 1.8)), Z: int(floor(next.Z()))}
		if vel.Y() > 0 && c.solidAt(w, headAbove) {
			next[1] = float64(headAbove.Y)
			vel[1] = 0
		}
		c.onGround = false
	}

	return next, vel, c.onGround
}

// OnGround reports the ground state computed by the last TickMovement call.
func (c *MovementComputer) OnGround() bool { return c.onGround }

func (c *MovementComputer) applyVerticalForces(vel mgl64.Vec3) mgl64.Vec3 {
	vel[1] -= c.Gravity
	vel[1] *= 1 - c.Drag
	return vel
}

func (c *MovementComputer) applyHorizontalDrag(vel mgl64.Vec3) mgl64.Vec3 {
	friction := 1 - c.Drag
	vel[0] *= friction
	vel[2] *= friction
	return vel
}

func (c *MovementComputer) solidAt(w *world.World, pos world.BlockPos) bool {
	id, _ := w.GetBlock(pos)
	return id != 0
}

func floor(v float64) float64 {
	i := int64(v)
	if v < 0 && float64(i) != v {
		i--
	}
	return float64(i)
}
