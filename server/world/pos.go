package world

import "github.com/go-gl/mathgl/mgl64"

// BlockPos is the position of a single block in the world. Y is bound to
// [0, WorldHeight).
type BlockPos struct {
	X, Y, Z int
}

// Add returns the position offset by another position.
func (p BlockPos) Add(o BlockPos) BlockPos {
	return BlockPos{p.X + o.X, p.Y + o.Y, p.Z + o.Z}
}

// Side returns the neighbouring position in the given direction.
func (p BlockPos) Side(d Direction) BlockPos {
	return p.Add(d.Offset())
}

// ChunkPos returns the chunk coordinate that owns this block position.
func (p BlockPos) ChunkPos() ChunkPos {
	return ChunkPos{p.X >> 4, p.Z >> 4}
}

// Direction enumerates the six block faces, used for neighbour notification
// and light propagation.
type Direction uint8

const (
	DirectionNegY Direction = iota
	DirectionPosY
	DirectionNegZ
	DirectionPosZ
	DirectionNegX
	DirectionPosX
)

// Directions lists all six directions in a stable, deterministic order. The
// order matches the teacher's cube.Face iteration convention (down, up,
// north, south, west, east).
var Directions = [6]Direction{DirectionNegY, DirectionPosY, DirectionNegZ, DirectionPosZ, DirectionNegX, DirectionPosX}

var directionOffsets = [6]BlockPos{
	{0, -1, 0},
	{0, 1, 0},
	{0, 0, -1},
	{0, 0, 1},
	{-1, 0, 0},
	{1, 0, 0},
}

// Offset returns the unit vector for the direction.
func (d Direction) Offset() BlockPos {
	return directionOffsets[d]
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case DirectionNegY:
		return DirectionPosY
	case DirectionPosY:
		return DirectionNegY
	case DirectionNegZ:
		return DirectionPosZ
	case DirectionPosZ:
		return DirectionNegZ
	case DirectionNegX:
		return DirectionPosX
	default:
		return DirectionNegX
	}
}

// ChunkPos is the (cx, cz) coordinate of a 16x16x128 chunk column.
type ChunkPos struct {
	X, Z int
}

// BBox is an axis-aligned bounding box used for entity collision queries,
// following the teacher's use of mgl64.Vec3 to represent both entity
// position and the corners of its bounding box (server/entity/movement.go).
type BBox struct {
	Min, Max mgl64.Vec3
}

// Intersects reports whether the two boxes overlap on all three axes.
func (b BBox) Intersects(o BBox) bool {
	return b.Min.X() < o.Max.X() && b.Max.X() > o.Min.X() &&
		b.Min.Y() < o.Max.Y() && b.Max.Y() > o.Min.Y() &&
		b.Min.Z() < o.Max.Z() && b.Max.Z() > o.Min.Z()
}

// ContainsBlock reports whether the block position lies within the box.
func (b BBox) ContainsBlock(p BlockPos) bool {
	return float64(p.X) >= b.Min.X() && float64(p.X) < b.Max.X() &&
		float64(p.Y) >= b.Min.Y() && float64(p.Y) < b.Max.Y() &&
		float64(p.Z) >= b.Min.Z() && float64(p.Z) < b.Max.Z()
}

// Translate returns the box moved by the given offset.
func (b BBox) Translate(v mgl64.Vec3) BBox {
	return BBox{Min: b.Min.Add(v), Max: b.Max.Add(v)}
}
