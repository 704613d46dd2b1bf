package core

import "github.com/lixenwraith/puzzle-snap/vmath"

// Entity identifies a piece within a puzzle
// Zero is reserved for "no entity"
type Entity uint64

// Pose is a world-space position and orientation
type Pose struct {
	Position vmath.Vec3F
	Rotation vmath.Quat
}

// NewPose builds a pose from a position and a yaw angle in degrees
func NewPose(pos vmath.Vec3F, yawDeg float64) Pose {
	return Pose{Position: pos, Rotation: vmath.QuatFromYaw(yawDeg)}
}
