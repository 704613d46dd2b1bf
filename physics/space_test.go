package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/puzzle-snap/core"
	"github.com/lixenwraith/puzzle-snap/vmath"
)

func box(x, y, z float64) BoundsFunc {
	return func() vmath.AABB {
		return vmath.AABB{
			Center: vmath.Vec3F{X: x, Y: y, Z: z},
			Half:   vmath.Vec3F{X: 0.45, Y: 0.1, Z: 0.45},
		}
	}
}

func down(x, z float64) vmath.Ray {
	return vmath.Ray{Origin: vmath.Vec3F{X: x, Y: 10, Z: z}, Dir: vmath.Vec3F{Y: -1}}
}

func TestRaycastNearest(t *testing.T) {
	s := NewSpace()
	s.Add(1, box(0, 0, 0))
	s.Add(2, box(0, 0.5, 0)) // Lifted above 1
	s.Add(3, box(5, 0, 0))

	hit, ok := s.Raycast(down(0, 0))
	require.True(t, ok)
	assert.Equal(t, core.Entity(2), hit.Entity)
	assert.InDelta(t, 9.4, hit.Distance, 1e-9)
	assert.InDelta(t, 0.6, hit.Point.Y, 1e-9)

	id, ok := s.Pick(down(5.2, -0.3))
	require.True(t, ok)
	assert.Equal(t, core.Entity(3), id)

	_, ok = s.Raycast(down(2.5, 0))
	assert.False(t, ok)
}

func TestRaycastFollowsLiveBounds(t *testing.T) {
	s := NewSpace()
	pos := vmath.Vec3F{}
	s.Add(7, func() vmath.AABB {
		return vmath.AABB{Center: pos, Half: vmath.Vec3F{X: 0.5, Y: 0.1, Z: 0.5}}
	})

	_, ok := s.Pick(down(3, 3))
	assert.False(t, ok)

	pos = vmath.Vec3F{X: 3, Z: 3}
	id, ok := s.Pick(down(3, 3))
	require.True(t, ok)
	assert.Equal(t, core.Entity(7), id)
}

func TestSpaceRemoveAndTies(t *testing.T) {
	s := NewSpace()
	s.Add(1, box(0, 0, 0))
	s.Add(2, box(0, 0, 0))
	s.Add(3, box(0, 0, 0))
	require.Equal(t, 3, s.Len())

	id, _ := s.Pick(down(0, 0))
	assert.Equal(t, core.Entity(1), id, "ties resolve to first registered")

	s.Remove(1)
	s.Remove(99)
	assert.Equal(t, 2, s.Len())
	id, _ = s.Pick(down(0, 0))
	assert.Equal(t, core.Entity(2), id)

	s.Remove(2)
	id, _ = s.Pick(down(0, 0))
	assert.Equal(t, core.Entity(3), id)

	// Re-adding replaces bounds without duplicating
	s.Add(3, box(4, 0, 4))
	assert.Equal(t, 1, s.Len())
	_, ok := s.Pick(down(0, 0))
	assert.False(t, ok)
}
