package physics

import (
	"math"

	"github.com/lixenwraith/puzzle-snap/core"
	"github.com/lixenwraith/puzzle-snap/vmath"
)

// BoundsFunc returns the current world-space volume of a body
// Evaluated on every query so moving bodies need no re-registration
type BoundsFunc func() vmath.AABB

// Hit is the result of a successful raycast
type Hit struct {
	Entity   core.Entity
	Distance float64
	Point    vmath.Vec3F
}

type body struct {
	id     core.Entity
	bounds BoundsFunc
}

// Space is a flat collection of pickable bodies
// Not thread-safe: owned by the game loop goroutine
type Space struct {
	bodies []body
	index  map[core.Entity]int
}

// NewSpace creates an empty space
func NewSpace() *Space {
	return &Space{
		index: make(map[core.Entity]int),
	}
}

// Add registers a body; re-adding an id replaces its bounds in place
func (s *Space) Add(id core.Entity, bounds BoundsFunc) {
	if i, ok := s.index[id]; ok {
		s.bodies[i].bounds = bounds
		return
	}
	s.index[id] = len(s.bodies)
	s.bodies = append(s.bodies, body{id: id, bounds: bounds})
}

// Remove unregisters a body, preserving insertion order of the rest
func (s *Space) Remove(id core.Entity) {
	i, ok := s.index[id]
	if !ok {
		return
	}
	s.bodies = append(s.bodies[:i], s.bodies[i+1:]...)
	delete(s.index, id)
	for j := i; j < len(s.bodies); j++ {
		s.index[s.bodies[j].id] = j
	}
}

// Len returns the number of registered bodies
func (s *Space) Len() int {
	return len(s.bodies)
}

// Raycast returns the nearest body struck by r
// Ties resolve to the earliest registered body
func (s *Space) Raycast(r vmath.Ray) (Hit, bool) {
	best := Hit{Distance: math.Inf(1)}
	found := false

	for _, b := range s.bodies {
		d, ok := vmath.RayAABB(r, b.bounds())
		if !ok || d >= best.Distance {
			continue
		}
		best = Hit{Entity: b.id, Distance: d, Point: vmath.RayPoint(r, d)}
		found = true
	}
	return best, found
}

// Pick returns only the struck entity
func (s *Space) Pick(r vmath.Ray) (core.Entity, bool) {
	hit, ok := s.Raycast(r)
	return hit.Entity, ok
}
