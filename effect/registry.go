package effect

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/puzzle-snap/vmath"
)

// Instance is one live effect
type Instance struct {
	Name   string
	At     vmath.Vec3F
	Age    time.Duration
	TTL    time.Duration
	Serial uint64
}

// Progress returns the normalized lifetime in [0,1]
func (i Instance) Progress() float64 {
	if i.TTL <= 0 {
		return 1
	}
	return vmath.Clamp01(float64(i.Age) / float64(i.TTL))
}

// Registry keeps spawned effects alive for their TTL
// Owned by the game loop; renderers read a snapshot through Active
type Registry struct {
	ttl    map[string]time.Duration
	deflt  time.Duration
	live   []Instance
	serial uint64
	log    zerolog.Logger
}

// NewRegistry creates a registry where unknown names live for defaultTTL
func NewRegistry(defaultTTL time.Duration, logger zerolog.Logger) *Registry {
	return &Registry{
		ttl:   make(map[string]time.Duration),
		deflt: defaultTTL,
		log:   logger,
	}
}

// Define sets the lifetime of a named effect
func (r *Registry) Define(name string, ttl time.Duration) {
	r.ttl[name] = ttl
}

// Spawn adds a new instance of name at the given position
func (r *Registry) Spawn(name string, at vmath.Vec3F) {
	ttl, ok := r.ttl[name]
	if !ok {
		ttl = r.deflt
	}
	r.serial++
	r.live = append(r.live, Instance{Name: name, At: at, TTL: ttl, Serial: r.serial})
	r.log.Debug().Str("effect", name).Dur("ttl", ttl).Msg("effect spawned")
}

// Update ages effects and drops expired ones
func (r *Registry) Update(dt time.Duration) {
	n := 0
	for _, inst := range r.live {
		inst.Age += dt
		if inst.Age < inst.TTL {
			r.live[n] = inst
			n++
		}
	}
	clear(r.live[n:])
	r.live = r.live[:n]
}

// Active returns a copy of the live effects
func (r *Registry) Active() []Instance {
	return append([]Instance(nil), r.live...)
}

// Len returns the number of live effects
func (r *Registry) Len() int {
	return len(r.live)
}
