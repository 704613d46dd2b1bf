package piece

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/puzzle-snap/core"
	"github.com/lixenwraith/puzzle-snap/event"
	"github.com/lixenwraith/puzzle-snap/input"
	"github.com/lixenwraith/puzzle-snap/parameter"
	"github.com/lixenwraith/puzzle-snap/vmath"
)

// Piece is one draggable puzzle piece
// All methods must be called from the game loop goroutine
type Piece struct {
	cfg  Config
	deps Deps
	log  zerolog.Logger

	position vmath.Vec3F
	rotation vmath.Quat
	scale    float64

	slot     *Slot
	original core.Pose
	offset   vmath.Vec3F

	state  State
	locked bool
	anim   *Animation

	lastTap     time.Time
	tick        int64
	rotatedTick int64
}

// New creates an idle piece at pose; pose is remembered as the return target
// slot may be nil, in which case the piece never snaps
func New(cfg Config, pose core.Pose, slot *Slot, deps Deps) *Piece {
	return &Piece{
		cfg:         cfg,
		deps:        deps,
		log:         deps.Logger.With().Uint64("piece", uint64(cfg.ID)).Logger(),
		position:    pose.Position,
		rotation:    pose.Rotation,
		scale:       1,
		slot:        slot,
		original:    pose,
		state:       StateIdle,
		rotatedTick: -1,
	}
}

func (p *Piece) ID() core.Entity { return p.cfg.ID }

func (p *Piece) State() State { return p.state }

// Locked reports whether the piece has snapped into its slot
func (p *Piece) Locked() bool { return p.locked }

func (p *Piece) Pose() core.Pose {
	return core.Pose{Position: p.position, Rotation: p.rotation}
}

// OriginalPose is where an unsnapped drop returns the piece
// Its rotation follows every rotation step
func (p *Piece) OriginalPose() core.Pose { return p.original }

func (p *Piece) Scale() float64 { return p.scale }

// SetScale is used by the celebration sequence
func (p *Piece) SetScale(s float64) { p.scale = s }

func (p *Piece) Slot() *Slot { return p.slot }

// YawDegrees returns the heading about world up in [0, 360)
func (p *Piece) YawDegrees() float64 { return vmath.QYawDegrees(p.rotation) }

// Bounds returns the world-space collision volume for hit-testing
func (p *Piece) Bounds() vmath.AABB {
	return vmath.AABB{
		Center: p.position,
		Half:   vmath.V3FScale(p.cfg.HalfExtents, p.scale),
	}
}

// HandlePointer routes a pointer event to the matching handler
func (p *Piece) HandlePointer(ev input.PointerEvent) {
	switch ev.Phase {
	case input.PhaseBegan:
		p.PointerDown(ev)
	case input.PhaseMoved:
		p.PointerMove(ev)
	case input.PhaseEnded, input.PhaseCanceled:
		p.PointerUp(ev)
	case input.PhaseSecondary:
		p.Secondary(ev)
	}
}

// PointerDown starts a drag when the pointer is over this idle piece
// A touch landing within the double-tap window of the previous one rotates first
func (p *Piece) PointerDown(ev input.PointerEvent) {
	if p.locked || p.state == StateDragging {
		return
	}
	if !p.isPointerOver(ev) {
		return
	}

	if ev.Source == input.SourceTouch {
		now := p.now(ev)
		if !p.lastTap.IsZero() && now.Sub(p.lastTap) < p.cfg.DoubleTapDelay {
			// A pair only counts once it rotates; a third tap then starts a new pair
			if p.Rotate() {
				p.lastTap = time.Time{}
			}
		} else {
			p.lastTap = now
		}
	}

	if p.state != StateIdle {
		return
	}
	ground, ok := p.groundPoint(ev)
	if !ok {
		return
	}

	p.state = StateDragging
	p.offset = vmath.V3FSub(p.position, ground)
	p.lift(true)
	p.emit(event.EventPieceGrabbed, &event.PiecePayload{Piece: p.cfg.ID})
	p.log.Debug().Msg("drag started")
}

// PointerMove follows the pointer on the ground plane at drag height
func (p *Piece) PointerMove(ev input.PointerEvent) {
	if p.state != StateDragging {
		return
	}

	ground, ok := p.groundPoint(ev)
	if !ok {
		return
	}
	p.position = vmath.V3FWithY(vmath.V3FAdd(ground, p.offset), p.cfg.DragHeight)
	p.highlightTarget()
}

// PointerUp drops the piece and either snaps it into the slot or sends it home
func (p *Piece) PointerUp(ev input.PointerEvent) {
	if p.state != StateDragging {
		return
	}
	p.lift(false)
	p.trySnap()
}

// Secondary rotates the piece on a right-click style action, gated by kid age
func (p *Piece) Secondary(ev input.PointerEvent) {
	if !p.canRotate() {
		return
	}
	if p.cfg.KidAge > parameter.SecondaryRotateMaxAge {
		return
	}
	if !p.isPointerOver(ev) {
		return
	}
	p.Rotate()
}

// Rotate turns the piece one step about world up, at most once per tick
// The step also applies to the home pose so an unsnapped drop keeps it
func (p *Piece) Rotate() bool {
	if !p.canRotate() {
		return false
	}
	if p.rotatedTick == p.tick {
		return false
	}

	step := vmath.QuatFromYaw(p.cfg.RotationStep)
	p.rotation = vmath.QNormalize(vmath.QMul(p.rotation, step))
	p.original.Rotation = vmath.QNormalize(vmath.QMul(p.original.Rotation, step))
	if p.anim != nil {
		p.anim.Start.Rotation = vmath.QNormalize(vmath.QMul(p.anim.Start.Rotation, step))
		p.anim.Target.Rotation = p.original.Rotation
	}
	p.rotatedTick = p.tick
	p.playSound(core.SoundRotate)

	yaw := p.YawDegrees()
	p.emit(event.EventPieceRotated, &event.PieceRotatedPayload{Piece: p.cfg.ID, YawDegrees: yaw})
	p.log.Debug().Float64("yaw", yaw).Msg("rotated")
	return true
}

// canRotate excludes dragging, locked and snapping pieces
func (p *Piece) canRotate() bool {
	switch p.state {
	case StateIdle:
		return true
	case StateAnimating:
		return p.anim != nil && p.anim.Kind == AnimReturn
	default:
		return false
	}
}

// Update advances the running animation by dt
func (p *Piece) Update(dt time.Duration) {
	if p.state == StateAnimating && p.anim != nil {
		pose, done := p.anim.Step(dt)
		p.position = pose.Position
		p.rotation = pose.Rotation
		if done {
			onComplete := p.anim.OnComplete
			p.anim = nil
			if onComplete != nil {
				onComplete()
			}
		}
	}
	p.tick++
}

func (p *Piece) lift(up bool) {
	if up {
		p.scale = p.cfg.LiftScale
		p.position.Y = p.cfg.DragHeight
		return
	}
	p.scale = 1
	p.position.Y = 0
}

func (p *Piece) highlightTarget() {
	if p.slot == nil {
		return
	}
	near := vmath.PlanarDistance(p.position, p.slot.Pose.Position) < p.cfg.SnapDistance
	p.setHighlight(near)
}

func (p *Piece) setHighlight(on bool) {
	if p.slot == nil || p.slot.Highlighted == on {
		return
	}
	p.slot.Highlighted = on
	p.emit(event.EventSlotHighlight, &event.SlotHighlightPayload{Piece: p.cfg.ID, Highlighted: on})
}

func (p *Piece) trySnap() {
	if p.slot == nil {
		p.emit(event.EventPieceReleased, &event.PieceReleasedPayload{Piece: p.cfg.ID, Distance: -1})
		p.returnToOrigin()
		return
	}

	d := vmath.PlanarDistance(p.position, p.slot.Pose.Position)
	snapping := d < p.cfg.SnapDistance
	p.emit(event.EventPieceReleased, &event.PieceReleasedPayload{
		Piece:    p.cfg.ID,
		Distance: d,
		Snapping: snapping,
	})

	if snapping {
		p.snapToTarget()
	} else {
		p.returnToOrigin()
	}
}

func (p *Piece) snapToTarget() {
	p.startAnimation(AnimSnap, p.slot.Pose, p.cfg.SnapDuration, p.lockIn)
}

func (p *Piece) returnToOrigin() {
	p.startAnimation(AnimReturn, p.original, p.cfg.ReturnDuration, func() {
		p.state = StateIdle
		p.setHighlight(false)
		p.emit(event.EventPieceReturned, &event.PiecePayload{Piece: p.cfg.ID})
		p.log.Debug().Msg("returned")
	})
}

func (p *Piece) startAnimation(kind AnimationKind, target core.Pose, d time.Duration, onComplete func()) {
	p.state = StateAnimating
	p.anim = &Animation{
		Kind:       kind,
		Start:      p.Pose(),
		Target:     target,
		Duration:   d,
		OnComplete: onComplete,
	}
}

func (p *Piece) lockIn() {
	p.locked = true
	p.state = StateLocked
	p.playSound(core.SoundSnap)

	p.slot.Highlighted = false
	p.slot.Visible = false

	p.emit(event.EventPieceLocked, &event.PiecePayload{Piece: p.cfg.ID})
	p.log.Debug().Msg("locked")

	if p.deps.Completion != nil {
		p.deps.Completion.PieceLocked(p.cfg.ID)
	}
}

// isPointerOver reports whether this piece is the first thing under the pointer
func (p *Piece) isPointerOver(ev input.PointerEvent) bool {
	if p.deps.Camera == nil || p.deps.Picker == nil {
		return false
	}
	hit, ok := p.deps.Picker.Pick(p.deps.Camera.ScreenRay(ev.X, ev.Y))
	return ok && hit == p.cfg.ID
}

func (p *Piece) groundPoint(ev input.PointerEvent) (vmath.Vec3F, bool) {
	if p.deps.Camera == nil {
		return vmath.Vec3F{}, false
	}
	ray := p.deps.Camera.ScreenRay(ev.X, ev.Y)
	d, ok := vmath.RayPlane(ray, vmath.GroundPlane)
	if !ok {
		return vmath.Vec3F{}, false
	}
	return vmath.RayPoint(ray, d), true
}

func (p *Piece) now(ev input.PointerEvent) time.Time {
	if !ev.When.IsZero() {
		return ev.When
	}
	if p.deps.Clock != nil {
		return p.deps.Clock.Now()
	}
	return time.Now()
}

func (p *Piece) playSound(st core.SoundType) {
	if p.deps.Sound == nil {
		return
	}
	played := p.deps.Sound.Play(st, parameter.DefaultSFXVolume)
	p.emit(event.EventSoundPlayed, &event.SoundPayload{
		Sound:  st,
		Volume: parameter.DefaultSFXVolume,
		Played: played,
	})
}

func (p *Piece) emit(t event.EventType, payload any) {
	p.deps.Events.Emit(t, payload, p.tick)
}
