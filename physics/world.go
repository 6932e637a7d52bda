package physics

import (
	"slices"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/rayvehicle/parameter"
)

// LineDrawer receives debug geometry; color is RGB in [0,1]
type LineDrawer interface {
	DrawLine(from, to, color mgl64.Vec3)
}

// Action is a per-tick callback registered with a World
// UpdateAction runs once per fixed sub-step after body integration
type Action interface {
	UpdateAction(world *World, dt float64)
	DebugDraw(drawer LineDrawer)
}

// ColliderColor is the debug color of responding colliders
var ColliderColor = mgl64.Vec3{0.45, 0.45, 0.5}

// World is a minimal host simulation: bodies under gravity, static and body-attached colliders
// for ray queries, and actions ticked at a fixed step
// Not safe for concurrent use
type World struct {
	gravity     mgl64.Vec3
	fixedStep   float64
	accumulator float64

	bodies    []*Body
	colliders []*Collider
	actions   []Action

	fixed *FixedBody

	// DebugExtent bounds unbounded shapes when drawing
	DebugExtent float64
}

// NewWorld creates a world with the given gravity acceleration
func NewWorld(gravity mgl64.Vec3) *World {
	return &World{
		gravity:     gravity,
		fixedStep:   parameter.DefaultFixedTimeStep,
		fixed:       NewFixedBody(),
		DebugExtent: 20,
	}
}

// FixedBody returns the world's infinite-mass reference body
func (w *World) FixedBody() *FixedBody { return w.fixed }

func (w *World) Gravity() mgl64.Vec3 { return w.gravity }

// SetGravity updates the world and every dynamic body
func (w *World) SetGravity(g mgl64.Vec3) {
	w.gravity = g
	for _, b := range w.bodies {
		b.SetGravity(g)
	}
}

func (w *World) FixedTimeStep() float64 { return w.fixedStep }

// SetFixedTimeStep sets the sub-step length; non-positive values are ignored
func (w *World) SetFixedTimeStep(dt float64) {
	if dt > 0 {
		w.fixedStep = dt
	}
}

// AddBody registers a body and applies world gravity to it
func (w *World) AddBody(b *Body) {
	b.SetGravity(w.gravity)
	w.bodies = append(w.bodies, b)
}

// RemoveBody unregisters a body, colliders attached to it are removed too
func (w *World) RemoveBody(b *Body) {
	w.bodies = slices.DeleteFunc(w.bodies, func(x *Body) bool { return x == b })
	w.colliders = slices.DeleteFunc(w.colliders, func(c *Collider) bool { return c.Body == b })
}

func (w *World) Bodies() []*Body { return w.bodies }

// AddCollider registers collision geometry for ray queries
func (w *World) AddCollider(c *Collider) *Collider {
	w.colliders = append(w.colliders, c)
	return c
}

func (w *World) Colliders() []*Collider { return w.colliders }

// AddAction registers a per-tick action, actions run in registration order
func (w *World) AddAction(a Action) {
	w.actions = append(w.actions, a)
}

// RemoveAction unregisters a previously added action
func (w *World) RemoveAction(a Action) {
	w.actions = slices.DeleteFunc(w.actions, func(x Action) bool { return x == a })
}

func (w *World) Actions() []Action { return w.actions }

// CastRay returns the closest hit among colliders with collision response enabled
func (w *World) CastRay(from, to mgl64.Vec3) (RayHit, bool) {
	var best RayHit
	found := false
	for _, c := range w.colliders {
		if !c.Response || c.Shape == nil {
			continue
		}
		hit, ok := c.castRay(from, to)
		if !ok {
			continue
		}
		if !found || hit.Fraction < best.Fraction {
			best = hit
			found = true
		}
	}
	return best, found
}

// StepSimulation advances the world by elapsed seconds in fixed sub-steps
// With maxSubSteps > 0, leftover time accumulates and motion states are extrapolated by it;
// with maxSubSteps <= 0 a single variable step of elapsed is taken
// Returns the number of sub-steps owed, which may exceed those simulated when clamped
func (w *World) StepSimulation(elapsed float64, maxSubSteps int) int {
	numSteps := 0
	step := w.fixedStep

	if maxSubSteps > 0 {
		if elapsed > 0 {
			w.accumulator += elapsed
		}
		if w.accumulator >= step {
			numSteps = int(w.accumulator / step)
			w.accumulator -= float64(numSteps) * step
		}
	} else {
		if elapsed <= 0 {
			return 0
		}
		step = elapsed
		w.accumulator = 0
		numSteps = 1
		maxSubSteps = 1
	}

	for i := 0; i < min(numSteps, maxSubSteps); i++ {
		w.stepOnce(step)
	}

	for _, b := range w.bodies {
		b.synchronizeMotionState(w.accumulator)
	}
	return numSteps
}

// stepOnce: gravity and damping, integrate transforms, then actions
func (w *World) stepOnce(dt float64) {
	for _, b := range w.bodies {
		b.applyGravity(dt)
		b.applyDamping(dt)
		b.integrate(dt)
	}
	for _, a := range w.actions {
		a.UpdateAction(w, dt)
	}
}

// DebugDrawWorld draws responding colliders and every action's debug geometry
func (w *World) DebugDrawWorld(d LineDrawer) {
	for _, c := range w.colliders {
		if !c.Response || c.Shape == nil {
			continue
		}
		wt := c.WorldTransform()
		for _, e := range c.Shape.Edges(w.DebugExtent) {
			d.DrawLine(wt.Apply(e[0]), wt.Apply(e[1]), ColliderColor)
		}
	}
	for _, a := range w.actions {
		a.DebugDraw(d)
	}
}
