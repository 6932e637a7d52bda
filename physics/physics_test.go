package physics

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/rayvehicle/vmath"
)

func newBox(mass float64, origin mgl64.Vec3) *Body {
	half := mgl64.Vec3{1, 0.5, 2}
	return NewBody(mass, BoxInertia(mass, half), vmath.Translation(origin))
}

func TestBodyApplyImpulse(t *testing.T) {
	b := newBox(2, mgl64.Vec3{})

	b.ApplyImpulse(mgl64.Vec3{4, 0, 0}, mgl64.Vec3{})
	assert.Equal(t, mgl64.Vec3{2, 0, 0}, b.LinearVelocity())
	assert.Equal(t, mgl64.Vec3{}, b.AngularVelocity())

	// Off-center impulse spins the body about the lever arm cross product
	b.ApplyImpulse(mgl64.Vec3{0, 0, 1}, mgl64.Vec3{1, 0, 0})
	assert.Less(t, b.AngularVelocity().Y(), 0.0)

	v := b.VelocityAtLocalPoint(mgl64.Vec3{1, 0, 0})
	assert.InDelta(t, b.LinearVelocity().Z()-b.AngularVelocity().Y(), v.Z(), 1e-12)
}

func TestStaticBodyIgnoresImpulses(t *testing.T) {
	b := NewBody(0, mgl64.Vec3{1, 1, 1}, vmath.Identity())
	assert.True(t, b.IsStatic())
	assert.True(t, math.IsInf(b.Mass(), 1))

	b.ApplyImpulse(mgl64.Vec3{10, 0, 0}, mgl64.Vec3{0, 1, 0})
	b.SetGravity(mgl64.Vec3{0, -10, 0})
	assert.Equal(t, mgl64.Vec3{}, b.LinearVelocity())
	assert.Equal(t, mgl64.Vec3{}, b.AngularVelocity())
	assert.Equal(t, mgl64.Vec3{}, b.Gravity())
}

func TestFixedBodyIsImmovable(t *testing.T) {
	f := NewFixedBody()
	f.ApplyImpulse(mgl64.Vec3{1, 2, 3}, mgl64.Vec3{1, 0, 0})
	assert.Equal(t, 0.0, f.InverseMass())
	assert.Equal(t, mgl64.Vec3{}, f.VelocityAtLocalPoint(mgl64.Vec3{5, 5, 5}))
	assert.Equal(t, 0.0, ImpulseDenominator(f, mgl64.Vec3{1, 2, 3}, mgl64.Vec3{1, 0, 0}))
}

func TestResolveAxisStopsRelativeMotion(t *testing.T) {
	a := newBox(10, mgl64.Vec3{})
	a.SetLinearVelocity(mgl64.Vec3{3, 0, 1})
	a.SetAngularVelocity(mgl64.Vec3{0, 0.5, 0})
	ground := NewFixedBody()

	pos := mgl64.Vec3{0.5, -0.5, 1}
	dir := mgl64.Vec3{1, 0, 0}
	require.NotZero(t, RelativeVelocity(a, ground, pos, pos, dir))

	j := ResolveAxis(a, ground, pos, pos, dir, 1, 1)
	a.ApplyImpulse(dir.Mul(j), pos.Sub(a.CenterOfMassPosition()))

	assert.InDelta(t, 0.0, RelativeVelocity(a, ground, pos, pos, dir), 1e-12)
}

func TestResolveSingleBilateral(t *testing.T) {
	a := newBox(10, mgl64.Vec3{})
	a.SetLinearVelocity(mgl64.Vec3{2, 0, 0})
	ground := NewFixedBody()
	pos := mgl64.Vec3{0, -1, 0}
	dir := mgl64.Vec3{1, 0, 0}

	full := ResolveAxis(a, ground, pos, pos, dir, 1, 1)
	j := ResolveSingleBilateral(a, pos, ground, pos, dir)
	assert.InDelta(t, 0.2*full, j, 1e-12)
	assert.Less(t, j, 0.0)

	assert.Equal(t, 0.0, ResolveSingleBilateral(a, pos, ground, pos, mgl64.Vec3{2, 0, 0}))
}

func TestResolveAxisBothImmovable(t *testing.T) {
	f := NewFixedBody()
	assert.Equal(t, 0.0, ResolveAxis(f, f, mgl64.Vec3{}, mgl64.Vec3{}, mgl64.Vec3{1, 0, 0}, 1, 1))
}

func TestPlaneIntersectRay(t *testing.T) {
	p := NewPlane(mgl64.Vec3{0, 2, 0}, mgl64.Vec3{0, 1, 0})

	f, n, ok := p.IntersectRay(mgl64.Vec3{0, 3, 0}, mgl64.Vec3{0, -1, 0})
	require.True(t, ok)
	assert.InDelta(t, 0.5, f, 1e-12)
	assert.Equal(t, mgl64.Vec3{0, 1, 0}, n)

	// From below the normal faces the segment start
	_, n, ok = p.IntersectRay(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, 2, 0})
	require.True(t, ok)
	assert.Equal(t, -1.0, n.Y())

	_, _, ok = p.IntersectRay(mgl64.Vec3{0, 3, 0}, mgl64.Vec3{0, 2, 0})
	assert.False(t, ok)
	_, _, ok = p.IntersectRay(mgl64.Vec3{0, 3, 0}, mgl64.Vec3{5, 3, 0})
	assert.False(t, ok)
}

func TestBoxIntersectRay(t *testing.T) {
	b := Box{HalfExtents: mgl64.Vec3{1, 1, 1}}

	tests := []struct {
		name     string
		from, to mgl64.Vec3
		ok       bool
		fraction float64
		normal   mgl64.Vec3
	}{
		{"top face", mgl64.Vec3{0, 3, 0}, mgl64.Vec3{0, -3, 0}, true, 1.0 / 3.0, mgl64.Vec3{0, 1, 0}},
		{"side face", mgl64.Vec3{-5, 0.5, 0}, mgl64.Vec3{5, 0.5, 0}, true, 0.4, mgl64.Vec3{-1, 0, 0}},
		{"passes beside", mgl64.Vec3{2, 3, 0}, mgl64.Vec3{2, -3, 0}, false, 0, mgl64.Vec3{}},
		{"too short", mgl64.Vec3{0, 3, 0}, mgl64.Vec3{0, 2, 0}, false, 0, mgl64.Vec3{}},
		{"starts inside", mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, -3, 0}, false, 0, mgl64.Vec3{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, n, ok := b.IntersectRay(tt.from, tt.to)
			require.Equal(t, tt.ok, ok)
			if !ok {
				return
			}
			assert.InDelta(t, tt.fraction, f, 1e-12)
			assert.Equal(t, tt.normal, n)
		})
	}
	assert.Len(t, b.Edges(0), 12)
}

func TestTriangleIntersectRay(t *testing.T) {
	tr := Triangle{A: mgl64.Vec3{-1, 0, -1}, B: mgl64.Vec3{1, 0, -1}, C: mgl64.Vec3{0, 0, 1}}

	f, n, ok := tr.IntersectRay(mgl64.Vec3{0, 1, 0}, mgl64.Vec3{0, -1, 0})
	require.True(t, ok)
	assert.InDelta(t, 0.5, f, 1e-12)
	assert.True(t, n.ApproxEqual(mgl64.Vec3{0, 1, 0}), "normal %v", n)

	_, n, ok = tr.IntersectRay(mgl64.Vec3{0, -1, 0}, mgl64.Vec3{0, 1, 0})
	require.True(t, ok)
	assert.True(t, n.ApproxEqual(mgl64.Vec3{0, -1, 0}), "back face normal %v", n)

	_, _, ok = tr.IntersectRay(mgl64.Vec3{2, 1, 0}, mgl64.Vec3{2, -1, 0})
	assert.False(t, ok)
}

func TestWorldCastRayClosestResponding(t *testing.T) {
	w := NewWorld(mgl64.Vec3{0, -9.81, 0})
	w.AddCollider(&Collider{Name: "ground", Shape: NewPlane(mgl64.Vec3{0, 1, 0}, mgl64.Vec3{}), Offset: vmath.Identity(), Response: true})
	w.AddCollider(&Collider{Name: "ghost", Shape: Box{HalfExtents: mgl64.Vec3{1, 1, 1}}, Offset: vmath.Translation(mgl64.Vec3{0, 5, 0})})

	crate := newBox(5, mgl64.Vec3{0, 2, 0})
	w.AddBody(crate)
	w.AddCollider(&Collider{Name: "crate", Shape: Box{HalfExtents: mgl64.Vec3{1, 0.5, 1}}, Offset: vmath.Identity(), Body: crate, Response: true})

	hit, ok := w.CastRay(mgl64.Vec3{0, 10, 0}, mgl64.Vec3{0, -10, 0})
	require.True(t, ok)
	assert.InDelta(t, 2.5, hit.Point.Y(), 1e-12)
	assert.Same(t, crate, hit.Body)

	hit, ok = w.CastRay(mgl64.Vec3{5, 10, 0}, mgl64.Vec3{5, -10, 0})
	require.True(t, ok)
	assert.InDelta(t, 0.0, hit.Point.Y(), 1e-12)
	assert.Nil(t, hit.Body)
	assert.InDelta(t, 0.5, hit.Fraction, 1e-12)

	w.RemoveBody(crate)
	assert.Len(t, w.Colliders(), 2)
	_, ok = w.CastRay(mgl64.Vec3{5, 10, 0}, mgl64.Vec3{5, 5, 0})
	assert.False(t, ok)
}

type countingAction struct {
	steps []float64
	draws int
}

func (c *countingAction) UpdateAction(_ *World, dt float64) { c.steps = append(c.steps, dt) }
func (c *countingAction) DebugDraw(LineDrawer) { c.draws++ }

type lineCounter int

func (l *lineCounter) DrawLine(_, _, _ mgl64.Vec3) { *l++ }

func TestWorldStepSimulation(t *testing.T) {
	w := NewWorld(mgl64.Vec3{0, -10, 0})
	w.SetFixedTimeStep(0.01)
	b := newBox(1, mgl64.Vec3{0, 10, 0})
	w.AddBody(b)
	a := &countingAction{}
	w.AddAction(a)

	assert.Equal(t, 0, w.StepSimulation(0.005, 4))
	assert.Empty(t, a.steps)

	assert.Equal(t, 1, w.StepSimulation(0.0075, 4))
	require.Len(t, a.steps, 1)
	assert.Equal(t, 0.01, a.steps[0])
	assert.InDelta(t, -0.1, b.LinearVelocity().Y(), 1e-12)

	// Owed steps beyond the cap are dropped
	assert.Equal(t, 10, w.StepSimulation(0.1, 4))
	assert.Len(t, a.steps, 5)

	ms, ok := b.MotionStateTransform()
	require.True(t, ok)
	assert.LessOrEqual(t, ms.Origin.Y(), b.CenterOfMassPosition().Y())

	assert.Equal(t, 1, w.StepSimulation(0.02, 0))
	assert.Equal(t, 0.02, a.steps[len(a.steps)-1])

	w.RemoveAction(a)
	w.StepSimulation(0.05, 4)
	assert.Len(t, a.steps, 6)
}

func TestWorldGravity(t *testing.T) {
	w := NewWorld(mgl64.Vec3{0, -10, 0})
	b := newBox(1, mgl64.Vec3{})
	w.AddBody(b)
	assert.Equal(t, mgl64.Vec3{0, -10, 0}, b.Gravity())

	w.SetGravity(mgl64.Vec3{0, 0, -1})
	assert.Equal(t, mgl64.Vec3{0, 0, -1}, b.Gravity())
	assert.Equal(t, mgl64.Vec3{0, 0, -1}, w.Gravity())
}

func TestWorldDebugDraw(t *testing.T) {
	w := NewWorld(mgl64.Vec3{})
	w.AddCollider(&Collider{Shape: Triangle{B: mgl64.Vec3{1, 0, 0}, C: mgl64.Vec3{0, 0, 1}}, Offset: vmath.Identity(), Response: true})
	w.AddCollider(&Collider{Shape: Box{HalfExtents: mgl64.Vec3{1, 1, 1}}, Offset: vmath.Identity()})
	a := &countingAction{}
	w.AddAction(a)

	var lines lineCounter
	w.DebugDrawWorld(&lines)
	assert.Equal(t, lineCounter(3), lines)
	assert.Equal(t, 1, a.draws)
}
