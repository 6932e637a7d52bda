package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/rayvehicle/vmath"
)

const rayEpsilon = 1e-12

// Shape is static collision geometry in its collider's local frame
// IntersectRay tests the segment from→to and returns the hit fraction in [0,1] and the unit surface
// normal facing the segment start
type Shape interface {
	IntersectRay(from, to mgl64.Vec3) (fraction float64, normal mgl64.Vec3, ok bool)
	// Edges returns line segments outlining the shape, extent bounds unbounded shapes
	Edges(extent float64) [][2]mgl64.Vec3
}

// Plane is the infinite plane dot(Normal, p) == Constant
type Plane struct {
	Normal   mgl64.Vec3
	Constant float64
}

// NewPlane returns a plane through point with the given normal
func NewPlane(normal, point mgl64.Vec3) Plane {
	n, ok := vmath.SafeNormalize(normal)
	if !ok {
		n = mgl64.Vec3{0, 1, 0}
	}
	return Plane{Normal: n, Constant: n.Dot(point)}
}

func (p Plane) IntersectRay(from, to mgl64.Vec3) (float64, mgl64.Vec3, bool) {
	df := p.Normal.Dot(from) - p.Constant
	dt := p.Normal.Dot(to) - p.Constant
	if (df > 0 && dt > 0) || (df < 0 && dt < 0) || df == dt {
		return 0, mgl64.Vec3{}, false
	}
	t := df / (df - dt)
	n := p.Normal
	if df < 0 {
		n = n.Mul(-1)
	}
	return t, n, true
}

func (p Plane) Edges(extent float64) [][2]mgl64.Vec3 {
	u, v := planeSpace(p.Normal)
	center := p.Normal.Mul(p.Constant)
	const lines = 8
	edges := make([][2]mgl64.Vec3, 0, 2*(lines+1))
	step := 2 * extent / lines
	for i := 0; i <= lines; i++ {
		off := -extent + float64(i)*step
		edges = append(edges,
			[2]mgl64.Vec3{center.Add(u.Mul(off)).Sub(v.Mul(extent)), center.Add(u.Mul(off)).Add(v.Mul(extent))},
			[2]mgl64.Vec3{center.Add(v.Mul(off)).Sub(u.Mul(extent)), center.Add(v.Mul(off)).Add(u.Mul(extent))},
		)
	}
	return edges
}

// Box is an axis-aligned box centered at the collider origin
type Box struct {
	HalfExtents mgl64.Vec3
}

// IntersectRay uses the slab method; segments starting inside the box do not hit
func (b Box) IntersectRay(from, to mgl64.Vec3) (float64, mgl64.Vec3, bool) {
	dir := to.Sub(from)
	tEnter, tExit := math.Inf(-1), math.Inf(1)
	var normal mgl64.Vec3

	for i := 0; i < 3; i++ {
		h := b.HalfExtents[i]
		if math.Abs(dir[i]) < rayEpsilon {
			if from[i] < -h || from[i] > h {
				return 0, mgl64.Vec3{}, false
			}
			continue
		}
		near, far := (-h-from[i])/dir[i], (h-from[i])/dir[i]
		faceSign := -1.0
		if near > far {
			near, far = far, near
			faceSign = 1.0
		}
		if near > tEnter {
			tEnter = near
			normal = mgl64.Vec3{}
			normal[i] = faceSign
		}
		if far < tExit {
			tExit = far
		}
		if tEnter > tExit {
			return 0, mgl64.Vec3{}, false
		}
	}

	if math.IsInf(tEnter, -1) || tEnter < 0 || tEnter > 1 {
		return 0, mgl64.Vec3{}, false
	}
	return tEnter, normal, true
}

func (b Box) Edges(float64) [][2]mgl64.Vec3 {
	h := b.HalfExtents
	corner := func(i int) mgl64.Vec3 {
		c := h
		for axis := 0; axis < 3; axis++ {
			if i&(1<<axis) == 0 {
				c[axis] = -c[axis]
			}
		}
		return c
	}
	edges := make([][2]mgl64.Vec3, 0, 12)
	for i := 0; i < 8; i++ {
		for axis := 0; axis < 3; axis++ {
			if j := i | (1 << axis); j != i {
				edges = append(edges, [2]mgl64.Vec3{corner(i), corner(j)})
			}
		}
	}
	return edges
}

// Triangle is a double-sided triangle, used for ramps
type Triangle struct {
	A, B, C mgl64.Vec3
}

// IntersectRay uses Möller–Trumbore in segment parameter space
func (tr Triangle) IntersectRay(from, to mgl64.Vec3) (float64, mgl64.Vec3, bool) {
	dir := to.Sub(from)
	e1 := tr.B.Sub(tr.A)
	e2 := tr.C.Sub(tr.A)
	p := dir.Cross(e2)
	det := e1.Dot(p)
	if math.Abs(det) < rayEpsilon {
		return 0, mgl64.Vec3{}, false
	}
	invDet := 1.0 / det
	s := from.Sub(tr.A)
	u := s.Dot(p) * invDet
	if u < 0 || u > 1 {
		return 0, mgl64.Vec3{}, false
	}
	q := s.Cross(e1)
	v := dir.Dot(q) * invDet
	if v < 0 || u+v > 1 {
		return 0, mgl64.Vec3{}, false
	}
	t := e2.Dot(q) * invDet
	if t < 0 || t > 1 {
		return 0, mgl64.Vec3{}, false
	}
	n, ok := vmath.SafeNormalize(e1.Cross(e2))
	if !ok {
		return 0, mgl64.Vec3{}, false
	}
	if n.Dot(dir) > 0 {
		n = n.Mul(-1)
	}
	return t, n, true
}

func (tr Triangle) Edges(float64) [][2]mgl64.Vec3 {
	return [][2]mgl64.Vec3{{tr.A, tr.B}, {tr.B, tr.C}, {tr.C, tr.A}}
}

// planeSpace returns two unit vectors orthogonal to n and each other
func planeSpace(n mgl64.Vec3) (mgl64.Vec3, mgl64.Vec3) {
	ref := mgl64.Vec3{1, 0, 0}
	if math.Abs(n[0]) > 0.7 {
		ref = mgl64.Vec3{0, 1, 0}
	}
	u, _ := vmath.SafeNormalize(vmath.RejectFrom(ref, n))
	return u, n.Cross(u)
}
