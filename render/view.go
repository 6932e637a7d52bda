// Package render draws physics debug geometry and vehicle status onto a tcell screen.
package render

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/rayvehicle/parameter"
	"github.com/lixenwraith/rayvehicle/vehicle"
	"github.com/lixenwraith/rayvehicle/vmath"
)

// View names
const (
	ViewTop  = "top"
	ViewSide = "side"
	ViewRear = "rear"
)

// ViewNames lists the views in cycling order
var ViewNames = []string{ViewTop, ViewSide, ViewRear}

// View is an orthographic projection onto the terminal
// Right and Up are the world directions drawn toward screen right and screen top
type View struct {
	Name   string
	Right  mgl64.Vec3
	Up     mgl64.Vec3
	Scale  float64 // columns per world unit
	Aspect float64 // cell height over width
	Center mgl64.Vec3
}

// NewView builds a named view for a world whose axes follow cs
func NewView(name string, cs vehicle.CoordinateSystem) (View, error) {
	if err := cs.Validate(); err != nil {
		return View{}, err
	}
	up := vmath.Axis(cs.Up)
	fwd := vmath.Axis(cs.Forward)
	right := fwd.Cross(up)

	v := View{Name: name, Scale: parameter.DefaultViewScale, Aspect: parameter.CellAspect}
	switch name {
	case ViewTop:
		v.Right, v.Up = right, fwd
	case ViewSide:
		v.Right, v.Up = fwd, up
	case ViewRear:
		v.Right, v.Up = right, up
	default:
		return View{}, fmt.Errorf("unknown view %q", name)
	}
	return v, nil
}

// Project maps a world point to fractional screen coordinates for a width×height screen
func (v View) Project(p mgl64.Vec3, width, height int) (float64, float64) {
	d := p.Sub(v.Center)
	x := float64(width)/2 + d.Dot(v.Right)*v.Scale
	y := float64(height)/2 - d.Dot(v.Up)*v.Scale/v.Aspect
	return x, y
}

// Zoom multiplies the scale, clamped to the allowed range
func (v *View) Zoom(factor float64) {
	v.Scale = vmath.Clamp(v.Scale*factor, parameter.MinViewScale, parameter.MaxViewScale)
}
