package vehicle

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/rayvehicle/physics"
)

var (
	contactColor  = mgl64.Vec3{0, 0, 1}
	airborneColor = mgl64.Vec3{1, 0, 1}
)

// DebugDraw draws each wheel's axle and the line from wheel center to contact point
func (v *RaycastVehicle) DebugDraw(drawer physics.LineDrawer) {
	for _, w := range v.wheels {
		color := airborneColor
		if w.Raycast.InContact {
			color = contactColor
		}
		origin := w.WorldTransform.Origin
		axle := w.WorldTransform.Column(v.axes.Right)
		drawer.DrawLine(origin, origin.Add(axle), color)
		drawer.DrawLine(origin, w.Raycast.ContactPointWS, color)
	}
}
