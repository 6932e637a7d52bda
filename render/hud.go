package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/rayvehicle/parameter"
	"github.com/lixenwraith/rayvehicle/vehicle"
)

var (
	hudStyle   = tcell.StyleDefault.Foreground(tcell.NewRGBColor(200, 200, 210))
	hudDim     = tcell.StyleDefault.Foreground(tcell.NewRGBColor(110, 110, 120))
	hudWarning = tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 140, 60))
)

// HUDLines formats the speed row and one row of per-wheel blocks
func HUDLines(v *vehicle.RaycastVehicle, status string) []string {
	steering := 0.0
	for i := range v.NumWheels() {
		if v.Wheel(i).IsFront {
			steering = v.SteeringValue(i)
			break
		}
	}
	skid := "    "
	if v.Sliding() {
		skid = "SKID"
	}
	head := fmt.Sprintf("%7.1f km/h  steer %+5.2f  %s  %s", v.CurrentSpeedKmHour(), steering, skid, status)

	var b strings.Builder
	for i := range v.NumWheels() {
		w := v.Wheel(i)
		pos, contact := 'R', '-'
		if w.IsFront {
			pos = 'F'
		}
		if w.Raycast.InContact {
			contact = '*'
		}
		block := fmt.Sprintf("%d%c%c len %.2f f %5.0f k %.2f", i, pos, contact,
			w.Raycast.SuspensionLength, w.SuspensionForce, w.SkidInfo)
		fmt.Fprintf(&b, "%-*s", parameter.HUDWheelColumnWidth, block)
	}
	return []string{head, strings.TrimRight(b.String(), " ")}
}

// DrawHUD writes HUDLines into the reserved rows above the canvas
func DrawHUD(c *Canvas, v *vehicle.RaycastVehicle, status string) {
	lines := HUDLines(v, status)
	style := hudStyle
	if v.Sliding() {
		style = hudWarning
	}
	c.DrawText(0, 0, lines[0], style)
	if len(lines) > 1 && parameter.HUDRows > 1 {
		c.DrawText(0, 1, lines[1], hudDim)
	}
}
