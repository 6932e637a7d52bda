// vehicle-sandbox drives a raycast vehicle around a debug-drawn scene in the terminal
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"slices"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/rayvehicle/audio"
	"github.com/lixenwraith/rayvehicle/config"
	"github.com/lixenwraith/rayvehicle/parameter"
	"github.com/lixenwraith/rayvehicle/render"
)

var (
	configFlag = flag.String("config", "", "Vehicle TOML file (default: built-in scene)")
	debugFlag  = flag.Bool("debug", false, "Write logs to logs/vehicle-sandbox.log")
	audioFlag  = flag.Bool("audio", true, "Play tire squeal while sliding")
	viewFlag   = flag.String("view", render.ViewTop, "Initial view: top, side, rear")
)

// maxTilt is the chassis tilt past which the HUD suggests a reset, in radians
const maxTilt = 1.2

func main() {
	var screen tcell.Screen

	// Restore the terminal before reporting a crash
	defer func() {
		if r := recover(); r != nil {
			if screen != nil {
				screen.Fini()
			}
			fmt.Fprintf(os.Stderr, "\nVEHICLE-SANDBOX CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	cfg := config.Default()
	if *configFlag != "" {
		var err error
		if cfg, err = config.Load(*configFlag); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
			os.Exit(1)
		}
	}
	scene, err := config.BuildScene(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build scene: %v\n", err)
		os.Exit(1)
	}
	view, err := render.NewView(*viewFlag, scene.Vehicle.CoordinateSystem())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid view: %v\n", err)
		os.Exit(1)
	}

	if screen, err = tcell.NewScreen(); err == nil {
		err = screen.Init()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.HideCursor()

	var player *audio.Player
	if *audioFlag {
		player = audio.NewPlayer(time.Now().UnixNano())
		if err := player.Initialize(); err != nil {
			log.Printf("audio disabled: %v", err)
		}
		defer player.Close()
	}

	log.Printf("scene: %d wheels, %d colliders, drive %s", scene.Vehicle.NumWheels(),
		len(scene.World.Colliders()), cfg.Control.Drive)

	canvas := render.NewCanvas(screen, view, parameter.HUDRows)
	keys := heldKeys{}
	paused := false

	ticker := time.NewTicker(parameter.FramePeriod)
	defer ticker.Stop()

	inputCh := startInputReader(screen)
	lastTick := time.Now()
	running := true

	for running {
		<-ticker.C
		now := time.Now()

	drainInput:
		for {
			select {
			case ev, ok := <-inputCh:
				if !ok {
					running = false
					break drainInput
				}
				switch ev := ev.(type) {
				case *tcell.EventResize:
					screen.Sync()
				case *tcell.EventKey:
					if k := drivingKey(ev); k != "" {
						keys.press(k, now)
						continue drainInput
					}
					switch {
					case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC,
						ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
						running = false
					case ev.Key() == tcell.KeyRune:
						switch ev.Rune() {
						case 'r':
							scene.Reset()
							keys.release()
							log.Printf("reset")
						case 'p':
							paused = !paused
						case 'v':
							canvas.SetView(nextView(canvas.View(), scene))
							log.Printf("view %s", canvas.View().Name)
						case '+', '=':
							canvas.Zoom(parameter.ViewZoomStep)
						case '-', '_':
							canvas.Zoom(1 / parameter.ViewZoomStep)
						case 'm':
							if player != nil {
								player.SetMuted(!player.Muted())
							}
						}
					}
				}
			default:
				break drainInput
			}
		}

		dt := min(now.Sub(lastTick).Seconds(), parameter.MaxFrameDelta)
		lastTick = now

		if !paused {
			scene.Drive(keys.controls(now), dt)
			if steps := scene.Step(dt); steps > cfg.World.MaxSubSteps {
				log.Printf("dropped %d sub-steps", steps-cfg.World.MaxSubSteps)
			}
		}
		if player != nil {
			intensity := 0.0
			if !paused {
				intensity = audio.SkidIntensity(scene.Vehicle)
			}
			player.SetSkid(intensity)
		}

		canvas.Clear()
		canvas.Follow(scene.Chassis.CenterOfMassPosition())
		scene.World.DebugDrawWorld(canvas)
		render.DrawHUD(canvas, scene.Vehicle, status(canvas.View(), scene.Upright(maxTilt), paused))
		canvas.Show()
	}
}

// nextView cycles to the view after the current one
func nextView(cur render.View, scene *config.Scene) render.View {
	i := (slices.Index(render.ViewNames, cur.Name) + 1) % len(render.ViewNames)
	v, err := render.NewView(render.ViewNames[i], scene.Vehicle.CoordinateSystem())
	if err != nil {
		return cur
	}
	return v
}

func status(v render.View, upright, paused bool) string {
	s := fmt.Sprintf("%s x%.1f", v.Name, v.Scale)
	if paused {
		s += "  PAUSED"
	}
	if !upright {
		s += "  flipped: r to reset"
	}
	return s
}
