package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/snatch/engine"
	"github.com/lixenwraith/snatch/event"
	"github.com/lixenwraith/snatch/parameter"
	"github.com/lixenwraith/snatch/route"
	"github.com/lixenwraith/snatch/system"
	"github.com/lixenwraith/snatch/vmath"
)

// fieldWidth / fieldHeight bound the playfield in world units; the
// built-in course and the player point stay inside
const (
	fieldWidth  = 24.0
	fieldHeight = 12.0

	// maxFrameDelta guards against a huge dt after terminal suspend
	maxFrameDelta = 0.1

	// captureFlashDuration is how long the player cell stays green
	// after a capture
	captureFlashDuration = 200 * time.Millisecond
)

// Game couples the round core to the terminal: input, projection, HUD
type Game struct {
	screen tcell.Screen
	round  *engine.Round
	course []route.Route

	player vmath.Vec3
	paused bool

	captureFlashTime time.Time

	lastUpdate time.Time

	audioInit bool
}

// course returns the built-in route set, all on the Z=0 plane so the
// terminal projection is faithful
func course() []route.Route {
	return []route.Route{
		route.New(
			vmath.Vec3{X: 1, Y: 1, Z: 0},
			vmath.Vec3{X: 22, Y: 1, Z: 0},
			vmath.Vec3{X: 22, Y: 10, Z: 0},
		),
		route.New(
			vmath.Vec3{X: 1, Y: 10, Z: 0},
			vmath.Vec3{X: 12, Y: 5, Z: 0},
			vmath.Vec3{X: 22, Y: 10, Z: 0},
		),
		route.New(
			vmath.Vec3{X: 22, Y: 5, Z: 0},
			vmath.Vec3{X: 12, Y: 1, Z: 0},
			vmath.Vec3{X: 1, Y: 5, Z: 0},
			vmath.Vec3{X: 1, Y: 10, Z: 0},
		),
		route.New(
			vmath.Vec3{X: 12, Y: 10, Z: 0},
			vmath.Vec3{X: 12, Y: 1, Z: 0},
		),
	}
}

func NewGame(seed int64, bounce bool) (*Game, error) {
	cfg := engine.DefaultConfig()
	cfg.Routes = course()
	cfg.Seed = seed
	if bounce {
		cfg.Traversal = system.TraverseBounce
	}

	round, err := engine.NewRound(cfg)
	if err != nil {
		return nil, err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	g := &Game{
		screen:     screen,
		round:      round,
		course:     cfg.Routes,
		player:     vmath.Vec3{X: fieldWidth / 2, Y: fieldHeight / 2, Z: 0},
		lastUpdate: time.Now(),
	}
	g.round.SetPlayerPosition(g.player)

	if err := g.initAudio(); err != nil {
		// Non-fatal, game can run without sound
		log.Printf("Audio initialization failed: %v", err)
	}

	return g, nil
}

func (g *Game) initAudio() error {
	sampleRate := beep.SampleRate(parameter.AudioSampleRate)
	err := speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	if err == nil {
		g.audioInit = true
	}
	return err
}

func (g *Game) playCaptureSound() {
	if !g.audioInit {
		return
	}

	sampleRate := beep.SampleRate(parameter.AudioSampleRate)
	duration := sampleRate.N(parameter.CaptureToneMillis * time.Millisecond)
	sine, _ := generators.SineTone(sampleRate, parameter.CaptureToneHz)
	speaker.Play(beep.Take(duration, sine))
}

// movePlayer steps the capture point in world units and clamps it to
// the playfield
func (g *Game) movePlayer(dx, dy float64) {
	g.player.X += dx * parameter.PlayerStepX
	g.player.Y += dy * parameter.PlayerStepY

	if g.player.X < 0 {
		g.player.X = 0
	}
	if g.player.X > fieldWidth {
		g.player.X = fieldWidth
	}
	if g.player.Y < 0 {
		g.player.Y = 0
	}
	if g.player.Y > fieldHeight {
		g.player.Y = fieldHeight
	}
	g.round.SetPlayerPosition(g.player)
}

func (g *Game) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}

		switch ev.Key() {
		case tcell.KeyLeft:
			g.movePlayer(-1, 0)
		case tcell.KeyRight:
			g.movePlayer(1, 0)
		case tcell.KeyUp:
			g.movePlayer(0, -1)
		case tcell.KeyDown:
			g.movePlayer(0, 1)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'h':
				g.movePlayer(-1, 0)
			case 'l':
				g.movePlayer(1, 0)
			case 'k':
				g.movePlayer(0, -1)
			case 'j':
				g.movePlayer(0, 1)
			case 'p':
				g.paused = !g.paused
			case 'q':
				return false
			case 'r':
				// Edge-triggered restart, only honored in game over
				g.round.Restart()
			}
		}

	case *tcell.EventResize:
		g.screen.Sync()
	}

	return true
}

// project maps a world position to a screen cell inside the playfield
// box (one row reserved for the HUD, one column of border)
func project(p vmath.Vec3) (int, int) {
	x := 1 + int(p.X*parameter.FieldScaleX)
	y := parameter.HUDRow + 2 + int(p.Y*parameter.FieldScaleY)
	return x, y
}

func (g *Game) draw() {
	g.screen.Clear()
	snap := g.round.Snapshot()

	// HUD
	clockStyle := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	if snap.Warning {
		clockStyle = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	}
	hud := fmt.Sprintf("Score %d   Missed %d   ", snap.Score, snap.Missed)
	drawText(g.screen, 1, parameter.HUDRow, hud, tcell.StyleDefault)
	drawText(g.screen, 1+len(hud), parameter.HUDRow, snap.Clock, clockStyle)
	if g.paused {
		drawText(g.screen, 1+len(hud)+8, parameter.HUDRow, "[paused]", tcell.StyleDefault.Dim(true))
	}

	// Course markers
	dim := tcell.StyleDefault.Foreground(tcell.ColorGray).Dim(true)
	for _, r := range g.course {
		for i := 0; i < r.Len(); i++ {
			x, y := project(r.Waypoint(i))
			g.screen.SetContent(x, y, '+', nil, dim)
			if i+1 < r.Len() {
				drawSegment(g.screen, r.Waypoint(i), r.Waypoint(i+1), dim)
			}
		}
	}

	// Chasers
	chaserStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	for _, ch := range snap.Chasers {
		x, y := project(ch.Position)
		g.screen.SetContent(x, y, '@', nil, chaserStyle)
	}

	// Player capture point, flashing green briefly after a capture
	playerStyle := tcell.StyleDefault.Reverse(true)
	if time.Since(g.captureFlashTime) < captureFlashDuration {
		playerStyle = tcell.StyleDefault.Foreground(tcell.ColorGreen).Reverse(true)
	}
	px, py := project(g.player)
	g.screen.SetContent(px, py, ' ', nil, playerStyle)

	if snap.GameOver {
		w, h := g.screen.Size()
		center := tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
		drawText(g.screen, w/2-5, h/2, " GAME OVER ", center.Reverse(true))
		drawText(g.screen, w/2-9, h/2+1, "press r to restart", tcell.StyleDefault)
	}

	g.screen.Show()
}

// drawSegment dots the straight line between two waypoints
func drawSegment(s tcell.Screen, a, b vmath.Vec3, style tcell.Style) {
	dist := vmath.V3Dist(a, b)
	steps := int(dist * 2)
	for i := 1; i < steps; i++ {
		p := vmath.V3Add(a, vmath.V3Scale(vmath.V3Sub(b, a), float64(i)/float64(steps)))
		x, y := project(p)
		s.SetContent(x, y, '.', nil, style)
	}
}

func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, r := range text {
		s.SetContent(x+i, y, r, nil, style)
	}
}

func (g *Game) run() {
	ticker := time.NewTicker(parameter.FrameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, parameter.InputQueueDepth)
	go func() {
		for {
			eventChan <- g.screen.PollEvent()
		}
	}()

	g.round.Start()

	for {
		select {
		case ev := <-eventChan:
			if !g.handleInput(ev) {
				return
			}

		case <-ticker.C:
			now := time.Now()
			dt := now.Sub(g.lastUpdate).Seconds()
			g.lastUpdate = now
			if dt > maxFrameDelta {
				dt = maxFrameDelta
			}

			if !g.paused {
				g.round.Tick(dt)
			}

			for _, ev := range g.round.Events().Drain() {
				if ev.Type == event.EventChaserCaught {
					g.captureFlashTime = time.Now()
					g.playCaptureSound()
				}
			}

			g.draw()
		}
	}
}

func (g *Game) cleanup() {
	if g.audioInit {
		speaker.Close()
	}
	g.screen.Fini()
}

func main() {
	seed := flag.Int64("seed", 0, "RNG seed, 0 for time-based")
	bounce := flag.Bool("bounce", false, "chasers ping-pong along routes instead of escaping")
	flag.Parse()

	game, err := NewGame(*seed, *bounce)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer game.cleanup()

	game.run()
}
