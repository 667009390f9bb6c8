// Package gui previews motif scenes in a native raylib window.
package gui

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"honnef.co/go/curve"

	"github.com/Shashwat-deb/finmotif/internal/anim"
	"github.com/Shashwat-deb/finmotif/internal/motif"
	"github.com/Shashwat-deb/finmotif/internal/surface"
)

// HUD colors, kept away from the scene palettes so the overlay reads
// the same over every background.
var (
	colHUD    = rl.NewColor(180, 180, 180, 255)
	colHUDDim = rl.NewColor(110, 110, 110, 255)
)

const resizeDelay = 250 * time.Millisecond

// App owns one scene and its pacing state inside a raylib window.
type App struct {
	sc    motif.Scene
	clock anim.Clock

	throttle *anim.Throttle
	debounce *anim.Debouncer
	surf     surface.Surface

	frame    motif.Frame
	elapsed  time.Duration
	lastTick time.Time
	running  bool
	hidden   bool
	dirty    bool
	frames   int

	font rl.Font
}

func NewApp(sc motif.Scene) *App {
	return &App{
		sc:       sc,
		clock:    anim.SystemClock{},
		throttle: anim.NewThrottle(sc.FrameInterval()),
		debounce: anim.NewDebouncer(resizeDelay),
		running:  true,
		dirty:    true,
		font:     rl.GetFontDefault(),
	}
}

// Run opens a resizable window sized to (width, height) and previews
// the scene until the window closes or Q is pressed.
func Run(sc motif.Scene, width, height float64, fps int) {
	if fps <= 0 {
		fps = 60
	}
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(width), int32(height), "finmotif")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(fps))
	rl.SetExitKey(0)

	app := NewApp(sc)
	app.fit()
	app.RunLoop()
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		if !a.update() {
			return
		}
		a.draw()
	}
}

// fit re-derives the surface from the current window and display.
func (a *App) fit() {
	parent := curve.Sz(float64(rl.GetScreenWidth()), float64(rl.GetScreenHeight()))
	dpi := rl.GetWindowScaleDPI()
	a.surf = surface.Fit(parent, float64(dpi.X), a.sc.MaxPixelRatio())
	a.dirty = true
}

func (a *App) update() bool {
	now := a.clock.Now()

	if rl.IsKeyPressed(rl.KeyQ) {
		return false
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		a.running = !a.running
		if a.running {
			a.lastTick = now
			a.throttle.Reset(now)
		}
	}
	if rl.IsKeyPressed(rl.KeyR) {
		a.sc.Reset()
		a.elapsed = 0
		a.frames = 0
		a.dirty = true
		a.lastTick = now
		a.throttle.Reset(now)
	}

	if rl.IsWindowResized() {
		a.debounce.Bump(now)
	}
	if a.debounce.Fire(now) {
		a.fit()
	}

	if rl.IsWindowMinimized() {
		a.hidden = true
		return true
	}
	if a.hidden {
		// No catch-up burst after restore.
		a.hidden = false
		a.lastTick = now
		a.throttle.Reset(now)
	}

	if !a.running {
		a.lastTick = now
		return true
	}
	if !a.lastTick.IsZero() {
		a.elapsed += now.Sub(a.lastTick)
	}
	a.lastTick = now

	if a.sc.Finished() && !a.dirty {
		return true
	}
	if !a.throttle.Accept(now) {
		return true
	}
	a.frame = a.sc.Step(a.surf.Logical, a.elapsed)
	a.frames++
	a.dirty = false
	return true
}

func (a *App) draw() {
	rl.BeginDrawing()
	rl.ClearBackground(toRaylib(a.frame.Background))
	a.drawFrame(a.frame)
	a.drawHUD()
	rl.EndDrawing()
}

func (a *App) drawHUD() {
	a.drawText("finmotif", 20, 16, 20, colHUD)
	a.drawText(fmt.Sprintf(":: %s", a.sc.Name()), 110, 19, 14, colHUDDim)

	status := "RUNNING"
	switch {
	case !a.running:
		status = "PAUSED"
	case a.sc.Finished():
		status = "DONE"
	}
	a.drawText(status, float32(rl.GetScreenWidth()-100), 16, 14, colHUD)

	bw, bh := a.surf.Buffer()
	footer := fmt.Sprintf("%d FPS  %dx%d @%.1fx", rl.GetFPS(), bw, bh, a.surf.Scale)
	a.drawText(footer, 20, float32(rl.GetScreenHeight()-28), 12, colHUDDim)
	a.drawText("[SPACE] PAUSE  [R] RESTART  [Q] QUIT",
		float32(rl.GetScreenWidth()-320), float32(rl.GetScreenHeight()-28), 12, colHUDDim)
}

func (a *App) drawText(text string, x, y, size float32, color rl.Color) {
	rl.DrawTextEx(a.font, text, rl.NewVector2(x, y), size, 1, color)
}
