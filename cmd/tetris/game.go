package main

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/psavva/tetris"
	"github.com/psavva/tetris/debugui"
	debugui_ebiten "github.com/psavva/tetris/debugui/ebiten"
)

// Horizontal key repeat in ticks, tuned to feel like a 200ms delay with a
// 50ms interval at 60 TPS.
const (
	repeatDelay    = 12
	repeatInterval = 3
)

// App drives a tetris session as an ebiten.Game.
type App struct {
	session  *tetris.Game
	renderer *Renderer
	speaker  *Speaker // nil when muted

	overlay *debugui.Overlay // nil unless the debug overlay is enabled
	timer   *debugui.FrameTimer
	backend debugui_ebiten.ImguiBackend
}

func NewApp(cfg tetris.Config, cellSize int, sound bool) (*App, error) {
	app := &App{
		renderer: NewRenderer(cfg.BoardWidth, cfg.BoardHeight, cellSize),
	}

	if sound {
		app.speaker = NewSpeaker()
		cfg.Hooks = tetris.Hooks{
			PieceLocked:   app.speaker.PlayLock,
			RowsCompleted: func([]int) { app.speaker.PlayClear() },
		}
	}

	session, err := tetris.NewGame(cfg)
	if err != nil {
		return nil, err
	}
	app.session = session

	return app, nil
}

// WindowSize returns the pixel size of the board plus the side panel.
func (a *App) WindowSize() (int, int) {
	return a.renderer.Size()
}

// EnableDebugOverlay creates the ImGui backend and window. Call before
// ebiten.RunGame; the backend owns window creation when the overlay is on.
func (a *App) EnableDebugOverlay(title string, w, h int) {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, w, h)
	imgui.CurrentIO().SetIniFilename("") // Disable imgui.ini

	a.backend = debugui_ebiten.ImguiBackend{EbitenBackend: backend}
	a.overlay = debugui.NewOverlay(120)
	a.timer = debugui.NewFrameTimer()
}

func (a *App) Update() error {
	if a.overlay != nil {
		a.backend.BeginFrame()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	suppressKeys := false
	if a.overlay != nil {
		if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
			a.overlay.Visible = !a.overlay.Visible
		}
		suppressKeys = debugui.CurrentInputState().WantCaptureKeyboard
	}

	if !suppressKeys {
		a.handleInput()
	}

	a.session.Tick()

	if a.overlay != nil {
		a.overlay.Render(a.session.Snapshot(), a.session.Stats(), a.timer.GetDeltaTime())
		a.backend.EndFrame()
	}

	return nil
}

func (a *App) handleInput() {
	if keyRepeated(ebiten.KeyLeft) {
		a.session.MoveLeft()
	}
	if keyRepeated(ebiten.KeyRight) {
		a.session.MoveRight()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		a.session.RotateCW()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		a.session.SoftDrop(true)
	}
	if inpututil.IsKeyJustReleased(ebiten.KeyDown) {
		a.session.SoftDrop(false)
	}
}

// keyRepeated fires on the initial press and then at a fixed cadence while
// the key stays held.
func keyRepeated(key ebiten.Key) bool {
	d := inpututil.KeyPressDuration(key)
	if d == 1 {
		return true
	}
	return d >= repeatDelay && (d-repeatDelay)%repeatInterval == 0
}

func (a *App) Draw(screen *ebiten.Image) {
	a.renderer.Draw(screen, a.session.Snapshot())

	if a.overlay != nil {
		a.backend.Draw(screen)
	}
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if a.overlay != nil {
		a.backend.Layout(outsideWidth, outsideHeight)
	}
	return a.renderer.Size()
}
