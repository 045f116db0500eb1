package ebiten_test

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/psavva/tetris"
	"github.com/psavva/tetris/debugui"
	debugui_ebiten "github.com/psavva/tetris/debugui/ebiten"
)

// Game implements ebiten.Game and layers the debug overlay over a session.
type Game struct {
	session *tetris.Game
	overlay *debugui.Overlay
	timer   *debugui.FrameTimer
	backend debugui_ebiten.ImguiBackend
}

func (g *Game) Update() error {
	// Begin ImGui frame before advancing the session
	g.backend.BeginFrame()

	g.session.Tick()
	g.overlay.Render(g.session.Snapshot(), g.session.Stats(), g.timer.GetDeltaTime())

	// End ImGui frame after all widgets are submitted
	g.backend.EndFrame()

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	// Draw game content to screen
	// ...

	// Draw ImGui overlay on top
	g.backend.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.backend.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func Example() {
	// Create Ebiten window and ImGui backend
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow("Tetris Debug Overlay", 1280, 720)
	imgui.CurrentIO().SetIniFilename("") // Disable imgui.ini

	session, err := tetris.NewGame(tetris.DefaultConfig())
	if err != nil {
		panic(err)
	}

	game := &Game{
		session: session,
		overlay: debugui.NewOverlay(120),
		timer:   debugui.NewFrameTimer(),
		backend: debugui_ebiten.ImguiBackend{EbitenBackend: backend},
	}

	if err := ebiten.RunGame(game); err != nil {
		panic(err)
	}
}
