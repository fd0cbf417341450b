// internal/ui/app.go
//
// The ebiten run loop. ebiten calls Update and Draw on one goroutine:
//   - Update polls input and forwards it to the session.
//   - Draw clears the frame, renders the board, the score overlay and, once
//     the game is won, the win banner. ebiten presents the frame.
//
// Layout fixes the logical screen at 600x600, so cursor positions arrive
// already mapped from window pixels to board coordinates.

package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/robalobadob/pexeso/internal/assets"
	"github.com/robalobadob/pexeso/internal/game"
	"github.com/robalobadob/pexeso/internal/session"
)

// Screen constants, in logical units.
const (
	ScreenWidth  = 600
	ScreenHeight = 600
	WindowTitle  = "Pexeso Game"

	hudX    = 50
	scoreY  = 34
	footerY = 575
	bannerX = 180
	bannerY = 300 // baseline; the banner's top edge sits near y=250
)

// App adapts a Session to ebiten.Game. Fonts are owned by the caller and
// must outlive the run loop.
type App struct {
	session *session.Session
	fonts   *assets.Fonts
}

// New wires a session to the loaded fonts.
func New(s *session.Session, fonts *assets.Fonts) *App {
	return &App{session: s, fonts: fonts}
}

// Run opens the window and blocks until it is closed or Esc is pressed.
func Run(a *App, scale float64) error {
	ebiten.SetWindowSize(int(ScreenWidth*scale), int(ScreenHeight*scale))
	ebiten.SetWindowTitle(WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(a)
}

func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		a.session.NewGame()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		a.session.NextTheme()
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		a.session.Click(game.Point{X: float64(x), Y: float64(y)})
	}
	return nil
}

func (a *App) Draw(screen *ebiten.Image) {
	th := a.session.Theme()
	surf := imageSurface{dst: screen}

	screen.Fill(th.Background)
	a.session.Board().Render(surf, a.fonts.Label, th.Cards)

	surf.Text(a.session.Score(), a.fonts.HUD, hudX, scoreY, th.HUD)
	surf.Text(a.session.Footer(), a.fonts.HUD, hudX, footerY, th.HUD)

	if banner := a.session.Banner(); banner != "" {
		surf.Text(banner, a.fonts.Banner, bannerX, bannerY, th.Banner)
	}
}

func (a *App) Layout(_, _ int) (int, int) {
	return ScreenWidth, ScreenHeight
}
