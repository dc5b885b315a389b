// internal/state/game_state.go
package state

import (
	"fmt"
	"image/color"

	"go-space-shooter/internal/config"
	"go-space-shooter/internal/i18n"
	"go-space-shooter/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var overlayColor = color.RGBA{0, 0, 0, 160}

// GameState - идущая миссия. Конец игры рисуется поверх поля.
type GameState struct {
	sm      *StateMachine
	shared  *Shared
	retry   *ui.MenuButton
	guard   clickGuard
	lastX   int
	lastY   int
	pointed bool
}

func NewGameState(sm *StateMachine, shared *Shared) *GameState {
	return &GameState{
		sm:     sm,
		shared: shared,
		retry:  ui.NewMenuButton(config.ScreenWidth/2, 560, 260, 56, "", config.EnemyMediumColor),
	}
}

func (g *GameState) Enter() {
	g.retry.Text = i18n.T(g.shared.Lang(), i18n.TryAgain)
}

func (g *GameState) Update(deltaTime float64) {
	game := g.shared.Game
	sess := game.World().Session

	if sess.GameOver {
		g.updateGameOver()
		return
	}

	if pausePressed() {
		if game.TogglePause() {
			g.sm.SetState(NewPauseState(g.sm, g.shared, g))
		}
		return
	}

	if x, y, ok := justClicked(); ok && g.shared.HUD.BoomBar().Contains(x, y) {
		game.FireBoom()
	} else if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		game.FireBoom()
	}

	// Курсор задаёт цель только когда сдвинулся, чтобы касание не перебивалось
	x, y, touch := pointer()
	if insideScreen(x, y) && (touch || !g.pointed || x != g.lastX || y != g.lastY) {
		game.SetPointer(float64(x), float64(y), touch)
		g.lastX, g.lastY, g.pointed = x, y, true
	}

	game.Tick(deltaTime)
}

func (g *GameState) updateGameOver() {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.restart()
		return
	}
	if x, y, ok := justClicked(); ok && g.guard.allow() && g.retry.IsClicked(x, y) {
		g.restart()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.sm.SetState(NewMenuState(g.sm, g.shared))
	}
}

func (g *GameState) restart() {
	g.shared.Game.NewSession()
	g.pointed = false
}

func (g *GameState) Draw(screen *ebiten.Image) {
	game := g.shared.Game
	g.shared.Renderer.Draw(screen, game.World())
	g.shared.HUD.Draw(screen, game.HUD(), g.shared.Lang())

	if game.World().Session.GameOver {
		g.drawGameOver(screen)
	}
}

func (g *GameState) drawGameOver(screen *ebiten.Image) {
	lang := g.shared.Lang()
	sess := g.shared.Game.World().Session
	cx := config.ScreenWidth / 2

	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, overlayColor, false)
	ui.DrawTextCentered(screen, i18n.T(lang, i18n.MissionAborted), g.shared.TitleFace, cx, 380, config.HPBarLowColor)
	ui.DrawTextCentered(screen, fmt.Sprintf("%s: %d", i18n.T(lang, i18n.Score), sess.Score), g.shared.Face, cx, 440, config.TextLightColor)
	ui.DrawTextCentered(screen, fmt.Sprintf("%s: %d", i18n.T(lang, i18n.Level), sess.Level), g.shared.Face, cx, 472, config.TextLightColor)

	cursorX, cursorY := ebiten.CursorPosition()
	g.retry.Draw(screen, g.shared.Face, cursorX, cursorY)
}

func (g *GameState) Exit() {}
