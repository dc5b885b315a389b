// internal/state/menu_state.go
package state

import (
	"fmt"

	"go-space-shooter/internal/config"
	"go-space-shooter/internal/i18n"
	"go-space-shooter/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// MenuState - главное меню: новая игра, продолжение, настройки и рекорды.
type MenuState struct {
	sm       *StateMachine
	shared   *Shared
	start    *ui.MenuButton
	cont     *ui.MenuButton
	settings *ui.MenuButton
	guard    clickGuard
}

func NewMenuState(sm *StateMachine, shared *Shared) *MenuState {
	cx := float32(config.ScreenWidth / 2)
	return &MenuState{
		sm:       sm,
		shared:   shared,
		start:    ui.NewMenuButton(cx, 520, 300, 56, "", config.AllyColor),
		cont:     ui.NewMenuButton(cx, 592, 300, 56, "", config.PlayerColor),
		settings: ui.NewMenuButton(cx, 664, 300, 56, "", config.BarBackColor),
	}
}

func (m *MenuState) Enter() {
	lang := m.shared.Lang()
	m.start.Text = i18n.T(lang, i18n.StartMission)
	m.cont.Text = i18n.T(lang, i18n.ContinueMission)
	m.settings.Text = i18n.T(lang, i18n.SettingsTitle)
	m.cont.Disabled = !m.shared.Game.HasSave()
}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		m.startNew()
		return
	}
	x, y, ok := justClicked()
	if !ok || !m.guard.allow() {
		return
	}
	switch {
	case m.start.IsClicked(x, y):
		m.startNew()
	case m.cont.IsClicked(x, y):
		if m.shared.Game.Continue() {
			m.sm.SetState(NewGameState(m.sm, m.shared))
		}
	case m.settings.IsClicked(x, y):
		m.sm.SetState(NewSettingsState(m.sm, m.shared))
	}
}

func (m *MenuState) startNew() {
	m.shared.Game.NewSession()
	m.sm.SetState(NewGameState(m.sm, m.shared))
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	lang := m.shared.Lang()
	cx := config.ScreenWidth / 2

	ui.DrawTextCentered(screen, "VANGUARD", m.shared.TitleFace, cx, 260, config.PlayerColor)

	best := m.shared.Game.Store().LoadSettings()
	ui.DrawTextCentered(screen, i18n.T(lang, i18n.PersonalBest), m.shared.Face, cx, 350, config.CritColor)
	ui.DrawTextCentered(screen, fmt.Sprintf("%s: %d", i18n.T(lang, i18n.TopScore), best.BestScore), m.shared.SmallFace, cx, 380, config.TextLightColor)
	ui.DrawTextCentered(screen, fmt.Sprintf("%s: %d", i18n.T(lang, i18n.MaxLevel), best.BestLevel), m.shared.SmallFace, cx, 404, config.TextLightColor)

	cursorX, cursorY := ebiten.CursorPosition()
	m.start.Draw(screen, m.shared.Face, cursorX, cursorY)
	m.cont.Draw(screen, m.shared.Face, cursorX, cursorY)
	m.settings.Draw(screen, m.shared.Face, cursorX, cursorY)

	ui.DrawTextCentered(screen, i18n.T(lang, i18n.ControlHint), m.shared.SmallFace, cx, 780, config.TextLightColor)
}

func (m *MenuState) Exit() {}
