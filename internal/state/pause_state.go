// internal/state/pause_state.go
package state

import (
	"fmt"

	"go-space-shooter/internal/config"
	"go-space-shooter/internal/i18n"
	"go-space-shooter/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState рисует замороженную игру, список перков и статистику.
// Симуляция не тикает: игра сама стоит на паузе.
type PauseState struct {
	sm            *StateMachine
	shared        *Shared
	previousState State
	resume        *ui.MenuButton
	guard         clickGuard
}

func NewPauseState(sm *StateMachine, shared *Shared, prevState State) *PauseState {
	return &PauseState{
		sm:            sm,
		shared:        shared,
		previousState: prevState,
		resume:        ui.NewMenuButton(config.ScreenWidth/2, 760, 260, 56, "", config.AllyColor),
	}
}

func (s *PauseState) Enter() {
	s.resume.Text = i18n.T(s.shared.Lang(), i18n.Resume)
}

func (s *PauseState) Update(deltaTime float64) {
	unpause := pausePressed()
	if x, y, ok := justClicked(); ok && s.guard.allow() && s.resume.IsClicked(x, y) {
		unpause = true
	}
	if unpause {
		s.shared.Game.TogglePause()
		s.sm.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	if s.previousState != nil {
		s.previousState.Draw(screen)
	}
	lang := s.shared.Lang()
	cx := config.ScreenWidth / 2

	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, overlayColor, false)
	ui.DrawTextCentered(screen, i18n.T(lang, i18n.MissionPaused), s.shared.TitleFace, cx, 200, config.TextLightColor)
	ui.DrawTextCentered(screen, i18n.T(lang, i18n.PauseHint), s.shared.SmallFace, cx, 232, config.TextLightColor)

	y := 300
	ui.DrawTextCentered(screen, i18n.T(lang, i18n.Perks), s.shared.Face, cx, y, config.CritColor)
	for _, p := range s.shared.Game.Perks() {
		y += 24
		ui.DrawTextCentered(screen, fmt.Sprintf("%s  %s", p.Name, p.Detail), s.shared.SmallFace, cx, y, config.TextLightColor)
	}

	y += 48
	ui.DrawTextCentered(screen, i18n.T(lang, i18n.Stats), s.shared.Face, cx, y, config.CritColor)
	for _, line := range ui.StatLines(s.shared.Game.Stats()) {
		y += 24
		ui.DrawTextCentered(screen, line, s.shared.SmallFace, cx, y, config.TextLightColor)
	}

	cursorX, cursorY := ebiten.CursorPosition()
	s.resume.Draw(screen, s.shared.Face, cursorX, cursorY)
}

func (s *PauseState) Exit() {}
