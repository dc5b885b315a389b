// internal/state/settings_state.go
package state

import (
	"fmt"
	"math"

	"go-space-shooter/internal/config"
	"go-space-shooter/internal/i18n"
	"go-space-shooter/internal/render"
	"go-space-shooter/internal/storage"
	"go-space-shooter/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const volumeStep = 0.1

// SettingsState - язык, громкость, качество графики и сброс данных.
type SettingsState struct {
	sm       *StateMachine
	shared   *Shared
	language *ui.MenuButton
	sfx      *ui.MenuButton
	bgm      *ui.MenuButton
	graphics *ui.MenuButton
	reset    *ui.MenuButton
	back     *ui.MenuButton
	guard    clickGuard
}

func NewSettingsState(sm *StateMachine, shared *Shared) *SettingsState {
	cx := float32(config.ScreenWidth / 2)
	return &SettingsState{
		sm:       sm,
		shared:   shared,
		language: ui.NewMenuButton(cx, 300, 380, 52, "", config.BarBackColor),
		sfx:      ui.NewMenuButton(cx, 368, 380, 52, "", config.BarBackColor),
		bgm:      ui.NewMenuButton(cx, 436, 380, 52, "", config.BarBackColor),
		graphics: ui.NewMenuButton(cx, 504, 380, 52, "", config.BarBackColor),
		reset:    ui.NewMenuButton(cx, 600, 380, 52, "", config.HPBarLowColor),
		back:     ui.NewMenuButton(cx, 700, 200, 52, "<", config.PlayerColor),
	}
}

func (s *SettingsState) Enter() {
	s.refresh()
}

// refresh обновляет подписи под текущие настройки.
func (s *SettingsState) refresh() {
	st := s.shared.Settings
	lang := st.Language
	s.language.Text = fmt.Sprintf("%s: %s", i18n.T(lang, i18n.Language), languageName(lang))
	s.sfx.Text = fmt.Sprintf("%s: %d%%", i18n.T(lang, i18n.SFXVolume), percent(st.SFXVolume))
	s.bgm.Text = fmt.Sprintf("%s: %d%%", i18n.T(lang, i18n.BGMVolume), percent(st.BGMVolume))
	quality := i18n.T(lang, i18n.High)
	if st.Graphics == storage.GraphicsLow {
		quality = i18n.T(lang, i18n.Low)
	}
	s.graphics.Text = fmt.Sprintf("%s: %s", i18n.T(lang, i18n.GraphicsQuality), quality)
	s.reset.Text = i18n.T(lang, i18n.ResetData)
}

func (s *SettingsState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.sm.SetState(NewMenuState(s.sm, s.shared))
		return
	}
	x, y, ok := justClicked()
	if !ok || !s.guard.allow() {
		return
	}

	st := s.shared.Settings
	switch {
	case s.language.IsClicked(x, y):
		st.Language = i18n.Next(st.Language)
	case s.sfx.IsClicked(x, y):
		st.SFXVolume = cycleVolume(st.SFXVolume)
	case s.bgm.IsClicked(x, y):
		st.BGMVolume = cycleVolume(st.BGMVolume)
	case s.graphics.IsClicked(x, y):
		if st.Graphics == storage.GraphicsHigh {
			st.Graphics = storage.GraphicsLow
		} else {
			st.Graphics = storage.GraphicsHigh
		}
	case s.reset.IsClicked(x, y):
		s.shared.ResetData()
		s.shared.Renderer.Quality = render.ParseQuality(s.shared.Settings.Graphics)
		s.refresh()
		return
	case s.back.IsClicked(x, y):
		s.sm.SetState(NewMenuState(s.sm, s.shared))
		return
	default:
		return
	}
	s.shared.ApplySettings(st)
	s.shared.Renderer.Quality = render.ParseQuality(st.Graphics)
	s.refresh()
}

func (s *SettingsState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	ui.DrawTextCentered(screen, i18n.T(s.shared.Lang(), i18n.SettingsTitle), s.shared.TitleFace, config.ScreenWidth/2, 220, config.TextLightColor)
	cursorX, cursorY := ebiten.CursorPosition()
	for _, b := range []*ui.MenuButton{s.language, s.sfx, s.bgm, s.graphics, s.reset, s.back} {
		b.Draw(screen, s.shared.SmallFace, cursorX, cursorY)
	}
}

func (s *SettingsState) Exit() {}

// cycleVolume увеличивает громкость шагом 10% и после 100% возвращается к 10%.
func cycleVolume(v float64) float64 {
	next := math.Round((v+volumeStep)*10) / 10
	if next > 1 {
		return volumeStep
	}
	return next
}

func percent(v float64) int {
	return int(math.Round(v * 100))
}

func languageName(lang string) string {
	if lang == i18n.EN {
		return "English"
	}
	return "Tiếng Việt"
}
