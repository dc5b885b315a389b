// internal/ui/rlui/hud.go
package rlui

import (
	"fmt"

	"go-space-shooter/internal/config"
	"go-space-shooter/internal/i18n"
	"go-space-shooter/internal/system"
	"go-space-shooter/internal/utils"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// HUD собирает виджеты raylib-интерфейса. Стандартный шрифт raylib
// знает только ASCII, поэтому строки проходят через i18n.ASCII.
type HUD struct {
	Health *PlayerHealthIndicator
	Boom   *BoomIndicatorRL
	Pause  *PauseButtonRL
}

func NewHUD() *HUD {
	health := NewPlayerHealthIndicator(0, config.ScreenHeight-40)
	health.Position.X = (config.ScreenWidth - health.Width()) / 2
	return &HUD{
		Health: health,
		Boom:   NewBoomIndicatorRL(config.ScreenWidth-50, config.ScreenHeight-110, 28),
		Pause:  NewPauseButtonRL(config.ScreenWidth-40, 100, 12, config.TextLightColor, config.AllyColor),
	}
}

func (h *HUD) Draw(hud system.HUD, lang string, paused bool) {
	score := fmt.Sprintf("%s %s", i18n.T(lang, i18n.Score), utils.FormatNumber(float64(hud.Score)))
	DrawLabel(score, 16, 16, 24, rl.White)
	lvl := fmt.Sprintf("%s %d", i18n.T(lang, i18n.Lvl), hud.Level)
	DrawLabel(lvl, config.ScreenWidth-16-MeasureLabel(lvl, 24), 16, 24, rl.White)

	if hud.Boss {
		h.drawBossBar(hud)
	} else {
		next := fmt.Sprintf("%s %s", i18n.T(lang, i18n.NextBoss), utils.FormatNumber(float64(max(0, hud.NextBossScore-hud.Score))))
		c := ColorToRL(config.BossColor)
		if hud.NextBossSuper {
			c = ColorToRL(config.SuperBossColor)
		}
		DrawLabel(next, (config.ScreenWidth-MeasureLabel(next, 18))/2, 48, 18, c)
	}

	for i, line := range statLines(hud.Stats) {
		DrawLabel(line, 16, 80+int32(i)*18, 16, rl.LightGray)
	}

	h.Health.Draw(hud.HP, hud.MaxHP, hud.Shield)
	h.Boom.Draw(hud.BoomFraction, hud.BoomCharged, config.BoomBarColor)
	h.Pause.Draw(paused)
}

func (h *HUD) drawBossBar(hud system.HUD) {
	const x, y, height = 16, 48, 12
	width := float32(config.ScreenWidth - 32)
	fraction := 0.0
	if hud.BossMaxHP > 0 {
		fraction = clampFraction(hud.BossHP / hud.BossMaxHP)
	}
	fill := ColorToRL(config.BossColor)
	if hud.BossSuper {
		fill = ColorToRL(config.SuperBossColor)
	}
	rl.DrawRectangleRec(rl.NewRectangle(x, y, width, height), ColorToRL(config.BarBackColor))
	rl.DrawRectangleRec(rl.NewRectangle(x, y, width*float32(fraction), height), fill)
	outline := rl.White
	if hud.BossProtected {
		outline = ColorToRL(config.EntryShieldColor)
	}
	rl.DrawRectangleLinesEx(rl.NewRectangle(x, y, width, height), 1, outline)
}

func statLines(st system.Stats) []string {
	return []string{
		fmt.Sprintf("SPD %.1f/s x%d", st.ShotsPerSec, st.Rays),
		fmt.Sprintf("DMG %s", utils.FormatNumber(st.FinalDamage)),
		fmt.Sprintf("DEF %d%%", st.Protection),
	}
}

// DrawLabel рисует строку стандартным шрифтом.
func DrawLabel(s string, x, y, size int32, c rl.Color) {
	rl.DrawText(i18n.ASCII(s), x, y, size, c)
}

func MeasureLabel(s string, size int32) int32 {
	return rl.MeasureText(i18n.ASCII(s), size)
}
