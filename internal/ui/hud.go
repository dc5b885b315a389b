// internal/ui/hud.go
package ui

import (
	"fmt"
	"image/color"

	"go-space-shooter/internal/config"
	"go-space-shooter/internal/i18n"
	"go-space-shooter/internal/system"
	"go-space-shooter/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	hudMargin      = 16
	hpBarHeight    = 18
	boomBarHeight  = 8
	bossBarHeight  = 12
	miniStatsWidth = 150
)

var statsPanelColor = color.RGBA{15, 23, 42, 160}

// HUD рисует верхнюю строку, полосы здоровья, заряда и босса и мини-статистику.
type HUD struct {
	face      font.Face
	smallFace font.Face
	hpBar     *StatBar
	boomBar   *StatBar
	bossBar   *StatBar
}

func NewHUD(face, smallFace font.Face) *HUD {
	barWidth := float32(config.ScreenWidth - hudMargin*2)
	bottom := float32(config.ScreenHeight - hudMargin)
	return &HUD{
		face:      face,
		smallFace: smallFace,
		hpBar:     NewStatBar(hudMargin, bottom-hpBarHeight-boomBarHeight-6, barWidth, hpBarHeight, config.BarBackColor),
		boomBar:   NewStatBar(hudMargin, bottom-boomBarHeight, barWidth, boomBarHeight, config.BarBackColor),
		bossBar:   NewStatBar(hudMargin, 56, barWidth, bossBarHeight, config.BarBackColor),
	}
}

// BoomBar отдаёт полосу заряда: клик по ней запускает залп.
func (h *HUD) BoomBar() *StatBar {
	return h.boomBar
}

func (h *HUD) Draw(screen *ebiten.Image, hud system.HUD, lang string) {
	h.drawTopLine(screen, hud, lang)
	if hud.Boss {
		h.drawBossBar(screen, hud)
	}
	h.drawMiniStats(screen, hud.Stats)

	hpColor := config.HPBarColor
	if hud.HPFraction < 0.3 {
		hpColor = config.HPBarLowColor
	}
	label := fmt.Sprintf("%s / %s", utils.FormatNumber(hud.HP), utils.FormatNumber(hud.MaxHP))
	if hud.Shield > 0 {
		label += fmt.Sprintf("  +%s", utils.FormatNumber(hud.Shield))
	}
	h.hpBar.Draw(screen, hud.HPFraction, hpColor, label, h.smallFace)

	boomColor := config.BoomBarColor
	if !hud.BoomCharged {
		boomColor = color.RGBA{boomColor.R / 2, boomColor.G / 2, boomColor.B / 2, boomColor.A}
	}
	h.boomBar.Draw(screen, hud.BoomFraction, boomColor, "", nil)
}

func (h *HUD) drawTopLine(screen *ebiten.Image, hud system.HUD, lang string) {
	y := hudMargin + h.face.Metrics().Ascent.Ceil()
	left := fmt.Sprintf("%s %s", i18n.T(lang, i18n.Score), utils.FormatNumber(float64(hud.Score)))
	DrawText(screen, left, h.face, hudMargin, y, config.TextLightColor)

	right := fmt.Sprintf("%s %d", i18n.T(lang, i18n.Lvl), hud.Level)
	DrawText(screen, right, h.face, config.ScreenWidth-hudMargin-TextWidth(h.face, right), y, config.TextLightColor)

	if !hud.Boss {
		remaining := max(0, hud.NextBossScore-hud.Score)
		next := fmt.Sprintf("%s %s", i18n.T(lang, i18n.NextBoss), utils.FormatNumber(float64(remaining)))
		nextColor := config.BossColor
		if hud.NextBossSuper {
			nextColor = config.SuperBossColor
		}
		DrawTextCentered(screen, next, h.smallFace, config.ScreenWidth/2, y+h.smallFace.Metrics().Height.Ceil()+4, nextColor)
	}
}

func (h *HUD) drawBossBar(screen *ebiten.Image, hud system.HUD) {
	fill := config.BossColor
	if hud.BossSuper {
		fill = config.SuperBossColor
	}
	fraction := 0.0
	if hud.BossMaxHP > 0 {
		fraction = hud.BossHP / hud.BossMaxHP
	}
	label := utils.FormatNumber(hud.BossHP)
	if hud.BossProtected {
		label += " *"
	}
	h.bossBar.Draw(screen, fraction, fill, label, h.smallFace)
}

func (h *HUD) drawMiniStats(screen *ebiten.Image, st system.Stats) {
	lines := StatLines(st)
	lineHeight := h.smallFace.Metrics().Height.Ceil()
	height := lineHeight*len(lines) + 8
	x := float32(config.ScreenWidth - hudMargin - miniStatsWidth)
	y := float32(80)
	vector.DrawFilledRect(screen, x, y, miniStatsWidth, float32(height), statsPanelColor, false)
	for i, line := range lines {
		DrawText(screen, line, h.smallFace, int(x)+6, int(y)+4+lineHeight*(i+1)-3, config.TextLightColor)
	}
}

// StatLines форматирует мини-статистику. Используется и терминальным интерфейсом.
func StatLines(st system.Stats) []string {
	return []string{
		fmt.Sprintf("SPD %.1f/s x%d", st.ShotsPerSec, st.Rays),
		fmt.Sprintf("DMG %s", utils.FormatNumber(st.FinalDamage)),
		fmt.Sprintf("MULT x%.2f", st.DamageMultiplier),
		fmt.Sprintf("ALLY %d%%", st.AllyDamagePercent),
		fmt.Sprintf("DEF %d%%", st.Protection),
		fmt.Sprintf("ENEMY %d", st.EnemyDamage),
	}
}
