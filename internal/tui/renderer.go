// Package tui рисует игру в терминале через tcell и переводит ввод в действия.
package tui

import (
	"fmt"
	"strings"

	"go-space-shooter/internal/component"
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/defs"
	"go-space-shooter/internal/entity"
	"go-space-shooter/internal/i18n"
	"go-space-shooter/internal/system"
	"go-space-shooter/internal/types"
	"go-space-shooter/internal/utils"

	"github.com/gdamore/tcell/v2"
)

// Строки экрана вне поля: сверху счёт и полоса босса, снизу здоровье и заряд.
const (
	topRows    = 2
	bottomRows = 2
)

var (
	styleDefault  = tcell.StyleDefault
	stylePlayer   = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	styleAlly     = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleSmall    = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleMedium   = tcell.StyleDefault.Foreground(tcell.ColorOrange)
	styleBoss     = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleSuper    = tcell.StyleDefault.Foreground(tcell.ColorFuchsia).Bold(true)
	styleShot     = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleHostile  = tcell.StyleDefault.Foreground(tcell.ColorLightCoral)
	styleDebuff   = tcell.StyleDefault.Foreground(tcell.ColorPurple)
	styleMissile  = tcell.StyleDefault.Foreground(tcell.ColorOrange).Bold(true)
	styleExplode  = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleHP       = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleHPLow    = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleBoom     = tcell.StyleDefault.Foreground(tcell.ColorOrange)
	styleDim      = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleHeadline = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
)

// Renderer переводит координаты поля в клетки терминала.
type Renderer struct {
	screen tcell.Screen
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// fieldSize - размер игрового поля в клетках.
func (r *Renderer) fieldSize() (int, int) {
	w, h := r.screen.Size()
	return w, max(1, h-topRows-bottomRows)
}

// ToCell переводит точку поля в клетку экрана.
func (r *Renderer) ToCell(x, y float64) (int, int) {
	cols, rows := r.fieldSize()
	cx := int(x / config.ScreenWidth * float64(cols))
	cy := int(y/config.ScreenHeight*float64(rows)) + topRows
	return cx, cy
}

// ToWorld переводит клетку в центр соответствующего участка поля.
func (r *Renderer) ToWorld(cx, cy int) (float64, float64) {
	cols, rows := r.fieldSize()
	x := (float64(cx) + 0.5) / float64(cols) * config.ScreenWidth
	y := (float64(cy-topRows) + 0.5) / float64(rows) * config.ScreenHeight
	return utils.Clamp(x, 0, config.ScreenWidth), utils.Clamp(y, 0, config.ScreenHeight)
}

// CellSize - размер одной клетки в координатах поля.
func (r *Renderer) CellSize() (float64, float64) {
	cols, rows := r.fieldSize()
	return config.ScreenWidth / float64(cols), config.ScreenHeight / float64(rows)
}

func (r *Renderer) put(x, y float64, ch rune, style tcell.Style) {
	cx, cy := r.ToCell(x, y)
	_, rows := r.fieldSize()
	w, _ := r.screen.Size()
	if cx < 0 || cx >= w || cy < topRows || cy >= topRows+rows {
		return
	}
	r.screen.SetContent(cx, cy, ch, nil, style)
}

// text пишет строку в клетках; диакритика убирается для узких терминалов.
func (r *Renderer) text(x, y int, s string, style tcell.Style) {
	for i, ch := range []rune(i18n.ASCII(s)) {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

func (r *Renderer) centered(y int, s string, style tcell.Style) {
	w, _ := r.screen.Size()
	s = i18n.ASCII(s)
	r.text((w-len([]rune(s)))/2, y, s, style)
}

// Draw рисует мир, интерфейс и текущий оверлей.
func (r *Renderer) Draw(w *entity.World, hud system.HUD, lang string, best int) {
	r.screen.Clear()
	r.drawWorld(w)
	r.drawHUD(hud, lang)

	sess := w.Session
	switch {
	case !sess.Started:
		r.drawMenu(lang, best)
	case sess.GameOver:
		r.drawGameOver(sess, lang)
	case sess.Paused:
		r.drawPause(hud, lang)
	}
	r.screen.Show()
}

func (r *Renderer) drawWorld(w *entity.World) {
	w.PowerUps.Each(func(_ types.EntityID, p *component.PowerUp) {
		r.put(p.X, p.Y, []rune(string(p.Type))[0], styleHeadline)
	})
	w.Bullets.Each(func(_ types.EntityID, b *component.Bullet) {
		ch, style := bulletGlyph(b)
		r.put(b.X, b.Y, ch, style)
	})
	w.Missiles.Each(func(_ types.EntityID, m *component.Missile) {
		r.put(m.X, m.Y, '^', styleMissile)
	})
	w.Enemies.Each(func(_ types.EntityID, e *component.Enemy) {
		ch, style := enemyGlyph(e)
		r.put(e.X, e.Y, ch, style)
	})
	if b := w.Boss; b != nil {
		style := styleBoss
		if b.Super {
			style = styleSuper
		}
		for x := b.X - b.Width/2; x <= b.X+b.Width/2; x += config.ScreenWidth / 80 {
			r.put(x, b.Y, 'M', style)
		}
	}
	for _, a := range w.Allies {
		r.put(a.X, a.Y, 'a', styleAlly)
	}
	w.Explosions.Each(func(_ types.EntityID, e *component.Explosion) {
		r.put(e.X, e.Y, '*', styleExplode)
	})
	p := w.Player
	style := stylePlayer
	if p.Shield > 0 {
		style = style.Reverse(true)
	}
	r.put(p.X, p.Y, 'A', style)
}

func bulletGlyph(b *component.Bullet) (rune, tcell.Style) {
	switch b.Kind {
	case component.BulletPlayer:
		if b.Ally {
			return '\'', styleAlly
		}
		return '|', styleShot
	case component.BulletDebuff:
		return '~', styleDebuff
	case component.BulletDowngrade:
		return '!', styleShot
	}
	return 'o', styleHostile
}

func enemyGlyph(e *component.Enemy) (rune, tcell.Style) {
	style := styleSmall
	ch := 'v'
	if e.Type == defs.EnemyMedium {
		style = styleMedium
		ch = 'V'
	}
	if e.Tank {
		ch = 'W'
	}
	if e.EntryShielded() {
		style = style.Dim(true)
	}
	return ch, style
}

func (r *Renderer) drawHUD(hud system.HUD, lang string) {
	w, h := r.screen.Size()
	r.text(0, 0, fmt.Sprintf("%s %s", i18n.T(lang, i18n.Score), utils.FormatNumber(float64(hud.Score))), styleHeadline)
	lvl := fmt.Sprintf("%s %d", i18n.T(lang, i18n.Lvl), hud.Level)
	r.text(w-len(lvl), 0, lvl, styleHeadline)

	if hud.Boss {
		style := styleBoss
		if hud.BossSuper {
			style = styleSuper
		}
		fraction := 0.0
		if hud.BossMaxHP > 0 {
			fraction = hud.BossHP / hud.BossMaxHP
		}
		r.text(0, 1, Bar(fraction, w), style)
	} else {
		next := fmt.Sprintf("%s %s", i18n.T(lang, i18n.NextBoss), utils.FormatNumber(float64(max(0, hud.NextBossScore-hud.Score))))
		r.centered(1, next, styleDim)
	}

	hpStyle := styleHP
	if hud.HPFraction < 0.3 {
		hpStyle = styleHPLow
	}
	hp := fmt.Sprintf(" %s/%s", utils.FormatNumber(hud.HP), utils.FormatNumber(hud.MaxHP))
	if hud.Shield > 0 {
		hp += fmt.Sprintf(" +%s", utils.FormatNumber(hud.Shield))
	}
	barWidth := max(0, w-len(hp))
	r.text(0, h-2, Bar(hud.HPFraction, barWidth), hpStyle)
	r.text(barWidth, h-2, hp, hpStyle)
	r.text(0, h-1, Bar(hud.BoomFraction, w), styleBoom)
}

// Bar рисует полосу заполнения из width символов.
func Bar(fraction float64, width int) string {
	if width <= 0 {
		return ""
	}
	filled := int(utils.Clamp(fraction, 0, 1) * float64(width))
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func (r *Renderer) drawMenu(lang string, best int) {
	_, h := r.screen.Size()
	mid := h / 2
	r.centered(mid-3, "VANGUARD", styleHeadline)
	r.centered(mid-1, fmt.Sprintf("%s: %d", i18n.T(lang, i18n.TopScore), best), styleDim)
	r.centered(mid+1, "[Space] "+i18n.T(lang, i18n.StartMission), styleHeadline)
	r.centered(mid+2, "[c] "+i18n.T(lang, i18n.ContinueMission), styleHeadline)
	r.centered(mid+4, i18n.T(lang, i18n.ControlHint), styleDim)
}

func (r *Renderer) drawPause(hud system.HUD, lang string) {
	_, h := r.screen.Size()
	y := h/2 - 5
	r.centered(y, i18n.T(lang, i18n.MissionPaused), styleHeadline)
	r.centered(y+1, i18n.T(lang, i18n.PauseHint), styleDim)
	for i, line := range statLines(hud.Stats) {
		r.centered(y+3+i, line, styleDefault)
	}
}

func (r *Renderer) drawGameOver(sess *component.Session, lang string) {
	_, h := r.screen.Size()
	mid := h / 2
	r.centered(mid-2, i18n.T(lang, i18n.MissionAborted), styleHPLow.Bold(true))
	r.centered(mid, fmt.Sprintf("%s: %d  %s: %d", i18n.T(lang, i18n.Score), sess.Score, i18n.T(lang, i18n.Level), sess.Level), styleDefault)
	r.centered(mid+2, "[Space] "+i18n.T(lang, i18n.TryAgain), styleHeadline)
}

func statLines(st system.Stats) []string {
	return []string{
		fmt.Sprintf("SPD %.1f/s x%d", st.ShotsPerSec, st.Rays),
		fmt.Sprintf("DMG %s  MULT x%.2f", utils.FormatNumber(st.FinalDamage), st.DamageMultiplier),
		fmt.Sprintf("ALLY %d%%  DEF %d%%  ENEMY %d", st.AllyDamagePercent, st.Protection, st.EnemyDamage),
	}
}
