// internal/render/renderer.go
package render

import (
	"image/color"
	"math"

	"go-space-shooter/internal/component"
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/defs"
	"go-space-shooter/internal/entity"
	"go-space-shooter/internal/render/shape"
	"go-space-shooter/internal/types"
	"go-space-shooter/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	starCount     = 90
	starSeed      = 7
	starfieldStep = 0.5 // звёзды движутся медленнее фона
)

// Renderer рисует мир поверх предрендеренного звёздного неба.
// Мир он только читает.
type Renderer struct {
	fillImg  *ebiten.Image
	fillVs   []ebiten.Vertex
	fillIs   []uint16
	canvas   *ebiten.Image
	starsImg *ebiten.Image
	fontFace font.Face
	shakeRng utils.Rand
	Quality  Quality
}

func NewRenderer(fontFace font.Face, quality Quality) *Renderer {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)

	r := &Renderer{
		fillImg:  fillImg,
		fillVs:   make([]ebiten.Vertex, 0, 16),
		fillIs:   make([]uint16, 0, 16),
		canvas:   ebiten.NewImage(config.ScreenWidth, config.ScreenHeight),
		starsImg: ebiten.NewImage(config.ScreenWidth, config.ScreenHeight),
		fontFace: fontFace,
		shakeRng: utils.NewPRNGService(0),
		Quality:  quality,
	}
	r.renderStars()
	return r
}

// renderStars рисует звёзды один раз; в кадре изображение только сдвигается.
func (r *Renderer) renderStars() {
	r.starsImg.Clear()
	for _, s := range shape.Stars(starCount, starSeed) {
		c := WithAlpha(config.TextLightColor, s.Alpha)
		vector.DrawFilledCircle(r.starsImg, float32(s.X), float32(s.Y), float32(s.Size), c, true)
	}
}

// Draw рисует кадр. На низком качестве нет звёзд, свечения и тряски.
func (r *Renderer) Draw(screen *ebiten.Image, w *entity.World) {
	r.canvas.Fill(config.BackgroundColor)
	if r.Quality == QualityHigh {
		r.drawStars(w.Session.BackgroundY)
	}

	w.PowerUps.Each(func(_ types.EntityID, p *component.PowerUp) { r.drawPowerUp(p) })
	w.Bullets.Each(func(_ types.EntityID, b *component.Bullet) { r.drawBullet(b) })
	w.Missiles.Each(func(_ types.EntityID, m *component.Missile) { r.drawMissile(m) })
	w.Enemies.Each(func(_ types.EntityID, e *component.Enemy) { r.drawEnemy(e) })
	if w.Boss != nil {
		r.drawBoss(w.Boss)
	}
	for _, a := range w.Allies {
		r.drawAlly(a)
	}
	r.drawPlayer(w.Player)
	w.Explosions.Each(func(_ types.EntityID, e *component.Explosion) { r.drawExplosion(e) })
	w.DamageNumbers.Each(func(_ types.EntityID, d *component.DamageNumber) { r.drawDamageNumber(d) })

	op := &ebiten.DrawImageOptions{}
	if r.Quality == QualityHigh {
		dx, dy := shape.ShakeOffset(w.Session.Shake, r.shakeRng)
		op.GeoM.Translate(dx, dy)
	}
	screen.DrawImage(r.canvas, op)
}

func (r *Renderer) drawStars(scroll float64) {
	y := math.Mod(scroll*starfieldStep, config.ScreenHeight)
	for _, offset := range []float64{y - config.ScreenHeight, y} {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(0, offset)
		r.canvas.DrawImage(r.starsImg, op)
	}
}

// fillPolygon заливает многоугольник через DrawTriangles.
func (r *Renderer) fillPolygon(points []shape.Point, c color.RGBA) {
	if len(points) < 3 {
		return
	}
	path := vector.Path{}
	path.MoveTo(float32(points[0].X), float32(points[0].Y))
	for _, p := range points[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()

	r.fillVs, r.fillIs = path.AppendVerticesAndIndicesForFilling(r.fillVs[:0], r.fillIs[:0])
	for i := range r.fillVs {
		r.fillVs[i].ColorR = float32(c.R) / 255
		r.fillVs[i].ColorG = float32(c.G) / 255
		r.fillVs[i].ColorB = float32(c.B) / 255
		r.fillVs[i].ColorA = float32(c.A) / 255
	}
	r.canvas.DrawTriangles(r.fillVs, r.fillIs, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

func (r *Renderer) drawPlayer(p *component.Player) {
	if p.Shield > 0 {
		radius := float32(math.Max(p.Width, p.Height)*0.75 + 6)
		vector.DrawFilledCircle(r.canvas, float32(p.X), float32(p.Y), radius, config.ShieldColor, true)
	}
	c := config.PlayerColor
	if p.SlowTimer > 0 {
		c = Lerp(c, config.DebuffColor, 0.5)
	}
	r.fillPolygon(shape.Ship(p.X, p.Y, p.Width, p.Height, p.Tilt, false), c)
	if p.ImmunityTimer > 0 {
		vector.StrokeCircle(r.canvas, float32(p.X), float32(p.Y), float32(p.Width*0.7), 2, config.CritColor, true)
	}
}

func (r *Renderer) drawAlly(a *component.Ally) {
	r.fillPolygon(shape.Ship(a.X, a.Y, a.Width, a.Height, 0, false), config.AllyColor)
	r.drawHealthBar(a.X, a.Y+a.Height/2+4, a.Width, a.HP/a.MaxHP)
}

func (r *Renderer) drawEnemy(e *component.Enemy) {
	c := config.EnemySmallColor
	if e.Type != defs.EnemySmall {
		c = config.EnemyMediumColor
	}
	if e.Tank {
		c = Lerp(c, config.EnemyTankTint, 0.5)
	}
	r.fillPolygon(shape.Ship(e.X, e.Y, e.Width, e.Height, 0, true), c)
	if e.EntryShielded() {
		vector.StrokeCircle(r.canvas, float32(e.X), float32(e.Y), float32(e.Width*0.7), 2, config.EntryShieldColor, true)
	}
	if e.HP < e.MaxHP {
		r.drawHealthBar(e.X, e.Y-e.Height/2-6, e.Width, e.HPFraction())
	}
}

func (r *Renderer) drawBoss(b *component.Boss) {
	c := config.BossColor
	if b.Super {
		c = config.SuperBossColor
	}
	r.fillPolygon(shape.Boss(b.X, b.Y, b.Width, b.Height), c)
	if b.Protected() {
		vector.StrokeCircle(r.canvas, float32(b.X), float32(b.Y), float32(b.Width*0.6), 3, config.EntryShieldColor, true)
	}
}

func (r *Renderer) drawBullet(b *component.Bullet) {
	c := bulletColor(b)
	radius := float32(b.Radius)
	if r.Quality == QualityHigh && b.Kind != component.BulletPlayer {
		vector.DrawFilledCircle(r.canvas, float32(b.X), float32(b.Y), radius*2, WithAlpha(c, 0.3), true)
	}
	vector.DrawFilledCircle(r.canvas, float32(b.X), float32(b.Y), radius, c, true)
}

func bulletColor(b *component.Bullet) color.RGBA {
	switch b.Kind {
	case component.BulletPlayer:
		if b.Ally {
			return config.AllyColor
		}
		return config.TierColors[max(0, min(b.Tier, len(config.TierColors)-1))]
	case component.BulletDebuff:
		if b.Cyan {
			return config.CyanDebuffColor
		}
		return config.DebuffColor
	case component.BulletDowngrade:
		return config.DowngradeColor
	}
	return config.EnemyBulletColor
}

func (r *Renderer) drawMissile(m *component.Missile) {
	tailX := m.X - math.Cos(m.Angle)*14
	tailY := m.Y - math.Sin(m.Angle)*14
	vector.StrokeLine(r.canvas, float32(tailX), float32(tailY), float32(m.X), float32(m.Y), 4, config.MissileColor, true)
	vector.DrawFilledCircle(r.canvas, float32(m.X), float32(m.Y), 3, config.CritColor, true)
}

func (r *Renderer) drawPowerUp(p *component.PowerUp) {
	c, ok := config.PowerUpColors[string(p.Type)]
	if !ok {
		c = config.TextLightColor
	}
	vector.DrawFilledCircle(r.canvas, float32(p.X), float32(p.Y), float32(p.Radius), DarkenColor(c), true)
	vector.StrokeCircle(r.canvas, float32(p.X), float32(p.Y), float32(p.Radius), 2, c, true)
	r.drawCentered(string(p.Type), p.X, p.Y, config.TextLightColor)
}

func (r *Renderer) drawExplosion(e *component.Explosion) {
	alpha := e.Alpha()
	radius := float32(10 + (1-alpha)*30)
	vector.DrawFilledCircle(r.canvas, float32(e.X), float32(e.Y), radius, WithAlpha(config.ExplosionColor, alpha), true)
}

func (r *Renderer) drawDamageNumber(d *component.DamageNumber) {
	c := config.TextLightColor
	label := utils.FormatNumber(d.Amount)
	if d.Crit {
		c = config.CritColor
		label += "!"
	}
	r.drawCentered(label, d.X, d.Y, WithAlpha(c, d.Alpha()))
}

func (r *Renderer) drawHealthBar(x, y, width, fraction float64) {
	fraction = utils.Clamp(fraction, 0, 1)
	left := float32(x - width/2)
	vector.DrawFilledRect(r.canvas, left, float32(y), float32(width), 3, config.BarBackColor, false)
	c := config.HPBarColor
	if fraction < 0.3 {
		c = config.HPBarLowColor
	}
	vector.DrawFilledRect(r.canvas, left, float32(y), float32(width*fraction), 3, c, false)
}

func (r *Renderer) drawCentered(label string, x, y float64, c color.Color) {
	if r.fontFace == nil {
		return
	}
	bounds := text.BoundString(r.fontFace, label)
	tx := int(x) - bounds.Dx()/2
	ty := int(y) + bounds.Dy()/2
	text.Draw(r.canvas, label, r.fontFace, tx, ty, c)
}
