// cmd/rlgame/main.go
package main

import (
	"flag"
	"log"
	"strconv"

	"go-space-shooter/internal/app"
	"go-space-shooter/internal/component"
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/defs"
	"go-space-shooter/internal/i18n"
	"go-space-shooter/internal/render/shape"
	"go-space-shooter/internal/types"
	"go-space-shooter/internal/ui/rlui"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func main() {
	cfg := app.RegisterFlags(flag.CommandLine)
	flag.Parse()

	l, err := app.Launch(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer l.Close()

	rl.InitWindow(config.ScreenWidth, config.ScreenHeight, "Space Shooter | raylib")
	rl.SetTargetFPS(60)
	rl.SetExitKey(rl.KeyNull)
	defer rl.CloseWindow()

	font := rl.GetFontDefault()
	hud := rlui.NewHUD()
	start := rlui.NewButtonRL(rl.NewRectangle(config.ScreenWidth/2-130, 520, 260, 56), "", font, rlui.ColorToRL(config.AllyColor))
	cont := rlui.NewButtonRL(rl.NewRectangle(config.ScreenWidth/2-130, 596, 260, 56), "", font, rlui.ColorToRL(config.PlayerColor))
	retry := rlui.NewButtonRL(rl.NewRectangle(config.ScreenWidth/2-130, 560, 260, 56), "", font, rlui.ColorToRL(config.EnemyMediumColor))

	game := l.Game
	for !rl.WindowShouldClose() {
		lang := l.Settings.Language
		sess := game.World().Session
		mouse := rl.GetMousePosition()

		start.Text = i18n.ASCII(i18n.T(lang, i18n.StartMission))
		cont.Text = i18n.ASCII(i18n.T(lang, i18n.ContinueMission))
		retry.Text = i18n.ASCII(i18n.T(lang, i18n.TryAgain))
		cont.Disabled = !game.HasSave()

		// --- Обновление (логика) ---
		switch {
		case !sess.Started:
			if start.IsClicked(mouse) || rl.IsKeyPressed(rl.KeySpace) {
				game.NewSession()
			} else if cont.IsClicked(mouse) {
				game.Continue()
			}
		case sess.GameOver:
			if retry.IsClicked(mouse) || rl.IsKeyPressed(rl.KeySpace) {
				game.NewSession()
			}
		default:
			if rl.IsKeyPressed(rl.KeySpace) || rl.IsKeyPressed(rl.KeyEscape) || rl.IsMouseButtonPressed(rl.MouseRightButton) ||
				(hud.Pause.IsClicked(mouse) && rl.IsMouseButtonPressed(rl.MouseLeftButton)) {
				game.TogglePause()
				hud.Pause.Pulse()
			} else if hud.Boom.IsClicked(mouse) && rl.IsMouseButtonPressed(rl.MouseLeftButton) || rl.IsKeyPressed(rl.KeyB) {
				if game.FireBoom() {
					hud.Boom.Fired()
				}
			} else if rl.IsMouseButtonDown(rl.MouseLeftButton) || rl.GetTouchPointCount() > 0 {
				game.SetPointer(float64(mouse.X), float64(mouse.Y), rl.GetTouchPointCount() > 0)
			}
			game.Tick(float64(rl.GetFrameTime()) * 1000)
		}

		// --- Отрисовка ---
		rl.BeginDrawing()
		rl.ClearBackground(rlui.ColorToRL(config.BackgroundColor))

		drawWorld(game)
		switch {
		case !sess.Started:
			drawMenu(l, start, cont, mouse)
		case sess.GameOver:
			hud.Draw(game.HUD(), lang, false)
			drawOverlay(i18n.T(lang, i18n.MissionAborted), rl.Red)
			retry.Draw(mouse)
		default:
			hud.Draw(game.HUD(), lang, sess.Paused)
			if sess.Paused {
				drawOverlay(i18n.T(lang, i18n.MissionPaused), rl.White)
				hint := i18n.T(lang, i18n.PauseHint)
				rlui.DrawLabel(hint, (config.ScreenWidth-rlui.MeasureLabel(hint, 20))/2, config.ScreenHeight/2+40, 20, rl.LightGray)
			}
		}

		rl.EndDrawing()
	}
	game.Save()
}

func drawMenu(l *app.Launched, start, cont *rlui.ButtonRL, mouse rl.Vector2) {
	lang := l.Settings.Language
	title := "VANGUARD"
	rlui.DrawLabel(title, (config.ScreenWidth-rlui.MeasureLabel(title, 56))/2, 240, 56, rlui.ColorToRL(config.PlayerColor))

	best := l.Game.Store().LoadSettings()
	lines := []string{
		i18n.T(lang, i18n.PersonalBest),
		i18n.T(lang, i18n.TopScore) + ": " + strconv.Itoa(best.BestScore),
		i18n.T(lang, i18n.MaxLevel) + ": " + strconv.Itoa(best.BestLevel),
	}
	for i, line := range lines {
		rlui.DrawLabel(line, (config.ScreenWidth-rlui.MeasureLabel(line, 20))/2, 340+int32(i)*28, 20, rl.LightGray)
	}
	start.Draw(mouse)
	cont.Draw(mouse)
	hint := i18n.T(lang, i18n.ControlHint)
	rlui.DrawLabel(hint, (config.ScreenWidth-rlui.MeasureLabel(hint, 16))/2, 700, 16, rl.Gray)
}

func drawOverlay(title string, c rl.Color) {
	rl.DrawRectangle(0, 0, config.ScreenWidth, config.ScreenHeight, rl.NewColor(0, 0, 0, 150))
	rlui.DrawLabel(title, (config.ScreenWidth-rlui.MeasureLabel(title, 36))/2, config.ScreenHeight/2-20, 36, c)
}

func drawWorld(game *app.Game) {
	w := game.World()
	w.PowerUps.Each(func(_ types.EntityID, p *component.PowerUp) {
		c := rlui.ColorToRL(config.PowerUpColors[string(p.Type)])
		rl.DrawCircleLines(int32(p.X), int32(p.Y), float32(p.Radius), c)
		rl.DrawText(string(p.Type), int32(p.X)-5, int32(p.Y)-9, 18, c)
	})
	w.Bullets.Each(func(_ types.EntityID, b *component.Bullet) {
		rl.DrawCircleV(rl.NewVector2(float32(b.X), float32(b.Y)), float32(b.Radius), bulletColor(b))
	})
	w.Missiles.Each(func(_ types.EntityID, m *component.Missile) {
		rl.DrawCircleV(rl.NewVector2(float32(m.X), float32(m.Y)), 4, rlui.ColorToRL(config.MissileColor))
	})
	w.Enemies.Each(func(_ types.EntityID, e *component.Enemy) {
		c := config.EnemySmallColor
		if e.Type != defs.EnemySmall {
			c = config.EnemyMediumColor
		}
		fillPolygon(shape.Ship(e.X, e.Y, e.Width, e.Height, 0, true), rlui.ColorToRL(c))
	})
	if b := w.Boss; b != nil {
		c := config.BossColor
		if b.Super {
			c = config.SuperBossColor
		}
		fillPolygon(shape.Boss(b.X, b.Y, b.Width, b.Height), rlui.ColorToRL(c))
	}
	for _, a := range w.Allies {
		fillPolygon(shape.Ship(a.X, a.Y, a.Width, a.Height, 0, false), rlui.ColorToRL(config.AllyColor))
	}
	p := w.Player
	if p.Shield > 0 {
		rl.DrawCircleV(rl.NewVector2(float32(p.X), float32(p.Y)), float32(p.Width*0.75+6), rlui.ColorToRL(config.ShieldColor))
	}
	fillPolygon(shape.Ship(p.X, p.Y, p.Width, p.Height, p.Tilt, false), rlui.ColorToRL(config.PlayerColor))
	w.Explosions.Each(func(_ types.EntityID, e *component.Explosion) {
		alpha := float32(e.Alpha())
		rl.DrawCircleV(rl.NewVector2(float32(e.X), float32(e.Y)), 10+(1-alpha)*30, rl.ColorAlpha(rlui.ColorToRL(config.ExplosionColor), alpha))
	})
}

func bulletColor(b *component.Bullet) rl.Color {
	switch b.Kind {
	case component.BulletPlayer:
		if b.Ally {
			return rlui.ColorToRL(config.AllyColor)
		}
		return rlui.ColorToRL(config.TierColors[max(0, min(b.Tier, len(config.TierColors)-1))])
	case component.BulletDebuff:
		if b.Cyan {
			return rlui.ColorToRL(config.CyanDebuffColor)
		}
		return rlui.ColorToRL(config.DebuffColor)
	case component.BulletDowngrade:
		return rlui.ColorToRL(config.DowngradeColor)
	}
	return rlui.ColorToRL(config.EnemyBulletColor)
}

// fillPolygon рисует многоугольник веером от первой вершины.
// raylib ждёт вершины против часовой стрелки, порядок выравнивается для каждого треугольника.
func fillPolygon(points []shape.Point, c rl.Color) {
	if len(points) < 3 {
		return
	}
	a := toVec(points[0])
	for i := 1; i+1 < len(points); i++ {
		b, d := toVec(points[i]), toVec(points[i+1])
		if (b.X-a.X)*(d.Y-a.Y)-(b.Y-a.Y)*(d.X-a.X) > 0 {
			b, d = d, b
		}
		rl.DrawTriangle(a, b, d, c)
	}
}

func toVec(p shape.Point) rl.Vector2 {
	return rl.NewVector2(float32(p.X), float32(p.Y))
}
