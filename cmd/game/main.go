// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"time"

	"go-space-shooter/internal/app"
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

// Update передаёт в машину состояний dt в миллисекундах. Ограничение
// длинных кадров делает сама игра.
func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := float64(now.Sub(a.lastUpdateTime).Microseconds()) / 1000
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	cfg := app.RegisterFlags(flag.CommandLine)
	flag.Parse()

	l, err := app.Launch(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer l.Close()

	shared, err := state.NewShared(l)
	if err != nil {
		log.Fatal(err)
	}

	sm := state.NewStateMachine() // Создаём машину состояний
	sm.SetState(state.NewMenuState(sm, shared))
	game := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Space Shooter")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
	l.Game.Save()
}
