package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime/debug"
	"time"

	"go-space-shooter/internal/app"
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/i18n"
	"go-space-shooter/internal/tui"
	"go-space-shooter/internal/utils"

	"github.com/gdamore/tcell/v2"
)

const frameInterval = 16 * time.Millisecond

func main() {
	cfg := app.RegisterFlags(flag.CommandLine)
	logPath := flag.String("log", "", "log file (terminal output is taken by the game)")
	flag.Parse()

	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("Failed to open log: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

	l, err := app.Launch(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to launch: %v\n", err)
		os.Exit(1)
	}
	defer l.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	// Терминал восстанавливается и при панике
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "CRASHED: %v\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	run(screen, l)
	screen.Fini()
	l.Game.Save()
}

func run(screen tcell.Screen, l *app.Launched) {
	game := l.Game
	renderer := tui.NewRenderer(screen)

	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	go func() {
		for {
			select {
			case <-quit:
				return
			default:
			}
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()
	defer close(quit)

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case ev := <-events:
			if !handle(tui.Translate(ev), l, renderer, screen) {
				return
			}
		case now := <-ticker.C:
			game.Tick(float64(now.Sub(last).Microseconds()) / 1000)
			last = now
			best := game.Store().LoadSettings().BestScore
			renderer.Draw(game.World(), game.HUD(), l.Settings.Language, best)
		}
	}
}

// handle применяет действие к игре. false - выход.
func handle(a tui.Action, l *app.Launched, renderer *tui.Renderer, screen tcell.Screen) bool {
	game := l.Game
	sess := game.World().Session
	switch a.Kind {
	case tui.ActionQuit:
		return false
	case tui.ActionResize:
		screen.Sync()
	case tui.ActionPointer:
		if sess.Started && !sess.GameOver {
			x, y := renderer.ToWorld(a.X, a.Y)
			game.SetPointer(x, y, false)
		}
	case tui.ActionMove:
		if sess.Started && !sess.GameOver {
			p := game.World().Player
			cw, ch := renderer.CellSize()
			x := utils.Clamp(p.TargetX+float64(a.X)*cw*2, 0, config.ScreenWidth)
			y := utils.Clamp(p.TargetY+float64(a.Y)*ch, 0, config.ScreenHeight)
			game.SetPointer(x, y, false)
		}
	case tui.ActionPause:
		game.TogglePause()
	case tui.ActionBoom:
		game.FireBoom()
	case tui.ActionStart:
		switch {
		case !sess.Started, sess.GameOver:
			game.NewSession()
		default:
			game.TogglePause()
		}
	case tui.ActionContinue:
		if !sess.Started {
			game.Continue()
		}
	case tui.ActionLanguage:
		if !sess.Started {
			s := l.Settings
			s.Language = i18n.Next(s.Language)
			l.ApplySettings(s)
		}
	}
	return true
}
