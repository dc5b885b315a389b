// internal/app/launch.go
package app

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"go-space-shooter/internal/audio"
	"go-space-shooter/internal/defs"
	"go-space-shooter/internal/event"
	"go-space-shooter/internal/storage"
)

const storeFile = "store.json"

// LaunchConfig - общие флаги всех фронтендов.
type LaunchConfig struct {
	DataDir     string
	BalancePath string
	Seed        int64
	Mute        bool
}

// RegisterFlags добавляет флаги запуска в набор fs.
func RegisterFlags(fs *flag.FlagSet) *LaunchConfig {
	cfg := &LaunchConfig{}
	fs.StringVar(&cfg.DataDir, "data", DefaultDataDir(), "directory for settings and saves (empty keeps them in memory)")
	fs.StringVar(&cfg.BalancePath, "balance", "", "JSON file with balance overrides")
	fs.Int64Var(&cfg.Seed, "seed", 0, "random seed (0 = time based)")
	fs.BoolVar(&cfg.Mute, "mute", false, "disable sound")
	return cfg
}

// DefaultDataDir - каталог в пользовательской конфигурации, либо рабочий каталог.
func DefaultDataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	return filepath.Join(dir, "go-space-shooter")
}

// Launched - собранная игра со звуком и настройками.
type Launched struct {
	Game     *Game
	Audio    *audio.Player
	Settings storage.Settings
}

// Launch открывает хранилище, загружает баланс и собирает игру со звуком.
// Ошибка аудио не фатальна: игра идёт без звука.
func Launch(cfg *LaunchConfig) (*Launched, error) {
	storePath := ""
	if cfg.DataDir != "" {
		storePath = filepath.Join(cfg.DataDir, storeFile)
	}
	store, err := storage.Open(storePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	balance, err := defs.LoadBalance(cfg.BalancePath)
	if err != nil {
		return nil, err
	}

	settings := store.LoadSettings()
	game := NewGame(Options{Balance: balance, Seed: cfg.Seed, Store: store})

	player := audio.NewPlayer(settings.SFXVolume)
	if !cfg.Mute {
		if err := player.Init(); err != nil {
			log.Printf("Sound disabled: %v", err)
		}
	}
	game.EventDispatcher.Subscribe(event.SoundRequested, player)

	log.Printf("Game ready: data %q, language %s, graphics %s", cfg.DataDir, settings.Language, settings.Graphics)
	return &Launched{Game: game, Audio: player, Settings: settings}, nil
}

// ApplySettings сохраняет настройки и применяет громкость эффектов.
func (l *Launched) ApplySettings(st storage.Settings) {
	l.Settings = st
	l.Audio.SetVolume(st.SFXVolume)
	if err := l.Game.Store().SaveSettings(st); err != nil {
		log.Printf("Failed to save settings: %v", err)
	}
}

// ResetData стирает все данные и возвращает настройки по умолчанию.
func (l *Launched) ResetData() {
	if err := l.Game.Store().Clear(); err != nil {
		log.Printf("Failed to reset data: %v", err)
	}
	l.ApplySettings(storage.DefaultSettings())
	log.Println("All game data reset")
}

// Close останавливает звук.
func (l *Launched) Close() {
	l.Audio.Close()
}
