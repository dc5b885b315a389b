package audio

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"go-space-shooter/internal/defs"
	"go-space-shooter/internal/event"
)

const (
	sampleRate = beep.SampleRate(44100)
	// Выстрелы идут часто, одновременно звучит не больше maxVoices эффектов
	maxVoices = 16
)

// Player проигрывает звуки по событию SoundRequested.
// Без Init работает молча, это режим -mute и тестов.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

func NewPlayer(volume float64) *Player {
	return &Player{mixer: &beep.Mixer{}, volume: volume}
}

// Init открывает аудиоустройство.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("failed to init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	log.Println("Audio initialized")
	return nil
}

func (p *Player) SetVolume(v float64) {
	p.mu.Lock()
	p.volume = v
	p.mu.Unlock()
}

func (p *Player) Volume() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.volume
}

func (p *Player) Play(kind defs.SoundKind) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}
	s := Effect(kind, p.volume, sampleRate)
	if s == nil {
		return
	}
	speaker.Lock()
	if p.mixer.Len() < maxVoices {
		p.mixer.Add(s)
	}
	speaker.Unlock()
}

func (p *Player) OnEvent(e event.Event) {
	if e.Type != event.SoundRequested {
		return
	}
	if kind, ok := e.Data.(defs.SoundKind); ok {
		p.Play(kind)
	}
}

// Close глушит всё и освобождает устройство.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}
