package event

import "go-space-shooter/internal/defs"

const (
	SoundRequested   EventType = "SoundRequested"   // Data: defs.SoundKind
	EnemyKilled      EventType = "EnemyKilled"      // Data: EnemyKilledData
	BossSpawned      EventType = "BossSpawned"      // Data: BossData
	BossDefeated     EventType = "BossDefeated"     // Data: BossData
	PowerUpCollected EventType = "PowerUpCollected" // Data: defs.PowerUpType
	LevelUp          EventType = "LevelUp"          // Data: int, новый уровень
	TierChanged      EventType = "TierChanged"      // Data: int, новый тир
	AllyLost         EventType = "AllyLost"
	GameOver         EventType = "GameOver" // Data: GameOverData
)

type EnemyKilledData struct {
	Type  defs.EnemyType
	X, Y  float64
	Score int
}

type BossData struct {
	Index int
	Super bool
	MaxHP float64
}

type GameOverData struct {
	Score int
	Level int
}

// Recorder складывает все события по порядку; используется в тестах и отладке.
type Recorder struct {
	Events []Event
}

func (r *Recorder) OnEvent(e Event) {
	r.Events = append(r.Events, e)
}

// Count возвращает число записанных событий данного типа.
func (r *Recorder) Count(t EventType) int {
	n := 0
	for _, e := range r.Events {
		if e.Type == t {
			n++
		}
	}
	return n
}

// Sounds возвращает запрошенные звуки по порядку.
func (r *Recorder) Sounds() []defs.SoundKind {
	var out []defs.SoundKind
	for _, e := range r.Events {
		if e.Type == SoundRequested {
			if k, ok := e.Data.(defs.SoundKind); ok {
				out = append(out, k)
			}
		}
	}
	return out
}
