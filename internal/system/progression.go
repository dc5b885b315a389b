package system

import (
	"go-space-shooter/internal/defs"
	"go-space-shooter/internal/entity"
	"go-space-shooter/internal/event"
	"log"
	"math"
)

const backgroundWrap = 100000

// ProgressionSystem выводит сложность из счёта, выдаёт награды за уровень
// и перезаряжает ракетный залп.
type ProgressionSystem struct {
	world           *entity.World
	balance         *defs.Balance
	eventDispatcher *event.Dispatcher
}

func NewProgressionSystem(world *entity.World, balance *defs.Balance, eventDispatcher *event.Dispatcher) *ProgressionSystem {
	return &ProgressionSystem{world: world, balance: balance, eventDispatcher: eventDispatcher}
}

func (s *ProgressionSystem) Update(deltaTime float64) {
	sess := s.world.Session
	sess.Time += deltaTime

	s.refreshDifficulty()
	if sess.Level > sess.LastLevel {
		s.levelUp()
	}

	sess.BackgroundY += s.balance.Combat.ScrollSpeed * frames(deltaTime)
	if sess.BackgroundY > backgroundWrap {
		sess.BackgroundY = math.Mod(sess.BackgroundY, backgroundWrap/2)
	}

	if !sess.BoomCharged {
		sess.BoomTimer += deltaTime
		if sess.BoomTimer >= sess.BoomChargeMs {
			sess.BoomCharged = true
			sess.BoomTimer = 0
		}
	}
}

func (s *ProgressionSystem) refreshDifficulty() {
	sess := s.world.Session
	sess.Difficulty = 1 + float64(sess.Score)/s.balance.Director.DifficultyScore
	sess.Level = int(math.Floor(sess.Difficulty))
}

func (s *ProgressionSystem) levelUp() {
	sess := s.world.Session
	p := s.world.Player
	pb := s.balance.Player

	p.MaxHP += pb.LevelUpMaxHP
	p.Heal(pb.LevelUpHeal)
	for _, a := range s.world.Allies {
		a.MaxHP += s.balance.Ally.LevelUpMaxHP
		a.Heal(s.balance.Ally.LevelUpHeal)
	}

	sess.LastLevel = sess.Level
	log.Printf("Level up: %d (score %d)", sess.Level, sess.Score)
	playSound(s.eventDispatcher, defs.SoundLevelUp)
	s.eventDispatcher.Emit(event.LevelUp, sess.Level)
}

// EnforceInvariants зажимает HP и щит в допустимые границы.
func EnforceInvariants(w *entity.World) {
	p := w.Player
	if math.IsNaN(p.HP) || p.HP < 0 {
		p.HP = 0
	}
	if p.HP > p.MaxHP {
		p.HP = p.MaxHP
	}
	if math.IsNaN(p.Shield) || p.Shield < 0 {
		p.Shield = 0
	}
	for _, a := range w.Allies {
		if a.HP > a.MaxHP {
			a.HP = a.MaxHP
		}
	}
}
