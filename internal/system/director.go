package system

import (
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/defs"
	"go-space-shooter/internal/entity"
	"go-space-shooter/internal/event"
	"go-space-shooter/internal/utils"
	"log"
	"math"
)

// DirectorSystem решает, когда появляются враги и когда начинается бой с боссом.
type DirectorSystem struct {
	world           *entity.World
	balance         *defs.Balance
	eventDispatcher *event.Dispatcher
	rng             utils.Rand
	enemies         *EnemySystem
	bosses          *BossSystem
	missiles        *MissileSystem
}

func NewDirectorSystem(world *entity.World, balance *defs.Balance, eventDispatcher *event.Dispatcher, rng utils.Rand,
	enemies *EnemySystem, bosses *BossSystem, missiles *MissileSystem) *DirectorSystem {
	return &DirectorSystem{
		world:           world,
		balance:         balance,
		eventDispatcher: eventDispatcher,
		rng:             rng,
		enemies:         enemies,
		bosses:          bosses,
		missiles:        missiles,
	}
}

// SpawnInterval - текущий интервал между попытками появления врагов.
func (s *DirectorSystem) SpawnInterval() float64 {
	db := s.balance.Director
	score := s.world.Session.Score
	base := db.SpawnBaseMs
	if score >= db.FastScore {
		base = db.SpawnFastMs
	}
	return math.Max(db.MinSpawnMs, base-float64(score)/db.ScoreDivisor)
}

// MobCap - сколько врагов может быть на экране одновременно.
func (s *DirectorSystem) MobCap() int {
	db := s.balance.Director
	sess := s.world.Session
	if sess.BossFight {
		return db.BossMobCap
	}
	return db.MobCapBase + (sess.Score/db.MobCapScoreStep)%db.MobCapCycle
}

func (s *DirectorSystem) Update(deltaTime float64) {
	db := s.balance.Director
	sess := s.world.Session

	sess.SpawnTimer += deltaTime
	if sess.SpawnTimer > s.SpawnInterval() {
		if s.world.Enemies.Len() < s.MobCap() {
			if sess.BossFight {
				if s.rng.Float64() < db.BossMinionChance {
					s.enemies.Spawn(s.randomX(), db.SpawnY, defs.EnemyMedium, false)
				}
			} else if s.rng.Float64() < db.SpawnChance {
				s.spawnEnemy()
			}
		}
		sess.SpawnTimer = 0
	}

	if !sess.BossFight && sess.Score >= sess.NextBossScore {
		s.StartBossFight()
	}
}

func (s *DirectorSystem) randomX() float64 {
	m := s.balance.Director.SpawnMarginX
	return m + s.rng.Float64()*(config.ScreenWidth-2*m)
}

// spawnEnemy выбирает тип: в начале почти всегда мелкие.
func (s *DirectorSystem) spawnEnemy() {
	db := s.balance.Director
	sess := s.world.Session
	threshold := db.SmallBiasEarly
	if sess.Level > 1 {
		threshold = math.Max(db.SmallBiasFloor, 1-sess.Difficulty*db.SmallBiasSlope)
	}
	t := defs.EnemyMedium
	if s.rng.Float64() < threshold {
		t = defs.EnemySmall
	}
	s.enemies.Spawn(s.randomX(), db.SpawnY, t, false)
}

// StartBossFight даёт игроку стартовые баффы, выпускает сопровождение
// и создаёт босса.
func (s *DirectorSystem) StartBossFight() {
	fs := s.balance.Boss.FightStart
	db := s.balance.Director
	sess := s.world.Session
	p := s.world.Player

	sess.BossFight = true
	p.ImmunityTimer = fs.ImmunityMs
	p.HasteTimer = fs.HasteMs
	s.missiles.ScheduleVolleys(fs.BoomVolleys, fs.BoomVolleyGapMs)

	p.Shield = math.Max(p.Shield, fs.ShieldFlat+p.MaxHP*fs.ShieldFraction)
	for i := 0; i < fs.AllyGrant; i++ {
		if len(s.world.Allies) < fs.AllyGrantBelow {
			s.world.AddAlly(s.balance.Ally.HPRatio)
		}
	}

	minions := min(fs.MinionCap, fs.MinionBase+sess.Level)
	for i := 0; i < minions; i++ {
		x := s.randomX()
		s.enemies.Spawn(x, db.SpawnY-s.rng.Float64()*fs.MinionSpreadY, defs.EnemyMedium, false)
	}

	b := s.bosses.Spawn()
	log.Printf("Boss %d spawned (super=%v, hp=%.0f) at score %d", sess.BossCount+1, b.Super, b.MaxHP, sess.Score)
	s.eventDispatcher.Emit(event.BossSpawned, event.BossData{Index: sess.BossCount, Super: b.Super, MaxHP: b.MaxHP})
}
