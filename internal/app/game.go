// internal/app/game.go
package app

import (
	"errors"
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/defs"
	"go-space-shooter/internal/entity"
	"go-space-shooter/internal/event"
	"go-space-shooter/internal/storage"
	"go-space-shooter/internal/system"
	"go-space-shooter/internal/utils"
	"log"
)

// Options настраивает новую игру. Нулевые поля заменяются значениями по умолчанию.
type Options struct {
	Balance *defs.Balance
	// Seed для PRNG; 0 - текущее время
	Seed int64
	// Rand подменяет PRNG целиком (тесты)
	Rand  utils.Rand
	Store *storage.Store
}

// Game владеет миром и всеми системами и прогоняет конвейер кадра.
type Game struct {
	Balance         *defs.Balance
	EventDispatcher *event.Dispatcher
	Rng             utils.Rand

	world *entity.World
	store *storage.Store

	StatusEffectSystem *system.StatusEffectSystem
	ProgressionSystem  *system.ProgressionSystem
	LootSystem         *system.LootSystem
	MissileSystem      *system.MissileSystem
	DirectorSystem     *system.DirectorSystem
	PlayerSystem       *system.PlayerSystem
	MovementSystem     *system.MovementSystem
	EnemySystem        *system.EnemySystem
	AllySystem         *system.AllySystem
	BossSystem         *system.BossSystem
	VisualEffectSystem *system.VisualEffectSystem
	DefenseSystem      *system.DefenseSystem
	CombatSystem       *system.CombatSystem
	RewardSystem       *system.RewardSystem
	CleanupSystem      *system.CleanupSystem

	autosaveTimer float64
}

// NewGame собирает мир и системы. Игра ждёт NewSession или Continue.
func NewGame(opts Options) *Game {
	b := opts.Balance
	if b == nil {
		b = defs.DefaultBalance()
	}
	rng := opts.Rand
	if rng == nil {
		rng = utils.NewPRNGService(opts.Seed)
	}
	store := opts.Store
	if store == nil {
		store = storage.NewMemory()
	}

	w := entity.NewWorld(b)
	d := event.NewDispatcher()
	g := &Game{
		Balance:         b,
		EventDispatcher: d,
		Rng:             rng,
		world:           w,
		store:           store,
	}

	g.VisualEffectSystem = system.NewVisualEffectSystem(w, b, d)
	g.StatusEffectSystem = system.NewStatusEffectSystem(w)
	g.ProgressionSystem = system.NewProgressionSystem(w, b, d)
	g.PlayerSystem = system.NewPlayerSystem(w, b, d)
	g.MovementSystem = system.NewMovementSystem(w, b)
	g.EnemySystem = system.NewEnemySystem(w, b, rng)
	g.AllySystem = system.NewAllySystem(w, b)
	g.BossSystem = system.NewBossSystem(w, b, rng)
	g.DefenseSystem = system.NewDefenseSystem(w, b, d, g.VisualEffectSystem)
	g.MissileSystem = system.NewMissileSystem(w, b, d, rng, g.VisualEffectSystem)
	g.LootSystem = system.NewLootSystem(w, b, d, rng, g.PlayerSystem)
	g.DirectorSystem = system.NewDirectorSystem(w, b, d, rng, g.EnemySystem, g.BossSystem, g.MissileSystem)
	g.CombatSystem = system.NewCombatSystem(w, b, rng, g.VisualEffectSystem, g.EnemySystem, g.BossSystem, g.DefenseSystem, g.PlayerSystem)
	g.RewardSystem = system.NewRewardSystem(w, b, d, rng, g.VisualEffectSystem, g.LootSystem, g.EnemySystem)
	g.CleanupSystem = system.NewCleanupSystem(w)

	d.Subscribe(event.GameOver, &GameEventListener{game: g})
	return g
}

// Tick продвигает симуляцию на deltaTime миллисекунд.
// На паузе, до старта и после конца игры ничего не меняется.
func (g *Game) Tick(deltaTime float64) {
	sess := g.world.Session
	if !sess.Started || sess.Paused || sess.GameOver || deltaTime <= 0 {
		return
	}
	dt := min(deltaTime, config.MaxDeltaTimeMs)

	// 1. Прогрессия и таймеры
	g.StatusEffectSystem.Update(dt)
	g.LootSystem.Update(dt)
	g.ProgressionSystem.Update(dt)

	// 2. Залпы и появление врагов
	g.MissileSystem.UpdateBooms(dt)
	g.DirectorSystem.Update(dt)

	// 3. Движение и стрельба
	g.PlayerSystem.Update(dt)
	g.MovementSystem.Update(dt)
	g.EnemySystem.Update(dt)
	g.MissileSystem.Update(dt)
	g.AllySystem.Update(dt)
	g.BossSystem.Update(dt)
	g.VisualEffectSystem.Update(dt)

	// 4. Столкновения, затем награды
	g.CombatSystem.Update()
	g.LootSystem.Collect()
	g.RewardSystem.Update()

	// 5. Уборка
	g.CleanupSystem.Update()
	system.EnforceInvariants(g.world)

	if sess.GameOver {
		return
	}
	g.autosaveTimer += dt
	if g.autosaveTimer >= config.AutosaveIntervalMs {
		g.autosaveTimer = 0
		g.Save()
	}
}

// SetPointer задаёт абстрактную позицию указателя в координатах поля.
func (g *Game) SetPointer(x, y float64, touch bool) {
	g.PlayerSystem.SetTarget(x, y, touch)
}

// FireBoom запускает залп вручную, если заряд готов.
func (g *Game) FireBoom() bool {
	sess := g.world.Session
	if !sess.Started || sess.Paused || sess.GameOver {
		return false
	}
	return g.MissileSystem.FireVolley()
}

// TogglePause переключает паузу и сохраняет прогресс при входе в неё.
func (g *Game) TogglePause() bool {
	sess := g.world.Session
	if !sess.Started || sess.GameOver {
		return false
	}
	sess.Paused = !sess.Paused
	if sess.Paused {
		g.Save()
	}
	return sess.Paused
}

// NewSession начинает игру заново и стирает старое сохранение.
func (g *Game) NewSession() {
	g.world.Reset(g.Balance)
	g.world.Session.Started = true
	g.autosaveTimer = 0
	if err := g.store.ClearSession(); err != nil {
		log.Printf("Failed to clear save: %v", err)
	}
	log.Println("New session started")
}

// Continue восстанавливает сохранённую сессию. Без сохранения возвращает false.
func (g *Game) Continue() bool {
	save, err := g.store.LoadSession()
	if err != nil {
		if !errors.Is(err, storage.ErrNoSave) {
			log.Printf("Failed to load game: %v", err)
		}
		return false
	}
	g.world.Reset(g.Balance)
	applySave(g.world, g.Balance, save)
	g.world.Session.Started = true
	g.autosaveTimer = 0
	log.Printf("Session restored: score %d, level %d", save.GameState.Score, save.GameState.Level)
	return true
}

// HasSave сообщает, есть ли что продолжать.
func (g *Game) HasSave() bool {
	return g.store.HasSession()
}

// Save пишет снимок прогресса. Во время игры вызывается по таймеру.
func (g *Game) Save() {
	sess := g.world.Session
	if !sess.Started || sess.GameOver {
		return
	}
	if err := g.store.SaveSession(captureSave(g.world)); err != nil {
		log.Printf("Failed to save game: %v", err)
	}
	g.recordBest()
}

func (g *Game) recordBest() {
	sess := g.world.Session
	if _, err := g.store.RecordBest(sess.Score, sess.Level); err != nil {
		log.Printf("Failed to record best score: %v", err)
	}
}

// World отдаёт мир для отрисовки. Рендереры его только читают.
func (g *Game) World() *entity.World {
	return g.world
}

func (g *Game) Store() *storage.Store {
	return g.store
}

func (g *Game) Stats() system.Stats {
	return system.ComputeStats(g.world, g.Balance)
}

func (g *Game) HUD() system.HUD {
	return system.ComputeHUD(g.world, g.Balance)
}

func (g *Game) Perks() []system.Perk {
	return system.ComputePerks(g.world, g.Balance)
}

// GameEventListener обрабатывает события, важные для основного игрового цикла.
type GameEventListener struct {
	game *Game
}

func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.GameOver:
		if err := l.game.store.ClearSession(); err != nil {
			log.Printf("Failed to clear save: %v", err)
		}
		l.game.recordBest()
	}
}
