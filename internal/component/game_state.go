package component

// StreakPenalty - уровень штрафа "усталости удачи".
type StreakPenalty int

const (
	PenaltyNone StreakPenalty = iota
	PenaltyHeavy
	PenaltyLight
)

// Session хранит состояние прогрессии одной игровой сессии.
type Session struct {
	Started  bool
	Paused   bool
	GameOver bool

	Score      int
	Difficulty float64
	Level      int
	LastLevel  int

	BossFight         bool
	BossCount         int
	NextBossScore     int
	AccumulatedBossHP float64

	// Усталость удачи и шанс редкого "U"
	UDropModifier float64
	BuffStreak    int
	StreakTimer   float64
	StreakPenalty StreakPenalty

	// Заряд ракетного залпа
	BoomCharged          bool
	BoomTimer            float64
	BoomChargeMs         float64
	MaxMissileBounces    int
	BoomDamageMultiplier float64
	// PendingBooms - задержки до запланированных залпов в мс
	PendingBooms []float64

	SpawnTimer  float64
	Shake       float64
	BackgroundY float64
	Time        float64
}

// BoomFraction возвращает степень заряда для индикатора.
func (s *Session) BoomFraction() float64 {
	if s.BoomCharged || s.BoomChargeMs <= 0 {
		return 1
	}
	f := s.BoomTimer / s.BoomChargeMs
	if f > 1 {
		return 1
	}
	return f
}
