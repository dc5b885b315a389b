package defs

// DamageCurve описывает кусочно-линейную кривую урона от уровня оружия.
// Одна и та же функция урона использует разные строки этой таблицы
// для пуль игрока, ракет, союзников и снимка HP врагов.
type DamageCurve struct {
	Base              float64
	KneeLevel         float64
	PerLevelAfterKnee float64
	BossCountScale    float64
	TierMultipliers   [3]float64
	Global            float64

	UseDamageMultiplier bool
	UseLevelExcess      bool
	UseBossKillBonus    bool

	// Бонус за уровень оружия выше колена и порог бонуса за боссов
	LevelExcessKnee   float64
	LevelExcessStep   float64
	BossBonusMinLevel float64
}

type PlayerBalance struct {
	StartHP          float64
	Size             float64
	Lerp             float64
	SlowLerpFactor   float64
	TouchLerpFactor  float64
	TiltFactor       float64
	MaxTilt          float64
	StartAllyRatio   float64
	BottomOffset     float64
	StartWeaponLevel float64

	BaseFireIntervalMs  float64
	LevelFireBonus      float64
	FireCapInitialMs    float64
	FireCapMinMs        float64
	FireCapStepMs       float64
	HasteMultiplier     float64
	ExcessSpeedToDamage float64

	MaxRaysPerTier int
	VolleySpread   float64
	BulletSpeed    float64
	BulletRadius   float64

	EnemyPowerBase        float64
	TimedReduction        float64
	AllyReductionSome     float64
	AllyReductionSomeFrom int
	AllyReductionFull     float64
	PermReductionCap      float64
	ShieldHitShake        float64
	HitShake              float64

	LevelUpMaxHP float64
	LevelUpHeal  float64
	KillHealFlat float64
	KillHealFrac float64
}

type AllyBalance struct {
	HPRatio            float64
	Lerp               float64
	BaseFireIntervalMs float64
	FireIntervalFactor float64
	Spread             float64
	SideAngle          float64
	BulletRadius       float64
	LevelUpMaxHP       float64
	LevelUpHeal        float64
	PromotionAllies    int
}

type EnemyBalance struct {
	SmallHP, MediumHP     float64
	SmallSize, MediumSize float64
	TankChance            float64
	TankSize              float64
	TankHP                float64
	TankSpeed             float64
	HPRatioMultiplier     float64
	HPGrowthBonus         float64
	LevelScale            float64
	SmallSpeed            float64
	MediumSpeed           float64
	LevelSpeedBonus       float64
	MediumVX              float64
	BounceMargin          float64

	InitialFireJitterMs float64
	FanChance           float64
	FanRayThreshold     int
	FanMaxBullets       int
	FanSpread           float64
	FanFireSlowdown     float64
	BaseFireIntervalMs  float64
	DifficultyFireScale float64
	LevelFireBonus      float64
	LevelFireCap        int
	MinFireIntervalMs   float64

	DashDurationMs        float64
	DashTargetDivisor     float64
	EntryReduction        float64
	BossPresenceReduction float64

	SmallContactDamage  float64
	MediumContactDamage float64
	ContactDisplayBase  float64
	SmallScore          int
	MediumScore         int
	EscapePenalty       int

	BulletSpeed       float64
	BulletRadius      float64
	BulletDamage      float64
	ContactRadiusSq   float64
	BulletHitRadiusSq float64
	ShieldRadiusSq    float64
	HitRadiusDivisor  float64

	MinionChance     float64
	MinionChanceBoss float64
	MinionCount      int
	MinionSpacing    float64
}

type BossFightStart struct {
	ImmunityMs      float64
	HasteMs         float64
	BoomVolleys     int
	BoomVolleyGapMs float64
	ShieldFlat      float64
	ShieldFraction  float64
	AllyGrant       int
	AllyGrantBelow  int
	MinionBase      int
	MinionCap       int
	MinionSpreadY   float64
}

type BossBalance struct {
	Width, Height    float64
	SuperSize        float64
	SpawnY           float64
	TargetYDivisor   float64
	SuperEvery       int
	BaseHP           float64
	EarlyStep        float64
	LateStep         float64
	SuperHP          float64
	LateInflation    float64
	ProtectionMs     float64
	ProtectionFactor float64
	FastArrivalMs    float64
	FastArrival      float64
	SlowArrival      float64
	OscillationMs    float64
	OscillationDiv   float64
	Thresholds       []float64
	DowngradeRays    int
	DowngradeSpeed   float64
	// Радиус снарядов дебаффа и понижения
	SpecialRadius float64

	BaseFireIntervalMs float64
	FireBossScale      float64
	FireBossCap        int
	SuperFireFactor    float64
	MinFireIntervalMs  float64
	Spread             int
	SuperSpread        int
	BulletSpacing      float64
	BulletAngleStep    float64
	BulletOffsetY      float64
	DebuffIntervalMs   float64
	DebuffRays         int
	DebuffSpinMs       float64
	CyanChance         float64

	PlayerResist     float64
	AllyResist       float64
	HitRadiusDivisor float64

	FirstBossScore       int
	ScoreReward          int
	NextBossBase         int
	NextBossPerBoss      int
	HPRewardFraction     float64
	DamageBonusStep      float64
	DamageBonusCap       float64
	AllyRatioStep        float64
	AllyRatioCap         float64
	DamageMultiplierStep float64
	HasteOnKillMs        float64
	MinionBase           int
	MinionCap            int
	MinionSpacing        float64
	MinionOffsetY        float64
	DropSpacing          float64

	FightStart BossFightStart
}

type MissileBalance struct {
	Speed                 float64
	TurnRate              float64
	HitRadiusSq           float64
	Heal                  float64
	BossKillHeal          float64
	BossMultiplier        float64
	StartBounces          int
	MaxBounces            int
	ChargeMs              float64
	ChargeStepMs          float64
	MinChargeMs           float64
	StartDamageMultiplier float64
	DamageStep            float64
	AllyChance            float64
	AllyChanceBoss        float64
}

type DirectorBalance struct {
	SpawnBaseMs      float64
	SpawnFastMs      float64
	FastScore        int
	ScoreDivisor     float64
	MinSpawnMs       float64
	MobCapBase       int
	MobCapCycle      int
	MobCapScoreStep  int
	BossMobCap       int
	BossMinionChance float64
	SpawnChance      float64
	DifficultyScore  float64
	SmallBiasEarly   float64
	SmallBiasFloor   float64
	SmallBiasSlope   float64
	SpawnY           float64
	SpawnMarginX     float64
}

type LootBalance struct {
	SmallDropChance  float64
	MediumDropChance float64
	StreakLength     int
	StreakPenaltyMs  float64
	HeavyPenalty     float64
	LightPenalty     float64
	USmall           float64
	UMedium          float64
	UDecay           float64
	UMin             float64
	BossUSuper       float64
	BossU            float64
	SuperDrops       int
	DropsMin         int
	DropsSpread      int
	BossWTier0       float64
	BossWTier1       float64
	PickupRadiusSq   float64
	FallSpeed        float64
	Radius           float64

	WeaponLevelStep    float64
	WeaponDamageStep   float64
	HealthMaxHP        float64
	HealthFlat         float64
	HealthFraction     float64
	AllyHealShare      float64
	AllyBuff           float64
	AllyBuffHeal       float64
	UpgradeMaxedDamage float64
	ShieldFlat         float64
	ShieldFraction     float64
	ShieldReductionMs  float64
	PermReductionStep  float64
	PermReductionLimit float64
}

type CombatBalance struct {
	CritChance            float64
	CritMultiplier        float64
	DamageNumberLifeMs    float64
	DamageNumberRise      float64
	DamageNumberOffsetY   float64
	ExplosionLifeMs       float64
	ExplosionShake        float64
	DebuffSlowMs          float64
	DowngradeLevelLoss    float64
	DowngradeDamageFactor float64
	DowngradeRayThreshold float64
	DowngradeResetLevel   float64
	ShakeDecay            float64
	ScrollSpeed           float64
}

// Balance объединяет все настраиваемые константы симуляции.
type Balance struct {
	BulletCurve  DamageCurve     `json:"bullet_curve"`
	MissileCurve DamageCurve     `json:"missile_curve"`
	AllyCurve    DamageCurve     `json:"ally_curve"`
	EnemyCurve   DamageCurve     `json:"enemy_curve"`
	Player       PlayerBalance   `json:"player"`
	Ally         AllyBalance     `json:"ally"`
	Enemy        EnemyBalance    `json:"enemy"`
	Boss         BossBalance     `json:"boss"`
	Missile      MissileBalance  `json:"missile"`
	Director     DirectorBalance `json:"director"`
	Loot         LootBalance     `json:"loot"`
	Combat       CombatBalance   `json:"combat"`
	LootTables   []LootTable     `json:"loot_tables"`
}

// DefaultBalance возвращает таблицу, на которой настроена игра.
func DefaultBalance() *Balance {
	return &Balance{
		BulletCurve: DamageCurve{
			Base: 85, KneeLevel: 5, PerLevelAfterKnee: 60,
			BossCountScale:  0.15,
			TierMultipliers: [3]float64{1.0, 3.5, 5.0},
			Global:          2.2,

			UseDamageMultiplier: true,
			UseLevelExcess:      true,
			UseBossKillBonus:    true,
			LevelExcessKnee:     10,
			LevelExcessStep:     0.2,
			BossBonusMinLevel:   10,
		},
		MissileCurve: DamageCurve{
			Base: 85, KneeLevel: 5, PerLevelAfterKnee: 60,
			BossCountScale:      0.4,
			TierMultipliers:     [3]float64{1, 1, 1},
			Global:              1,
			UseDamageMultiplier: true,
		},
		AllyCurve: DamageCurve{
			Base: 60, KneeLevel: 5, PerLevelAfterKnee: 45,
			BossCountScale:  0.15,
			TierMultipliers: [3]float64{1, 1, 1},
			Global:          1,
		},
		EnemyCurve: DamageCurve{
			Base: 85, KneeLevel: 5, PerLevelAfterKnee: 60,
			TierMultipliers: [3]float64{1.0, 3.5, 5.0},
			Global:          1,
		},
		Player: PlayerBalance{
			StartHP:          1000,
			Size:             55,
			Lerp:             0.10,
			SlowLerpFactor:   0.7,
			TouchLerpFactor:  0.8,
			TiltFactor:       0.08,
			MaxTilt:          0.4,
			StartAllyRatio:   0.20,
			BottomOffset:     100,
			StartWeaponLevel: 0,

			BaseFireIntervalMs:  222,
			LevelFireBonus:      0.1,
			FireCapInitialMs:    222,
			FireCapMinMs:        167,
			FireCapStepMs:       6,
			HasteMultiplier:     2.0,
			ExcessSpeedToDamage: 0.3,

			MaxRaysPerTier: 5,
			VolleySpread:   0.12,
			BulletSpeed:    9,
			BulletRadius:   4,

			EnemyPowerBase:        1.44,
			TimedReduction:        0.7,
			AllyReductionSome:     0.9,
			AllyReductionSomeFrom: 3,
			AllyReductionFull:     0.8,
			PermReductionCap:      0.4,
			ShieldHitShake:        5,
			HitShake:              15,

			LevelUpMaxHP: 400,
			LevelUpHeal:  500,
			KillHealFlat: 50,
			KillHealFrac: 0.02,
		},
		Ally: AllyBalance{
			HPRatio:            0.6,
			Lerp:               0.1,
			BaseFireIntervalMs: 160,
			FireIntervalFactor: 2,
			Spread:             0.05,
			SideAngle:          0.05,
			BulletRadius:       1.6,
			LevelUpMaxHP:       200,
			LevelUpHeal:        250,
			PromotionAllies:    3,
		},
		Enemy: EnemyBalance{
			SmallHP: 250, MediumHP: 800,
			SmallSize: 32, MediumSize: 55,
			TankChance:        0.3,
			TankSize:          1.2,
			TankHP:            5.0,
			TankSpeed:         0.7,
			HPRatioMultiplier: 1.2,
			HPGrowthBonus:     0.60,
			LevelScale:        1.44,
			SmallSpeed:        0.75,
			MediumSpeed:       0.55,
			LevelSpeedBonus:   0.1,
			MediumVX:          0.45,
			BounceMargin:      100,

			InitialFireJitterMs: 1500,
			FanChance:           0.12,
			FanRayThreshold:     3,
			FanMaxBullets:       3,
			FanSpread:           0.75,
			FanFireSlowdown:     1.8,
			BaseFireIntervalMs:  4000,
			DifficultyFireScale: 0.3,
			LevelFireBonus:      0.13,
			LevelFireCap:        10,
			MinFireIntervalMs:   640,

			DashDurationMs:        800,
			DashTargetDivisor:     8,
			EntryReduction:        0.9,
			BossPresenceReduction: 0.3,

			SmallContactDamage:  70,
			MediumContactDamage: 150,
			ContactDisplayBase:  10,
			SmallScore:          50,
			MediumScore:         120,
			EscapePenalty:       50,

			BulletSpeed:       4.5,
			BulletRadius:      4.2,
			BulletDamage:      80,
			ContactRadiusSq:   600,
			BulletHitRadiusSq: 237,
			ShieldRadiusSq:    3600,
			HitRadiusDivisor:  2.3,

			MinionChance:     0.13,
			MinionChanceBoss: 0.3,
			MinionCount:      2,
			MinionSpacing:    40,
		},
		Boss: BossBalance{
			Width: 180, Height: 140,
			SuperSize:        1.4,
			SpawnY:           -250,
			TargetYDivisor:   9,
			SuperEvery:       5,
			BaseHP:           25000,
			EarlyStep:        35000,
			LateStep:         75000,
			SuperHP:          6.5,
			LateInflation:    1.25,
			ProtectionMs:     5000,
			ProtectionFactor: 0.2,
			FastArrivalMs:    1000,
			FastArrival:      7,
			SlowArrival:      0.45,
			OscillationMs:    3500,
			OscillationDiv:   3,
			Thresholds:       []float64{0.8, 0.5, 0.3, 0.1},
			DowngradeRays:    12,
			DowngradeSpeed:   0.4,
			SpecialRadius:    7,

			BaseFireIntervalMs: 2000,
			FireBossScale:      0.2,
			FireBossCap:        9,
			SuperFireFactor:    0.7,
			MinFireIntervalMs:  1667,
			Spread:             3,
			SuperSpread:        5,
			BulletSpacing:      25,
			BulletAngleStep:    0.2,
			BulletOffsetY:      60,
			DebuffIntervalMs:   6000,
			DebuffRays:         10,
			DebuffSpinMs:       400,
			CyanChance:         0.08,

			PlayerResist:     0.8,
			AllyResist:       0.2,
			HitRadiusDivisor: 3.5,

			FirstBossScore:       2000,
			ScoreReward:          6000,
			NextBossBase:         4000,
			NextBossPerBoss:      2500,
			HPRewardFraction:     0.15,
			DamageBonusStep:      0.15,
			DamageBonusCap:       1.5,
			AllyRatioStep:        0.12,
			AllyRatioCap:         1.0,
			DamageMultiplierStep: 0.25,
			HasteOnKillMs:        2000,
			MinionBase:           1,
			MinionCap:            5,
			MinionSpacing:        80,
			MinionOffsetY:        50,
			DropSpacing:          40,

			FightStart: BossFightStart{
				ImmunityMs:      4000,
				HasteMs:         4000,
				BoomVolleys:     5,
				BoomVolleyGapMs: 60,
				ShieldFlat:      150,
				ShieldFraction:  0.1,
				AllyGrant:       2,
				AllyGrantBelow:  5,
				MinionBase:      3,
				MinionCap:       6,
				MinionSpreadY:   150,
			},
		},
		Missile: MissileBalance{
			Speed:                 7.2,
			TurnRate:              0.012,
			HitRadiusSq:           1600,
			Heal:                  50,
			BossKillHeal:          100,
			BossMultiplier:        5,
			StartBounces:          1,
			MaxBounces:            4,
			ChargeMs:              6500,
			ChargeStepMs:          600,
			MinChargeMs:           1500,
			StartDamageMultiplier: 1.1,
			DamageStep:            0.2,
			AllyChance:            0.2,
			AllyChanceBoss:        0.3,
		},
		Director: DirectorBalance{
			SpawnBaseMs:      2500,
			SpawnFastMs:      1800,
			FastScore:        150,
			ScoreDivisor:     20,
			MinSpawnMs:       500,
			MobCapBase:       3,
			MobCapCycle:      4,
			MobCapScoreStep:  800,
			BossMobCap:       2,
			BossMinionChance: 0.4,
			SpawnChance:      0.85,
			DifficultyScore:  6000,
			SmallBiasEarly:   0.95,
			SmallBiasFloor:   0.6,
			SmallBiasSlope:   0.1,
			SpawnY:           -50,
			SpawnMarginX:     50,
		},
		Loot: LootBalance{
			SmallDropChance:  0.20,
			MediumDropChance: 0.42,
			StreakLength:     3,
			StreakPenaltyMs:  5000,
			HeavyPenalty:     0.2,
			LightPenalty:     0.5,
			USmall:           0.01,
			UMedium:          0.04,
			UDecay:           0.4,
			UMin:             0.005,
			BossUSuper:       0.60,
			BossU:            0.08,
			SuperDrops:       6,
			DropsMin:         2,
			DropsSpread:      5,
			BossWTier0:       0.6,
			BossWTier1:       0.35,
			PickupRadiusSq:   1444,
			FallSpeed:        2.2,
			Radius:           20,

			WeaponLevelStep:    0.5,
			WeaponDamageStep:   1.12,
			HealthMaxHP:        1.12,
			HealthFlat:         400,
			HealthFraction:     0.15,
			AllyHealShare:      0.8,
			AllyBuff:           1.15,
			AllyBuffHeal:       500,
			UpgradeMaxedDamage: 0.4,
			ShieldFlat:         400,
			ShieldFraction:     0.25,
			ShieldReductionMs:  2500,
			PermReductionStep:  0.05,
			PermReductionLimit: 0.5,
		},
		Combat: CombatBalance{
			CritChance:            0.1,
			CritMultiplier:        1.45,
			DamageNumberLifeMs:    500,
			DamageNumberRise:      1.5,
			DamageNumberOffsetY:   20,
			ExplosionLifeMs:       600,
			ExplosionShake:        12,
			DebuffSlowMs:          2000,
			DowngradeLevelLoss:    1.5,
			DowngradeDamageFactor: 0.7,
			DowngradeRayThreshold: 3,
			DowngradeResetLevel:   2,
			ShakeDecay:            0.88,
			ScrollSpeed:           1.2,
		},
		LootTables: DefaultLootTables(),
	}
}
