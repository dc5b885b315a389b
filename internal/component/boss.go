package component

// Boss - единственный босс на экране.
// Состояния: спуск, активная фаза, побеждён (HP <= 0).
type Boss struct {
	Position
	Width, Height float64
	HP, MaxHP     float64
	Super         bool
	TargetY       float64

	FireTimer       float64
	DebuffTimer     float64
	MoveTimer       float64
	ProtectionTimer float64

	// Thresholds и Triggered идут параллельно: каждый порог срабатывает один раз
	Thresholds []float64
	Triggered  []bool
}

func (b *Boss) Descending() bool {
	return b.Y < b.TargetY
}

func (b *Boss) Protected() bool {
	return b.ProtectionTimer > 0
}

func (b *Boss) HPFraction() float64 {
	if b.MaxHP <= 0 {
		return 0
	}
	return b.HP / b.MaxHP
}
