package component

// Explosion - затухающая вспышка взрыва.
type Explosion struct {
	Position
	Life    float64 // Сколько времени осталось
	MaxLife float64
}

func (e *Explosion) Alpha() float64 {
	if e.MaxLife <= 0 {
		return 0
	}
	return e.Life / e.MaxLife
}

// DamageNumber - всплывающее число урона.
type DamageNumber struct {
	Position
	Amount  float64
	Crit    bool
	Life    float64
	MaxLife float64
	VY      float64 // пикселей за мс, отрицательная - вверх
}

func (d *DamageNumber) Alpha() float64 {
	if d.MaxLife <= 0 {
		return 0
	}
	return d.Life / d.MaxLife
}
