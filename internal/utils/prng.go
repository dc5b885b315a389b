package utils

import (
	"go-space-shooter/internal/defs"
	"math/rand"
	"time"
)

// Rand - источник случайности для систем. Реализуется PRNGService
// и FixedRand (заранее заданная последовательность для тестов).
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// PRNGService - обертка над стандартным генератором случайных чисел Go,
// которая позволяет использовать предсказуемый (seeded) рандом во всей игре.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Intn возвращает случайное целое число в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 возвращает случайное число с плавающей точкой в диапазоне [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// ChooseWeighted выполняет взвешенный выбор из таблицы выпадения.
// Таблица проходится по порядку с накоплением весов, как и в балансе.
func ChooseWeighted(r Rand, entries []defs.LootEntry) defs.PowerUpType {
	if len(entries) == 0 {
		return ""
	}

	totalWeight := 0.0
	for _, entry := range entries {
		totalWeight += entry.Weight
	}
	if totalWeight <= 0 {
		return entries[0].Type
	}

	roll := r.Float64() * totalWeight
	upto := 0.0
	for _, entry := range entries {
		upto += entry.Weight
		if roll < upto {
			return entry.Type
		}
	}
	return entries[len(entries)-1].Type
}

// FixedRand возвращает значения Float64 из списка по кругу.
// Intn(n) берёт следующее значение и масштабирует его в [0, n).
type FixedRand struct {
	Values []float64
	pos    int
}

func NewFixedRand(values ...float64) *FixedRand {
	return &FixedRand{Values: values}
}

func (f *FixedRand) Float64() float64 {
	if len(f.Values) == 0 {
		return 0
	}
	v := f.Values[f.pos%len(f.Values)]
	f.pos++
	return v
}

func (f *FixedRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	i := int(f.Float64() * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}
