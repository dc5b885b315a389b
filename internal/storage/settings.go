package storage

import (
	"strconv"
)

const (
	GraphicsHigh = "high"
	GraphicsLow  = "low"

	LangVN = "vn"
	LangEN = "en"
)

// Settings - пользовательские настройки и рекорды.
type Settings struct {
	SFXVolume float64
	BGMVolume float64
	Graphics  string
	Language  string
	BestScore int
	BestLevel int
}

func DefaultSettings() Settings {
	return Settings{
		SFXVolume: 0.6,
		BGMVolume: 0.4,
		Graphics:  GraphicsHigh,
		Language:  LangVN,
		BestScore: 0,
		BestLevel: 1,
	}
}

// LoadSettings читает настройки; нечитаемые и нулевые значения
// заменяются значениями по умолчанию.
func (s *Store) LoadSettings() Settings {
	st := DefaultSettings()
	if v := s.float(KeySFXVolume); v > 0 {
		st.SFXVolume = v
	}
	if v := s.float(KeyBGMVolume); v > 0 {
		st.BGMVolume = v
	}
	if v, ok := s.Get(KeyGraphics); ok && (v == GraphicsHigh || v == GraphicsLow) {
		st.Graphics = v
	}
	if v, ok := s.Get(KeyLanguage); ok && (v == LangVN || v == LangEN) {
		st.Language = v
	}
	if v := int(s.float(KeyBestScore)); v > 0 {
		st.BestScore = v
	}
	if v := int(s.float(KeyBestLevel)); v > 0 {
		st.BestLevel = v
	}
	return st
}

func (s *Store) SaveSettings(st Settings) error {
	pairs := [][2]string{
		{KeySFXVolume, strconv.FormatFloat(st.SFXVolume, 'f', -1, 64)},
		{KeyBGMVolume, strconv.FormatFloat(st.BGMVolume, 'f', -1, 64)},
		{KeyGraphics, st.Graphics},
		{KeyLanguage, st.Language},
		{KeyBestScore, strconv.Itoa(st.BestScore)},
		{KeyBestLevel, strconv.Itoa(st.BestLevel)},
	}
	for _, p := range pairs {
		if err := s.Set(p[0], p[1]); err != nil {
			return err
		}
	}
	return nil
}

// RecordBest обновляет рекорды и сообщает, изменилось ли что-то.
func (s *Store) RecordBest(score, level int) (bool, error) {
	changed := false
	if score > int(s.float(KeyBestScore)) {
		if err := s.Set(KeyBestScore, strconv.Itoa(score)); err != nil {
			return false, err
		}
		changed = true
	}
	best := int(s.float(KeyBestLevel))
	if best == 0 {
		best = 1
	}
	if level > best {
		if err := s.Set(KeyBestLevel, strconv.Itoa(level)); err != nil {
			return changed, err
		}
		changed = true
	}
	return changed, nil
}

func (s *Store) float(key string) float64 {
	v, ok := s.Get(key)
	if !ok {
		return 0
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0
	}
	return f
}
