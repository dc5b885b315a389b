package storage

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestStorePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "store.json")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := s.Set(KeyLanguage, LangEN); err != nil {
		t.Fatalf("Set: %v", err)
	}

	again, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if v, ok := again.Get(KeyLanguage); !ok || v != LangEN {
		t.Errorf("language = %q %v", v, ok)
	}

	if err := again.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	third, _ := Open(path)
	if _, ok := third.Get(KeyLanguage); ok {
		t.Errorf("Clear did not persist")
	}
}

func TestCorruptStoreStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if s.HasSession() {
		t.Errorf("corrupt store reported a session")
	}
}

func TestSettingsDefaultsAndRoundTrip(t *testing.T) {
	s := NewMemory()
	st := s.LoadSettings()
	if st != DefaultSettings() {
		t.Fatalf("defaults = %+v", st)
	}

	st.SFXVolume = 0.25
	st.Graphics = GraphicsLow
	st.Language = LangEN
	if err := s.SaveSettings(st); err != nil {
		t.Fatalf("SaveSettings: %v", err)
	}
	if got := s.LoadSettings(); got != st {
		t.Errorf("settings = %+v, want %+v", got, st)
	}

	// неизвестные значения игнорируются
	s.Set(KeyGraphics, "ultra")
	s.Set(KeyBGMVolume, "loud")
	got := s.LoadSettings()
	if got.Graphics != GraphicsHigh || got.BGMVolume != 0.4 {
		t.Errorf("invalid values should fall back: %+v", got)
	}
}

func TestRecordBest(t *testing.T) {
	s := NewMemory()
	if changed, _ := s.RecordBest(500, 1); !changed {
		t.Errorf("first score should be a record")
	}
	if changed, _ := s.RecordBest(300, 1); changed {
		t.Errorf("lower score recorded")
	}
	if changed, _ := s.RecordBest(300, 3); !changed {
		t.Errorf("higher level not recorded")
	}
	st := s.LoadSettings()
	if st.BestScore != 500 || st.BestLevel != 3 {
		t.Errorf("best = %d/%d", st.BestScore, st.BestLevel)
	}
}

func TestSessionLifecycle(t *testing.T) {
	s := NewMemory()
	if _, err := s.LoadSession(); !errors.Is(err, ErrNoSave) {
		t.Fatalf("empty store: err = %v", err)
	}

	g := &SaveGame{
		GameState: SavedProgress{Score: 4200, Level: 1, WeaponTier: 1, NextBossScore: 12500, BossCount: 1, AccumulatedBossHP: 25000, LastLevel: 1},
		Player:    SavedPlayer{HP: 900, MaxHP: 4750, Level: 1.5, DamageMultiplier: 1.25, BossKillDamageBonus: 0.15},
		AllyCount: 3,
	}
	if err := s.SaveSession(g); err != nil {
		t.Fatalf("SaveSession: %v", err)
	}

	raw, _ := s.Get(KeySaveGame)
	for _, field := range []string{`"gameState"`, `"accumulatedBossHp"`, `"maxHp"`, `"allyCount":3`} {
		if !strings.Contains(raw, field) {
			t.Errorf("save json missing %s: %s", field, raw)
		}
	}

	loaded, err := s.LoadSession()
	if err != nil {
		t.Fatalf("LoadSession: %v", err)
	}
	if *loaded != *g {
		t.Errorf("loaded = %+v, want %+v", loaded, g)
	}

	if err := s.ClearSession(); err != nil {
		t.Fatalf("ClearSession: %v", err)
	}
	if s.HasSession() {
		t.Errorf("session not cleared")
	}
}

func TestCorruptSessionIsNoSave(t *testing.T) {
	s := NewMemory()
	for _, raw := range []string{"{", `{"player":{"maxHp":0},"gameState":{"level":1}}`} {
		s.Set(KeySaveGame, raw)
		if _, err := s.LoadSession(); !errors.Is(err, ErrNoSave) {
			t.Errorf("%q: err = %v, want ErrNoSave", raw, err)
		}
	}
}
