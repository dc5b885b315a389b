package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// Ключи совпадают с ключами веб-версии, чтобы файл можно было переносить.
const (
	KeySaveGame  = "space_shooter_save_game"
	KeyBestScore = "space_shooter_best_score"
	KeyBestLevel = "space_shooter_best_level"
	KeyBGMVolume = "space_shooter_bgm_volume"
	KeySFXVolume = "space_shooter_sfx_volume"
	KeyGraphics  = "space_shooter_graphics"
	KeyLanguage  = "game_lang"
)

// Store - строковое хранилище ключ-значение в одном JSON-файле.
// С пустым путём живёт только в памяти.
type Store struct {
	mu   sync.Mutex
	path string
	data map[string]string
}

// Open читает файл хранилища. Отсутствующий файл - пустое хранилище,
// повреждённый файл логируется и тоже даёт пустое хранилище.
func Open(path string) (*Store, error) {
	s := &Store{path: path, data: make(map[string]string)}
	if path == "" {
		return s, nil
	}

	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read store %s: %w", path, err)
	}
	if err := json.Unmarshal(raw, &s.data); err != nil {
		log.Printf("Store %s is corrupt, starting empty: %v", path, err)
		s.data = make(map[string]string)
	}
	return s, nil
}

// NewMemory возвращает хранилище без файла.
func NewMemory() *Store {
	s, _ := Open("")
	return s
}

func (s *Store) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.data[key]
	return v, ok
}

func (s *Store) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return s.flush()
}

func (s *Store) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.data[key]; !ok {
		return nil
	}
	delete(s.data, key)
	return s.flush()
}

// Clear удаляет все ключи ("сбросить все данные").
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = make(map[string]string)
	return s.flush()
}

// flush пишет файл через временный файл и rename. Вызывается под mu.
func (s *Store) flush() error {
	if s.path == "" {
		return nil
	}
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal store: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create store dir: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("failed to write store: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace store: %w", err)
	}
	return nil
}
