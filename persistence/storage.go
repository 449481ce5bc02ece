// Package persistence keeps the best score, device identity and settings
// between runs using gdata.
package persistence

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"

	"github.com/quasilyte/gdata"
)

const (
	keyBestScore = "best_score"
	keyDevice    = "device"
	keySettings  = "settings"
)

// ItemStore is the key/value surface of *gdata.Manager.
type ItemStore interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

// Settings represents the settings data stored on disk
type Settings struct {
	SFXVolume float64 `json:"sfxVolume"`
	Muted     bool    `json:"muted"`
}

type savedBest struct {
	Best int `json:"best"`
}

type savedDevice struct {
	ID string `json:"id"`
}

// Storage reads and writes game data. A Storage without an item store
// behaves as empty and discards writes.
type Storage struct {
	items ItemStore
}

// Open creates a Storage backed by gdata under appName.
func Open(appName string) (*Storage, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return &Storage{}, fmt.Errorf("open gdata: %w", err)
	}
	return New(m), nil
}

func New(items ItemStore) *Storage {
	return &Storage{items: items}
}

// LoadBestScore returns the saved best score, or 0 if there is none.
func (s *Storage) LoadBestScore() (int, error) {
	var saved savedBest
	found, err := s.load(keyBestScore, &saved)
	if err != nil || !found {
		return 0, err
	}
	if saved.Best < 0 {
		return 0, fmt.Errorf("stored best score %d is negative", saved.Best)
	}
	return saved.Best, nil
}

func (s *Storage) SaveBestScore(best int) error {
	return s.save(keyBestScore, savedBest{Best: best})
}

// ClearBestScore removes the saved best score.
func (s *Storage) ClearBestScore() error {
	if s.items == nil {
		return nil
	}
	// Save empty/nil data to clear the score
	if err := s.items.SaveItem(keyBestScore, nil); err != nil {
		return fmt.Errorf("clear %s: %w", keyBestScore, err)
	}
	log.Printf("[persistence] best score cleared")
	return nil
}

// DeviceID returns this install's identity, generating and saving one on first use.
func (s *Storage) DeviceID() (string, error) {
	var saved savedDevice
	found, err := s.load(keyDevice, &saved)
	if err != nil {
		log.Printf("[persistence] unreadable device id, replacing it: %v", err)
	}
	if found && err == nil && saved.ID != "" {
		return saved.ID, nil
	}

	id, err := newDeviceID()
	if err != nil {
		return "", err
	}
	if err := s.save(keyDevice, savedDevice{ID: id}); err != nil {
		return id, err
	}
	return id, nil
}

// LoadSettings returns the saved settings, or nil if none were saved.
func (s *Storage) LoadSettings() (*Settings, error) {
	var settings Settings
	found, err := s.load(keySettings, &settings)
	if err != nil || !found {
		return nil, err
	}
	return &settings, nil
}

func (s *Storage) SaveSettings(settings Settings) error {
	return s.save(keySettings, settings)
}

func (s *Storage) load(key string, v any) (bool, error) {
	if s.items == nil {
		return false, nil
	}
	data, err := s.items.LoadItem(key)
	if err != nil {
		return false, fmt.Errorf("load %s: %w", key, err)
	}
	if len(data) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("parse %s: %w", key, err)
	}
	return true, nil
}

func (s *Storage) save(key string, v any) error {
	if s.items == nil {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("serialize %s: %w", key, err)
	}
	if err := s.items.SaveItem(key, data); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

func newDeviceID() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate device id: %w", err)
	}
	return hex.EncodeToString(b), nil
}
