// Package config loads starwell's settings from yaml and keeps them fresh
// while the game runs: the settings file is watched and re-read between
// ticks, so every scalar is live-adjustable without a restart.
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/starwell/starwell/common"
	"github.com/starwell/starwell/engine"
)

// Settings is everything tunable at runtime.
type Settings struct {
	Gravity      float64 `yaml:"gravity"`
	TimeStep     float64 `yaml:"time_step"`
	DefaultMass  float64 `yaml:"default_mass"`
	DragSpeed    float64 `yaml:"drag_speed"`
	WindowWidth  int     `yaml:"window_width"`
	WindowHeight int     `yaml:"window_height"`

	// Galaxy is the preset used by the Spawn Galaxy button and the B key.
	Galaxy engine.GalaxyParams `yaml:"galaxy"`
}

// Default returns the compiled-in settings used when no settings file exists.
func Default() Settings {
	return Settings{
		Gravity:      6.674,
		TimeStep:     0.1,
		DefaultMass:  20,
		DragSpeed:    0.1,
		WindowWidth:  common.BaseWidth,
		WindowHeight: common.BaseHeight,
		Galaxy: engine.GalaxyParams{
			Count:         400,
			Arms:          3,
			Tightness:     12,
			Spread:        0.3,
			BulgeFraction: 0.15,
			MaxRadius:     300,
			Mass:          8,
		},
	}
}

// Load reads settings from path. A missing file is not an error and yields
// the defaults; a malformed or invalid file yields the defaults plus the
// error, so callers can keep running.
func Load(path string) (Settings, error) {
	s := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Default(), fmt.Errorf("config: unmarshal %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return Default(), err
	}
	return s, nil
}

// Validate rejects values the engine documents as preconditions, mainly
// non-positive masses and time steps.
func (s Settings) Validate() error {
	if s.Gravity < 0 {
		return fmt.Errorf("config: gravity must not be negative, got %v", s.Gravity)
	}
	if s.TimeStep <= 0 {
		return fmt.Errorf("config: time_step must be positive, got %v", s.TimeStep)
	}
	if s.DefaultMass <= 0 {
		return fmt.Errorf("config: default_mass must be positive, got %v", s.DefaultMass)
	}
	if s.DragSpeed < 0 {
		return fmt.Errorf("config: drag_speed must not be negative, got %v", s.DragSpeed)
	}
	if s.WindowWidth <= 0 || s.WindowHeight <= 0 {
		return fmt.Errorf("config: window size must be positive, got %dx%d", s.WindowWidth, s.WindowHeight)
	}
	if s.Galaxy.Count < 0 {
		return fmt.Errorf("config: galaxy count must not be negative, got %d", s.Galaxy.Count)
	}
	if s.Galaxy.Arms < 1 {
		return fmt.Errorf("config: galaxy needs at least one arm, got %d", s.Galaxy.Arms)
	}
	if s.Galaxy.Mass <= 0 {
		return fmt.Errorf("config: galaxy mass must be positive, got %v", s.Galaxy.Mass)
	}
	if s.Galaxy.Tightness <= 0 {
		// The spiral radius is Tightness*exp(...); a non-positive value puts
		// every arm star at a negative radius and NaNs its orbital speed.
		return fmt.Errorf("config: galaxy tightness must be positive, got %v", s.Galaxy.Tightness)
	}
	if s.Galaxy.Spread < 0 {
		return fmt.Errorf("config: galaxy spread must not be negative, got %v", s.Galaxy.Spread)
	}
	if s.Galaxy.MaxRadius <= 0 {
		return fmt.Errorf("config: galaxy max_radius must be positive, got %v", s.Galaxy.MaxRadius)
	}
	if s.Galaxy.BulgeFraction < 0 || s.Galaxy.BulgeFraction > 1 {
		return fmt.Errorf("config: galaxy bulge_fraction must be in [0,1], got %v", s.Galaxy.BulgeFraction)
	}
	return nil
}

// Store holds the live settings and swaps in new ones when the file on disk
// changes. It is polled from the game loop, never concurrently.
type Store struct {
	path    string
	current Settings
	watcher *Watcher
}

// NewStore loads path and starts watching its directory for edits.
func NewStore(path string) *Store {
	s, err := Load(path)
	if err != nil {
		log.Printf("config: %v (using defaults)", err)
	}
	st := &Store{path: path, current: s}

	w, err := NewWatcher(filepath.Dir(path))
	if err != nil {
		log.Printf("config: watch %s: %v (live reload disabled)", path, err)
		return st
	}
	st.watcher = w
	return st
}

// Current returns the latest good settings.
func (st *Store) Current() Settings { return st.current }

// Set overwrites the in-memory settings. The UI sliders write through here;
// the file on disk is left alone.
func (st *Store) Set(s Settings) { st.current = s }

// Poll drains pending file events and reloads the settings file if it was
// the one edited. Called once per frame between ticks. A failed reload keeps
// the previous settings.
func (st *Store) Poll() {
	if st.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-st.watcher.Events:
			if !ok {
				st.watcher = nil
				return
			}
			if filepath.Clean(name) != filepath.Clean(st.path) {
				continue
			}
			s, err := Load(st.path)
			if err != nil {
				log.Printf("config: reload: %v (keeping previous)", err)
				continue
			}
			st.current = s
			log.Printf("config: reloaded %s", st.path)
		case err, ok := <-st.watcher.Errors:
			if !ok {
				st.watcher = nil
				return
			}
			log.Printf("config: watcher: %v", err)
		default:
			return
		}
	}
}

// Close stops the file watcher.
func (st *Store) Close() {
	if st.watcher != nil {
		_ = st.watcher.Close()
	}
}
