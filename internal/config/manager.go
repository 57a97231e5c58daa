package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// reloadDebounce is the minimum spacing between reloads triggered by the
// file watcher (§4.1: "Debounce rationale").
const reloadDebounce = 500 * time.Millisecond

// Manager handles configuration loading, watching, and hot reload,
// grounded on the teacher's internal/infrastructure/config Manager
// (loader.go + watcher.go): a viper instance, an RW-guarded snapshot,
// and a list of reload callbacks.
type Manager struct {
	mu        sync.RWMutex
	viper     *viper.Viper
	config    *Config
	callbacks []func(*Config)
	watching  bool
	lastLoad  time.Time
	version   uint64
	reloaded  bool
}

// NewManager creates a Manager configured to read config.toml from the
// app's config directory, with BARSTATUS_-prefixed environment overrides.
func NewManager() (*Manager, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")

	dir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w", err)
	}
	v.AddConfigPath(dir)
	v.AddConfigPath(".")

	v.SetEnvPrefix("BARSTATUS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Manager{viper: v}, nil
}

// Load reads the config file (creating a default one if absent), applies
// environment overrides, validates, and publishes the first snapshot.
func (m *Manager) Load() (ValidationResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := EnsureConfigDir(); err != nil {
		return ValidationResult{}, fmt.Errorf("failed to ensure config directory: %w", err)
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return ValidationResult{}, err
	}

	cfg, err := m.unmarshal()
	if err != nil {
		return ValidationResult{}, err
	}

	result := Validate(cfg)
	m.config = cfg
	m.lastLoad = time.Now()
	m.version++
	return result, nil
}

// Version returns the number of times the snapshot has been (re)loaded,
// monotonically increasing (Invariant P5: config_version strictly
// increases on reload).
func (m *Manager) Version() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.version
}

// CheckAndReload reports and clears whether a reload has happened since
// the last call, giving callers a poll-based API (§4.1) on top of the
// push-based fsnotify callback Watch() installs.
func (m *Manager) CheckAndReload() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	r := m.reloaded
	m.reloaded = false
	return r
}

func (m *Manager) setDefaults() {
	def := DefaultConfig()
	m.viper.SetDefault("bar.height", def.Bar.Height)
	m.viper.SetDefault("bar.padding", def.Bar.Padding)
	m.viper.SetDefault("font_family", def.FontFamily)
	m.viper.SetDefault("font_size", def.FontSize)
	m.viper.SetDefault("hover_effects", def.HoverEffects)
	m.viper.SetDefault("app.name", def.App.Name)
	m.viper.SetDefault("app.log_level", def.App.LogLevel)
}

func (m *Manager) readConfigFile() error {
	if err := m.viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return m.writeDefaultAndReread()
		}
		return fmt.Errorf("failed to read config file: %w\nCheck the file is valid TOML", err)
	}
	return nil
}

func (m *Manager) writeDefaultAndReread() error {
	path, err := GetConfigFilePath()
	if err != nil {
		return err
	}
	if err := WriteDefaultConfig(path); err != nil {
		return fmt.Errorf("failed to create default config at %s: %w", path, err)
	}
	if err := m.viper.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read newly created config file: %w", err)
	}
	return nil
}

func (m *Manager) unmarshal() (*Config, error) {
	cfg := &Config{}
	if err := m.viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w\nCheck for syntax errors or type mismatches", err)
	}
	return cfg, nil
}

// Config returns the current snapshot. Safe for concurrent use.
func (m *Manager) Config() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config
}

// Watch begins observing the config file for changes via fsnotify
// (through viper.WatchConfig), debouncing bursts per reloadDebounce and
// republishing the snapshot atomically on each qualifying change.
func (m *Manager) Watch() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watching {
		return nil
	}

	m.viper.WatchConfig()
	m.viper.OnConfigChange(func(_ fsnotify.Event) {
		m.mu.Lock()
		if time.Since(m.lastLoad) < reloadDebounce {
			m.mu.Unlock()
			return
		}
		cfg, err := m.unmarshal()
		if err != nil {
			m.mu.Unlock()
			return
		}
		Validate(cfg) // surface via logging at call sites that care
		m.config = cfg
		m.lastLoad = time.Now()
		m.version++
		m.reloaded = true
		callbacks := append([]func(*Config){}, m.callbacks...)
		m.mu.Unlock()

		for _, cb := range callbacks {
			cb(cfg)
		}
	})

	m.watching = true
	return nil
}

// OnConfigChange registers a callback invoked with the new snapshot after
// every successful reload.
func (m *Manager) OnConfigChange(cb func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callbacks = append(m.callbacks, cb)
}
