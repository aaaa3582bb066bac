package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// MinPollIntervalMs is the fastest polling schedule the front-end may use.
const MinPollIntervalMs = 250

// Config holds all application configuration
type Config struct {
	// Overlay window geometry
	Window WindowConfig `json:"window"`

	// How often the front-end asks for the mute state
	PollIntervalMs int `json:"poll_interval_ms"`

	// Show a notification when a second instance is launched
	Notifications bool `json:"notifications"`

	// zerolog level name: trace, debug, info, warn, error
	LogLevel string `json:"log_level"`
}

// WindowConfig holds overlay window settings
type WindowConfig struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Service manages configuration persistence
type Service struct {
	config   *Config
	filePath string
}

// New creates a config service backed by ~/.mute-overlay/config.json
func New() (*Service, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}

	return NewAt(filepath.Join(homeDir, ".mute-overlay", "config.json"))
}

// NewAt creates a config service backed by the given file
func NewAt(configPath string) (*Service, error) {
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	service := &Service{
		filePath: configPath,
		config:   getDefaultConfig(),
	}

	// Load existing config if it exists, otherwise create a default config file
	if _, err := os.Stat(configPath); err == nil {
		if err := service.Load(); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	} else {
		if err := service.Save(); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
	}

	return service, nil
}

// getDefaultConfig returns the default configuration
func getDefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			X:      0,
			Y:      0,
			Width:  1920,
			Height: 70,
		},
		PollIntervalMs: 2000,
		Notifications:  true,
		LogLevel:       "info",
	}
}

// Validate fills in unusable values with defaults
func (c *Config) Validate() {
	def := getDefaultConfig()
	if c.Window.Width <= 0 {
		c.Window.Width = def.Window.Width
	}
	if c.Window.Height <= 0 {
		c.Window.Height = def.Window.Height
	}
	if c.PollIntervalMs == 0 {
		c.PollIntervalMs = def.PollIntervalMs
	}
	if c.PollIntervalMs < MinPollIntervalMs {
		c.PollIntervalMs = MinPollIntervalMs
	}
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
}

// Get returns the current configuration
func (s *Service) Get() *Config {
	return s.config
}

// Set updates the configuration
func (s *Service) Set(config *Config) {
	s.config = config
}

// Load loads configuration from file
func (s *Service) Load() error {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(data, s.config); err != nil {
		return err
	}
	s.config.Validate()
	return nil
}

// Save saves configuration to file
func (s *Service) Save() error {
	data, err := json.MarshalIndent(s.config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(s.filePath, data, 0644)
}

// Path returns the full path to the configuration file
func (s *Service) Path() string {
	return s.filePath
}

// UpdateWindow updates overlay window configuration
func (s *Service) UpdateWindow(window WindowConfig) error {
	s.config.Window = window
	return s.Save()
}
