package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"
)

// SheetsConfig points the loader at the Google Sheets tabs holding the
// three input tables. When present, the sheets source is available as an
// alternative to the CSV exports.
type SheetsConfig struct {
	SpreadsheetID string `yaml:"spreadsheetID" validate:"required"`
	ScheduleTab   string `yaml:"scheduleTab" validate:"required"`
	ShiftsTab     string `yaml:"shiftsTab" validate:"required"`
	RoomsTab      string `yaml:"roomsTab" validate:"required"`
}

// Config represents the application configuration
type Config struct {
	// Input CSV exports. Required unless a sheets block is configured.
	ScheduleCSV string `yaml:"scheduleCSV"`
	ShiftsCSV   string `yaml:"shiftsCSV"`
	RoomsCSV    string `yaml:"roomsCSV"`

	// OutputDir receives the assignment and unchecked-room tables.
	OutputDir string `yaml:"outputDir"`

	// RoomCheckMinutes is the time one room check takes.
	RoomCheckMinutes int `yaml:"roomCheckMinutes" validate:"min=1"`

	// ShiftBufferMinutes is removed from each shift before assignment.
	ShiftBufferMinutes int `yaml:"shiftBufferMinutes" validate:"min=0"`

	// HalfTimeFactor scales the check time in two-week runs.
	HalfTimeFactor float64 `yaml:"halfTimeFactor" validate:"gt=0,lte=1"`

	// Closures are rrule strings describing campus closure dates; shifts
	// falling on a closure date are excluded from assignment.
	Closures []string `yaml:"closures,omitempty"`

	Sheets *SheetsConfig `yaml:"sheets,omitempty"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Load loads and validates the configuration from roomcheck.yaml,
// looking in the current directory first, then the user's home directory.
func Load() (*Config, error) {
	configPath, err := findConfigFile()
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.applyDefaults()

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// applyDefaults fills in the documented defaults for omitted fields.
func (cfg *Config) applyDefaults() {
	if cfg.RoomCheckMinutes == 0 {
		cfg.RoomCheckMinutes = 10
	}
	if cfg.HalfTimeFactor == 0 {
		cfg.HalfTimeFactor = 0.5
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "Output"
	}
}

// Validate validates the configuration struct and checks closure rrule
// syntax.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	// Without a sheets block the CSV paths are the only input source.
	if cfg.Sheets == nil {
		if cfg.ScheduleCSV == "" || cfg.ShiftsCSV == "" || cfg.RoomsCSV == "" {
			return fmt.Errorf("config validation failed: scheduleCSV, shiftsCSV and roomsCSV are required when no sheets block is configured")
		}
	}

	for i, closure := range cfg.Closures {
		if _, err := rrule.StrToRRule(closure); err != nil {
			return fmt.Errorf("invalid rrule in closures[%d]: %w", i, err)
		}
	}

	return nil
}

// findConfigFile searches for roomcheck.yaml in current directory and home directory
func findConfigFile() (string, error) {
	configFileName := "roomcheck.yaml"

	// Check current directory
	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, nil
	}

	// Check home directory
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homeConfigPath := filepath.Join(homeDir, configFileName)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, nil
	}

	return "", fmt.Errorf("config file not found in current directory or home directory")
}
