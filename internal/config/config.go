package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"
)

// DateRule gives a fixed score to shifts falling on the dates of a recurrence rule
type DateRule struct {
	Name  string  `yaml:"name" validate:"required"`
	RRule string  `yaml:"rrule" validate:"required"`
	Score float64 `yaml:"score" validate:"min=0,max=100"`
}

// EquityConfig defines the fairness parameters of the rate strategy
type EquityConfig struct {
	TargetSatisfactionRate float64 `yaml:"targetSatisfactionRate" validate:"min=0,max=1"`
	SmallDemandBonus       float64 `yaml:"smallDemandBonus" validate:"min=0"`
	DistributionMode       string  `yaml:"distributionMode" validate:"required,oneof=equity priority mixed"`
}

// ScoringConfig defines the weights and tables of the suggestion engine
type ScoringConfig struct {
	Coefficients map[string]float64 `yaml:"coefficients,omitempty" validate:"dive,min=0"`
	Equity       EquityConfig       `yaml:"equity"`
	ShiftScores  map[string]float64 `yaml:"shiftScores,omitempty" validate:"dive,min=0,max=100"`
	DateRules    []DateRule         `yaml:"dateRules,omitempty" validate:"dive"`
}

// Config represents the application configuration
type Config struct {
	DatabaseURL string `yaml:"databaseURL" validate:"required"`

	// Strategy is the scoring model, "rate" (default) or "value"
	Strategy string `yaml:"strategy,omitempty" validate:"omitempty,oneof=rate value"`

	// MaxConcurrentScoring caps the exchanges scored in parallel by batch commands
	MaxConcurrentScoring int `yaml:"maxConcurrentScoring,omitempty" validate:"omitempty,min=1"`

	Scoring ScoringConfig `yaml:"scoring"`
}

const (
	configFileName = "garde_config.yaml"

	defaultMaxConcurrentScoring = 8
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Load loads and validates the configuration from garde_config.yaml
// It looks for the config file in the current directory first, then in the user's home directory
func Load() (*Config, error) {
	configPath, err := findConfigFile(configFileName)
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadWithEnv loads the configuration for an environment.
// For example, env="test" looks for garde_config.test.yaml before falling back to garde_config.yaml
func LoadWithEnv(env string) (*Config, error) {
	if env != "" {
		envFileName := fmt.Sprintf("garde_config.%s.yaml", env)
		if configPath, err := findConfigFile(envFileName); err == nil {
			return LoadFromPath(configPath)
		}
	}

	return Load()
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

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	if cfg.MaxConcurrentScoring == 0 {
		cfg.MaxConcurrentScoring = defaultMaxConcurrentScoring
	}

	return &cfg, nil
}

// Validate validates the configuration struct and checks rrule syntax
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	for i, rule := range cfg.Scoring.DateRules {
		if _, err := rrule.StrToRRule(rule.RRule); err != nil {
			return fmt.Errorf("invalid rrule in scoring.dateRules[%d]: %w", i, err)
		}
	}

	return nil
}

// findConfigFile searches for the named file in current directory and home directory
func findConfigFile(name string) (string, error) {
	if _, err := os.Stat(name); err == nil {
		return name, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homeConfigPath := filepath.Join(homeDir, name)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, nil
	}

	return "", fmt.Errorf("config file %s not found in current directory or home directory", name)
}
