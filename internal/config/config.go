package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/H-S-E-N-I-D/AwesomeGIC/internal/constants"
)

type Config struct {
	Bank       BankConfig  `mapstructure:"bank"`
	Log        LogConfig   `mapstructure:"log"`
	Shell      ShellConfig `mapstructure:"shell"`
	ConfigPath string      `mapstructure:"-"`
}

type BankConfig struct {
	Name string `mapstructure:"name"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	File   string `mapstructure:"file"`
}

// ShellConfig.Mode is one of ShellModeAuto, ShellModeSurvey, ShellModePlain.
type ShellConfig struct {
	Mode string `mapstructure:"mode"`
}

const (
	ShellModeAuto   = "auto"
	ShellModeSurvey = "survey"
	ShellModePlain  = "plain"
)

func NewDefault() *Config {
	return &Config{
		Bank:  BankConfig{Name: constants.DefaultBankName},
		Log:   LogConfig{Level: "warn", Format: "text", File: ""},
		Shell: ShellConfig{Mode: ShellModeAuto},
	}
}

var (
	ErrInvalidShellMode = errors.New("invalid shell mode")
	ErrInvalidLogFormat = errors.New("invalid log format")
)

// Validate checks the values viper can not type-check.
func (c *Config) Validate() error {
	switch c.Shell.Mode {
	case ShellModeAuto, ShellModeSurvey, ShellModePlain:
	default:
		return fmt.Errorf("%w: %q (use %s, %s or %s)", ErrInvalidShellMode, c.Shell.Mode, ShellModeAuto, ShellModeSurvey, ShellModePlain)
	}

	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: %q (use text or json)", ErrInvalidLogFormat, c.Log.Format)
	}

	if strings.TrimSpace(c.Bank.Name) == "" {
		c.Bank.Name = constants.DefaultBankName
	}
	return nil
}

// Settings flattens the config into viper keys.
func (c *Config) Settings() map[string]any {
	return map[string]any{
		"bank.name":  c.Bank.Name,
		"log.level":  c.Log.Level,
		"log.format": c.Log.Format,
		"log.file":   c.Log.File,
		"shell.mode": c.Shell.Mode,
	}
}
