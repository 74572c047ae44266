package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/H-S-E-N-I-D/AwesomeGIC/internal/config"
	"github.com/H-S-E-N-I-D/AwesomeGIC/internal/constants"
	"github.com/H-S-E-N-I-D/AwesomeGIC/internal/logging"
	"github.com/H-S-E-N-I-D/AwesomeGIC/internal/rates"
	"github.com/H-S-E-N-I-D/AwesomeGIC/internal/service"
	"github.com/H-S-E-N-I-D/AwesomeGIC/internal/store"
	"github.com/sirupsen/logrus"
)

type App struct {
	Service  *service.Service
	Store    store.AccountRepository
	Timeline *rates.Timeline
	Logger   *logrus.Logger
}

// NewApp initialize logger, account store and rate timeline, then return App entity
func NewApp(cfg *config.Config) (*App, func(), error) {
	logger, closeLog, err := logging.New(cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	repo := store.NewMemoryStore()
	timeline := rates.NewTimeline()
	svc := service.NewService(repo, timeline, cfg, logger)

	logger.WithFields(logrus.Fields{
		"config": cfg.ConfigPath,
		"bank":   cfg.Bank.Name,
	}).Debug("application initialized")

	return &App{
		Service:  svc,
		Store:    repo,
		Timeline: timeline,
		Logger:   logger,
	}, closeLog, nil
}

// AppDataDir is the directory holding config.yaml.
func AppDataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, "."+constants.AppName), nil
	}

	return filepath.Join(configDir, constants.AppName), nil
}
