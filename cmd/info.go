package cmd

import (
	"os"

	"github.com/H-S-E-N-I-D/AwesomeGIC/internal/app"
	"github.com/H-S-E-N-I-D/AwesomeGIC/internal/config"
	"github.com/H-S-E-N-I-D/AwesomeGIC/internal/ui/views"
	"github.com/spf13/cobra"
)

type infoRunner struct {
	cfg *config.Config
}

func NewInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Display application information",
		Long:  `Display current configuration, config file path, and log settings.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &infoRunner{
				cfg: cfg,
			}

			return runner.Run()
		},
	}
}

func (r *infoRunner) Run() error {
	return views.RenderSystemInfo(r.items())
}

func (r *infoRunner) items() views.SystemInfoItem {
	configPath := r.cfg.ConfigPath
	configFound := false
	if configPath == "" {
		configPath = "(None, using defaults)"
	} else if _, err := os.Stat(configPath); err == nil {
		configFound = true
	}

	return views.SystemInfoItem{
		ConfigPath:  configPath,
		ConfigFound: configFound,
		AppDataDir:  getAppDataDirOrUnknown(),
		BankName:    r.cfg.Bank.Name,
		LogLevel:    r.cfg.Log.Level,
		LogFormat:   r.cfg.Log.Format,
		LogFile:     r.cfg.Log.File,
		ShellMode:   r.cfg.Shell.Mode,
	}
}

func getAppDataDirOrUnknown() string {
	dir, err := app.AppDataDir()
	if err != nil {
		return "Unknown"
	}
	return dir
}
