package cmd

import (
	"fmt"

	"github.com/H-S-E-N-I-D/AwesomeGIC/internal/config"
	"github.com/H-S-E-N-I-D/AwesomeGIC/internal/ui"
	"github.com/H-S-E-N-I-D/AwesomeGIC/internal/ui/prompts"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type configureRunner struct {
	cfg *config.Config
}

func NewConfigureCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "configure",
		Short: "Edit the configuration interactively",
		Long:  `Walk through bank name, shell mode and log settings, then save them to the config file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &configureRunner{
				cfg: cfg,
			}
			return runner.Run()
		},
	}
}

func (r *configureRunner) Run() error {
	ui.PrintL1Title("Configuration")

	updated, err := prompts.PromptSettings(*r.cfg)
	if err != nil {
		return err
	}
	if err := updated.Validate(); err != nil {
		return err
	}

	save, err := prompts.PromptConfirm("Save configuration?", true)
	if err != nil {
		return err
	}
	if !save {
		pterm.Info.Println("Configuration unchanged")
		return nil
	}

	if err := saveConfig(&updated); err != nil {
		return err
	}

	*r.cfg = updated
	pterm.Success.Printf("Configuration saved to %s\n", viper.ConfigFileUsed())
	return nil
}

func saveConfig(c *config.Config) error {
	for key, value := range c.Settings() {
		viper.Set(key, value)
	}

	if err := viper.WriteConfig(); err != nil {
		return fmt.Errorf("failed to save config to file: %w", err)
	}
	return nil
}
