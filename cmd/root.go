package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/H-S-E-N-I-D/AwesomeGIC/internal/app"
	"github.com/H-S-E-N-I-D/AwesomeGIC/internal/config"
	"github.com/H-S-E-N-I-D/AwesomeGIC/internal/constants"
	"github.com/H-S-E-N-I-D/AwesomeGIC/internal/errhandler"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	cfg     *config.Config
)

func Execute() {
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " ERROR ",
		Style: pterm.NewStyle(pterm.BgLightRed, pterm.FgBlack),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		errhandler.HandleError(err)
	}
}

func NewRootCmd() *cobra.Command {
	flags := &shellFlags{}

	rootCmd := &cobra.Command{
		Use:   constants.AppName,
		Short: "awesomegic is an interactive banking console",
		Long: `awesomegic is an interactive banking console.
Record deposits and withdrawals, define interest rules and print
monthly statements with the interest earned.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &shellRunner{
				cfg:   cfg,
				flags: flags,
			}
			return runner.Run(cmd.Context())
		},
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "set the config file path")
	rootCmd.Flags().StringVarP(&flags.Script, "script", "s", "", "replay shell input from a file")

	rootCmd.AddCommand(NewInfoCmd())
	rootCmd.AddCommand(NewConfigureCmd())

	return rootCmd
}

func setDefaults() {
	for key, value := range config.NewDefault().Settings() {
		viper.SetDefault(key, value)
	}
}

func initConfig() error {
	setDefaults()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		appDir, err := app.AppDataDir()
		if err != nil {
			return fmt.Errorf("error getting app dir: %w", err)
		}

		viper.AddConfigPath(appDir)
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")

		if err := createDefaultConfig(appDir); err != nil {
			return fmt.Errorf("failed to ensure config file: %w", err)
		}
	}

	viper.SetEnvPrefix(constants.EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // allow using environment variables to override

	if err := viper.ReadInConfig(); err != nil {

		if cfgFile != "" {
			return fmt.Errorf("failed to read config file: %w", err)
		}

		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return fmt.Errorf("config file error: %w", err)
		}
	}

	cfg = config.NewDefault()
	if err := viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode into struct, %v", err)
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	cfg.ConfigPath = viper.ConfigFileUsed()

	return nil
}

func createDefaultConfig(appDir string) error {
	if err := os.MkdirAll(appDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(appDir, "config.yaml")

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	if err := viper.WriteConfigAs(configPath); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
