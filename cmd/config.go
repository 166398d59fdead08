package cmd

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/arcanaland/klondike/internal/config"
	"github.com/arcanaland/klondike/internal/logging"
)

// configCmd represents the config command group
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the klondike config file",
	Long:  `Commands for creating and inspecting the klondike config file.`,
}

// configInitCmd represents the config init command
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default config file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configFilePath()
		logger := logging.New(cmd.ErrOrStderr(), verbose)

		created, err := config.InitConfig(path)
		if err != nil {
			return fmt.Errorf("error initializing config: %w", err)
		}

		if created {
			logger.Debug("wrote default config", logger.Args("path", path))
			fmt.Fprintln(cmd.OutOrStdout(), "Config file initialized at:", path)
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "Config file already exists at:", path)
		}
		return nil
	},
}

// configShowCmd represents the config show command
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective config as TOML",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadSettings(cmd)
		if err != nil {
			return err
		}

		if err := toml.NewEncoder(cmd.OutOrStdout()).Encode(cfg); err != nil {
			return fmt.Errorf("error encoding config: %w", err)
		}
		return nil
	},
}

// configPathCmd represents the config path command
var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), configFilePath())
	},
}

func init() {
	RootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
}

// configFilePath returns the --config value or the default location
func configFilePath() string {
	if configPath != "" {
		return configPath
	}
	return config.GetConfigFilePath()
}
