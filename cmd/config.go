package cmd

import (
	"fmt"
	"strings"

	"github.com/khrees2412/quickcv/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  "View and update configuration settings",
	// config works without opening the resume database so a broken
	// setting can always be repaired
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if config.AppConfig != nil {
			return nil
		}
		return config.Initialize()
	},
}

var showConfigCmd = &cobra.Command{
	Use:   "show",
	Short: "Display current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, titleStyle.Render("Configuration"))
		fmt.Fprintf(out, "%s %s\n", labelStyle.Render("Config File:"), config.GetConfigPath())
		for _, key := range config.Keys() {
			fmt.Fprintf(out, "%s %s\n", labelStyle.Render(key+":"), valueStyle.Render(config.Get(key)))
		}
		return nil
	},
}

var setConfigCmd = &cobra.Command{
	Use:   "set",
	Short: "Update a configuration value",
	Example: `  quickcv config set --key pdf_engine --value chrome
  quickcv config set --key output_dir --value ~/Documents
  quickcv config set --key autosave_interval --value 500ms`,
	RunE: func(cmd *cobra.Command, args []string) error {
		key, _ := cmd.Flags().GetString("key")
		value, _ := cmd.Flags().GetString("value")

		if key == "" || value == "" {
			return fmt.Errorf("both --key and --value are required (keys: %s)", strings.Join(config.Keys(), ", "))
		}

		if err := config.Set(key, value); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "✓ Set %s = %s\n", key, value)
		if current != nil {
			fmt.Fprintln(cmd.OutOrStdout(), mutedStyle.Render("The new value applies the next time quickcv starts."))
		}
		return nil
	},
}

func init() {
	setConfigCmd.Flags().String("key", "", "Configuration key")
	setConfigCmd.Flags().String("value", "", "Configuration value")

	configCmd.AddCommand(showConfigCmd)
	configCmd.AddCommand(setConfigCmd)
	rootCmd.AddCommand(configCmd)
}
