package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ssargent/bifrost/pkg/config"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize Bifrost configuration",
	Long: `Initialize the Bifrost configuration file with a generated API key.

This command will:
- Create the configuration directory
- Write a configuration file with secure permissions
- Generate a random API key for the REST server

Examples:
  bifrost init
  bifrost init --config=./bifrost.yaml --data-dir=./data`,
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")
		dataDir, _ := cmd.Flags().GetString("data-dir")
		force, _ := cmd.Flags().GetBool("force")

		if configPath == "" {
			configPath = config.GetDefaultConfigPath()
		}

		if config.ConfigExists(configPath) && !force {
			cmd.Printf("Configuration already exists at %s. Use --force to overwrite.\n", configPath)
			return
		}

		cfg, err := config.BootstrapConfig(configPath, dataDir)
		if err != nil {
			cmd.Printf("Error initializing configuration: %v\n", err)
			os.Exit(1)
		}

		cmd.Printf("Bifrost initialized successfully!\n")
		cmd.Printf("Configuration: %s\n", configPath)
		cmd.Printf("Data directory: %s\n", cfg.DataDir)
		cmd.Printf("API key: %s\n", cfg.Security.APIKey)
		cmd.Printf("\nYou can now start the server with:\n")
		cmd.Printf("  bifrost serve --config=%s\n", configPath)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().Bool("force", false, "Overwrite an existing configuration file")
}
