package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ssargent/bifrost/pkg/api"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start the Bifrost REST API server.

Requests are authenticated with the X-API-Key header. The key comes from
the configuration file (run 'bifrost init' to generate one) or from
--api-key.

Examples:
  bifrost serve --config=./bifrost.yaml
  bifrost serve --api-key=mysecretkey --port=8080`,
	Run: func(cmd *cobra.Command, args []string) {
		port, _ := cmd.Flags().GetInt("port")
		apiKey, _ := cmd.Flags().GetString("api-key")

		cfg, ok := configFromContext(cmd)
		if !ok {
			cmd.Println("Error: configuration not found in context")
			return
		}

		if apiKey == "" {
			apiKey = cfg.Security.APIKey
		}
		if apiKey == "" || apiKey == "auto" {
			cmd.Println("Error: no API key configured (run 'bifrost init' or pass --api-key)")
			return
		}
		if !cmd.Flags().Changed("port") && cfg.Port != 0 {
			port = cfg.Port
		}

		kv, ok := storeFromContext(cmd)
		if !ok {
			cmd.Println("Error: store not found in context")
			return
		}

		serverConfig := api.ServerConfig{
			Bind:   cfg.Bind,
			Port:   port,
			APIKey: apiKey,
		}

		if err := api.StartServer(kv, serverConfig); err != nil {
			cmd.Printf("Error starting server: %v\n", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntP("port", "p", 8080, "Port to listen on")
	serveCmd.Flags().String("api-key", "", "API key for authentication (overrides the config file)")
}
