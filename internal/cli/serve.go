package cli

import (
	"github.com/spf13/cobra"

	"artdisrupt/internal/logging"
	"artdisrupt/internal/server"
	"artdisrupt/pkg/config"
)

func ServeAppCommand() *cobra.Command {
	var configPath, port string

	command := &cobra.Command{
		Use:     "serve",
		Short:   "Serve an API to protect images over the web",
		Example: "artdisrupt serve --config artdisrupt.yaml --port 8888",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadServerConfig(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("port") {
				cfg.Port = port
			}

			logger := logging.BuildLogger(logging.Options{Level: cfg.LogLevel, JSON: cfg.LogJSON})
			return server.StartServer(cmd.Context(), cfg, logger)
		},
	}

	command.Flags().StringVar(&configPath, "config", "", "YAML config file, values can be overridden with ARTDISRUPT__ prefixed env vars")
	command.Flags().StringVar(&port, "port", config.DefaultPort, "Port on which to start the server")

	return command
}
