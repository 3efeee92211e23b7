package cli

import (
	"fmt"

	"resumelens/internal/roles"
	"resumelens/internal/server"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start HTTP server for resume scoring and drafting",
	Long: `Start an HTTP server that provides REST API endpoints for resume
scoring and document drafting.

Available endpoints:
- POST /match: Score a resume against a job description
- POST /quickscan: Scan a resume against the role library
- POST /validate: Validate a job description
- POST /parse: Parse a resume into a structured profile
- POST /draft: Draft tailored application documents
- GET /health: Health check endpoint
- GET /stats: Server statistics and rate limiting info`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringP("port", "p", "", "Port to listen on (default from config)")
	serveCmd.Flags().String("host", "", "Host to bind to (default from config)")

	// Bind flags to viper config keys
	bindFlag := func(key, flagName string) {
		if err := viper.BindPFlag(key, serveCmd.Flags().Lookup(flagName)); err != nil {
			panic(err)
		}
	}

	bindFlag("server.port", "port")
	bindFlag("server.host", "host")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	pipe, err := buildPipeline(cfg)
	if err != nil {
		return err
	}

	// Hot-reload the role library while the server runs
	if cfg.Pipeline.RoleLibrary.File != "" && cfg.Pipeline.RoleLibrary.Watch {
		watcher := roles.NewWatcher(
			cfg.Pipeline.RoleLibrary.File,
			pipe.Library(),
			cfg.Pipeline.RoleLibrary.DebounceDelay,
			logger,
		)
		if err := watcher.Start(); err != nil {
			return fmt.Errorf("failed to watch role library: %w", err)
		}
		defer watcher.Stop()
	}

	serverCfg := server.ServerConfig{
		Host:           cfg.Server.Host,
		Port:           cfg.Server.Port,
		Version:        Version,
		APIKeys:        cfg.Server.APIKeys,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxRequestSize: cfg.Server.MaxRequestSize,
		RateLimit:      &cfg.Server.RateLimit,
	}
	return server.NewServer(cfg, serverCfg, pipe, logger).Start()
}
