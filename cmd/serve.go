package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/arcanaland/vadar/internal/config"
	"github.com/arcanaland/vadar/internal/server"
)

type serveSettings struct {
	Host string
	Port int
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the UUIDv4 HTTP service",
	Long: `Serve starts an HTTP server exposing GET /api/v1/generate-uuid-v4.

The listen address is resolved from --host/--port, then the HOST and PORT
environment variables, then the [server] section of the config file, and
finally defaults to 127.0.0.1:6969.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		logger, err := newLogger(cmd, cfg)
		if err != nil {
			return err
		}

		settings, err := resolveServeSettings(cmd, cfg)
		if err != nil {
			logger.Error("Invalid server settings", "err", err)
			return err
		}

		gin.SetMode(gin.ReleaseMode)
		router, err := server.NewRouter(server.Options{
			AllowedOrigins: cfg.Server.AllowedOrigins,
			TrustedProxies: cfg.Server.TrustedProxies,
			Logger:         logger,
		})
		if err != nil {
			return err
		}

		addr := server.Addr(settings.Host, settings.Port)
		logger.Infof("Starting server on %s", addr)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return server.Run(ctx, addr, router, logger)
	},
}

// resolveServeSettings layers flags over HOST/PORT over the config file
func resolveServeSettings(cmd *cobra.Command, cfg *config.Config) (serveSettings, error) {
	v := viper.New()
	v.SetDefault("host", cfg.Server.Host)
	v.SetDefault("port", cfg.Server.Port)

	if err := v.BindEnv("host", "HOST"); err != nil {
		return serveSettings{}, err
	}
	if err := v.BindEnv("port", "PORT"); err != nil {
		return serveSettings{}, err
	}
	if err := v.BindPFlag("host", cmd.Flags().Lookup("host")); err != nil {
		return serveSettings{}, err
	}
	if err := v.BindPFlag("port", cmd.Flags().Lookup("port")); err != nil {
		return serveSettings{}, err
	}

	port, err := server.ParsePort(v.GetString("port"))
	if err != nil {
		return serveSettings{}, err
	}

	return serveSettings{
		Host: v.GetString("host"),
		Port: port,
	}, nil
}

func init() {
	RootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("host", "", "Host to listen on")
	serveCmd.Flags().Int("port", 0, "Port to listen on")
}
