package main

import (
	"fmt"
	"net"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/de-tools/placement-atlas/pkg/server"
	"github.com/de-tools/placement-atlas/pkg/services/catalog"
	"github.com/de-tools/placement-atlas/pkg/services/config"
	"github.com/de-tools/placement-atlas/pkg/services/deployment"
	"github.com/de-tools/placement-atlas/pkg/services/placement"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the placement atlas web server",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to the config file (defaults plus ATLAS_* env vars are used when omitted)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("No .env file loaded: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	cat, err := catalog.Load(cfg.Seeds.Nodes, cfg.Seeds.Workloads)
	if err != nil {
		return fmt.Errorf("failed to load seed catalogs: %w", err)
	}

	logger.Info().
		Int("nodes", len(cat.Nodes())).
		Int("workloads", len(cat.Workloads())).
		Msg("seed catalogs loaded")

	addr := net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)
	api := server.NewWebAPI(server.Config{
		Addr:                 addr,
		ShutdownTimeout:      cfg.Server.ShutdownTimeout,
		PlannerMaxCandidates: cfg.Planner.MaxCandidates,
		Dependencies: server.Dependencies{
			Catalog:     cat,
			Deployments: deployment.NewStore(),
			Estimator:   placement.NewService(),
			Logger:      logger,
		},
	})

	return api.Start()
}
