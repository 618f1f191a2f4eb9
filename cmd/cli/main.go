package main

import (
	"fmt"
	"os"

	"github.com/de-tools/placement-atlas/pkg/runtime/terminal"
	"github.com/de-tools/placement-atlas/pkg/services/catalog"
	"github.com/de-tools/placement-atlas/pkg/services/config"
	"github.com/de-tools/placement-atlas/pkg/services/placement"
)

func main() {
	cfg, err := config.Load(os.Getenv("ATLAS_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cat, err := catalog.Load(cfg.Seeds.Nodes, cfg.Seeds.Workloads)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cli := terminal.NewCLI(terminal.Options{
		Catalog:   cat,
		Estimator: placement.NewService(),
		Output:    os.Stdout,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
