package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/de-tools/placement-atlas/pkg/models/domain"
	"github.com/de-tools/placement-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/placement-atlas/pkg/services/catalog"
	"github.com/de-tools/placement-atlas/pkg/services/placement"
)

type EstimateCmd struct {
	lat      float64
	lon      float64
	workload string
	nodeIDs  []string

	catalog   *catalog.Catalog
	estimator placement.Service
	reporter  *export.Reporter
}

// NewEstimateCmd compares candidate nodes against a point of use.
func NewEstimateCmd(cat *catalog.Catalog, estimator placement.Service, reporter *export.Reporter) *cobra.Command {
	ec := &EstimateCmd{catalog: cat, estimator: estimator, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate latency and cost for candidate placements",
		RunE:  ec.run,
	}

	cmd.Flags().Float64Var(&ec.lat, "lat", 0, "Point-of-use latitude")
	cmd.Flags().Float64Var(&ec.lon, "lon", 0, "Point-of-use longitude")
	cmd.Flags().StringVar(&ec.workload, "workload", "", "Workload profile id")
	cmd.Flags().StringSliceVar(&ec.nodeIDs, "node", nil, "Restrict to specific node ids (repeatable)")

	_ = cmd.MarkFlagRequired("lat")
	_ = cmd.MarkFlagRequired("lon")
	_ = cmd.MarkFlagRequired("workload")

	return cmd
}

func (ec *EstimateCmd) run(cmd *cobra.Command, args []string) error {
	pointOfUse, err := domain.NewCoordinate(ec.lat, ec.lon)
	if err != nil {
		return err
	}

	workload, err := ec.catalog.Workload(ec.workload)
	if err != nil {
		return fmt.Errorf("failed to resolve workload: %w", err)
	}

	nodes := ec.catalog.Nodes()
	if len(ec.nodeIDs) > 0 {
		selected := make([]domain.Node, 0, len(ec.nodeIDs))
		for _, id := range ec.nodeIDs {
			n, err := ec.catalog.Node(id)
			if err != nil {
				return err
			}
			selected = append(selected, n)
		}
		nodes = selected
	}

	estimates := ec.estimator.Compare(pointOfUse, nodes, workload)
	if len(estimates) == 0 {
		return fmt.Errorf("no locatable nodes to estimate")
	}

	return ec.reporter.Handle(&export.Report{
		PointOfUse: pointOfUse,
		Workload:   workload,
		Estimates:  estimates,
	})
}
