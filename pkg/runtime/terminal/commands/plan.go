package commands

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/de-tools/placement-atlas/pkg/models/domain"
	"github.com/de-tools/placement-atlas/pkg/services/planner"
	"github.com/de-tools/placement-atlas/pkg/services/rings"
)

type PlanCmd struct {
	threshold  int
	multiplier float64
	countOnly  bool
	bounds     string

	output io.Writer
}

// NewPlanCmd runs the region-fill planner over a rectangle, defaulting
// to the Dallas–Fort Worth metro.
func NewPlanCmd(output io.Writer) *cobra.Command {
	pc := &PlanCmd{output: output}
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Fill a region with edge-container candidates",
		RunE:  pc.run,
	}

	cmd.Flags().IntVar(&pc.threshold, "threshold", 10, "Target RTT threshold in ms")
	cmd.Flags().Float64Var(&pc.multiplier, "multiplier", rings.MultiplierConservative,
		"Coverage radius multiplier (1 = conservative, 2 = standard)")
	cmd.Flags().BoolVar(&pc.countOnly, "count-only", false, "Report candidate count without generating nodes")
	cmd.Flags().StringVar(&pc.bounds, "bounds", "", "Region rectangle as north,south,east,west degrees")

	return cmd
}

func (pc *PlanCmd) run(cmd *cobra.Command, args []string) error {
	region := domain.Region{Bounds: planner.DefaultRegion}
	if pc.bounds != "" {
		b, err := parseBounds(pc.bounds)
		if err != nil {
			return err
		}
		region.Bounds = b
	}

	mode := planner.ModeMaterialize
	if pc.countOnly {
		mode = planner.ModeCount
	}

	result, err := planner.Fill(planner.Request{
		ThresholdMs:      pc.threshold,
		RadiusMultiplier: pc.multiplier,
		Region:           region,
		Mode:             mode,
	})
	if err != nil {
		return fmt.Errorf("region fill failed: %w", err)
	}

	fmt.Fprintf(pc.output, "Threshold: %d ms (radius %.3f km, spacing %.3f km)\n",
		pc.threshold, result.RadiusKm, result.SpacingKm)
	fmt.Fprintf(pc.output, "Region area: %.1f km², candidates: %d\n", result.AreaKm2, result.Count)

	if mode != planner.ModeMaterialize || len(result.Nodes) == 0 {
		return nil
	}

	table := tablewriter.NewWriter(pc.output)
	table.Header("ID", "Name", "Lat", "Lon")
	for _, n := range result.Nodes {
		table.Append(n.ID, n.Name,
			fmt.Sprintf("%.4f", n.Coordinate.Lat),
			fmt.Sprintf("%.4f", n.Coordinate.Lon))
	}
	return table.Render()
}

func parseBounds(raw string) (domain.Bounds, error) {
	parts := strings.Split(raw, ",")
	if len(parts) != 4 {
		return domain.Bounds{}, fmt.Errorf("bounds must be north,south,east,west, got %q", raw)
	}
	vals := make([]float64, 4)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return domain.Bounds{}, fmt.Errorf("invalid bounds component %q: %w", p, err)
		}
		vals[i] = v
	}
	return domain.Bounds{North: vals[0], South: vals[1], East: vals[2], West: vals[3]}, nil
}
