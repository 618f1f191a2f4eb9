package commands

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/de-tools/placement-atlas/pkg/services/catalog"
)

// NewNodesCmd lists the node catalog.
func NewNodesCmd(cat *catalog.Catalog, output io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "nodes",
		Short: "List candidate compute nodes",
		RunE: func(cmd *cobra.Command, args []string) error {
			table := tablewriter.NewWriter(output)
			table.Header("ID", "Name", "Kind", "Operator", "Position", "Vacancy")

			for _, n := range cat.Nodes() {
				position := "off-map"
				if loc, ok := n.Location(); ok {
					position = loc.String()
					if !n.OnMap() {
						position += " (approx)"
					}
				}
				table.Append(n.ID, n.Name, string(n.Kind), n.Operator, position, string(n.Vacancy))
			}

			return table.Render()
		},
	}
}

// NewWorkloadsCmd lists the workload profiles.
func NewWorkloadsCmd(cat *catalog.Catalog, output io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "workloads",
		Short: "List workload profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			table := tablewriter.NewWriter(output)
			table.Header("ID", "Name", "Typical Inference", "Description")

			for _, w := range cat.Workloads() {
				table.Append(w.ID, w.Name, fmt.Sprintf("%.0f ms", w.Inference.TypicalMs), w.Description)
			}

			return table.Render()
		},
	}
}
