package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/de-tools/placement-atlas/pkg/models/domain"
)

// Report is a rendered placement comparison: one section per candidate
// node with its latency and cost decompositions.
type Report struct {
	PointOfUse domain.Coordinate
	Workload   domain.WorkloadProfile
	Estimates  []domain.PlacementEstimate
}

type TableConfig struct {
	NameWidth        int
	ValueWidth       int
	UnitWidth        int
	DescriptionWidth int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		NameWidth:        24,
		ValueWidth:       14,
		UnitWidth:        6,
		DescriptionWidth: 40,
	}
}

type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

func (c *Reporter) Handle(report *Report) error {
	funcMap := template.FuncMap{
		"formatRow": func(name string, value interface{}, unit string, desc string) string {
			unitStr := unit
			if unit == "" {
				unitStr = strings.Repeat(" ", c.config.UnitWidth)
			}
			return fmt.Sprintf("| %-*s | %-*v | %-*s | %-*s |",
				c.config.NameWidth, name,
				c.config.ValueWidth, value,
				c.config.UnitWidth, unitStr,
				c.config.DescriptionWidth, desc)
		},
		"separator": func() string {
			return fmt.Sprintf("+%s+%s+%s+%s+",
				strings.Repeat("-", c.config.NameWidth+2),
				strings.Repeat("-", c.config.ValueWidth+2),
				strings.Repeat("-", c.config.UnitWidth+2),
				strings.Repeat("-", c.config.DescriptionWidth+2))
		},
		"money": func(v float64) string {
			return fmt.Sprintf("%.2f", v)
		},
		"ms": func(v float64) string {
			return fmt.Sprintf("%.3f", v)
		},
	}

	tmpl := `
Placement comparison for workload "{{.Workload.Name}}" from {{.PointOfUse}}

{{range .Estimates}}
=== {{.Node.Name}} ({{.Node.Kind}}) ===
Distance: {{printf "%.1f" .DistanceKm}} km
Latency:  {{ms .LatencyMs}} ms round trip
Cost:     USD {{money .MonthlyCostUSD}} / month

{{separator}}
{{formatRow "Term" "Value" "Unit" "Description"}}
{{separator}}
{{range .Latency.Terms}}{{formatRow .Name (ms .Value) "ms" .Description}}
{{end}}{{range .Cost.Terms}}{{formatRow .Name (money .Value) "USD" .Description}}
{{end}}{{separator}}
{{end}}
`

	t, err := template.New("report").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, report)
}
