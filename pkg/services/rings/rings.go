// Package rings derives latency coverage rings: geodesic circles around
// nodes at the radius a round-trip threshold implies.
package rings

import (
	"sort"

	"github.com/de-tools/placement-atlas/pkg/geo"
	"github.com/de-tools/placement-atlas/pkg/models/domain"
)

// MultiplierConservative and MultiplierStandard are the two supported
// radius scaling modes.
const (
	MultiplierConservative = 1.0
	MultiplierStandard     = 2.0
)

// thresholdRadiusKm maps an RTT threshold in milliseconds to the
// conservative (×1) coverage radius. The values are fixed interface
// constants; shared state saved by older builds depends on them.
var thresholdRadiusKm = map[int]float64{
	5:  1.207,
	10: 3.218,
	15: 9.724,
	20: 28.163,
	25: 56.327,
}

var thresholdColor = map[int]string{
	5:  "#00ff00",
	10: "#ffff00",
	15: "#ffa500",
	20: "#ff6600",
	25: "#ff0000",
}

// Thresholds returns the configured RTT thresholds in ascending order.
func Thresholds() []int {
	out := make([]int, 0, len(thresholdRadiusKm))
	for t := range thresholdRadiusKm {
		out = append(out, t)
	}
	sort.Ints(out)
	return out
}

// RadiusForThreshold resolves the coverage radius for a threshold and
// multiplier. The second return is false for unconfigured thresholds.
func RadiusForThreshold(thresholdMs int, multiplier float64) (float64, bool) {
	base, ok := thresholdRadiusKm[thresholdMs]
	if !ok {
		return 0, false
	}
	return base * multiplier, true
}

// ColorForThreshold returns the display color for a threshold, empty
// when unconfigured.
func ColorForThreshold(thresholdMs int) string {
	return thresholdColor[thresholdMs]
}

// ForThreshold builds one coverage ring per on-map node. An
// unconfigured threshold yields an empty result, not an error; callers
// check for emptiness.
func ForThreshold(nodes []domain.Node, thresholdMs int, multiplier float64) []domain.Ring {
	radius, ok := RadiusForThreshold(thresholdMs, multiplier)
	if !ok {
		return nil
	}

	color := ColorForThreshold(thresholdMs)
	out := make([]domain.Ring, 0, len(nodes))
	for _, n := range nodes {
		if !n.OnMap() {
			continue
		}
		center := *n.Coordinate
		out = append(out, domain.Ring{
			NodeID:      n.ID,
			Center:      center,
			RadiusKm:    radius,
			ThresholdMs: thresholdMs,
			Color:       color,
			Polygon:     geo.Circle(center, radius, geo.DefaultCircleSteps),
		})
	}
	return out
}
