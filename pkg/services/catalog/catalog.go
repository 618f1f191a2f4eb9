// Package catalog loads the static seed data: candidate nodes and
// workload profiles. Everything is validated at load; the rest of the
// system treats catalog contents as immutable and already correct.
package catalog

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/de-tools/placement-atlas/pkg/models/domain"
)

// weightKeys are the ten latency weight components every workload
// profile must carry. A missing component rejects the profile at load;
// there is no runtime default.
var weightKeys = []string{
	"load_balancer",
	"tls_handshake",
	"ecs_eks_orchestration",
	"gpu_cold_start",
	"model_gpu_load",
	"queueing_multitenant",
	"noisy_neighbor",
	"data_retrieval",
	"longhaul_pop_or_xaz",
	"serverless_overhead",
}

// Catalog holds the loaded seed data.
type Catalog struct {
	nodes     []domain.Node
	workloads []domain.WorkloadProfile
}

// Load reads both seed files.
func Load(nodesPath, workloadsPath string) (*Catalog, error) {
	nf, err := os.Open(nodesPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open node catalog: %w", err)
	}
	defer nf.Close()

	wf, err := os.Open(workloadsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open workload catalog: %w", err)
	}
	defer wf.Close()

	return Read(nf, wf)
}

// Read parses and validates the two seed documents.
func Read(nodes, workloads io.Reader) (*Catalog, error) {
	c := &Catalog{}

	var nodeDoc struct {
		Nodes []nodeSeed `yaml:"nodes"`
	}
	if err := yaml.NewDecoder(nodes).Decode(&nodeDoc); err != nil {
		return nil, fmt.Errorf("failed to parse node catalog: %w", err)
	}
	seen := map[string]bool{}
	for _, seed := range nodeDoc.Nodes {
		n, err := seed.toDomain()
		if err != nil {
			return nil, fmt.Errorf("node %q: %w", seed.ID, err)
		}
		if seen[n.ID] {
			return nil, fmt.Errorf("duplicate node id %q", n.ID)
		}
		seen[n.ID] = true
		c.nodes = append(c.nodes, n)
	}

	var wlDoc struct {
		Workloads []workloadSeed `yaml:"workloads"`
	}
	if err := yaml.NewDecoder(workloads).Decode(&wlDoc); err != nil {
		return nil, fmt.Errorf("failed to parse workload catalog: %w", err)
	}
	for _, seed := range wlDoc.Workloads {
		w, err := seed.toDomain()
		if err != nil {
			return nil, fmt.Errorf("workload %q: %w", seed.ID, err)
		}
		c.workloads = append(c.workloads, w)
	}

	return c, nil
}

// Nodes returns a copy of the node catalog.
func (c *Catalog) Nodes() []domain.Node {
	out := make([]domain.Node, len(c.nodes))
	copy(out, c.nodes)
	return out
}

// Workloads returns a copy of the workload catalog.
func (c *Catalog) Workloads() []domain.WorkloadProfile {
	out := make([]domain.WorkloadProfile, len(c.workloads))
	copy(out, c.workloads)
	return out
}

// Node looks a catalog node up by id.
func (c *Catalog) Node(id string) (domain.Node, error) {
	for _, n := range c.nodes {
		if n.ID == id {
			return n, nil
		}
	}
	return domain.Node{}, fmt.Errorf("unknown node: %s", id)
}

// Workload looks a workload profile up by id.
func (c *Catalog) Workload(id string) (domain.WorkloadProfile, error) {
	for _, w := range c.workloads {
		if w.ID == id {
			return w, nil
		}
	}
	return domain.WorkloadProfile{}, fmt.Errorf("unknown workload: %s", id)
}

type coordinateSeed struct {
	Lat float64 `yaml:"lat"`
	Lon float64 `yaml:"lon"`
}

type nodeSeed struct {
	ID               string          `yaml:"id"`
	Name             string          `yaml:"name"`
	Operator         string          `yaml:"operator"`
	Kind             string          `yaml:"kind"`
	Coordinate       *coordinateSeed `yaml:"coordinate"`
	ApproxCoordinate *coordinateSeed `yaml:"approx_coordinate"`
	Vacancy          string          `yaml:"vacancy"`
	Note             string          `yaml:"note"`
	Pricing          struct {
		PowerLeasePerKWMonth *float64 `yaml:"power_lease_per_kw_month"`
		RackMonthly          *float64 `yaml:"rack_monthly"`
		GPUHour              *float64 `yaml:"gpu_hour"`
		EgressPerGB          *float64 `yaml:"egress_per_gb"`
	} `yaml:"pricing"`
}

func (s nodeSeed) toDomain() (domain.Node, error) {
	if s.ID == "" {
		return domain.Node{}, fmt.Errorf("missing id")
	}

	kind := domain.NodeKind(s.Kind)
	switch kind {
	case domain.NodeKindColocation, domain.NodeKindCloud, domain.NodeKindEdgeContainer:
	default:
		return domain.Node{}, fmt.Errorf("unknown kind %q", s.Kind)
	}

	vacancy := domain.Vacancy(s.Vacancy)
	switch vacancy {
	case domain.VacancyLow, domain.VacancyMedium, domain.VacancyHigh:
	case "":
		vacancy = domain.VacancyUnknown
	case domain.VacancyUnknown:
	default:
		return domain.Node{}, fmt.Errorf("unknown vacancy %q", s.Vacancy)
	}

	n := domain.Node{
		ID:       s.ID,
		Name:     s.Name,
		Operator: s.Operator,
		Kind:     kind,
		Vacancy:  vacancy,
		Note:     s.Note,
		Pricing: domain.Pricing{
			PowerLeasePerKWMonthUSD: s.Pricing.PowerLeasePerKWMonth,
			RackMonthlyUSD:          s.Pricing.RackMonthly,
			GPUHourUSD:              s.Pricing.GPUHour,
			EgressPerGBUSD:          s.Pricing.EgressPerGB,
		},
	}

	if s.Coordinate != nil {
		c, err := domain.NewCoordinate(s.Coordinate.Lat, s.Coordinate.Lon)
		if err != nil {
			return domain.Node{}, err
		}
		n.Coordinate = &c
	}
	if s.ApproxCoordinate != nil {
		c, err := domain.NewCoordinate(s.ApproxCoordinate.Lat, s.ApproxCoordinate.Lon)
		if err != nil {
			return domain.Node{}, err
		}
		n.ApproxCoordinate = &c
	}
	return n, nil
}

type workloadSeed struct {
	ID          string             `yaml:"id"`
	Name        string             `yaml:"name"`
	Description string             `yaml:"description"`
	Weights     map[string]float64 `yaml:"weights"`
	Inference   struct {
		Min     float64 `yaml:"min"`
		Typical float64 `yaml:"typical"`
		Max     float64 `yaml:"max"`
	} `yaml:"inference_ms"`
	Flags struct {
		NeedsHotStorage  bool `yaml:"needs_hot_storage"`
		StrongCompliance bool `yaml:"strong_compliance"`
		HighEgress       bool `yaml:"high_egress"`
	} `yaml:"flags"`
}

func (s workloadSeed) toDomain() (domain.WorkloadProfile, error) {
	if s.ID == "" {
		return domain.WorkloadProfile{}, fmt.Errorf("missing id")
	}

	for _, key := range weightKeys {
		if _, ok := s.Weights[key]; !ok {
			return domain.WorkloadProfile{}, fmt.Errorf("missing latency weight %q", key)
		}
	}
	if len(s.Weights) != len(weightKeys) {
		for key := range s.Weights {
			if !isWeightKey(key) {
				return domain.WorkloadProfile{}, fmt.Errorf("unknown latency weight %q", key)
			}
		}
	}

	return domain.WorkloadProfile{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Weights: domain.LatencyWeights{
			LoadBalancer:        s.Weights["load_balancer"],
			TLSHandshake:        s.Weights["tls_handshake"],
			Orchestration:       s.Weights["ecs_eks_orchestration"],
			GPUColdStart:        s.Weights["gpu_cold_start"],
			ModelLoad:           s.Weights["model_gpu_load"],
			QueueingMultitenant: s.Weights["queueing_multitenant"],
			NoisyNeighbor:       s.Weights["noisy_neighbor"],
			DataRetrieval:       s.Weights["data_retrieval"],
			LongHaul:            s.Weights["longhaul_pop_or_xaz"],
			ServerlessOverhead:  s.Weights["serverless_overhead"],
		},
		Inference: domain.InferenceTime{
			MinMs:     s.Inference.Min,
			TypicalMs: s.Inference.Typical,
			MaxMs:     s.Inference.Max,
		},
		Flags: domain.CostFlags{
			NeedsHotStorage:  s.Flags.NeedsHotStorage,
			StrongCompliance: s.Flags.StrongCompliance,
			HighEgress:       s.Flags.HighEgress,
		},
	}, nil
}

func isWeightKey(key string) bool {
	for _, k := range weightKeys {
		if k == key {
			return true
		}
	}
	return false
}
