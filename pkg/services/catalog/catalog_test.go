package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/de-tools/placement-atlas/pkg/models/domain"
)

const nodesYAML = `
nodes:
  - id: colo-dfw-1
    name: Infomart Dallas
    operator: Equinix
    kind: colocation
    coordinate: {lat: 32.8008, lon: -96.8194}
    vacancy: medium
    pricing:
      gpu_hour: 2.5
  - id: aws-us-east-1
    name: AWS us-east-1
    operator: AWS
    kind: cloud
    approx_coordinate: {lat: 38.9, lon: -77.4}
`

const workloadsYAML = `
workloads:
  - id: realtime-inference
    name: Realtime Inference
    weights:
      load_balancer: 1
      tls_handshake: 1
      ecs_eks_orchestration: 1
      gpu_cold_start: 0.2
      model_gpu_load: 0.2
      queueing_multitenant: 1
      noisy_neighbor: 1
      data_retrieval: 0.5
      longhaul_pop_or_xaz: 1
      serverless_overhead: 0
    inference_ms: {min: 20, typical: 45, max: 120}
    flags:
      needs_hot_storage: true
`

func mustRead(t *testing.T, nodes, workloads string) *Catalog {
	t.Helper()
	c, err := Read(strings.NewReader(nodes), strings.NewReader(workloads))
	require.NoError(t, err)
	return c
}

func TestRead_ValidSeeds(t *testing.T) {
	c := mustRead(t, nodesYAML, workloadsYAML)

	require.Len(t, c.Nodes(), 2)
	require.Len(t, c.Workloads(), 1)

	colo, err := c.Node("colo-dfw-1")
	require.NoError(t, err)
	assert.Equal(t, domain.NodeKindColocation, colo.Kind)
	assert.Equal(t, domain.VacancyMedium, colo.Vacancy)
	require.NotNil(t, colo.Coordinate)
	assert.True(t, colo.OnMap())
	require.NotNil(t, colo.Pricing.GPUHourUSD)
	assert.Equal(t, 2.5, *colo.Pricing.GPUHourUSD)

	cloud, err := c.Node("aws-us-east-1")
	require.NoError(t, err)
	assert.False(t, cloud.OnMap())
	loc, ok := cloud.Location()
	require.True(t, ok, "approx coordinate still locates the node")
	assert.Equal(t, 38.9, loc.Lat)
	assert.Equal(t, domain.VacancyUnknown, cloud.Vacancy)

	w, err := c.Workload("realtime-inference")
	require.NoError(t, err)
	assert.Equal(t, 0.2, w.Weights.GPUColdStart)
	assert.Equal(t, 45.0, w.Inference.TypicalMs)
	assert.True(t, w.Flags.NeedsHotStorage)
	assert.False(t, w.Flags.HighEgress)
}

func TestRead_DuplicateNodeID(t *testing.T) {
	doc := `
nodes:
  - id: colo-1
    kind: colocation
  - id: colo-1
    kind: colocation
`
	_, err := Read(strings.NewReader(doc), strings.NewReader(workloadsYAML))
	assert.ErrorContains(t, err, `duplicate node id "colo-1"`)
}

func TestRead_RejectsUnknownKind(t *testing.T) {
	doc := `
nodes:
  - id: n1
    kind: mainframe
`
	_, err := Read(strings.NewReader(doc), strings.NewReader(workloadsYAML))
	assert.ErrorContains(t, err, `unknown kind "mainframe"`)
}

func TestRead_RejectsUnknownVacancy(t *testing.T) {
	doc := `
nodes:
  - id: n1
    kind: colocation
    vacancy: packed
`
	_, err := Read(strings.NewReader(doc), strings.NewReader(workloadsYAML))
	assert.ErrorContains(t, err, `unknown vacancy "packed"`)
}

func TestRead_RejectsOutOfRangeCoordinate(t *testing.T) {
	doc := `
nodes:
  - id: n1
    kind: colocation
    coordinate: {lat: 95, lon: 0}
`
	_, err := Read(strings.NewReader(doc), strings.NewReader(workloadsYAML))
	assert.ErrorContains(t, err, "latitude")
}

func TestRead_RejectsMissingWeight(t *testing.T) {
	doc := `
workloads:
  - id: w1
    weights:
      load_balancer: 1
`
	_, err := Read(strings.NewReader(nodesYAML), strings.NewReader(doc))
	assert.ErrorContains(t, err, `missing latency weight "tls_handshake"`)
}

func TestRead_RejectsUnknownWeight(t *testing.T) {
	doc := strings.Replace(workloadsYAML, "serverless_overhead: 0",
		"serverless_overhead: 0\n      coffee_breaks: 3", 1)
	_, err := Read(strings.NewReader(nodesYAML), strings.NewReader(doc))
	assert.ErrorContains(t, err, `unknown latency weight "coffee_breaks"`)
}

func TestLookup_UnknownIDs(t *testing.T) {
	c := mustRead(t, nodesYAML, workloadsYAML)

	_, err := c.Node("nope")
	assert.EqualError(t, err, "unknown node: nope")

	_, err = c.Workload("nope")
	assert.EqualError(t, err, "unknown workload: nope")
}

func TestNodes_ReturnsCopy(t *testing.T) {
	c := mustRead(t, nodesYAML, workloadsYAML)

	list := c.Nodes()
	list[0].ID = "mutated"

	again, err := c.Node("colo-dfw-1")
	require.NoError(t, err)
	assert.Equal(t, "colo-dfw-1", again.ID)
}
