package deployment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/de-tools/placement-atlas/pkg/models/domain"
)

func node(id string) domain.Node {
	c := domain.Coordinate{Lat: 32.7, Lon: -96.8}
	return domain.Node{ID: id, Kind: domain.NodeKindEdgeContainer, Coordinate: &c}
}

func TestStore_AddAndListKeepsInsertionOrder(t *testing.T) {
	s := NewStore()
	s.Add(node("c"), node("a"))
	s.Add(node("b"))

	ids := []string{}
	for _, n := range s.List() {
		ids = append(ids, n.ID)
	}
	assert.Equal(t, []string{"c", "a", "b"}, ids)
}

func TestStore_AddSameIDReplaces(t *testing.T) {
	s := NewStore()
	s.Add(node("a"))

	updated := node("a")
	updated.Name = "renamed"
	s.Add(updated)

	require.Len(t, s.List(), 1)
	got, ok := s.Get("a")
	require.True(t, ok)
	assert.Equal(t, "renamed", got.Name)
}

func TestStore_Remove(t *testing.T) {
	s := NewStore()
	s.Add(node("a"), node("b"))

	require.NoError(t, s.Remove("a"))
	require.Len(t, s.List(), 1)
	assert.Equal(t, "b", s.List()[0].ID)

	err := s.Remove("a")
	assert.EqualError(t, err, "unknown placed node: a")
}

func TestStore_Clear(t *testing.T) {
	s := NewStore()
	s.Add(node("a"), node("b"), node("c"))

	assert.Equal(t, 3, s.Clear())
	assert.Empty(t, s.List())
	assert.Equal(t, 0, s.Clear())
}
