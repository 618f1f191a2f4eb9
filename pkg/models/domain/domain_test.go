package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCoordinate_RangeValidation(t *testing.T) {
	_, err := NewCoordinate(32.78, -96.80)
	require.NoError(t, err)

	_, err = NewCoordinate(91, 0)
	assert.ErrorContains(t, err, "latitude")

	_, err = NewCoordinate(-91, 0)
	assert.ErrorContains(t, err, "latitude")

	_, err = NewCoordinate(0, 181)
	assert.ErrorContains(t, err, "longitude")

	_, err = NewCoordinate(0, -180.5)
	assert.ErrorContains(t, err, "longitude")
}

func TestNewBreakdown_TotalIsSumOfTerms(t *testing.T) {
	b := NewBreakdown("ms", []BreakdownTerm{
		{Name: "a", Value: 1.1},
		{Name: "b", Value: 2.2},
		{Name: "c", Value: 0},
	})

	sum := 0.0
	for _, term := range b.Terms {
		sum += term.Value
	}
	assert.Equal(t, sum, b.Total)
}

func TestBreakdown_TermLookup(t *testing.T) {
	b := NewBreakdown("USD", []BreakdownTerm{{Name: "egress", Value: 90}})

	v, ok := b.Term("egress")
	assert.True(t, ok)
	assert.Equal(t, 90.0, v)

	_, ok = b.Term("missing")
	assert.False(t, ok)
}

func TestNode_Location(t *testing.T) {
	exact := Coordinate{Lat: 1, Lon: 2}
	approx := Coordinate{Lat: 3, Lon: 4}

	onMap := Node{Coordinate: &exact, ApproxCoordinate: &approx}
	loc, ok := onMap.Location()
	require.True(t, ok)
	assert.Equal(t, exact, loc)
	assert.True(t, onMap.OnMap())

	offMap := Node{ApproxCoordinate: &approx}
	loc, ok = offMap.Location()
	require.True(t, ok)
	assert.Equal(t, approx, loc)
	assert.False(t, offMap.OnMap())

	unknown := Node{}
	_, ok = unknown.Location()
	assert.False(t, ok)
}

func TestRegion_BoxFromPolygon(t *testing.T) {
	region := Region{Polygon: []Coordinate{
		{Lat: 32.6, Lon: -97.4},
		{Lat: 33.3, Lon: -96.9},
		{Lat: 32.9, Lon: -96.5},
	}}

	box := region.Box()
	assert.Equal(t, Bounds{North: 33.3, South: 32.6, East: -96.5, West: -97.4}, box)
}
