package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance_SamePointIsZero(t *testing.T) {
	points := []Point{
		London,
		{Lat: 0, Lon: 0},
		{Lat: -33.8688, Lon: 151.2093},
		{Lat: 89.9, Lon: -179.9},
	}

	for _, p := range points {
		assert.Equal(t, 0.0, Distance(p, p))
	}
}

func TestDistance_Symmetric(t *testing.T) {
	pairs := [][2]Point{
		{London, {Lat: 51.5310471214164, Lon: -0.11013005125770886}},
		{{Lat: 40.7128, Lon: -74.0060}, {Lat: 34.0522, Lon: -118.2437}},
		{{Lat: -90, Lon: 0}, {Lat: 90, Lon: 0}},
	}

	for _, pair := range pairs {
		assert.InDelta(t, Distance(pair[0], pair[1]), Distance(pair[1], pair[0]), 1e-9)
	}
}

func TestDistance_KnownValues(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Point
		expected float64
		delta    float64
	}{
		{
			name:     "london to paris",
			a:        London,
			b:        Point{Lat: 48.8566, Lon: 2.3522},
			expected: 343.5,
			delta:    1.0,
		},
		{
			name:     "quarter meridian",
			a:        Point{Lat: 0, Lon: 0},
			b:        Point{Lat: 90, Lon: 0},
			expected: EarthRadiusKm * 3.141592653589793 / 2,
			delta:    1e-6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Distance(tt.a, tt.b), tt.delta)
		})
	}
}

func TestDistance_ChelseaBarIsWithinThreeKm(t *testing.T) {
	chelseaBar := Point{Lat: 51.5310471214164, Lon: -0.11013005125770886}

	d := Distance(London, chelseaBar)

	assert.Less(t, d, 3.0)
	assert.Greater(t, d, 2.0)
}
