package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceMeters(t *testing.T) {
	// One degree of longitude at the equator is ~111.19km.
	d := DistanceMeters(0, 0, 0, 1)
	assert.InDelta(t, 111195, d, 100)

	// London to Paris, ~343km.
	d = DistanceMeters(51.5074, -0.1278, 48.8566, 2.3522)
	assert.InDelta(t, 343500, d, 2000)
}

func TestDistanceMetersSamePoint(t *testing.T) {
	assert.Equal(t, 0.0, DistanceMeters(53.35, -6.26, 53.35, -6.26))
}

func TestDistanceYards(t *testing.T) {
	meters := DistanceMeters(0, 0, 0, 0.001)
	yards := DistanceYards(0, 0, 0, 0.001)
	assert.InDelta(t, meters*1.0936133, yards, 0.001)
}

func TestBearingDegrees(t *testing.T) {
	assert.InDelta(t, 90, BearingDegrees(0, 0, 0, 1), 0.01)
	assert.InDelta(t, 0, BearingDegrees(0, 0, 1, 0), 0.01)
	assert.InDelta(t, 180, BearingDegrees(1, 0, 0, 0), 0.01)
	assert.InDelta(t, 270, BearingDegrees(0, 1, 0, 0), 0.01)
}
