package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/calgara/golftrack/models"
)

func intp(v int) *int { return &v }

func strp(v string) *string { return &v }

func hole(par int) *models.Hole { return &models.Hole{Par: par} }

func TestComputeEmpty(t *testing.T) {
	got := Compute(nil)

	assert.Equal(t, 0, got.TotalShots)
	assert.Equal(t, 0, got.AverageDistance)
	assert.Equal(t, 0, got.Accuracy.FairwaysHit)
	assert.Equal(t, 0, got.Accuracy.GreensInRegulation)
	assert.Empty(t, got.ClubStats)
	assert.Empty(t, got.ResultBreakdown)
}

func TestComputeTwoShotPar4(t *testing.T) {
	shots := []models.Shot{
		{ShotNumber: 1, Club: "driver", Result: strp(models.ResultFairway), Distance: intp(250), Hole: hole(4)},
		{ShotNumber: 2, Club: "7-iron", Result: strp(models.ResultGreen), Distance: intp(150), Hole: hole(4)},
	}

	got := Compute(shots)

	assert.Equal(t, 2, got.TotalShots)
	assert.Equal(t, 200, got.AverageDistance)
	assert.Equal(t, 1, got.Accuracy.FairwaysHit)
	assert.Equal(t, 1, got.Accuracy.GreensInRegulation, "approach inside par-2 threshold counts")

	assert.Equal(t, ClubStats{Count: 1, AverageDistance: 250, Accuracy: 100}, got.ClubStats["driver"])
	assert.Equal(t, ClubStats{Count: 1, AverageDistance: 150, Accuracy: 100}, got.ClubStats["7-iron"])

	assert.Equal(t, map[string]int{
		models.ResultFairway: 1,
		models.ResultGreen:   1,
	}, got.ResultBreakdown)
}

func TestComputeGreensInRegulationPar3(t *testing.T) {
	shots := []models.Shot{
		// Tee shot to the green on a par 3: threshold is 1, qualifies.
		{ShotNumber: 1, Club: "7-iron", Result: strp(models.ResultGreen), Hole: hole(3)},
		// Second shot to the green on a par 3: misses the threshold.
		{ShotNumber: 2, Club: "sand-wedge", Result: strp(models.ResultGreen), Hole: hole(3)},
	}

	got := Compute(shots)
	assert.Equal(t, 1, got.Accuracy.GreensInRegulation)
}

func TestComputeGreensInRegulationNonPositiveThreshold(t *testing.T) {
	shots := []models.Shot{
		{ShotNumber: 1, Club: "putter", Result: strp(models.ResultGreen), Hole: hole(2)},
		{ShotNumber: 1, Club: "putter", Result: strp(models.ResultGreen), Hole: hole(1)},
	}

	got := Compute(shots)
	assert.Equal(t, 0, got.Accuracy.GreensInRegulation,
		"a threshold below one counts no shot at all")
}

func TestComputeFairwaysHitOnlyTeeShots(t *testing.T) {
	shots := []models.Shot{
		{ShotNumber: 1, Club: "driver", Result: strp(models.ResultFairway), Hole: hole(5)},
		// Layup back to the fairway is not a fairway hit.
		{ShotNumber: 2, Club: "5-wood", Result: strp(models.ResultFairway), Hole: hole(5)},
		{ShotNumber: 1, Club: "driver", Result: strp(models.ResultRough), Hole: hole(4)},
	}

	got := Compute(shots)
	assert.Equal(t, 1, got.Accuracy.FairwaysHit)
}

func TestComputeAverageDistanceSkipsMissing(t *testing.T) {
	shots := []models.Shot{
		{ShotNumber: 1, Club: "driver", Distance: intp(240), Hole: hole(4)},
		{ShotNumber: 2, Club: "putter", Hole: hole(4)},
		{ShotNumber: 3, Club: "putter", Hole: hole(4)},
	}

	got := Compute(shots)
	assert.Equal(t, 3, got.TotalShots)
	assert.Equal(t, 240, got.AverageDistance, "only shots with a distance feed the mean")
	assert.Equal(t, 0, got.ClubStats["putter"].AverageDistance)
}

func TestComputeClubAccuracyRounding(t *testing.T) {
	shots := []models.Shot{
		{ShotNumber: 2, Club: "7-iron", Result: strp(models.ResultGreen), Hole: hole(4)},
		{ShotNumber: 2, Club: "7-iron", Result: strp(models.ResultRough), Hole: hole(4)},
		{ShotNumber: 2, Club: "7-iron", Result: strp(models.ResultBunker), Hole: hole(4)},
	}

	got := Compute(shots)
	assert.Equal(t, 33, got.ClubStats["7-iron"].Accuracy, "1 of 3 rounds to 33 percent")
}

func TestComputeClubAccuracyCountsHoleOuts(t *testing.T) {
	shots := []models.Shot{
		{ShotNumber: 3, Club: "lob-wedge", Result: strp(models.ResultHole), Hole: hole(4)},
		{ShotNumber: 3, Club: "lob-wedge", Result: strp(models.ResultWater), Hole: hole(4)},
	}

	got := Compute(shots)
	assert.Equal(t, 50, got.ClubStats["lob-wedge"].Accuracy)
}

func TestComputeNilResultExcludedFromBreakdown(t *testing.T) {
	shots := []models.Shot{
		{ShotNumber: 1, Club: "driver", Hole: hole(4)},
		{ShotNumber: 2, Club: "putter", Result: strp(models.ResultHole), Hole: hole(4)},
	}

	got := Compute(shots)
	assert.Equal(t, map[string]int{models.ResultHole: 1}, got.ResultBreakdown)
	assert.Equal(t, 2, got.TotalShots)
}

func TestComputeRoundHalfUp(t *testing.T) {
	shots := []models.Shot{
		{ShotNumber: 1, Club: "driver", Distance: intp(100), Hole: hole(4)},
		{ShotNumber: 1, Club: "driver", Distance: intp(101), Hole: hole(4)},
	}

	got := Compute(shots)
	assert.Equal(t, 101, got.AverageDistance, "100.5 rounds half-up to 101")
}
