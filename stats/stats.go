// Package stats computes aggregate shot statistics. It is a pure
// read-and-reduce over whatever shot set the caller supplies; persistence
// and filtering happen upstream in the store.
package stats

import (
	"math"

	"github.com/calgara/golftrack/models"
)

// Accuracy counts the two headline accuracy stats.
type Accuracy struct {
	FairwaysHit        int `json:"fairwaysHit"`
	GreensInRegulation int `json:"greensInRegulation"`
}

// ClubStats aggregates one club's usage. Accuracy is the percentage of
// the club's shots that finished on the fairway, the green, or in the hole.
type ClubStats struct {
	Count           int `json:"count"`
	AverageDistance int `json:"averageDistance"`
	Accuracy        int `json:"accuracy"`
}

// ShotStatistics is the full aggregate over a shot set.
type ShotStatistics struct {
	TotalShots      int                  `json:"totalShots"`
	AverageDistance int                  `json:"averageDistance"`
	Accuracy        Accuracy             `json:"accuracy"`
	ClubStats       map[string]ClubStats `json:"clubStats"`
	ResultBreakdown map[string]int       `json:"resultBreakdown"`
}

type clubAccumulator struct {
	count        int
	distanceSum  int
	distanceN    int
	accurateHits int
}

// accurateResult reports whether a shot outcome counts toward club accuracy.
func accurateResult(result string) bool {
	switch result {
	case models.ResultFairway, models.ResultGreen, models.ResultHole:
		return true
	}
	return false
}

// Compute reduces a shot set to its statistics. Greens in regulation uses
// the par minus two threshold; a threshold below one (par 3 gives exactly
// one) means no shot on that hole can qualify. Shots without a loaded
// hole contribute to everything except the GIR count.
func Compute(shots []models.Shot) ShotStatistics {
	out := ShotStatistics{
		TotalShots:      len(shots),
		ClubStats:       map[string]ClubStats{},
		ResultBreakdown: map[string]int{},
	}

	var distanceSum, distanceN int
	clubs := map[string]*clubAccumulator{}

	for _, shot := range shots {
		if shot.Distance != nil {
			distanceSum += *shot.Distance
			distanceN++
		}

		acc := clubs[shot.Club]
		if acc == nil {
			acc = &clubAccumulator{}
			clubs[shot.Club] = acc
		}
		acc.count++
		if shot.Distance != nil {
			acc.distanceSum += *shot.Distance
			acc.distanceN++
		}

		if shot.Result == nil {
			continue
		}
		result := *shot.Result
		out.ResultBreakdown[result]++
		if accurateResult(result) {
			acc.accurateHits++
		}

		if shot.ShotNumber == 1 && result == models.ResultFairway {
			out.Accuracy.FairwaysHit++
		}
		if shot.Hole != nil && result == models.ResultGreen {
			threshold := shot.Hole.Par - 2
			if threshold >= 1 && shot.ShotNumber <= threshold {
				out.Accuracy.GreensInRegulation++
			}
		}
	}

	out.AverageDistance = meanRounded(distanceSum, distanceN)

	for club, acc := range clubs {
		out.ClubStats[club] = ClubStats{
			Count:           acc.count,
			AverageDistance: meanRounded(acc.distanceSum, acc.distanceN),
			Accuracy:        percentRounded(acc.accurateHits, acc.count),
		}
	}

	return out
}

func meanRounded(sum, n int) int {
	if n == 0 {
		return 0
	}
	return roundHalfUp(float64(sum) / float64(n))
}

func percentRounded(part, whole int) int {
	if whole == 0 {
		return 0
	}
	return roundHalfUp(float64(part) / float64(whole) * 100)
}

func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}
