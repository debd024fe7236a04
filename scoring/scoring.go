// Package scoring holds the pure golf scoring rules: score labels,
// Stableford points, and the simplified handicap calculation. Nothing in
// here touches storage.
package scoring

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// ErrInsufficientDifferentials is returned by HandicapIndex when fewer
// than five score differentials are supplied.
var ErrInsufficientDifferentials = errors.New("handicap index requires at least 5 score differentials")

// ScoreLabel names a hole result relative to par. Differences beyond
// triple bogey or albatross come back as a signed number, e.g. "+4".
func ScoreLabel(strokes, par int) string {
	switch diff := strokes - par; diff {
	case -3:
		return "Albatross"
	case -2:
		return "Eagle"
	case -1:
		return "Birdie"
	case 0:
		return "Par"
	case 1:
		return "Bogey"
	case 2:
		return "Double Bogey"
	case 3:
		return "Triple Bogey"
	default:
		return fmt.Sprintf("%+d", diff)
	}
}

// StablefordPoints scores a hole under the Stableford system. Strokes
// received reduce the gross score before comparing against par.
func StablefordPoints(strokes, par, strokesReceived int) int {
	switch diff := (strokes - strokesReceived) - par; {
	case diff <= -2:
		return 5
	case diff == -1:
		return 4
	case diff == 0:
		return 3
	case diff == 1:
		return 2
	case diff == 2:
		return 1
	default:
		return 0
	}
}

// bestCountFor maps how many differentials are on record to how many of
// the lowest ones feed the handicap average.
func bestCountFor(total int) int {
	switch {
	case total >= 20:
		return 8
	case total >= 15:
		return 6
	case total >= 10:
		return 4
	case total >= 7:
		return 2
	default:
		return 1
	}
}

// HandicapIndex derives a handicap index from a history of score
// differentials: average the best N (per bestCountFor), multiply by 0.96,
// round to one decimal. At least five differentials are required.
func HandicapIndex(differentials []float64) (float64, error) {
	if len(differentials) < 5 {
		return 0, ErrInsufficientDifferentials
	}

	sorted := make([]float64, len(differentials))
	copy(sorted, differentials)
	sort.Float64s(sorted)

	n := bestCountFor(len(sorted))
	var sum float64
	for _, d := range sorted[:n] {
		sum += d
	}

	idx := sum / float64(n) * 0.96
	return math.Floor(idx*10+0.5) / 10, nil
}

// CourseHandicap converts a handicap index to a course handicap for a
// course of the given slope, rating, and par. 113 is the neutral slope.
func CourseHandicap(handicapIndex float64, slopeRating int, courseRating float64, par int) int {
	if slopeRating == 0 {
		slopeRating = 113
	}
	return roundHalfUp(handicapIndex*float64(slopeRating)/113 + (courseRating - float64(par)))
}

// IsValidScore reports whether a stroke count is plausible for a hole:
// positive and no more than triple the par.
func IsValidScore(score, par int) bool {
	return score > 0 && score <= par*3
}

func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}
