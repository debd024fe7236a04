package scoring

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreLabel(t *testing.T) {
	tests := []struct {
		name    string
		strokes int
		par     int
		want    string
	}{
		{"albatross", 2, 5, "Albatross"},
		{"eagle", 2, 4, "Eagle"},
		{"birdie", 3, 4, "Birdie"},
		{"par", 4, 4, "Par"},
		{"bogey", 5, 4, "Bogey"},
		{"double bogey", 6, 4, "Double Bogey"},
		{"triple bogey", 7, 4, "Triple Bogey"},
		{"quadruple bogey is numeric", 8, 4, "+4"},
		{"way over", 12, 4, "+8"},
		{"hole in one on par 5", 1, 5, "-4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ScoreLabel(tt.strokes, tt.par))
		})
	}
}

func TestStablefordPoints(t *testing.T) {
	tests := []struct {
		name            string
		strokes         int
		par             int
		strokesReceived int
		want            int
	}{
		{"eagle", 2, 4, 0, 5},
		{"birdie", 3, 4, 0, 4},
		{"par", 4, 4, 0, 3},
		{"bogey", 5, 4, 0, 2},
		{"double bogey", 6, 4, 0, 1},
		{"triple bogey", 7, 4, 0, 0},
		{"stroke received turns bogey into par points", 5, 4, 1, 3},
		{"two strokes received", 6, 4, 2, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StablefordPoints(tt.strokes, tt.par, tt.strokesReceived))
		})
	}
}

func TestStablefordPointsMonotonic(t *testing.T) {
	for par := 3; par <= 6; par++ {
		prev := StablefordPoints(1, par, 0)
		for strokes := 2; strokes <= 15; strokes++ {
			points := StablefordPoints(strokes, par, 0)
			assert.LessOrEqual(t, points, prev,
				"points must not increase with strokes (par %d, strokes %d)", par, strokes)
			prev = points
		}
	}
}

func TestHandicapIndexRequiresFiveDifferentials(t *testing.T) {
	for n := 0; n < 5; n++ {
		diffs := make([]float64, n)
		for i := range diffs {
			diffs[i] = 10
		}
		_, err := HandicapIndex(diffs)
		assert.ErrorIs(t, err, ErrInsufficientDifferentials, "with %d differentials", n)
	}
}

func TestHandicapIndex(t *testing.T) {
	seq := func(n int) []float64 {
		out := make([]float64, n)
		for i := range out {
			out[i] = float64(i + 1)
		}
		return out
	}

	tests := []struct {
		name  string
		diffs []float64
		want  float64
	}{
		// 5 entries: best 1
		{"five differentials uses the single best", []float64{10, 12, 14, 16, 18}, 9.6},
		// 7 entries: best 2, avg(5,7)=6, *0.96
		{"seven differentials uses best two", []float64{15, 13, 11, 9, 7, 5, 17}, 5.8},
		// 10 entries: best 4, avg(1..4)=2.5, *0.96
		{"ten differentials uses best four", seq(10), 2.4},
		// 15 entries: best 6, avg(1..6)=3.5, *0.96=3.36
		{"fifteen differentials uses best six", seq(15), 3.4},
		// 20 entries: best 8, avg(1..8)=4.5, *0.96=4.32
		{"twenty differentials uses best eight", seq(20), 4.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := HandicapIndex(tt.diffs)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHandicapIndexOneDecimal(t *testing.T) {
	got, err := HandicapIndex([]float64{11.3, 12.7, 14.1, 9.9, 16.5, 13.2, 10.4})
	require.NoError(t, err)
	assert.Equal(t, got, math.Floor(got*10+0.5)/10, "result must be rounded to one decimal")
}

func TestCourseHandicap(t *testing.T) {
	tests := []struct {
		name         string
		index        float64
		slope        int
		courseRating float64
		par          int
		want         int
	}{
		{"neutral slope, rating equals par", 10, 113, 72, 72, 10},
		{"zero slope falls back to neutral", 10, 0, 72, 72, 10},
		{"steep slope", 10, 140, 74.5, 72, 15},
		{"easy course", 10, 100, 68, 72, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CourseHandicap(tt.index, tt.slope, tt.courseRating, tt.par))
		})
	}
}

func TestIsValidScore(t *testing.T) {
	assert.True(t, IsValidScore(1, 4))
	assert.True(t, IsValidScore(12, 4))
	assert.False(t, IsValidScore(13, 4))
	assert.False(t, IsValidScore(0, 4))
	assert.False(t, IsValidScore(-1, 4))
	assert.True(t, IsValidScore(9, 3))
	assert.False(t, IsValidScore(10, 3))
}
