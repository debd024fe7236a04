package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Shot is one recorded stroke event. Shot numbers are supplied by the
// caller and unique within a (round, hole); no ordering beyond uniqueness
// is enforced.
type Shot struct {
	bun.BaseModel `bun:"table:shots,alias:s"`

	ShotID     int       `bun:"shot_id,pk,autoincrement" json:"shotID"`
	RoundID    int       `bun:"round_id,notnull,unique:shots_no_dupes" json:"roundID"`
	HoleID     int       `bun:"hole_id,notnull,unique:shots_no_dupes" json:"holeID"`
	PlayerID   int       `bun:"player_id,notnull" json:"playerID"`
	ShotNumber int       `bun:"shot_number,notnull,unique:shots_no_dupes" json:"shotNumber"`
	Club       string    `bun:"club,notnull" json:"club"`
	Distance   *int      `bun:"distance" json:"distance,omitempty"`
	StartLat   float64   `bun:"start_lat,notnull" json:"startLat"`
	StartLng   float64   `bun:"start_lng,notnull" json:"startLng"`
	EndLat     *float64  `bun:"end_lat" json:"endLat,omitempty"`
	EndLng     *float64  `bun:"end_lng" json:"endLng,omitempty"`
	Result     *string   `bun:"result" json:"result,omitempty"`
	Notes      *string   `bun:"notes" json:"notes,omitempty"`
	CreatedAt  time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"createdAt"`

	Round *Round `bun:"rel:belongs-to,join:round_id=round_id" json:"-"`
	Hole  *Hole  `bun:"rel:belongs-to,join:hole_id=hole_id" json:"-"`
}

// Clubs lists every club a shot may be recorded with.
var Clubs = []string{
	"driver",
	"3-wood", "5-wood", "7-wood",
	"2-hybrid", "3-hybrid", "4-hybrid", "5-hybrid",
	"1-iron", "2-iron", "3-iron", "4-iron", "5-iron",
	"6-iron", "7-iron", "8-iron", "9-iron",
	"pitching-wedge", "gap-wedge", "sand-wedge", "lob-wedge",
	"chipper", "putter", "other",
}

// Shot results.
const (
	ResultFairway     = "fairway"
	ResultRough       = "rough"
	ResultBunker      = "bunker"
	ResultWater       = "water"
	ResultTrees       = "trees"
	ResultGreen       = "green"
	ResultHole        = "hole"
	ResultOutOfBounds = "out-of-bounds"
)

// ShotResults lists every valid shot outcome.
var ShotResults = []string{
	ResultFairway, ResultRough, ResultBunker, ResultWater,
	ResultTrees, ResultGreen, ResultHole, ResultOutOfBounds,
}

// ValidClub reports whether club is one of Clubs.
func ValidClub(club string) bool {
	for _, c := range Clubs {
		if c == club {
			return true
		}
	}
	return false
}

// ValidResult reports whether result is one of ShotResults.
func ValidResult(result string) bool {
	for _, r := range ShotResults {
		if r == result {
			return true
		}
	}
	return false
}
