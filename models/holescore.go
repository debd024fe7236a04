package models

import "github.com/uptrace/bun"

// HoleScore is the recorded stroke count and secondary stats for one player
// on one hole in one round. At most one row exists per (round, hole); the
// unique constraint backs the upsert.
type HoleScore struct {
	bun.BaseModel `bun:"table:hole_scores,alias:hs"`

	ID         int     `bun:"id,pk,autoincrement" json:"id"`
	RoundID    int     `bun:"round_id,notnull,unique:hole_scores_no_dupes" json:"roundID"`
	HoleID     int     `bun:"hole_id,notnull,unique:hole_scores_no_dupes" json:"holeID"`
	PlayerID   int     `bun:"player_id,notnull" json:"playerID"`
	Score      int     `bun:"score,notnull" json:"score"`
	Putts      *int    `bun:"putts" json:"putts,omitempty"`
	FairwayHit *bool   `bun:"fairway_hit" json:"fairwayHit,omitempty"`
	GIR        *bool   `bun:"gir" json:"gir,omitempty"`
	Notes      *string `bun:"notes" json:"notes,omitempty"`

	Round *Round `bun:"rel:belongs-to,join:round_id=round_id" json:"-"`
	Hole  *Hole  `bun:"rel:belongs-to,join:hole_id=hole_id" json:"-"`
}
