package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Round is one outing of golf by one player at one course. Score is the
// derived total stroke count; it stays NULL until a hole score is recorded
// and is only ever written by the round-total recalculation.
type Round struct {
	bun.BaseModel `bun:"table:rounds,alias:rd"`

	RoundID    int        `bun:"round_id,pk,autoincrement" json:"roundID"`
	PlayerID   int        `bun:"player_id,notnull" json:"playerID"`
	CourseID   int        `bun:"course_id,notnull" json:"courseID"`
	StartedAt  time.Time  `bun:"started_at,nullzero,notnull,default:current_timestamp" json:"startedAt"`
	EndedAt    *time.Time `bun:"ended_at" json:"endedAt,omitempty"`
	Temp       *int       `bun:"temp" json:"temp,omitempty"`
	WindSpeed  *int       `bun:"wind_speed" json:"windSpeed,omitempty"`
	Conditions *string    `bun:"conditions" json:"conditions,omitempty"`
	Score      *int       `bun:"score" json:"score,omitempty"`

	Course *Course `bun:"rel:belongs-to,join:course_id=course_id" json:"-"`
	Player *Player `bun:"rel:belongs-to,join:player_id=id" json:"-"`
}
