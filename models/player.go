package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Player is an API user with bcrypt-hashed password.
type Player struct {
	bun.BaseModel `bun:"table:players,alias:p"`

	ID            int       `bun:"id,pk,autoincrement" json:"id"`
	Username      string    `bun:"username,notnull,unique" json:"username"`
	Password      string    `bun:"password,notnull" json:"-"`
	Name          string    `bun:"name" json:"name,omitempty"`
	Email         string    `bun:"email" json:"email,omitempty"`
	HandicapIndex *float64  `bun:"handicap_index" json:"handicapIndex,omitempty"`
	CreatedAt     time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"createdAt"`
}
