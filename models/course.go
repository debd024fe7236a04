package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Course is a golf course with its clubhouse location.
type Course struct {
	bun.BaseModel `bun:"table:courses,alias:c"`

	CourseID  int       `bun:"course_id,pk,autoincrement" json:"courseID"`
	Name      string    `bun:"name,notnull,unique" json:"name"`
	City      string    `bun:"city" json:"city,omitempty"`
	Country   string    `bun:"country" json:"country,omitempty"`
	Lat       float64   `bun:"lat,notnull" json:"lat"`
	Lng       float64   `bun:"lng,notnull" json:"lng"`
	CreatedAt time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"createdAt"`
}
