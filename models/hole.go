package models

import "github.com/uptrace/bun"

// Hole is fixed reference data for one hole of a course, created at
// course-load time and read-only afterwards.
type Hole struct {
	bun.BaseModel `bun:"table:holes,alias:h"`

	HoleID      int     `bun:"hole_id,pk,autoincrement" json:"holeID"`
	CourseID    int     `bun:"course_id,notnull,unique:holes_no_dupes" json:"courseID"`
	Number      int     `bun:"number,notnull,unique:holes_no_dupes" json:"number"`
	Par         int     `bun:"par,notnull" json:"par"`
	Yardage     int     `bun:"yardage,notnull" json:"yardage"`
	StrokeIndex *int    `bun:"stroke_index" json:"strokeIndex,omitempty"`
	TeeLat      float64 `bun:"tee_lat,notnull" json:"teeLat"`
	TeeLng      float64 `bun:"tee_lng,notnull" json:"teeLng"`
	GreenLat    float64 `bun:"green_lat,notnull" json:"greenLat"`
	GreenLng    float64 `bun:"green_lng,notnull" json:"greenLng"`

	Course *Course `bun:"rel:belongs-to,join:course_id=course_id" json:"-"`
}
