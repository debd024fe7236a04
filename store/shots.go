package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/calgara/golftrack/metrics"
	"github.com/calgara/golftrack/models"
)

const (
	maxShotNumber = 20
	maxDistance   = 500
	maxNotesLen   = 500
	maxBatchSize  = 50
)

// ShotInput is the payload for recording a single shot. Shot numbers are
// chosen by the caller; the store only enforces uniqueness.
type ShotInput struct {
	HoleID     int      `json:"holeID"`
	ShotNumber int      `json:"shotNumber"`
	Club       string   `json:"club"`
	Distance   *int     `json:"distance,omitempty"`
	StartLat   float64  `json:"startLat"`
	StartLng   float64  `json:"startLng"`
	EndLat     *float64 `json:"endLat,omitempty"`
	EndLng     *float64 `json:"endLng,omitempty"`
	Result     *string  `json:"result,omitempty"`
	Notes      *string  `json:"notes,omitempty"`
}

// ShotUpdate carries the optional fields of a shot update. Nil fields are
// left unchanged. Shot number and hole are immutable once recorded.
type ShotUpdate struct {
	Club     *string  `json:"club,omitempty"`
	Distance *int     `json:"distance,omitempty"`
	EndLat   *float64 `json:"endLat,omitempty"`
	EndLng   *float64 `json:"endLng,omitempty"`
	Result   *string  `json:"result,omitempty"`
	Notes    *string  `json:"notes,omitempty"`
}

// ShotFilter narrows ListShots. Nil fields match everything.
type ShotFilter struct {
	RoundID *int
	HoleID  *int
	Club    *string
}

// ValidateShot is the pure acceptance check for a candidate shot.
// It returns a *ValidationError naming the first offending field.
func ValidateShot(in ShotInput) error {
	if in.ShotNumber < 1 || in.ShotNumber > maxShotNumber {
		return invalidf("shotNumber", "must be between 1 and %d", maxShotNumber)
	}
	if !models.ValidClub(in.Club) {
		return invalidf("club", "unknown club %q", in.Club)
	}
	if in.Distance != nil && (*in.Distance < 0 || *in.Distance > maxDistance) {
		return invalidf("distance", "must be between 0 and %d yards", maxDistance)
	}
	if in.StartLat < -90 || in.StartLat > 90 {
		return invalidf("startLat", "must be between -90 and 90")
	}
	if in.StartLng < -180 || in.StartLng > 180 {
		return invalidf("startLng", "must be between -180 and 180")
	}
	if in.EndLat != nil && (*in.EndLat < -90 || *in.EndLat > 90) {
		return invalidf("endLat", "must be between -90 and 90")
	}
	if in.EndLng != nil && (*in.EndLng < -180 || *in.EndLng > 180) {
		return invalidf("endLng", "must be between -180 and 180")
	}
	if in.Result != nil && !models.ValidResult(*in.Result) {
		return invalidf("result", "unknown result %q", *in.Result)
	}
	if in.Notes != nil && len(*in.Notes) > maxNotesLen {
		return invalidf("notes", "must be at most %d characters", maxNotesLen)
	}
	return nil
}

// CreateShot validates and persists one shot. A shot already recorded
// with the same (round, hole, shot number) yields ErrConflict; the
// database unique constraint backs the pre-check, so two concurrent
// creates cannot both land.
func (s *Store) CreateShot(ctx context.Context, playerID, roundID int, in ShotInput) (*models.Shot, error) {
	if err := ValidateShot(in); err != nil {
		return nil, err
	}

	round, err := s.ownedRound(ctx, s.db, roundID, playerID)
	if err != nil {
		return nil, err
	}
	if _, err := s.courseHole(ctx, s.db, in.HoleID, round.CourseID); err != nil {
		return nil, err
	}

	exists, err := s.db.NewSelect().Model((*models.Shot)(nil)).
		Where("round_id = ? AND hole_id = ? AND shot_number = ?", roundID, in.HoleID, in.ShotNumber).
		Exists(ctx)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrConflict
	}

	shot := shotFromInput(playerID, roundID, in)
	if _, err := s.db.NewInsert().Model(shot).Exec(ctx); err != nil {
		if isDuplicateKey(err) {
			return nil, ErrConflict
		}
		return nil, err
	}

	metrics.ShotsRecorded.Inc()
	return shot, nil
}

// CreateShotsBatch persists 1..50 shots for one round atomically. Any
// invalid shot, or two shots in the batch targeting the same
// (hole, shot number), rejects the whole batch with nothing persisted.
func (s *Store) CreateShotsBatch(ctx context.Context, playerID, roundID int, ins []ShotInput) (int, error) {
	if len(ins) == 0 {
		return 0, invalidf("shots", "at least one shot is required")
	}
	if len(ins) > maxBatchSize {
		return 0, invalidf("shots", "at most %d shots per batch", maxBatchSize)
	}

	seen := map[string]bool{}
	for i, in := range ins {
		if err := ValidateShot(in); err != nil {
			ve := err.(*ValidationError)
			return 0, invalidf(fmt.Sprintf("shots[%d].%s", i, ve.Field), "%s", ve.Message)
		}
		key := fmt.Sprintf("%d:%d", in.HoleID, in.ShotNumber)
		if seen[key] {
			return 0, invalidf(fmt.Sprintf("shots[%d].shotNumber", i),
				"duplicate shot number %d for hole %d within batch", in.ShotNumber, in.HoleID)
		}
		seen[key] = true
	}

	round, err := s.ownedRound(ctx, s.db, roundID, playerID)
	if err != nil {
		return 0, err
	}
	for _, in := range ins {
		if _, err := s.courseHole(ctx, s.db, in.HoleID, round.CourseID); err != nil {
			return 0, err
		}
	}

	shots := make([]*models.Shot, len(ins))
	for i, in := range ins {
		shots[i] = shotFromInput(playerID, roundID, in)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	if _, err := tx.NewInsert().Model(&shots).Exec(ctx); err != nil {
		if isDuplicateKey(err) {
			return 0, ErrConflict
		}
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}

	metrics.ShotsRecorded.Add(float64(len(shots)))
	return len(shots), nil
}

// UpdateShot applies the non-nil fields of upd to an owned shot.
func (s *Store) UpdateShot(ctx context.Context, playerID, shotID int, upd ShotUpdate) (*models.Shot, error) {
	if upd.Club != nil && !models.ValidClub(*upd.Club) {
		return nil, invalidf("club", "unknown club %q", *upd.Club)
	}
	if upd.Distance != nil && (*upd.Distance < 0 || *upd.Distance > maxDistance) {
		return nil, invalidf("distance", "must be between 0 and %d yards", maxDistance)
	}
	if upd.EndLat != nil && (*upd.EndLat < -90 || *upd.EndLat > 90) {
		return nil, invalidf("endLat", "must be between -90 and 90")
	}
	if upd.EndLng != nil && (*upd.EndLng < -180 || *upd.EndLng > 180) {
		return nil, invalidf("endLng", "must be between -180 and 180")
	}
	if upd.Result != nil && !models.ValidResult(*upd.Result) {
		return nil, invalidf("result", "unknown result %q", *upd.Result)
	}
	if upd.Notes != nil && len(*upd.Notes) > maxNotesLen {
		return nil, invalidf("notes", "must be at most %d characters", maxNotesLen)
	}

	shot := &models.Shot{}
	err := s.db.NewSelect().Model(shot).
		Where("shot_id = ? AND player_id = ?", shotID, playerID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if upd.Club != nil {
		shot.Club = *upd.Club
	}
	if upd.Distance != nil {
		shot.Distance = upd.Distance
	}
	if upd.EndLat != nil {
		shot.EndLat = upd.EndLat
	}
	if upd.EndLng != nil {
		shot.EndLng = upd.EndLng
	}
	if upd.Result != nil {
		shot.Result = upd.Result
	}
	if upd.Notes != nil {
		shot.Notes = upd.Notes
	}

	if _, err := s.db.NewUpdate().Model(shot).WherePK().Exec(ctx); err != nil {
		return nil, err
	}
	return shot, nil
}

// DeleteShot removes an owned shot.
func (s *Store) DeleteShot(ctx context.Context, playerID, shotID int) error {
	res, err := s.db.NewDelete().Model((*models.Shot)(nil)).
		Where("shot_id = ? AND player_id = ?", shotID, playerID).
		Exec(ctx)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// ListShots returns the player's shots matching the filter, with hole
// reference data loaded, ordered by hole then shot number.
func (s *Store) ListShots(ctx context.Context, playerID int, f ShotFilter) ([]models.Shot, error) {
	var shots []models.Shot
	q := s.db.NewSelect().Model(&shots).
		Relation("Hole").
		Where("s.player_id = ?", playerID).
		OrderExpr("s.round_id, s.hole_id, s.shot_number")

	if f.RoundID != nil {
		q = q.Where("s.round_id = ?", *f.RoundID)
	}
	if f.HoleID != nil {
		q = q.Where("s.hole_id = ?", *f.HoleID)
	}
	if f.Club != nil {
		q = q.Where("s.club = ?", *f.Club)
	}

	if err := q.Scan(ctx); err != nil {
		return nil, err
	}
	return shots, nil
}

func shotFromInput(playerID, roundID int, in ShotInput) *models.Shot {
	return &models.Shot{
		RoundID:    roundID,
		HoleID:     in.HoleID,
		PlayerID:   playerID,
		ShotNumber: in.ShotNumber,
		Club:       in.Club,
		Distance:   in.Distance,
		StartLat:   in.StartLat,
		StartLng:   in.StartLng,
		EndLat:     in.EndLat,
		EndLng:     in.EndLng,
		Result:     in.Result,
		Notes:      in.Notes,
	}
}
