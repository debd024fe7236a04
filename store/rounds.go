package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/calgara/golftrack/models"
)

// RoundInput is the payload for starting a round.
type RoundInput struct {
	CourseID   int     `json:"courseID"`
	Temp       *int    `json:"temp,omitempty"`
	WindSpeed  *int    `json:"windSpeed,omitempty"`
	Conditions *string `json:"conditions,omitempty"`
}

// CreateRound starts a new round for the player at an existing course.
func (s *Store) CreateRound(ctx context.Context, playerID int, in RoundInput) (*models.Round, error) {
	exists, err := s.db.NewSelect().Model((*models.Course)(nil)).
		Where("course_id = ?", in.CourseID).
		Exists(ctx)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrNotFound
	}

	round := &models.Round{
		PlayerID:   playerID,
		CourseID:   in.CourseID,
		StartedAt:  time.Now().UTC(),
		Temp:       in.Temp,
		WindSpeed:  in.WindSpeed,
		Conditions: in.Conditions,
	}
	if _, err := s.db.NewInsert().Model(round).Exec(ctx); err != nil {
		return nil, err
	}
	return round, nil
}

// GetRound returns an owned round.
func (s *Store) GetRound(ctx context.Context, playerID, roundID int) (*models.Round, error) {
	return s.ownedRound(ctx, s.db, roundID, playerID)
}

// ListRounds returns the player's rounds, newest first.
func (s *Store) ListRounds(ctx context.Context, playerID int) ([]models.Round, error) {
	var rounds []models.Round
	err := s.db.NewSelect().Model(&rounds).
		Where("player_id = ?", playerID).
		OrderExpr("started_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return rounds, nil
}

// FinishRound stamps an owned round's end time.
func (s *Store) FinishRound(ctx context.Context, playerID, roundID int) (*models.Round, error) {
	round, err := s.ownedRound(ctx, s.db, roundID, playerID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	round.EndedAt = &now
	if _, err := s.db.NewUpdate().Model(round).
		Column("ended_at").
		WherePK().
		Exec(ctx); err != nil {
		return nil, err
	}
	return round, nil
}

// DeleteRound removes an owned round along with its shots and hole scores.
func (s *Store) DeleteRound(ctx context.Context, playerID, roundID int) error {
	if _, err := s.ownedRound(ctx, s.db, roundID, playerID); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.NewDelete().Model((*models.Shot)(nil)).
		Where("round_id = ?", roundID).Exec(ctx); err != nil {
		return err
	}
	if _, err := tx.NewDelete().Model((*models.HoleScore)(nil)).
		Where("round_id = ?", roundID).Exec(ctx); err != nil {
		return err
	}
	if _, err := tx.NewDelete().Model((*models.Round)(nil)).
		Where("round_id = ?", roundID).Exec(ctx); err != nil {
		return err
	}

	return tx.Commit()
}

// RecalculateRoundTotal recomputes a round's total stroke score from its
// hole scores. With no hole scores the total goes back to NULL, never
// zero. The write is idempotent; rerunning it against the same hole score
// set always produces the same total.
func (s *Store) RecalculateRoundTotal(ctx context.Context, roundID int) error {
	var total sql.NullInt64
	err := s.db.NewSelect().Model((*models.HoleScore)(nil)).
		ColumnExpr("SUM(hs.score)").
		Where("hs.round_id = ?", roundID).
		Scan(ctx, &total)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return err
	}

	var score *int
	if total.Valid {
		v := int(total.Int64)
		score = &v
	}

	_, err = s.db.NewUpdate().Model((*models.Round)(nil)).
		Set("score = ?", score).
		Where("round_id = ?", roundID).
		Exec(ctx)
	return err
}
