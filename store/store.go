// Package store implements the scoring core's persistence rules: shot
// validation and sequencing, hole score upserts, and round total
// recalculation. Everything is scoped to the authenticated player; a
// record owned by someone else reads as not found.
package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/uptrace/bun"
	"go.uber.org/zap"

	"github.com/calgara/golftrack/models"
)

// Store holds the database handle shared by all persistence rules.
type Store struct {
	db  *bun.DB
	log *zap.Logger
}

// New creates a Store around the given database connection.
func New(db *bun.DB, log *zap.Logger) *Store {
	return &Store{db: db, log: log}
}

// ownedRound loads a round owned by playerID, or ErrNotFound.
func (s *Store) ownedRound(ctx context.Context, idb bun.IDB, roundID, playerID int) (*models.Round, error) {
	round := &models.Round{}
	err := idb.NewSelect().Model(round).
		Where("round_id = ? AND player_id = ?", roundID, playerID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return round, nil
}

// courseHole loads a hole, checking it belongs to the given course.
func (s *Store) courseHole(ctx context.Context, idb bun.IDB, holeID, courseID int) (*models.Hole, error) {
	hole := &models.Hole{}
	err := idb.NewSelect().Model(hole).
		Where("hole_id = ? AND course_id = ?", holeID, courseID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return hole, nil
}
