package store

import (
	"context"
	"database/sql"
	"errors"

	"go.uber.org/zap"

	"github.com/calgara/golftrack/metrics"
	"github.com/calgara/golftrack/models"
)

const maxHoleScore = 15

// HoleScoreInput carries the hole score payload. On create every field is
// set as given; on replace, nil optional fields keep their stored value.
type HoleScoreInput struct {
	Score      int     `json:"score"`
	Putts      *int    `json:"putts,omitempty"`
	FairwayHit *bool   `json:"fairwayHit,omitempty"`
	GIR        *bool   `json:"gir,omitempty"`
	Notes      *string `json:"notes,omitempty"`
}

func validateHoleScore(in HoleScoreInput) error {
	if in.Score < 1 || in.Score > maxHoleScore {
		return invalidf("score", "must be between 1 and %d", maxHoleScore)
	}
	if in.Putts != nil && (*in.Putts < 0 || *in.Putts > maxHoleScore) {
		return invalidf("putts", "must be between 0 and %d", maxHoleScore)
	}
	if in.Notes != nil && len(*in.Notes) > maxNotesLen {
		return invalidf("notes", "must be at most %d characters", maxNotesLen)
	}
	return nil
}

// UpsertHoleScore creates or replaces the single score record for
// (round, hole), then triggers the round total recalculation. The recalc
// is best-effort: a failure there is logged and counted but the upsert
// still succeeds.
func (s *Store) UpsertHoleScore(ctx context.Context, playerID, roundID, holeID int, in HoleScoreInput) (*models.HoleScore, error) {
	if err := validateHoleScore(in); err != nil {
		return nil, err
	}

	round, err := s.ownedRound(ctx, s.db, roundID, playerID)
	if err != nil {
		return nil, err
	}
	if _, err := s.courseHole(ctx, s.db, holeID, round.CourseID); err != nil {
		return nil, err
	}

	hs, err := s.writeHoleScore(ctx, playerID, roundID, holeID, in)
	if err != nil {
		return nil, err
	}

	metrics.HoleScoreUpserts.Inc()
	s.recalculate(ctx, roundID)
	return hs, nil
}

// writeHoleScore does the create-or-replace. A concurrent insert losing
// the race to the unique constraint retries as an update.
func (s *Store) writeHoleScore(ctx context.Context, playerID, roundID, holeID int, in HoleScoreInput) (*models.HoleScore, error) {
	existing := &models.HoleScore{}
	err := s.db.NewSelect().Model(existing).
		Where("round_id = ? AND hole_id = ?", roundID, holeID).
		Scan(ctx)

	switch {
	case err == nil:
		existing.Score = in.Score
		if in.Putts != nil {
			existing.Putts = in.Putts
		}
		if in.FairwayHit != nil {
			existing.FairwayHit = in.FairwayHit
		}
		if in.GIR != nil {
			existing.GIR = in.GIR
		}
		if in.Notes != nil {
			existing.Notes = in.Notes
		}
		if _, err := s.db.NewUpdate().Model(existing).WherePK().Exec(ctx); err != nil {
			return nil, err
		}
		return existing, nil

	case errors.Is(err, sql.ErrNoRows):
		hs := &models.HoleScore{
			RoundID:    roundID,
			HoleID:     holeID,
			PlayerID:   playerID,
			Score:      in.Score,
			Putts:      in.Putts,
			FairwayHit: in.FairwayHit,
			GIR:        in.GIR,
			Notes:      in.Notes,
		}
		if _, err := s.db.NewInsert().Model(hs).Exec(ctx); err != nil {
			if isDuplicateKey(err) {
				return s.writeHoleScore(ctx, playerID, roundID, holeID, in)
			}
			return nil, err
		}
		return hs, nil

	default:
		return nil, err
	}
}

// DeleteHoleScore removes an owned hole score and retriggers the round
// total recalculation.
func (s *Store) DeleteHoleScore(ctx context.Context, playerID, holeScoreID int) error {
	hs := &models.HoleScore{}
	err := s.db.NewSelect().Model(hs).
		Where("hs.id = ? AND hs.player_id = ?", holeScoreID, playerID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}

	if _, err := s.db.NewDelete().Model(hs).WherePK().Exec(ctx); err != nil {
		return err
	}

	s.recalculate(ctx, hs.RoundID)
	return nil
}

// ListHoleScores returns all hole scores for an owned round with hole
// reference data loaded.
func (s *Store) ListHoleScores(ctx context.Context, playerID, roundID int) ([]models.HoleScore, error) {
	if _, err := s.ownedRound(ctx, s.db, roundID, playerID); err != nil {
		return nil, err
	}

	var scores []models.HoleScore
	err := s.db.NewSelect().Model(&scores).
		Relation("Hole").
		Where("hs.round_id = ?", roundID).
		OrderExpr("hs.hole_id").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return scores, nil
}

func (s *Store) recalculate(ctx context.Context, roundID int) {
	if err := s.RecalculateRoundTotal(ctx, roundID); err != nil {
		metrics.RoundRecalcFailures.Inc()
		s.log.Error("recalculate round total",
			zap.Int("roundID", roundID),
			zap.Error(err),
		)
	}
}
