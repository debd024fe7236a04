// cmd/seed/main.go
// Seeds the database with a demo player, course, and one played round so
// the API has data to show. Safe to re-run; everything is keyed on the
// demo username.
//
// Usage:
//
//	DB_PASS="pgpass" go run ./cmd/seed
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/brianvoe/gofakeit/v7"
	"golang.org/x/crypto/bcrypt"

	"github.com/calgara/golftrack/config"
	bundb "github.com/calgara/golftrack/db"
	applog "github.com/calgara/golftrack/logger"
	"github.com/calgara/golftrack/models"
	"github.com/calgara/golftrack/store"
)

const demoUsername = "demo"

func main() {
	ctx := context.Background()

	cfg := config.Load()
	logger, err := applog.New(cfg.Debug)
	if err != nil {
		log.Fatal("logger:", err)
	}

	db := bundb.Setup(cfg.PostgresDSN(), cfg.Debug)
	defer db.Close()

	if err := bundb.CreateTables(ctx, db); err != nil {
		log.Fatalf("create tables: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("demo"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("bcrypt:", err)
	}
	player := &models.Player{
		Username: demoUsername,
		Password: string(hash),
		Name:     gofakeit.Name(),
		Email:    gofakeit.Email(),
	}
	if _, err := db.NewInsert().Model(player).
		On("CONFLICT (username) DO UPDATE SET name = EXCLUDED.name").
		Exec(ctx); err != nil {
		log.Fatalf("seed player: %v", err)
	}
	if player.ID == 0 {
		if err := db.NewSelect().Model(player).Where("username = ?", demoUsername).Scan(ctx); err != nil {
			log.Fatalf("load player: %v", err)
		}
	}

	courseLat := gofakeit.Float64Range(51.4, 55.4)
	courseLng := gofakeit.Float64Range(-10.5, -6.0)
	course := &models.Course{
		Name:    fmt.Sprintf("%s Golf Club", gofakeit.City()),
		City:    gofakeit.City(),
		Country: "Ireland",
		Lat:     courseLat,
		Lng:     courseLng,
	}
	if _, err := db.NewInsert().Model(course).
		On("CONFLICT (name) DO NOTHING").
		Exec(ctx); err != nil {
		log.Fatalf("seed course: %v", err)
	}
	if course.CourseID == 0 {
		if err := db.NewSelect().Model(course).Where("name = ?", course.Name).Scan(ctx); err != nil {
			log.Fatalf("load course: %v", err)
		}
	}

	pars := []int{4, 3, 5, 4, 4, 3, 4, 5, 4, 4, 3, 4, 5, 4, 4, 3, 4, 5}
	holes := make([]*models.Hole, len(pars))
	for i, par := range pars {
		yardage := 150 + 60*(par-3) + gofakeit.Number(0, 120)
		holes[i] = &models.Hole{
			CourseID: course.CourseID,
			Number:   i + 1,
			Par:      par,
			Yardage:  yardage,
			TeeLat:   courseLat + float64(i)*0.001,
			TeeLng:   courseLng,
			GreenLat: courseLat + float64(i)*0.001 + 0.002,
			GreenLng: courseLng + 0.0005,
		}
	}
	if _, err := db.NewInsert().Model(&holes).
		On("CONFLICT DO NOTHING").
		Exec(ctx); err != nil {
		log.Fatalf("seed holes: %v", err)
	}

	st := store.New(db, logger)

	round, err := st.CreateRound(ctx, player.ID, store.RoundInput{CourseID: course.CourseID})
	if err != nil {
		log.Fatalf("seed round: %v", err)
	}

	for _, hole := range holes {
		if hole.HoleID == 0 {
			continue
		}

		strokes := hole.Par + gofakeit.Number(-1, 3)
		if strokes < 1 {
			strokes = 1
		}

		teeResult := models.ResultFairway
		if hole.Par == 3 {
			teeResult = models.ResultGreen
		}
		teeDistance := hole.Yardage - gofakeit.Number(0, 40)
		if _, err := st.CreateShot(ctx, player.ID, round.RoundID, store.ShotInput{
			HoleID:     hole.HoleID,
			ShotNumber: 1,
			Club:       "driver",
			Distance:   &teeDistance,
			StartLat:   hole.TeeLat,
			StartLng:   hole.TeeLng,
			Result:     &teeResult,
		}); err != nil {
			log.Fatalf("seed shot: %v", err)
		}

		putts := gofakeit.Number(1, 2)
		fairway := teeResult == models.ResultFairway
		if _, err := st.UpsertHoleScore(ctx, player.ID, round.RoundID, hole.HoleID, store.HoleScoreInput{
			Score:      strokes,
			Putts:      &putts,
			FairwayHit: &fairway,
		}); err != nil {
			log.Fatalf("seed hole score: %v", err)
		}
	}

	log.Printf("seeded player %q, course %q, round %d", demoUsername, course.Name, round.RoundID)
}
