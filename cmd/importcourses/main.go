// cmd/importcourses/main.go
// Imports course and hole reference data from a legacy MySQL golfData
// database into the local PostgreSQL database.
//
// Usage:
//
//	MYSQL_DSN="user:pass@tcp(host:3306)/golfData?parseTime=true" \
//	DB_PASS="pgpass" \
//	go run ./cmd/importcourses
package main

import (
	"context"
	"database/sql"
	"log"

	_ "github.com/go-sql-driver/mysql"
	"github.com/uptrace/bun"

	"github.com/calgara/golftrack/config"
	bundb "github.com/calgara/golftrack/db"
	"github.com/calgara/golftrack/models"
)

const batchSize = 500

func main() {
	ctx := context.Background()

	cfg := config.Load()

	// --- MySQL ---
	if cfg.MySQLDSN == "" {
		log.Fatal("MYSQL_DSN required, e.g.: user:pass@tcp(host:3306)/golfData?parseTime=true")
	}
	myDB, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("open mysql: %v", err)
	}
	defer myDB.Close()
	myDB.SetMaxOpenConns(4)
	if err := myDB.PingContext(ctx); err != nil {
		log.Fatalf("ping mysql: %v", err)
	}
	log.Println("connected to MySQL")

	// --- PostgreSQL ---
	pgDB := bundb.Setup(cfg.PostgresDSN(), cfg.Debug)
	defer pgDB.Close()
	log.Println("connected to PostgreSQL")

	// Create tables (idempotent)
	if err := bundb.CreateTables(ctx, pgDB); err != nil {
		log.Fatalf("create tables: %v", err)
	}

	steps := []struct {
		name string
		fn   func() (int, error)
	}{
		{"courses", func() (int, error) { return importCourses(ctx, myDB, pgDB) }},
		{"holes", func() (int, error) { return importHoles(ctx, myDB, pgDB) }},
	}

	for _, s := range steps {
		n, err := s.fn()
		if err != nil {
			log.Fatalf("import %s: %v", s.name, err)
		}
		log.Printf("%-10s  %d rows imported", s.name, n)
	}

	resetSequences(ctx, pgDB)
	log.Println("import complete")
}

// --- helpers ---

func nullInt(n sql.NullInt64) *int {
	if !n.Valid {
		return nil
	}
	v := int(n.Int64)
	return &v
}

// bulkInsert inserts a batch, skipping rows that already exist (idempotent re-runs).
func bulkInsert[T any](ctx context.Context, pgDB *bun.DB, rows []T) error {
	if len(rows) == 0 {
		return nil
	}
	_, err := pgDB.NewInsert().Model(&rows).On("CONFLICT DO NOTHING").Exec(ctx)
	return err
}

// --- per-table imports ---

func importCourses(ctx context.Context, myDB *sql.DB, pgDB *bun.DB) (int, error) {
	rows, err := myDB.QueryContext(ctx,
		"SELECT courseID, name, city, country, lat, lng FROM courses")
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	var batch []models.Course
	total := 0
	for rows.Next() {
		var r models.Course
		if err := rows.Scan(&r.CourseID, &r.Name, &r.City, &r.Country, &r.Lat, &r.Lng); err != nil {
			return total, err
		}
		batch = append(batch, r)
		if len(batch) >= batchSize {
			if err := bulkInsert(ctx, pgDB, batch); err != nil {
				return total, err
			}
			total += len(batch)
			batch = batch[:0]
		}
	}
	if err := bulkInsert(ctx, pgDB, batch); err != nil {
		return total, err
	}
	return total + len(batch), rows.Err()
}

func importHoles(ctx context.Context, myDB *sql.DB, pgDB *bun.DB) (int, error) {
	rows, err := myDB.QueryContext(ctx,
		`SELECT holeID, courseID, number, par, yardage, strokeIndex,
		        teeLat, teeLng, greenLat, greenLng
		 FROM holes`)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	var batch []models.Hole
	total := 0
	for rows.Next() {
		var r models.Hole
		var strokeIndex sql.NullInt64
		if err := rows.Scan(&r.HoleID, &r.CourseID, &r.Number, &r.Par, &r.Yardage,
			&strokeIndex, &r.TeeLat, &r.TeeLng, &r.GreenLat, &r.GreenLng); err != nil {
			return total, err
		}
		r.StrokeIndex = nullInt(strokeIndex)
		batch = append(batch, r)
		if len(batch) >= batchSize {
			if err := bulkInsert(ctx, pgDB, batch); err != nil {
				return total, err
			}
			total += len(batch)
			batch = batch[:0]
		}
	}
	if err := bulkInsert(ctx, pgDB, batch); err != nil {
		return total, err
	}
	return total + len(batch), rows.Err()
}

// resetSequences bumps the Postgres identity sequences past the imported IDs.
func resetSequences(ctx context.Context, pgDB *bun.DB) {
	stmts := []string{
		`SELECT setval(pg_get_serial_sequence('courses', 'course_id'), COALESCE((SELECT MAX(course_id) FROM courses), 1))`,
		`SELECT setval(pg_get_serial_sequence('holes', 'hole_id'), COALESCE((SELECT MAX(hole_id) FROM holes), 1))`,
	}
	for _, stmt := range stmts {
		if _, err := pgDB.ExecContext(ctx, stmt); err != nil {
			log.Printf("reset sequence: %v", err)
		}
	}
}
