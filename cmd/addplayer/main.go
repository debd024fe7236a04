// cmd/addplayer/main.go
// Creates or updates a player account in the database.
//
// Usage:
//
//	go run ./cmd/addplayer -username seamus -password testing -name "Seamus G" -email s@example.com
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"

	"github.com/calgara/golftrack/config"
	bundb "github.com/calgara/golftrack/db"
	"github.com/calgara/golftrack/models"
)

func main() {
	username := flag.String("username", "", "username (required)")
	password := flag.String("password", "", "plain-text password (required)")
	name := flag.String("name", "", "display name")
	email := flag.String("email", "", "email address")
	flag.Parse()

	if *username == "" || *password == "" {
		log.Fatal("both -username and -password are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("bcrypt:", err)
	}

	cfg := config.Load()
	db := bundb.Setup(cfg.PostgresDSN(), cfg.Debug)
	defer db.Close()

	player := &models.Player{
		Username: *username,
		Password: string(hash),
		Name:     *name,
		Email:    *email,
	}

	_, err = db.NewInsert().Model(player).
		On("CONFLICT (username) DO UPDATE SET password = EXCLUDED.password, name = EXCLUDED.name, email = EXCLUDED.email").
		Exec(context.Background())
	if err != nil {
		log.Fatal("insert player:", err)
	}

	fmt.Printf("player %q saved\n", *username)
}
