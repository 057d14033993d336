package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"skyward-labs/flightdeck/internal/config"
)

// Generates an API key for a bot client and stores it active.
func main() {
	userID := flag.String("user", "", "user id the key belongs to")
	flag.Parse()

	if *userID == "" {
		log.Fatal("usage: api_key_gen -user <user-id>")
	}

	cfg := config.Load()

	db, err := sql.Open("postgres", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	key := uuid.NewString()
	if _, err := db.Exec(
		`INSERT INTO api_keys (api_key, user_id, status) VALUES ($1, $2, true)`,
		key, *userID,
	); err != nil {
		log.Fatalf("insert api key: %v", err)
	}

	fmt.Println("New API Key:", key)
}
