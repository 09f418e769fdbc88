// Command migrate applies the schema migrations with goose.
//
// Usage:
//
//	go run ./cmd/migrate up          # Apply all pending migrations
//	go run ./cmd/migrate down        # Roll back the last migration
//	go run ./cmd/migrate status      # Show migration status
//	go run ./cmd/migrate redo        # Roll back and re-apply the last migration
package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"saldo-ledger/config"
	"saldo-ledger/migrations"
	"saldo-ledger/pkg/logger"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: migrate <command> [args]")
		fmt.Println("Commands: up, down, status, version, redo, up-to <version>, down-to <version>")
		os.Exit(1)
	}

	_ = godotenv.Load()

	cfg, err := config.Load(os.Getenv("SLD_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty, nil)

	db, err := sql.Open("pgx", cfg.Database.DSN())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	defer func() { _ = db.Close() }()

	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatal().Err(err).Msg("failed to set goose dialect")
	}

	command := os.Args[1]
	if err := goose.RunContext(context.Background(), command, db, ".", os.Args[2:]...); err != nil {
		log.Fatal().Err(err).Str("command", command).Msg("migration failed")
	}
	log.Info().Str("command", command).Msg("migration finished")
}
