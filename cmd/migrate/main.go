package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

func main() {
	var (
		command = flag.String("command", "up", "Migration command: up, down, status, create")
		name    = flag.String("name", "", "Name for 'create' command")
	)
	flag.Parse()

	loadEnvFiles()

	pool, err := pgxpool.New(context.Background(), databaseDSN())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	goose.SetBaseFS(nil)
	goose.SetDialect("postgres")

	if err := run(db, *command, *name, migrationsDir()); err != nil {
		log.Fatalf("migrate %s: %v", *command, err)
	}
}

func run(db *sql.DB, command, name, dir string) error {
	switch command {
	case "up":
		if err := goose.Up(db, dir); err != nil {
			return err
		}
		fmt.Println("Migrations applied successfully")
	case "down":
		if err := goose.Down(db, dir); err != nil {
			return err
		}
		fmt.Println("Migrations rolled back successfully")
	case "status":
		return goose.Status(db, dir)
	case "create":
		if name == "" {
			return fmt.Errorf("name is required for 'create'")
		}
		if err := goose.Create(nil, dir, name, "sql"); err != nil {
			return err
		}
		fmt.Printf("Migration created: %s\n", name)
	default:
		return fmt.Errorf("unknown command %q, use: up, down, status, create", command)
	}
	return nil
}
