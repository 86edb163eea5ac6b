// Command createsuperuser bootstraps an administrative account.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/nabekabebe/recipe-api/internal/database"
	"github.com/nabekabebe/recipe-api/internal/model"
	"github.com/nabekabebe/recipe-api/internal/service"
	"github.com/nabekabebe/recipe-api/internal/store"
)

var (
	hashPassword    = service.HashPassword
	createUser      = store.CreateUser
	newPgxPool      = database.NewPgxPool
	runMigrationsFn = database.RunMigrations
)

func run(email, name, password string) error {
	if email == "" {
		return fmt.Errorf("email is required")
	}
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return fmt.Errorf("DATABASE_URL not set")
	}

	if err := runMigrationsFn(dbURL); err != nil {
		return fmt.Errorf("migration failed: %v", err)
	}
	db, err := newPgxPool(context.Background(), dbURL)
	if err != nil {
		return fmt.Errorf("database connection failed: %v", err)
	}
	defer db.Close()

	hash, err := hashPassword(password)
	if err != nil {
		return err
	}

	user, err := createUser(context.Background(), db, &model.User{
		Name:         name,
		Email:        service.NormalizeEmail(email),
		PasswordHash: hash,
		IsActive:     true,
		IsStaff:      true,
		IsSuperuser:  true,
	})
	if err != nil {
		return err
	}

	log.Printf("superuser %s created (id=%d)", user.Email, user.ID)
	return nil
}

func main() {
	email := flag.String("email", "", "superuser email")
	name := flag.String("name", "admin", "display name")
	password := flag.String("password", "", "password (min 8 characters)")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Print("no .env file found, using environment variables")
	}

	if err := run(*email, *name, *password); err != nil {
		log.Fatal(err)
	}
}
