// Command create_admin seeds or promotes a super admin account.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/linskybing/portal-go/internal/config"
	"github.com/linskybing/portal-go/internal/config/db"
	"github.com/linskybing/portal-go/internal/domain/user"
	"github.com/linskybing/portal-go/internal/repository"
	"github.com/linskybing/portal-go/pkg/logger"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	config.LoadConfig()

	email := flag.String("email", os.Getenv("ADMIN_EMAIL"), "admin email")
	password := flag.String("password", os.Getenv("ADMIN_PASSWORD"), "admin password, at least 8 characters")
	name := flag.String("name", envOr("ADMIN_NAME", "Administrator"), "display name")
	flag.Parse()

	log, err := logger.New(logger.Config{Level: config.LogLevel})
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	if *email == "" || len(*password) < 8 {
		fmt.Fprintln(os.Stderr, "usage: create_admin -email admin@example.com -password <min 8 chars> [-name Name]")
		os.Exit(2)
	}

	if err := db.Init(); err != nil {
		log.Fatal("database init failed", logger.Error(err))
	}
	repos := repository.NewRepositories(db.DB)

	u, err := ensureSuperAdmin(repos, *email, *password, *name)
	if err != nil {
		log.Fatal("create super admin", logger.Error(err))
	}
	log.Info("super admin ready", logger.Uint("user_id", u.ID), logger.String("email", u.Email))
}

// ensureSuperAdmin creates the account, or promotes it when the email is taken.
func ensureSuperAdmin(repos *repository.Repos, email, password, name string) (user.User, error) {
	existing, err := repos.User.GetByEmail(email)
	switch {
	case err == nil:
		if err := repos.User.UpdateRole(existing.ID, user.RoleSuperAdmin); err != nil {
			return user.User{}, err
		}
		existing.Role = user.RoleSuperAdmin
		return existing, nil
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return user.User{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, err
	}
	u := user.User{Email: email, Password: string(hashed), Name: name, Role: user.RoleSuperAdmin}
	if err := repos.User.Create(&u); err != nil {
		return user.User{}, err
	}
	return u, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
