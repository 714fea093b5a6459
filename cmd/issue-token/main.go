// Command issue-token provisions a user and prints a session token for them.
// It stands in for the identity provider during local development and can
// bootstrap the first admin.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/EnmaSantos/office-snack-app/internal/config"
	applogger "github.com/EnmaSantos/office-snack-app/internal/logger"
	"github.com/EnmaSantos/office-snack-app/internal/model"
	"github.com/EnmaSantos/office-snack-app/internal/repository"
	"github.com/EnmaSantos/office-snack-app/internal/service"
	"github.com/EnmaSantos/office-snack-app/pkg/database"
)

func main() {
	email := flag.String("email", "", "email of the user to sign in")
	name := flag.String("name", "", "display name for a new user")
	admin := flag.Bool("admin", false, "grant the admin flag")
	flag.Parse()

	if err := run(*email, *name, *admin); err != nil {
		fmt.Fprintln(os.Stderr, "issue-token:", err)
		os.Exit(1)
	}
}

func run(email, name string, admin bool) error {
	if email == "" {
		return fmt.Errorf("-email is required")
	}

	log := applogger.New("warn", "text")
	cfg, err := config.Load(log)
	if err != nil {
		return err
	}

	db, err := database.Connect(database.Config{
		Driver:   cfg.DB.Driver,
		URL:      cfg.DB.URL,
		Host:     cfg.DB.Host,
		User:     cfg.DB.User,
		Password: cfg.DB.Password,
		Name:     cfg.DB.Name,
		Port:     cfg.DB.Port,
		LogLevel: "silent",
	}, log)
	if err != nil {
		return err
	}
	if err := model.Migrate(db); err != nil {
		return err
	}

	userRepo := repository.NewUserRepo(db)
	auth := service.NewAuthService(userRepo, service.AuthOptions{
		Secret:        []byte(cfg.Jwt.SecretKey),
		TokenTTL:      cfg.Jwt.Expiry,
		AllowedDomain: cfg.Auth.AllowedEmailDomain,
	})

	user, err := auth.EnsureUser(&service.EnsureUserInput{Email: email, DisplayName: name})
	if err != nil {
		return err
	}
	if admin && !user.IsAdmin {
		if err := userRepo.UpdateAdmin(db, user.ID, true, "issue-token"); err != nil {
			return err
		}
		user.IsAdmin = true
	}

	token, err := auth.IssueToken(user)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "user %s (%s) admin=%t\n", user.Email, user.ID, user.IsAdmin)
	fmt.Println(token)
	return nil
}
