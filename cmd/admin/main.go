// Command admin migrates the schema and bootstraps accounts, typically the
// first ADMIN, without going through the public API.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"lexcase/internal/core/apperr"
	"lexcase/internal/core/auth"
	"lexcase/internal/core/config"
	"lexcase/internal/core/database"
	"lexcase/internal/core/logger"
	"lexcase/internal/repo"
	"lexcase/internal/service"
	"lexcase/internal/validation"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("admin", flag.ContinueOnError)
	var (
		cfgPath   = fs.String("config", "", "config file (defaults to CONFIG_PATH)")
		migrate   = fs.Bool("migrate", true, "migrate the schema before anything else")
		email     = fs.String("email", "", "email of the user to create")
		password  = fs.String("password", "", "password of the user to create (or ADMIN_PASSWORD)")
		firstName = fs.String("first", "System", "first name")
		lastName  = fs.String("last", "Administrator", "last name")
		role      = fs.String("role", "ADMIN", "role: ADMIN, LAWYER, PARALEGAL or ASSISTANT")
	)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	_ = godotenv.Load()
	cfg, err := config.Load(*cfgPath)
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		return fail("config: %v", err)
	}

	log, cleanup := logger.FromConfig(cfg.Log, cfg.IsProduction())
	defer cleanup()

	db, err := database.NewGorm(database.Opts{
		Driver:   cfg.DB.Driver,
		DSN:      cfg.DB.DSN,
		Username: cfg.DB.Username,
		Password: cfg.DB.Password,
		LogLevel: cfg.DB.LogLevel,
	})
	if err != nil {
		return fail("db open: %v", err)
	}
	defer func() { _ = database.Close(db) }()

	if *migrate {
		if err := database.Migrate(db); err != nil {
			return fail("migrate: %v", err)
		}
		log.Info("schema migrated", zap.String("driver", cfg.DB.Driver))
	}
	if *email == "" {
		return 0
	}

	pw := *password
	if pw == "" {
		pw = os.Getenv("ADMIN_PASSWORD")
	}
	in := service.SignupInput{
		Email:     strings.TrimSpace(*email),
		Password:  pw,
		FirstName: *firstName,
		LastName:  *lastName,
		Role:      strings.ToUpper(*role),
	}
	if err := validation.New().Struct(&in, validation.Signup); err != nil {
		return fail("%v", err)
	}

	jwter, err := auth.NewJWTer(cfg.JWT.Secret, cfg.JWT.Issuer)
	if err != nil {
		return fail("jwt: %v", err)
	}
	svc := service.NewAuthService(repo.NewUserRepo(db), auth.NewHasher(cfg.BcryptCost), jwter, log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	res, err := svc.Signup(ctx, in)
	if err != nil {
		if ae, ok := apperr.As(err); ok && ae.Err != nil {
			return fail("%v: %v", ae, ae.Err)
		}
		return fail("%v", err)
	}
	fmt.Printf("created %s %s (%s)\n", res.User.Role, res.User.Email, res.User.ID)
	fmt.Println(res.Token)
	return 0
}

func fail(format string, args ...any) int {
	fmt.Fprintf(os.Stderr, "admin: "+format+"\n", args...)
	return 1
}
