package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"havenly.backend/internal/config"
	"havenly.backend/internal/domain/entities"
	domainrepo "havenly.backend/internal/domain/repositories"
	"havenly.backend/internal/infrastructure/datasources/store"
	"havenly.backend/internal/infrastructure/repositories"
)

var openPromoteDB = store.Open

var openPromoteSQLDB = func(db *gorm.DB) (io.Closer, error) {
	return db.DB()
}

type promoteRuntime interface {
	GetUserByID(ctx context.Context, userID uuid.UUID) (*entities.User, error)
	UpdateUser(ctx context.Context, user *entities.User) error
}

type promoteDeps struct {
	loadEnv func() error
	loadCfg func() *config.Config
	prepare func(cfg *config.Config) (promoteRuntime, io.Closer, error)
	out     io.Writer
}

type promoteRuntimeImpl struct {
	userRepo domainrepo.UserRepository
}

func (r promoteRuntimeImpl) GetUserByID(ctx context.Context, userID uuid.UUID) (*entities.User, error) {
	return r.userRepo.GetByID(ctx, userID)
}

func (r promoteRuntimeImpl) UpdateUser(ctx context.Context, user *entities.User) error {
	return r.userRepo.Update(ctx, user)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func defaultPromoteDeps() promoteDeps {
	return promoteDeps{
		loadEnv: func() error { return godotenv.Load() },
		loadCfg: config.Load,
		prepare: func(cfg *config.Config) (promoteRuntime, io.Closer, error) {
			db, err := openPromoteDB(cfg.Database)
			if err != nil {
				return nil, nil, fmt.Errorf("failed to connect db: %w", err)
			}

			sqlDB, err := openPromoteSQLDB(db)
			if err != nil {
				return nil, nil, fmt.Errorf("failed to init sql db: %w", err)
			}

			return promoteRuntimeImpl{userRepo: repositories.NewUserRepository(db)}, sqlDB, nil
		},
		out: os.Stdout,
	}
}

func parseUserID(userID string) (uuid.UUID, error) {
	if userID == "" {
		return uuid.Nil, fmt.Errorf("--user-id is required")
	}
	return uuid.Parse(userID)
}

func parseRole(role string) (entities.UserRole, error) {
	parsed := entities.UserRole(strings.ToUpper(role))
	switch parsed {
	case entities.UserRoleGuest, entities.UserRoleHost, entities.UserRoleSuperAdmin:
		return parsed, nil
	default:
		return "", fmt.Errorf("unknown role %q (allowed: GUEST, HOST, SUPERADMIN)", role)
	}
}

func runPromote(args []string, deps promoteDeps) error {
	if deps.loadEnv == nil {
		deps.loadEnv = func() error { return godotenv.Load() }
	}
	if deps.loadCfg == nil {
		deps.loadCfg = config.Load
	}
	if deps.prepare == nil {
		def := defaultPromoteDeps()
		deps.prepare = def.prepare
	}
	if deps.out == nil {
		deps.out = os.Stdout
	}

	fs := flag.NewFlagSet("admin-promote", flag.ContinueOnError)
	userIDFlag := fs.String("user-id", "", "target user UUID (required)")
	roleFlag := fs.String("role", "SUPERADMIN", "role to assign")
	verifiedFlag := fs.Bool("id-verified", false, "also set the global identity-verified flag")
	if err := fs.Parse(args); err != nil {
		return err
	}

	userID, err := parseUserID(*userIDFlag)
	if err != nil {
		return err
	}
	role, err := parseRole(*roleFlag)
	if err != nil {
		return err
	}

	if err := deps.loadEnv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := deps.loadCfg()
	runtime, closer, err := deps.prepare(cfg)
	if err != nil {
		return err
	}
	if closer == nil {
		closer = nopCloser{}
	}
	defer closer.Close()

	ctx := context.Background()
	user, err := runtime.GetUserByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to load user %s: %w", userID, err)
	}

	user.Role = role
	if *verifiedFlag {
		user.IDVerified = true
	}
	if err := runtime.UpdateUser(ctx, user); err != nil {
		return fmt.Errorf("failed updating user: %w", err)
	}

	_, _ = fmt.Fprintln(deps.out, "Updated user role")
	_, _ = fmt.Fprintf(deps.out, "user_id=%s\n", user.ID.String())
	_, _ = fmt.Fprintf(deps.out, "email=%s\n", user.Email)
	_, _ = fmt.Fprintf(deps.out, "role=%s\n", user.Role)
	_, _ = fmt.Fprintf(deps.out, "id_verified=%t\n", user.IDVerified)
	return nil
}

func main() {
	if err := runPromote(os.Args[1:], defaultPromoteDeps()); err != nil {
		log.Fatal(err)
	}
}
