package usecases

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"

	"havenly.backend/internal/domain/entities"
	domainerrors "havenly.backend/internal/domain/errors"
	"havenly.backend/internal/domain/repositories"
	"havenly.backend/pkg/crypto"
	"havenly.backend/pkg/jwt"
	"havenly.backend/pkg/utils"
)

// AuthUsecase handles registration, login and profile business logic
type AuthUsecase struct {
	userRepo     repositories.UserRepository
	jwtService   *jwt.JWTService
	demoPassword string
}

// NewAuthUsecase creates a new auth usecase. demoPassword, when non-empty,
// is accepted for any account (demo installs only).
func NewAuthUsecase(userRepo repositories.UserRepository, jwtService *jwt.JWTService, demoPassword string) *AuthUsecase {
	return &AuthUsecase{
		userRepo:     userRepo,
		jwtService:   jwtService,
		demoPassword: demoPassword,
	}
}

// Register registers a new guest account
func (u *AuthUsecase) Register(ctx context.Context, input *entities.RegisterInput) (*entities.AuthResponse, error) {
	email := normalizeEmail(input.Email)

	// Check if email already exists
	_, err := u.userRepo.GetByEmail(ctx, email)
	if err == nil {
		return nil, domainerrors.Validation("email already registered")
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	passwordHash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		ID:           utils.GenerateUUIDv7(),
		Email:        email,
		Name:         input.Name,
		PasswordHash: passwordHash,
		Role:         entities.UserRoleGuest,
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return u.buildAuthResponse(user)
}

// Login authenticates a user and returns tokens
func (u *AuthUsecase) Login(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error) {
	user, err := u.userRepo.GetByEmail(ctx, normalizeEmail(input.Email))
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !u.passwordMatches(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	return u.buildAuthResponse(user)
}

// RefreshToken generates new tokens from a refresh token
func (u *AuthUsecase) RefreshToken(ctx context.Context, refreshToken string) (*jwt.TokenPair, error) {
	claims, err := u.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, err
	}

	// Get current user to ensure still valid
	user, err := u.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}

	return u.jwtService.GenerateTokenPair(user.ID, user.Email, string(user.Role))
}

// GetUserByID gets a user by ID
func (u *AuthUsecase) GetUserByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	return u.userRepo.GetByID(ctx, id)
}

// UpdateProfile edits the actor's own name and avatar
func (u *AuthUsecase) UpdateProfile(ctx context.Context, actorID uuid.UUID, input *entities.UpdateProfileInput) (*entities.User, error) {
	user, err := u.userRepo.GetByID(ctx, actorID)
	if err != nil {
		return nil, err
	}

	user.Name = input.Name
	if input.Avatar != "" {
		user.AvatarURL = null.StringFrom(input.Avatar)
	}
	if err := u.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ListUsers lists platform users. Admin only.
func (u *AuthUsecase) ListUsers(ctx context.Context, actor *entities.User, search string) ([]*entities.User, error) {
	if !actor.IsAdmin() {
		return nil, domainerrors.Authorization("only admins may list users")
	}
	return u.userRepo.List(ctx, search)
}

// SetUserRole promotes or demotes a user. Admin only.
func (u *AuthUsecase) SetUserRole(ctx context.Context, actor *entities.User, userID uuid.UUID, role entities.UserRole) (*entities.User, error) {
	if !actor.IsAdmin() {
		return nil, domainerrors.Authorization("only admins may change roles")
	}
	switch role {
	case entities.UserRoleGuest, entities.UserRoleHost, entities.UserRoleSuperAdmin:
	default:
		return nil, domainerrors.Validation("unknown role")
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.Role = role
	if err := u.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// SetIDVerified flips the global identity flag. Admin only; the flag
// short-circuits every per-host verification check.
func (u *AuthUsecase) SetIDVerified(ctx context.Context, actor *entities.User, userID uuid.UUID, verified bool) (*entities.User, error) {
	if !actor.IsAdmin() {
		return nil, domainerrors.Authorization("only admins may verify identities")
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.IDVerified = verified
	if err := u.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (u *AuthUsecase) passwordMatches(password, hash string) bool {
	if u.demoPassword != "" && password == u.demoPassword {
		return true
	}
	return crypto.CheckPassword(password, hash)
}

func (u *AuthUsecase) buildAuthResponse(user *entities.User) (*entities.AuthResponse, error) {
	tokenPair, err := u.jwtService.GenerateTokenPair(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, err
	}
	return &entities.AuthResponse{
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		User:         user,
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
