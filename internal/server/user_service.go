package server

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/db"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// DBClient is the database surface the user service needs. *db.DB satisfies
// it; tests substitute a fake.
type DBClient interface {
	CreateUser(ctx context.Context, name, email, passwordHash string) (uuid.UUID, error)
	GetUser(ctx context.Context, userID uuid.UUID) (*db.User, error)
	GetUserByEmail(ctx context.Context, email string) (*db.User, error)
	CheckEmailExists(ctx context.Context, email string) (bool, error)
}

// UserService handles user registration and login.
type UserService struct {
	db         DBClient
	jwtService *JWTService
	password   *config.PasswordConfig
}

// NewUserService creates a new user service.
func NewUserService(dbClient DBClient, jwtService *JWTService, password *config.PasswordConfig) *UserService {
	return &UserService{
		db:         dbClient,
		jwtService: jwtService,
		password:   password,
	}
}

// Register creates a new user account and returns the user with a token.
func (s *UserService) Register(ctx context.Context, req *types.CreateUserRequest) (*types.LoginResponse, error) {
	exists, err := s.db.CheckEmailExists(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, ErrEmailAlreadyRegistered
	}

	hash, err := s.password.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	userID, err := s.db.CreateUser(ctx, req.Name, req.Email, hash)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	user, err := s.db.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load created user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	token, err := s.jwtService.GenerateToken(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &types.LoginResponse{User: toAPIUser(user), Token: token}, nil
}

// Login authenticates a user by email and password.
func (s *UserService) Login(ctx context.Context, req *types.LoginRequest) (*types.LoginResponse, error) {
	user, err := s.db.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		// Same error as a wrong password so callers cannot probe for
		// registered emails.
		return nil, ErrInvalidCredentials
	}

	if !s.password.VerifyPassword(req.Password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &types.LoginResponse{User: toAPIUser(user), Token: token}, nil
}

func toAPIUser(user *db.User) *types.User {
	return &types.User{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
