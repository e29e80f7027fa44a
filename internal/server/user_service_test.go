package server

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/db"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// fakeDBClient is an in-memory DBClient for tests.
type fakeDBClient struct {
	byEmail map[string]*db.User
	byID    map[uuid.UUID]*db.User
}

func newFakeDBClient() *fakeDBClient {
	return &fakeDBClient{
		byEmail: make(map[string]*db.User),
		byID:    make(map[uuid.UUID]*db.User),
	}
}

func (f *fakeDBClient) CreateUser(ctx context.Context, name, email, passwordHash string) (uuid.UUID, error) {
	now := time.Now()
	user := &db.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	f.byEmail[email] = user
	f.byID[user.ID] = user
	return user.ID, nil
}

func (f *fakeDBClient) GetUser(ctx context.Context, userID uuid.UUID) (*db.User, error) {
	return f.byID[userID], nil
}

func (f *fakeDBClient) GetUserByEmail(ctx context.Context, email string) (*db.User, error) {
	return f.byEmail[email], nil
}

func (f *fakeDBClient) CheckEmailExists(ctx context.Context, email string) (bool, error) {
	_, exists := f.byEmail[email]
	return exists, nil
}

func newTestUserService(dbClient DBClient) *UserService {
	// Low bcrypt cost keeps the tests fast.
	return NewUserService(dbClient, testJWTService(), &config.PasswordConfig{BcryptCost: 10})
}

func TestUserService_Register(t *testing.T) {
	service := newTestUserService(newFakeDBClient())

	resp, err := service.Register(context.Background(), &types.CreateUserRequest{
		Name:     "Jane Smith",
		Email:    "jane@example.com",
		Password: "password123",
	})

	require.NoError(t, err)
	assert.Equal(t, "Jane Smith", resp.User.Name)
	assert.Equal(t, "jane@example.com", resp.User.Email)
	assert.NotEmpty(t, resp.Token)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	service := newTestUserService(newFakeDBClient())
	req := &types.CreateUserRequest{Name: "Jane", Email: "jane@example.com", Password: "password123"}

	_, err := service.Register(context.Background(), req)
	require.NoError(t, err)

	_, err = service.Register(context.Background(), req)
	assert.ErrorIs(t, err, ErrEmailAlreadyRegistered)
}

func TestUserService_Login(t *testing.T) {
	service := newTestUserService(newFakeDBClient())

	_, err := service.Register(context.Background(), &types.CreateUserRequest{
		Name: "Jane", Email: "jane@example.com", Password: "password123",
	})
	require.NoError(t, err)

	resp, err := service.Login(context.Background(), &types.LoginRequest{
		Email:    "jane@example.com",
		Password: "password123",
	})

	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", resp.User.Email)
	assert.NotEmpty(t, resp.Token)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	service := newTestUserService(newFakeDBClient())

	_, err := service.Register(context.Background(), &types.CreateUserRequest{
		Name: "Jane", Email: "jane@example.com", Password: "password123",
	})
	require.NoError(t, err)

	_, err = service.Login(context.Background(), &types.LoginRequest{
		Email:    "jane@example.com",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	service := newTestUserService(newFakeDBClient())

	_, err := service.Login(context.Background(), &types.LoginRequest{
		Email:    "nobody@example.com",
		Password: "password123",
	})

	// Unknown email and wrong password are indistinguishable to callers.
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUserService_TokenIdentifiesUser(t *testing.T) {
	service := newTestUserService(newFakeDBClient())

	resp, err := service.Register(context.Background(), &types.CreateUserRequest{
		Name: "Jane", Email: "jane@example.com", Password: "password123",
	})
	require.NoError(t, err)

	claims, err := service.jwtService.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)
}
