package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/types"
)

func newTestAuthHandler() *AuthHandler {
	return NewAuthHandler(newTestUserService(newFakeDBClient()))
}

func postJSON(t *testing.T, handler http.HandlerFunc, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestAuthHandler_Register(t *testing.T) {
	handler := newTestAuthHandler()

	rec := postJSON(t, handler.Register, "/auth/register", types.CreateUserRequest{
		Name:     "Jane Smith",
		Email:    "jane@example.com",
		Password: "password123",
	})

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp types.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "jane@example.com", resp.User.Email)
	assert.NotEmpty(t, resp.Token)
}

func TestAuthHandler_Register_InvalidEmail(t *testing.T) {
	handler := newTestAuthHandler()

	rec := postJSON(t, handler.Register, "/auth/register", types.CreateUserRequest{
		Name:     "Jane",
		Email:    "not-an-email",
		Password: "password123",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "email")
}

func TestAuthHandler_Register_ShortPassword(t *testing.T) {
	handler := newTestAuthHandler()

	rec := postJSON(t, handler.Register, "/auth/register", types.CreateUserRequest{
		Name:     "Jane",
		Email:    "jane@example.com",
		Password: "short",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	handler := newTestAuthHandler()
	req := types.CreateUserRequest{Name: "Jane", Email: "jane@example.com", Password: "password123"}

	rec := postJSON(t, handler.Register, "/auth/register", req)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = postJSON(t, handler.Register, "/auth/register", req)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestAuthHandler_Login(t *testing.T) {
	handler := newTestAuthHandler()

	rec := postJSON(t, handler.Register, "/auth/register", types.CreateUserRequest{
		Name: "Jane", Email: "jane@example.com", Password: "password123",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = postJSON(t, handler.Login, "/auth/login", types.LoginRequest{
		Email:    "jane@example.com",
		Password: "password123",
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp types.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
}

func TestAuthHandler_Login_BadCredentials(t *testing.T) {
	handler := newTestAuthHandler()

	rec := postJSON(t, handler.Login, "/auth/login", types.LoginRequest{
		Email:    "nobody@example.com",
		Password: "password123",
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthHandler_Register_MalformedBody(t *testing.T) {
	handler := newTestAuthHandler()

	req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	handler.Register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
