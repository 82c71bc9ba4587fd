package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventgate/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAuthService implements domain.AuthService for handler tests.
type fakeAuthService struct {
	signUpErr    error
	signUpResult *domain.User
	loginErr     error
	loginToken   string
	loginUser    *domain.User
	lastEmail    string
	lastRole     string
}

func (f *fakeAuthService) SignUp(ctx context.Context, email, password, name, role string) (*domain.User, error) {
	f.lastEmail = email
	f.lastRole = role
	return f.signUpResult, f.signUpErr
}

func (f *fakeAuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	f.lastEmail = email
	return f.loginToken, f.loginUser, f.loginErr
}

func postJSON(t *testing.T, handler http.HandlerFunc, target string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, target, bytes.NewReader(b))
	rr := httptest.NewRecorder()
	handler(rr, req)
	return rr
}

func TestAuthController_SignUp(t *testing.T) {
	t.Run("201 on success", func(t *testing.T) {
		svc := &fakeAuthService{signUpResult: &domain.User{ID: "user-1", Email: "ada@example.com", Role: domain.RoleUser}}
		c := NewAuthController(testLogger, svc)

		rr := postJSON(t, c.SignUp, "/auth/signup", map[string]string{
			"email": "ada@example.com", "password": "password123", "name": "Ada",
		})
		require.Equal(t, http.StatusCreated, rr.Code)
		body := decodeBody(t, rr)
		assert.Equal(t, "User registered successfully", body["message"])
		user := body["user"].(map[string]any)
		assert.Equal(t, "user-1", user["id"])
		_, hasHash := user["password_hash"]
		assert.False(t, hasHash, "password hash must never serialize")
	})

	t.Run("400 on validation failure", func(t *testing.T) {
		c := NewAuthController(testLogger, &fakeAuthService{})
		rr := postJSON(t, c.SignUp, "/auth/signup", map[string]string{"email": "bad", "password": "short"})
		require.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("409 on duplicate email", func(t *testing.T) {
		c := NewAuthController(testLogger, &fakeAuthService{signUpErr: domain.ErrDuplicateEmail})
		rr := postJSON(t, c.SignUp, "/auth/signup", map[string]string{
			"email": "ada@example.com", "password": "password123",
		})
		require.Equal(t, http.StatusConflict, rr.Code)
	})
}

func TestAuthController_Login(t *testing.T) {
	t.Run("200 with token and user", func(t *testing.T) {
		svc := &fakeAuthService{
			loginToken: "signed-token",
			loginUser:  &domain.User{ID: "user-1", Email: "ada@example.com", Role: domain.RoleAdmin},
		}
		c := NewAuthController(testLogger, svc)

		rr := postJSON(t, c.Login, "/auth/login", map[string]string{
			"email": "ada@example.com", "password": "password123",
		})
		require.Equal(t, http.StatusOK, rr.Code)
		body := decodeBody(t, rr)
		assert.Equal(t, "Login successful", body["message"])
		assert.Equal(t, "signed-token", body["token"])
	})

	t.Run("401 on bad credentials", func(t *testing.T) {
		c := NewAuthController(testLogger, &fakeAuthService{loginErr: domain.ErrInvalidCredentials})
		rr := postJSON(t, c.Login, "/auth/login", map[string]string{
			"email": "ada@example.com", "password": "wrong",
		})
		require.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("400 when fields are missing", func(t *testing.T) {
		c := NewAuthController(testLogger, &fakeAuthService{})
		rr := postJSON(t, c.Login, "/auth/login", map[string]string{"email": "ada@example.com"})
		require.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
