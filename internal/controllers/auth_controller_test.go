package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"waypath-be/internal/common"
	"waypath-be/internal/models"
)

type fakeAuthService struct {
	registerErr error
	loginErr    error
	profile     *models.Profile
}

func (f *fakeAuthService) Register(_ context.Context, _ *models.RegisterRequest) error {
	return f.registerErr
}

func (f *fakeAuthService) Login(_ context.Context, _ *models.LoginRequest) (*models.Profile, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return f.profile, nil
}

func authRouter(svc *fakeAuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	ac := NewAuthController(svc)
	r.POST("/auth/register", ac.Register)
	r.POST("/auth/login", ac.Login)
	return r
}

func post(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterEndpoint(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		r := authRouter(&fakeAuthService{})
		w := post(t, r, "/auth/register", `{"email":"ada@example.com","password":"password123"}`)
		require.Equal(t, http.StatusCreated, w.Code)
		require.JSONEq(t, `{"ok":true}`, w.Body.String())
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		r := authRouter(&fakeAuthService{registerErr: common.ErrDuplicateEmail})
		w := post(t, r, "/auth/register", `{"email":"ada@example.com","password":"password123"}`)
		require.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("duplicate username conflicts", func(t *testing.T) {
		r := authRouter(&fakeAuthService{registerErr: common.ErrDuplicateUsername})
		w := post(t, r, "/auth/register", `{"email":"ada@example.com","password":"password123","username":"ada"}`)
		require.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("short password rejected at binding", func(t *testing.T) {
		r := authRouter(&fakeAuthService{})
		w := post(t, r, "/auth/register", `{"email":"ada@example.com","password":"short"}`)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("invalid email rejected at binding", func(t *testing.T) {
		r := authRouter(&fakeAuthService{})
		w := post(t, r, "/auth/register", `{"email":"not-an-email","password":"password123"}`)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestLoginEndpoint(t *testing.T) {
	t.Run("ok with profile", func(t *testing.T) {
		email := "ada@example.com"
		r := authRouter(&fakeAuthService{profile: &models.Profile{ID: 1, Email: email}})
		w := post(t, r, "/auth/login", `{"email":"ada@example.com","password":"password123"}`)
		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), `"ok":true`)
		require.Contains(t, w.Body.String(), email)
		require.NotContains(t, w.Body.String(), "password")
	})

	t.Run("invalid credentials", func(t *testing.T) {
		r := authRouter(&fakeAuthService{loginErr: common.ErrInvalidCredentials})
		w := post(t, r, "/auth/login", `{"email":"ada@example.com","password":"password123"}`)
		require.Equal(t, http.StatusUnauthorized, w.Code)
		require.JSONEq(t, `{"error":"Invalid credentials"}`, w.Body.String())
	})
}
