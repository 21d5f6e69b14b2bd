package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/academia/course-portal/internal/app/models"
	"github.com/academia/course-portal/internal/app/models/dto"
	"github.com/academia/course-portal/internal/pkg/apperrors"
	"github.com/academia/course-portal/internal/pkg/logger"
)

func newAuthRouter(authService *mockAuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	controller := NewAuthController(authService, logger.Nop())

	router := gin.New()
	router.POST("/api/authentication/register", controller.Register)
	router.POST("/api/authentication/login", controller.Login)
	return router
}

func postJSON(router *gin.Engine, path string, payload any) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestRegisterEndpointSuccess(t *testing.T) {
	authService := &mockAuthService{
		registerFn: func(ctx context.Context, req *dto.RegisterRequest) (*models.Student, error) {
			assert.Equal(t, "jdoe", req.Username)
			return &models.Student{ID: 1, Username: req.Username}, nil
		},
	}
	router := newAuthRouter(authService)

	w := postJSON(router, "/api/authentication/register", dto.RegisterRequest{
		Name:     "Jane Doe",
		Username: "jdoe",
		Password: "s3cret",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.SuccessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Student registered successfully", resp.Message)
}

func TestRegisterEndpointMissingFields(t *testing.T) {
	router := newAuthRouter(&mockAuthService{})

	w := postJSON(router, "/api/authentication/register", map[string]string{
		"username": "jdoe",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegisterEndpointUsernameConflict(t *testing.T) {
	authService := &mockAuthService{
		registerFn: func(ctx context.Context, req *dto.RegisterRequest) (*models.Student, error) {
			return nil, apperrors.ErrUsernameTaken
		},
	}
	router := newAuthRouter(authService)

	w := postJSON(router, "/api/authentication/register", dto.RegisterRequest{
		Username: "jdoe",
		Password: "s3cret",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestLoginEndpointSuccess(t *testing.T) {
	authService := &mockAuthService{
		loginFn: func(ctx context.Context, req *dto.LoginRequest) (string, error) {
			return "signed.jwt.token", nil
		},
	}
	router := newAuthRouter(authService)

	w := postJSON(router, "/api/authentication/login", dto.LoginRequest{
		Username: "jdoe",
		Password: "s3cret",
	})

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.TokenResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "signed.jwt.token", resp.Token)
}

func TestLoginEndpointMissingFields(t *testing.T) {
	router := newAuthRouter(&mockAuthService{})

	w := postJSON(router, "/api/authentication/login", map[string]string{
		"username": "jdoe",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginEndpointInvalidCredentials(t *testing.T) {
	authService := &mockAuthService{
		loginFn: func(ctx context.Context, req *dto.LoginRequest) (string, error) {
			return "", apperrors.ErrInvalidCredentials
		},
	}
	router := newAuthRouter(authService)

	w := postJSON(router, "/api/authentication/login", dto.LoginRequest{
		Username: "jdoe",
		Password: "wrong",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, dto.ErrorCodeInvalidCredentials, resp.Error.Code)
}

func TestLoginEndpointMissingSigningKey(t *testing.T) {
	authService := &mockAuthService{
		loginFn: func(ctx context.Context, req *dto.LoginRequest) (string, error) {
			return "", apperrors.ErrMissingSigningKey
		},
	}
	router := newAuthRouter(authService)

	w := postJSON(router, "/api/authentication/login", dto.LoginRequest{
		Username: "jdoe",
		Password: "s3cret",
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
