package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/academia/course-portal/internal/app/models"
	"github.com/academia/course-portal/internal/app/models/dto"
	"github.com/academia/course-portal/internal/app/repositories"
	"github.com/academia/course-portal/internal/pkg/apperrors"
	"github.com/academia/course-portal/internal/pkg/auth"
)

// authService implements AuthService on top of the student credential store.
type authService struct {
	studentRepo repositories.IStudentRepository
	jwtService  *auth.JWTService
	logger      zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(studentRepo repositories.IStudentRepository, jwtService *auth.JWTService, logger zerolog.Logger) AuthService {
	return &authService{
		studentRepo: studentRepo,
		jwtService:  jwtService,
		logger:      logger,
	}
}

// Register creates a new student record with a hashed password. Fails with a
// conflict if the username is already taken.
func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*models.Student, error) {
	if strings.TrimSpace(req.Username) == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: username and password are required", apperrors.ErrValidationFailed)
	}

	exists, err := s.studentRepo.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("error checking username: %w", err)
	}
	if exists {
		return nil, apperrors.ErrUsernameTaken
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	student := &models.Student{
		Name:     req.Name,
		Username: req.Username,
		Email:    req.Email,
		Password: hashed,
	}

	if err := s.studentRepo.Create(ctx, student); err != nil {
		// A concurrent registration can still win the unique index race.
		if errors.Is(err, repositories.ErrUsernameTaken) {
			return nil, apperrors.ErrUsernameTaken
		}
		return nil, fmt.Errorf("error creating student: %w", err)
	}

	s.logger.Info().Int64("studentId", student.ID).Str("username", student.Username).
		Msg("Student registered")

	return student, nil
}

// Login verifies credentials and issues a signed bearer token. Unknown
// usernames and hash mismatches are indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (string, error) {
	if req.Username == "" || req.Password == "" {
		return "", fmt.Errorf("%w: username and password are required", apperrors.ErrValidationFailed)
	}

	student, err := s.studentRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, repositories.ErrStudentNotFound) {
			return "", apperrors.ErrInvalidCredentials
		}
		return "", fmt.Errorf("error retrieving student: %w", err)
	}

	if !auth.CheckPassword(student.Password, req.Password) {
		return "", apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(student)
	if err != nil {
		if errors.Is(err, auth.ErrMissingSecret) {
			s.logger.Error().Msg("JWT signing key is missing from configuration")
			return "", apperrors.ErrMissingSigningKey
		}
		return "", fmt.Errorf("error generating token: %w", err)
	}

	return token, nil
}
