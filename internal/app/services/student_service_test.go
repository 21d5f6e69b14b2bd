package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/academia/course-portal/internal/app/models"
	"github.com/academia/course-portal/internal/app/models/dto"
	"github.com/academia/course-portal/internal/app/repositories"
	"github.com/academia/course-portal/internal/pkg/apperrors"
	"github.com/academia/course-portal/internal/pkg/auth"
)

func TestGetStudentByIDNotFound(t *testing.T) {
	repo := &mockStudentRepository{
		getByIDFn: func(ctx context.Context, id int64) (*models.Student, error) {
			return nil, repositories.ErrStudentNotFound
		},
	}
	service := NewStudentService(repo)

	_, err := service.GetStudentByID(context.Background(), 99)
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestGetStudentByIDInvalid(t *testing.T) {
	service := NewStudentService(&mockStudentRepository{})

	_, err := service.GetStudentByID(context.Background(), 0)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestCreateStudentHashesPassword(t *testing.T) {
	var created *models.Student
	repo := &mockStudentRepository{
		createFn: func(ctx context.Context, student *models.Student) error {
			student.ID = 5
			created = student
			return nil
		},
	}
	service := NewStudentService(repo)

	student, err := service.CreateStudent(context.Background(), &dto.CreateStudentRequest{
		Name:     "Jane Doe",
		Username: "jdoe",
		Password: "s3cret",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(5), student.ID)
	require.NotNil(t, created)
	assert.True(t, auth.CheckPassword(created.Password, "s3cret"))
}

func TestCreateStudentDuplicateUsername(t *testing.T) {
	repo := &mockStudentRepository{
		createFn: func(ctx context.Context, student *models.Student) error {
			return repositories.ErrUsernameTaken
		},
	}
	service := NewStudentService(repo)

	_, err := service.CreateStudent(context.Background(), &dto.CreateStudentRequest{
		Username: "jdoe",
		Password: "s3cret",
	})
	assert.ErrorIs(t, err, apperrors.ErrUsernameTaken)
}

func TestUpdateStudentWithoutPasswordKeepsHash(t *testing.T) {
	var gotHash string
	repo := &mockStudentRepository{
		updateFn: func(ctx context.Context, id int64, name, email, passwordHash string) error {
			gotHash = passwordHash
			return nil
		},
	}
	service := NewStudentService(repo)

	err := service.UpdateStudent(context.Background(), &dto.UpdateStudentRequest{
		ID:    1,
		Name:  "Jane Doe",
		Email: "jane@example.edu",
	})
	require.NoError(t, err)

	// An empty hash tells the repository to leave the stored password alone
	assert.Empty(t, gotHash)
}

func TestUpdateStudentWithPasswordRehashes(t *testing.T) {
	var gotHash string
	repo := &mockStudentRepository{
		updateFn: func(ctx context.Context, id int64, name, email, passwordHash string) error {
			gotHash = passwordHash
			return nil
		},
	}
	service := NewStudentService(repo)

	err := service.UpdateStudent(context.Background(), &dto.UpdateStudentRequest{
		ID:       1,
		Password: "new-password",
	})
	require.NoError(t, err)

	require.NotEmpty(t, gotHash)
	assert.True(t, auth.CheckPassword(gotHash, "new-password"))
}

func TestUpdateStudentNotFound(t *testing.T) {
	repo := &mockStudentRepository{
		updateFn: func(ctx context.Context, id int64, name, email, passwordHash string) error {
			return repositories.ErrStudentNotFound
		},
	}
	service := NewStudentService(repo)

	err := service.UpdateStudent(context.Background(), &dto.UpdateStudentRequest{ID: 99})
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestDeleteStudentNotFound(t *testing.T) {
	repo := &mockStudentRepository{
		deleteFn: func(ctx context.Context, id int64) error {
			return repositories.ErrStudentNotFound
		},
	}
	service := NewStudentService(repo)

	err := service.DeleteStudent(context.Background(), 99)
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}
