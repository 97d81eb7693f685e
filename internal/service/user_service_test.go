package service

import (
	"context"
	"strings"
	"testing"

	"shanyraq/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_GetProfile(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		repo := noopUserRepo()
		repo.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id, Username: "ali@example.com"}, nil
		}
		svc := NewUserService(repo)

		user, err := svc.GetProfile(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, "ali@example.com", user.Username)
	})

	t.Run("missing user propagates not found", func(t *testing.T) {
		t.Parallel()
		repo := noopUserRepo()
		repo.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
			return nil, models.NewNotFoundError("User", id)
		}
		svc := NewUserService(repo)

		_, err := svc.GetProfile(context.Background(), 99)
		assertNotFoundError(t, err)
	})
}

func TestUserService_UpdateProfile(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("nil fields are left untouched", func(t *testing.T) {
		t.Parallel()
		phone := "+7 700 000 00 00"
		name := "Ali"
		repo := noopUserRepo()
		repo.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id, Username: "ali@example.com", Phone: &phone, Name: &name}, nil
		}
		var saved *models.User
		repo.updateFn = func(_ context.Context, u *models.User) error {
			saved = u
			return nil
		}
		svc := NewUserService(repo)

		newCity := "Astana"
		user, err := svc.UpdateProfile(ctx, UpdateProfileInput{UserID: 1, City: &newCity})
		require.NoError(t, err)
		require.NotNil(t, user.City)
		assert.Equal(t, "Astana", *user.City)
		require.NotNil(t, saved.Phone)
		assert.Equal(t, phone, *saved.Phone)
		require.NotNil(t, saved.Name)
		assert.Equal(t, name, *saved.Name)
	})

	t.Run("overlong field is rejected", func(t *testing.T) {
		t.Parallel()
		svc := NewUserService(noopUserRepo())
		long := strings.Repeat("x", 101)
		_, err := svc.UpdateProfile(ctx, UpdateProfileInput{UserID: 1, Name: &long})
		assertValidationError(t, err)
	})
}

func TestUserService_DeleteAccount(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		repo := noopUserRepo()
		deleted := false
		repo.deleteFn = func(_ context.Context, _ uint) error {
			deleted = true
			return nil
		}
		svc := NewUserService(repo)
		require.NoError(t, svc.DeleteAccount(ctx, 1))
		assert.True(t, deleted)
	})

	t.Run("missing user propagates not found", func(t *testing.T) {
		t.Parallel()
		repo := noopUserRepo()
		repo.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
			return nil, models.NewNotFoundError("User", id)
		}
		svc := NewUserService(repo)
		err := svc.DeleteAccount(ctx, 99)
		assertNotFoundError(t, err)
	})
}
