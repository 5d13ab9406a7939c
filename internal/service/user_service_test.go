package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/barbell-api/internal/domain"
	"github.com/phrazzld/barbell-api/internal/store"
)

func storedUser(t *testing.T, email string) *domain.User {
	t.Helper()
	user, err := domain.NewUser(email, "a-long-enough-password")
	require.NoError(t, err)
	// Simulate a user loaded from the store: hash present, plaintext gone.
	user.HashedPassword = "$2a$10$fakehashfortestingonly000000000000000000000000000000"
	user.Password = ""
	return user
}

func TestUserServiceGetUser(t *testing.T) {
	t.Parallel()

	user := storedUser(t, "lifter@example.com")
	us := &mockUserStore{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*domain.User, error) {
			if id == user.ID {
				return user, nil
			}
			return nil, store.ErrUserNotFound
		},
	}
	svc := NewUserService(us, nil, nil)
	ctx := context.Background()

	got, err := svc.GetUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, got.Email)

	_, err = svc.GetUser(ctx, uuid.New())
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestUserServiceUpdateProfile(t *testing.T) {
	t.Parallel()

	user := storedUser(t, "lifter@example.com")
	squat := 200.0
	var saved *domain.User
	us := &mockUserStore{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*domain.User, error) {
			return user, nil
		},
		updateProfileFn: func(ctx context.Context, u *domain.User) error {
			saved = u
			return nil
		},
	}
	svc := NewUserService(us, nil, nil)

	got, err := svc.UpdateProfile(context.Background(), user.ID, ProfileUpdate{
		DisplayName: "The Lifter",
		PBSquatGym:  &squat,
	})
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "The Lifter", saved.DisplayName)
	require.NotNil(t, saved.PBSquatGym)
	assert.InDelta(t, 200.0, *saved.PBSquatGym, 1e-9)
	// Fields not present in the update are cleared, not preserved.
	assert.Nil(t, saved.PBBenchGym)
	assert.Equal(t, got, saved)
}

func TestUserServiceDeleteUser(t *testing.T) {
	t.Parallel()

	user := storedUser(t, "lifter@example.com")
	deleted := false
	us := &mockUserStore{
		deleteFn: func(ctx context.Context, id uuid.UUID) error {
			if id != user.ID {
				return store.ErrUserNotFound
			}
			deleted = true
			return nil
		},
	}
	svc := NewUserService(us, nil, nil)
	ctx := context.Background()

	require.NoError(t, svc.DeleteUser(ctx, user.ID))
	assert.True(t, deleted)

	err := svc.DeleteUser(ctx, uuid.New())
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}
