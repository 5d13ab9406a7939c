package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/phrazzld/barbell-api/internal/domain"
	"github.com/phrazzld/barbell-api/internal/store"
)

// UserService provides user profile operations.
type UserService interface {
	// GetUser retrieves a user by their ID
	GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error)

	// CreateUser creates a new user with the specified email and password
	CreateUser(ctx context.Context, email, password string) (*domain.User, error)

	// UpdateProfile updates the user's display name and personal bests.
	// The update is applied as a whole; callers pass the complete desired
	// profile state, not a delta.
	UpdateProfile(ctx context.Context, userID uuid.UUID, update ProfileUpdate) (*domain.User, error)

	// DeleteUser deletes a user and everything they own
	DeleteUser(ctx context.Context, userID uuid.UUID) error
}

// ProfileUpdate carries the mutable profile fields. Nil personal bests clear
// the stored value.
type ProfileUpdate struct {
	DisplayName    string
	PBSquatGym     *float64
	PBBenchGym     *float64
	PBDeadliftGym  *float64
	PBSquatComp    *float64
	PBBenchComp    *float64
	PBDeadliftComp *float64
}

// UserServiceImpl implements the UserService interface
type UserServiceImpl struct {
	userStore store.UserStore
	db        *sql.DB
	logger    *slog.Logger
}

// NewUserService creates a new UserService
func NewUserService(userStore store.UserStore, db *sql.DB, logger *slog.Logger) UserService {
	if logger == nil {
		logger = slog.Default()
	}
	return &UserServiceImpl{
		userStore: userStore,
		db:        db,
		logger:    logger.With("component", "user_service"),
	}
}

// GetUser retrieves a user by their ID
func (s *UserServiceImpl) GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			s.logger.Debug("user not found", "user_id", userID)
		} else {
			s.logger.Error("failed to retrieve user",
				"error", err,
				"user_id", userID)
		}
		return nil, fmt.Errorf("failed to retrieve user: %w", err)
	}

	return user, nil
}

// CreateUser creates a new user with the specified email and password.
// Uses a transaction to ensure atomicity of the operation.
func (s *UserServiceImpl) CreateUser(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := domain.NewUser(email, password)
	if err != nil {
		s.logger.Debug("failed to create user object",
			"error", err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return s.userStore.WithTx(tx).Create(ctx, user)
	})
	if err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			s.logger.Debug("attempted to create user with existing email")
		} else {
			s.logger.Error("failed to save user to database",
				"error", err,
				"user_id", user.ID)
		}
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	s.logger.Info("user created", "user_id", user.ID)
	return user, nil
}

// UpdateProfile updates the user's display name and personal bests
func (s *UserServiceImpl) UpdateProfile(
	ctx context.Context,
	userID uuid.UUID,
	update ProfileUpdate,
) (*domain.User, error) {
	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve user for profile update: %w", err)
	}

	user.DisplayName = update.DisplayName
	user.PBSquatGym = update.PBSquatGym
	user.PBBenchGym = update.PBBenchGym
	user.PBDeadliftGym = update.PBDeadliftGym
	user.PBSquatComp = update.PBSquatComp
	user.PBBenchComp = update.PBBenchComp
	user.PBDeadliftComp = update.PBDeadliftComp

	if err := s.userStore.UpdateProfile(ctx, user); err != nil {
		s.logger.Error("failed to update user profile",
			"error", err,
			"user_id", userID)
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	s.logger.Info("user profile updated", "user_id", userID)
	return user, nil
}

// DeleteUser deletes a user by their ID
func (s *UserServiceImpl) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	if err := s.userStore.Delete(ctx, userID); err != nil {
		if !errors.Is(err, store.ErrUserNotFound) {
			s.logger.Error("failed to delete user",
				"error", err,
				"user_id", userID)
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}

	s.logger.Info("user deleted", "user_id", userID)
	return nil
}
