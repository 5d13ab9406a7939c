package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/phrazzld/barbell-api/internal/domain"
)

// CompetitionStore defines the interface for competition result persistence.
type CompetitionStore interface {
	// Create saves a new competition result.
	Create(ctx context.Context, competition *domain.Competition) error

	// GetByID retrieves a competition by ID.
	// Returns ErrCompetitionNotFound if it does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Competition, error)

	// ListByUser retrieves all competitions for a user, ordered by date.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Competition, error)

	// Update replaces a competition's mutable fields and attempts.
	// Returns ErrCompetitionNotFound if it does not exist.
	Update(ctx context.Context, competition *domain.Competition) error

	// Delete removes a competition result.
	// Returns ErrCompetitionNotFound if it does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
