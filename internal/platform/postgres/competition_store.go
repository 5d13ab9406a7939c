package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/phrazzld/barbell-api/internal/domain"
	"github.com/phrazzld/barbell-api/internal/platform/logger"
	"github.com/phrazzld/barbell-api/internal/store"
)

// PostgresCompetitionStore implements the store.CompetitionStore interface
// using a PostgreSQL database as the storage backend. The three-attempt
// grids are persisted as JSONB arrays, one per lift.
type PostgresCompetitionStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresCompetitionStore creates a new PostgreSQL implementation of the
// CompetitionStore interface.
func NewPostgresCompetitionStore(db store.DBTX) *PostgresCompetitionStore {
	if db == nil {
		panic("db cannot be nil")
	}

	return &PostgresCompetitionStore{
		db:     db,
		logger: slog.Default().With(slog.String("component", "competition_store")),
	}
}

// Ensure PostgresCompetitionStore implements store.CompetitionStore interface
var _ store.CompetitionStore = (*PostgresCompetitionStore)(nil)

// Create implements store.CompetitionStore.Create
func (s *PostgresCompetitionStore) Create(ctx context.Context, competition *domain.Competition) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := competition.Validate(); err != nil {
		log.Warn("competition validation failed during create",
			slog.String("error", err.Error()),
			slog.String("competition_id", competition.ID.String()))
		return err
	}

	squat, bench, deadlift, err := marshalAttempts(competition)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO competitions (id, user_id, meet_name, meet_date,
			weight_class, bodyweight_kg, squat_attempts, bench_attempts,
			deadlift_attempts, placing_rank, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`
	_, err = s.db.ExecContext(
		ctx,
		query,
		competition.ID,
		competition.UserID,
		competition.MeetName,
		competition.MeetDate,
		competition.WeightClass,
		competition.BodyweightKg,
		squat,
		bench,
		deadlift,
		competition.PlacingRank,
		competition.Notes,
		competition.CreatedAt,
		competition.UpdatedAt,
	)
	if err != nil {
		if IsForeignKeyViolation(err) {
			return fmt.Errorf("%w: user with ID %s not found",
				store.ErrInvalidEntity, competition.UserID)
		}
		log.Error("failed to create competition",
			slog.String("error", err.Error()),
			slog.String("competition_id", competition.ID.String()))
		return MapError(err)
	}

	log.Info("competition created successfully",
		slog.String("competition_id", competition.ID.String()),
		slog.String("user_id", competition.UserID.String()))
	return nil
}

// GetByID implements store.CompetitionStore.GetByID
// Returns store.ErrCompetitionNotFound if the competition does not exist.
func (s *PostgresCompetitionStore) GetByID(
	ctx context.Context,
	id uuid.UUID,
) (*domain.Competition, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := competitionSelect + ` WHERE id = $1`

	competition, err := scanCompetition(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("competition not found", slog.String("competition_id", id.String()))
			return nil, store.ErrCompetitionNotFound
		}
		log.Error("failed to get competition",
			slog.String("error", err.Error()),
			slog.String("competition_id", id.String()))
		return nil, MapError(err)
	}

	return competition, nil
}

// ListByUser implements store.CompetitionStore.ListByUser
// Results come back oldest meet first so progress charts read left to right.
func (s *PostgresCompetitionStore) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
) ([]*domain.Competition, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := competitionSelect + ` WHERE user_id = $1 ORDER BY meet_date ASC`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		log.Error("failed to list competitions",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, MapError(err)
	}
	defer closeRows(rows, log)

	competitions := []*domain.Competition{}
	for rows.Next() {
		competition, err := scanCompetition(rows)
		if err != nil {
			log.Error("failed to scan competition row",
				slog.String("error", err.Error()))
			return nil, err
		}
		competitions = append(competitions, competition)
	}
	if err := rows.Err(); err != nil {
		log.Error("error after scanning competition rows",
			slog.String("error", err.Error()))
		return nil, err
	}

	return competitions, nil
}

// Update implements store.CompetitionStore.Update
// Returns store.ErrCompetitionNotFound if the competition does not exist.
func (s *PostgresCompetitionStore) Update(ctx context.Context, competition *domain.Competition) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := competition.Validate(); err != nil {
		log.Warn("competition validation failed during update",
			slog.String("error", err.Error()),
			slog.String("competition_id", competition.ID.String()))
		return err
	}

	squat, bench, deadlift, err := marshalAttempts(competition)
	if err != nil {
		return err
	}

	updatedAt := time.Now().UTC()

	query := `
		UPDATE competitions
		SET meet_name = $1, meet_date = $2, weight_class = $3,
			bodyweight_kg = $4, squat_attempts = $5, bench_attempts = $6,
			deadlift_attempts = $7, placing_rank = $8, notes = $9, updated_at = $10
		WHERE id = $11
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		competition.MeetName,
		competition.MeetDate,
		competition.WeightClass,
		competition.BodyweightKg,
		squat,
		bench,
		deadlift,
		competition.PlacingRank,
		competition.Notes,
		updatedAt,
		competition.ID,
	)
	if err != nil {
		log.Error("failed to update competition",
			slog.String("error", err.Error()),
			slog.String("competition_id", competition.ID.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrCompetitionNotFound); err != nil {
		return err
	}

	competition.UpdatedAt = updatedAt
	return nil
}

// Delete implements store.CompetitionStore.Delete
// Returns store.ErrCompetitionNotFound if the competition does not exist.
func (s *PostgresCompetitionStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM competitions WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete competition",
			slog.String("error", err.Error()),
			slog.String("competition_id", id.String()))
		return MapError(err)
	}

	return CheckRowsAffected(result, store.ErrCompetitionNotFound)
}

const competitionSelect = `
	SELECT id, user_id, meet_name, meet_date, weight_class, bodyweight_kg,
		squat_attempts, bench_attempts, deadlift_attempts, placing_rank,
		notes, created_at, updated_at
	FROM competitions
`

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanCompetition(row rowScanner) (*domain.Competition, error) {
	var competition domain.Competition
	var squat, bench, deadlift []byte

	err := row.Scan(
		&competition.ID,
		&competition.UserID,
		&competition.MeetName,
		&competition.MeetDate,
		&competition.WeightClass,
		&competition.BodyweightKg,
		&squat,
		&bench,
		&deadlift,
		&competition.PlacingRank,
		&competition.Notes,
		&competition.CreatedAt,
		&competition.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	for _, pair := range []struct {
		data []byte
		dest *[3]domain.Attempt
	}{
		{squat, &competition.Squat},
		{bench, &competition.Bench},
		{deadlift, &competition.Deadlift},
	} {
		if err := json.Unmarshal(pair.data, pair.dest); err != nil {
			return nil, fmt.Errorf("failed to unmarshal attempts: %w", err)
		}
	}

	return &competition, nil
}

func marshalAttempts(c *domain.Competition) (squat, bench, deadlift []byte, err error) {
	squat, err = json.Marshal(c.Squat)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to marshal squat attempts: %w", err)
	}
	bench, err = json.Marshal(c.Bench)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to marshal bench attempts: %w", err)
	}
	deadlift, err = json.Marshal(c.Deadlift)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to marshal deadlift attempts: %w", err)
	}
	return squat, bench, deadlift, nil
}
