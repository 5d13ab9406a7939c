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

// ownedProgramStore wires GetProgram to return a program owned by ownerID
// and ResolveProgramID to map every nested entity to that program.
func ownedProgramStore(t *testing.T, ownerID uuid.UUID) (*mockProgramStore, *domain.Program) {
	t.Helper()
	program, err := domain.NewProgram(ownerID, "Offseason Strength")
	require.NoError(t, err)

	ps := &mockProgramStore{
		getProgramFn: func(ctx context.Context, id uuid.UUID) (*domain.Program, error) {
			if id == program.ID {
				return program, nil
			}
			return nil, store.ErrProgramNotFound
		},
		resolveProgramIDFn: func(ctx context.Context, level store.HierarchyLevel, id uuid.UUID) (uuid.UUID, error) {
			return program.ID, nil
		},
	}
	return ps, program
}

func TestProgramServiceOwnership(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	intruder := uuid.New()
	ps, program := ownedProgramStore(t, owner)
	svc, err := NewProgramService(ps, nil)
	require.NoError(t, err)
	ctx := context.Background()

	t.Run("owner can read", func(t *testing.T) {
		got, err := svc.GetProgram(ctx, owner, program.ID)
		require.NoError(t, err)
		assert.Equal(t, program.ID, got.ID)
	})

	t.Run("other user is rejected", func(t *testing.T) {
		_, err := svc.GetProgram(ctx, intruder, program.ID)
		assert.ErrorIs(t, err, ErrNotOwned)
	})

	t.Run("missing program surfaces not found", func(t *testing.T) {
		_, err := svc.GetProgram(ctx, owner, uuid.New())
		assert.ErrorIs(t, err, store.ErrProgramNotFound)
	})

	t.Run("nested mutation checks resolved owner", func(t *testing.T) {
		err := svc.DeleteDay(ctx, intruder, uuid.New())
		assert.ErrorIs(t, err, ErrNotOwned)

		err = svc.DeleteDay(ctx, owner, uuid.New())
		assert.NoError(t, err)
	})
}

func TestProgramServiceCreateProgram(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	var saved *domain.Program
	ps := &mockProgramStore{
		createProgramFn: func(ctx context.Context, program *domain.Program) error {
			saved = program
			return nil
		},
	}
	svc, err := NewProgramService(ps, nil)
	require.NoError(t, err)

	program, err := svc.CreateProgram(context.Background(), userID, "Meet Prep")
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, program.ID, saved.ID)
	assert.Equal(t, userID, program.UserID)
	assert.Equal(t, "Meet Prep", program.Name)

	_, err = svc.CreateProgram(context.Background(), userID, "")
	assert.ErrorIs(t, err, domain.ErrProgramNameEmpty)
}

func TestProgramServiceCreateNestedEntities(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	ps, program := ownedProgramStore(t, owner)

	var createdBlock *domain.Block
	var createdWeek *domain.Week
	var createdRow *domain.DayRow
	ps.createBlockFn = func(ctx context.Context, block *domain.Block) error {
		createdBlock = block
		return nil
	}
	ps.createWeekFn = func(ctx context.Context, week *domain.Week) error {
		createdWeek = week
		return nil
	}
	ps.createRowFn = func(ctx context.Context, row *domain.DayRow) error {
		createdRow = row
		return nil
	}

	svc, err := NewProgramService(ps, nil)
	require.NoError(t, err)
	ctx := context.Background()

	block, err := svc.CreateBlock(ctx, owner, program.ID, "Hypertrophy", 0)
	require.NoError(t, err)
	assert.Equal(t, createdBlock, block)
	assert.Equal(t, program.ID, block.ProgramID)

	week, err := svc.CreateWeek(ctx, owner, block.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, createdWeek, week)
	assert.Equal(t, block.ID, week.BlockID)

	columnID := uuid.New()
	row, err := svc.CreateRow(ctx, owner, uuid.New(), 0, map[uuid.UUID]string{columnID: "Squat"})
	require.NoError(t, err)
	assert.Equal(t, createdRow, row)
	assert.Equal(t, "Squat", row.Cells[columnID])
}

func TestProgramServiceWrapsStoreFailures(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	ps, program := ownedProgramStore(t, owner)
	ps.deleteProgramFn = func(ctx context.Context, id uuid.UUID) error {
		return store.ErrTransactionFailed
	}

	svc, err := NewProgramService(ps, nil)
	require.NoError(t, err)

	err = svc.DeleteProgram(context.Background(), owner, program.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrTransactionFailed)

	var svcErr *ProgramServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, "delete_program", svcErr.Operation)
}

func TestNewProgramServiceRequiresStore(t *testing.T) {
	t.Parallel()

	_, err := NewProgramService(nil, nil)
	assert.Error(t, err)
}
