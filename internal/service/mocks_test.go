package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/phrazzld/barbell-api/internal/domain"
	"github.com/phrazzld/barbell-api/internal/domain/analytics"
	"github.com/phrazzld/barbell-api/internal/store"
)

// mockProgramStore implements store.ProgramStore with overridable behavior.
// Unset functions return zero values so tests only wire what they exercise.
type mockProgramStore struct {
	createProgramFn    func(ctx context.Context, program *domain.Program) error
	getProgramFn       func(ctx context.Context, id uuid.UUID) (*domain.Program, error)
	listProgramsFn     func(ctx context.Context, userID uuid.UUID) ([]*domain.Program, error)
	updateProgramFn    func(ctx context.Context, program *domain.Program) error
	deleteProgramFn    func(ctx context.Context, id uuid.UUID) error
	createBlockFn      func(ctx context.Context, block *domain.Block) error
	getBlockFn         func(ctx context.Context, id uuid.UUID) (*domain.Block, error)
	updateBlockFn      func(ctx context.Context, block *domain.Block) error
	deleteBlockFn      func(ctx context.Context, id uuid.UUID) error
	createWeekFn       func(ctx context.Context, week *domain.Week) error
	deleteWeekFn       func(ctx context.Context, id uuid.UUID) error
	createDayFn        func(ctx context.Context, day *domain.Day) error
	updateDayFn        func(ctx context.Context, day *domain.Day) error
	deleteDayFn        func(ctx context.Context, id uuid.UUID) error
	createColumnFn     func(ctx context.Context, column *domain.DayColumn) error
	updateColumnFn     func(ctx context.Context, column *domain.DayColumn) error
	deleteColumnFn     func(ctx context.Context, id uuid.UUID) error
	createRowFn        func(ctx context.Context, row *domain.DayRow) error
	updateRowFn        func(ctx context.Context, row *domain.DayRow) error
	deleteRowFn        func(ctx context.Context, id uuid.UUID) error
	resolveProgramIDFn func(ctx context.Context, level store.HierarchyLevel, id uuid.UUID) (uuid.UUID, error)
}

var _ store.ProgramStore = (*mockProgramStore)(nil)

func (m *mockProgramStore) CreateProgram(ctx context.Context, program *domain.Program) error {
	if m.createProgramFn != nil {
		return m.createProgramFn(ctx, program)
	}
	return nil
}

func (m *mockProgramStore) GetProgram(ctx context.Context, id uuid.UUID) (*domain.Program, error) {
	if m.getProgramFn != nil {
		return m.getProgramFn(ctx, id)
	}
	return nil, store.ErrProgramNotFound
}

func (m *mockProgramStore) ListProgramsByUser(
	ctx context.Context,
	userID uuid.UUID,
) ([]*domain.Program, error) {
	if m.listProgramsFn != nil {
		return m.listProgramsFn(ctx, userID)
	}
	return []*domain.Program{}, nil
}

func (m *mockProgramStore) UpdateProgram(ctx context.Context, program *domain.Program) error {
	if m.updateProgramFn != nil {
		return m.updateProgramFn(ctx, program)
	}
	return nil
}

func (m *mockProgramStore) DeleteProgram(ctx context.Context, id uuid.UUID) error {
	if m.deleteProgramFn != nil {
		return m.deleteProgramFn(ctx, id)
	}
	return nil
}

func (m *mockProgramStore) CreateBlock(ctx context.Context, block *domain.Block) error {
	if m.createBlockFn != nil {
		return m.createBlockFn(ctx, block)
	}
	return nil
}

func (m *mockProgramStore) GetBlock(ctx context.Context, id uuid.UUID) (*domain.Block, error) {
	if m.getBlockFn != nil {
		return m.getBlockFn(ctx, id)
	}
	return nil, store.ErrBlockNotFound
}

func (m *mockProgramStore) UpdateBlock(ctx context.Context, block *domain.Block) error {
	if m.updateBlockFn != nil {
		return m.updateBlockFn(ctx, block)
	}
	return nil
}

func (m *mockProgramStore) DeleteBlock(ctx context.Context, id uuid.UUID) error {
	if m.deleteBlockFn != nil {
		return m.deleteBlockFn(ctx, id)
	}
	return nil
}

func (m *mockProgramStore) CreateWeek(ctx context.Context, week *domain.Week) error {
	if m.createWeekFn != nil {
		return m.createWeekFn(ctx, week)
	}
	return nil
}

func (m *mockProgramStore) DeleteWeek(ctx context.Context, id uuid.UUID) error {
	if m.deleteWeekFn != nil {
		return m.deleteWeekFn(ctx, id)
	}
	return nil
}

func (m *mockProgramStore) CreateDay(ctx context.Context, day *domain.Day) error {
	if m.createDayFn != nil {
		return m.createDayFn(ctx, day)
	}
	return nil
}

func (m *mockProgramStore) UpdateDay(ctx context.Context, day *domain.Day) error {
	if m.updateDayFn != nil {
		return m.updateDayFn(ctx, day)
	}
	return nil
}

func (m *mockProgramStore) DeleteDay(ctx context.Context, id uuid.UUID) error {
	if m.deleteDayFn != nil {
		return m.deleteDayFn(ctx, id)
	}
	return nil
}

func (m *mockProgramStore) CreateColumn(ctx context.Context, column *domain.DayColumn) error {
	if m.createColumnFn != nil {
		return m.createColumnFn(ctx, column)
	}
	return nil
}

func (m *mockProgramStore) UpdateColumn(ctx context.Context, column *domain.DayColumn) error {
	if m.updateColumnFn != nil {
		return m.updateColumnFn(ctx, column)
	}
	return nil
}

func (m *mockProgramStore) DeleteColumn(ctx context.Context, id uuid.UUID) error {
	if m.deleteColumnFn != nil {
		return m.deleteColumnFn(ctx, id)
	}
	return nil
}

func (m *mockProgramStore) CreateRow(ctx context.Context, row *domain.DayRow) error {
	if m.createRowFn != nil {
		return m.createRowFn(ctx, row)
	}
	return nil
}

func (m *mockProgramStore) UpdateRow(ctx context.Context, row *domain.DayRow) error {
	if m.updateRowFn != nil {
		return m.updateRowFn(ctx, row)
	}
	return nil
}

func (m *mockProgramStore) DeleteRow(ctx context.Context, id uuid.UUID) error {
	if m.deleteRowFn != nil {
		return m.deleteRowFn(ctx, id)
	}
	return nil
}

func (m *mockProgramStore) ResolveProgramID(
	ctx context.Context,
	level store.HierarchyLevel,
	id uuid.UUID,
) (uuid.UUID, error) {
	if m.resolveProgramIDFn != nil {
		return m.resolveProgramIDFn(ctx, level, id)
	}
	return uuid.Nil, store.ErrNotFound
}

func (m *mockProgramStore) WithTx(tx store.DBTX) store.ProgramStore {
	return m
}

// mockHierarchyStore implements store.HierarchyStore.
type mockHierarchyStore struct {
	getHierarchyFn func(ctx context.Context, programID uuid.UUID) (*analytics.ProgramHierarchy, error)
}

var _ store.HierarchyStore = (*mockHierarchyStore)(nil)

func (m *mockHierarchyStore) GetProgramHierarchy(
	ctx context.Context,
	programID uuid.UUID,
) (*analytics.ProgramHierarchy, error) {
	if m.getHierarchyFn != nil {
		return m.getHierarchyFn(ctx, programID)
	}
	return &analytics.ProgramHierarchy{}, nil
}

// mockSettingsStore implements store.SettingsStore.
type mockSettingsStore struct {
	getByProgramFn    func(ctx context.Context, programID uuid.UUID) (*domain.StatsSettings, error)
	upsertByProgramFn func(ctx context.Context, settings *domain.StatsSettings) error
	deleteByProgramFn func(ctx context.Context, programID uuid.UUID) error
}

var _ store.SettingsStore = (*mockSettingsStore)(nil)

func (m *mockSettingsStore) GetByProgram(
	ctx context.Context,
	programID uuid.UUID,
) (*domain.StatsSettings, error) {
	if m.getByProgramFn != nil {
		return m.getByProgramFn(ctx, programID)
	}
	return nil, store.ErrSettingsNotFound
}

func (m *mockSettingsStore) UpsertByProgram(
	ctx context.Context,
	settings *domain.StatsSettings,
) error {
	if m.upsertByProgramFn != nil {
		return m.upsertByProgramFn(ctx, settings)
	}
	return nil
}

func (m *mockSettingsStore) DeleteByProgram(ctx context.Context, programID uuid.UUID) error {
	if m.deleteByProgramFn != nil {
		return m.deleteByProgramFn(ctx, programID)
	}
	return nil
}

// mockCompetitionStore implements store.CompetitionStore.
type mockCompetitionStore struct {
	createFn     func(ctx context.Context, competition *domain.Competition) error
	getByIDFn    func(ctx context.Context, id uuid.UUID) (*domain.Competition, error)
	listByUserFn func(ctx context.Context, userID uuid.UUID) ([]*domain.Competition, error)
	updateFn     func(ctx context.Context, competition *domain.Competition) error
	deleteFn     func(ctx context.Context, id uuid.UUID) error
}

var _ store.CompetitionStore = (*mockCompetitionStore)(nil)

func (m *mockCompetitionStore) Create(ctx context.Context, competition *domain.Competition) error {
	if m.createFn != nil {
		return m.createFn(ctx, competition)
	}
	return nil
}

func (m *mockCompetitionStore) GetByID(
	ctx context.Context,
	id uuid.UUID,
) (*domain.Competition, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, store.ErrCompetitionNotFound
}

func (m *mockCompetitionStore) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
) ([]*domain.Competition, error) {
	if m.listByUserFn != nil {
		return m.listByUserFn(ctx, userID)
	}
	return []*domain.Competition{}, nil
}

func (m *mockCompetitionStore) Update(ctx context.Context, competition *domain.Competition) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, competition)
	}
	return nil
}

func (m *mockCompetitionStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

// mockUserStore implements store.UserStore.
type mockUserStore struct {
	createFn        func(ctx context.Context, user *domain.User) error
	getByIDFn       func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	getByEmailFn    func(ctx context.Context, email string) (*domain.User, error)
	updateProfileFn func(ctx context.Context, user *domain.User) error
	deleteFn        func(ctx context.Context, id uuid.UUID) error
}

var _ store.UserStore = (*mockUserStore)(nil)

func (m *mockUserStore) Create(ctx context.Context, user *domain.User) error {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return nil
}

func (m *mockUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, store.ErrUserNotFound
}

func (m *mockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.getByEmailFn != nil {
		return m.getByEmailFn(ctx, email)
	}
	return nil, store.ErrUserNotFound
}

func (m *mockUserStore) UpdateProfile(ctx context.Context, user *domain.User) error {
	if m.updateProfileFn != nil {
		return m.updateProfileFn(ctx, user)
	}
	return nil
}

func (m *mockUserStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockUserStore) WithTx(tx store.DBTX) store.UserStore {
	return m
}
