package api

import (
	"context"

	"github.com/google/uuid"

	"github.com/phrazzld/barbell-api/internal/domain"
	"github.com/phrazzld/barbell-api/internal/domain/analytics"
	"github.com/phrazzld/barbell-api/internal/service"
	"github.com/phrazzld/barbell-api/internal/store"
)

// Function-field mocks for the handler dependencies. Unset fields return
// not-found sentinels so tests only wire the calls they care about.

type mockUserStore struct {
	CreateFn        func(ctx context.Context, user *domain.User) error
	GetByIDFn       func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmailFn    func(ctx context.Context, email string) (*domain.User, error)
	UpdateProfileFn func(ctx context.Context, user *domain.User) error
	DeleteFn        func(ctx context.Context, id uuid.UUID) error
}

func (m *mockUserStore) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}
	return nil
}

func (m *mockUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, store.ErrUserNotFound
}

func (m *mockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	return nil, store.ErrUserNotFound
}

func (m *mockUserStore) UpdateProfile(ctx context.Context, user *domain.User) error {
	if m.UpdateProfileFn != nil {
		return m.UpdateProfileFn(ctx, user)
	}
	return nil
}

func (m *mockUserStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

func (m *mockUserStore) WithTx(tx store.DBTX) store.UserStore { return m }

type mockProgramService struct {
	CreateProgramFn func(ctx context.Context, userID uuid.UUID, name string) (*domain.Program, error)
	GetProgramFn    func(ctx context.Context, userID, programID uuid.UUID) (*domain.Program, error)
	ListProgramsFn  func(ctx context.Context, userID uuid.UUID) ([]*domain.Program, error)
	RenameProgramFn func(ctx context.Context, userID, programID uuid.UUID, name string) (*domain.Program, error)
	DeleteProgramFn func(ctx context.Context, userID, programID uuid.UUID) error
	CreateBlockFn   func(ctx context.Context, userID, programID uuid.UUID, name string, order int) (*domain.Block, error)
	UpdateBlockFn   func(ctx context.Context, userID uuid.UUID, block *domain.Block) error
	DeleteBlockFn   func(ctx context.Context, userID, blockID uuid.UUID) error
	CreateWeekFn    func(ctx context.Context, userID, blockID uuid.UUID, weekNumber int) (*domain.Week, error)
	DeleteWeekFn    func(ctx context.Context, userID, weekID uuid.UUID) error
	CreateDayFn     func(ctx context.Context, userID, weekID uuid.UUID, dayNumber int) (*domain.Day, error)
	UpdateDayFn     func(ctx context.Context, userID uuid.UUID, day *domain.Day) error
	DeleteDayFn     func(ctx context.Context, userID, dayID uuid.UUID) error
	CreateColumnFn  func(ctx context.Context, userID, dayID uuid.UUID, label string, order int) (*domain.DayColumn, error)
	UpdateColumnFn  func(ctx context.Context, userID uuid.UUID, column *domain.DayColumn) error
	DeleteColumnFn  func(ctx context.Context, userID, columnID uuid.UUID) error
	CreateRowFn     func(ctx context.Context, userID, dayID uuid.UUID, order int, cells map[uuid.UUID]string) (*domain.DayRow, error)
	UpdateRowFn     func(ctx context.Context, userID uuid.UUID, row *domain.DayRow) error
	DeleteRowFn     func(ctx context.Context, userID, rowID uuid.UUID) error
}

func (m *mockProgramService) CreateProgram(ctx context.Context, userID uuid.UUID, name string) (*domain.Program, error) {
	if m.CreateProgramFn != nil {
		return m.CreateProgramFn(ctx, userID, name)
	}
	return nil, store.ErrProgramNotFound
}

func (m *mockProgramService) GetProgram(ctx context.Context, userID, programID uuid.UUID) (*domain.Program, error) {
	if m.GetProgramFn != nil {
		return m.GetProgramFn(ctx, userID, programID)
	}
	return nil, store.ErrProgramNotFound
}

func (m *mockProgramService) ListPrograms(ctx context.Context, userID uuid.UUID) ([]*domain.Program, error) {
	if m.ListProgramsFn != nil {
		return m.ListProgramsFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockProgramService) RenameProgram(ctx context.Context, userID, programID uuid.UUID, name string) (*domain.Program, error) {
	if m.RenameProgramFn != nil {
		return m.RenameProgramFn(ctx, userID, programID, name)
	}
	return nil, store.ErrProgramNotFound
}

func (m *mockProgramService) DeleteProgram(ctx context.Context, userID, programID uuid.UUID) error {
	if m.DeleteProgramFn != nil {
		return m.DeleteProgramFn(ctx, userID, programID)
	}
	return nil
}

func (m *mockProgramService) CreateBlock(ctx context.Context, userID, programID uuid.UUID, name string, order int) (*domain.Block, error) {
	if m.CreateBlockFn != nil {
		return m.CreateBlockFn(ctx, userID, programID, name, order)
	}
	return nil, store.ErrProgramNotFound
}

func (m *mockProgramService) UpdateBlock(ctx context.Context, userID uuid.UUID, block *domain.Block) error {
	if m.UpdateBlockFn != nil {
		return m.UpdateBlockFn(ctx, userID, block)
	}
	return nil
}

func (m *mockProgramService) DeleteBlock(ctx context.Context, userID, blockID uuid.UUID) error {
	if m.DeleteBlockFn != nil {
		return m.DeleteBlockFn(ctx, userID, blockID)
	}
	return nil
}

func (m *mockProgramService) CreateWeek(ctx context.Context, userID, blockID uuid.UUID, weekNumber int) (*domain.Week, error) {
	if m.CreateWeekFn != nil {
		return m.CreateWeekFn(ctx, userID, blockID, weekNumber)
	}
	return nil, store.ErrBlockNotFound
}

func (m *mockProgramService) DeleteWeek(ctx context.Context, userID, weekID uuid.UUID) error {
	if m.DeleteWeekFn != nil {
		return m.DeleteWeekFn(ctx, userID, weekID)
	}
	return nil
}

func (m *mockProgramService) CreateDay(ctx context.Context, userID, weekID uuid.UUID, dayNumber int) (*domain.Day, error) {
	if m.CreateDayFn != nil {
		return m.CreateDayFn(ctx, userID, weekID, dayNumber)
	}
	return nil, store.ErrWeekNotFound
}

func (m *mockProgramService) UpdateDay(ctx context.Context, userID uuid.UUID, day *domain.Day) error {
	if m.UpdateDayFn != nil {
		return m.UpdateDayFn(ctx, userID, day)
	}
	return nil
}

func (m *mockProgramService) DeleteDay(ctx context.Context, userID, dayID uuid.UUID) error {
	if m.DeleteDayFn != nil {
		return m.DeleteDayFn(ctx, userID, dayID)
	}
	return nil
}

func (m *mockProgramService) CreateColumn(ctx context.Context, userID, dayID uuid.UUID, label string, order int) (*domain.DayColumn, error) {
	if m.CreateColumnFn != nil {
		return m.CreateColumnFn(ctx, userID, dayID, label, order)
	}
	return nil, store.ErrDayNotFound
}

func (m *mockProgramService) UpdateColumn(ctx context.Context, userID uuid.UUID, column *domain.DayColumn) error {
	if m.UpdateColumnFn != nil {
		return m.UpdateColumnFn(ctx, userID, column)
	}
	return nil
}

func (m *mockProgramService) DeleteColumn(ctx context.Context, userID, columnID uuid.UUID) error {
	if m.DeleteColumnFn != nil {
		return m.DeleteColumnFn(ctx, userID, columnID)
	}
	return nil
}

func (m *mockProgramService) CreateRow(ctx context.Context, userID, dayID uuid.UUID, order int, cells map[uuid.UUID]string) (*domain.DayRow, error) {
	if m.CreateRowFn != nil {
		return m.CreateRowFn(ctx, userID, dayID, order, cells)
	}
	return nil, store.ErrDayNotFound
}

func (m *mockProgramService) UpdateRow(ctx context.Context, userID uuid.UUID, row *domain.DayRow) error {
	if m.UpdateRowFn != nil {
		return m.UpdateRowFn(ctx, userID, row)
	}
	return nil
}

func (m *mockProgramService) DeleteRow(ctx context.Context, userID, rowID uuid.UUID) error {
	if m.DeleteRowFn != nil {
		return m.DeleteRowFn(ctx, userID, rowID)
	}
	return nil
}

type mockStatsService struct {
	ComputeProgramStatsFn func(ctx context.Context, userID, programID uuid.UUID, opts analytics.Options) (*analytics.StatsResult, error)
	GetSettingsFn         func(ctx context.Context, userID, programID uuid.UUID) (*domain.StatsSettings, error)
	UpdateSettingsFn      func(ctx context.Context, userID, programID uuid.UUID, update service.SettingsUpdate) (*domain.StatsSettings, error)
}

func (m *mockStatsService) ComputeProgramStats(ctx context.Context, userID, programID uuid.UUID, opts analytics.Options) (*analytics.StatsResult, error) {
	if m.ComputeProgramStatsFn != nil {
		return m.ComputeProgramStatsFn(ctx, userID, programID, opts)
	}
	return nil, store.ErrProgramNotFound
}

func (m *mockStatsService) GetSettings(ctx context.Context, userID, programID uuid.UUID) (*domain.StatsSettings, error) {
	if m.GetSettingsFn != nil {
		return m.GetSettingsFn(ctx, userID, programID)
	}
	return nil, service.ErrSettingsNotConfigured
}

func (m *mockStatsService) UpdateSettings(ctx context.Context, userID, programID uuid.UUID, update service.SettingsUpdate) (*domain.StatsSettings, error) {
	if m.UpdateSettingsFn != nil {
		return m.UpdateSettingsFn(ctx, userID, programID, update)
	}
	return nil, store.ErrProgramNotFound
}

type mockCompetitionService struct {
	CreateCompetitionFn func(ctx context.Context, competition *domain.Competition) (*domain.Competition, error)
	GetCompetitionFn    func(ctx context.Context, userID, competitionID uuid.UUID) (*domain.Competition, error)
	ListCompetitionsFn  func(ctx context.Context, userID uuid.UUID) ([]*domain.Competition, error)
	UpdateCompetitionFn func(ctx context.Context, userID uuid.UUID, competition *domain.Competition) error
	DeleteCompetitionFn func(ctx context.Context, userID, competitionID uuid.UUID) error
	ProgressFn          func(ctx context.Context, userID uuid.UUID) ([]service.CompetitionProgressPoint, error)
}

func (m *mockCompetitionService) CreateCompetition(ctx context.Context, competition *domain.Competition) (*domain.Competition, error) {
	if m.CreateCompetitionFn != nil {
		return m.CreateCompetitionFn(ctx, competition)
	}
	return competition, nil
}

func (m *mockCompetitionService) GetCompetition(ctx context.Context, userID, competitionID uuid.UUID) (*domain.Competition, error) {
	if m.GetCompetitionFn != nil {
		return m.GetCompetitionFn(ctx, userID, competitionID)
	}
	return nil, store.ErrCompetitionNotFound
}

func (m *mockCompetitionService) ListCompetitions(ctx context.Context, userID uuid.UUID) ([]*domain.Competition, error) {
	if m.ListCompetitionsFn != nil {
		return m.ListCompetitionsFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockCompetitionService) UpdateCompetition(ctx context.Context, userID uuid.UUID, competition *domain.Competition) error {
	if m.UpdateCompetitionFn != nil {
		return m.UpdateCompetitionFn(ctx, userID, competition)
	}
	return nil
}

func (m *mockCompetitionService) DeleteCompetition(ctx context.Context, userID, competitionID uuid.UUID) error {
	if m.DeleteCompetitionFn != nil {
		return m.DeleteCompetitionFn(ctx, userID, competitionID)
	}
	return nil
}

func (m *mockCompetitionService) Progress(ctx context.Context, userID uuid.UUID) ([]service.CompetitionProgressPoint, error) {
	if m.ProgressFn != nil {
		return m.ProgressFn(ctx, userID)
	}
	return nil, nil
}

type mockUserService struct {
	GetUserFn       func(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	CreateUserFn    func(ctx context.Context, email, password string) (*domain.User, error)
	UpdateProfileFn func(ctx context.Context, userID uuid.UUID, update service.ProfileUpdate) (*domain.User, error)
	DeleteUserFn    func(ctx context.Context, userID uuid.UUID) error
}

func (m *mockUserService) GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	if m.GetUserFn != nil {
		return m.GetUserFn(ctx, userID)
	}
	return nil, store.ErrUserNotFound
}

func (m *mockUserService) CreateUser(ctx context.Context, email, password string) (*domain.User, error) {
	if m.CreateUserFn != nil {
		return m.CreateUserFn(ctx, email, password)
	}
	return nil, store.ErrUserNotFound
}

func (m *mockUserService) UpdateProfile(ctx context.Context, userID uuid.UUID, update service.ProfileUpdate) (*domain.User, error) {
	if m.UpdateProfileFn != nil {
		return m.UpdateProfileFn(ctx, userID, update)
	}
	return nil, store.ErrUserNotFound
}

func (m *mockUserService) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	if m.DeleteUserFn != nil {
		return m.DeleteUserFn(ctx, userID)
	}
	return nil
}
