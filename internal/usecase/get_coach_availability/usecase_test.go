package get_coach_availability

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtside/booking-service/internal/domain"
	catalogRepo "github.com/courtside/booking-service/internal/infra/storage/catalog"
	"github.com/courtside/booking-service/pkg/types"
)

type stubCatalogRepo struct {
	coach   *domain.Coach
	windows []domain.CoachAvailability
}

func (s *stubCatalogRepo) GetCoachByID(_ context.Context, _ uuid.UUID) (*domain.Coach, error) {
	if s.coach == nil {
		return nil, catalogRepo.ErrCoachNotFound
	}
	return s.coach, nil
}

func (s *stubCatalogRepo) GetCoachAvailability(_ context.Context, _ uuid.UUID) ([]domain.CoachAvailability, error) {
	return s.windows, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var (
	testCoachID = uuid.MustParse("7c9e6679-7425-40de-944b-e07fc1f90ae7")
	// 2025-10-20 is a Monday.
	testDate = time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC)
)

func newCatalog() *stubCatalogRepo {
	return &stubCatalogRepo{
		coach: &domain.Coach{ID: testCoachID, Name: "Elena", HourlyRate: 3000, IsActive: true},
		windows: []domain.CoachAvailability{
			{CoachID: testCoachID, DayOfWeek: 1, StartTime: "09:00", EndTime: "12:00"},
			{CoachID: testCoachID, DayOfWeek: 1, StartTime: "15:00", EndTime: "19:00"},
			{CoachID: testCoachID, DayOfWeek: 3, StartTime: "09:00", EndTime: "19:00"},
		},
	}
}

func TestExecuteReturnsWindowsForDay(t *testing.T) {
	uc := NewUseCase(newCatalog(), nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{CoachID: testCoachID, Date: testDate})
	require.NoError(t, err)

	assert.Equal(t, "Elena", resp.CoachName)
	assert.Equal(t, "2025-10-20", resp.Date)
	require.Len(t, resp.Windows, 2)
	assert.Equal(t, Window{StartTime: "09:00", EndTime: "12:00"}, resp.Windows[0])
	assert.Equal(t, Window{StartTime: "15:00", EndTime: "19:00"}, resp.Windows[1])
	assert.Nil(t, resp.Available)
}

func TestExecuteAnswersSlotQuery(t *testing.T) {
	uc := NewUseCase(newCatalog(), nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		CoachID:   testCoachID,
		Date:      testDate,
		StartTime: types.TimeString("16:00"),
		EndTime:   types.TimeString("18:00"),
	})
	require.NoError(t, err)
	require.NotNil(t, resp.Available)
	assert.True(t, *resp.Available)

	resp, err = uc.Execute(context.Background(), &Request{
		CoachID:   testCoachID,
		Date:      testDate,
		StartTime: types.TimeString("11:00"),
		EndTime:   types.TimeString("13:00"),
	})
	require.NoError(t, err)
	require.NotNil(t, resp.Available)
	assert.False(t, *resp.Available, "slot crossing the window boundary is unavailable")
}

func TestExecuteNoWindowsForDate(t *testing.T) {
	uc := NewUseCase(newCatalog(), nopLogger{})

	// 2025-10-21 is a Tuesday, no windows configured.
	resp, err := uc.Execute(context.Background(), &Request{
		CoachID: testCoachID,
		Date:    time.Date(2025, 10, 21, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Windows)
}

func TestExecuteCoachNotFound(t *testing.T) {
	uc := NewUseCase(&stubCatalogRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{CoachID: testCoachID, Date: testDate})
	require.ErrorIs(t, err, ErrCoachNotFound)
}

func TestExecuteInactiveCoachHidden(t *testing.T) {
	catalog := newCatalog()
	catalog.coach.IsActive = false
	uc := NewUseCase(catalog, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{CoachID: testCoachID, Date: testDate})
	require.ErrorIs(t, err, ErrCoachNotFound)
}

func TestExecuteRejectsHalfSpecifiedRange(t *testing.T) {
	uc := NewUseCase(newCatalog(), nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		CoachID:   testCoachID,
		Date:      testDate,
		StartTime: types.TimeString("16:00"),
	})
	require.ErrorIs(t, err, ErrInvalidInput)
}
