package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtside/booking-service/internal/domain"
	catalogRepo "github.com/courtside/booking-service/internal/infra/storage/catalog"
	"github.com/courtside/booking-service/pkg/ptr"
	"github.com/courtside/booking-service/pkg/types"
)

type stubBookingRepo struct {
	existing  []*domain.Booking
	created   *domain.Booking
	createdEq []domain.BookingEquipment
	filterErr error
}

func (s *stubBookingRepo) GetByFilter(_ context.Context, _ domain.BookingsFilter) ([]*domain.Booking, error) {
	if s.filterErr != nil {
		return nil, s.filterErr
	}
	return s.existing, nil
}

func (s *stubBookingRepo) Create(_ context.Context, booking *domain.Booking, equipment []domain.BookingEquipment) (*domain.Booking, error) {
	s.created = booking
	s.createdEq = equipment
	return booking, nil
}

type stubCatalogRepo struct {
	court     *domain.Court
	basePrice *domain.CourtBasePrice
	equipment []*domain.Equipment
	coach     *domain.Coach
	windows   []domain.CoachAvailability
}

func (s *stubCatalogRepo) GetCourtByID(_ context.Context, _ uuid.UUID) (*domain.Court, error) {
	if s.court == nil {
		return nil, catalogRepo.ErrCourtNotFound
	}
	return s.court, nil
}

func (s *stubCatalogRepo) GetBasePriceByCourtID(_ context.Context, _ uuid.UUID) (*domain.CourtBasePrice, error) {
	if s.basePrice == nil {
		return nil, catalogRepo.ErrPriceNotFound
	}
	return s.basePrice, nil
}

func (s *stubCatalogRepo) GetEquipmentByIDs(_ context.Context, _ []uuid.UUID) ([]*domain.Equipment, error) {
	return s.equipment, nil
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

type stubRuleRepo struct {
	rules []*domain.PricingRule
}

func (s *stubRuleRepo) ListActive(_ context.Context) ([]*domain.PricingRule, error) {
	return s.rules, nil
}

type stubTxManager struct {
	calls int
}

func (s *stubTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	s.calls++
	return fn(ctx)
}

type stubEvents struct {
	published []*domain.Booking
	err       error
}

func (s *stubEvents) BookingCreated(_ context.Context, booking *domain.Booking) error {
	s.published = append(s.published, booking)
	return s.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixture struct {
	bookings *stubBookingRepo
	catalog  *stubCatalogRepo
	rules    *stubRuleRepo
	tx       *stubTxManager
	events   *stubEvents
	uc       *UseCase
}

var (
	testCourtID = uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	// 2025-10-20 is a Monday.
	testDate = time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC)
)

func newFixture() *fixture {
	f := &fixture{
		bookings: &stubBookingRepo{},
		catalog: &stubCatalogRepo{
			court: &domain.Court{
				ID:        testCourtID,
				Name:      "Center Court",
				CourtType: domain.CourtTypeIndoor,
				IsActive:  true,
			},
			basePrice: &domain.CourtBasePrice{
				CourtID:        testCourtID,
				BaseHourlyRate: 2000,
			},
		},
		rules:  &stubRuleRepo{},
		tx:     &stubTxManager{},
		events: &stubEvents{},
	}
	f.uc = NewUseCase(f.bookings, f.catalog, f.rules, f.tx, f.events, nopLogger{})
	return f
}

func validRequest() *Request {
	return &Request{
		UserID:    42,
		CourtID:   testCourtID,
		Date:      testDate,
		StartTime: types.TimeString("10:00"),
		EndTime:   types.TimeString("12:00"),
	}
}

func existingBooking(start, end string, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:          uuid.New(),
		UserID:      7,
		CourtID:     testCourtID,
		BookingDate: testDate,
		StartTime:   types.TimeString(start),
		EndTime:     types.TimeString(end),
		Status:      status,
	}
}

func TestExecuteOmittedContactFieldsStayEmpty(t *testing.T) {
	f := newFixture()

	// Контактные данные опциональны: без них бронирование создается,
	// а поля остаются пустыми вплоть до записи в БД.
	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	require.NotNil(t, resp)

	created := f.bookings.created
	require.NotNil(t, created)
	assert.Nil(t, created.CustomerName)
	assert.Nil(t, created.CustomerEmail)
	assert.Nil(t, created.CustomerPhone)
	assert.Nil(t, created.Notes)
}

func TestExecuteCreatesBookingWithPriceSnapshot(t *testing.T) {
	f := newFixture()

	racketID := uuid.New()
	coachID := uuid.New()

	f.catalog.equipment = []*domain.Equipment{
		{ID: racketID, Name: "Pro Racket", RentalPrice: 500, AvailableQuantity: 3, IsActive: true},
	}
	f.catalog.coach = &domain.Coach{ID: coachID, Name: "Elena", HourlyRate: 3000, IsActive: true}
	f.catalog.windows = []domain.CoachAvailability{
		{CoachID: coachID, DayOfWeek: 1, StartTime: "09:00", EndTime: "18:00"},
	}
	f.rules.rules = []*domain.PricingRule{
		{
			Name:       "Indoor premium",
			RuleType:   domain.RuleTypeCourtType,
			Conditions: map[string]any{"court_type": "indoor"},
			Multiplier: 1.2,
			Priority:   10,
			IsActive:   true,
		},
	}

	req := validRequest()
	req.Equipment = []EquipmentSelection{{EquipmentID: racketID, Quantity: 1}}
	req.CoachID = ptr.Ptr(coachID)
	req.Notes = ptr.Ptr("bring extra balls")

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, resp)

	// Ценовой снапшот: 2 часа по 2000, x1.2 = 4800, инвентарь 500, тренер 2x3000.
	created := f.bookings.created
	require.NotNil(t, created)
	assert.Equal(t, domain.StatusPending, created.Status)
	assert.Equal(t, domain.Cents(4000), created.BasePrice)
	assert.Equal(t, domain.Cents(800), created.AdjustmentsPrice)
	assert.Equal(t, domain.Cents(500), created.EquipmentPrice)
	assert.Equal(t, domain.Cents(6000), created.CoachPrice)
	assert.Equal(t, domain.Cents(11300), created.TotalPrice)
	require.NotNil(t, created.PriceBreakdown)
	require.Len(t, created.PriceBreakdown.CourtAdjustments, 1)
	assert.Equal(t, "Indoor premium", created.PriceBreakdown.CourtAdjustments[0].Name)

	require.Len(t, f.bookings.createdEq, 1)
	assert.Equal(t, racketID, f.bookings.createdEq[0].EquipmentID)
	assert.Equal(t, domain.Cents(500), f.bookings.createdEq[0].PriceAtBooking)

	assert.Equal(t, 1, f.tx.calls)
	require.Len(t, f.events.published, 1)

	assert.Equal(t, int64(11300), resp.TotalPrice)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
}

func TestExecuteRejectsConflictingSlot(t *testing.T) {
	f := newFixture()
	f.bookings.existing = []*domain.Booking{
		existingBooking("11:00", "13:00", domain.StatusConfirmed),
	}

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Nil(t, resp)
	assert.Nil(t, f.bookings.created)
	assert.Empty(t, f.events.published)
}

func TestExecuteAdjacentBookingIsNotConflict(t *testing.T) {
	f := newFixture()
	f.bookings.existing = []*domain.Booking{
		existingBooking("08:00", "10:00", domain.StatusConfirmed),
		existingBooking("12:00", "13:00", domain.StatusPending),
	}

	_, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	require.NotNil(t, f.bookings.created)
}

func TestExecuteCancelledBookingDoesNotBlock(t *testing.T) {
	f := newFixture()
	f.bookings.existing = []*domain.Booking{
		existingBooking("10:00", "12:00", domain.StatusCancelled),
	}

	_, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	require.NotNil(t, f.bookings.created)
}

func TestExecuteRejectsOutsideWorkingHours(t *testing.T) {
	f := newFixture()

	req := validRequest()
	req.StartTime = types.TimeString("05:00")
	req.EndTime = types.TimeString("07:00")

	_, err := f.uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrOutsideWorkingHours)
	assert.Zero(t, f.tx.calls)
}

func TestExecuteRejectsInactiveCourt(t *testing.T) {
	f := newFixture()
	f.catalog.court.IsActive = false

	_, err := f.uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrCourtInactive)
}

func TestExecuteRejectsMissingBasePrice(t *testing.T) {
	f := newFixture()
	f.catalog.basePrice = nil

	_, err := f.uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrPriceUnavailable)
}

func TestExecuteRejectsCoachOutsideWindow(t *testing.T) {
	f := newFixture()

	coachID := uuid.New()
	f.catalog.coach = &domain.Coach{ID: coachID, Name: "Elena", HourlyRate: 3000, IsActive: true}
	// Окно кончается в 11:00, запрошен слот до 12:00.
	f.catalog.windows = []domain.CoachAvailability{
		{CoachID: coachID, DayOfWeek: 1, StartTime: "09:00", EndTime: "11:00"},
	}

	req := validRequest()
	req.CoachID = ptr.Ptr(coachID)

	_, err := f.uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrCoachNotAvailable)
	assert.Zero(t, f.tx.calls)
}

func TestExecuteRejectsOverRequestedEquipment(t *testing.T) {
	f := newFixture()

	racketID := uuid.New()
	f.catalog.equipment = []*domain.Equipment{
		{ID: racketID, Name: "Pro Racket", RentalPrice: 500, AvailableQuantity: 1, IsActive: true},
	}

	req := validRequest()
	req.Equipment = []EquipmentSelection{{EquipmentID: racketID, Quantity: 2}}

	_, err := f.uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrEquipmentUnavailable)
}

func TestExecuteEventFailureDoesNotFailBooking(t *testing.T) {
	f := newFixture()
	f.events.err = context.DeadlineExceeded

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	require.NotNil(t, resp)
	require.NotNil(t, f.bookings.created)
}
