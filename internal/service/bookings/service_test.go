package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtside/booking-service/internal/domain"
	bookingRepo "github.com/courtside/booking-service/internal/infra/storage/booking"
	"github.com/courtside/booking-service/internal/service/bookings/models"
	"github.com/courtside/booking-service/pkg/ptr"
)

type stubRepo struct {
	byID       map[uuid.UUID]*domain.Booking
	byUser     []*domain.Booking
	recent     []*domain.Booking
	equipment  []domain.BookingEquipment
	cancelled  []uuid.UUID
	updated    map[uuid.UUID]domain.BookingStatus
	lastStatus *domain.BookingStatus
	lastLimit  int
}

func newStubRepo() *stubRepo {
	return &stubRepo{
		byID:    make(map[uuid.UUID]*domain.Booking),
		updated: make(map[uuid.UUID]domain.BookingStatus),
	}
}

func (s *stubRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Booking, error) {
	booking, ok := s.byID[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return booking, nil
}

func (s *stubRepo) GetEquipmentByBookingID(_ context.Context, _ uuid.UUID) ([]domain.BookingEquipment, error) {
	return s.equipment, nil
}

func (s *stubRepo) GetByUserID(_ context.Context, _ int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	s.lastStatus = status
	return s.byUser, nil
}

func (s *stubRepo) GetRecent(_ context.Context, limit int) ([]*domain.Booking, error) {
	s.lastLimit = limit
	return s.recent, nil
}

func (s *stubRepo) UpdateStatus(_ context.Context, id uuid.UUID, status domain.BookingStatus) error {
	if _, ok := s.byID[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	s.updated[id] = status
	return nil
}

func (s *stubRepo) Cancel(_ context.Context, id uuid.UUID) error {
	if _, ok := s.byID[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	s.cancelled = append(s.cancelled, id)
	return nil
}

type stubEvents struct {
	cancelled []*domain.Booking
}

func (s *stubEvents) BookingCancelled(_ context.Context, booking *domain.Booking) error {
	s.cancelled = append(s.cancelled, booking)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func booking(userID int64, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:          uuid.New(),
		UserID:      userID,
		CourtID:     uuid.New(),
		BookingDate: time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC),
		StartTime:   "10:00",
		EndTime:     "12:00",
		Status:      status,
		TotalPrice:  5800,
	}
}

func TestGetByIDReturnsOwnBooking(t *testing.T) {
	repo := newStubRepo()
	b := booking(42, domain.StatusConfirmed)
	repo.byID[b.ID] = b

	svc := NewService(repo, &stubEvents{}, nopLogger{})
	resp, err := svc.GetByID(context.Background(), b.ID, 42)
	require.NoError(t, err)
	assert.Equal(t, b.ID, resp.ID)
	assert.Equal(t, int64(5800), resp.TotalPrice)
	assert.Equal(t, "$58.00", resp.TotalFormatted)
}

func TestGetByIDIncludesEquipmentLines(t *testing.T) {
	repo := newStubRepo()
	b := booking(42, domain.StatusConfirmed)
	repo.byID[b.ID] = b
	racketID := uuid.New()
	repo.equipment = []domain.BookingEquipment{
		{ID: uuid.New(), BookingID: b.ID, EquipmentID: racketID, Quantity: 2, PriceAtBooking: 500},
	}

	svc := NewService(repo, &stubEvents{}, nopLogger{})
	resp, err := svc.GetByID(context.Background(), b.ID, 42)
	require.NoError(t, err)
	require.Len(t, resp.Equipment, 1)
	assert.Equal(t, racketID, resp.Equipment[0].EquipmentID)
	assert.Equal(t, 2, resp.Equipment[0].Quantity)
	assert.Equal(t, int64(500), resp.Equipment[0].PriceAtBooking)
}

func TestGetByIDDeniesForeignBooking(t *testing.T) {
	repo := newStubRepo()
	b := booking(42, domain.StatusConfirmed)
	repo.byID[b.ID] = b

	svc := NewService(repo, &stubEvents{}, nopLogger{})
	_, err := svc.GetByID(context.Background(), b.ID, 99)
	require.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetByIDNotFound(t *testing.T) {
	svc := NewService(newStubRepo(), &stubEvents{}, nopLogger{})
	_, err := svc.GetByID(context.Background(), uuid.New(), 42)
	require.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetUserBookingsPassesStatusFilter(t *testing.T) {
	repo := newStubRepo()
	repo.byUser = []*domain.Booking{booking(42, domain.StatusConfirmed)}

	svc := NewService(repo, &stubEvents{}, nopLogger{})
	resp, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
		UserID: 42,
		Status: ptr.Ptr("confirmed"),
	})
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 1)
	require.NotNil(t, repo.lastStatus)
	assert.Equal(t, domain.StatusConfirmed, *repo.lastStatus)
}

func TestGetUserBookingsRejectsUnknownStatus(t *testing.T) {
	svc := NewService(newStubRepo(), &stubEvents{}, nopLogger{})
	_, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
		UserID: 42,
		Status: ptr.Ptr("archived"),
	})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetRecentClampsLimit(t *testing.T) {
	repo := newStubRepo()
	svc := NewService(repo, &stubEvents{}, nopLogger{})

	_, err := svc.GetRecent(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultRecentBookings, repo.lastLimit)

	_, err = svc.GetRecent(context.Background(), 100000)
	require.NoError(t, err)
	assert.Equal(t, domain.MaxRecentBookingsLimit, repo.lastLimit)
}

func TestCancelOwnPendingBooking(t *testing.T) {
	repo := newStubRepo()
	events := &stubEvents{}
	b := booking(42, domain.StatusPending)
	repo.byID[b.ID] = b

	svc := NewService(repo, events, nopLogger{})
	err := svc.Cancel(context.Background(), b.ID, &models.CancelBookingRequest{UserID: 42})
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{b.ID}, repo.cancelled)
	require.Len(t, events.cancelled, 1)
	assert.Equal(t, domain.StatusCancelled, events.cancelled[0].Status)
}

func TestCancelForeignBookingDenied(t *testing.T) {
	repo := newStubRepo()
	b := booking(42, domain.StatusPending)
	repo.byID[b.ID] = b

	svc := NewService(repo, &stubEvents{}, nopLogger{})
	err := svc.Cancel(context.Background(), b.ID, &models.CancelBookingRequest{UserID: 99})
	require.ErrorIs(t, err, ErrAccessDenied)
	assert.Empty(t, repo.cancelled)
}

func TestCancelCompletedBookingRejected(t *testing.T) {
	repo := newStubRepo()
	b := booking(42, domain.StatusCompleted)
	repo.byID[b.ID] = b

	svc := NewService(repo, &stubEvents{}, nopLogger{})
	err := svc.Cancel(context.Background(), b.ID, &models.CancelBookingRequest{UserID: 42})
	require.ErrorIs(t, err, ErrCannotCancel)
}

func TestCancelAlreadyCancelledRejected(t *testing.T) {
	repo := newStubRepo()
	b := booking(42, domain.StatusCancelled)
	repo.byID[b.ID] = b

	svc := NewService(repo, &stubEvents{}, nopLogger{})
	err := svc.Cancel(context.Background(), b.ID, &models.CancelBookingRequest{UserID: 42})
	require.ErrorIs(t, err, ErrCannotCancel)
}

func TestUpdateStatus(t *testing.T) {
	repo := newStubRepo()
	b := booking(42, domain.StatusPending)
	repo.byID[b.ID] = b

	svc := NewService(repo, &stubEvents{}, nopLogger{})
	err := svc.UpdateStatus(context.Background(), b.ID, &models.UpdateStatusRequest{Status: "confirmed"})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, repo.updated[b.ID])

	err = svc.UpdateStatus(context.Background(), b.ID, &models.UpdateStatusRequest{Status: "bogus"})
	require.ErrorIs(t, err, ErrInvalidInput)
}
