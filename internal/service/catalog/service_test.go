package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtside/booking-service/internal/domain"
)

type stubCatalogRepo struct {
	courts    []*domain.Court
	equipment []*domain.Equipment
	err       error

	lastActiveOnly bool
}

func (s *stubCatalogRepo) ListCourts(_ context.Context, activeOnly bool) ([]*domain.Court, error) {
	s.lastActiveOnly = activeOnly
	if s.err != nil {
		return nil, s.err
	}
	return s.courts, nil
}

func (s *stubCatalogRepo) ListEquipment(_ context.Context, activeOnly bool) ([]*domain.Equipment, error) {
	s.lastActiveOnly = activeOnly
	if s.err != nil {
		return nil, s.err
	}
	return s.equipment, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestListCourts(t *testing.T) {
	repo := &stubCatalogRepo{
		courts: []*domain.Court{
			{ID: uuid.New(), Name: "Center Court", CourtType: domain.CourtTypeIndoor, IsActive: true},
			{ID: uuid.New(), Name: "Court 2", CourtType: domain.CourtTypeOutdoor, IsActive: true},
		},
	}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.ListCourts(context.Background(), false)
	require.NoError(t, err)
	require.Len(t, resp.Courts, 2)
	assert.Equal(t, "Center Court", resp.Courts[0].Name)
	assert.Equal(t, "indoor", resp.Courts[0].CourtType)
	assert.True(t, repo.lastActiveOnly, "active-only filter expected by default")
}

func TestListCourtsIncludeInactive(t *testing.T) {
	repo := &stubCatalogRepo{}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.ListCourts(context.Background(), true)
	require.NoError(t, err)
	assert.Empty(t, resp.Courts)
	assert.False(t, repo.lastActiveOnly)
}

func TestListEquipment(t *testing.T) {
	repo := &stubCatalogRepo{
		equipment: []*domain.Equipment{
			{ID: uuid.New(), Name: "Tennis racket", EquipmentType: domain.EquipmentTypeRacket,
				RentalPrice: 500, AvailableQuantity: 10, IsActive: true},
		},
	}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.ListEquipment(context.Background(), false)
	require.NoError(t, err)
	require.Len(t, resp.Equipment, 1)
	assert.Equal(t, int64(500), resp.Equipment[0].RentalPrice)
	assert.Equal(t, 10, resp.Equipment[0].AvailableQuantity)
}

func TestListCourtsRepositoryError(t *testing.T) {
	repo := &stubCatalogRepo{err: errors.New("connection refused")}
	svc := NewService(repo, nopLogger{})

	_, err := svc.ListCourts(context.Background(), false)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternal)
}
