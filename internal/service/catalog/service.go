package catalog

import (
	"context"
	"fmt"

	"github.com/courtside/booking-service/internal/service/catalog/models"
)

// Service сервис каталога: корты и инвентарь для мастера бронирования
type Service struct {
	catalogRepo CatalogRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(catalogRepo CatalogRepository, logger Logger) *Service {
	return &Service{
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

// ListCourts получает список кортов
// Неактивные корты видны только при includeInactive
func (s *Service) ListCourts(ctx context.Context, includeInactive bool) (*models.CourtListResponse, error) {
	s.logger.Info("ListCourts: fetching courts, includeInactive=%v", includeInactive)

	courts, err := s.catalogRepo.ListCourts(ctx, !includeInactive)
	if err != nil {
		s.logger.Error("ListCourts: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListCourts - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListCourts: successfully fetched %d courts", len(courts))
	return models.FromDomainCourtList(courts), nil
}

// ListEquipment получает каталог инвентаря
func (s *Service) ListEquipment(ctx context.Context, includeInactive bool) (*models.EquipmentListResponse, error) {
	s.logger.Info("ListEquipment: fetching equipment, includeInactive=%v", includeInactive)

	equipment, err := s.catalogRepo.ListEquipment(ctx, !includeInactive)
	if err != nil {
		s.logger.Error("ListEquipment: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListEquipment - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListEquipment: successfully fetched %d items", len(equipment))
	return models.FromDomainEquipmentList(equipment), nil
}
