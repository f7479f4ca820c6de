package pricingrules

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	ruleRepo "github.com/courtside/booking-service/internal/infra/storage/pricingrule"
	"github.com/courtside/booking-service/internal/service/pricingrules/models"
)

// Service сервис управления правилами ценообразования (админка)
type Service struct {
	ruleRepo RuleRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса правил
func NewService(ruleRepo RuleRepository, logger Logger) *Service {
	return &Service{
		ruleRepo: ruleRepo,
		logger:   logger,
	}
}

// List получает все правила, включая отключенные
func (s *Service) List(ctx context.Context) (*models.RuleListResponse, error) {
	s.logger.Info("List: fetching pricing rules")

	rules, err := s.ruleRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d rules", len(rules))
	return models.FromDomainRuleList(rules), nil
}

// Create создает новое правило ценообразования
func (s *Service) Create(ctx context.Context, req *models.CreateRuleRequest) (*models.RuleResponse, error) {
	s.logger.Info("Create: creating pricing rule name=%q type=%s", req.Name, req.RuleType)

	if err := req.Validate(); err != nil {
		s.logger.Warn("Create: invalid rule request: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	rule, err := req.ToDomainRule()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.ruleRepo.Create(ctx, rule)
	if err != nil {
		s.logger.Error("Create: repository error for rule name=%q: %v", req.Name, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created rule id=%s", created.ID)
	return models.FromDomainRule(created), nil
}

// Update применяет частичное обновление правила
// Используется и для включения/отключения через поле isActive
func (s *Service) Update(ctx context.Context, id uuid.UUID, req *models.UpdateRuleRequest) (*models.RuleResponse, error) {
	s.logger.Info("Update: updating pricing rule id=%s", id)

	rule, err := s.ruleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ruleRepo.ErrRuleNotFound) {
			s.logger.Warn("Update: rule id=%s not found", id)
			return nil, ErrRuleNotFound
		}
		s.logger.Error("Update: repository error for rule id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	if err := req.ApplyTo(rule); err != nil {
		s.logger.Warn("Update: invalid update for rule id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	updated, err := s.ruleRepo.Update(ctx, rule)
	if err != nil {
		if errors.Is(err, ruleRepo.ErrRuleNotFound) {
			return nil, ErrRuleNotFound
		}
		s.logger.Error("Update: repository error for rule id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated rule id=%s", id)
	return models.FromDomainRule(updated), nil
}
