package pricingrules

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtside/booking-service/internal/domain"
	ruleRepo "github.com/courtside/booking-service/internal/infra/storage/pricingrule"
	"github.com/courtside/booking-service/internal/service/pricingrules/models"
	"github.com/courtside/booking-service/pkg/ptr"
)

type stubRuleRepo struct {
	rules   []*domain.PricingRule
	created *domain.PricingRule
	updated *domain.PricingRule
}

func (s *stubRuleRepo) List(_ context.Context) ([]*domain.PricingRule, error) {
	return s.rules, nil
}

func (s *stubRuleRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.PricingRule, error) {
	for _, rule := range s.rules {
		if rule.ID == id {
			return rule, nil
		}
	}
	return nil, ruleRepo.ErrRuleNotFound
}

func (s *stubRuleRepo) Create(_ context.Context, rule *domain.PricingRule) (*domain.PricingRule, error) {
	rule.ID = uuid.New()
	s.created = rule
	return rule, nil
}

func (s *stubRuleRepo) Update(_ context.Context, rule *domain.PricingRule) (*domain.PricingRule, error) {
	s.updated = rule
	return rule, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestCreateRule(t *testing.T) {
	repo := &stubRuleRepo{}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Create(context.Background(), &models.CreateRuleRequest{
		Name:       "Peak hours",
		RuleType:   "time_based",
		Conditions: map[string]any{"start_hour": 18, "end_hour": 21},
		Multiplier: 1.5,
		Priority:   10,
		IsActive:   true,
	})
	require.NoError(t, err)
	require.NotNil(t, repo.created)
	assert.Equal(t, domain.RuleTypeTimeBased, repo.created.RuleType)
	// Описание не передано и остается пустым вплоть до записи в БД
	assert.Nil(t, repo.created.Description)
	assert.Equal(t, "Peak hours", resp.Name)
	assert.NotEqual(t, uuid.Nil, resp.ID)
}

func TestCreateRejectsInvalidRule(t *testing.T) {
	svc := NewService(&stubRuleRepo{}, nopLogger{})

	cases := []struct {
		name string
		req  models.CreateRuleRequest
	}{
		{"empty name", models.CreateRuleRequest{RuleType: "custom", Multiplier: 1}},
		{"unknown type", models.CreateRuleRequest{Name: "x", RuleType: "seasonal", Multiplier: 1}},
		{"zero multiplier", models.CreateRuleRequest{Name: "x", RuleType: "custom", Multiplier: 0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), &tc.req)
			require.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestUpdateRulePartial(t *testing.T) {
	rule := &domain.PricingRule{
		ID:         uuid.New(),
		Name:       "Weekend surcharge",
		RuleType:   domain.RuleTypeDayBased,
		Conditions: map[string]any{"days": []any{0, 6}},
		Multiplier: 1,
		FlatFee:    500,
		Priority:   5,
		IsActive:   true,
	}
	repo := &stubRuleRepo{rules: []*domain.PricingRule{rule}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Update(context.Background(), rule.ID, &models.UpdateRuleRequest{
		FlatFee:  ptr.Ptr(int64(700)),
		IsActive: ptr.Ptr(false),
	})
	require.NoError(t, err)
	require.NotNil(t, repo.updated)
	assert.Equal(t, domain.Cents(700), repo.updated.FlatFee)
	assert.False(t, repo.updated.IsActive)
	// Не указанные поля не изменяются
	assert.Equal(t, "Weekend surcharge", resp.Name)
	assert.Equal(t, 5, resp.Priority)
}

func TestUpdateUnknownRule(t *testing.T) {
	svc := NewService(&stubRuleRepo{}, nopLogger{})

	_, err := svc.Update(context.Background(), uuid.New(), &models.UpdateRuleRequest{
		IsActive: ptr.Ptr(false),
	})
	require.ErrorIs(t, err, ErrRuleNotFound)
}

func TestUpdateRejectsInvalidFields(t *testing.T) {
	rule := &domain.PricingRule{
		ID:         uuid.New(),
		Name:       "Weekend surcharge",
		RuleType:   domain.RuleTypeDayBased,
		Multiplier: 1,
		IsActive:   true,
	}
	svc := NewService(&stubRuleRepo{rules: []*domain.PricingRule{rule}}, nopLogger{})

	_, err := svc.Update(context.Background(), rule.ID, &models.UpdateRuleRequest{
		Multiplier: ptr.Ptr(-0.5),
	})
	require.ErrorIs(t, err, ErrInvalidInput)
}
