package service

import (
	"context"
	"errors"

	"github.com/Dhoini/Customer-microservice/internal/domain"
	"github.com/Dhoini/Customer-microservice/internal/events"
	"github.com/Dhoini/Customer-microservice/internal/metrics"
	"github.com/Dhoini/Customer-microservice/internal/repository"
	"github.com/Dhoini/Customer-microservice/pkg/logger"
)

// SubscriptionService интерфейс сервиса для связей клиент-план
type SubscriptionService interface {
	Subscribe(ctx context.Context, customerID, planID int64, status domain.SubscriptionStatus) (domain.CustomerPlan, error)
	ListCustomerPlans(ctx context.Context, customerID int64, status domain.SubscriptionStatus) ([]domain.Plan, error)
}

type subscriptionService struct {
	repo         repository.SubscriptionRepository
	customerRepo repository.CustomerRepository
	planRepo     repository.PlanRepository
	producer     events.Producer
	metrics      metrics.EntityMetrics
	log          *logger.Logger
}

// NewSubscriptionService создает новый сервис подписок
func NewSubscriptionService(
	repo repository.SubscriptionRepository,
	customerRepo repository.CustomerRepository,
	planRepo repository.PlanRepository,
	producer events.Producer,
	m metrics.EntityMetrics,
	log *logger.Logger,
) SubscriptionService {
	return &subscriptionService{
		repo:         repo,
		customerRepo: customerRepo,
		planRepo:     planRepo,
		producer:     producer,
		metrics:      m,
		log:          log,
	}
}

func (s *subscriptionService) Subscribe(ctx context.Context, customerID, planID int64, status domain.SubscriptionStatus) (domain.CustomerPlan, error) {
	s.log.Debug("Subscribing customer %d to plan %d with status %s", customerID, planID, status)

	// Обе сущности должны существовать до создания связи
	if _, err := s.customerRepo.GetByID(ctx, customerID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.CustomerPlan{}, domain.NewNotFoundError("Customer", customerID)
		}
		return domain.CustomerPlan{}, err
	}

	if _, err := s.planRepo.GetByID(ctx, planID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.CustomerPlan{}, domain.NewNotFoundError("Plan", planID)
		}
		return domain.CustomerPlan{}, err
	}

	link := domain.CustomerPlan{
		CustomerID: customerID,
		PlanID:     planID,
		Status:     status,
	}

	created, err := s.repo.Create(ctx, link)
	if err != nil {
		return domain.CustomerPlan{}, err
	}

	s.metrics.IncSubscriptionCreated(string(created.Status))

	if err := s.producer.PublishSubscriptionCreated(ctx, created); err != nil {
		s.log.Warn("Failed to publish subscription.created event: %v", err)
	}

	return created, nil
}

func (s *subscriptionService) ListCustomerPlans(ctx context.Context, customerID int64, status domain.SubscriptionStatus) ([]domain.Plan, error) {
	s.log.Debug("Listing plans of customer %d with status %s", customerID, status)

	if _, err := s.customerRepo.GetByID(ctx, customerID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.NewNotFoundError("Customer", customerID)
		}
		return nil, err
	}

	links, err := s.repo.GetByCustomerAndStatus(ctx, customerID, status)
	if err != nil {
		return nil, err
	}

	plans := make([]domain.Plan, 0, len(links))
	for _, link := range links {
		plan, err := s.planRepo.GetByID(ctx, link.PlanID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				// Связь на удаленный план пропускаем
				continue
			}
			return nil, err
		}
		plans = append(plans, plan)
	}

	return plans, nil
}
