package service

import (
	"context"

	"github.com/Dhoini/Customer-microservice/internal/domain"
	"github.com/Dhoini/Customer-microservice/internal/metrics"
	"github.com/Dhoini/Customer-microservice/internal/repository"
	"github.com/Dhoini/Customer-microservice/pkg/logger"
)

// PlanService интерфейс сервиса для работы с тарифными планами
type PlanService interface {
	GetAll(ctx context.Context) ([]domain.Plan, error)
	Create(ctx context.Context, req domain.PlanCreate) (domain.Plan, error)
}

type planService struct {
	repo    repository.PlanRepository
	metrics metrics.EntityMetrics
	log     *logger.Logger
}

// NewPlanService создает новый сервис для работы с планами
func NewPlanService(repo repository.PlanRepository, m metrics.EntityMetrics, log *logger.Logger) PlanService {
	return &planService{
		repo:    repo,
		metrics: m,
		log:     log,
	}
}

func (s *planService) GetAll(ctx context.Context) ([]domain.Plan, error) {
	s.log.Debug("Getting all plans")
	return s.repo.GetAll(ctx)
}

func (s *planService) Create(ctx context.Context, req domain.PlanCreate) (domain.Plan, error) {
	s.log.Debug("Creating plan: %s", req.Name)

	plan := domain.Plan{
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
	}

	created, err := s.repo.Create(ctx, plan)
	if err != nil {
		return domain.Plan{}, err
	}

	s.metrics.IncPlanCreated()

	return created, nil
}
