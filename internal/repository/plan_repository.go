package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Dhoini/Customer-microservice/internal/domain"
	"github.com/Dhoini/Customer-microservice/pkg/logger"
)

// PlanRepository интерфейс для работы с тарифными планами
type PlanRepository interface {
	GetAll(ctx context.Context) ([]domain.Plan, error)
	GetByID(ctx context.Context, id int64) (domain.Plan, error)
	Create(ctx context.Context, plan domain.Plan) (domain.Plan, error)
}

// InMemoryPlanRepository реализация репозитория в памяти
type InMemoryPlanRepository struct {
	plans  map[int64]domain.Plan
	nextID int64
	mutex  sync.RWMutex
	log    *logger.Logger
}

// NewInMemoryPlanRepository создает новый репозиторий планов в памяти
func NewInMemoryPlanRepository(log *logger.Logger) *InMemoryPlanRepository {
	return &InMemoryPlanRepository{
		plans:  make(map[int64]domain.Plan),
		nextID: 1,
		log:    log,
	}
}

// GetAll возвращает все планы в порядке создания
func (r *InMemoryPlanRepository) GetAll(ctx context.Context) ([]domain.Plan, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	plans := make([]domain.Plan, 0, len(r.plans))
	for _, plan := range r.plans {
		plans = append(plans, plan)
	}

	sort.Slice(plans, func(i, j int) bool {
		return plans[i].ID < plans[j].ID
	})

	return plans, nil
}

// GetByID возвращает план по ID
func (r *InMemoryPlanRepository) GetByID(ctx context.Context, id int64) (domain.Plan, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	plan, exists := r.plans[id]
	if !exists {
		return domain.Plan{}, ErrNotFound
	}

	return plan, nil
}

// Create создает новый план и присваивает ему идентификатор
func (r *InMemoryPlanRepository) Create(ctx context.Context, plan domain.Plan) (domain.Plan, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	plan.ID = r.nextID
	r.nextID++

	plan.CreatedAt = time.Now()
	plan.UpdatedAt = time.Now()

	r.plans[plan.ID] = plan

	return plan, nil
}
