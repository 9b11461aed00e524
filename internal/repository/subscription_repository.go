package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Dhoini/Customer-microservice/internal/domain"
	"github.com/Dhoini/Customer-microservice/pkg/logger"
)

// SubscriptionRepository интерфейс для работы со связями клиент-план
type SubscriptionRepository interface {
	Create(ctx context.Context, link domain.CustomerPlan) (domain.CustomerPlan, error)
	GetByCustomerAndStatus(ctx context.Context, customerID int64, status domain.SubscriptionStatus) ([]domain.CustomerPlan, error)
	DeleteByCustomer(ctx context.Context, customerID int64) error
}

// InMemorySubscriptionRepository реализация репозитория в памяти
type InMemorySubscriptionRepository struct {
	links  map[int64]domain.CustomerPlan
	nextID int64
	mutex  sync.RWMutex
	log    *logger.Logger
}

// NewInMemorySubscriptionRepository создает новый репозиторий подписок в памяти
func NewInMemorySubscriptionRepository(log *logger.Logger) *InMemorySubscriptionRepository {
	return &InMemorySubscriptionRepository{
		links:  make(map[int64]domain.CustomerPlan),
		nextID: 1,
		log:    log,
	}
}

// Create создает новую связь клиент-план. Дубликаты допускаются:
// повторная подписка на тот же план дает отдельную запись.
func (r *InMemorySubscriptionRepository) Create(ctx context.Context, link domain.CustomerPlan) (domain.CustomerPlan, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	link.ID = r.nextID
	r.nextID++

	link.CreatedAt = time.Now()

	r.links[link.ID] = link

	return link, nil
}

// GetByCustomerAndStatus возвращает связи клиента с заданным статусом
func (r *InMemorySubscriptionRepository) GetByCustomerAndStatus(ctx context.Context, customerID int64, status domain.SubscriptionStatus) ([]domain.CustomerPlan, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	links := make([]domain.CustomerPlan, 0)
	for _, link := range r.links {
		if link.CustomerID == customerID && link.Status == status {
			links = append(links, link)
		}
	}

	sort.Slice(links, func(i, j int) bool {
		return links[i].ID < links[j].ID
	})

	return links, nil
}

// DeleteByCustomer удаляет все связи клиента
func (r *InMemorySubscriptionRepository) DeleteByCustomer(ctx context.Context, customerID int64) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	for id, link := range r.links {
		if link.CustomerID == customerID {
			delete(r.links, id)
		}
	}

	return nil
}
