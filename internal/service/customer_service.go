package service

import (
	"context"
	"errors"

	"github.com/Dhoini/Customer-microservice/internal/domain"
	"github.com/Dhoini/Customer-microservice/internal/events"
	"github.com/Dhoini/Customer-microservice/internal/metrics"
	"github.com/Dhoini/Customer-microservice/internal/repository"
	"github.com/Dhoini/Customer-microservice/pkg/logger"
	"github.com/go-playground/validator/v10"
)

// CustomerService интерфейс сервиса для работы с клиентами
type CustomerService interface {
	GetAll(ctx context.Context, skip, limit int) ([]domain.Customer, error)
	GetByID(ctx context.Context, id int64) (domain.Customer, error)
	Create(ctx context.Context, req domain.CustomerCreate) (domain.Customer, error)
	Update(ctx context.Context, id int64, req domain.CustomerUpdate) (domain.Customer, error)
	Delete(ctx context.Context, id int64) error
}

type customerService struct {
	repo     repository.CustomerRepository
	txRepo   repository.TransactionRepository
	subRepo  repository.SubscriptionRepository
	producer events.Producer
	metrics  metrics.EntityMetrics
	validate *validator.Validate
	log      *logger.Logger
}

// NewCustomerService создает новый сервис для работы с клиентами
func NewCustomerService(
	repo repository.CustomerRepository,
	txRepo repository.TransactionRepository,
	subRepo repository.SubscriptionRepository,
	producer events.Producer,
	m metrics.EntityMetrics,
	log *logger.Logger,
) CustomerService {
	return &customerService{
		repo:     repo,
		txRepo:   txRepo,
		subRepo:  subRepo,
		producer: producer,
		metrics:  m,
		validate: validator.New(),
		log:      log,
	}
}

func (s *customerService) GetAll(ctx context.Context, skip, limit int) ([]domain.Customer, error) {
	s.log.Debug("Getting customers: skip=%d limit=%d", skip, limit)
	return s.repo.GetAll(ctx, skip, limit)
}

func (s *customerService) GetByID(ctx context.Context, id int64) (domain.Customer, error) {
	s.log.Debug("Getting customer by ID: %d", id)

	customer, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.Customer{}, domain.NewNotFoundError("Customer", id)
		}
		return domain.Customer{}, err
	}

	return customer, nil
}

func (s *customerService) Create(ctx context.Context, req domain.CustomerCreate) (domain.Customer, error) {
	s.log.Debug("Creating customer with email: %s", req.Email)

	customer := domain.Customer{
		Name:        req.Name,
		Description: req.Description,
		Email:       req.Email,
		Age:         req.Age,
	}

	created, err := s.repo.Create(ctx, customer)
	if err != nil {
		return domain.Customer{}, err
	}

	s.metrics.IncCustomerCreated()

	if err := s.producer.PublishCustomerCreated(ctx, created); err != nil {
		s.log.Warn("Failed to publish customer.created event: %v", err)
	}

	return created, nil
}

func (s *customerService) Update(ctx context.Context, id int64, req domain.CustomerUpdate) (domain.Customer, error) {
	s.log.Debug("Updating customer with ID: %d", id)

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.Customer{}, domain.NewNotFoundError("Customer", id)
		}
		return domain.Customer{}, err
	}

	merged, err := s.applyUpdate(existing, req)
	if err != nil {
		return domain.Customer{}, err
	}

	// Пустой запрос ничего не меняет
	if req.IsEmpty() {
		return existing, nil
	}

	if err := s.repo.Update(ctx, merged); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.Customer{}, domain.NewNotFoundError("Customer", id)
		}
		return domain.Customer{}, err
	}

	return s.repo.GetByID(ctx, id)
}

// applyUpdate накладывает переданные поля запроса на существующую
// запись. Отсутствующее поле не трогает запись; явный null очищает
// description и недопустим для обязательных полей.
func (s *customerService) applyUpdate(customer domain.Customer, req domain.CustomerUpdate) (domain.Customer, error) {
	var ve domain.ValidationErrors

	if req.Name.IsSet() {
		name, ok := req.Name.Get()
		if !ok || name == "" {
			ve.Add("name", "must be a non-empty string")
		} else {
			customer.Name = name
		}
	}

	if req.Description.IsSet() {
		if desc, ok := req.Description.Get(); ok {
			customer.Description = &desc
		} else {
			customer.Description = nil
		}
	}

	if req.Email.IsSet() {
		email, ok := req.Email.Get()
		if !ok || s.validate.Var(email, "required,email") != nil {
			ve.Add("email", "must be a valid email address")
		} else {
			customer.Email = email
		}
	}

	if req.Age.IsSet() {
		age, ok := req.Age.Get()
		if !ok || age <= 0 {
			ve.Add("age", "must be a positive integer")
		} else {
			customer.Age = age
		}
	}

	if ve.HasErrors() {
		return domain.Customer{}, ve
	}

	return customer, nil
}

func (s *customerService) Delete(ctx context.Context, id int64) error {
	s.log.Debug("Deleting customer with ID: %d", id)

	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.NewNotFoundError("Customer", id)
		}
		return err
	}

	// Каскадное удаление: сначала зависимые записи, потом сам клиент
	if err := s.txRepo.DeleteByCustomer(ctx, id); err != nil {
		return err
	}

	if err := s.subRepo.DeleteByCustomer(ctx, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.NewNotFoundError("Customer", id)
		}
		return err
	}

	s.metrics.IncCustomerDeleted()

	if err := s.producer.PublishCustomerDeleted(ctx, id); err != nil {
		s.log.Warn("Failed to publish customer.deleted event: %v", err)
	}

	return nil
}
