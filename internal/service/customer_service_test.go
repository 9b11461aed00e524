package service

import (
	"context"
	"testing"

	"github.com/Dhoini/Customer-microservice/internal/domain"
	"github.com/Dhoini/Customer-microservice/internal/events"
	"github.com/Dhoini/Customer-microservice/internal/metrics"
	"github.com/Dhoini/Customer-microservice/internal/repository"
	"github.com/Dhoini/Customer-microservice/pkg/logger"
	"github.com/Dhoini/Customer-microservice/pkg/optional"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	customerRepo *repository.InMemoryCustomerRepository
	txRepo       *repository.InMemoryTransactionRepository
	planRepo     *repository.InMemoryPlanRepository
	subRepo      *repository.InMemorySubscriptionRepository

	customers     CustomerService
	transactions  TransactionService
	plans         PlanService
	subscriptions SubscriptionService
	invoices      InvoiceService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	log := logger.New(logger.ERROR)
	m := metrics.NewEntityMetrics(prometheus.NewRegistry(), log)
	producer := events.NoopProducer{}

	customerRepo := repository.NewInMemoryCustomerRepository(log)
	txRepo := repository.NewInMemoryTransactionRepository(log)
	planRepo := repository.NewInMemoryPlanRepository(log)
	subRepo := repository.NewInMemorySubscriptionRepository(log)

	return &testEnv{
		customerRepo:  customerRepo,
		txRepo:        txRepo,
		planRepo:      planRepo,
		subRepo:       subRepo,
		customers:     NewCustomerService(customerRepo, txRepo, subRepo, producer, m, log),
		transactions:  NewTransactionService(txRepo, customerRepo, producer, m, log),
		plans:         NewPlanService(planRepo, m, log),
		subscriptions: NewSubscriptionService(subRepo, customerRepo, planRepo, producer, m, log),
		invoices:      NewInvoiceService(customerRepo, txRepo, log),
	}
}

func (e *testEnv) createCustomer(t *testing.T) domain.Customer {
	t.Helper()

	desc := "A test customer"
	customer, err := e.customers.Create(context.Background(), domain.CustomerCreate{
		Name:        "John Doe",
		Description: &desc,
		Email:       "john@example.com",
		Age:         30,
	})
	require.NoError(t, err)
	return customer
}

func TestCustomerCreate(t *testing.T) {
	env := newTestEnv(t)

	customer := env.createCustomer(t)

	assert.Equal(t, int64(1), customer.ID)
	assert.Equal(t, "John Doe", customer.Name)
	assert.Equal(t, "john@example.com", customer.Email)
	require.NotNil(t, customer.Description)
	assert.Equal(t, "A test customer", *customer.Description)
}

func TestCustomerGetByIDNotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.customers.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.EqualError(t, err, "Customer with ID 42 not found")
}

func TestCustomerUpdateSingleField(t *testing.T) {
	env := newTestEnv(t)
	customer := env.createCustomer(t)

	updated, err := env.customers.Update(context.Background(), customer.ID, domain.CustomerUpdate{
		Name: optional.Of("Jane Doe"),
	})
	require.NoError(t, err)

	// Меняется только переданное поле
	assert.Equal(t, "Jane Doe", updated.Name)
	assert.Equal(t, customer.Email, updated.Email)
	assert.Equal(t, customer.Age, updated.Age)
	require.NotNil(t, updated.Description)
	assert.Equal(t, *customer.Description, *updated.Description)
}

func TestCustomerUpdateEmptyRequestIsNoop(t *testing.T) {
	env := newTestEnv(t)
	customer := env.createCustomer(t)

	updated, err := env.customers.Update(context.Background(), customer.ID, domain.CustomerUpdate{})
	require.NoError(t, err)

	assert.Equal(t, customer.Name, updated.Name)
	assert.Equal(t, customer.UpdatedAt, updated.UpdatedAt)
}

func TestCustomerUpdateNullClearsDescription(t *testing.T) {
	env := newTestEnv(t)
	customer := env.createCustomer(t)
	require.NotNil(t, customer.Description)

	updated, err := env.customers.Update(context.Background(), customer.ID, domain.CustomerUpdate{
		Description: optional.Null[string](),
	})
	require.NoError(t, err)
	assert.Nil(t, updated.Description)
}

func TestCustomerUpdateNullRequiredFieldRejected(t *testing.T) {
	env := newTestEnv(t)
	customer := env.createCustomer(t)

	_, err := env.customers.Update(context.Background(), customer.ID, domain.CustomerUpdate{
		Name: optional.Null[string](),
	})
	require.Error(t, err)

	var ve domain.ValidationErrors
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "name", ve[0].Field)

	// Запись не изменилась
	got, err := env.customers.GetByID(context.Background(), customer.ID)
	require.NoError(t, err)
	assert.Equal(t, "John Doe", got.Name)
}

func TestCustomerUpdateValidation(t *testing.T) {
	env := newTestEnv(t)
	customer := env.createCustomer(t)
	ctx := context.Background()

	_, err := env.customers.Update(ctx, customer.ID, domain.CustomerUpdate{
		Email: optional.Of("not-an-email"),
	})
	var ve domain.ValidationErrors
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "email", ve[0].Field)

	_, err = env.customers.Update(ctx, customer.ID, domain.CustomerUpdate{
		Age: optional.Of(-5),
	})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "age", ve[0].Field)

	_, err = env.customers.Update(ctx, customer.ID, domain.CustomerUpdate{
		Name: optional.Of(""),
	})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "name", ve[0].Field)
}

func TestCustomerUpdateNotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.customers.Update(context.Background(), 42, domain.CustomerUpdate{
		Name: optional.Of("Ghost"),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCustomerDeleteCascades(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	customer := env.createCustomer(t)

	_, err := env.transactions.Create(ctx, domain.TransactionCreate{
		CustomerID:  customer.ID,
		Amount:      decimal.NewFromInt(100),
		Description: "Monthly payment",
	})
	require.NoError(t, err)

	plan, err := env.plans.Create(ctx, domain.PlanCreate{
		Name:  "Pro",
		Price: decimal.RequireFromString("9.99"),
	})
	require.NoError(t, err)

	_, err = env.subscriptions.Subscribe(ctx, customer.ID, plan.ID, domain.SubscriptionStatusActive)
	require.NoError(t, err)

	require.NoError(t, env.customers.Delete(ctx, customer.ID))

	_, err = env.customers.GetByID(ctx, customer.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Операции и подписки клиента удалены вместе с ним
	transactions, err := env.txRepo.GetByCustomer(ctx, customer.ID)
	require.NoError(t, err)
	assert.Empty(t, transactions)

	links, err := env.subRepo.GetByCustomerAndStatus(ctx, customer.ID, domain.SubscriptionStatusActive)
	require.NoError(t, err)
	assert.Empty(t, links)
}

func TestCustomerDeleteNotFound(t *testing.T) {
	env := newTestEnv(t)

	err := env.customers.Delete(context.Background(), 42)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
