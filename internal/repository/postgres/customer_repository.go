package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Dhoini/Customer-microservice/internal/domain"
	"github.com/Dhoini/Customer-microservice/internal/repository"
	"github.com/Dhoini/Customer-microservice/pkg/logger"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresCustomerRepository реализация репозитория клиентов через PostgreSQL
type PostgresCustomerRepository struct {
	db  *pgxpool.Pool
	log *logger.Logger
}

// NewPostgresCustomerRepository создает новый репозиторий клиентов через PostgreSQL
func NewPostgresCustomerRepository(db *pgxpool.Pool, log *logger.Logger) *PostgresCustomerRepository {
	return &PostgresCustomerRepository{
		db:  db,
		log: log,
	}
}

// GetAll возвращает клиентов в порядке создания с учетом skip и limit
func (r *PostgresCustomerRepository) GetAll(ctx context.Context, skip, limit int) ([]domain.Customer, error) {
	query := `
		SELECT id, name, description, email, age, created_at, updated_at
		FROM customers
		ORDER BY id
		OFFSET $1 LIMIT $2
	`

	rows, err := r.db.Query(ctx, query, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query customers: %w", err)
	}
	defer rows.Close()

	customers := make([]domain.Customer, 0)
	for rows.Next() {
		var customer domain.Customer

		err := rows.Scan(
			&customer.ID,
			&customer.Name,
			&customer.Description,
			&customer.Email,
			&customer.Age,
			&customer.CreatedAt,
			&customer.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan customer: %w", err)
		}

		customers = append(customers, customer)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating customers: %w", err)
	}

	return customers, nil
}

// GetByID возвращает клиента по ID
func (r *PostgresCustomerRepository) GetByID(ctx context.Context, id int64) (domain.Customer, error) {
	query := `
		SELECT id, name, description, email, age, created_at, updated_at
		FROM customers
		WHERE id = $1
	`

	var customer domain.Customer

	err := r.db.QueryRow(ctx, query, id).Scan(
		&customer.ID,
		&customer.Name,
		&customer.Description,
		&customer.Email,
		&customer.Age,
		&customer.CreatedAt,
		&customer.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Customer{}, repository.ErrNotFound
		}
		return domain.Customer{}, fmt.Errorf("failed to get customer: %w", err)
	}

	return customer, nil
}

// Create создает нового клиента, идентификатор присваивает база
func (r *PostgresCustomerRepository) Create(ctx context.Context, customer domain.Customer) (domain.Customer, error) {
	query := `
		INSERT INTO customers (name, description, email, age)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(
		ctx,
		query,
		customer.Name,
		customer.Description,
		customer.Email,
		customer.Age,
	).Scan(&customer.ID, &customer.CreatedAt, &customer.UpdatedAt)

	if err != nil {
		return domain.Customer{}, fmt.Errorf("failed to create customer: %w", err)
	}

	return customer, nil
}

// Update обновляет существующего клиента
func (r *PostgresCustomerRepository) Update(ctx context.Context, customer domain.Customer) error {
	query := `
		UPDATE customers
		SET name = $1, description = $2, email = $3, age = $4, updated_at = now()
		WHERE id = $5
	`

	result, err := r.db.Exec(
		ctx,
		query,
		customer.Name,
		customer.Description,
		customer.Email,
		customer.Age,
		customer.ID,
	)

	if err != nil {
		return fmt.Errorf("failed to update customer: %w", err)
	}

	if result.RowsAffected() == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// Delete удаляет клиента
func (r *PostgresCustomerRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM customers WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete customer: %w", err)
	}

	if result.RowsAffected() == 0 {
		return repository.ErrNotFound
	}

	return nil
}
