package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Dhoini/Customer-microservice/internal/domain"
	"github.com/Dhoini/Customer-microservice/internal/repository"
	"github.com/Dhoini/Customer-microservice/pkg/logger"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresTransactionRepository реализация репозитория операций через PostgreSQL
type PostgresTransactionRepository struct {
	db  *pgxpool.Pool
	log *logger.Logger
}

// NewPostgresTransactionRepository создает новый репозиторий операций через PostgreSQL
func NewPostgresTransactionRepository(db *pgxpool.Pool, log *logger.Logger) *PostgresTransactionRepository {
	return &PostgresTransactionRepository{
		db:  db,
		log: log,
	}
}

// GetAll возвращает операции в порядке создания с учетом skip и limit
func (r *PostgresTransactionRepository) GetAll(ctx context.Context, skip, limit int) ([]domain.Transaction, error) {
	query := `
		SELECT id, customer_id, amount, description, created_at
		FROM transactions
		ORDER BY id
		OFFSET $1 LIMIT $2
	`

	rows, err := r.db.Query(ctx, query, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	transactions := make([]domain.Transaction, 0)
	for rows.Next() {
		var tx domain.Transaction

		err := rows.Scan(
			&tx.ID,
			&tx.CustomerID,
			&tx.Amount,
			&tx.Description,
			&tx.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}

		transactions = append(transactions, tx)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transactions: %w", err)
	}

	return transactions, nil
}

// GetByCustomer возвращает все операции клиента в порядке создания
func (r *PostgresTransactionRepository) GetByCustomer(ctx context.Context, customerID int64) ([]domain.Transaction, error) {
	query := `
		SELECT id, customer_id, amount, description, created_at
		FROM transactions
		WHERE customer_id = $1
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query customer transactions: %w", err)
	}
	defer rows.Close()

	transactions := make([]domain.Transaction, 0)
	for rows.Next() {
		var tx domain.Transaction

		err := rows.Scan(
			&tx.ID,
			&tx.CustomerID,
			&tx.Amount,
			&tx.Description,
			&tx.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}

		transactions = append(transactions, tx)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating customer transactions: %w", err)
	}

	return transactions, nil
}

// Create создает новую операцию, идентификатор присваивает база
func (r *PostgresTransactionRepository) Create(ctx context.Context, transaction domain.Transaction) (domain.Transaction, error) {
	query := `
		INSERT INTO transactions (customer_id, amount, description)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(
		ctx,
		query,
		transaction.CustomerID,
		transaction.Amount,
		transaction.Description,
	).Scan(&transaction.ID, &transaction.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			// Нарушение внешнего ключа: клиент не существует
			if pgErr.Code == "23503" {
				return domain.Transaction{}, repository.ErrNotFound
			}
		}
		return domain.Transaction{}, fmt.Errorf("failed to create transaction: %w", err)
	}

	return transaction, nil
}

// DeleteByCustomer удаляет все операции клиента
func (r *PostgresTransactionRepository) DeleteByCustomer(ctx context.Context, customerID int64) error {
	query := `DELETE FROM transactions WHERE customer_id = $1`

	if _, err := r.db.Exec(ctx, query, customerID); err != nil {
		return fmt.Errorf("failed to delete customer transactions: %w", err)
	}

	return nil
}
