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

// PostgresSubscriptionRepository реализация репозитория подписок через PostgreSQL
type PostgresSubscriptionRepository struct {
	db  *pgxpool.Pool
	log *logger.Logger
}

// NewPostgresSubscriptionRepository создает новый репозиторий подписок через PostgreSQL
func NewPostgresSubscriptionRepository(db *pgxpool.Pool, log *logger.Logger) *PostgresSubscriptionRepository {
	return &PostgresSubscriptionRepository{
		db:  db,
		log: log,
	}
}

// Create создает новую связь клиент-план. Уникальность пары не
// требуется, повторная подписка дает отдельную запись.
func (r *PostgresSubscriptionRepository) Create(ctx context.Context, link domain.CustomerPlan) (domain.CustomerPlan, error) {
	query := `
		INSERT INTO customer_plans (customer_id, plan_id, status)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(
		ctx,
		query,
		link.CustomerID,
		link.PlanID,
		link.Status,
	).Scan(&link.ID, &link.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			// Нарушение внешнего ключа: клиент или план не существуют
			if pgErr.Code == "23503" {
				return domain.CustomerPlan{}, repository.ErrNotFound
			}
		}
		return domain.CustomerPlan{}, fmt.Errorf("failed to create subscription: %w", err)
	}

	return link, nil
}

// GetByCustomerAndStatus возвращает связи клиента с заданным статусом
func (r *PostgresSubscriptionRepository) GetByCustomerAndStatus(ctx context.Context, customerID int64, status domain.SubscriptionStatus) ([]domain.CustomerPlan, error) {
	query := `
		SELECT id, customer_id, plan_id, status, created_at
		FROM customer_plans
		WHERE customer_id = $1 AND status = $2
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query, customerID, status)
	if err != nil {
		return nil, fmt.Errorf("failed to query subscriptions: %w", err)
	}
	defer rows.Close()

	links := make([]domain.CustomerPlan, 0)
	for rows.Next() {
		var link domain.CustomerPlan

		err := rows.Scan(
			&link.ID,
			&link.CustomerID,
			&link.PlanID,
			&link.Status,
			&link.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan subscription: %w", err)
		}

		links = append(links, link)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating subscriptions: %w", err)
	}

	return links, nil
}

// DeleteByCustomer удаляет все связи клиента
func (r *PostgresSubscriptionRepository) DeleteByCustomer(ctx context.Context, customerID int64) error {
	query := `DELETE FROM customer_plans WHERE customer_id = $1`

	if _, err := r.db.Exec(ctx, query, customerID); err != nil {
		return fmt.Errorf("failed to delete customer subscriptions: %w", err)
	}

	return nil
}
