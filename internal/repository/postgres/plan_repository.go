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

// PostgresPlanRepository реализация репозитория планов через PostgreSQL
type PostgresPlanRepository struct {
	db  *pgxpool.Pool
	log *logger.Logger
}

// NewPostgresPlanRepository создает новый репозиторий планов через PostgreSQL
func NewPostgresPlanRepository(db *pgxpool.Pool, log *logger.Logger) *PostgresPlanRepository {
	return &PostgresPlanRepository{
		db:  db,
		log: log,
	}
}

// GetAll возвращает все планы в порядке создания
func (r *PostgresPlanRepository) GetAll(ctx context.Context) ([]domain.Plan, error) {
	query := `
		SELECT id, name, price, description, created_at, updated_at
		FROM plans
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query plans: %w", err)
	}
	defer rows.Close()

	plans := make([]domain.Plan, 0)
	for rows.Next() {
		var plan domain.Plan

		err := rows.Scan(
			&plan.ID,
			&plan.Name,
			&plan.Price,
			&plan.Description,
			&plan.CreatedAt,
			&plan.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan plan: %w", err)
		}

		plans = append(plans, plan)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating plans: %w", err)
	}

	return plans, nil
}

// GetByID возвращает план по ID
func (r *PostgresPlanRepository) GetByID(ctx context.Context, id int64) (domain.Plan, error) {
	query := `
		SELECT id, name, price, description, created_at, updated_at
		FROM plans
		WHERE id = $1
	`

	var plan domain.Plan

	err := r.db.QueryRow(ctx, query, id).Scan(
		&plan.ID,
		&plan.Name,
		&plan.Price,
		&plan.Description,
		&plan.CreatedAt,
		&plan.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Plan{}, repository.ErrNotFound
		}
		return domain.Plan{}, fmt.Errorf("failed to get plan: %w", err)
	}

	return plan, nil
}

// Create создает новый план, идентификатор присваивает база
func (r *PostgresPlanRepository) Create(ctx context.Context, plan domain.Plan) (domain.Plan, error) {
	query := `
		INSERT INTO plans (name, price, description)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(
		ctx,
		query,
		plan.Name,
		plan.Price,
		plan.Description,
	).Scan(&plan.ID, &plan.CreatedAt, &plan.UpdatedAt)

	if err != nil {
		return domain.Plan{}, fmt.Errorf("failed to create plan: %w", err)
	}

	return plan, nil
}
