package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Plan представляет собой тарифный план
type Plan struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// PlanCreate представляет запрос на создание тарифного плана
type PlanCreate struct {
	Name        string          `json:"name" binding:"required"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
}
