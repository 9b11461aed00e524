package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction представляет собой финансовую операцию клиента.
// Запись неизменяема после создания: операций обновления и удаления нет.
type Transaction struct {
	ID          int64           `json:"id"`
	CustomerID  int64           `json:"customer_id"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"created_at"`
}

// TransactionCreate представляет запрос на создание операции.
// Знак суммы не ограничивается: списания передаются отрицательными.
type TransactionCreate struct {
	CustomerID  int64           `json:"customer_id" binding:"required"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description" binding:"required"`
}
