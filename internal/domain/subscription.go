package domain

import (
	"fmt"
	"time"
)

// SubscriptionStatus статус подписки клиента на план
type SubscriptionStatus string

const (
	SubscriptionStatusActive   SubscriptionStatus = "active"
	SubscriptionStatusInactive SubscriptionStatus = "inactive"
)

// ParseSubscriptionStatus проверяет и преобразует строку в статус подписки
func ParseSubscriptionStatus(s string) (SubscriptionStatus, error) {
	switch SubscriptionStatus(s) {
	case SubscriptionStatusActive:
		return SubscriptionStatusActive, nil
	case SubscriptionStatusInactive:
		return SubscriptionStatusInactive, nil
	default:
		return "", fmt.Errorf("invalid subscription status %q", s)
	}
}

// CustomerPlan представляет собой связь клиента с тарифным планом.
// Клиент может иметь несколько подписок на один и тот же план:
// уникальность пары (customer_id, plan_id) не требуется.
type CustomerPlan struct {
	ID         int64              `json:"id"`
	CustomerID int64              `json:"customer_id"`
	PlanID     int64              `json:"plan_id"`
	Status     SubscriptionStatus `json:"status"`
	CreatedAt  time.Time          `json:"created_at"`
}
