package domain

import (
	"time"

	"github.com/Dhoini/Customer-microservice/pkg/optional"
)

// Customer представляет собой модель клиента
type Customer struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Email       string    `json:"email"`
	Age         int       `json:"age"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CustomerCreate представляет запрос на создание клиента
type CustomerCreate struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
	Email       string  `json:"email" binding:"required,email"`
	Age         int     `json:"age" binding:"required,gt=0"`
}

// CustomerUpdate представляет запрос на частичное обновление клиента.
// Каждое поле различает "не передано", "передано как null" и "передано
// со значением": отсутствующее поле не меняет запись.
type CustomerUpdate struct {
	Name        optional.Value[string] `json:"name"`
	Description optional.Value[string] `json:"description"`
	Email       optional.Value[string] `json:"email"`
	Age         optional.Value[int]    `json:"age"`
}

// IsEmpty сообщает, что в запросе не передано ни одного поля
func (u CustomerUpdate) IsEmpty() bool {
	return !u.Name.IsSet() && !u.Description.IsSet() && !u.Email.IsSet() && !u.Age.IsSet()
}
