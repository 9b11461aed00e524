package domain

import "github.com/shopspring/decimal"

// Invoice представляет собой счет клиента. Счет нигде не хранится:
// это производная форма из снимка клиента и списка его операций.
type Invoice struct {
	ID           int64           `json:"id"`
	Customer     Customer        `json:"customer"`
	Transactions []Transaction   `json:"transactions"`
	Total        decimal.Decimal `json:"total"`
}

// ComputeTotal возвращает сумму всех операций счета
func (i Invoice) ComputeTotal() decimal.Decimal {
	total := decimal.Zero
	for _, tx := range i.Transactions {
		total = total.Add(tx.Amount)
	}
	return total
}
