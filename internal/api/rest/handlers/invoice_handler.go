package handlers

import (
	"errors"
	"net/http"

	"github.com/Dhoini/Customer-microservice/internal/domain"
	"github.com/Dhoini/Customer-microservice/internal/service"
	"github.com/Dhoini/Customer-microservice/pkg/logger"
	"github.com/gin-gonic/gin"
)

// InvoiceHandler обработчик для счетов. Счета нигде не хранятся:
// это производная форма из клиента и списка его операций.
type InvoiceHandler struct {
	service service.InvoiceService
	log     *logger.Logger
}

// NewInvoiceHandler создает новый обработчик счетов
func NewInvoiceHandler(svc service.InvoiceService, log *logger.Logger) *InvoiceHandler {
	return &InvoiceHandler{
		service: svc,
		log:     log,
	}
}

// CreateInvoice пересчитывает итог переданного счета и возвращает его
func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	var invoice domain.Invoice
	if err := c.ShouldBindJSON(&invoice); err != nil {
		h.log.Warn("Invalid request: %v", err)
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	invoice.Total = invoice.ComputeTotal()

	h.log.Info("Computed invoice total for customer %d over %d transactions",
		invoice.Customer.ID, len(invoice.Transactions))
	c.JSON(http.StatusOK, invoice)
}

// GetCustomerInvoice собирает счет клиента из его сохраненных операций
func (h *InvoiceHandler) GetCustomerInvoice(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	invoice, err := h.service.BuildForCustomer(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.log.Warn("Customer not found: %d", id)
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}

		h.log.Error("Failed to build invoice: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build invoice"})
		return
	}

	h.log.Info("Built invoice for customer %d over %d transactions",
		id, len(invoice.Transactions))
	c.JSON(http.StatusOK, invoice)
}
