package handlers

import (
	"errors"
	"net/http"

	"github.com/Dhoini/Customer-microservice/internal/domain"
	"github.com/Dhoini/Customer-microservice/internal/service"
	"github.com/Dhoini/Customer-microservice/pkg/logger"
	"github.com/gin-gonic/gin"
)

// TransactionHandler обработчик для операций клиентов
type TransactionHandler struct {
	service service.TransactionService
	log     *logger.Logger
}

// NewTransactionHandler создает новый обработчик операций
func NewTransactionHandler(svc service.TransactionService, log *logger.Logger) *TransactionHandler {
	return &TransactionHandler{
		service: svc,
		log:     log,
	}
}

// GetTransactions возвращает операции в порядке создания
func (h *TransactionHandler) GetTransactions(c *gin.Context) {
	skip, limit, ok := parsePagination(c)
	if !ok {
		return
	}

	transactions, err := h.service.GetAll(c.Request.Context(), skip, limit)
	if err != nil {
		h.log.Error("Failed to get transactions: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get transactions"})
		return
	}

	h.log.Info("Returned %d transactions", len(transactions))
	c.JSON(http.StatusOK, transactions)
}

// CreateTransaction создает новую операцию для существующего клиента
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var req domain.TransactionCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid request: %v", err)
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	transaction, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.log.Warn("Transaction rejected: %v", err)
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}

		h.log.Error("Failed to create transaction: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create transaction"})
		return
	}

	h.log.Info("Created transaction with ID: %d", transaction.ID)
	c.JSON(http.StatusCreated, transaction)
}
