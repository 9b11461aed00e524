package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Dhoini/Customer-microservice/internal/domain"
	"github.com/Dhoini/Customer-microservice/internal/service"
	"github.com/Dhoini/Customer-microservice/pkg/logger"
	"github.com/gin-gonic/gin"
)

// CustomerHandler обработчик для клиентов
type CustomerHandler struct {
	service service.CustomerService
	log     *logger.Logger
}

// NewCustomerHandler создает новый обработчик клиентов
func NewCustomerHandler(svc service.CustomerService, log *logger.Logger) *CustomerHandler {
	return &CustomerHandler{
		service: svc,
		log:     log,
	}
}

// parseID извлекает числовой идентификатор из параметра пути
func parseID(c *gin.Context, param string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + param + " format"})
		return 0, false
	}
	return id, true
}

// parsePagination извлекает skip и limit из query-параметров
func parsePagination(c *gin.Context) (int, int, bool) {
	skip, err := strconv.Atoi(c.DefaultQuery("skip", "0"))
	if err != nil || skip < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid skip parameter"})
		return 0, 0, false
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit parameter"})
		return 0, 0, false
	}

	return skip, limit, true
}

// GetCustomers возвращает список клиентов в порядке создания
func (h *CustomerHandler) GetCustomers(c *gin.Context) {
	skip, limit, ok := parsePagination(c)
	if !ok {
		return
	}

	customers, err := h.service.GetAll(c.Request.Context(), skip, limit)
	if err != nil {
		h.log.Error("Failed to get customers: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get customers"})
		return
	}

	h.log.Info("Returned %d customers", len(customers))
	c.JSON(http.StatusOK, customers)
}

// GetCustomer возвращает клиента по ID
func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	customer, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.log.Warn("Customer not found: %d", id)
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}

		h.log.Error("Failed to get customer: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get customer"})
		return
	}

	h.log.Info("Returned customer with ID: %d", id)
	c.JSON(http.StatusOK, customer)
}

// CreateCustomer создает нового клиента
func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var req domain.CustomerCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid request: %v", err)
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	customer, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.log.Error("Failed to create customer: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create customer"})
		return
	}

	h.log.Info("Created customer with ID: %d", customer.ID)
	c.JSON(http.StatusCreated, customer)
}

// UpdateCustomer частично обновляет существующего клиента:
// меняются только переданные поля
func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req domain.CustomerUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid request: %v", err)
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	customer, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.log.Warn("Customer not found: %d", id)
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}

		var ve domain.ValidationErrors
		if errors.As(err, &ve) {
			h.log.Warn("Invalid update request: %v", err)
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": ve.Error(), "details": ve})
			return
		}

		h.log.Error("Failed to update customer: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update customer"})
		return
	}

	h.log.Info("Updated customer with ID: %d", customer.ID)
	c.JSON(http.StatusOK, customer)
}

// DeleteCustomer удаляет клиента вместе с его операциями и подписками
func (h *CustomerHandler) DeleteCustomer(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.log.Warn("Customer not found: %d", id)
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}

		h.log.Error("Failed to delete customer: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete customer"})
		return
	}

	h.log.Info("Deleted customer with ID: %d", id)
	c.Status(http.StatusNoContent)
}
