package handlers

import (
	"errors"
	"net/http"

	"github.com/Dhoini/Customer-microservice/internal/domain"
	"github.com/Dhoini/Customer-microservice/internal/service"
	"github.com/Dhoini/Customer-microservice/pkg/logger"
	"github.com/gin-gonic/gin"
)

// SubscriptionHandler обработчик для связей клиент-план
type SubscriptionHandler struct {
	service service.SubscriptionService
	log     *logger.Logger
}

// NewSubscriptionHandler создает новый обработчик подписок
func NewSubscriptionHandler(svc service.SubscriptionService, log *logger.Logger) *SubscriptionHandler {
	return &SubscriptionHandler{
		service: svc,
		log:     log,
	}
}

// parseStatus извлекает обязательный query-параметр plan_status
func parseStatus(c *gin.Context) (domain.SubscriptionStatus, bool) {
	raw, exists := c.GetQuery("plan_status")
	if !exists {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "plan_status query parameter is required"})
		return "", false
	}

	status, err := domain.ParseSubscriptionStatus(raw)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "plan_status must be one of: active, inactive"})
		return "", false
	}

	return status, true
}

// SubscribeCustomer подписывает клиента на тарифный план
func (h *SubscriptionHandler) SubscribeCustomer(c *gin.Context) {
	customerID, ok := parseID(c, "id")
	if !ok {
		return
	}

	planID, ok := parseID(c, "plan_id")
	if !ok {
		return
	}

	status, ok := parseStatus(c)
	if !ok {
		return
	}

	link, err := h.service.Subscribe(c.Request.Context(), customerID, planID, status)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.log.Warn("Subscription rejected: %v", err)
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}

		h.log.Error("Failed to subscribe customer: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to subscribe customer"})
		return
	}

	h.log.Info("Subscribed customer %d to plan %d: subscription %d", customerID, planID, link.ID)
	c.JSON(http.StatusCreated, link)
}

// GetCustomerPlans возвращает планы клиента с заданным статусом подписки
func (h *SubscriptionHandler) GetCustomerPlans(c *gin.Context) {
	customerID, ok := parseID(c, "id")
	if !ok {
		return
	}

	status, ok := parseStatus(c)
	if !ok {
		return
	}

	plans, err := h.service.ListCustomerPlans(c.Request.Context(), customerID, status)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.log.Warn("Customer not found: %d", customerID)
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}

		h.log.Error("Failed to list customer plans: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list customer plans"})
		return
	}

	h.log.Info("Returned %d plans for customer %d", len(plans), customerID)
	c.JSON(http.StatusOK, plans)
}
