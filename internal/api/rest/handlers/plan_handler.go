package handlers

import (
	"net/http"

	"github.com/Dhoini/Customer-microservice/internal/domain"
	"github.com/Dhoini/Customer-microservice/internal/service"
	"github.com/Dhoini/Customer-microservice/pkg/logger"
	"github.com/gin-gonic/gin"
)

// PlanHandler обработчик для тарифных планов
type PlanHandler struct {
	service service.PlanService
	log     *logger.Logger
}

// NewPlanHandler создает новый обработчик планов
func NewPlanHandler(svc service.PlanService, log *logger.Logger) *PlanHandler {
	return &PlanHandler{
		service: svc,
		log:     log,
	}
}

// GetPlans возвращает все планы
func (h *PlanHandler) GetPlans(c *gin.Context) {
	plans, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		h.log.Error("Failed to get plans: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get plans"})
		return
	}

	h.log.Info("Returned %d plans", len(plans))
	c.JSON(http.StatusOK, plans)
}

// CreatePlan создает новый тарифный план
func (h *PlanHandler) CreatePlan(c *gin.Context) {
	var req domain.PlanCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid request: %v", err)
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	plan, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.log.Error("Failed to create plan: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create plan"})
		return
	}

	h.log.Info("Created plan with ID: %d", plan.ID)
	c.JSON(http.StatusCreated, plan)
}
