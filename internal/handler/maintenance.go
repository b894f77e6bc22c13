package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kevin123-bit/FLEET-MANAGEMENT-1/internal/model"
	"github.com/kevin123-bit/FLEET-MANAGEMENT-1/internal/service"
)

// MaintenanceHandler handles the maintenance workflows
type MaintenanceHandler struct {
	maintenanceService *service.MaintenanceService
}

// NewMaintenanceHandler creates a new maintenance handler
func NewMaintenanceHandler(maintenanceService *service.MaintenanceService) *MaintenanceHandler {
	return &MaintenanceHandler{maintenanceService: maintenanceService}
}

// Add schedules a maintenance event
func (h *MaintenanceHandler) Add(c *gin.Context) {
	var req model.CreateMaintenanceRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := h.maintenanceService.Schedule(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, record)
}

// Complete marks a scheduled maintenance event completed and stamps the
// vehicle's last_maintenance
func (h *MaintenanceHandler) Complete(c *gin.Context) {
	var req model.CompleteMaintenanceRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Maintenance ID is required"})
		return
	}

	record, err := h.maintenanceService.Complete(c.Request.Context(), req.MaintenanceID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "record": record})
}

// Alerts returns scheduled maintenance as dashboard alerts
// @Summary Maintenance alerts
// @Description Scheduled maintenance with vehicle names, dates formatted YYYY-MM-DD
// @Tags API
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.MaintenanceAlert
// @Router /api/maintenance-alerts [get]
func (h *MaintenanceHandler) Alerts(c *gin.Context) {
	alerts, err := h.maintenanceService.Alerts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, alerts)
}
