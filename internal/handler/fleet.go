package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kevin123-bit/FLEET-MANAGEMENT-1/internal/service"
)

// FleetHandler serves the dashboard page snapshots
type FleetHandler struct {
	fleetService *service.FleetService
}

// NewFleetHandler creates a new fleet handler
func NewFleetHandler(fleetService *service.FleetService) *FleetHandler {
	return &FleetHandler{fleetService: fleetService}
}

// Index is the landing route: signed-in users are pointed at the
// dashboard, everyone else gets the landing payload
func (h *FleetHandler) Index(c *gin.Context) {
	if IsAuthenticated(c) {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Fleet Management System", "login": "/login", "signup": "/signup"})
}

// Dashboard serves the main dashboard snapshot
func (h *FleetHandler) Dashboard(c *gin.Context) {
	snapshot, err := h.fleetService.Dashboard(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// DriverPerformance serves the driver performance page
func (h *FleetHandler) DriverPerformance(c *gin.Context) {
	page, err := h.fleetService.DriverPerformance(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// FuelManagement serves the fuel management page
func (h *FleetHandler) FuelManagement(c *gin.Context) {
	page, err := h.fleetService.FuelManagement(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// Maintenance serves the maintenance page
func (h *FleetHandler) Maintenance(c *gin.Context) {
	page, err := h.fleetService.Maintenance(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}
