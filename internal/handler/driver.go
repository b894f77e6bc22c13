package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kevin123-bit/FLEET-MANAGEMENT-1/internal/model"
	"github.com/kevin123-bit/FLEET-MANAGEMENT-1/internal/service"
)

// DriverHandler handles driver CRUD and the performance API
type DriverHandler struct {
	driverService *service.DriverService
}

// NewDriverHandler creates a new driver handler
func NewDriverHandler(driverService *service.DriverService) *DriverHandler {
	return &DriverHandler{driverService: driverService}
}

// Add creates a driver
func (h *DriverHandler) Add(c *gin.Context) {
	var req model.CreateDriverRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	driver, err := h.driverService.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, driver)
}

// EditForm returns the driver to edit
func (h *DriverHandler) EditForm(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid driver id"})
		return
	}

	driver, err := h.driverService.Get(c.Request.Context(), uint(id))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"driver": driver})
}

// Edit updates a driver
func (h *DriverHandler) Edit(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid driver id"})
		return
	}

	var req model.UpdateDriverRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	driver, err := h.driverService.Update(c.Request.Context(), uint(id), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, driver)
}

// PerformanceHistory returns the six-month score trend for one driver
// @Summary Driver performance history
// @Description Monthly performance scores for the last six months
// @Tags API
// @Produce json
// @Security BearerAuth
// @Param id path int true "Driver ID"
// @Success 200 {object} model.DriverPerformanceHistory
// @Failure 404 {object} map[string]string
// @Router /api/driver-performance/{id} [get]
func (h *DriverHandler) PerformanceHistory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid driver id"})
		return
	}

	history, err := h.driverService.PerformanceHistory(c.Request.Context(), uint(id))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, history)
}
