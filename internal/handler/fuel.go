package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kevin123-bit/FLEET-MANAGEMENT-1/internal/model"
	"github.com/kevin123-bit/FLEET-MANAGEMENT-1/internal/service"
)

// FuelHandler 加油记录处理器
type FuelHandler struct {
	fuelService *service.FuelService
}

// NewFuelHandler 创建加油记录处理器
func NewFuelHandler(fuelService *service.FuelService) *FuelHandler {
	return &FuelHandler{fuelService: fuelService}
}

// Add 创建加油记录并更新车辆油量
// @Summary Record fuel purchase
// @Description Create a fuel record and top up the vehicle's fuel level
// @Tags Fuel
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param record body model.CreateFuelRecordRequest true "Fuel record"
// @Success 201 {object} model.FuelRecord
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /add-fuel-record [post]
func (h *FuelHandler) Add(c *gin.Context) {
	var req model.CreateFuelRecordRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := h.fuelService.RecordPurchase(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, record)
}
