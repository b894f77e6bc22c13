package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kevin123-bit/FLEET-MANAGEMENT-1/internal/model"
	"github.com/kevin123-bit/FLEET-MANAGEMENT-1/internal/service"
)

// VehicleHandler 车辆处理器
type VehicleHandler struct {
	vehicleService *service.VehicleService
}

// NewVehicleHandler 创建车辆处理器
func NewVehicleHandler(vehicleService *service.VehicleService) *VehicleHandler {
	return &VehicleHandler{vehicleService: vehicleService}
}

// List 车辆列表页
func (h *VehicleHandler) List(c *gin.Context) {
	vehicles, err := h.vehicleService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"vehicles": vehicles})
}

// Detail 车辆详情页，含维保与加油历史
func (h *VehicleHandler) Detail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid vehicle id"})
		return
	}

	detail, err := h.vehicleService.GetDetail(c.Request.Context(), uint(id))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// Tracking 车辆追踪页
func (h *VehicleHandler) Tracking(c *gin.Context) {
	vehicles, err := h.vehicleService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"vehicles": vehicles})
}

// AddForm 新增车辆表单数据
func (h *VehicleHandler) AddForm(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"current_year": time.Now().UTC().Year()})
}

// Add 新增车辆
func (h *VehicleHandler) Add(c *gin.Context) {
	var req model.CreateVehicleRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	vehicle, err := h.vehicleService.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, vehicle)
}

// EditForm 编辑车辆表单数据
func (h *VehicleHandler) EditForm(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid vehicle id"})
		return
	}

	vehicle, err := h.vehicleService.Get(c.Request.Context(), uint(id))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"vehicle":      vehicle,
		"current_year": time.Now().UTC().Year(),
	})
}

// Edit 编辑车辆
func (h *VehicleHandler) Edit(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid vehicle id"})
		return
	}

	var req model.UpdateVehicleRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	vehicle, err := h.vehicleService.Update(c.Request.Context(), uint(id), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, vehicle)
}

// Locations 车辆定位快照API
// @Summary Vehicle locations
// @Description Current location snapshot of every vehicle
// @Tags API
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.VehicleLocation
// @Router /api/vehicle-locations [get]
func (h *VehicleHandler) Locations(c *gin.Context) {
	locations, err := h.vehicleService.Locations(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, locations)
}
