package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/autoforge/dealership-api/internal/application/service"
	"github.com/autoforge/dealership-api/internal/domain/enum"
	"github.com/autoforge/dealership-api/internal/presentation/http/dto/response"
)

// VehicleHandler handles inventory HTTP requests
type VehicleHandler struct {
	vehicleService *service.VehicleService
}

// NewVehicleHandler creates a new vehicle handler
func NewVehicleHandler(vehicleService *service.VehicleService) *VehicleHandler {
	return &VehicleHandler{vehicleService: vehicleService}
}

// VehicleRequest represents the create/update vehicle request body
type VehicleRequest struct {
	DealerID    *string  `json:"dealer_id"`
	VIN         string   `json:"vin" binding:"required"`
	Make        string   `json:"make" binding:"required"`
	Model       string   `json:"model" binding:"required"`
	Trim        string   `json:"trim"`
	Color       string   `json:"color"`
	Year        int      `json:"year" binding:"required"`
	Mileage     int      `json:"mileage"`
	BasePrice   float64  `json:"base_price" binding:"required"`
	Accessories []string `json:"accessories"`
	Photo       *string  `json:"photo"`
}

func (r *VehicleRequest) dealerID(c *gin.Context) (*uuid.UUID, bool) {
	if r.DealerID == nil || *r.DealerID == "" {
		return nil, true
	}
	id, err := uuid.Parse(*r.DealerID)
	if err != nil {
		response.BadRequest(c, "Invalid dealer ID")
		return nil, false
	}
	return &id, true
}

// Create handles adding a vehicle to stock
// @Summary Create Vehicle
// @Tags vehicles
// @Security BearerAuth
// @Accept json
// @Produce json
// @Success 201 {object} response.APIResponse
// @Router /vehicles [post]
func (h *VehicleHandler) Create(c *gin.Context) {
	var req VehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	dealerID, ok := req.dealerID(c)
	if !ok {
		return
	}

	vehicle, err := h.vehicleService.CreateVehicle(c.Request.Context(), &service.CreateVehicleInput{
		DealerID:    dealerID,
		VIN:         req.VIN,
		Make:        req.Make,
		Model:       req.Model,
		Trim:        req.Trim,
		Color:       req.Color,
		Year:        req.Year,
		Mileage:     req.Mileage,
		BasePrice:   decimal.NewFromFloat(req.BasePrice),
		Accessories: req.Accessories,
		Photo:       req.Photo,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Vehicle created successfully", vehicle)
}

// List handles listing vehicles
// @Summary List Vehicles
// @Tags vehicles
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param per_page query int false "Items per page"
// @Param search query string false "Search on VIN, make, model"
// @Param status query int false "Status filter"
// @Success 200 {object} response.APIResponse
// @Router /vehicles [get]
func (h *VehicleHandler) List(c *gin.Context) {
	var status *enum.VehicleStatus
	if s := c.Query("status"); s != "" {
		if parsed, err := parseNonNegativeInt(s); err == nil {
			st := enum.VehicleStatus(parsed)
			status = &st
		}
	}

	var dealerID *uuid.UUID
	if d := c.Query("dealer_id"); d != "" {
		if id, err := uuid.Parse(d); err == nil {
			dealerID = &id
		}
	}

	result, err := h.vehicleService.ListVehicles(c.Request.Context(), &service.ListVehiclesInput{
		Pagination: paginationFromQuery(c),
		Search:     c.Query("search"),
		Status:     status,
		DealerID:   dealerID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Vehicles retrieved successfully", result)
}

// Get handles getting a single vehicle
// @Summary Get Vehicle
// @Tags vehicles
// @Security BearerAuth
// @Produce json
// @Param id path string true "Vehicle ID"
// @Success 200 {object} response.APIResponse
// @Router /vehicles/{id} [get]
func (h *VehicleHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid vehicle ID")
		return
	}

	vehicle, err := h.vehicleService.GetVehicle(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Vehicle retrieved successfully", vehicle)
}

// Update handles updating a vehicle
// @Summary Update Vehicle
// @Tags vehicles
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Vehicle ID"
// @Success 200 {object} response.APIResponse
// @Router /vehicles/{id} [put]
func (h *VehicleHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid vehicle ID")
		return
	}

	var req VehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	dealerID, ok := req.dealerID(c)
	if !ok {
		return
	}

	vehicle, err := h.vehicleService.UpdateVehicle(c.Request.Context(), &service.UpdateVehicleInput{
		ID:          id,
		DealerID:    dealerID,
		Make:        req.Make,
		Model:       req.Model,
		Trim:        req.Trim,
		Color:       req.Color,
		Year:        req.Year,
		Mileage:     req.Mileage,
		BasePrice:   decimal.NewFromFloat(req.BasePrice),
		Accessories: req.Accessories,
		Photo:       req.Photo,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Vehicle updated successfully", vehicle)
}

// UpdateStatusRequest represents a status change request body
type UpdateStatusRequest struct {
	Status int `json:"status"`
}

// UpdateStatus handles changing a vehicle's availability
// @Summary Update Vehicle Status
// @Tags vehicles
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Vehicle ID"
// @Success 200 {object} response.APIResponse
// @Router /vehicles/{id}/status [put]
func (h *VehicleHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid vehicle ID")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.vehicleService.UpdateVehicleStatus(c.Request.Context(), id, enum.VehicleStatus(req.Status)); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Vehicle status updated successfully", nil)
}

// Delete handles deleting a vehicle
// @Summary Delete Vehicle
// @Tags vehicles
// @Security BearerAuth
// @Param id path string true "Vehicle ID"
// @Success 204
// @Router /vehicles/{id} [delete]
func (h *VehicleHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid vehicle ID")
		return
	}

	if err := h.vehicleService.DeleteVehicle(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
