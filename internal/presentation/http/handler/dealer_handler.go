package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/autoforge/dealership-api/internal/application/service"
	"github.com/autoforge/dealership-api/internal/presentation/http/dto/response"
)

// DealerHandler handles dealer HTTP requests
type DealerHandler struct {
	dealerService *service.DealerService
}

// NewDealerHandler creates a new dealer handler
func NewDealerHandler(dealerService *service.DealerService) *DealerHandler {
	return &DealerHandler{dealerService: dealerService}
}

// DealerRequest represents the create/update dealer request body
type DealerRequest struct {
	Code       string  `json:"code" binding:"required"`
	Name       string  `json:"name" binding:"required"`
	Address    *string `json:"address"`
	City       *string `json:"city"`
	Province   *string `json:"province"`
	PostalCode *string `json:"postal_code"`
	Phone      *string `json:"phone"`
	Email      *string `json:"email"`
}

func (r *DealerRequest) input() *service.DealerInput {
	return &service.DealerInput{
		Code:       r.Code,
		Name:       r.Name,
		Address:    r.Address,
		City:       r.City,
		Province:   r.Province,
		PostalCode: r.PostalCode,
		Phone:      r.Phone,
		Email:      r.Email,
	}
}

// Create handles registering a dealer
// @Summary Create Dealer
// @Tags dealers
// @Security BearerAuth
// @Accept json
// @Produce json
// @Success 201 {object} response.APIResponse
// @Router /dealers [post]
func (h *DealerHandler) Create(c *gin.Context) {
	var req DealerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	dealer, err := h.dealerService.CreateDealer(c.Request.Context(), req.input())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Dealer created successfully", dealer)
}

// List handles listing dealers
// @Summary List Dealers
// @Tags dealers
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /dealers [get]
func (h *DealerHandler) List(c *gin.Context) {
	result, err := h.dealerService.ListDealers(c.Request.Context(), paginationFromQuery(c), c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Dealers retrieved successfully", result)
}

// Get handles getting a single dealer
// @Summary Get Dealer
// @Tags dealers
// @Security BearerAuth
// @Produce json
// @Param id path string true "Dealer ID"
// @Success 200 {object} response.APIResponse
// @Router /dealers/{id} [get]
func (h *DealerHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid dealer ID")
		return
	}

	dealer, err := h.dealerService.GetDealer(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Dealer retrieved successfully", dealer)
}

// Update handles updating a dealer
// @Summary Update Dealer
// @Tags dealers
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Dealer ID"
// @Success 200 {object} response.APIResponse
// @Router /dealers/{id} [put]
func (h *DealerHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid dealer ID")
		return
	}

	var req DealerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	dealer, err := h.dealerService.UpdateDealer(c.Request.Context(), id, req.input())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Dealer updated successfully", dealer)
}

// Delete handles deleting a dealer
// @Summary Delete Dealer
// @Tags dealers
// @Security BearerAuth
// @Param id path string true "Dealer ID"
// @Success 204
// @Router /dealers/{id} [delete]
func (h *DealerHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid dealer ID")
		return
	}

	if err := h.dealerService.DeleteDealer(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
