package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/autoforge/dealership-api/internal/application/service"
	"github.com/autoforge/dealership-api/internal/domain/enum"
	"github.com/autoforge/dealership-api/internal/presentation/http/dto/response"
)

// QuoteHandler handles quote lifecycle HTTP requests
type QuoteHandler struct {
	quoteService *service.QuoteService
}

// NewQuoteHandler creates a new quote handler
func NewQuoteHandler(quoteService *service.QuoteService) *QuoteHandler {
	return &QuoteHandler{quoteService: quoteService}
}

// AdjustmentsRequest carries the raw pricing modifiers of a quote
type AdjustmentsRequest struct {
	ReducedVAT         bool     `json:"reduced_vat"`
	Discount           float64  `json:"discount"`
	LicensePlateBonus  float64  `json:"license_plate_bonus"`
	HasTradeIn         bool     `json:"has_trade_in"`
	TradeInValue       float64  `json:"trade_in_value"`
	TradeInBonus       float64  `json:"trade_in_bonus"`
	TradeInHandlingFee float64  `json:"trade_in_handling_fee"`
	SafetyKit          float64  `json:"safety_kit"`
	RoadPreparationFee *float64 `json:"road_preparation_fee"`
	WarrantyTerm       string   `json:"warranty_term"`
	DepositAmount      float64  `json:"deposit_amount"`
}

func (r AdjustmentsRequest) input() service.QuoteAdjustmentsInput {
	return service.QuoteAdjustmentsInput{
		ReducedVAT:         r.ReducedVAT,
		Discount:           r.Discount,
		LicensePlateBonus:  r.LicensePlateBonus,
		HasTradeIn:         r.HasTradeIn,
		TradeInValue:       r.TradeInValue,
		TradeInBonus:       r.TradeInBonus,
		TradeInHandlingFee: r.TradeInHandlingFee,
		SafetyKit:          r.SafetyKit,
		RoadPreparationFee: r.RoadPreparationFee,
		WarrantyTerm:       r.WarrantyTerm,
		DepositAmount:      r.DepositAmount,
	}
}

// TradeInRequest carries the trade-in vehicle description
type TradeInRequest struct {
	Brand   *string `json:"brand"`
	Model   *string `json:"model"`
	Plate   *string `json:"plate"`
	Year    *int    `json:"year"`
	Mileage *int    `json:"mileage"`
}

func (r TradeInRequest) input() service.TradeInInput {
	return service.TradeInInput{
		Brand:   r.Brand,
		Model:   r.Model,
		Plate:   r.Plate,
		Year:    r.Year,
		Mileage: r.Mileage,
	}
}

// CreateQuoteRequest represents the create quote request body
type CreateQuoteRequest struct {
	VehicleID     string             `json:"vehicle_id" binding:"required"`
	DealerID      *string            `json:"dealer_id"`
	CustomerName  string             `json:"customer_name" binding:"required"`
	CustomerPhone *string            `json:"customer_phone"`
	CustomerEmail *string            `json:"customer_email"`
	Adjustments   AdjustmentsRequest `json:"adjustments"`
	TradeIn       TradeInRequest     `json:"trade_in"`
	Note          *string            `json:"note"`
}

// Create handles creating a quote
// @Summary Create Quote
// @Description Create a quote for a vehicle; the final price is derived server side
// @Tags quotes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Success 201 {object} response.APIResponse
// @Router /quotes [post]
func (h *QuoteHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req CreateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	vehicleID, err := uuid.Parse(req.VehicleID)
	if err != nil {
		response.BadRequest(c, "Invalid vehicle ID")
		return
	}

	var dealerID *uuid.UUID
	if req.DealerID != nil && *req.DealerID != "" {
		id, err := uuid.Parse(*req.DealerID)
		if err != nil {
			response.BadRequest(c, "Invalid dealer ID")
			return
		}
		dealerID = &id
	}

	quote, err := h.quoteService.CreateQuote(c.Request.Context(), &service.CreateQuoteInput{
		UserID:        *userID,
		VehicleID:     vehicleID,
		DealerID:      dealerID,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		CustomerEmail: req.CustomerEmail,
		Adjustments:   req.Adjustments.input(),
		TradeIn:       req.TradeIn.input(),
		Note:          req.Note,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Quote created successfully", quote)
}

// List handles listing quotes
// @Summary List Quotes
// @Tags quotes
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param per_page query int false "Items per page"
// @Param search query string false "Search on reference, customer name"
// @Param status query int false "Status filter"
// @Success 200 {object} response.APIResponse
// @Router /quotes [get]
func (h *QuoteHandler) List(c *gin.Context) {
	var status *enum.QuoteStatus
	if s := c.Query("status"); s != "" {
		if parsed, err := parseNonNegativeInt(s); err == nil {
			st := enum.QuoteStatus(parsed)
			status = &st
		}
	}

	var vehicleID, dealerID *uuid.UUID
	if v := c.Query("vehicle_id"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			vehicleID = &id
		}
	}
	if d := c.Query("dealer_id"); d != "" {
		if id, err := uuid.Parse(d); err == nil {
			dealerID = &id
		}
	}

	result, err := h.quoteService.ListQuotes(c.Request.Context(), &service.ListQuotesInput{
		Pagination: paginationFromQuery(c),
		Search:     c.Query("search"),
		Status:     status,
		VehicleID:  vehicleID,
		DealerID:   dealerID,
		SortBy:     c.Query("sort_by"),
		SortOrder:  c.Query("sort_order"),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Quotes retrieved successfully", result)
}

// Get handles getting a single quote
// @Summary Get Quote
// @Tags quotes
// @Security BearerAuth
// @Produce json
// @Param id path string true "Quote ID"
// @Success 200 {object} response.APIResponse
// @Router /quotes/{id} [get]
func (h *QuoteHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid quote ID")
		return
	}

	quote, err := h.quoteService.GetQuote(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Quote retrieved successfully", quote)
}

// UpdateQuoteRequest represents the update quote request body
type UpdateQuoteRequest struct {
	CustomerName  string             `json:"customer_name" binding:"required"`
	CustomerPhone *string            `json:"customer_phone"`
	CustomerEmail *string            `json:"customer_email"`
	Adjustments   AdjustmentsRequest `json:"adjustments"`
	TradeIn       TradeInRequest     `json:"trade_in"`
	Note          *string            `json:"note"`
}

// Update handles updating a pending quote
// @Summary Update Quote
// @Description Update a pending quote; the final price is recomputed
// @Tags quotes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Quote ID"
// @Success 200 {object} response.APIResponse
// @Router /quotes/{id} [put]
func (h *QuoteHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid quote ID")
		return
	}

	var req UpdateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	quote, err := h.quoteService.UpdateQuote(c.Request.Context(), &service.UpdateQuoteInput{
		ID:            id,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		CustomerEmail: req.CustomerEmail,
		Adjustments:   req.Adjustments.input(),
		TradeIn:       req.TradeIn.input(),
		Note:          req.Note,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Quote updated successfully", quote)
}

// RejectQuoteRequest represents the reject request body
type RejectQuoteRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// Reject handles rejecting a pending quote
// @Summary Reject Quote
// @Tags quotes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Quote ID"
// @Success 200 {object} response.APIResponse
// @Router /quotes/{id}/reject [post]
func (h *QuoteHandler) Reject(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid quote ID")
		return
	}

	var req RejectQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	quote, err := h.quoteService.RejectQuote(c.Request.Context(), id, req.Reason)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Quote rejected", quote)
}

// Revert handles reverting a converted quote back to pending
// @Summary Revert Quote
// @Tags quotes
// @Security BearerAuth
// @Produce json
// @Param id path string true "Quote ID"
// @Success 200 {object} response.APIResponse
// @Router /quotes/{id}/revert [post]
func (h *QuoteHandler) Revert(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid quote ID")
		return
	}

	quote, err := h.quoteService.RevertQuote(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Quote reverted to pending", quote)
}

// Delete handles deleting a quote
// @Summary Delete Quote
// @Tags quotes
// @Security BearerAuth
// @Param id path string true "Quote ID"
// @Success 204
// @Router /quotes/{id} [delete]
func (h *QuoteHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid quote ID")
		return
	}

	if err := h.quoteService.DeleteQuote(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// PreviewRequest represents the price preview request body
type PreviewRequest struct {
	BasePrice   float64            `json:"base_price" binding:"required"`
	Adjustments AdjustmentsRequest `json:"adjustments"`
}

// Preview handles deriving a price without persisting a quote
// @Summary Preview Price
// @Description Derive the final price for a base price and adjustment set
// @Tags quotes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /quotes/preview [post]
func (h *QuoteHandler) Preview(c *gin.Context) {
	var req PreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result := h.quoteService.PreviewPrice(req.BasePrice, req.Adjustments.input())
	response.OK(c, "Price derived successfully", result)
}
