package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/autoforge/dealership-api/internal/application/service"
	"github.com/autoforge/dealership-api/internal/domain/enum"
	"github.com/autoforge/dealership-api/internal/presentation/http/dto/response"
)

// OrderHandler handles factory order HTTP requests
type OrderHandler struct {
	orderService *service.OrderService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// OrderRequest represents the create/update order request body
type OrderRequest struct {
	DealerID         string  `json:"dealer_id" binding:"required"`
	Model            string  `json:"model" binding:"required"`
	Trim             string  `json:"trim"`
	Color            string  `json:"color"`
	Quantity         int     `json:"quantity"`
	ExpectedDelivery *string `json:"expected_delivery"`
	Note             *string `json:"note"`
}

func (r *OrderRequest) expectedDelivery(c *gin.Context) (*time.Time, bool) {
	if r.ExpectedDelivery == nil || *r.ExpectedDelivery == "" {
		return nil, true
	}
	parsed, err := time.Parse("2006-01-02", *r.ExpectedDelivery)
	if err != nil {
		response.BadRequest(c, "Invalid expected delivery date, expected YYYY-MM-DD")
		return nil, false
	}
	return &parsed, true
}

// Create handles placing a factory order
// @Summary Create Order
// @Tags orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Success 201 {object} response.APIResponse
// @Router /orders [post]
func (h *OrderHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	dealerID, err := uuid.Parse(req.DealerID)
	if err != nil {
		response.BadRequest(c, "Invalid dealer ID")
		return
	}

	delivery, ok := req.expectedDelivery(c)
	if !ok {
		return
	}

	order, err := h.orderService.CreateOrder(c.Request.Context(), &service.CreateOrderInput{
		UserID:           *userID,
		DealerID:         dealerID,
		Model:            req.Model,
		Trim:             req.Trim,
		Color:            req.Color,
		Quantity:         req.Quantity,
		ExpectedDelivery: delivery,
		Note:             req.Note,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Order created successfully", order)
}

// List handles listing orders
// @Summary List Orders
// @Tags orders
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param per_page query int false "Items per page"
// @Param search query string false "Search on reference, model"
// @Param status query int false "Status filter"
// @Success 200 {object} response.APIResponse
// @Router /orders [get]
func (h *OrderHandler) List(c *gin.Context) {
	var status *enum.OrderStatus
	if s := c.Query("status"); s != "" {
		if parsed, err := parseNonNegativeInt(s); err == nil {
			st := enum.OrderStatus(parsed)
			status = &st
		}
	}

	var dealerID *uuid.UUID
	if d := c.Query("dealer_id"); d != "" {
		if id, err := uuid.Parse(d); err == nil {
			dealerID = &id
		}
	}

	result, err := h.orderService.ListOrders(c.Request.Context(), &service.ListOrdersInput{
		Pagination: paginationFromQuery(c),
		Search:     c.Query("search"),
		Status:     status,
		DealerID:   dealerID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Orders retrieved successfully", result)
}

// Get handles getting a single order
// @Summary Get Order
// @Tags orders
// @Security BearerAuth
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} response.APIResponse
// @Router /orders/{id} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	order, err := h.orderService.GetOrder(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order retrieved successfully", order)
}

// Update handles updating an order
// @Summary Update Order
// @Tags orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} response.APIResponse
// @Router /orders/{id} [put]
func (h *OrderHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	var req OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	delivery, ok := req.expectedDelivery(c)
	if !ok {
		return
	}

	order, err := h.orderService.UpdateOrder(c.Request.Context(), &service.UpdateOrderInput{
		ID:               id,
		Model:            req.Model,
		Trim:             req.Trim,
		Color:            req.Color,
		Quantity:         req.Quantity,
		ExpectedDelivery: delivery,
		Note:             req.Note,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order updated successfully", order)
}

// UpdateStatus handles advancing an order's status
// @Summary Update Order Status
// @Tags orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} response.APIResponse
// @Router /orders/{id}/status [put]
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.orderService.UpdateOrderStatus(c.Request.Context(), id, enum.OrderStatus(req.Status)); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order status updated successfully", nil)
}

// Delete handles deleting an order
// @Summary Delete Order
// @Tags orders
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 204
// @Router /orders/{id} [delete]
func (h *OrderHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	if err := h.orderService.DeleteOrder(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
