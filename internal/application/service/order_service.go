package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/autoforge/dealership-api/internal/domain/entity"
	"github.com/autoforge/dealership-api/internal/domain/enum"
	"github.com/autoforge/dealership-api/internal/domain/repository"
	"github.com/autoforge/dealership-api/pkg/apperror"
	"github.com/autoforge/dealership-api/pkg/pagination"
	"github.com/autoforge/dealership-api/pkg/utils"
)

// OrderService handles factory orders for configurations not in stock
type OrderService struct {
	orderRepo  repository.OrderRepository
	dealerRepo repository.DealerRepository
}

// NewOrderService creates a new order service
func NewOrderService(orderRepo repository.OrderRepository, dealerRepo repository.DealerRepository) *OrderService {
	return &OrderService{
		orderRepo:  orderRepo,
		dealerRepo: dealerRepo,
	}
}

// CreateOrderInput represents the input for placing a factory order
type CreateOrderInput struct {
	UserID           uuid.UUID
	DealerID         uuid.UUID
	Model            string
	Trim             string
	Color            string
	Quantity         int
	ExpectedDelivery *time.Time
	Note             *string
}

// CreateOrder places a new factory order
func (s *OrderService) CreateOrder(ctx context.Context, input *CreateOrderInput) (*entity.Order, error) {
	dealer, err := s.dealerRepo.GetByID(ctx, input.DealerID)
	if err != nil {
		return nil, err
	}
	if dealer == nil {
		return nil, apperror.NewNotFoundError("Dealer")
	}

	if input.Quantity < 1 {
		input.Quantity = 1
	}

	nextNum, err := s.orderRepo.GetNextReferenceNumber(ctx)
	if err != nil {
		return nil, err
	}
	reference := utils.FormatReference("ORD", int64(nextNum))

	order := &entity.Order{
		UserID:           input.UserID,
		DealerID:         input.DealerID,
		Reference:        reference,
		Model:            input.Model,
		Trim:             input.Trim,
		Color:            input.Color,
		Quantity:         input.Quantity,
		ExpectedDelivery: input.ExpectedDelivery,
		Status:           enum.OrderStatusPlaced,
		Note:             input.Note,
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	return order, nil
}

// GetOrder retrieves an order by ID
func (s *OrderService) GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	return order, nil
}

// ListOrdersInput represents the input for listing orders
type ListOrdersInput struct {
	Pagination *pagination.PaginationParams
	Search     string
	Status     *enum.OrderStatus
	DealerID   *uuid.UUID
}

// ListOrders lists orders with filtering
func (s *OrderService) ListOrders(ctx context.Context, input *ListOrdersInput) (*pagination.PaginatedResult[entity.Order], error) {
	params := &repository.OrderFilterParams{
		Pagination: input.Pagination,
		Search:     input.Search,
		Status:     input.Status,
		DealerID:   input.DealerID,
	}

	orders, total, err := s.orderRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(input.Pagination.Page, input.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(orders, pag), nil
}

// UpdateOrderInput represents the input for updating an order
type UpdateOrderInput struct {
	ID               uuid.UUID
	Model            string
	Trim             string
	Color            string
	Quantity         int
	ExpectedDelivery *time.Time
	Note             *string
}

// UpdateOrder updates an order that has not yet been delivered or cancelled
func (s *OrderService) UpdateOrder(ctx context.Context, input *UpdateOrderInput) (*entity.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	if order.Status == enum.OrderStatusDelivered || order.Status == enum.OrderStatusCancelled {
		return nil, apperror.NewBadRequestError("Delivered or cancelled orders cannot be updated")
	}

	if input.Quantity < 1 {
		input.Quantity = 1
	}

	order.Model = input.Model
	order.Trim = input.Trim
	order.Color = input.Color
	order.Quantity = input.Quantity
	order.ExpectedDelivery = input.ExpectedDelivery
	order.Note = input.Note

	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	return order, nil
}

// UpdateOrderStatus advances the order status. Delivered and cancelled are
// terminal.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status enum.OrderStatus) error {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if order == nil {
		return apperror.NewNotFoundError("Order")
	}
	if order.Status == enum.OrderStatusDelivered || order.Status == enum.OrderStatusCancelled {
		return apperror.NewBadRequestError("Order status can no longer be changed")
	}

	return s.orderRepo.UpdateStatus(ctx, id, status)
}

// DeleteOrder removes an order
func (s *OrderService) DeleteOrder(ctx context.Context, id uuid.UUID) error {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if order == nil {
		return apperror.NewNotFoundError("Order")
	}

	return s.orderRepo.Delete(ctx, id)
}
