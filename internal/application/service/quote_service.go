package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/autoforge/dealership-api/internal/domain/entity"
	"github.com/autoforge/dealership-api/internal/domain/enum"
	"github.com/autoforge/dealership-api/internal/domain/pricing"
	"github.com/autoforge/dealership-api/internal/domain/repository"
	"github.com/autoforge/dealership-api/pkg/apperror"
	"github.com/autoforge/dealership-api/pkg/pagination"
	"github.com/autoforge/dealership-api/pkg/utils"
)

// minRejectionReasonLen is the minimum length of a rejection reason
const minRejectionReasonLen = 10

// QuoteService handles the quote lifecycle. Every quote snapshots the
// vehicle base price at creation time and persists the derived final price
// alongside the raw adjustment set.
type QuoteService struct {
	quoteRepo    repository.QuoteRepository
	vehicleRepo  repository.VehicleRepository
	dealerRepo   repository.DealerRepository
	contractRepo repository.ContractRepository
}

// NewQuoteService creates a new quote service
func NewQuoteService(
	quoteRepo repository.QuoteRepository,
	vehicleRepo repository.VehicleRepository,
	dealerRepo repository.DealerRepository,
	contractRepo repository.ContractRepository,
) *QuoteService {
	return &QuoteService{
		quoteRepo:    quoteRepo,
		vehicleRepo:  vehicleRepo,
		dealerRepo:   dealerRepo,
		contractRepo: contractRepo,
	}
}

// QuoteAdjustmentsInput carries the raw pricing modifiers from the client.
// Amounts arrive as floats and are coerced by the engine.
type QuoteAdjustmentsInput struct {
	ReducedVAT         bool
	Discount           float64
	LicensePlateBonus  float64
	HasTradeIn         bool
	TradeInValue       float64
	TradeInBonus       float64
	TradeInHandlingFee float64
	SafetyKit          float64
	RoadPreparationFee *float64
	WarrantyTerm       string
	DepositAmount      float64
}

// Adjustments converts the raw input into the engine's value object,
// applying the road preparation default when the caller omits it.
func (in QuoteAdjustmentsInput) Adjustments() pricing.Adjustments {
	adj := pricing.NewAdjustments()
	adj.ReducedVAT = in.ReducedVAT
	adj.Discount = pricing.AmountFromFloat(in.Discount)
	adj.LicensePlateBonus = pricing.AmountFromFloat(in.LicensePlateBonus)
	adj.HasTradeIn = in.HasTradeIn
	adj.TradeInValue = pricing.AmountFromFloat(in.TradeInValue)
	adj.TradeInBonus = pricing.AmountFromFloat(in.TradeInBonus)
	adj.TradeInHandlingFee = pricing.AmountFromFloat(in.TradeInHandlingFee)
	adj.SafetyKit = pricing.AmountFromFloat(in.SafetyKit)
	if in.RoadPreparationFee != nil {
		adj.RoadPreparationFee = pricing.AmountFromFloat(*in.RoadPreparationFee)
	}
	adj.WarrantyTerm = enum.ParseWarrantyTerm(in.WarrantyTerm)
	adj.DepositAmount = pricing.AmountFromFloat(in.DepositAmount)
	return adj
}

// TradeInInput carries the descriptive fields of the trade-in vehicle
type TradeInInput struct {
	Brand   *string
	Model   *string
	Plate   *string
	Year    *int
	Mileage *int
}

// Record converts the input into the persisted form
func (in TradeInInput) Record() entity.TradeInRecord {
	return entity.TradeInRecord{
		Brand:   in.Brand,
		Model:   in.Model,
		Plate:   in.Plate,
		Year:    in.Year,
		Mileage: in.Mileage,
	}
}

// CreateQuoteInput represents the input for creating a quote
type CreateQuoteInput struct {
	UserID        uuid.UUID
	VehicleID     uuid.UUID
	DealerID      *uuid.UUID
	CustomerName  string
	CustomerPhone *string
	CustomerEmail *string
	Adjustments   QuoteAdjustmentsInput
	TradeIn       TradeInInput
	Note          *string
}

// CreateQuote creates a new quote. The vehicle base price is frozen into
// the quote and the final price derived through the engine. Creating a
// quote reserves an available vehicle.
func (s *QuoteService) CreateQuote(ctx context.Context, input *CreateQuoteInput) (*entity.Quote, error) {
	vehicle, err := s.vehicleRepo.GetByID(ctx, input.VehicleID)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, apperror.NewNotFoundError("Vehicle")
	}
	if vehicle.Status == enum.VehicleStatusSold {
		return nil, apperror.NewBadRequestError("Vehicle has already been sold")
	}

	if input.DealerID != nil {
		dealer, err := s.dealerRepo.GetByID(ctx, *input.DealerID)
		if err != nil {
			return nil, err
		}
		if dealer == nil {
			return nil, apperror.NewNotFoundError("Dealer")
		}
	}

	if strings.TrimSpace(input.CustomerName) == "" {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "customer_name", Message: "Customer name is required"},
		})
	}

	nextNum, err := s.quoteRepo.GetNextReferenceNumber(ctx)
	if err != nil {
		return nil, err
	}
	reference := utils.FormatReference("QT", int64(nextNum))

	adj := input.Adjustments.Adjustments()
	result := pricing.ComputeFinalPrice(vehicle.BasePrice, adj)

	quote := &entity.Quote{
		UserID:        input.UserID,
		VehicleID:     input.VehicleID,
		DealerID:      input.DealerID,
		Reference:     reference,
		CustomerName:  input.CustomerName,
		CustomerPhone: input.CustomerPhone,
		CustomerEmail: input.CustomerEmail,
		Price:         vehicle.BasePrice,
		AdjustmentSet: entity.AdjustmentSetFrom(adj),
		TradeIn:       input.TradeIn.Record(),
		FinalPrice:    result.FinalPrice,
		Status:        enum.QuoteStatusPending,
		Note:          input.Note,
	}

	if err := s.quoteRepo.Create(ctx, quote); err != nil {
		return nil, err
	}

	if vehicle.Status == enum.VehicleStatusAvailable {
		if err := s.vehicleRepo.UpdateStatus(ctx, vehicle.ID, enum.VehicleStatusReserved); err != nil {
			return nil, err
		}
	}

	return s.quoteRepo.GetWithRelations(ctx, quote.ID)
}

// GetQuote retrieves a quote with its vehicle, dealer and contract
func (s *QuoteService) GetQuote(ctx context.Context, id uuid.UUID) (*entity.Quote, error) {
	quote, err := s.quoteRepo.GetWithRelations(ctx, id)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, apperror.NewNotFoundError("Quote")
	}
	return quote, nil
}

// ListQuotesInput represents the input for listing quotes
type ListQuotesInput struct {
	Pagination *pagination.PaginationParams
	Search     string
	Status     *enum.QuoteStatus
	VehicleID  *uuid.UUID
	DealerID   *uuid.UUID
	SortBy     string
	SortOrder  string
}

// ListQuotes lists quotes with filtering
func (s *QuoteService) ListQuotes(ctx context.Context, input *ListQuotesInput) (*pagination.PaginatedResult[entity.Quote], error) {
	params := &repository.QuoteFilterParams{
		Pagination: input.Pagination,
		Search:     input.Search,
		Status:     input.Status,
		VehicleID:  input.VehicleID,
		DealerID:   input.DealerID,
		SortBy:     input.SortBy,
		SortOrder:  input.SortOrder,
	}

	quotes, total, err := s.quoteRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(input.Pagination.Page, input.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(quotes, pag), nil
}

// UpdateQuoteInput represents the input for updating a pending quote
type UpdateQuoteInput struct {
	ID            uuid.UUID
	CustomerName  string
	CustomerPhone *string
	CustomerEmail *string
	Adjustments   QuoteAdjustmentsInput
	TradeIn       TradeInInput
	Note          *string
}

// UpdateQuote updates a pending quote and recomputes the final price.
// Converted and rejected quotes are immutable.
func (s *QuoteService) UpdateQuote(ctx context.Context, input *UpdateQuoteInput) (*entity.Quote, error) {
	quote, err := s.quoteRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, apperror.NewNotFoundError("Quote")
	}
	if quote.Status != enum.QuoteStatusPending {
		return nil, apperror.NewBadRequestError("Only pending quotes can be updated")
	}

	adj := input.Adjustments.Adjustments()
	result := pricing.ComputeFinalPrice(quote.Price, adj)

	quote.CustomerName = input.CustomerName
	quote.CustomerPhone = input.CustomerPhone
	quote.CustomerEmail = input.CustomerEmail
	quote.AdjustmentSet = entity.AdjustmentSetFrom(adj)
	quote.TradeIn = input.TradeIn.Record()
	quote.FinalPrice = result.FinalPrice
	quote.Note = input.Note

	if err := s.quoteRepo.Update(ctx, quote); err != nil {
		return nil, err
	}

	return s.quoteRepo.GetWithRelations(ctx, quote.ID)
}

// RejectQuote moves a pending quote to rejected. The reason is mandatory
// and must carry enough detail to be useful later.
func (s *QuoteService) RejectQuote(ctx context.Context, id uuid.UUID, reason string) (*entity.Quote, error) {
	reason = strings.TrimSpace(reason)
	if len(reason) < minRejectionReasonLen {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "rejection_reason", Message: "Rejection reason must be at least 10 characters"},
		})
	}

	quote, err := s.quoteRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, apperror.NewNotFoundError("Quote")
	}
	if !quote.Status.CanTransitionTo(enum.QuoteStatusRejected) {
		return nil, apperror.NewBadRequestError("Quote cannot be rejected in its current state")
	}

	quote.Status = enum.QuoteStatusRejected
	quote.RejectionReason = &reason

	if err := s.quoteRepo.Update(ctx, quote); err != nil {
		return nil, err
	}

	// Release the vehicle if this was the reservation holding it
	vehicle, err := s.vehicleRepo.GetByID(ctx, quote.VehicleID)
	if err != nil {
		return nil, err
	}
	if vehicle != nil && vehicle.Status == enum.VehicleStatusReserved {
		if err := s.vehicleRepo.UpdateStatus(ctx, vehicle.ID, enum.VehicleStatusAvailable); err != nil {
			return nil, err
		}
	}

	return quote, nil
}

// RevertQuote moves a converted quote back to pending. The contract created
// by the conversion is detached (soft deleted, recoverable for audit) and
// the vehicle returns to reserved.
func (s *QuoteService) RevertQuote(ctx context.Context, id uuid.UUID) (*entity.Quote, error) {
	quote, err := s.quoteRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, apperror.NewNotFoundError("Quote")
	}
	if !quote.Status.CanTransitionTo(enum.QuoteStatusPending) {
		return nil, apperror.NewBadRequestError("Only converted quotes can be reverted")
	}

	contract, err := s.contractRepo.GetByQuoteID(ctx, quote.ID)
	if err != nil {
		return nil, err
	}
	if contract != nil {
		if err := s.contractRepo.Delete(ctx, contract.ID); err != nil {
			return nil, err
		}
	}

	quote.Status = enum.QuoteStatusPending

	if err := s.quoteRepo.Update(ctx, quote); err != nil {
		return nil, err
	}

	vehicle, err := s.vehicleRepo.GetByID(ctx, quote.VehicleID)
	if err != nil {
		return nil, err
	}
	if vehicle != nil && vehicle.Status == enum.VehicleStatusSold {
		if err := s.vehicleRepo.UpdateStatus(ctx, vehicle.ID, enum.VehicleStatusReserved); err != nil {
			return nil, err
		}
	}

	return quote, nil
}

// DeleteQuote removes a quote. Converted quotes must be reverted first.
func (s *QuoteService) DeleteQuote(ctx context.Context, id uuid.UUID) error {
	quote, err := s.quoteRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if quote == nil {
		return apperror.NewNotFoundError("Quote")
	}
	if quote.Status == enum.QuoteStatusConverted {
		return apperror.NewBadRequestError("Converted quotes cannot be deleted")
	}

	return s.quoteRepo.Delete(ctx, id)
}

// PreviewPrice derives the final price for a base price and adjustment set
// without persisting anything. Used by the quote editor for live totals.
func (s *QuoteService) PreviewPrice(basePrice float64, input QuoteAdjustmentsInput) pricing.Result {
	base := pricing.AmountFromFloat(basePrice)
	return pricing.ComputeFinalPrice(base, input.Adjustments())
}
