package service

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/autoforge/dealership-api/internal/domain/entity"
	"github.com/autoforge/dealership-api/internal/domain/enum"
	"github.com/autoforge/dealership-api/internal/domain/pricing"
	"github.com/autoforge/dealership-api/internal/domain/repository"
	"github.com/autoforge/dealership-api/pkg/apperror"
	"github.com/autoforge/dealership-api/pkg/email"
	"github.com/autoforge/dealership-api/pkg/pagination"
	"github.com/autoforge/dealership-api/pkg/utils"
)

// Notifier sends customer-facing notifications. Satisfied by the email
// service; nil disables notifications.
type Notifier interface {
	SendContractConfirmation(toEmail string, data email.ContractConfirmation) error
}

// ContractService handles quote-to-contract conversion and contract queries
type ContractService struct {
	contractRepo repository.ContractRepository
	quoteRepo    repository.QuoteRepository
	vehicleRepo  repository.VehicleRepository
	notifier     Notifier
}

// NewContractService creates a new contract service
func NewContractService(
	contractRepo repository.ContractRepository,
	quoteRepo repository.QuoteRepository,
	vehicleRepo repository.VehicleRepository,
	notifier Notifier,
) *ContractService {
	return &ContractService{
		contractRepo: contractRepo,
		quoteRepo:    quoteRepo,
		vehicleRepo:  vehicleRepo,
		notifier:     notifier,
	}
}

// ContractorInput carries the contractor data submitted on conversion
type ContractorInput struct {
	Type enum.ContractorType

	// Natural person variant
	FirstName  *string
	LastName   *string
	FiscalCode *string
	BirthDate  *string
	BirthPlace *string

	// Legal entity variant
	CompanyName              *string
	VATNumber                *string
	RepresentativeFiscalCode *string
	RepresentativeBirthDate  *string
	RepresentativeBirthPlace *string

	// Shared mandatory set
	Address    string
	City       string
	Province   string
	PostalCode string
	Phone      string
	Email      string
}

// Record converts the input into its persisted form
func (in ContractorInput) Record() entity.ContractorRecord {
	return entity.ContractorRecord{
		Type:                     in.Type,
		FirstName:                in.FirstName,
		LastName:                 in.LastName,
		FiscalCode:               in.FiscalCode,
		BirthDate:                in.BirthDate,
		BirthPlace:               in.BirthPlace,
		CompanyName:              in.CompanyName,
		VATNumber:                in.VATNumber,
		RepresentativeFiscalCode: in.RepresentativeFiscalCode,
		RepresentativeBirthDate:  in.RepresentativeBirthDate,
		RepresentativeBirthPlace: in.RepresentativeBirthPlace,
		Address:                  in.Address,
		City:                     in.City,
		Province:                 in.Province,
		PostalCode:               in.PostalCode,
		Phone:                    in.Phone,
		Email:                    in.Email,
	}
}

// ConvertQuoteInput represents the input for converting a quote
type ConvertQuoteInput struct {
	QuoteID        uuid.UUID
	UserID         uuid.UUID
	Contractor     ContractorInput
	DeliveryDays   int
	SpecialClauses *string
}

// ConvertQuote turns a pending quote into a purchase contract. The quote's
// adjustment set and derived final price are snapshotted into the contract;
// trade-in and contractor data must be complete at this point.
func (s *ContractService) ConvertQuote(ctx context.Context, input *ConvertQuoteInput) (*entity.Contract, error) {
	quote, err := s.quoteRepo.GetByID(ctx, input.QuoteID)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, apperror.NewNotFoundError("Quote")
	}
	if !quote.Status.CanTransitionTo(enum.QuoteStatusConverted) {
		return nil, apperror.NewBadRequestError("Only pending quotes can be converted")
	}

	adj := quote.AdjustmentSet.Pricing()

	var fieldErrors []apperror.FieldError
	if res := pricing.ValidateTradeIn(adj, quote.TradeIn.Pricing()); !res.OK {
		for _, f := range res.MissingFields {
			fieldErrors = append(fieldErrors, apperror.FieldError{Field: f, Message: "This field is required"})
		}
	}

	record := input.Contractor.Record()
	if res := pricing.ValidateContractor(record.Union()); !res.OK {
		for _, f := range res.MissingFields {
			fieldErrors = append(fieldErrors, apperror.FieldError{Field: f, Message: "This field is required"})
		}
	}
	if len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	nextNum, err := s.contractRepo.GetNextReferenceNumber(ctx)
	if err != nil {
		return nil, err
	}
	reference := utils.FormatReference("CT", int64(nextNum))

	// Recompute from the snapshotted inputs so the persisted final price
	// provably matches the adjustment set written into the contract
	result := pricing.ComputeFinalPrice(quote.Price, adj)

	contract := &entity.Contract{
		QuoteID:        quote.ID,
		UserID:         input.UserID,
		Reference:      reference,
		Contractor:     record,
		BasePrice:      quote.Price,
		AdjustmentSet:  quote.AdjustmentSet,
		TradeIn:        quote.TradeIn,
		FinalPrice:     result.FinalPrice,
		DeliveryDays:   input.DeliveryDays,
		SpecialClauses: input.SpecialClauses,
	}

	if err := s.contractRepo.Create(ctx, contract); err != nil {
		return nil, err
	}

	quote.Status = enum.QuoteStatusConverted
	quote.FinalPrice = result.FinalPrice
	if err := s.quoteRepo.Update(ctx, quote); err != nil {
		return nil, err
	}

	if err := s.vehicleRepo.UpdateStatus(ctx, quote.VehicleID, enum.VehicleStatusSold); err != nil {
		return nil, err
	}

	s.notifyConversion(ctx, quote, contract)

	return contract, nil
}

// notifyConversion sends the confirmation email when the customer left an
// address. Failures are logged, never surfaced: the contract is already
// committed.
func (s *ContractService) notifyConversion(ctx context.Context, quote *entity.Quote, contract *entity.Contract) {
	if s.notifier == nil || quote.CustomerEmail == nil || *quote.CustomerEmail == "" {
		return
	}

	vehicleLabel := ""
	if vehicle, err := s.vehicleRepo.GetByID(ctx, quote.VehicleID); err == nil && vehicle != nil {
		vehicleLabel = fmt.Sprintf("%s %s %s", vehicle.Make, vehicle.Model, vehicle.Trim)
	}

	err := s.notifier.SendContractConfirmation(*quote.CustomerEmail, email.ContractConfirmation{
		CustomerName: quote.CustomerName,
		Reference:    contract.Reference,
		Vehicle:      vehicleLabel,
		FinalPrice:   contract.FinalPrice.StringFixed(2),
		DeliveryDays: contract.DeliveryDays,
	})
	if err != nil {
		log.Printf("contract %s: confirmation email failed: %v", contract.Reference, err)
	}
}

// GetContract retrieves a contract by ID
func (s *ContractService) GetContract(ctx context.Context, id uuid.UUID) (*entity.Contract, error) {
	contract, err := s.contractRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if contract == nil {
		return nil, apperror.NewNotFoundError("Contract")
	}
	return contract, nil
}

// GetContractByQuote retrieves the contract created from a quote
func (s *ContractService) GetContractByQuote(ctx context.Context, quoteID uuid.UUID) (*entity.Contract, error) {
	contract, err := s.contractRepo.GetByQuoteID(ctx, quoteID)
	if err != nil {
		return nil, err
	}
	if contract == nil {
		return nil, apperror.NewNotFoundError("Contract")
	}
	return contract, nil
}

// ListContracts lists contracts with pagination and search
func (s *ContractService) ListContracts(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Contract], error) {
	contracts, total, err := s.contractRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(contracts, pag), nil
}

// DeleteContract removes a contract. Admin only; the route enforces the role.
func (s *ContractService) DeleteContract(ctx context.Context, id uuid.UUID) error {
	contract, err := s.contractRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if contract == nil {
		return apperror.NewNotFoundError("Contract")
	}

	return s.contractRepo.Delete(ctx, id)
}
