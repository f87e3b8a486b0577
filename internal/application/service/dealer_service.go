package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/autoforge/dealership-api/internal/domain/entity"
	"github.com/autoforge/dealership-api/internal/domain/repository"
	"github.com/autoforge/dealership-api/pkg/apperror"
	"github.com/autoforge/dealership-api/pkg/pagination"
)

// DealerService handles dealership location operations
type DealerService struct {
	dealerRepo repository.DealerRepository
}

// NewDealerService creates a new dealer service
func NewDealerService(dealerRepo repository.DealerRepository) *DealerService {
	return &DealerService{dealerRepo: dealerRepo}
}

// DealerInput represents the input for creating or updating a dealer
type DealerInput struct {
	Code       string
	Name       string
	Address    *string
	City       *string
	Province   *string
	PostalCode *string
	Phone      *string
	Email      *string
}

// CreateDealer registers a new dealership location
func (s *DealerService) CreateDealer(ctx context.Context, input *DealerInput) (*entity.Dealer, error) {
	existing, err := s.dealerRepo.GetByCode(ctx, input.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("A dealer with this code already exists")
	}

	dealer := &entity.Dealer{
		Code:       input.Code,
		Name:       input.Name,
		Address:    input.Address,
		City:       input.City,
		Province:   input.Province,
		PostalCode: input.PostalCode,
		Phone:      input.Phone,
		Email:      input.Email,
	}

	if err := s.dealerRepo.Create(ctx, dealer); err != nil {
		return nil, err
	}

	return dealer, nil
}

// GetDealer retrieves a dealer by ID
func (s *DealerService) GetDealer(ctx context.Context, id uuid.UUID) (*entity.Dealer, error) {
	dealer, err := s.dealerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if dealer == nil {
		return nil, apperror.NewNotFoundError("Dealer")
	}
	return dealer, nil
}

// ListDealers lists dealers with pagination and search
func (s *DealerService) ListDealers(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Dealer], error) {
	dealers, total, err := s.dealerRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(dealers, pag), nil
}

// UpdateDealer updates an existing dealer
func (s *DealerService) UpdateDealer(ctx context.Context, id uuid.UUID, input *DealerInput) (*entity.Dealer, error) {
	dealer, err := s.dealerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if dealer == nil {
		return nil, apperror.NewNotFoundError("Dealer")
	}

	if input.Code != dealer.Code {
		existing, err := s.dealerRepo.GetByCode(ctx, input.Code)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperror.NewConflictError("A dealer with this code already exists")
		}
	}

	dealer.Code = input.Code
	dealer.Name = input.Name
	dealer.Address = input.Address
	dealer.City = input.City
	dealer.Province = input.Province
	dealer.PostalCode = input.PostalCode
	dealer.Phone = input.Phone
	dealer.Email = input.Email

	if err := s.dealerRepo.Update(ctx, dealer); err != nil {
		return nil, err
	}

	return dealer, nil
}

// DeleteDealer removes a dealer
func (s *DealerService) DeleteDealer(ctx context.Context, id uuid.UUID) error {
	dealer, err := s.dealerRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if dealer == nil {
		return apperror.NewNotFoundError("Dealer")
	}

	return s.dealerRepo.Delete(ctx, id)
}
