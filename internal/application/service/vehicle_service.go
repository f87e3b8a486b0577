package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/autoforge/dealership-api/internal/domain/entity"
	"github.com/autoforge/dealership-api/internal/domain/enum"
	"github.com/autoforge/dealership-api/internal/domain/repository"
	"github.com/autoforge/dealership-api/pkg/apperror"
	"github.com/autoforge/dealership-api/pkg/pagination"
)

// VehicleService handles inventory operations
type VehicleService struct {
	vehicleRepo repository.VehicleRepository
	dealerRepo  repository.DealerRepository
}

// NewVehicleService creates a new vehicle service
func NewVehicleService(vehicleRepo repository.VehicleRepository, dealerRepo repository.DealerRepository) *VehicleService {
	return &VehicleService{
		vehicleRepo: vehicleRepo,
		dealerRepo:  dealerRepo,
	}
}

// CreateVehicleInput represents the input for adding a vehicle to stock
type CreateVehicleInput struct {
	DealerID    *uuid.UUID
	VIN         string
	Make        string
	Model       string
	Trim        string
	Color       string
	Year        int
	Mileage     int
	BasePrice   decimal.Decimal
	Accessories []string
	Photo       *string
}

// CreateVehicle adds a vehicle to the inventory
func (s *VehicleService) CreateVehicle(ctx context.Context, input *CreateVehicleInput) (*entity.Vehicle, error) {
	existing, err := s.vehicleRepo.GetByVIN(ctx, input.VIN)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("A vehicle with this VIN already exists")
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

	if input.BasePrice.IsNegative() {
		return nil, apperror.NewBadRequestError("Base price cannot be negative")
	}

	vehicle := &entity.Vehicle{
		DealerID:    input.DealerID,
		VIN:         input.VIN,
		Make:        input.Make,
		Model:       input.Model,
		Trim:        input.Trim,
		Color:       input.Color,
		Year:        input.Year,
		Mileage:     input.Mileage,
		BasePrice:   input.BasePrice,
		Accessories: input.Accessories,
		Status:      enum.VehicleStatusAvailable,
		Photo:       input.Photo,
	}

	if err := s.vehicleRepo.Create(ctx, vehicle); err != nil {
		return nil, err
	}

	return vehicle, nil
}

// GetVehicle retrieves a vehicle by ID
func (s *VehicleService) GetVehicle(ctx context.Context, id uuid.UUID) (*entity.Vehicle, error) {
	vehicle, err := s.vehicleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, apperror.NewNotFoundError("Vehicle")
	}
	return vehicle, nil
}

// ListVehiclesInput represents the input for listing vehicles
type ListVehiclesInput struct {
	Pagination *pagination.PaginationParams
	Search     string
	Status     *enum.VehicleStatus
	DealerID   *uuid.UUID
}

// ListVehicles lists vehicles with filtering
func (s *VehicleService) ListVehicles(ctx context.Context, input *ListVehiclesInput) (*pagination.PaginatedResult[entity.Vehicle], error) {
	params := &repository.VehicleFilterParams{
		Pagination: input.Pagination,
		Search:     input.Search,
		Status:     input.Status,
		DealerID:   input.DealerID,
	}

	vehicles, total, err := s.vehicleRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(input.Pagination.Page, input.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(vehicles, pag), nil
}

// UpdateVehicleInput represents the input for updating a vehicle
type UpdateVehicleInput struct {
	ID          uuid.UUID
	DealerID    *uuid.UUID
	Make        string
	Model       string
	Trim        string
	Color       string
	Year        int
	Mileage     int
	BasePrice   decimal.Decimal
	Accessories []string
	Photo       *string
}

// UpdateVehicle updates an existing vehicle. The VIN is immutable.
func (s *VehicleService) UpdateVehicle(ctx context.Context, input *UpdateVehicleInput) (*entity.Vehicle, error) {
	vehicle, err := s.vehicleRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, apperror.NewNotFoundError("Vehicle")
	}

	if input.BasePrice.IsNegative() {
		return nil, apperror.NewBadRequestError("Base price cannot be negative")
	}

	vehicle.DealerID = input.DealerID
	vehicle.Make = input.Make
	vehicle.Model = input.Model
	vehicle.Trim = input.Trim
	vehicle.Color = input.Color
	vehicle.Year = input.Year
	vehicle.Mileage = input.Mileage
	vehicle.BasePrice = input.BasePrice
	vehicle.Accessories = input.Accessories
	vehicle.Photo = input.Photo

	if err := s.vehicleRepo.Update(ctx, vehicle); err != nil {
		return nil, err
	}

	return vehicle, nil
}

// UpdateVehicleStatus changes availability (available / reserved / sold)
func (s *VehicleService) UpdateVehicleStatus(ctx context.Context, id uuid.UUID, status enum.VehicleStatus) error {
	vehicle, err := s.vehicleRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if vehicle == nil {
		return apperror.NewNotFoundError("Vehicle")
	}

	return s.vehicleRepo.UpdateStatus(ctx, id, status)
}

// DeleteVehicle removes a vehicle from the inventory
func (s *VehicleService) DeleteVehicle(ctx context.Context, id uuid.UUID) error {
	vehicle, err := s.vehicleRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if vehicle == nil {
		return apperror.NewNotFoundError("Vehicle")
	}

	if vehicle.Status == enum.VehicleStatusSold {
		return apperror.NewBadRequestError("Sold vehicles cannot be deleted")
	}

	return s.vehicleRepo.Delete(ctx, id)
}
