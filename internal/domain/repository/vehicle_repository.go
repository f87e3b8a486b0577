package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/autoforge/dealership-api/internal/domain/entity"
	"github.com/autoforge/dealership-api/internal/domain/enum"
	"github.com/autoforge/dealership-api/pkg/pagination"
)

// VehicleRepository defines the interface for vehicle data operations
type VehicleRepository interface {
	Create(ctx context.Context, vehicle *entity.Vehicle) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Vehicle, error)
	GetByVIN(ctx context.Context, vin string) (*entity.Vehicle, error)
	Update(ctx context.Context, vehicle *entity.Vehicle) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *VehicleFilterParams) ([]entity.Vehicle, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.VehicleStatus) error
}

// VehicleFilterParams contains filtering parameters for vehicle queries
type VehicleFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Status     *enum.VehicleStatus
	DealerID   *uuid.UUID
}
