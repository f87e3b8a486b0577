package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/autoforge/dealership-api/internal/domain/entity"
	"github.com/autoforge/dealership-api/internal/domain/enum"
	"github.com/autoforge/dealership-api/pkg/pagination"
)

// DefectReportRepository defines the interface for defect report operations
type DefectReportRepository interface {
	Create(ctx context.Context, report *entity.DefectReport) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.DefectReport, error)
	Update(ctx context.Context, report *entity.DefectReport) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *DefectReportFilterParams) ([]entity.DefectReport, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.DefectStatus) error
	AddAttachment(ctx context.Context, attachment *entity.DefectAttachment) error
}

// DefectReportFilterParams contains filtering parameters for defect report queries
type DefectReportFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Status     *enum.DefectStatus
	VehicleID  *uuid.UUID
}
