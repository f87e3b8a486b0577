package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/autoforge/dealership-api/internal/domain/entity"
	"github.com/autoforge/dealership-api/internal/domain/enum"
	domainRepo "github.com/autoforge/dealership-api/internal/domain/repository"
)

type defectReportRepository struct {
	db *gorm.DB
}

// NewDefectReportRepository creates a new defect report repository
func NewDefectReportRepository(db *gorm.DB) domainRepo.DefectReportRepository {
	return &defectReportRepository{db: db}
}

func (r *defectReportRepository) Create(ctx context.Context, report *entity.DefectReport) error {
	return r.db.WithContext(ctx).Create(report).Error
}

func (r *defectReportRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.DefectReport, error) {
	var report entity.DefectReport
	err := r.db.WithContext(ctx).
		Preload("Vehicle").
		Preload("Attachments").
		First(&report, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &report, err
}

func (r *defectReportRepository) Update(ctx context.Context, report *entity.DefectReport) error {
	return r.db.WithContext(ctx).Save(report).Error
}

func (r *defectReportRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.DefectReport{}, "id = ?", id).Error
}

func (r *defectReportRepository) List(ctx context.Context, params *domainRepo.DefectReportFilterParams) ([]entity.DefectReport, int64, error) {
	var reports []entity.DefectReport
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.DefectReport{})

	if params.Search != "" {
		query = query.Where("title ILIKE ? OR description ILIKE ?",
			"%"+params.Search+"%", "%"+params.Search+"%")
	}

	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}

	if params.VehicleID != nil {
		query = query.Where("vehicle_id = ?", *params.VehicleID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Vehicle").
		Preload("Attachments").
		Order("created_at DESC").
		Find(&reports).Error

	return reports, total, err
}

func (r *defectReportRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.DefectStatus) error {
	return r.db.WithContext(ctx).Model(&entity.DefectReport{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *defectReportRepository) AddAttachment(ctx context.Context, attachment *entity.DefectAttachment) error {
	return r.db.WithContext(ctx).Create(attachment).Error
}
