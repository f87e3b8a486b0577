package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/autoforge/dealership-api/internal/domain/entity"
	domainRepo "github.com/autoforge/dealership-api/internal/domain/repository"
	"github.com/autoforge/dealership-api/pkg/pagination"
)

type contractRepository struct {
	db *gorm.DB
}

// NewContractRepository creates a new contract repository
func NewContractRepository(db *gorm.DB) domainRepo.ContractRepository {
	return &contractRepository{db: db}
}

func (r *contractRepository) Create(ctx context.Context, contract *entity.Contract) error {
	return r.db.WithContext(ctx).Create(contract).Error
}

func (r *contractRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Contract, error) {
	var contract entity.Contract
	err := r.db.WithContext(ctx).
		Preload("Quote").
		Preload("Quote.Vehicle").
		First(&contract, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &contract, err
}

func (r *contractRepository) GetByQuoteID(ctx context.Context, quoteID uuid.UUID) (*entity.Contract, error) {
	var contract entity.Contract
	err := r.db.WithContext(ctx).First(&contract, "quote_id = ?", quoteID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &contract, err
}

func (r *contractRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Contract{}, "id = ?", id).Error
}

func (r *contractRepository) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Contract, int64, error) {
	var contracts []entity.Contract
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Contract{})

	if search != "" {
		query = query.Where(
			"reference ILIKE ? OR contractor_last_name ILIKE ? OR contractor_company_name ILIKE ?",
			"%"+search+"%", "%"+search+"%", "%"+search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Preload("Quote").
		Order("created_at DESC").
		Find(&contracts).Error

	return contracts, total, err
}

func (r *contractRepository) GetNextReferenceNumber(ctx context.Context) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).Unscoped().Model(&entity.Contract{}).Count(&count).Error
	return int(count) + 1, err
}
