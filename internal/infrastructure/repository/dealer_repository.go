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

type dealerRepository struct {
	db *gorm.DB
}

// NewDealerRepository creates a new dealer repository
func NewDealerRepository(db *gorm.DB) domainRepo.DealerRepository {
	return &dealerRepository{db: db}
}

func (r *dealerRepository) Create(ctx context.Context, dealer *entity.Dealer) error {
	return r.db.WithContext(ctx).Create(dealer).Error
}

func (r *dealerRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Dealer, error) {
	var dealer entity.Dealer
	err := r.db.WithContext(ctx).First(&dealer, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &dealer, err
}

func (r *dealerRepository) GetByCode(ctx context.Context, code string) (*entity.Dealer, error) {
	var dealer entity.Dealer
	err := r.db.WithContext(ctx).First(&dealer, "code = ?", code).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &dealer, err
}

func (r *dealerRepository) Update(ctx context.Context, dealer *entity.Dealer) error {
	return r.db.WithContext(ctx).Save(dealer).Error
}

func (r *dealerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Dealer{}, "id = ?", id).Error
}

func (r *dealerRepository) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Dealer, int64, error) {
	var dealers []entity.Dealer
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Dealer{})

	if search != "" {
		query = query.Where("name ILIKE ? OR code ILIKE ? OR city ILIKE ?",
			"%"+search+"%", "%"+search+"%", "%"+search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("name ASC").
		Find(&dealers).Error

	return dealers, total, err
}
