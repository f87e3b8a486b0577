package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/autoforge/dealership-api/internal/domain/entity"
	"github.com/autoforge/dealership-api/pkg/pagination"
)

// DealerRepository defines the interface for dealer data operations
type DealerRepository interface {
	Create(ctx context.Context, dealer *entity.Dealer) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Dealer, error)
	GetByCode(ctx context.Context, code string) (*entity.Dealer, error)
	Update(ctx context.Context, dealer *entity.Dealer) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Dealer, int64, error)
}
