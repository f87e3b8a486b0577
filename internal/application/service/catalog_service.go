package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/autoforge/dealership-api/internal/domain/entity"
	"github.com/autoforge/dealership-api/internal/domain/enum"
	"github.com/autoforge/dealership-api/internal/domain/repository"
	"github.com/autoforge/dealership-api/pkg/apperror"
)

// catalogCacheTTL is how long a catalog listing stays fresh
const catalogCacheTTL = 5 * time.Minute

type catalogCacheEntry struct {
	items     []entity.CatalogItem
	fetchedAt time.Time
}

// CatalogService serves the settings catalogs (accessories, models, trims,
// colors). Reads go through a TTL cache since the pick lists change rarely
// but are loaded on every quote screen.
type CatalogService struct {
	catalogRepo repository.CatalogRepository

	mu    sync.RWMutex
	cache map[enum.CatalogKind]catalogCacheEntry
	ttl   time.Duration
}

// NewCatalogService creates a new catalog service
func NewCatalogService(catalogRepo repository.CatalogRepository) *CatalogService {
	return &CatalogService{
		catalogRepo: catalogRepo,
		cache:       make(map[enum.CatalogKind]catalogCacheEntry),
		ttl:         catalogCacheTTL,
	}
}

// ListByKind returns the catalog entries of one kind, cached
func (s *CatalogService) ListByKind(ctx context.Context, kind enum.CatalogKind) ([]entity.CatalogItem, error) {
	if !kind.IsValid() {
		return nil, apperror.NewBadRequestError("Unknown catalog kind")
	}

	s.mu.RLock()
	entry, ok := s.cache[kind]
	s.mu.RUnlock()

	if ok && time.Since(entry.fetchedAt) < s.ttl {
		return entry.items, nil
	}

	items, err := s.catalogRepo.ListByKind(ctx, kind)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.cache[kind] = catalogCacheEntry{items: items, fetchedAt: time.Now()}
	s.mu.Unlock()

	return items, nil
}

// ListAll returns every catalog keyed by kind
func (s *CatalogService) ListAll(ctx context.Context) (map[enum.CatalogKind][]entity.CatalogItem, error) {
	result := make(map[enum.CatalogKind][]entity.CatalogItem, len(enum.Kinds()))
	for _, kind := range enum.Kinds() {
		items, err := s.ListByKind(ctx, kind)
		if err != nil {
			return nil, err
		}
		result[kind] = items
	}
	return result, nil
}

// CatalogItemInput represents the input for creating or updating an entry
type CatalogItemInput struct {
	Kind     enum.CatalogKind
	Label    string
	Position int
	Active   bool
}

// CreateItem adds a catalog entry and invalidates the kind's cache
func (s *CatalogService) CreateItem(ctx context.Context, input *CatalogItemInput) (*entity.CatalogItem, error) {
	if !input.Kind.IsValid() {
		return nil, apperror.NewBadRequestError("Unknown catalog kind")
	}

	item := &entity.CatalogItem{
		Kind:     input.Kind,
		Label:    input.Label,
		Position: input.Position,
		Active:   input.Active,
	}

	if err := s.catalogRepo.Create(ctx, item); err != nil {
		return nil, err
	}

	s.invalidate(input.Kind)
	return item, nil
}

// UpdateItem updates a catalog entry and invalidates the kind's cache
func (s *CatalogService) UpdateItem(ctx context.Context, id uuid.UUID, input *CatalogItemInput) (*entity.CatalogItem, error) {
	item, err := s.catalogRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Catalog item")
	}

	oldKind := item.Kind
	item.Kind = input.Kind
	item.Label = input.Label
	item.Position = input.Position
	item.Active = input.Active

	if err := s.catalogRepo.Update(ctx, item); err != nil {
		return nil, err
	}

	s.invalidate(oldKind)
	if input.Kind != oldKind {
		s.invalidate(input.Kind)
	}
	return item, nil
}

// DeleteItem removes a catalog entry and invalidates the kind's cache
func (s *CatalogService) DeleteItem(ctx context.Context, id uuid.UUID) error {
	item, err := s.catalogRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if item == nil {
		return apperror.NewNotFoundError("Catalog item")
	}

	if err := s.catalogRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidate(item.Kind)
	return nil
}

func (s *CatalogService) invalidate(kind enum.CatalogKind) {
	s.mu.Lock()
	delete(s.cache, kind)
	s.mu.Unlock()
}
