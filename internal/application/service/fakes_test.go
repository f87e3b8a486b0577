package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/autoforge/dealership-api/internal/domain/entity"
	"github.com/autoforge/dealership-api/internal/domain/enum"
	"github.com/autoforge/dealership-api/internal/domain/repository"
	"github.com/autoforge/dealership-api/pkg/email"
	"github.com/autoforge/dealership-api/pkg/pagination"
)

// In-memory repository fakes used across the service tests.

var testUserID = uuid.New()

func entityUserID() uuid.UUID {
	return testUserID
}

type fakeVehicleRepo struct {
	vehicles map[uuid.UUID]*entity.Vehicle
}

func newFakeVehicleRepo() *fakeVehicleRepo {
	return &fakeVehicleRepo{vehicles: make(map[uuid.UUID]*entity.Vehicle)}
}

func (r *fakeVehicleRepo) Create(ctx context.Context, v *entity.Vehicle) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	cp := *v
	r.vehicles[v.ID] = &cp
	return nil
}

func (r *fakeVehicleRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Vehicle, error) {
	v, ok := r.vehicles[id]
	if !ok {
		return nil, nil
	}
	cp := *v
	return &cp, nil
}

func (r *fakeVehicleRepo) GetByVIN(ctx context.Context, vin string) (*entity.Vehicle, error) {
	for _, v := range r.vehicles {
		if v.VIN == vin {
			cp := *v
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeVehicleRepo) Update(ctx context.Context, v *entity.Vehicle) error {
	cp := *v
	r.vehicles[v.ID] = &cp
	return nil
}

func (r *fakeVehicleRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.vehicles, id)
	return nil
}

func (r *fakeVehicleRepo) List(ctx context.Context, params *repository.VehicleFilterParams) ([]entity.Vehicle, int64, error) {
	var out []entity.Vehicle
	for _, v := range r.vehicles {
		out = append(out, *v)
	}
	return out, int64(len(out)), nil
}

func (r *fakeVehicleRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.VehicleStatus) error {
	if v, ok := r.vehicles[id]; ok {
		v.Status = status
	}
	return nil
}

type fakeDealerRepo struct {
	dealers map[uuid.UUID]*entity.Dealer
}

func newFakeDealerRepo() *fakeDealerRepo {
	return &fakeDealerRepo{dealers: make(map[uuid.UUID]*entity.Dealer)}
}

func (r *fakeDealerRepo) Create(ctx context.Context, d *entity.Dealer) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	cp := *d
	r.dealers[d.ID] = &cp
	return nil
}

func (r *fakeDealerRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Dealer, error) {
	d, ok := r.dealers[id]
	if !ok {
		return nil, nil
	}
	cp := *d
	return &cp, nil
}

func (r *fakeDealerRepo) GetByCode(ctx context.Context, code string) (*entity.Dealer, error) {
	for _, d := range r.dealers {
		if d.Code == code {
			cp := *d
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeDealerRepo) Update(ctx context.Context, d *entity.Dealer) error {
	cp := *d
	r.dealers[d.ID] = &cp
	return nil
}

func (r *fakeDealerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.dealers, id)
	return nil
}

func (r *fakeDealerRepo) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Dealer, int64, error) {
	var out []entity.Dealer
	for _, d := range r.dealers {
		out = append(out, *d)
	}
	return out, int64(len(out)), nil
}

type fakeQuoteRepo struct {
	quotes  map[uuid.UUID]*entity.Quote
	nextRef int
}

func newFakeQuoteRepo() *fakeQuoteRepo {
	return &fakeQuoteRepo{quotes: make(map[uuid.UUID]*entity.Quote), nextRef: 1}
}

func (r *fakeQuoteRepo) Create(ctx context.Context, q *entity.Quote) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	cp := *q
	r.quotes[q.ID] = &cp
	return nil
}

func (r *fakeQuoteRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Quote, error) {
	q, ok := r.quotes[id]
	if !ok {
		return nil, nil
	}
	cp := *q
	return &cp, nil
}

func (r *fakeQuoteRepo) GetWithRelations(ctx context.Context, id uuid.UUID) (*entity.Quote, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeQuoteRepo) Update(ctx context.Context, q *entity.Quote) error {
	cp := *q
	r.quotes[q.ID] = &cp
	return nil
}

func (r *fakeQuoteRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.quotes, id)
	return nil
}

func (r *fakeQuoteRepo) List(ctx context.Context, params *repository.QuoteFilterParams) ([]entity.Quote, int64, error) {
	var out []entity.Quote
	for _, q := range r.quotes {
		out = append(out, *q)
	}
	return out, int64(len(out)), nil
}

func (r *fakeQuoteRepo) GetNextReferenceNumber(ctx context.Context) (int, error) {
	n := r.nextRef
	r.nextRef++
	return n, nil
}

type fakeContractRepo struct {
	contracts map[uuid.UUID]*entity.Contract
	deleted   map[uuid.UUID]*entity.Contract
	nextRef   int
}

func newFakeContractRepo() *fakeContractRepo {
	return &fakeContractRepo{
		contracts: make(map[uuid.UUID]*entity.Contract),
		deleted:   make(map[uuid.UUID]*entity.Contract),
		nextRef:   1,
	}
}

func (r *fakeContractRepo) Create(ctx context.Context, c *entity.Contract) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	cp := *c
	r.contracts[c.ID] = &cp
	return nil
}

func (r *fakeContractRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Contract, error) {
	c, ok := r.contracts[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeContractRepo) GetByQuoteID(ctx context.Context, quoteID uuid.UUID) (*entity.Contract, error) {
	for _, c := range r.contracts {
		if c.QuoteID == quoteID {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeContractRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if c, ok := r.contracts[id]; ok {
		r.deleted[id] = c
		delete(r.contracts, id)
	}
	return nil
}

func (r *fakeContractRepo) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Contract, int64, error) {
	var out []entity.Contract
	for _, c := range r.contracts {
		out = append(out, *c)
	}
	return out, int64(len(out)), nil
}

func (r *fakeContractRepo) GetNextReferenceNumber(ctx context.Context) (int, error) {
	n := r.nextRef
	r.nextRef++
	return n, nil
}

type fakeCatalogRepo struct {
	items     map[uuid.UUID]*entity.CatalogItem
	listCalls int
}

func newFakeCatalogRepo() *fakeCatalogRepo {
	return &fakeCatalogRepo{items: make(map[uuid.UUID]*entity.CatalogItem)}
}

func (r *fakeCatalogRepo) Create(ctx context.Context, item *entity.CatalogItem) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *fakeCatalogRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.CatalogItem, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *item
	return &cp, nil
}

func (r *fakeCatalogRepo) Update(ctx context.Context, item *entity.CatalogItem) error {
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *fakeCatalogRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.items, id)
	return nil
}

func (r *fakeCatalogRepo) ListByKind(ctx context.Context, kind enum.CatalogKind) ([]entity.CatalogItem, error) {
	r.listCalls++
	var out []entity.CatalogItem
	for _, item := range r.items {
		if item.Kind == kind {
			out = append(out, *item)
		}
	}
	return out, nil
}

type fakeNotifier struct {
	sent []email.ContractConfirmation
}

func (n *fakeNotifier) SendContractConfirmation(toEmail string, data email.ContractConfirmation) error {
	n.sent = append(n.sent, data)
	return nil
}
