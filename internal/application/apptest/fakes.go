// Package apptest repositorios en memoria para los tests de casos de uso y handlers.
package apptest

import (
	"context"
	"sync"

	"github.com/jhoicas/ims-client/internal/domain"
	"github.com/jhoicas/ims-client/internal/domain/entity"
	"github.com/jhoicas/ims-client/internal/domain/repository"
)

// ── Auth ─────────────────────────────────────────────────────────────────────

type Auth struct {
	mu         sync.Mutex
	Token      string
	Profile    entity.Profile
	LoginErr   error
	ProfileErr error
	PINErr     error
	PINCalls   [][2]string
}

var _ repository.AuthRepository = (*Auth)(nil)

func (f *Auth) Login(_ context.Context, _ string) (*repository.LoginResult, error) {
	if f.LoginErr != nil {
		return nil, f.LoginErr
	}
	return &repository.LoginResult{Token: f.Token, Profile: f.Profile}, nil
}

func (f *Auth) GetProfile(_ context.Context) (*entity.Profile, error) {
	if f.ProfileErr != nil {
		return nil, f.ProfileErr
	}
	p := f.Profile
	return &p, nil
}

func (f *Auth) UpdateProfile(_ context.Context, in entity.Profile) (*entity.Profile, error) {
	if f.ProfileErr != nil {
		return nil, f.ProfileErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Profile.FullName = in.FullName
	f.Profile.Email = in.Email
	p := f.Profile
	return &p, nil
}

func (f *Auth) UpdatePIN(_ context.Context, current, next string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.PINCalls = append(f.PINCalls, [2]string{current, next})
	return f.PINErr
}

// ── Carpetas ─────────────────────────────────────────────────────────────────

type Categories struct {
	mu        sync.Mutex
	Items     []entity.Category
	ListErr   error
	DeleteErr map[string]error
	Created   []repository.CategoryInput
	Updated   map[string]repository.CategoryInput
	Deleted   []string
}

var _ repository.CategoryRepository = (*Categories)(nil)

func (f *Categories) List(_ context.Context) ([]entity.Category, error) {
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]entity.Category(nil), f.Items...), nil
}

func (f *Categories) GetByID(_ context.Context, id string) (*entity.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.Items {
		if c.ID == id {
			c := c
			return &c, nil
		}
	}
	return nil, nil
}

func (f *Categories) Create(_ context.Context, in repository.CategoryInput) (*entity.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Created = append(f.Created, in)
	c := entity.Category{ID: "new-folder", Name: in.Name, Description: in.Description}
	f.Items = append(f.Items, c)
	return &c, nil
}

func (f *Categories) Update(_ context.Context, id string, in repository.CategoryInput) (*entity.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Updated == nil {
		f.Updated = map[string]repository.CategoryInput{}
	}
	f.Updated[id] = in
	for i, c := range f.Items {
		if c.ID == id {
			f.Items[i].Name = in.Name
			f.Items[i].Description = in.Description
			out := f.Items[i]
			return &out, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *Categories) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.DeleteErr[id]; err != nil {
		return err
	}
	f.Deleted = append(f.Deleted, id)
	return nil
}

// ── Cajas ────────────────────────────────────────────────────────────────────

type Products struct {
	mu          sync.Mutex
	Items       []entity.Product
	ListErr     error
	StatsResult entity.ProductStats
	StatsErr    error
	DeleteErr   map[string]error
	Queries     []repository.ProductQuery
	Created     []repository.ProductInput
	Updated     map[string]repository.ProductInput
	Deleted     []string
}

var _ repository.ProductRepository = (*Products)(nil)

func (f *Products) List(_ context.Context, q repository.ProductQuery) ([]entity.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Queries = append(f.Queries, q)
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	return append([]entity.Product(nil), f.Items...), nil
}

func (f *Products) GetByID(_ context.Context, id string) (*entity.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.Items {
		if p.ID == id {
			p := p
			return &p, nil
		}
	}
	return nil, nil
}

func (f *Products) Create(_ context.Context, in repository.ProductInput) (*entity.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Created = append(f.Created, in)
	p := fromInput("new-box", in)
	f.Items = append(f.Items, p)
	return &p, nil
}

func (f *Products) Update(_ context.Context, id string, in repository.ProductInput) (*entity.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Updated == nil {
		f.Updated = map[string]repository.ProductInput{}
	}
	f.Updated[id] = in
	p := fromInput(id, in)
	return &p, nil
}

func (f *Products) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.DeleteErr[id]; err != nil {
		return err
	}
	f.Deleted = append(f.Deleted, id)
	return nil
}

func (f *Products) Stats(_ context.Context) (*entity.ProductStats, error) {
	if f.StatsErr != nil {
		return nil, f.StatsErr
	}
	s := f.StatsResult
	return &s, nil
}

func fromInput(id string, in repository.ProductInput) entity.Product {
	return entity.Product{
		ID:         id,
		Name:       in.Name,
		SKU:        in.SKU,
		Category:   entity.CategoryRef{ID: in.CategoryID},
		TotalStock: in.TotalStock,
		Sold:       in.Sold,
		Returned:   in.Returned,
		Stock:      in.TotalStock - in.Sold + in.Returned,
		Price:      in.Price,
	}
}

// ── Ventas ───────────────────────────────────────────────────────────────────

type Sales struct {
	mu        sync.Mutex
	Items     []entity.Sale
	ListErr   error
	DeleteErr map[string]error
	Queries   []repository.SaleQuery
	Statuses  map[string]string
	Deleted   []string
}

var _ repository.SaleRepository = (*Sales)(nil)

func (f *Sales) List(_ context.Context, q repository.SaleQuery) ([]entity.Sale, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Queries = append(f.Queries, q)
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	return append([]entity.Sale(nil), f.Items...), nil
}

func (f *Sales) GetByID(_ context.Context, id string) (*entity.Sale, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, s := range f.Items {
		if s.ID == id {
			s := s
			return &s, nil
		}
	}
	return nil, nil
}

func (f *Sales) UpdateStatus(_ context.Context, id, status string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Statuses == nil {
		f.Statuses = map[string]string{}
	}
	f.Statuses[id] = status
	return nil
}

func (f *Sales) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.DeleteErr[id]; err != nil {
		return err
	}
	f.Deleted = append(f.Deleted, id)
	return nil
}

// ── Devoluciones ─────────────────────────────────────────────────────────────

type Returns struct {
	mu       sync.Mutex
	Products []entity.Product
	ListErr  error
	Keywords []string
	Created  []entity.ReturnRequest
}

var _ repository.ReturnRepository = (*Returns)(nil)

func (f *Returns) ListProducts(_ context.Context, keyword string, _ int) ([]entity.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Keywords = append(f.Keywords, keyword)
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	return append([]entity.Product(nil), f.Products...), nil
}

func (f *Returns) Create(_ context.Context, in entity.ReturnRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Created = append(f.Created, in)
	return nil
}

func (f *Returns) Stats(_ context.Context) (*entity.ReturnStats, error) {
	return &entity.ReturnStats{}, nil
}
