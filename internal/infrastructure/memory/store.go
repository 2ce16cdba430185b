// Package memory implementa el almacén de inventario en memoria (STORE_DRIVER=memory y tests).
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/jhoicas/gemstone-api/internal/application/sales"
	"github.com/jhoicas/gemstone-api/internal/domain"
	"github.com/jhoicas/gemstone-api/internal/domain/entity"
	"github.com/jhoicas/gemstone-api/internal/domain/repository"
)

var (
	_ repository.GemstoneRepository = (*GemstoneRepo)(nil)
	_ repository.SaleRepository     = (*SaleRepo)(nil)
	_ sales.TxRunner                = (*Store)(nil)
)

// Store guarda lotes y ventas. Una transacción toma el lock completo del almacén,
// así que las ventas quedan serializadas y el Rollback restaura una copia previa.
type Store struct {
	mu    sync.Mutex
	gems  map[string]entity.Gemstone
	sales map[string]entity.Sale
}

// New crea un almacén vacío.
func New() *Store {
	return &Store{
		gems:  map[string]entity.Gemstone{},
		sales: map[string]entity.Sale{},
	}
}

// Gemstones repositorio de lotes fuera de transacción.
func (s *Store) Gemstones() *GemstoneRepo { return &GemstoneRepo{s: s} }

// Sales repositorio de ventas fuera de transacción.
func (s *Store) Sales() *SaleRepo { return &SaleRepo{s: s} }

// RunSale ejecuta fn con el almacén bloqueado; si fn falla se restaura el estado previo.
func (s *Store) RunSale(ctx context.Context, fn func(
	gemRepo repository.GemstoneRepository,
	saleRepo repository.SaleRepository,
) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	gemsBefore := make(map[string]entity.Gemstone, len(s.gems))
	for k, v := range s.gems {
		gemsBefore[k] = v
	}
	salesBefore := make(map[string]entity.Sale, len(s.sales))
	for k, v := range s.sales {
		salesBefore[k] = v
	}

	if err := fn(&GemstoneRepo{s: s, inTx: true}, &SaleRepo{s: s, inTx: true}); err != nil {
		s.gems = gemsBefore
		s.sales = salesBefore
		return err
	}
	return nil
}

func (s *Store) lock(inTx bool) func() {
	if inTx {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

// ── Gemstones ─────────────────────────────────────────────────────────────────

// GemstoneRepo implementación en memoria de GemstoneRepository.
type GemstoneRepo struct {
	s    *Store
	inTx bool
}

func (r *GemstoneRepo) Create(_ context.Context, gem *entity.Gemstone) error {
	defer r.s.lock(r.inTx)()
	if gem.CreatedAt.IsZero() {
		gem.CreatedAt = time.Now()
	}
	r.s.gems[gem.ID] = *gem
	return nil
}

func (r *GemstoneRepo) GetByID(_ context.Context, id string) (*entity.Gemstone, error) {
	defer r.s.lock(r.inTx)()
	g, ok := r.s.gems[id]
	if !ok {
		return nil, nil
	}
	return &g, nil
}

// GetForUpdate equivale a GetByID: dentro de RunSale el almacén ya está bloqueado.
func (r *GemstoneRepo) GetForUpdate(ctx context.Context, id string) (*entity.Gemstone, error) {
	return r.GetByID(ctx, id)
}

func (r *GemstoneRepo) List(_ context.Context) ([]*entity.Gemstone, error) {
	defer r.s.lock(r.inTx)()
	return r.s.sortedGems(func(entity.Gemstone) bool { return true }), nil
}

func (r *GemstoneRepo) Search(_ context.Context, term string) ([]*entity.Gemstone, error) {
	defer r.s.lock(r.inTx)()
	term = strings.ToLower(strings.TrimSpace(term))
	return r.s.sortedGems(func(g entity.Gemstone) bool {
		return strings.Contains(strings.ToLower(g.Name), term) ||
			strings.Contains(strings.ToLower(g.Code), term) ||
			strings.Contains(strings.ToLower(g.Shape), term) ||
			strings.Contains(g.Weight.String(), term)
	}), nil
}

func (r *GemstoneRepo) Update(_ context.Context, gem *entity.Gemstone) error {
	defer r.s.lock(r.inTx)()
	current, ok := r.s.gems[gem.ID]
	if !ok {
		return domain.ErrNotFound
	}
	gem.CreatedAt = current.CreatedAt
	r.s.gems[gem.ID] = *gem
	return nil
}

func (r *GemstoneRepo) UpdateStock(_ context.Context, gem *entity.Gemstone) error {
	defer r.s.lock(r.inTx)()
	current, ok := r.s.gems[gem.ID]
	if !ok {
		return domain.ErrNotFound
	}
	current.Weight = gem.Weight
	current.Quantity = gem.Quantity
	current.TotalPrice = gem.TotalPrice
	r.s.gems[gem.ID] = current
	return nil
}

func (r *GemstoneRepo) Delete(_ context.Context, id string) error {
	defer r.s.lock(r.inTx)()
	if _, ok := r.s.gems[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.gems, id)
	return nil
}

func (s *Store) sortedGems(keep func(entity.Gemstone) bool) []*entity.Gemstone {
	list := make([]*entity.Gemstone, 0, len(s.gems))
	for _, g := range s.gems {
		if keep(g) {
			g := g
			list = append(list, &g)
		}
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].ID < list[j].ID
		}
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
	return list
}

// ── Sales ─────────────────────────────────────────────────────────────────────

// SaleRepo implementación en memoria de SaleRepository.
type SaleRepo struct {
	s    *Store
	inTx bool
}

func (r *SaleRepo) Create(_ context.Context, sale *entity.Sale) error {
	defer r.s.lock(r.inTx)()
	if sale.SoldAt.IsZero() {
		sale.SoldAt = time.Now()
	}
	r.s.sales[sale.ID] = *sale
	return nil
}

func (r *SaleRepo) GetByID(_ context.Context, id string) (*entity.Sale, error) {
	defer r.s.lock(r.inTx)()
	sale, ok := r.s.sales[id]
	if !ok {
		return nil, nil
	}
	return &sale, nil
}

func (r *SaleRepo) List(_ context.Context) ([]*entity.Sale, error) {
	defer r.s.lock(r.inTx)()
	return r.s.sortedSales(func(entity.Sale) bool { return true }, repository.SortDesc), nil
}

func (r *SaleRepo) ListBetween(_ context.Context, start, end time.Time, order repository.SortOrder) ([]*entity.Sale, error) {
	defer r.s.lock(r.inTx)()
	return r.s.sortedSales(func(s entity.Sale) bool {
		return !s.SoldAt.Before(start) && !s.SoldAt.After(end)
	}, order), nil
}

func (r *SaleRepo) Delete(_ context.Context, id string) error {
	defer r.s.lock(r.inTx)()
	if _, ok := r.s.sales[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.sales, id)
	return nil
}

func (s *Store) sortedSales(keep func(entity.Sale) bool, order repository.SortOrder) []*entity.Sale {
	list := make([]*entity.Sale, 0, len(s.sales))
	for _, sale := range s.sales {
		if keep(sale) {
			sale := sale
			list = append(list, &sale)
		}
	}
	sort.Slice(list, func(i, j int) bool {
		a, b := list[i], list[j]
		if a.SoldAt.Equal(b.SoldAt) {
			return a.ID < b.ID
		}
		if order == repository.SortAsc {
			return a.SoldAt.Before(b.SoldAt)
		}
		return a.SoldAt.After(b.SoldAt)
	})
	return list
}
