package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/gemstone-api/internal/domain"
	"github.com/jhoicas/gemstone-api/internal/domain/entity"
	"github.com/jhoicas/gemstone-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

const saleColumns = `id, gemstone_id, code, name, shape, image_url, remark, quantity, carat_sold, marking_price, selling_price, total_amount, sold_at`

// SaleRepo implementación de SaleRepository sobre PostgreSQL (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste una venta.
func (r *SaleRepo) Create(ctx context.Context, s *entity.Sale) error {
	query := `
		INSERT INTO sales (` + saleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		s.ID, s.GemstoneID, s.Code, s.Name, s.Shape, s.ImageURL, s.Remark, s.Quantity,
		s.CaratSold, s.MarkingPrice, s.SellingPrice, s.TotalAmount, s.SoldAt,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// GetByID obtiene una venta por ID. nil, nil si no existe.
func (r *SaleRepo) GetByID(ctx context.Context, id string) (*entity.Sale, error) {
	var s entity.Sale
	err := r.q.QueryRow(ctx, `SELECT `+saleColumns+` FROM sales WHERE id = $1`, id).Scan(saleFields(&s)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return &s, nil
}

// List devuelve todas las ventas, más recientes primero.
func (r *SaleRepo) List(ctx context.Context) ([]*entity.Sale, error) {
	return r.list(ctx, `SELECT `+saleColumns+` FROM sales ORDER BY sold_at DESC, id`)
}

// ListBetween ventas con sold_at entre start y end inclusive, en el orden pedido.
func (r *SaleRepo) ListBetween(ctx context.Context, start, end time.Time, order repository.SortOrder) ([]*entity.Sale, error) {
	dir := "DESC"
	if order == repository.SortAsc {
		dir = "ASC"
	}
	query := `
		SELECT ` + saleColumns + ` FROM sales
		WHERE sold_at BETWEEN $1 AND $2
		ORDER BY sold_at ` + dir + `, id`
	return r.list(ctx, query, start, end)
}

// Delete elimina una venta. domain.ErrNotFound si no existe.
func (r *SaleRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM sales WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete sale: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *SaleRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Sale, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()

	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(saleFields(&s)...); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

func saleFields(s *entity.Sale) []any {
	return []any{
		&s.ID, &s.GemstoneID, &s.Code, &s.Name, &s.Shape, &s.ImageURL, &s.Remark, &s.Quantity,
		&s.CaratSold, &s.MarkingPrice, &s.SellingPrice, &s.TotalAmount, &s.SoldAt,
	}
}
