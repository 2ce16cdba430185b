package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/gemstone-api/internal/domain"
	"github.com/jhoicas/gemstone-api/internal/domain/entity"
	"github.com/jhoicas/gemstone-api/internal/domain/repository"
)

var _ repository.GemstoneRepository = (*GemstoneRepo)(nil)

const gemstoneColumns = `id, code, name, shape, quantity, weight, price_per_carat, total_price, image_url, remark, created_at`

// GemstoneRepo implementación de GemstoneRepository sobre PostgreSQL (usable con pool o tx).
type GemstoneRepo struct {
	q Querier
}

// NewGemstoneRepository construye el adaptador. Pasar pool o tx (Querier).
func NewGemstoneRepository(q Querier) *GemstoneRepo {
	return &GemstoneRepo{q: q}
}

// Create persiste un lote nuevo.
func (r *GemstoneRepo) Create(ctx context.Context, g *entity.Gemstone) error {
	query := `
		INSERT INTO gemstones (` + gemstoneColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		g.ID, g.Code, g.Name, g.Shape, g.Quantity, g.Weight, g.PricePerCarat, g.TotalPrice,
		g.ImageURL, g.Remark, g.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: lote %s ya existe", domain.ErrInvalidInput, g.ID)
		}
		return fmt.Errorf("insert gemstone: %w", err)
	}
	return nil
}

// GetByID obtiene un lote por ID. nil, nil si no existe.
func (r *GemstoneRepo) GetByID(ctx context.Context, id string) (*entity.Gemstone, error) {
	query := `SELECT ` + gemstoneColumns + ` FROM gemstones WHERE id = $1`
	g, err := scanGemstone(r.q.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("get gemstone: %w", err)
	}
	return g, nil
}

// GetForUpdate igual que GetByID pero bloquea la fila hasta el fin de la transacción.
func (r *GemstoneRepo) GetForUpdate(ctx context.Context, id string) (*entity.Gemstone, error) {
	query := `SELECT ` + gemstoneColumns + ` FROM gemstones WHERE id = $1 FOR UPDATE`
	g, err := scanGemstone(r.q.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("lock gemstone: %w", err)
	}
	return g, nil
}

// List devuelve todos los lotes, más recientes primero.
func (r *GemstoneRepo) List(ctx context.Context) ([]*entity.Gemstone, error) {
	query := `SELECT ` + gemstoneColumns + ` FROM gemstones ORDER BY created_at DESC, id`
	return r.list(ctx, query)
}

// Search busca term en nombre, código, forma y peso (sin distinguir mayúsculas).
func (r *GemstoneRepo) Search(ctx context.Context, term string) ([]*entity.Gemstone, error) {
	query := `
		SELECT ` + gemstoneColumns + ` FROM gemstones
		WHERE name ILIKE $1 OR code ILIKE $1 OR shape ILIKE $1 OR weight::text ILIKE $1
		ORDER BY created_at DESC, id`
	return r.list(ctx, query, containsPattern(term))
}

// Update reemplaza los campos editables. domain.ErrNotFound si no existe.
func (r *GemstoneRepo) Update(ctx context.Context, g *entity.Gemstone) error {
	query := `
		UPDATE gemstones
		SET code = $2, name = $3, shape = $4, quantity = $5, weight = $6,
		    price_per_carat = $7, total_price = $8, image_url = $9, remark = $10
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		g.ID, g.Code, g.Name, g.Shape, g.Quantity, g.Weight, g.PricePerCarat, g.TotalPrice,
		g.ImageURL, g.Remark,
	)
	if err != nil {
		return fmt.Errorf("update gemstone: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateStock actualiza peso, cantidad y precio total tras una venta.
func (r *GemstoneRepo) UpdateStock(ctx context.Context, g *entity.Gemstone) error {
	query := `UPDATE gemstones SET weight = $2, quantity = $3, total_price = $4 WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, g.ID, g.Weight, g.Quantity, g.TotalPrice)
	if err != nil {
		return fmt.Errorf("update gemstone stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un lote. domain.ErrNotFound si no existe.
func (r *GemstoneRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM gemstones WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete gemstone: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *GemstoneRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Gemstone, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list gemstones: %w", err)
	}
	defer rows.Close()

	var list []*entity.Gemstone
	for rows.Next() {
		var g entity.Gemstone
		if err := rows.Scan(
			&g.ID, &g.Code, &g.Name, &g.Shape, &g.Quantity, &g.Weight, &g.PricePerCarat, &g.TotalPrice,
			&g.ImageURL, &g.Remark, &g.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan gemstone: %w", err)
		}
		list = append(list, &g)
	}
	return list, rows.Err()
}

func scanGemstone(row pgx.Row) (*entity.Gemstone, error) {
	var g entity.Gemstone
	err := row.Scan(
		&g.ID, &g.Code, &g.Name, &g.Shape, &g.Quantity, &g.Weight, &g.PricePerCarat, &g.TotalPrice,
		&g.ImageURL, &g.Remark, &g.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &g, nil
}
