package repository

import (
	"context"

	"github.com/jhoicas/gemstone-api/internal/domain/entity"
)

// GemstoneRepository define el puerto de persistencia para los lotes de gemas (DIP).
type GemstoneRepository interface {
	Create(ctx context.Context, gem *entity.Gemstone) error
	GetByID(ctx context.Context, id string) (*entity.Gemstone, error)
	// GetForUpdate bloquea la fila del lote hasta el fin de la transacción (SELECT FOR UPDATE).
	GetForUpdate(ctx context.Context, id string) (*entity.Gemstone, error)
	List(ctx context.Context) ([]*entity.Gemstone, error)
	Search(ctx context.Context, term string) ([]*entity.Gemstone, error)
	Update(ctx context.Context, gem *entity.Gemstone) error
	// UpdateStock actualiza peso, cantidad y precio total tras una venta.
	UpdateStock(ctx context.Context, gem *entity.Gemstone) error
	// Delete devuelve domain.ErrNotFound si no existe.
	Delete(ctx context.Context, id string) error
}
