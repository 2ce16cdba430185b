package repository

import (
	"context"
	"time"

	"github.com/jhoicas/gemstone-api/internal/domain/entity"
)

// SortOrder orden por fecha de venta.
type SortOrder string

const (
	SortAsc  SortOrder = "ASC"
	SortDesc SortOrder = "DESC"
)

// SaleRepository define el puerto de persistencia para ventas. Las ventas no se actualizan.
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	GetByID(ctx context.Context, id string) (*entity.Sale, error)
	// List devuelve todas las ventas, más recientes primero.
	List(ctx context.Context) ([]*entity.Sale, error)
	// ListBetween devuelve las ventas con sold_at en [start, end] (inclusive).
	ListBetween(ctx context.Context, start, end time.Time, order SortOrder) ([]*entity.Sale, error)
	// Delete devuelve domain.ErrNotFound si no existe.
	Delete(ctx context.Context, id string) error
}
