package usecase

import (
	"context"

	"github.com/jhoicas/gemstone-api/internal/application/dto"
	"github.com/jhoicas/gemstone-api/internal/domain/entity"
	"github.com/jhoicas/gemstone-api/internal/domain/repository"
)

// SaleUseCase consulta y eliminación de ventas. Las ventas no se editan.
type SaleUseCase struct {
	repo repository.SaleRepository
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(repo repository.SaleRepository) *SaleUseCase {
	return &SaleUseCase{repo: repo}
}

// List devuelve todas las ventas, más recientes primero.
func (uc *SaleUseCase) List(ctx context.Context) ([]dto.SaleResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		out = append(out, toSaleResponse(s))
	}
	return out, nil
}

// Delete elimina una venta. domain.ErrNotFound si no existe. No devuelve stock al lote.
func (uc *SaleUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func toSaleResponse(s *entity.Sale) dto.SaleResponse {
	return dto.SaleResponse{
		ID:           s.ID,
		GemstoneID:   s.GemstoneID,
		Code:         s.Code,
		Name:         s.Name,
		Shape:        s.Shape,
		Quantity:     s.Quantity,
		CaratSold:    s.CaratSold,
		MarkingPrice: s.MarkingPrice,
		SellingPrice: s.SellingPrice,
		TotalAmount:  s.TotalAmount,
		ImageURL:     s.ImageURL,
		Remark:       s.Remark,
		SoldAt:       s.SoldAt,
	}
}
