package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/gemstone-api/internal/application/dto"
	"github.com/jhoicas/gemstone-api/internal/domain"
	"github.com/jhoicas/gemstone-api/internal/domain/entity"
	"github.com/jhoicas/gemstone-api/internal/domain/inventory"
	"github.com/jhoicas/gemstone-api/internal/domain/repository"
)

// GemstoneUseCase casos de uso CRUD para lotes. El stock solo baja vía ventas o edición directa.
type GemstoneUseCase struct {
	repo repository.GemstoneRepository
}

// NewGemstoneUseCase construye el caso de uso.
func NewGemstoneUseCase(repo repository.GemstoneRepository) *GemstoneUseCase {
	return &GemstoneUseCase{repo: repo}
}

// Create registra un lote nuevo. code, weight y price_per_carat son obligatorios.
func (uc *GemstoneUseCase) Create(ctx context.Context, in dto.CreateGemstoneRequest) (*dto.GemstoneResponse, error) {
	gem, err := gemstoneFromRequest(in)
	if err != nil {
		return nil, err
	}
	gem.ID = uuid.New().String()
	gem.CreatedAt = time.Now()
	if err := uc.repo.Create(ctx, gem); err != nil {
		return nil, err
	}
	return toGemstoneResponse(gem), nil
}

// List devuelve todos los lotes.
func (uc *GemstoneUseCase) List(ctx context.Context) ([]dto.GemstoneResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toGemstoneResponses(list), nil
}

// Search busca por nombre, código, forma o peso.
func (uc *GemstoneUseCase) Search(ctx context.Context, term string) ([]dto.GemstoneResponse, error) {
	list, err := uc.repo.Search(ctx, strings.TrimSpace(term))
	if err != nil {
		return nil, err
	}
	return toGemstoneResponses(list), nil
}

// Update reemplaza los datos editables del lote y recalcula total_price.
func (uc *GemstoneUseCase) Update(ctx context.Context, id string, in dto.UpdateGemstoneRequest) (*dto.GemstoneResponse, error) {
	current, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domain.ErrNotFound
	}
	gem, err := gemstoneFromRequest(in)
	if err != nil {
		return nil, err
	}
	gem.ID = current.ID
	gem.CreatedAt = current.CreatedAt
	if in.ImageURL == nil {
		gem.ImageURL = current.ImageURL
	}
	if err := uc.repo.Update(ctx, gem); err != nil {
		return nil, err
	}
	return toGemstoneResponse(gem), nil
}

// Delete elimina un lote. domain.ErrNotFound si no existe.
func (uc *GemstoneUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func gemstoneFromRequest(in dto.CreateGemstoneRequest) (*entity.Gemstone, error) {
	if strings.TrimSpace(in.Code) == "" || in.Weight == nil || in.PricePerCarat == nil {
		return nil, domain.ErrValidationMissing
	}
	qty := decimal.Zero
	if in.Quantity != nil {
		qty = *in.Quantity
	}
	pieces, ok := inventory.Pieces(qty)
	if !ok {
		return nil, fmt.Errorf("%w: quantity debe ser un entero entre 0 y %d", domain.ErrInvalidInput, inventory.MaxPieces)
	}
	if in.Weight.IsNegative() || in.PricePerCarat.IsNegative() {
		return nil, fmt.Errorf("%w: weight y price_per_carat deben ser >= 0", domain.ErrInvalidInput)
	}
	gem := &entity.Gemstone{
		Code:          strings.TrimSpace(in.Code),
		Name:          in.Name,
		Shape:         in.Shape,
		Quantity:      pieces,
		Weight:        *in.Weight,
		PricePerCarat: *in.PricePerCarat,
		ImageURL:      in.ImageURL,
		Remark:        in.Remark,
	}
	gem.TotalPrice = gem.LotValue(gem.Weight)
	return gem, nil
}

func toGemstoneResponse(g *entity.Gemstone) *dto.GemstoneResponse {
	return &dto.GemstoneResponse{
		ID:            g.ID,
		Code:          g.Code,
		Name:          g.Name,
		Shape:         g.Shape,
		Quantity:      g.Quantity,
		Weight:        g.Weight,
		PricePerCarat: g.PricePerCarat,
		TotalPrice:    g.TotalPrice,
		ImageURL:      g.ImageURL,
		Remark:        g.Remark,
		CreatedAt:     g.CreatedAt,
	}
}

func toGemstoneResponses(list []*entity.Gemstone) []dto.GemstoneResponse {
	out := make([]dto.GemstoneResponse, 0, len(list))
	for _, g := range list {
		out = append(out, *toGemstoneResponse(g))
	}
	return out
}
