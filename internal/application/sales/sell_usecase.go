package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/gemstone-api/internal/application/dto"
	"github.com/jhoicas/gemstone-api/internal/domain"
	"github.com/jhoicas/gemstone-api/internal/domain/entity"
	"github.com/jhoicas/gemstone-api/internal/domain/inventory"
	"github.com/jhoicas/gemstone-api/internal/domain/repository"
	"github.com/jhoicas/gemstone-api/pkg/logger"
)

// SellUseCase concilia una venta contra un lote en una sola transacción:
// bloquea el lote (SELECT FOR UPDATE), inserta la venta y actualiza o elimina el lote.
// La factura se emite después del Commit y no afecta el resultado de la venta.
type SellUseCase struct {
	txRunner       TxRunner
	invoices       InvoiceEmitter
	log            *logger.Logger
	metrics        Metrics
	rejectOversell bool
	now            func() time.Time
	newID          func() string
}

// Option configura SellUseCase.
type Option func(*SellUseCase)

// WithMetrics registra contadores de ventas.
func WithMetrics(m Metrics) Option {
	return func(uc *SellUseCase) {
		if m != nil {
			uc.metrics = m
		}
	}
}

// WithRejectOversell rechaza ventas que superan el stock del lote.
func WithRejectOversell(reject bool) Option {
	return func(uc *SellUseCase) { uc.rejectOversell = reject }
}

// WithClock reemplaza time.Now (tests).
func WithClock(now func() time.Time) Option {
	return func(uc *SellUseCase) { uc.now = now }
}

// WithIDGenerator reemplaza el generador de IDs de venta (tests).
func WithIDGenerator(fn func() string) Option {
	return func(uc *SellUseCase) { uc.newID = fn }
}

// NewSellUseCase construye el caso de uso.
func NewSellUseCase(txRunner TxRunner, invoices InvoiceEmitter, log *logger.Logger, opts ...Option) *SellUseCase {
	uc := &SellUseCase{
		txRunner: txRunner,
		invoices: invoices,
		log:      log,
		metrics:  noopMetrics{},
		now:      time.Now,
		newID:    func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// SellCommand venta ya validada.
type SellCommand struct {
	GemstoneID   string
	Quantity     int
	CaratSold    decimal.Decimal
	SellingPrice decimal.Decimal
	TotalAmount  decimal.Decimal
}

// ParseSellRequest valida presencia y forma de los campos.
//   - domain.ErrValidationMissing si falta algún campo.
//   - domain.ErrInvalidInput si quantity no es un entero en [0, inventory.MaxPieces] o algún valor es negativo.
func ParseSellRequest(in dto.SellRequest) (SellCommand, error) {
	if in.GemstoneID == "" || in.Quantity == nil || in.CaratSold == nil ||
		in.SellingPrice == nil || in.TotalAmount == nil {
		return SellCommand{}, domain.ErrValidationMissing
	}
	qty, ok := inventory.Pieces(*in.Quantity)
	if !ok {
		return SellCommand{}, fmt.Errorf("%w: quantity debe ser un entero entre 0 y %d", domain.ErrInvalidInput, inventory.MaxPieces)
	}
	if in.CaratSold.IsNegative() ||
		in.SellingPrice.IsNegative() || in.TotalAmount.IsNegative() {
		return SellCommand{}, fmt.Errorf("%w: valores negativos", domain.ErrInvalidInput)
	}
	if qty == 0 && in.CaratSold.IsZero() {
		return SellCommand{}, fmt.Errorf("%w: la venta no descuenta stock", domain.ErrInvalidInput)
	}
	return SellCommand{
		GemstoneID:   in.GemstoneID,
		Quantity:     qty,
		CaratSold:    *in.CaratSold,
		SellingPrice: *in.SellingPrice,
		TotalAmount:  *in.TotalAmount,
	}, nil
}

// Sell valida el request HTTP y ejecuta la venta.
func (uc *SellUseCase) Sell(ctx context.Context, in dto.SellRequest) (*dto.SellResponse, error) {
	cmd, err := ParseSellRequest(in)
	if err != nil {
		return nil, err
	}
	return uc.Execute(ctx, cmd)
}

// Execute aplica la venta. Retorna:
//   - domain.ErrNotFound si el lote no existe (sin escrituras).
//   - domain.ErrInsufficientStock si se rechaza la sobreventa (sin escrituras).
//   - error envuelto del almacén en cualquier otro fallo (Rollback de ambas escrituras).
func (uc *SellUseCase) Execute(ctx context.Context, cmd SellCommand) (*dto.SellResponse, error) {
	var (
		sale       *entity.Sale
		settlement inventory.Settlement
	)

	err := uc.txRunner.RunSale(ctx, func(gemRepo repository.GemstoneRepository, saleRepo repository.SaleRepository) error {
		lot, err := gemRepo.GetForUpdate(ctx, cmd.GemstoneID)
		if err != nil {
			return err
		}
		if lot == nil {
			return domain.ErrNotFound
		}

		settlement, err = inventory.Settle(lot, inventory.SaleLine{
			Quantity:  cmd.Quantity,
			CaratSold: cmd.CaratSold,
		}, uc.rejectOversell)
		if err != nil {
			return err
		}

		sale = &entity.Sale{
			ID:           uc.newID(),
			GemstoneID:   lot.ID,
			Code:         lot.Code,
			Name:         lot.Name,
			Shape:        lot.Shape,
			ImageURL:     lot.ImageURL,
			Remark:       lot.Remark,
			Quantity:     cmd.Quantity,
			CaratSold:    cmd.CaratSold,
			MarkingPrice: lot.PricePerCarat,
			SellingPrice: cmd.SellingPrice,
			TotalAmount:  cmd.TotalAmount,
			SoldAt:       uc.now(),
		}
		if err := saleRepo.Create(ctx, sale); err != nil {
			return err
		}

		if settlement.Consumed() {
			return gemRepo.Delete(ctx, lot.ID)
		}
		settlement.Apply(lot)
		return gemRepo.UpdateStock(ctx, lot)
	})
	if err != nil {
		return nil, fmt.Errorf("sales: vender lote %s: %w", cmd.GemstoneID, err)
	}

	uc.metrics.ObserveSale(settlement.Outcome)
	uc.warnOnTotalMismatch(sale)

	uc.invoices.Emit(sale, func(filename string, err error) {
		if err != nil {
			return // el emisor ya registró el error
		}
		uc.log.Info().Str("sale_id", sale.ID).Str("file", filename).Msg("factura guardada")
	})

	return &dto.SellResponse{
		Message: "venta registrada",
		Invoice: InvoiceFilename(sale.ID, sale.SoldAt),
		SaleID:  sale.ID,
		Outcome: settlement.Outcome,
	}, nil
}

// warnOnTotalMismatch: total_amount se guarda tal cual, pero se avisa si no coincide con precio × quilates.
func (uc *SellUseCase) warnOnTotalMismatch(sale *entity.Sale) {
	expected := sale.SellingPrice.Mul(sale.CaratSold).Round(2)
	if expected.Sub(sale.TotalAmount).Abs().GreaterThan(decimal.New(1, -2)) {
		uc.log.Warn().
			Str("sale_id", sale.ID).
			Str("total_amount", sale.TotalAmount.String()).
			Str("expected", expected.String()).
			Msg("total_amount no coincide con selling_price × carat_sold")
	}
}
