package sales

import (
	"context"
	"io"

	"github.com/jhoicas/gemstone-api/internal/domain/entity"
	"github.com/jhoicas/gemstone-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción con repositorios atados a ella.
// Si fn devuelve error se hace Rollback de todas las escrituras.
type TxRunner interface {
	RunSale(ctx context.Context, fn func(
		gemRepo repository.GemstoneRepository,
		saleRepo repository.SaleRepository,
	) error) error
}

// InvoiceEmitter emite el comprobante de una venta sin bloquear al caller.
// done recibe el nombre del archivo cuando el destino terminó de escribirse, o el error.
type InvoiceEmitter interface {
	Emit(sale *entity.Sale, done func(filename string, err error))
}

// InvoicePDFGenerator genera el PDF del comprobante.
type InvoicePDFGenerator interface {
	GenerateSaleInvoicePDF(ctx context.Context, data InvoiceData) ([]byte, error)
}

// DocumentSink destino nombrado de documentos (disco local, S3...).
type DocumentSink interface {
	Write(ctx context.Context, name string, r io.Reader, size int64) error
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}

// Metrics contadores de ventas y facturas.
type Metrics interface {
	ObserveSale(outcome string)
	ObserveInvoice(status string)
}

type noopMetrics struct{}

func (noopMetrics) ObserveSale(string)    {}
func (noopMetrics) ObserveInvoice(string) {}
