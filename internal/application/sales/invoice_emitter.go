package sales

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/gemstone-api/internal/domain/entity"
	"github.com/jhoicas/gemstone-api/pkg/logger"
)

const defaultEmitTimeout = 30 * time.Second

// InvoiceData campos impresos en el comprobante de venta.
type InvoiceData struct {
	SaleID       string
	Code         string
	Name         string
	Shape        string
	Quantity     int
	CaratSold    decimal.Decimal
	SellingPrice decimal.Decimal
	TotalAmount  decimal.Decimal
	IssuedAt     time.Time
}

// InvoiceFilename nombre del comprobante: invoice_<saleID>.pdf, o con la marca de tiempo si no hay ID.
func InvoiceFilename(saleID string, at time.Time) string {
	if saleID == "" {
		saleID = strconv.FormatInt(at.UnixMilli(), 10)
	}
	return "invoice_" + saleID + ".pdf"
}

// AsyncInvoiceEmitter genera y guarda comprobantes en goroutines.
// Sin reintentos: los errores se registran y se informan solo al callback.
type AsyncInvoiceEmitter struct {
	generator InvoicePDFGenerator
	sink      DocumentSink
	log       *logger.Logger
	metrics   Metrics
	timeout   time.Duration
	now       func() time.Time
	wg        sync.WaitGroup
}

// NewAsyncInvoiceEmitter construye el emisor. metrics puede ser nil.
func NewAsyncInvoiceEmitter(generator InvoicePDFGenerator, sink DocumentSink, log *logger.Logger, metrics Metrics) *AsyncInvoiceEmitter {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	return &AsyncInvoiceEmitter{
		generator: generator,
		sink:      sink,
		log:       log,
		metrics:   metrics,
		timeout:   defaultEmitTimeout,
		now:       time.Now,
	}
}

// Emit programa la emisión y retorna de inmediato.
func (e *AsyncInvoiceEmitter) Emit(sale *entity.Sale, done func(filename string, err error)) {
	data := InvoiceData{
		SaleID:       sale.ID,
		Code:         sale.Code,
		Name:         sale.Name,
		Shape:        sale.Shape,
		Quantity:     sale.Quantity,
		CaratSold:    sale.CaratSold,
		SellingPrice: sale.SellingPrice,
		TotalAmount:  sale.TotalAmount,
		IssuedAt:     e.now(),
	}

	e.wg.Add(1)
	go func() {
		defer e.wg.Done()

		filename, err := e.emit(data)
		if err != nil {
			e.metrics.ObserveInvoice("error")
			e.log.Error().Err(err).Str("sale_id", data.SaleID).Msg("emisión de factura fallida")
		} else {
			e.metrics.ObserveInvoice("ok")
		}
		if done != nil {
			done(filename, err)
		}
	}()
}

func (e *AsyncInvoiceEmitter) emit(data InvoiceData) (filename string, err error) {
	filename = InvoiceFilename(data.SaleID, data.IssuedAt)
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("invoice: panic generando %s: %v", filename, r)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), e.timeout)
	defer cancel()

	pdf, err := e.generator.GenerateSaleInvoicePDF(ctx, data)
	if err != nil {
		return filename, fmt.Errorf("invoice: generar %s: %w", filename, err)
	}
	if err := e.sink.Write(ctx, filename, bytes.NewReader(pdf), int64(len(pdf))); err != nil {
		return filename, fmt.Errorf("invoice: guardar %s: %w", filename, err)
	}
	return filename, nil
}

// Wait bloquea hasta que terminen las emisiones en curso (apagado y tests).
func (e *AsyncInvoiceEmitter) Wait() {
	e.wg.Wait()
}
