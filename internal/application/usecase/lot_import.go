package usecase

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/gemstone-api/internal/application/dto"
	"github.com/jhoicas/gemstone-api/internal/domain"
)

// Columnas aceptadas en el CSV de lotes. code, weight y price_per_carat son obligatorias.
var lotColumns = []string{"code", "name", "shape", "quantity", "weight", "price_per_carat", "image_url", "remark"}

// ImportResult resumen de una importación.
type ImportResult struct {
	Created int
	Failed  []ImportFailure
}

// ImportFailure fila rechazada (línea del archivo, contando la cabecera como 1).
type ImportFailure struct {
	Line int
	Err  error
}

// ParseLotsCSV lee lotes desde un CSV con cabecera. El orden de las columnas es libre;
// columnas desconocidas se ignoran.
func ParseLotsCSV(r io.Reader) ([]dto.CreateGemstoneRequest, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: CSV vacío", domain.ErrValidationMissing)
		}
		return nil, fmt.Errorf("leer cabecera: %w", err)
	}
	idx := map[string]int{}
	for i, h := range header {
		idx[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\uFEFF")))] = i
	}
	for _, required := range []string{"code", "weight", "price_per_carat"} {
		if _, ok := idx[required]; !ok {
			return nil, fmt.Errorf("%w: falta la columna %s", domain.ErrValidationMissing, required)
		}
	}

	var out []dto.CreateGemstoneRequest
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("línea %d: %w", line, err)
		}
		field := func(name string) string {
			i, ok := idx[name]
			if !ok || i >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[i])
		}
		req := dto.CreateGemstoneRequest{Code: field("code"), Name: field("name"), Shape: field("shape")}
		for name, dst := range map[string]**decimal.Decimal{
			"quantity":        &req.Quantity,
			"weight":          &req.Weight,
			"price_per_carat": &req.PricePerCarat,
		} {
			v := field(name)
			if v == "" {
				continue
			}
			d, err := decimal.NewFromString(v)
			if err != nil {
				return nil, fmt.Errorf("línea %d: %w: %s=%q", line, domain.ErrInvalidInput, name, v)
			}
			*dst = &d
		}
		if v := field("image_url"); v != "" {
			req.ImageURL = &v
		}
		if v := field("remark"); v != "" {
			req.Remark = &v
		}
		out = append(out, req)
	}
}

// ImportLots crea cada lote con las mismas reglas que el alta por API. Una fila inválida
// no detiene la importación; un error del almacén sí.
func (uc *GemstoneUseCase) ImportLots(ctx context.Context, rows []dto.CreateGemstoneRequest) (ImportResult, error) {
	var res ImportResult
	for i, row := range rows {
		if _, err := uc.Create(ctx, row); err != nil {
			if errors.Is(err, domain.ErrValidationMissing) || errors.Is(err, domain.ErrInvalidInput) {
				res.Failed = append(res.Failed, ImportFailure{Line: i + 2, Err: err})
				continue
			}
			return res, err
		}
		res.Created++
	}
	return res, nil
}
