// Package storage guarda los documentos generados (comprobantes) en disco o en un bucket S3.
package storage

import (
	"fmt"
	"path"
	"strings"

	"github.com/jhoicas/gemstone-api/internal/domain"
)

// checkName acepta solo nombres planos ("invoice_x.pdf"): sin rutas ni "..".
func checkName(name string) error {
	if name == "" || name == "." || name == ".." ||
		strings.ContainsAny(name, `/\`) || path.Base(name) != name {
		return fmt.Errorf("%w: nombre de documento %q", domain.ErrInvalidInput, name)
	}
	return nil
}
