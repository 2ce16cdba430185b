package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jhoicas/gemstone-api/internal/application/sales"
	"github.com/jhoicas/gemstone-api/internal/domain"
)

var _ sales.DocumentSink = (*LocalSink)(nil)

// LocalSink guarda documentos en un directorio. Write escribe a un temporal y renombra,
// así un lector nunca ve un PDF a medias.
type LocalSink struct {
	dir string
}

// NewLocalSink crea el directorio si no existe.
func NewLocalSink(dir string) (*LocalSink, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: crear directorio %s: %w", dir, err)
	}
	return &LocalSink{dir: dir}, nil
}

// Dir directorio base.
func (s *LocalSink) Dir() string { return s.dir }

// Write guarda el contenido de r como name. El archivo queda cerrado al retornar.
func (s *LocalSink) Write(ctx context.Context, name string, r io.Reader, _ int64) error {
	if err := checkName(name); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.dir, "."+name+".*")
	if err != nil {
		return fmt.Errorf("storage: crear temporal: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := io.Copy(tmp, r); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("storage: escribir %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("storage: cerrar %s: %w", name, err)
	}
	if err := os.Rename(tmp.Name(), filepath.Join(s.dir, name)); err != nil {
		return fmt.Errorf("storage: renombrar %s: %w", name, err)
	}
	return nil
}

// Open abre el documento. domain.ErrNotFound si no existe.
func (s *LocalSink) Open(_ context.Context, name string) (io.ReadCloser, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}
	f, err := os.Open(filepath.Join(s.dir, name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("storage: abrir %s: %w", name, err)
	}
	return f, nil
}
