package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gemstone-api/internal/domain"
)

func TestLocalSink_WriteAndOpen(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "invoices")
	sink, err := NewLocalSink(dir)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, sink.Write(ctx, "invoice_1.pdf", strings.NewReader("%PDF-1.3 demo"), 13))

	rc, err := sink.Open(ctx, "invoice_1.pdf")
	require.NoError(t, err)
	defer rc.Close()
	body, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.3 demo", string(body))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "no quedan temporales")
	assert.Equal(t, "invoice_1.pdf", entries[0].Name())
}

func TestLocalSink_OpenMissing(t *testing.T) {
	sink, err := NewLocalSink(t.TempDir())
	require.NoError(t, err)

	_, err = sink.Open(context.Background(), "invoice_none.pdf")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLocalSink_RejectsPaths(t *testing.T) {
	sink, err := NewLocalSink(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	for _, name := range []string{"", "..", "../etc/passwd", "a/b.pdf", `a\b.pdf`} {
		assert.ErrorIs(t, sink.Write(ctx, name, strings.NewReader("x"), 1), domain.ErrInvalidInput, name)
		_, err := sink.Open(ctx, name)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, name)
	}
}
