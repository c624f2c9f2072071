package exporter

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/premlamishra/pdf-report-generator-fpdf/internal/errors"
)

type stringDoc string

func (d stringDoc) Render(w io.Writer) error {
	_, err := io.WriteString(w, string(d))
	return err
}

type failingDoc struct{}

func (failingDoc) Render(w io.Writer) error {
	if _, err := io.WriteString(w, "%PDF-partial"); err != nil {
		return err
	}
	return errors.New("render failed")
}

func TestDocumentWriter_Write(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "report.pdf")

	n, err := NewDocumentWriter(nil).Write(stringDoc("%PDF-1.3 body"), path)
	require.NoError(t, err)
	assert.Equal(t, int64(len("%PDF-1.3 body")), n)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.3 body", string(data))
}

func TestDocumentWriter_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.pdf")
	require.NoError(t, os.WriteFile(path, []byte(strings.Repeat("old", 100)), 0644))

	_, err := NewDocumentWriter(nil).Write(stringDoc("new"), path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}

func TestDocumentWriter_Errors(t *testing.T) {
	t.Run("render failure", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "report.pdf")
		n, err := NewDocumentWriter(nil).Write(failingDoc{}, path)
		require.Error(t, err)
		assert.True(t, apperrors.IsType(err, apperrors.ErrTypeStorage))
		assert.Equal(t, int64(len("%PDF-partial")), n)
	})

	t.Run("output path is a directory", func(t *testing.T) {
		dir := t.TempDir()
		_, err := NewDocumentWriter(nil).Write(stringDoc("x"), dir)
		require.Error(t, err)
		assert.True(t, apperrors.IsType(err, apperrors.ErrTypeStorage))
	})

	t.Run("parent is a file", func(t *testing.T) {
		parent := filepath.Join(t.TempDir(), "file")
		require.NoError(t, os.WriteFile(parent, []byte("x"), 0644))
		_, err := NewDocumentWriter(nil).Write(stringDoc("x"), filepath.Join(parent, "report.pdf"))
		require.Error(t, err)
		assert.True(t, apperrors.IsType(err, apperrors.ErrTypeStorage))
	})
}
