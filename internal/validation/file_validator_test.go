package validation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/premlamishra/pdf-report-generator-fpdf/internal/errors"
)

func TestFileValidator_ValidateFile(t *testing.T) {
	tests := []struct {
		name      string
		setupFunc func(t *testing.T) string
		wantErr   bool
		wantType  apperrors.ErrorType
	}{
		{
			name: "readable file",
			setupFunc: func(t *testing.T) string {
				file := filepath.Join(t.TempDir(), "data.xlsx")
				require.NoError(t, os.WriteFile(file, []byte("test"), 0644))
				return file
			},
		},
		{
			name: "missing file",
			setupFunc: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "missing.xlsx")
			},
			wantErr:  true,
			wantType: apperrors.ErrTypeNotFound,
		},
		{
			name: "directory instead of file",
			setupFunc: func(t *testing.T) string {
				return t.TempDir()
			},
			wantErr:  true,
			wantType: apperrors.ErrTypeStorage,
		},
	}

	v := NewFileValidator(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateFile(tt.setupFunc(t))
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, apperrors.IsType(err, tt.wantType), "got %v", err)
		})
	}
}

func TestFileValidator_ValidateExcelFile(t *testing.T) {
	dir := t.TempDir()
	write := func(name string) string {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte("x"), 0644))
		return p
	}

	v := NewFileValidator(nil)

	assert.NoError(t, v.ValidateExcelFile(write("sales.xlsx")))
	assert.NoError(t, v.ValidateExcelFile(write("macro.XLSM")))

	err := v.ValidateExcelFile(write("sales.csv"))
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeValidation))

	err = v.ValidateExcelFile(write("~$sales.xlsx"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "temporary")

	err = v.ValidateExcelFile(filepath.Join(dir, "absent.xlsx"))
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeNotFound))
}

func TestImageType(t *testing.T) {
	tests := map[string]string{
		"chart.png":  "PNG",
		"logo.JPG":   "JPG",
		"logo.jpeg":  "JPG",
		"anim.gif":   "GIF",
		"vector.svg": "",
		"noext":      "",
	}
	for path, want := range tests {
		t.Run(path, func(t *testing.T) {
			assert.Equal(t, want, ImageType(path))
		})
	}
}

func TestFileValidator_ValidateImageFile(t *testing.T) {
	dir := t.TempDir()
	png := filepath.Join(dir, "chart.png")
	require.NoError(t, os.WriteFile(png, []byte("x"), 0644))
	svg := filepath.Join(dir, "chart.svg")
	require.NoError(t, os.WriteFile(svg, []byte("x"), 0644))

	v := NewFileValidator(nil)

	imageType, err := v.ValidateImageFile(png)
	require.NoError(t, err)
	assert.Equal(t, "PNG", imageType)

	_, err = v.ValidateImageFile(svg)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeValidation))

	_, err = v.ValidateImageFile(filepath.Join(dir, "missing.png"))
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeNotFound))
}

func TestFileValidator_ValidateOutputDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")

	require.NoError(t, NewFileValidator(nil).ValidateOutputDirectory(dir))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	_, err = os.Stat(filepath.Join(dir, ".write_test"))
	assert.True(t, os.IsNotExist(err), "probe file is removed")
}
