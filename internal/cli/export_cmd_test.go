package cli

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/alexanderramin/hknav/internal/export"
)

func TestExportCmd_WritesFilteredRows(t *testing.T) {
	env := testApp(t, nil)
	path := filepath.Join(t.TempDir(), "out", "schools.xlsx")

	out, err := executeCmd(t, env.app, "export", "--district", "southern", "--sort", "deadline", "-o", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Exported 2 schools")
	assert.Contains(t, out, path)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{export.SheetName}, f.GetSheetList())
	rows, err := f.GetRows(export.SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, export.Headers, rows[0])
	assert.Equal(t, "Alpha Primary", rows[1][1])
	assert.Equal(t, "Gamma College", rows[2][1])
	assert.Equal(t, "2024-11-15", rows[1][7])
}

func TestExportCmd_EmptySelection(t *testing.T) {
	env := testApp(t, nil)
	path := filepath.Join(t.TempDir(), "empty.xlsx")

	out, err := executeCmd(t, env.app, "export", "--search", "nowhere", "--out", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Exported 0 schools")

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(export.SheetName)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
