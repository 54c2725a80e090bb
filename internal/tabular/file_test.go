package tabular

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RyanSchlenz/CSV-Email-Merger/internal/model"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadFile_NotFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.csv")
	_, err := ReadFile(path, ReadOptions{})
	require.Error(t, err)
	assert.Equal(t, model.ErrInputNotFound, model.KindOf(err))
	assert.Contains(t, err.Error(), "missing.csv")
}

func TestReadFile_Directory(t *testing.T) {
	_, err := ReadFile(t.TempDir(), ReadOptions{})
	require.Error(t, err)
	assert.Equal(t, model.ErrInputNotFound, model.KindOf(err))
}

func TestReadFile_ZeroBytes(t *testing.T) {
	path := writeTemp(t, "empty.csv", "")
	_, err := ReadFile(path, ReadOptions{})
	require.Error(t, err)
	assert.Equal(t, model.ErrInputEmpty, model.KindOf(err))
}

func TestReadFile_CSV(t *testing.T) {
	path := writeTemp(t, "dir.csv", "meta\nUserPrincipalName,Company\nA@X.com,Acme\n")
	tbl, err := ReadFile(path, ReadOptions{SkipRows: 1})
	require.NoError(t, err)
	assert.Equal(t, []string{"UserPrincipalName", "Company"}, tbl.Columns())
	assert.Equal(t, 1, tbl.Len())
}

func TestReadFile_XLSXByExtension(t *testing.T) {
	path := createTestXLSX(t, map[string][][]string{
		"Sheet1": {{"id"}, {"1"}},
	})
	tbl, err := ReadFile(path, ReadOptions{})
	require.NoError(t, err)
	assert.Equal(t, 1, tbl.Len())
}

func TestIsXLSX(t *testing.T) {
	assert.True(t, IsXLSX("out.xlsx"))
	assert.True(t, IsXLSX("OUT.XLSX"))
	assert.False(t, IsXLSX("out.csv"))
	assert.False(t, IsXLSX("out"))
}

func sampleTable(t *testing.T) *model.Table {
	t.Helper()
	tbl, err := model.NewTable([]string{"id", "email"})
	require.NoError(t, err)
	require.NoError(t, tbl.Append(model.Row{model.Number("1"), model.Text("a@x.com")}))
	return tbl
}

func TestWriteFile_CSVChecksumAndContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "updated.csv")

	sum, err := WriteFile(path, sampleTable(t))
	require.NoError(t, err)
	assert.Len(t, sum, 64)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "id,email\n1,a@x.com\n", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())
}

func TestWriteFile_Deterministic(t *testing.T) {
	dir := t.TempDir()
	a, err := WriteFile(filepath.Join(dir, "a.csv"), sampleTable(t))
	require.NoError(t, err)
	b, err := WriteFile(filepath.Join(dir, "b.csv"), sampleTable(t))
	require.NoError(t, err)
	assert.Equal(t, a, b)

	da, _ := os.ReadFile(filepath.Join(dir, "a.csv"))
	db, _ := os.ReadFile(filepath.Join(dir, "b.csv"))
	assert.True(t, bytes.Equal(da, db))
}

func TestWriteFile_MissingDirectoryLeavesNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", "updated.csv")
	_, err := WriteFile(path, sampleTable(t))
	require.Error(t, err)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestWriteFile_NoTempLeftovers(t *testing.T) {
	dir := t.TempDir()
	_, err := WriteFile(filepath.Join(dir, "updated.csv"), sampleTable(t))
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "updated.csv", entries[0].Name())
}
