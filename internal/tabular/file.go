package tabular

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/RyanSchlenz/CSV-Email-Merger/internal/model"
)

// ReadOptions configures ReadFile.
type ReadOptions struct {
	SkipRows   int
	Delimiter  rune
	LazyQuotes bool
	SheetName  string // xlsx only
}

// IsXLSX reports whether path names an XLSX workbook.
func IsXLSX(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".xlsx")
}

// ReadFile loads a table from a CSV or XLSX file, chosen by extension.
func ReadFile(path string, opts ReadOptions) (*model.Table, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, model.NewError(model.ErrInputNotFound, path, nil)
		}
		return nil, model.NewError(model.ErrInputNotFound, path, err)
	}
	if info.IsDir() {
		return nil, model.NewError(model.ErrInputNotFound, path, eris.New("is a directory"))
	}
	if info.Size() == 0 {
		return nil, model.NewError(model.ErrInputEmpty, path, nil)
	}

	zap.L().Debug("tabular: reading", zap.String("path", path), zap.Int64("bytes", info.Size()))

	if IsXLSX(path) {
		return ReadXLSX(path, XLSXOptions{SheetName: opts.SheetName, SkipRows: opts.SkipRows})
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, model.NewError(model.ErrInputNotFound, path, err)
	}
	defer f.Close() //nolint:errcheck

	return ReadCSV(f, path, CSVOptions{
		Delimiter:  opts.Delimiter,
		SkipRows:   opts.SkipRows,
		LazyQuotes: opts.LazyQuotes,
	})
}

// WriteFile writes the table to path as XLSX or CSV, chosen by extension, and
// returns the SHA-256 of the bytes written. The data goes to a temporary file
// in the destination directory that is renamed over path only once fully
// written; on any failure path is left untouched.
func WriteFile(path string, t *model.Table) (string, error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return "", eris.Wrap(err, "tabular: create temp file")
	}
	committed := false
	defer func() {
		if !committed {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	h := sha256.New()
	w := io.MultiWriter(tmp, h)

	if IsXLSX(path) {
		err = WriteXLSX(w, t)
	} else {
		err = WriteCSV(w, t)
	}
	if err != nil {
		return "", err
	}

	if err := tmp.Chmod(0o644); err != nil {
		return "", eris.Wrap(err, "tabular: chmod temp file")
	}
	if err := tmp.Close(); err != nil {
		return "", eris.Wrap(err, "tabular: close temp file")
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		_ = os.Remove(tmp.Name())
		committed = true
		return "", eris.Wrap(err, "tabular: rename into place")
	}
	committed = true

	return hex.EncodeToString(h.Sum(nil)), nil
}
