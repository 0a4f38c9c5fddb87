package fileio

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Options control how a table is read.
type Options struct {
	HeaderRow int    // 1-based header row; <= 0 means 1
	Encoding  string // CSV only: "", "auto", "utf-8", "euc-kr", "cp949", "windows-1251"
	Table     string // SQLite only: table to read, default "breeds"
}

func (o Options) headerRow() int {
	if o.HeaderRow <= 0 {
		return 1
	}
	return o.HeaderRow
}

// ErrUnsupported is returned for file extensions no reader handles.
type ErrUnsupported struct{ Name string }

func (e ErrUnsupported) Error() string { return fmt.Sprintf("unsupported file: %s", e.Name) }

// ReadAnyMaps picks a reader by extension and returns the rows as header -> value maps.
func ReadAnyMaps(r io.Reader, filename string, opt Options) ([]map[string]string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx":
		return readXLSX(r, opt.headerRow())
	case ".xls":
		return readXLS(r, opt.headerRow())
	case ".csv", ".tsv", ".txt":
		return readCSV(r, filename, opt)
	default:
		return nil, ErrUnsupported{Name: filename}
	}
}

// ReadFileMaps is ReadAnyMaps for a path on disk, with SQLite databases on top.
func ReadFileMaps(path string, opt Options) ([]map[string]string, error) {
	if isSQLite(path) {
		return readSQLite(path, opt.Table)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadAnyMaps(f, path, opt)
}

// pickHeader takes the header row and names empty cells "Column N".
func pickHeader(rows [][]string, headerRow int) []string {
	idx := headerRow - 1
	if idx < 0 || idx >= len(rows) {
		idx = 0
	}
	h := rows[idx]
	out := make([]string, len(h))
	for i, v := range h {
		v = strings.TrimSpace(strings.TrimPrefix(v, "\ufeff"))
		if v == "" {
			v = fmt.Sprintf("Column %d", i+1)
		}
		out[i] = v
	}
	return out
}

// rowsToMaps converts rows below the header into maps, dropping rows that are entirely blank.
func rowsToMaps(rows [][]string, headers []string, headerRow int) []map[string]string {
	var out []map[string]string
	for r := headerRow; r < len(rows); r++ {
		rec := rows[r]
		m := make(map[string]string, len(headers))
		empty := true
		for c, h := range headers {
			var v string
			if c < len(rec) {
				v = rec[c]
			}
			if strings.TrimSpace(v) != "" {
				empty = false
			}
			m[h] = v
		}
		if !empty {
			out = append(out, m)
		}
	}
	return out
}
