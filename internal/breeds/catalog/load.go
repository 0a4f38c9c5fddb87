package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"dogbreed-service/internal/breeds/model"
	"dogbreed-service/internal/fileio"
	"dogbreed-service/internal/utils"
)

const (
	maxWarnings   = 50
	defaultRating = 3
)

// LoadReport summarizes one catalog load.
type LoadReport struct {
	Source   string   `json:"source"`
	Rows     int      `json:"rows"`
	Loaded   int      `json:"loaded"`
	Skipped  int      `json:"skipped"`
	Warnings []string `json:"warnings,omitempty"`
}

func (r *LoadReport) warnf(format string, args ...any) {
	if len(r.Warnings) < maxWarnings {
		r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
	}
}

// Load reads the catalog table at path. A missing file yields an empty catalog and a warning,
// not an error; an unreadable one yields an empty catalog and the error.
func Load(path string, opt fileio.Options) (*Catalog, LoadReport, error) {
	rep := LoadReport{Source: path}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		rep.warnf("catalog %s not found, starting empty", path)
		return Empty(), rep, nil
	}
	rows, err := fileio.ReadFileMaps(path, opt)
	if err != nil {
		return Empty(), rep, fmt.Errorf("read catalog %s: %w", path, err)
	}
	c, r := FromMaps(rows)
	r.Source = path
	return c, r, nil
}

// FromMaps converts header -> value rows into a catalog.
// Rows lacking name_ko or name_en are skipped. Malformed ratings fall back to 3 and malformed
// numbers to 0; both are reported but never fail the load.
func FromMaps(rows []map[string]string) (*Catalog, LoadReport) {
	rep := LoadReport{Rows: len(rows)}
	if len(rows) == 0 {
		return Empty(), rep
	}

	headers := make([]string, 0, len(rows[0]))
	for h := range rows[0] {
		headers = append(headers, h)
	}
	sort.Strings(headers)
	cols := resolveColumns(headers)
	for _, f := range []field{fNameKo, fNameEn} {
		if cols[f] == "" {
			rep.warnf("no column for %s", strings.Split(fieldHeaders[f], "|")[0])
		}
	}

	records := make([]model.BreedRecord, 0, len(rows))
	for i, row := range rows {
		get := func(f field) string {
			if cols[f] == "" {
				return ""
			}
			return strings.TrimSpace(row[cols[f]])
		}

		r := model.BreedRecord{
			NameKo:       get(fNameKo),
			NameEn:       get(fNameEn),
			SizeType:     get(fSize),
			Summary:      get(fSummary),
			History:      get(fHistory),
			ThumbnailURL: get(fThumbnail),
		}
		if r.NameKo == "" || r.NameEn == "" {
			rep.Skipped++
			rep.warnf("row %d: missing name", i+1)
			continue
		}

		rating := func(f field) int {
			v, ok := utils.ParseRating(get(f))
			if !ok {
				rep.warnf("row %d (%s): bad %s %q, using %d", i+1, r.NameKo, headerName(f), get(f), defaultRating)
				return defaultRating
			}
			return v
		}
		number := func(f field) float64 {
			raw := get(f)
			v, ok := utils.ParseNumber(raw)
			if !ok && raw != "" {
				rep.warnf("row %d (%s): bad %s %q", i+1, r.NameKo, headerName(f), raw)
			}
			return v
		}

		r.EnergyLevel = rating(fEnergy)
		r.SheddingLevel = rating(fShedding)
		r.BarkingLevel = rating(fBarking)
		if v, ok := utils.ParseRating(get(fTrainability)); ok {
			r.Trainability = &v
		} else if raw := get(fTrainability); raw != "" {
			rep.warnf("row %d (%s): bad trainability %q, treated as absent", i+1, r.NameKo, raw)
		}
		r.PopularityScore = number(fPopularity)
		r.AvgLifeExpectancy = number(fLife)
		r.AvgWeight = number(fWeight)

		records = append(records, r)
	}
	rep.Loaded = len(records)
	return New(records), rep
}

func headerName(f field) string { return strings.Split(fieldHeaders[f], "|")[0] }
