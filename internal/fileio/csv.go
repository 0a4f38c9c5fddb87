package fileio

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const peekSize = 4096

// Minimum chardet confidence before a detected non-Korean legacy charset is trusted.
const minConfidence = 50

var legacyCharsets = map[string]encoding.Encoding{
	"euc-kr":       korean.EUCKR,
	"cp949":        korean.EUCKR,
	"windows-1251": charmap.Windows1251,
	"cp1251":       charmap.Windows1251,
}

// readCSV reads a delimited table, converting it to UTF-8 first.
// Valid UTF-8 (with or without BOM) is read as is; anything else goes through chardet,
// falling back to EUC-KR/CP949, the usual encoding of Korean spreadsheet exports.
func readCSV(r io.Reader, filename string, opt Options) ([]map[string]string, error) {
	br := bufio.NewReader(r)

	dec, err := decoderFor(br, opt.Encoding)
	if err != nil {
		return nil, err
	}
	src := transform.NewReader(br, dec.NewDecoder())

	cr := csv.NewReader(src)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	if strings.EqualFold(filepath.Ext(filename), ".tsv") {
		cr.Comma = '\t'
	}

	var rows [][]string
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csv: %w", err)
		}
		rows = append(rows, rec)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	h := pickHeader(rows, opt.headerRow())
	return rowsToMaps(rows, h, opt.headerRow()), nil
}

// decoderFor picks the source encoding; UTF-8 input still goes through a BOM-stripping decoder.
func decoderFor(br *bufio.Reader, want string) (encoding.Encoding, error) {
	want = strings.ToLower(strings.TrimSpace(want))
	switch want {
	case "", "auto":
	case "utf-8", "utf8":
		return unicode.UTF8BOM, nil
	default:
		enc, ok := legacyCharsets[want]
		if !ok {
			return nil, fmt.Errorf("csv: unsupported encoding %q", want)
		}
		return enc, nil
	}

	peek, _ := br.Peek(peekSize)
	if len(peek) == 0 || validUTF8Prefix(peek, len(peek) == peekSize) {
		return unicode.UTF8BOM, nil
	}
	if det, err := chardet.NewTextDetector().DetectBest(peek); err == nil && det != nil {
		cs := strings.ToLower(det.Charset)
		if enc, ok := legacyCharsets[cs]; ok && (cs == "euc-kr" || det.Confidence >= minConfidence) {
			return enc, nil
		}
	}
	return korean.EUCKR, nil
}

// validUTF8Prefix tolerates a rune cut in half at the end of a full peek window.
func validUTF8Prefix(b []byte, full bool) bool {
	if !full {
		return utf8.Valid(b)
	}
	for i := 0; i < utf8.UTFMax && len(b) > 0; i++ {
		if utf8.Valid(b) {
			return true
		}
		b = b[:len(b)-1]
	}
	return false
}
