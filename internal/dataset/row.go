// Package dataset reads, checks and writes the canonical stale block table.
package dataset

import (
	"bufio"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/goodnatureofminers/staleblocks/internal/header"
	"github.com/goodnatureofminers/staleblocks/internal/model"
)

const (
	// Columns is the number of fields in every dataset row.
	Columns = 3
	// HashSize is the length of a hex encoded block hash.
	HashSize = 64
)

// Label is the header row of the canonical table.
var Label = []string{"height", "hash", "header"}

// Row is one tokenized line of the table.
type Row struct {
	Line   int
	Fields []string
}

// Entry is a row after typed parsing. The *OK flags tell which fields passed
// their checks; fields that failed are zero.
type Entry struct {
	Line     int
	Record   model.Record
	HeightOK bool
	HashOK   bool
	HeaderOK bool
	// Duplicate marks a well-formed hash already seen on an earlier row.
	// HashOK is false for such rows.
	Duplicate bool
}

// Valid reports whether every field of the row passed.
func (e Entry) Valid() bool {
	return e.HeightOK && e.HashOK && e.HeaderOK
}

// maxLineSize bounds a single table line.
const maxLineSize = 1 << 20

// ReadRows splits the table into lines and every line on commas. Fields are
// never quoted, so a malformed line cannot swallow the lines after it. A
// leading label row is skipped. Column counts are not enforced here so that
// every line can be diagnosed.
func ReadRows(r io.Reader) ([]Row, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineSize)

	rows := make([]Row, 0)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Split(sc.Text(), ",")
		if line == 1 && isLabel(fields) {
			continue
		}
		rows = append(rows, Row{Line: line, Fields: fields})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read dataset line %d: %w", line+1, err)
	}
	return rows, nil
}

// ParseRow checks the shape and field formats of one row, including the
// binding of a present header to the row hash, and reports every failure.
func ParseRow(row Row) (Entry, []error) {
	entry := Entry{Line: row.Line}
	if len(row.Fields) != Columns {
		return entry, []error{&model.FormatError{
			Line:  row.Line,
			Field: "row",
			Err:   fmt.Errorf("got %d columns, want %d", len(row.Fields), Columns),
		}}
	}

	var errs []error
	heightField, hashField, headerField := row.Fields[0], row.Fields[1], row.Fields[2]

	if height, err := parseHeight(heightField); err != nil {
		errs = append(errs, &model.FormatError{Line: row.Line, Field: "height", Value: heightField, Err: err})
	} else {
		entry.Record.Height = height
		entry.HeightOK = true
	}

	if err := checkHex(hashField, HashSize); err != nil {
		errs = append(errs, &model.FormatError{Line: row.Line, Field: "hash", Value: hashField, Err: err})
	} else {
		entry.Record.Hash = hashField
		entry.HashOK = true
	}

	if headerField == "" {
		entry.HeaderOK = true
	} else if err := checkHex(headerField, header.HexSize); err != nil {
		errs = append(errs, &model.FormatError{Line: row.Line, Field: "header", Err: err})
	} else if entry.HashOK {
		if got := header.IdentityHash(decode(headerField)); got != hashField {
			errs = append(errs, &model.BindingError{
				Line:     row.Line,
				Hash:     hashField,
				Got:      got,
				Expected: hashField,
				Reason:   "header hash mismatch",
			})
		} else {
			entry.Record.Header = headerField
			entry.HeaderOK = true
		}
	}

	return entry, errs
}

// Check parses every row and enforces the table-wide invariants: descending
// height order and hash uniqueness. All violations are returned in row order.
func Check(rows []Row) ([]Entry, []error) {
	entries := make([]Entry, 0, len(rows))
	var errs []error

	var (
		previous    uint64
		hasPrevious bool
		seen        = make(map[string]int, len(rows))
	)
	for _, row := range rows {
		entry, rowErrs := ParseRow(row)
		errs = append(errs, rowErrs...)

		if entry.HeightOK {
			if hasPrevious && entry.Record.Height > previous {
				errs = append(errs, &model.OrderError{
					Line:           row.Line,
					Height:         entry.Record.Height,
					PreviousHeight: previous,
				})
			}
			previous, hasPrevious = entry.Record.Height, true
		}

		if entry.HashOK {
			if firstLine, dup := seen[entry.Record.Hash]; dup {
				errs = append(errs, &model.UniquenessError{
					Line:      row.Line,
					Hash:      entry.Record.Hash,
					FirstLine: firstLine,
				})
				entry.HashOK = false
				entry.Duplicate = true
			} else {
				seen[entry.Record.Hash] = row.Line
			}
		}

		entries = append(entries, entry)
	}
	return entries, errs
}

// CheckRecord enforces the record invariants on a single record.
func CheckRecord(r model.Record) error {
	if r.Height == 0 {
		return &model.FormatError{Field: "height", Value: "0", Err: errors.New("must be positive")}
	}
	if err := checkHex(r.Hash, HashSize); err != nil {
		return &model.FormatError{Field: "hash", Value: r.Hash, Err: err}
	}
	if !r.HasHeader() {
		return nil
	}
	if err := checkHex(r.Header, header.HexSize); err != nil {
		return &model.FormatError{Field: "header", Err: err}
	}
	if got := header.IdentityHash(decode(r.Header)); got != r.Hash {
		return &model.BindingError{Hash: r.Hash, Got: got, Expected: r.Hash, Reason: "header hash mismatch"}
	}
	return nil
}

func parseHeight(s string) (uint64, error) {
	height, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, errors.New("not a positive integer")
	}
	if height == 0 {
		return 0, errors.New("must be positive")
	}
	if strconv.FormatUint(height, 10) != s {
		return 0, errors.New("not in canonical decimal form")
	}
	return height, nil
}

// checkHex accepts only lowercase hex of exactly size characters.
func checkHex(s string, size int) error {
	if len(s) != size {
		return fmt.Errorf("got %d hex characters, want %d", len(s), size)
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return fmt.Errorf("character %q at offset %d is not lowercase hex", c, i)
		}
	}
	return nil
}

// decode expects input already accepted by checkHex.
func decode(s string) []byte {
	out, _ := hex.DecodeString(s)
	return out
}

func isLabel(fields []string) bool {
	if len(fields) != len(Label) {
		return false
	}
	for i := range fields {
		if fields[i] != Label[i] {
			return false
		}
	}
	return true
}
