// Package validator checks a stale block table and its raw block files for
// structural and cryptographic consistency.
package validator

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/goodnatureofminers/staleblocks/internal/dataset"
	"github.com/goodnatureofminers/staleblocks/internal/header"
	"github.com/goodnatureofminers/staleblocks/internal/model"
	"github.com/goodnatureofminers/staleblocks/internal/rawblock"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// RawBlocks gives read access to raw block files.
	RawBlocks interface {
		Header(height uint64, hash string) ([]byte, bool, error)
		List() ([]rawblock.Key, error)
	}
)

// Report is the outcome of a validation run.
type Report struct {
	Problems []error
	// Rows is the number of data rows examined.
	Rows int
	// Headers is the number of headers that bound to their hash.
	Headers int
	// RawBlocks is the number of raw block files that matched their row.
	RawBlocks int
}

// OK reports whether no problem was found.
func (r Report) OK() bool {
	return len(r.Problems) == 0
}

// Validate runs every check over rows and, when blocks is not nil, over the
// raw block files. It never stops at the first problem.
func Validate(rows []dataset.Row, blocks RawBlocks) Report {
	entries, problems := dataset.Check(rows)
	report := Report{
		Problems: problems,
		Rows:     len(rows),
	}

	for _, e := range entries {
		if !e.Duplicate && e.HeaderOK && e.Record.HasHeader() {
			report.Headers++
		}
	}
	if blocks == nil {
		return report
	}

	referenced := make(map[rawblock.Key]struct{}, len(entries))
	for _, e := range entries {
		if !e.HeightOK || !(e.HashOK || e.Duplicate) {
			continue
		}
		key := rawblock.Key{Height: e.Record.Height, Hash: e.Record.Hash}
		referenced[key] = struct{}{}
		if e.Duplicate {
			continue
		}

		ok, problem := crossCheck(e, blocks)
		if problem != nil {
			report.Problems = append(report.Problems, problem)
		}
		if ok {
			report.RawBlocks++
		}
	}

	keys, err := blocks.List()
	if err != nil {
		report.Problems = append(report.Problems, fmt.Errorf("list raw blocks: %w", err))
		return report
	}
	for _, k := range keys {
		if _, ok := referenced[k]; !ok {
			report.Problems = append(report.Problems, &model.OrphanBlockError{Name: k.FileName()})
		}
	}
	return report
}

// crossCheck compares a row against its raw block file. matched is true when
// the file exists and fully agrees with the row.
func crossCheck(e dataset.Entry, blocks RawBlocks) (matched bool, problem error) {
	height, hash := e.Record.Height, e.Record.Hash
	raw, ok, err := blocks.Header(height, hash)
	if !ok && err == nil {
		return false, nil
	}
	if err != nil {
		var fe *model.FormatError
		if errors.As(err, &fe) {
			fe.Line = e.Line
			return false, fe
		}
		return false, fmt.Errorf("line %d: read raw block %s: %w", e.Line, rawblock.FileName(height, hash), err)
	}

	fileHeader, err := header.ParseBytes(raw)
	if err != nil {
		return false, err
	}
	if got := fileHeader.IdentityHash(); got != hash {
		return false, &model.BindingError{
			Line:     e.Line,
			Hash:     hash,
			Got:      got,
			Expected: hash,
			Reason:   "raw block header hash mismatch",
		}
	}

	switch {
	case !e.HeaderOK:
		// the row header is already reported as malformed or unbound
		return false, nil
	case !e.Record.HasHeader():
		return false, &model.MissingHeaderError{
			Line:     e.Line,
			Height:   height,
			Hash:     hash,
			Expected: fileHeader.Hex(),
		}
	}

	recorded, err := hex.DecodeString(e.Record.Header)
	if err != nil {
		return false, &model.FormatError{Line: e.Line, Field: "header", Err: err}
	}
	if !bytes.Equal(recorded, raw) {
		return false, &model.BindingError{
			Line:     e.Line,
			Hash:     hash,
			Got:      e.Record.Header,
			Expected: fileHeader.Hex(),
			Reason:   "header differs from raw block",
		}
	}
	return true, nil
}
