package model

import "fmt"

// FormatError reports malformed input: bad hex, wrong byte length, wrong column count.
type FormatError struct {
	Line  int
	Field string
	Value string
	Err   error
}

func (e *FormatError) Error() string {
	msg := "invalid " + e.Field
	if e.Value != "" {
		msg += fmt.Sprintf(" %q", e.Value)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return linePrefix(e.Line) + msg
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// OrderError reports a row whose height is greater than the height of the row before it.
type OrderError struct {
	Line           int
	Height         uint64
	PreviousHeight uint64
}

func (e *OrderError) Error() string {
	return fmt.Sprintf("%sheight %d follows lower height %d, rows must be ordered by height descending",
		linePrefix(e.Line), e.Height, e.PreviousHeight)
}

// UniquenessError reports a hash that already appeared on an earlier row.
type UniquenessError struct {
	Line      int
	Hash      string
	FirstLine int
}

func (e *UniquenessError) Error() string {
	return fmt.Sprintf("%sduplicate hash %s, first seen on line %d", linePrefix(e.Line), e.Hash, e.FirstLine)
}

// BindingError reports a header that does not hash to its claimed hash, or a
// recorded header that differs from the raw block file.
type BindingError struct {
	Line     int
	Hash     string
	Got      string
	Expected string
	Reason   string
}

func (e *BindingError) Error() string {
	return fmt.Sprintf("%s%s for %s: got %s, expected %s", linePrefix(e.Line), e.Reason, e.Hash, e.Got, e.Expected)
}

// MissingHeaderError reports a row without a header although its raw block
// file is present. Expected is the header taken from the raw block.
type MissingHeaderError struct {
	Line     int
	Height   uint64
	Hash     string
	Expected string
}

func (e *MissingHeaderError) Error() string {
	return fmt.Sprintf("%sheader missing for %d-%s but raw block is present, expected header %s",
		linePrefix(e.Line), e.Height, e.Hash, e.Expected)
}

// OrphanBlockError reports a raw block file that no dataset row refers to.
type OrphanBlockError struct {
	Name string
}

func (e *OrphanBlockError) Error() string {
	return fmt.Sprintf("raw block %s has no dataset row", e.Name)
}

// ConflictError reports two observations of one hash that disagree on height.
type ConflictError struct {
	Hash           string
	ExistingHeight uint64
	IncomingHeight uint64
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("conflicting heights for %s: have %d, observed %d", e.Hash, e.ExistingHeight, e.IncomingHeight)
}

// TransportError reports a failed fetch from a node or an explorer.
type TransportError struct {
	Op     string
	Target string
	Err    error
}

func (e *TransportError) Error() string {
	if e.Target == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Target, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// BestChainError reports a dataset block that an explorer considers part of the best chain.
type BestChainError struct {
	Line   int
	Height uint64
	Hash   string
}

func (e *BestChainError) Error() string {
	return fmt.Sprintf("%sblock %d-%s is in the best chain", linePrefix(e.Line), e.Height, e.Hash)
}

func linePrefix(line int) string {
	if line <= 0 {
		return ""
	}
	return fmt.Sprintf("line %d: ", line)
}
