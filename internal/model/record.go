// Package model defines the stale block dataset domain types.
package model

// Record is one entry of the stale block dataset.
type Record struct {
	Height uint64
	Hash   string
	// Header is the 80-byte block header as lowercase hex, or empty when unknown.
	Header string
}

// HasHeader reports whether the record carries a block header.
func (r Record) HasHeader() bool {
	return r.Header != ""
}

// Merge combines two observations of the same block. A known header is never
// replaced by an unknown one. Observations that disagree on height are not
// resolved: existing is returned unchanged together with a *ConflictError.
func Merge(existing *Record, incoming Record) (Record, error) {
	if existing == nil {
		return incoming, nil
	}
	if existing.Height != incoming.Height {
		return *existing, &ConflictError{
			Hash:           existing.Hash,
			ExistingHeight: existing.Height,
			IncomingHeight: incoming.Height,
		}
	}

	merged := *existing
	if incoming.HasHeader() {
		merged.Header = incoming.Header
	}
	return merged, nil
}
