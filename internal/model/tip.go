package model

// TipStatus is the validation state a node reports for a chain tip.
type TipStatus string

const (
	TipActive       TipStatus = "active"
	TipInvalid      TipStatus = "invalid"
	TipHeadersOnly  TipStatus = "headers-only"
	TipValidHeaders TipStatus = "valid-headers"
	TipValidFork    TipStatus = "valid-fork"
)

// ChainTip is the highest block of an observed branch.
type ChainTip struct {
	Height    uint64
	Hash      string
	Status    TipStatus
	BranchLen uint64
}

// Stale reports whether the tip belongs to a branch that lost to the active chain.
func (t ChainTip) Stale() bool {
	return t.Status != TipActive && t.Status != TipInvalid
}
