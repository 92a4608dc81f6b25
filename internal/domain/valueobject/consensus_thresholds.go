package valueobject

import "github.com/shopspring/decimal"

// ConsensusThresholds contains the cut-offs used to label a slot's agreement.
type ConsensusThresholds struct {
	// Minimum observations before any verdict is given
	MinSample int

	// Strong agreement: entropy at or below, top share strictly above
	StrongMaxEntropy  decimal.Decimal // 0.35
	StrongMinTopShare decimal.Decimal // 0.50

	// No consensus: entropy at or above, top share strictly below
	WeakMinEntropy  decimal.Decimal // 0.50
	WeakMaxTopShare decimal.Decimal // 0.50
}

// DefaultConsensusThresholds returns the default consensus thresholds.
func DefaultConsensusThresholds() ConsensusThresholds {
	return ConsensusThresholds{
		MinSample:         10,
		StrongMaxEntropy:  decimal.RequireFromString("0.35"),
		StrongMinTopShare: decimal.RequireFromString("0.50"),
		WeakMinEntropy:    decimal.RequireFromString("0.50"),
		WeakMaxTopShare:   decimal.RequireFromString("0.50"),
	}
}

// IsStrong reports whether the rounded metrics indicate strong agreement.
func (t ConsensusThresholds) IsStrong(entropy, topShare decimal.Decimal) bool {
	return entropy.LessThanOrEqual(t.StrongMaxEntropy) && topShare.GreaterThan(t.StrongMinTopShare)
}

// IsWeak reports whether the rounded metrics indicate no consensus.
func (t ConsensusThresholds) IsWeak(entropy, topShare decimal.Decimal) bool {
	return entropy.GreaterThanOrEqual(t.WeakMinEntropy) && topShare.LessThan(t.WeakMaxTopShare)
}
