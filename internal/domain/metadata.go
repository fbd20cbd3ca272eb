package domain

import "fmt"

// Metadata carries the descriptive fields of a ledger entry. Exactly the
// member matching the entry kind is set.
type Metadata struct {
	RoundUp *RoundUpMetadata `json:"round_up,omitempty"`
	Manual  *ManualMetadata  `json:"manual,omitempty"`
	Group   *GroupMetadata   `json:"group,omitempty"`
}

type RoundUpMetadata struct {
	SourceTransactionID string `json:"source_transaction_id"`
	Increment           string `json:"increment"`
	Merchant            string `json:"merchant,omitempty"`
	Category            string `json:"category,omitempty"`
	Currency            string `json:"currency,omitempty"`
}

type ManualMetadata struct {
	Note string `json:"note,omitempty"`
}

type GroupMetadata struct {
	Anonymous bool `json:"anonymous"`
}

func (m Metadata) Validate(kind LedgerKind) error {
	set := 0
	for _, present := range []bool{m.RoundUp != nil, m.Manual != nil, m.Group != nil} {
		if present {
			set++
		}
	}
	if set != 1 {
		return fmt.Errorf("%w: metadata for %s must carry exactly one variant", ErrValidation, kind)
	}

	switch kind {
	case KindRoundUp:
		if m.RoundUp == nil || m.RoundUp.SourceTransactionID == "" {
			return fmt.Errorf("%w: round-up metadata requires a source transaction", ErrValidation)
		}
	case KindManual:
		if m.Manual == nil {
			return fmt.Errorf("%w: manual metadata missing", ErrValidation)
		}
	case KindGroupManual:
		if m.Group == nil {
			return fmt.Errorf("%w: group metadata missing", ErrValidation)
		}
	default:
		return fmt.Errorf("%w: unknown ledger kind %q", ErrValidation, kind)
	}
	return nil
}

// Anonymous reports whether the contributor should be hidden from other
// group members.
func (m Metadata) Anonymous() bool {
	return m.Group != nil && m.Group.Anonymous
}
