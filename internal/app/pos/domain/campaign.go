package domain

// DiscountKind is the kind of discount a campaign rule grants.
type DiscountKind string

const (
	KindPercent DiscountKind = "percent"
	KindFixed   DiscountKind = "fixed"
)

// CampaignRule is a quantity-tiered discount definition for one item.
// Value is percentage points for percent rules and a money amount for fixed
// rules, matching the single disc_val column both kinds share.
type CampaignRule struct {
	id          string
	itemID      int64
	minQuantity int64
	kind        DiscountKind
	value       float64
}

// NewCampaignRule creates a new CampaignRule with validation.
func NewCampaignRule(id string, itemID, minQuantity int64, kind DiscountKind, value float64) (*CampaignRule, error) {
	if kind != KindPercent && kind != KindFixed {
		return nil, ErrInvalidCampaignKind
	}
	if minQuantity < 1 || value < 0 {
		return nil, ErrInvalidCampaignRule
	}
	if kind == KindPercent && value > 100 {
		return nil, ErrInvalidCampaignRule
	}
	return &CampaignRule{
		id:          id,
		itemID:      itemID,
		minQuantity: minQuantity,
		kind:        kind,
		value:       value,
	}, nil
}

// ReconstructCampaignRule reconstitutes a rule from the database.
func ReconstructCampaignRule(id string, itemID, minQuantity int64, kind DiscountKind, value float64) *CampaignRule {
	return &CampaignRule{
		id:          id,
		itemID:      itemID,
		minQuantity: minQuantity,
		kind:        kind,
		value:       value,
	}
}

// Getters
func (r *CampaignRule) ID() string         { return r.id }
func (r *CampaignRule) ItemID() int64      { return r.itemID }
func (r *CampaignRule) MinQuantity() int64 { return r.minQuantity }
func (r *CampaignRule) Kind() DiscountKind { return r.kind }
func (r *CampaignRule) Value() float64     { return r.value }

// ApplicableRule selects the rule that applies to a line of the given
// quantity: among all rules with MinQuantity <= quantity, the one with the
// greatest MinQuantity wins (the closest qualifying tier, not necessarily the
// most generous discount). Returns nil when no rule qualifies.
//
// Equal tiers tie-break on rule id so the selection is deterministic
// regardless of input order.
func ApplicableRule(rules []*CampaignRule, quantity int64) *CampaignRule {
	var best *CampaignRule
	for _, r := range rules {
		if r.minQuantity > quantity {
			continue
		}
		if best == nil || r.minQuantity > best.minQuantity ||
			(r.minQuantity == best.minQuantity && r.id < best.id) {
			best = r
		}
	}
	return best
}
