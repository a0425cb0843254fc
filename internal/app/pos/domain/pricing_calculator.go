package domain

import "math/big"

// LinePricing is the derived discount and total for one cart line.
type LinePricing struct {
	DiscountPercent float64
	DiscountAmount  *Money
	Total           *Money
}

// PricingCalculator is the domain service that derives a line's discount and
// total from the current unit price, the quantity, and the applicable
// campaign rule. It is the single source of truth for the pricing formulas;
// Sale.Reprice delegates every line to it.
type PricingCalculator struct{}

// NewPricingCalculator creates a new PricingCalculator instance.
func NewPricingCalculator() *PricingCalculator {
	return &PricingCalculator{}
}

// PriceLine computes the pricing for one line.
//
// baseTotal = unitPrice * quantity, always from the current catalog price, so
// price edits after line creation retroactively affect repricing.
//
//   - no qualifying rule: zero discount, total = baseTotal
//   - percent rule: amount = baseTotal * value / 100, percent = value
//   - fixed rule: amount = min(baseTotal, value) so a line never goes
//     negative, percent = amount / baseTotal * 100 (0 for an empty base)
func (pc *PricingCalculator) PriceLine(unitPrice *Money, quantity int64, rule *CampaignRule) LinePricing {
	baseTotal := unitPrice.MultiplyByInt(quantity)

	if rule == nil || quantity < rule.MinQuantity() {
		return LinePricing{
			DiscountPercent: 0,
			DiscountAmount:  ZeroMoney(),
			Total:           baseTotal,
		}
	}

	var amount *Money
	var percent float64

	switch rule.Kind() {
	case KindPercent:
		multiplier := new(big.Rat).SetFloat64(rule.Value() / 100)
		amount = baseTotal.MultiplyByRat(multiplier)
		percent = rule.Value()
	case KindFixed:
		amount = baseTotal.Min(NewMoneyFromFloat64(rule.Value()))
		percent = 0
		if !baseTotal.IsZero() {
			ratio := new(big.Rat).Quo(amount.rat, baseTotal.rat)
			f, _ := new(big.Rat).Mul(ratio, big.NewRat(100, 1)).Float64()
			percent = f
		}
	default:
		amount = ZeroMoney()
	}

	return LinePricing{
		DiscountPercent: percent,
		DiscountAmount:  amount,
		Total:           baseTotal.Subtract(amount),
	}
}
