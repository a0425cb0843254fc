package domain

import "math/big"

// CartLine is one product's aggregated quantity, discount and total within a
// sale. A sale holds at most one line per item: repeat adds merge into the
// existing line instead of creating a duplicate.
type CartLine struct {
	id           string
	itemID       int64
	count        int64
	discountPerc float64
	discountNum  *Money
	total        *Money

	isNew bool
	dirty bool
}

// newCartLine prices a fresh line with the cashier's manual discount folded
// into the unit price. This initial total only survives until the first
// campaign repricing, which overwrites all per-line discount fields.
func newCartLine(id string, itemID int64, unitPrice *Money, count int64, manualPerc float64, manualNum *Money) (*CartLine, error) {
	if count <= 0 {
		return nil, ErrInvalidQuantity
	}
	if manualPerc < 0 || manualPerc > 100 {
		return nil, ErrInvalidDiscount
	}
	if manualNum == nil {
		manualNum = ZeroMoney()
	}
	if manualNum.IsNegative() {
		return nil, ErrInvalidDiscount
	}

	unit := unitPrice.Copy()
	if manualPerc > 0 {
		keep := new(big.Rat).SetFloat64((100 - manualPerc) / 100)
		unit = unit.MultiplyByRat(keep)
	}
	unit = unit.Subtract(manualNum)

	return &CartLine{
		id:           id,
		itemID:       itemID,
		count:        count,
		discountPerc: manualPerc,
		discountNum:  manualNum.Copy(),
		total:        unit.MultiplyByInt(count),
		isNew:        true,
	}, nil
}

// reconstructCartLine reconstitutes a line from the database.
func reconstructCartLine(id string, itemID, count int64, discountPerc float64, discountNum, total *Money) *CartLine {
	return &CartLine{
		id:           id,
		itemID:       itemID,
		count:        count,
		discountPerc: discountPerc,
		discountNum:  discountNum,
		total:        total,
	}
}

// Getters
func (l *CartLine) ID() string            { return l.id }
func (l *CartLine) ItemID() int64         { return l.itemID }
func (l *CartLine) Count() int64          { return l.count }
func (l *CartLine) DiscountPerc() float64 { return l.discountPerc }
func (l *CartLine) DiscountNum() *Money   { return l.discountNum.Copy() }
func (l *CartLine) Total() *Money         { return l.total.Copy() }

// IsNew reports whether the line has not been persisted yet.
func (l *CartLine) IsNew() bool { return l.isNew }

// IsDirty reports whether the line needs an update write.
func (l *CartLine) IsDirty() bool { return l.dirty }

// merge folds an additional quantity into the line at the current unit price.
// The stored total is extended rather than recomputed; repricing normalizes
// all discount fields afterwards.
func (l *CartLine) merge(count int64, unitPrice *Money) {
	l.count += count
	l.total = l.total.Add(unitPrice.MultiplyByInt(count))
	l.dirty = true
}

// setPricing overwrites the derived discount and total fields. The line is
// marked dirty only when a value actually changed, which keeps repricing
// idempotent at the write level too.
func (l *CartLine) setPricing(p LinePricing) {
	if l.discountPerc == p.DiscountPercent &&
		l.discountNum.Equals(p.DiscountAmount) &&
		l.total.Equals(p.Total) {
		return
	}
	l.discountPerc = p.DiscountPercent
	l.discountNum = p.DiscountAmount.Copy()
	l.total = p.Total.Copy()
	l.dirty = true
}
