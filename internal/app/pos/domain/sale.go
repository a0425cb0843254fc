package domain

import (
	"time"

	"github.com/light-bringer/pos-service/internal/pkg/clock"
)

// Field names for change tracking on the Sale aggregate
const (
	FieldSaleDate         = "sale_date"
	FieldPaymentMethod    = "payment_method"
	FieldPaymentInfo      = "payment_info"
	FieldTotalDiscountNum = "total_discount_num"
	FieldTotalAmount      = "total_amount"
)

// PaymentMethod tags how a sale was (or will be) settled.
type PaymentMethod string

const (
	// PaymentInProgress is the sentinel for an open or on-hold sale.
	PaymentInProgress PaymentMethod = "in-progress"
	PaymentCash       PaymentMethod = "cash"
	PaymentBank       PaymentMethod = "bank-transfer"
)

// IsTerminal reports whether the method settles a sale.
func (m PaymentMethod) IsTerminal() bool {
	return m == PaymentCash || m == PaymentBank
}

// Sale is the aggregate root for one customer transaction. It exclusively
// owns its cart lines; a sale is "on hold" exactly when its payment method is
// the in-progress sentinel, so resuming changes no data beyond the touched
// date.
//
// The stored discount and total fields are derived, not independent truth:
// Reprice recomputes them from current catalog prices and campaign rules, and
// callers must reprice (or know the sale is fresh) before trusting totals.
type Sale struct {
	id                string
	saleDate          time.Time
	customerName      string
	totalDiscountPerc int64
	totalDiscountNum  *Money
	totalAmount       *Money
	paymentMethod     PaymentMethod
	paymentInfo       string

	lines        []*CartLine
	removedLines []string

	clock   clock.Clock
	changes *ChangeTracker
	events  []DomainEvent
}

// NewSale creates a new open Sale with zero totals and the in-progress
// sentinel payment method.
func NewSale(id, customerName string, clk clock.Clock) (*Sale, error) {
	if len(id) == 0 || len(id) > MaxSaleIDLen {
		return nil, ErrDuplicateSaleID
	}
	if len(customerName) > MaxNameLen {
		return nil, ErrInvalidCustomerName
	}

	s := &Sale{
		id:               id,
		saleDate:         clk.Now(),
		customerName:     customerName,
		totalDiscountNum: ZeroMoney(),
		totalAmount:      ZeroMoney(),
		paymentMethod:    PaymentInProgress,
		clock:            clk,
		changes:          NewChangeTracker(),
		events:           make([]DomainEvent, 0),
	}

	s.recordEvent(&SaleStartedEvent{
		SaleID:       s.id,
		CustomerName: s.customerName,
		StartedAt:    s.saleDate,
	})

	return s, nil
}

// ReconstructSale reconstitutes a Sale and its lines from the database.
func ReconstructSale(
	id string,
	saleDate time.Time,
	customerName string,
	totalDiscountPerc int64,
	totalDiscountNum, totalAmount *Money,
	paymentMethod PaymentMethod,
	paymentInfo string,
	lines []*CartLine,
	clk clock.Clock,
) *Sale {
	return &Sale{
		id:                id,
		saleDate:          saleDate,
		customerName:      customerName,
		totalDiscountPerc: totalDiscountPerc,
		totalDiscountNum:  totalDiscountNum,
		totalAmount:       totalAmount,
		paymentMethod:     paymentMethod,
		paymentInfo:       paymentInfo,
		lines:             lines,
		clock:             clk,
		changes:           NewChangeTracker(),
		events:            make([]DomainEvent, 0),
	}
}

// ReconstructLine builds a persisted cart line for ReconstructSale.
func ReconstructLine(id string, itemID, count int64, discountPerc float64, discountNum, total *Money) *CartLine {
	return reconstructCartLine(id, itemID, count, discountPerc, discountNum, total)
}

// Getters
func (s *Sale) ID() string                   { return s.id }
func (s *Sale) SaleDate() time.Time          { return s.saleDate }
func (s *Sale) CustomerName() string         { return s.customerName }
func (s *Sale) TotalDiscountPerc() int64     { return s.totalDiscountPerc }
func (s *Sale) TotalDiscountNum() *Money     { return s.totalDiscountNum.Copy() }
func (s *Sale) TotalAmount() *Money          { return s.totalAmount.Copy() }
func (s *Sale) PaymentMethod() PaymentMethod { return s.paymentMethod }
func (s *Sale) PaymentInfo() string          { return s.paymentInfo }
func (s *Sale) Lines() []*CartLine           { return s.lines }
func (s *Sale) RemovedLineIDs() []string     { return s.removedLines }
func (s *Sale) Changes() *ChangeTracker      { return s.changes }
func (s *Sale) DomainEvents() []DomainEvent  { return s.events }

// OnHold reports whether the sale is suspended (or still open at the till);
// both states carry the sentinel method, the distinction is purely which
// screen has the sale loaded.
func (s *Sale) OnHold() bool {
	return s.paymentMethod == PaymentInProgress
}

// AddItem merges a quantity into the existing line for the item, or creates a
// new line (with the cashier's manual discount folded into its initial total)
// when the item is not in the cart yet. The caller supplies the line id and
// has already reserved stock on the Item aggregate.
func (s *Sale) AddItem(lineID string, item *Item, count int64, manualPerc float64, manualNum *Money) error {
	if count <= 0 {
		return ErrInvalidQuantity
	}

	line := s.lineForItem(item.ID())
	if line != nil {
		line.merge(count, item.Price())
	} else {
		var err error
		line, err = newCartLine(lineID, item.ID(), item.Price(), count, manualPerc, manualNum)
		if err != nil {
			return err
		}
		s.lines = append(s.lines, line)
	}

	s.Touch()
	s.recordEvent(&SaleLineAddedEvent{
		SaleID:  s.id,
		ItemID:  item.ID(),
		Count:   count,
		AddedAt: s.saleDate,
	})
	return nil
}

// RemoveLine deletes the line with the given id. Stock is deliberately not
// restored here; only cancelling the whole sale returns quantities to the
// catalog.
func (s *Sale) RemoveLine(lineID string) error {
	for i, line := range s.lines {
		if line.id != lineID {
			continue
		}
		s.lines = append(s.lines[:i], s.lines[i+1:]...)
		s.removedLines = append(s.removedLines, lineID)
		s.Touch()
		s.recordEvent(&SaleLineRemovedEvent{
			SaleID:    s.id,
			ItemID:    line.itemID,
			RemovedAt: s.saleDate,
		})
		return nil
	}
	return ErrLineNotFound
}

// Reprice re-derives every line's discount and total from current unit prices
// and campaign rules, then the sale's aggregate totals. It is idempotent and
// deterministic: unchanged inputs produce identical output and no dirty
// marks.
//
// Lines whose item has been removed from the catalog keep their stored values
// (the accepted dangling-line inconsistency) but still count toward the
// totals.
func (s *Sale) Reprice(prices map[int64]*Money, rules map[int64][]*CampaignRule, calc *PricingCalculator) {
	discountSum := ZeroMoney()
	totalSum := ZeroMoney()

	for _, line := range s.lines {
		if unitPrice, ok := prices[line.itemID]; ok {
			rule := ApplicableRule(rules[line.itemID], line.count)
			line.setPricing(calc.PriceLine(unitPrice, line.count, rule))
		}
		discountSum = discountSum.Add(line.discountNum)
		totalSum = totalSum.Add(line.total)
	}

	changed := false
	if !s.totalDiscountNum.Equals(discountSum) {
		s.totalDiscountNum = discountSum
		s.changes.MarkDirty(FieldTotalDiscountNum)
		changed = true
	}
	if !s.totalAmount.Equals(totalSum) {
		s.totalAmount = totalSum
		s.changes.MarkDirty(FieldTotalAmount)
		changed = true
	}

	if changed {
		s.recordEvent(&SaleRepricedEvent{
			SaleID:           s.id,
			TotalDiscountNum: s.totalDiscountNum.Float64(),
			TotalAmount:      s.totalAmount.Float64(),
		})
	}
}

// Hold suspends the sale: the sentinel payment method marks it on-hold and
// the date is refreshed. Lines are untouched.
func (s *Sale) Hold() {
	if s.paymentMethod != PaymentInProgress {
		s.paymentMethod = PaymentInProgress
		s.changes.MarkDirty(FieldPaymentMethod)
	}
	s.Touch()
	s.recordEvent(&SaleHeldEvent{SaleID: s.id, HeldAt: s.saleDate})
}

// Resume reloads a suspended sale into an active context. The only data
// change is the touched date.
func (s *Sale) Resume() {
	s.Touch()
	s.recordEvent(&SaleResumedEvent{SaleID: s.id, ResumedAt: s.saleDate})
}

// Finalize settles the sale with a terminal payment method and an optional
// free-text reference (e.g. the sender name of a bank transfer). Nothing
// locks a finalized sale against further mutation.
func (s *Sale) Finalize(method PaymentMethod, reference string) error {
	if !method.IsTerminal() {
		return ErrInvalidPaymentMethod
	}

	s.paymentMethod = method
	s.changes.MarkDirty(FieldPaymentMethod)
	s.paymentInfo = reference
	s.changes.MarkDirty(FieldPaymentInfo)
	s.Touch()

	s.recordEvent(&SaleFinalizedEvent{
		SaleID:      s.id,
		Method:      string(method),
		Reference:   reference,
		FinalizedAt: s.saleDate,
	})
	return nil
}

// Cancel records the cancellation event; the use case restores stock and
// deletes the sale row (lines cascade with it).
func (s *Sale) Cancel() {
	s.recordEvent(&SaleCancelledEvent{
		SaleID:      s.id,
		CancelledAt: s.clock.Now(),
	})
}

// Touch refreshes the last-touched timestamp.
func (s *Sale) Touch() {
	s.saleDate = s.clock.Now()
	s.changes.MarkDirty(FieldSaleDate)
}

func (s *Sale) lineForItem(itemID int64) *CartLine {
	for _, line := range s.lines {
		if line.itemID == itemID {
			return line
		}
	}
	return nil
}

func (s *Sale) recordEvent(event DomainEvent) {
	s.events = append(s.events, event)
}

// ClearEvents clears all recorded domain events (called after publishing).
func (s *Sale) ClearEvents() {
	s.events = make([]DomainEvent, 0)
}
