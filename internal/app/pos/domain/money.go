package domain

import (
	"fmt"
	"math/big"
	"strings"
)

// Money represents a monetary value with precise decimal arithmetic using big.Rat.
// Arithmetic never loses precision; conversion to float64 happens only at the
// storage and display boundary, where the schema uses FLOAT64 columns.
type Money struct {
	rat *big.Rat
}

// NewMoney creates a new Money instance from numerator and denominator.
// Example: NewMoney(24990, 100) represents 249.90
func NewMoney(numerator, denominator int64) (*Money, error) {
	if denominator == 0 {
		return nil, fmt.Errorf("denominator cannot be zero")
	}
	return &Money{rat: big.NewRat(numerator, denominator)}, nil
}

// NewMoneyFromString parses a decimal string ("249.90") into Money.
// Decimal input stays exact, which float64 parsing would not guarantee.
func NewMoneyFromString(s string) (*Money, error) {
	s = strings.TrimSpace(s)
	rat, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil, fmt.Errorf("cannot parse %q as a decimal number", s)
	}
	return &Money{rat: rat}, nil
}

// NewMoneyFromFloat64 converts a stored FLOAT64 column value into Money.
func NewMoneyFromFloat64(f float64) *Money {
	rat := new(big.Rat).SetFloat64(f)
	if rat == nil {
		rat = big.NewRat(0, 1)
	}
	return &Money{rat: rat}
}

// ZeroMoney returns a zero-valued Money.
func ZeroMoney() *Money {
	return &Money{rat: big.NewRat(0, 1)}
}

// Add adds two Money values and returns a new Money instance.
func (m *Money) Add(other *Money) *Money {
	return &Money{rat: new(big.Rat).Add(m.rat, other.rat)}
}

// Subtract subtracts another Money value from this one and returns a new Money instance.
func (m *Money) Subtract(other *Money) *Money {
	return &Money{rat: new(big.Rat).Sub(m.rat, other.rat)}
}

// MultiplyByInt multiplies this Money value by an integer quantity.
func (m *Money) MultiplyByInt(n int64) *Money {
	return &Money{rat: new(big.Rat).Mul(m.rat, big.NewRat(n, 1))}
}

// MultiplyByRat multiplies this Money value by a rational number.
func (m *Money) MultiplyByRat(rat *big.Rat) *Money {
	return &Money{rat: new(big.Rat).Mul(m.rat, rat)}
}

// IsZero returns true if the money value is zero.
func (m *Money) IsZero() bool {
	return m.rat.Sign() == 0
}

// IsNegative returns true if the money value is negative.
func (m *Money) IsNegative() bool {
	return m.rat.Sign() < 0
}

// LessThan returns true if this Money value is less than another.
func (m *Money) LessThan(other *Money) bool {
	return m.rat.Cmp(other.rat) < 0
}

// GreaterThan returns true if this Money value is greater than another.
func (m *Money) GreaterThan(other *Money) bool {
	return m.rat.Cmp(other.rat) > 0
}

// Equals returns true if this Money value equals another.
func (m *Money) Equals(other *Money) bool {
	return m.rat.Cmp(other.rat) == 0
}

// Min returns the smaller of this Money value and another.
func (m *Money) Min(other *Money) *Money {
	if m.rat.Cmp(other.rat) <= 0 {
		return m.Copy()
	}
	return other.Copy()
}

// Float64 returns the float64 representation used for storage and display.
func (m *Money) Float64() float64 {
	f, _ := m.rat.Float64()
	return f
}

// String returns a string representation of the money value.
func (m *Money) String() string {
	return m.rat.FloatString(2)
}

// Copy creates a deep copy of this Money instance.
func (m *Money) Copy() *Money {
	return &Money{rat: new(big.Rat).Set(m.rat)}
}
