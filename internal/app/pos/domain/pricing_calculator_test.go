package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriceLine_NoRule(t *testing.T) {
	calc := NewPricingCalculator()

	p := calc.PriceLine(NewMoneyFromFloat64(100), 3, nil)

	assert.Equal(t, 0.0, p.DiscountPercent)
	assert.True(t, p.DiscountAmount.IsZero())
	assert.Equal(t, 300.0, p.Total.Float64())
}

func TestPriceLine_PercentRule(t *testing.T) {
	calc := NewPricingCalculator()
	rule := ReconstructCampaignRule("c1", 1, 3, KindPercent, 10)

	p := calc.PriceLine(NewMoneyFromFloat64(100), 3, rule)

	assert.Equal(t, 10.0, p.DiscountPercent)
	assert.Equal(t, 30.0, p.DiscountAmount.Float64())
	assert.Equal(t, 270.0, p.Total.Float64())
}

func TestPriceLine_RuleBelowThresholdIsIgnored(t *testing.T) {
	calc := NewPricingCalculator()
	rule := ReconstructCampaignRule("c1", 1, 5, KindPercent, 10)

	p := calc.PriceLine(NewMoneyFromFloat64(100), 3, rule)

	assert.Equal(t, 0.0, p.DiscountPercent)
	assert.Equal(t, 300.0, p.Total.Float64())
}

func TestPriceLine_FixedRule(t *testing.T) {
	calc := NewPricingCalculator()
	rule := ReconstructCampaignRule("c1", 1, 2, KindFixed, 50)

	p := calc.PriceLine(NewMoneyFromFloat64(100), 2, rule)

	assert.Equal(t, 50.0, p.DiscountAmount.Float64())
	assert.Equal(t, 150.0, p.Total.Float64())
	assert.Equal(t, 25.0, p.DiscountPercent)
}

func TestPriceLine_FixedRuleClampsToBaseTotal(t *testing.T) {
	calc := NewPricingCalculator()
	rule := ReconstructCampaignRule("c1", 1, 1, KindFixed, 500)

	p := calc.PriceLine(NewMoneyFromFloat64(100), 2, rule)

	// The discount never exceeds the base total, so the line bottoms out at
	// zero instead of going negative.
	assert.Equal(t, 200.0, p.DiscountAmount.Float64())
	assert.Equal(t, 0.0, p.Total.Float64())
	assert.Equal(t, 100.0, p.DiscountPercent)
}

func TestPriceLine_FixedRuleOnFreeItem(t *testing.T) {
	calc := NewPricingCalculator()
	rule := ReconstructCampaignRule("c1", 1, 1, KindFixed, 50)

	p := calc.PriceLine(ZeroMoney(), 3, rule)

	assert.Equal(t, 0.0, p.DiscountPercent)
	assert.True(t, p.DiscountAmount.IsZero())
	assert.True(t, p.Total.IsZero())
}
