package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCampaignRule(t *testing.T) {
	t.Run("valid percent rule", func(t *testing.T) {
		rule, err := NewCampaignRule("c1", 100001, 3, KindPercent, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(3), rule.MinQuantity())
	})

	t.Run("valid fixed rule", func(t *testing.T) {
		_, err := NewCampaignRule("c1", 100001, 1, KindFixed, 250)
		require.NoError(t, err)
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := NewCampaignRule("c1", 100001, 3, "bogof", 10)
		assert.ErrorIs(t, err, ErrInvalidCampaignKind)
	})

	t.Run("zero min quantity", func(t *testing.T) {
		_, err := NewCampaignRule("c1", 100001, 0, KindPercent, 10)
		assert.ErrorIs(t, err, ErrInvalidCampaignRule)
	})

	t.Run("negative value", func(t *testing.T) {
		_, err := NewCampaignRule("c1", 100001, 3, KindFixed, -1)
		assert.ErrorIs(t, err, ErrInvalidCampaignRule)
	})

	t.Run("percent over 100", func(t *testing.T) {
		_, err := NewCampaignRule("c1", 100001, 3, KindPercent, 101)
		assert.ErrorIs(t, err, ErrInvalidCampaignRule)
	})
}

func TestApplicableRule(t *testing.T) {
	r3 := ReconstructCampaignRule("a", 1, 3, KindPercent, 10)
	r5 := ReconstructCampaignRule("b", 1, 5, KindPercent, 20)
	r10 := ReconstructCampaignRule("c", 1, 10, KindPercent, 5)
	rules := []*CampaignRule{r10, r3, r5}

	t.Run("no rule qualifies below the lowest tier", func(t *testing.T) {
		assert.Nil(t, ApplicableRule(rules, 2))
	})

	t.Run("lowest tier at its threshold", func(t *testing.T) {
		assert.Same(t, r3, ApplicableRule(rules, 3))
	})

	t.Run("closest qualifying tier wins, not the most generous", func(t *testing.T) {
		// At quantity 12 the 10-tier wins even though it grants only 5%.
		assert.Same(t, r10, ApplicableRule(rules, 12))
	})

	t.Run("between tiers", func(t *testing.T) {
		assert.Same(t, r5, ApplicableRule(rules, 7))
	})

	t.Run("equal tiers tie-break on id", func(t *testing.T) {
		dup1 := ReconstructCampaignRule("x", 1, 3, KindPercent, 10)
		dup2 := ReconstructCampaignRule("y", 1, 3, KindFixed, 50)

		assert.Same(t, dup1, ApplicableRule([]*CampaignRule{dup2, dup1}, 4))
		assert.Same(t, dup1, ApplicableRule([]*CampaignRule{dup1, dup2}, 4))
	})

	t.Run("empty rules", func(t *testing.T) {
		assert.Nil(t, ApplicableRule(nil, 5))
	})
}
