package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceDefinitionValidate(t *testing.T) {
	t.Run("variant must match pricing model", func(t *testing.T) {
		svc := ServiceDefinition{Name: "Wash & Fold", PricingModel: PricingPerWeight}
		require.Error(t, svc.Validate())

		svc.Weight = &WeightPricing{RatePerKg: 80}
		require.NoError(t, svc.Validate())
	})

	t.Run("perPair requires a rate", func(t *testing.T) {
		svc := ServiceDefinition{Name: "Shoe Cleaning", PricingModel: PricingPerPair}
		require.Error(t, svc.Validate())

		svc.Pair = &PairPricing{RatePerPair: 250}
		require.NoError(t, svc.Validate())
	})

	t.Run("perItem requires subcategories", func(t *testing.T) {
		svc := ServiceDefinition{Name: "Dry Cleaning", PricingModel: PricingPerItem}
		require.Error(t, svc.Validate())

		svc.Itemized = &ItemizedPricing{}
		require.Error(t, svc.Validate())

		svc.Itemized.Subcategories = []Subcategory{{Name: "Shirt", Price: 60}}
		require.NoError(t, svc.Validate())
	})

	t.Run("unknown pricing model", func(t *testing.T) {
		svc := ServiceDefinition{Name: "Mystery", PricingModel: "perGarment"}
		require.Error(t, svc.Validate())
	})
}

func TestTierMultiplier(t *testing.T) {
	svc := ServiceDefinition{}
	assert.InDelta(t, 1.0, svc.TierMultiplier(TierStandard), 1e-9)
	assert.InDelta(t, 1.5, svc.TierMultiplier(TierExpress), 1e-9)
	assert.InDelta(t, 2.0, svc.TierMultiplier(TierSuperfast), 1e-9)

	// Catalog overrides beat the defaults.
	svc.ExpressMultiplier = 1.25
	svc.SuperfastMultiplier = 2.5
	assert.InDelta(t, 1.25, svc.TierMultiplier(TierExpress), 1e-9)
	assert.InDelta(t, 2.5, svc.TierMultiplier(TierSuperfast), 1e-9)

	// Unrecognized tiers price as standard.
	assert.InDelta(t, 1.0, svc.TierMultiplier("Turbo"), 1e-9)
}

func TestTATForTier(t *testing.T) {
	svc := ServiceDefinition{StandardTAT: "48", ExpressTAT: "24", SuperfastTAT: "8"}
	assert.Equal(t, "48", svc.TATForTier(TierStandard))
	assert.Equal(t, "24", svc.TATForTier(TierExpress))
	assert.Equal(t, "8", svc.TATForTier(TierSuperfast))
	assert.Equal(t, "48", svc.TATForTier(""))
}
