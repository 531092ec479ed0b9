package order

import (
	"testing"

	"washex/models"
	"washex/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func washFold() *models.ServiceDefinition {
	return &models.ServiceDefinition{
		ID: "svc-wf", Name: "Wash & Fold", PricingModel: models.PricingPerWeight,
		Weight: &models.WeightPricing{RatePerKg: 80},
	}
}

func shoeCleaning() *models.ServiceDefinition {
	return &models.ServiceDefinition{
		ID: "svc-shoe", Name: "Shoe Cleaning", PricingModel: models.PricingPerPair,
		Pair: &models.PairPricing{RatePerPair: 250},
	}
}

func dryCleaning() *models.ServiceDefinition {
	return &models.ServiceDefinition{
		ID: "svc-dc", Name: "Dry Cleaning", PricingModel: models.PricingPerItem,
		Itemized: &models.ItemizedPricing{Subcategories: []models.Subcategory{
			{Name: "Shirt", Price: 60},
			{Name: "Trousers", Price: 80},
		}},
	}
}

func TestPriceLineItemPerWeight(t *testing.T) {
	tests := []struct {
		name      string
		raw       models.RawLineItem
		wantUnit  float64
		wantTotal float64
	}{
		{
			name:      "standard tier uses base rate",
			raw:       models.RawLineItem{ServiceID: "svc-wf", Tier: models.TierStandard, Weight: 3},
			wantUnit:  80,
			wantTotal: 240,
		},
		{
			name:      "express tier applies default multiplier",
			raw:       models.RawLineItem{ServiceID: "svc-wf", Tier: models.TierExpress, Weight: 3},
			wantUnit:  120,
			wantTotal: 360,
		},
		{
			name:      "superfast tier doubles the rate",
			raw:       models.RawLineItem{ServiceID: "svc-wf", Tier: models.TierSuperfast, Weight: 2},
			wantUnit:  160,
			wantTotal: 320,
		},
		{
			name:      "caller override wins over catalog rate",
			raw:       models.RawLineItem{ServiceID: "svc-wf", Tier: models.TierExpress, Weight: 4, UnitPrice: floatPtr(100)},
			wantUnit:  100,
			wantTotal: 400,
		},
		{
			name:      "zero weight prices to zero",
			raw:       models.RawLineItem{ServiceID: "svc-wf", Tier: models.TierStandard, Weight: 0},
			wantUnit:  80,
			wantTotal: 0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			priced, err := PriceLineItem(tc.raw, washFold())
			require.NoError(t, err)
			assert.Equal(t, "Wash & Fold", priced.ServiceName)
			assert.Equal(t, tc.raw.Weight, priced.Weight)
			assert.InDelta(t, tc.wantUnit, priced.UnitPrice, 1e-9)
			assert.InDelta(t, tc.wantTotal, priced.ItemTotal, 1e-9)
		})
	}
}

func TestPriceLineItemPerWeightNegative(t *testing.T) {
	raw := models.RawLineItem{ServiceID: "svc-wf", Tier: models.TierStandard, Weight: -1}
	_, err := PriceLineItem(raw, washFold())
	var verr utils.ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestPriceLineItemRejectsNegativeOverride(t *testing.T) {
	// A negative override would drive the item total, and with it the
	// bill amount, below zero.
	var verr utils.ValidationError

	t.Run("perWeight", func(t *testing.T) {
		raw := models.RawLineItem{ServiceID: "svc-wf", Tier: models.TierStandard, Weight: 2, UnitPrice: floatPtr(-50)}
		_, err := PriceLineItem(raw, washFold())
		require.ErrorAs(t, err, &verr)
	})

	t.Run("perPair", func(t *testing.T) {
		raw := models.RawLineItem{ServiceID: "svc-shoe", Tier: models.TierStandard, Pairs: 1, UnitPrice: floatPtr(-1)}
		_, err := PriceLineItem(raw, shoeCleaning())
		require.ErrorAs(t, err, &verr)
	})

	t.Run("perItem subcategory", func(t *testing.T) {
		raw := models.RawLineItem{
			ServiceID: "svc-dc", Tier: models.TierStandard,
			SubItems: []models.RawSubItem{{Name: "Shirt", Quantity: 2, UnitPrice: floatPtr(-60)}},
		}
		_, err := PriceLineItem(raw, dryCleaning())
		require.ErrorAs(t, err, &verr)
	})

	t.Run("zero override is allowed", func(t *testing.T) {
		raw := models.RawLineItem{ServiceID: "svc-wf", Tier: models.TierStandard, Weight: 2, UnitPrice: floatPtr(0)}
		priced, err := PriceLineItem(raw, washFold())
		require.NoError(t, err)
		assert.InDelta(t, 0, priced.ItemTotal, 1e-9)
	})
}

func TestPriceLineItemPerPair(t *testing.T) {
	raw := models.RawLineItem{ServiceID: "svc-shoe", Tier: models.TierExpress, Pairs: 2}
	priced, err := PriceLineItem(raw, shoeCleaning())
	require.NoError(t, err)
	assert.Equal(t, 2, priced.Pairs)
	assert.InDelta(t, 375, priced.UnitPrice, 1e-9)
	assert.InDelta(t, 750, priced.ItemTotal, 1e-9)
}

func TestPriceLineItemPerPairOverride(t *testing.T) {
	raw := models.RawLineItem{ServiceID: "svc-shoe", Tier: models.TierSuperfast, Pairs: 3, UnitPrice: floatPtr(200)}
	priced, err := PriceLineItem(raw, shoeCleaning())
	require.NoError(t, err)
	assert.InDelta(t, 200, priced.UnitPrice, 1e-9)
	assert.InDelta(t, 600, priced.ItemTotal, 1e-9)
}

func TestPriceLineItemPerItem(t *testing.T) {
	raw := models.RawLineItem{
		ServiceID: "svc-dc", Tier: models.TierStandard,
		SubItems: []models.RawSubItem{
			{Name: "Shirt", Quantity: 2},
			{Name: "Trousers", Quantity: 1, UnitPrice: floatPtr(70)},
		},
	}
	priced, err := PriceLineItem(raw, dryCleaning())
	require.NoError(t, err)
	require.Len(t, priced.SubItems, 2)

	assert.InDelta(t, 60, priced.SubItems[0].UnitPrice, 1e-9)
	assert.InDelta(t, 120, priced.SubItems[0].Total, 1e-9)
	assert.InDelta(t, 70, priced.SubItems[1].UnitPrice, 1e-9)
	assert.InDelta(t, 70, priced.SubItems[1].Total, 1e-9)
	assert.InDelta(t, 190, priced.ItemTotal, 1e-9)
}

func TestPriceLineItemPerItemExpressMultiplier(t *testing.T) {
	raw := models.RawLineItem{
		ServiceID: "svc-dc", Tier: models.TierExpress,
		SubItems: []models.RawSubItem{{Name: "Shirt", Quantity: 1}},
	}
	priced, err := PriceLineItem(raw, dryCleaning())
	require.NoError(t, err)
	assert.InDelta(t, 90, priced.SubItems[0].UnitPrice, 1e-9)
}

func TestPriceLineItemUnknownSubcategory(t *testing.T) {
	raw := models.RawLineItem{
		ServiceID: "svc-dc", Tier: models.TierStandard,
		SubItems: []models.RawSubItem{{Name: "Curtains", Quantity: 1}},
	}
	_, err := PriceLineItem(raw, dryCleaning())
	var verr utils.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Message, "Curtains")
}

func TestPriceLineItemUnknownSubcategoryEvenWithOverride(t *testing.T) {
	// An override price never legitimizes a subcategory the catalog
	// does not know.
	raw := models.RawLineItem{
		ServiceID: "svc-dc", Tier: models.TierStandard,
		SubItems: []models.RawSubItem{{Name: "Curtains", Quantity: 1, UnitPrice: floatPtr(500)}},
	}
	_, err := PriceLineItem(raw, dryCleaning())
	var verr utils.ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestPriceLineItemCustomMultipliers(t *testing.T) {
	svc := washFold()
	svc.ExpressMultiplier = 1.25
	svc.SuperfastMultiplier = 3

	raw := models.RawLineItem{ServiceID: "svc-wf", Tier: models.TierExpress, Weight: 2}
	priced, err := PriceLineItem(raw, svc)
	require.NoError(t, err)
	assert.InDelta(t, 100, priced.UnitPrice, 1e-9)

	raw.Tier = models.TierSuperfast
	priced, err = PriceLineItem(raw, svc)
	require.NoError(t, err)
	assert.InDelta(t, 240, priced.UnitPrice, 1e-9)
}

func TestPriceLineItemUnknownPricingModel(t *testing.T) {
	svc := &models.ServiceDefinition{ID: "svc-x", Name: "Mystery", PricingModel: "perGarment"}
	_, err := PriceLineItem(models.RawLineItem{ServiceID: "svc-x"}, svc)
	var verr utils.ValidationError
	require.ErrorAs(t, err, &verr)
}
