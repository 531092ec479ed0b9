package models

import "fmt"

// Pricing models supported by the catalog.
const (
	PricingPerWeight = "perWeight" // billed per kg
	PricingPerPair   = "perPair"   // billed per pair (shoes, curtains)
	PricingPerItem   = "perItem"   // billed per garment via subcategories
)

// Service tiers and their default price multipliers.
const (
	TierStandard  = "Standard"
	TierExpress   = "Express"
	TierSuperfast = "Superfast"

	DefaultExpressMultiplier   = 1.5
	DefaultSuperfastMultiplier = 2.0
)

// WeightPricing holds rates for services billed by weight.
type WeightPricing struct {
	RatePerKg float64 `bson:"ratePerKg" json:"ratePerKg"`
}

// PairPricing holds rates for services billed per pair.
type PairPricing struct {
	RatePerPair float64 `bson:"ratePerPair" json:"ratePerPair"`
}

// Subcategory is a single priced garment type within an itemized service.
type Subcategory struct {
	Name  string  `bson:"name" json:"name"`
	Price float64 `bson:"price" json:"price"`
}

// ItemizedPricing holds the garment list for services billed per item.
type ItemizedPricing struct {
	Subcategories []Subcategory `bson:"subcategories" json:"subcategories"`
}

// ServiceDefinition describes one catalog entry. Exactly one of the
// pricing variants (Weight, Pair, Itemized) is non-nil, matching
// PricingModel.
type ServiceDefinition struct {
	ID           string           `bson:"id" json:"id"`
	Name         string           `bson:"name" json:"name"`
	PricingModel string           `bson:"pricingModel" json:"pricingModel"`
	Weight       *WeightPricing   `bson:"weight,omitempty" json:"weight,omitempty"`
	Pair         *PairPricing     `bson:"pair,omitempty" json:"pair,omitempty"`
	Itemized     *ItemizedPricing `bson:"itemized,omitempty" json:"itemized,omitempty"`

	// Turnaround times, hours encoded as text (e.g. "24", "48 hours").
	StandardTAT  string `bson:"standardTat" json:"standardTat"`
	ExpressTAT   string `bson:"expressTat" json:"expressTat"`
	SuperfastTAT string `bson:"superfastTat" json:"superfastTat"`

	ExpressMultiplier   float64 `bson:"expressMultiplier,omitempty" json:"expressMultiplier,omitempty"`
	SuperfastMultiplier float64 `bson:"superfastMultiplier,omitempty" json:"superfastMultiplier,omitempty"`

	Active bool `bson:"active" json:"active"`
}

// Validate checks that the pricing variant matching PricingModel is set.
func (s *ServiceDefinition) Validate() error {
	switch s.PricingModel {
	case PricingPerWeight:
		if s.Weight == nil {
			return fmt.Errorf("service %q: perWeight pricing requires a ratePerKg", s.Name)
		}
	case PricingPerPair:
		if s.Pair == nil {
			return fmt.Errorf("service %q: perPair pricing requires a ratePerPair", s.Name)
		}
	case PricingPerItem:
		if s.Itemized == nil || len(s.Itemized.Subcategories) == 0 {
			return fmt.Errorf("service %q: perItem pricing requires at least one subcategory", s.Name)
		}
	default:
		return fmt.Errorf("service %q: unknown pricing model %q", s.Name, s.PricingModel)
	}
	return nil
}

// TierMultiplier returns the price multiplier for the given tier,
// falling back to the defaults when the catalog entry has none.
func (s *ServiceDefinition) TierMultiplier(tier string) float64 {
	switch tier {
	case TierExpress:
		if s.ExpressMultiplier > 0 {
			return s.ExpressMultiplier
		}
		return DefaultExpressMultiplier
	case TierSuperfast:
		if s.SuperfastMultiplier > 0 {
			return s.SuperfastMultiplier
		}
		return DefaultSuperfastMultiplier
	default:
		return 1.0
	}
}

// TATForTier returns the raw turnaround-time string for the given tier.
func (s *ServiceDefinition) TATForTier(tier string) string {
	switch tier {
	case TierExpress:
		return s.ExpressTAT
	case TierSuperfast:
		return s.SuperfastTAT
	default:
		return s.StandardTAT
	}
}
