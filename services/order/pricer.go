package order

import (
	"fmt"

	"washex/models"
	"washex/utils"
)

// PriceLineItem resolves one raw item request against its catalog entry
// and computes the line total. Pure function; the caller supplies the
// freshly fetched service definition.
//
// Unit price resolution: an explicit caller override wins, otherwise
// the catalog base rate times the tier multiplier.
func PriceLineItem(raw models.RawLineItem, svc *models.ServiceDefinition) (models.PricedLineItem, error) {
	multiplier := svc.TierMultiplier(raw.Tier)

	priced := models.PricedLineItem{
		ServiceID:   svc.ID,
		ServiceName: svc.Name,
		Tier:        raw.Tier,
	}

	switch svc.PricingModel {
	case models.PricingPerWeight:
		if raw.Weight < 0 {
			return models.PricedLineItem{}, utils.ValidationError{
				Message: fmt.Sprintf("%s: weight cannot be negative", svc.Name),
			}
		}
		var unit float64
		if raw.UnitPrice != nil {
			if *raw.UnitPrice < 0 {
				return models.PricedLineItem{}, utils.ValidationError{
					Message: fmt.Sprintf("%s: price override cannot be negative", svc.Name),
				}
			}
			unit = *raw.UnitPrice
		} else {
			unit = svc.Weight.RatePerKg * multiplier
		}
		priced.Weight = raw.Weight
		priced.UnitPrice = unit
		priced.ItemTotal = raw.Weight * unit

	case models.PricingPerPair:
		if raw.Pairs < 0 {
			return models.PricedLineItem{}, utils.ValidationError{
				Message: fmt.Sprintf("%s: pair count cannot be negative", svc.Name),
			}
		}
		var unit float64
		if raw.UnitPrice != nil {
			if *raw.UnitPrice < 0 {
				return models.PricedLineItem{}, utils.ValidationError{
					Message: fmt.Sprintf("%s: price override cannot be negative", svc.Name),
				}
			}
			unit = *raw.UnitPrice
		} else {
			unit = svc.Pair.RatePerPair * multiplier
		}
		priced.Pairs = raw.Pairs
		priced.UnitPrice = unit
		priced.ItemTotal = float64(raw.Pairs) * unit

	case models.PricingPerItem:
		for _, sub := range raw.SubItems {
			if sub.Quantity < 0 {
				return models.PricedLineItem{}, utils.ValidationError{
					Message: fmt.Sprintf("%s: quantity for %q cannot be negative", svc.Name, sub.Name),
				}
			}
			cat, ok := findSubcategory(svc, sub.Name)
			if !ok {
				return models.PricedLineItem{}, utils.ValidationError{
					Message: fmt.Sprintf("%s: unknown subcategory %q", svc.Name, sub.Name),
				}
			}
			var unit float64
			if sub.UnitPrice != nil {
				if *sub.UnitPrice < 0 {
					return models.PricedLineItem{}, utils.ValidationError{
						Message: fmt.Sprintf("%s: price override for %q cannot be negative", svc.Name, sub.Name),
					}
				}
				unit = *sub.UnitPrice
			} else {
				unit = cat.Price * multiplier
			}
			total := float64(sub.Quantity) * unit
			priced.SubItems = append(priced.SubItems, models.PricedSubItem{
				Name:      sub.Name,
				Quantity:  sub.Quantity,
				UnitPrice: unit,
				Total:     total,
			})
			priced.ItemTotal += total
		}

	default:
		return models.PricedLineItem{}, utils.ValidationError{
			Message: fmt.Sprintf("%s: unknown pricing model %q", svc.Name, svc.PricingModel),
		}
	}

	return priced, nil
}

func findSubcategory(svc *models.ServiceDefinition, name string) (models.Subcategory, bool) {
	if svc.Itemized == nil {
		return models.Subcategory{}, false
	}
	for _, cat := range svc.Itemized.Subcategories {
		if cat.Name == name {
			return cat, true
		}
	}
	return models.Subcategory{}, false
}
