package order

import (
	"strconv"
	"strings"
	"time"

	"washex/models"
)

// EstimateDelivery computes the expected delivery instant for a set of
// priced items: the start instant plus the largest turnaround time among
// them. Returns nil when no start instant is known or no item carries a
// usable turnaround time.
func EstimateDelivery(items []models.PricedLineItem, defs map[string]*models.ServiceDefinition, start *time.Time) *time.Time {
	if start == nil {
		return nil
	}

	maxHours := 0
	for _, item := range items {
		svc, ok := defs[item.ServiceID]
		if !ok {
			continue
		}
		if h := parseTATHours(svc.TATForTier(item.Tier)); h > maxHours {
			maxHours = h
		}
	}
	if maxHours == 0 {
		return nil
	}

	eta := start.Add(time.Duration(maxHours) * time.Hour)
	return &eta
}

// parseTATHours extracts the leading integer from a turnaround-time
// string ("24", "24h", "48 hours"). Anything unparseable counts as 0.
func parseTATHours(tat string) int {
	s := strings.TrimSpace(tat)
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}
	hours, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return hours
}
