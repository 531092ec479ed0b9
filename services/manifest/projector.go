// Package manifest projects scheduled orders into printable pickup and
// delivery manifests.
package manifest

import (
	"context"
	"fmt"
	"strings"
	"time"

	customerRepo "washex/database/repository/customer"
	orderRepo "washex/database/repository/order"
	"washex/models"
	"washex/utils"

	"go.uber.org/zap"
)

// Renderer turns manifest rows into a printable document. The projector
// only guarantees the row shape; pagination and layout belong here.
type Renderer interface {
	Render(title string, day time.Time, rows []models.ManifestRow) ([]byte, error)
}

// ManifestService builds and renders operational manifests.
type ManifestService interface {
	BuildRows(ctx context.Context, kind string, day time.Time) ([]models.ManifestRow, error)
	RenderPDF(ctx context.Context, kind string, day time.Time) ([]byte, error)
}

// DefaultManifestService is the production ManifestService.
type DefaultManifestService struct {
	OrderRepo    orderRepo.OrderRepository
	CustomerRepo customerRepo.CustomerRepository
	Renderer     Renderer
}

// BuildRows assembles the manifest rows for one day. Pickup manifests
// carry the slot name in the summary column; delivery manifests carry
// the amount due.
func (s *DefaultManifestService) BuildRows(ctx context.Context, kind string, day time.Time) ([]models.ManifestRow, error) {
	logger := utils.GetLogger()

	var orders []models.Order
	var err error
	switch kind {
	case models.ManifestPickup:
		orders, err = s.OrderRepo.ListByPickupDate(ctx, day)
	case models.ManifestDelivery:
		orders, err = s.OrderRepo.ListByDeliveryDate(ctx, day)
	default:
		return nil, utils.ValidationError{Message: fmt.Sprintf("unknown manifest kind %q", kind)}
	}
	if err != nil {
		return nil, err
	}

	rows := make([]models.ManifestRow, 0, len(orders))
	for i, ord := range orders {
		name, phone := "", ""
		if customer, err := s.CustomerRepo.GetByID(ctx, ord.CustomerID); err == nil {
			name, phone = customer.Name, customer.Phone
		} else {
			logger.Warn("manifest: customer lookup failed", zap.String("order", ord.Code), zap.Error(err))
		}

		summary := ord.PickupSlotName
		agent := ord.PickupAgentName
		if kind == models.ManifestDelivery {
			summary = fmt.Sprintf("Rs %.2f due", ord.BillAmount)
			agent = ord.DeliveryAgentName
		}
		if agent == "" {
			agent = "Unassigned"
		}

		rows = append(rows, models.ManifestRow{
			Seq:          i + 1,
			OrderCode:    fmt.Sprintf("%s (%s)", ord.Code, ord.Source),
			CustomerName: name,
			Address:      combineAddress(ord),
			Phone:        phone,
			Summary:      summary,
			Items:        flattenItems(ord.Items),
			AgentName:    agent,
			Notes:        "",
		})
	}
	return rows, nil
}

// RenderPDF builds the rows and hands them to the renderer.
func (s *DefaultManifestService) RenderPDF(ctx context.Context, kind string, day time.Time) ([]byte, error) {
	rows, err := s.BuildRows(ctx, kind, day)
	if err != nil {
		return nil, err
	}
	title := "Pickup Manifest"
	if kind == models.ManifestDelivery {
		title = "Delivery Manifest"
	}
	out, err := s.Renderer.Render(title, day, rows)
	if err != nil {
		return nil, err
	}
	utils.ManifestsRendered.WithLabelValues(kind).Inc()
	return out, nil
}

func combineAddress(ord models.Order) string {
	parts := []string{ord.DeliveryAddress}
	if ord.DeliverySociety != "" {
		parts = append(parts, ord.DeliverySociety)
	}
	if ord.DeliveryPincode != "" {
		parts = append(parts, ord.DeliveryPincode)
	}
	return strings.Join(parts, ", ")
}

// flattenItems renders the item list as one line, e.g.
// "Wash & Fold [Express] 3.0kg; Dry Cleaning: 2x Shirt, 1x Trousers".
func flattenItems(items []models.PricedLineItem) string {
	var parts []string
	for _, item := range items {
		label := item.ServiceName
		if item.Tier != "" && item.Tier != models.TierStandard {
			label += " [" + item.Tier + "]"
		}
		switch {
		case len(item.SubItems) > 0:
			var subs []string
			for _, sub := range item.SubItems {
				subs = append(subs, fmt.Sprintf("%dx %s", sub.Quantity, sub.Name))
			}
			parts = append(parts, label+": "+strings.Join(subs, ", "))
		case item.Pairs > 0:
			parts = append(parts, fmt.Sprintf("%s %d pair", label, item.Pairs))
		default:
			parts = append(parts, fmt.Sprintf("%s %.1fkg", label, item.Weight))
		}
	}
	return strings.Join(parts, "; ")
}
