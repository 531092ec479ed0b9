package orderRepo

import (
	"context"
	"fmt"
	"time"

	"washex/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoOrderRepo) List(ctx context.Context, q OrderQuery) ([]models.Order, error) {
	filter := bson.M{}
	if q.Status != "" {
		filter["status"] = q.Status
	}
	if q.CustomerID != "" {
		filter["customerId"] = q.CustomerID
	}
	if q.Source != "" {
		filter["source"] = q.Source
	}
	if q.PickupDay != nil {
		filter["pickupDate"] = dayRange(*q.PickupDay)
	}
	if q.DeliveryDay != nil {
		filter["deliveryDate"] = dayRange(*q.DeliveryDay)
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if q.Limit > 0 {
		opts.SetLimit(q.Limit)
	}
	if q.Skip > 0 {
		opts.SetSkip(q.Skip)
	}
	return r.find(ctx, filter, opts)
}

// ListByPickupDate returns orders whose pickup falls on the given
// calendar day, ordered by slot then code for stable manifests.
func (r *mongoOrderRepo) ListByPickupDate(ctx context.Context, day time.Time) ([]models.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "pickupSlotName", Value: 1}, {Key: "code", Value: 1}})
	return r.find(ctx, bson.M{"pickupDate": dayRange(day)}, opts)
}

// ListByDeliveryDate returns orders whose delivery falls on the given
// calendar day.
func (r *mongoOrderRepo) ListByDeliveryDate(ctx context.Context, day time.Time) ([]models.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "deliverySlotName", Value: 1}, {Key: "code", Value: 1}})
	return r.find(ctx, bson.M{"deliveryDate": dayRange(day)}, opts)
}

// dayRange bounds a date field to one calendar day.
func dayRange(day time.Time) bson.M {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	return bson.M{"$gte": start, "$lt": start.AddDate(0, 0, 1)}
}

func (r *mongoOrderRepo) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve orders: %w", err)
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("failed to decode orders: %w", err)
	}
	return orders, nil
}

// CountByStatus groups the order book by status for the dashboard.
func (r *mongoOrderRepo) CountByStatus(ctx context.Context) (map[string]int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	pipeline := []bson.M{
		{"$group": bson.M{"_id": "$status", "count": bson.M{"$sum": 1}}},
	}
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate order statuses: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Status string `bson:"_id"`
		Count  int64  `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode status counts: %w", err)
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}
