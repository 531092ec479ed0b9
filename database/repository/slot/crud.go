package slotRepo

import (
	"context"
	"fmt"
	"time"

	"washex/models"
	"washex/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoSlotRepo) CreateMany(ctx context.Context, slots []models.Slot) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	docs := make([]interface{}, len(slots))
	for i, slot := range slots {
		if slot.ID == "" {
			slot.ID = uuid.New().String()
		}
		docs[i] = slot
	}

	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to insert slots: %w", err)
	}
	return nil
}

func (r *mongoSlotRepo) GetByID(ctx context.Context, id string) (*models.Slot, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var slot models.Slot
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&slot); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.NotFoundError{Resource: "slot", ID: id}
		}
		return nil, fmt.Errorf("failed to fetch slot with id %s: %w", id, err)
	}
	return &slot, nil
}

func (r *mongoSlotRepo) GetAll(ctx context.Context, kind string) ([]models.Slot, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	filter := bson.M{}
	if kind != "" {
		filter["kind"] = bson.M{"$in": []string{kind, models.SlotKindAny}}
	}
	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "startMinute", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve slots: %w", err)
	}
	defer cursor.Close(ctx)

	var slots []models.Slot
	if err := cursor.All(ctx, &slots); err != nil {
		return nil, fmt.Errorf("failed to decode slots: %w", err)
	}
	return slots, nil
}

// GetAllDaySlot returns the canonical all-day delivery slot.
func (r *mongoSlotRepo) GetAllDaySlot(ctx context.Context) (*models.Slot, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var slot models.Slot
	filter := bson.M{"allDay": true, "kind": models.SlotKindDelivery}
	if err := r.coll.FindOne(ctx, filter).Decode(&slot); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.NotFoundError{Resource: "all-day delivery slot"}
		}
		return nil, fmt.Errorf("failed to fetch all-day delivery slot: %w", err)
	}
	return &slot, nil
}

func (r *mongoSlotRepo) IncrementBooked(ctx context.Context, id string, delta int) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$inc": bson.M{"bookedCount": delta}})
	if err != nil {
		return fmt.Errorf("failed to update slot booking count for %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return utils.NotFoundError{Resource: "slot", ID: id}
	}
	return nil
}
