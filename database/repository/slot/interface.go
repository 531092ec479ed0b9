package slotRepo

import (
	"context"

	"washex/database"
	"washex/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// SlotRepository is the persistence boundary for pickup/delivery slots.
type SlotRepository interface {
	CreateMany(ctx context.Context, slots []models.Slot) error
	GetByID(ctx context.Context, id string) (*models.Slot, error)
	GetAll(ctx context.Context, kind string) ([]models.Slot, error)
	GetAllDaySlot(ctx context.Context) (*models.Slot, error)
	IncrementBooked(ctx context.Context, id string, delta int) error
}

type mongoSlotRepo struct {
	coll *mongo.Collection
}

// NewMongoSlotRepo returns a SlotRepository backed by MongoDB.
func NewMongoSlotRepo() SlotRepository {
	return &mongoSlotRepo{coll: database.Collection("slots")}
}
