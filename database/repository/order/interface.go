package orderRepo

import (
	"context"
	"time"

	"washex/database"
	"washex/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// OrderQuery narrows order listings. Day filters match the calendar
// day of the respective scheduled date.
type OrderQuery struct {
	Status      string
	CustomerID  string
	Source      string
	PickupDay   *time.Time
	DeliveryDay *time.Time
	Limit       int64
	Skip        int64
}

// OrderRepository is the persistence boundary for orders.
type OrderRepository interface {
	Insert(ctx context.Context, order models.Order) error
	GetByCode(ctx context.Context, code string) (*models.Order, error)
	CodeExists(ctx context.Context, code string) (bool, error)
	List(ctx context.Context, q OrderQuery) ([]models.Order, error)
	ListByPickupDate(ctx context.Context, day time.Time) ([]models.Order, error)
	ListByDeliveryDate(ctx context.Context, day time.Time) ([]models.Order, error)
	UpdateByCode(ctx context.Context, code string, set, unset bson.M) error
	CountByStatus(ctx context.Context) (map[string]int64, error)
}

type mongoOrderRepo struct {
	coll *mongo.Collection
}

// NewMongoOrderRepo returns an OrderRepository backed by MongoDB.
func NewMongoOrderRepo() OrderRepository {
	r := &mongoOrderRepo{coll: database.Collection("orders")}
	if err := r.ensureIndexes(); err != nil {
		panic(err)
	}
	return r
}
