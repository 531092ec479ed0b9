package customerRepo

import (
	"context"

	"washex/database"
	"washex/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// CustomerRepository is the persistence boundary for customers.
type CustomerRepository interface {
	Create(ctx context.Context, customer models.Customer) (string, error)
	GetByID(ctx context.Context, id string) (*models.Customer, error)
	GetByPhone(ctx context.Context, phone string) (*models.Customer, error)
	GetAll(ctx context.Context) ([]models.Customer, error)
	Update(ctx context.Context, id string, set bson.M) error
	Delete(ctx context.Context, id string) error
}

type mongoCustomerRepo struct {
	coll *mongo.Collection
}

// NewMongoCustomerRepo returns a CustomerRepository backed by MongoDB.
func NewMongoCustomerRepo() CustomerRepository {
	r := &mongoCustomerRepo{coll: database.Collection("customers")}
	if err := r.ensureIndexes(); err != nil {
		panic(err)
	}
	return r
}
