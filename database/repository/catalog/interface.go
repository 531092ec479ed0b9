package catalogRepo

import (
	"context"

	"washex/database"
	"washex/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// CatalogRepository is the persistence boundary for service definitions.
type CatalogRepository interface {
	Create(ctx context.Context, svc models.ServiceDefinition) (string, error)
	GetByID(ctx context.Context, id string) (*models.ServiceDefinition, error)
	GetAll(ctx context.Context, activeOnly bool) ([]models.ServiceDefinition, error)
	Update(ctx context.Context, id string, set bson.M) error
	Delete(ctx context.Context, id string) error
}

type mongoCatalogRepo struct {
	coll *mongo.Collection
}

// NewMongoCatalogRepo returns a CatalogRepository backed by MongoDB.
func NewMongoCatalogRepo() CatalogRepository {
	r := &mongoCatalogRepo{coll: database.Collection("services")}
	if err := r.ensureIndexes(); err != nil {
		panic(err)
	}
	return r
}
