package catalogRepo

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

// Create validates and inserts a new service definition.
func (r *mongoCatalogRepo) Create(ctx context.Context, svc models.ServiceDefinition) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := svc.Validate(); err != nil {
		return "", utils.ValidationError{Message: err.Error()}
	}
	if svc.ID == "" {
		svc.ID = uuid.New().String()
	}

	if _, err := r.coll.InsertOne(ctx, svc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", utils.ConflictError{Field: "name", Value: svc.Name}
		}
		return "", fmt.Errorf("failed to insert service: %w", err)
	}
	return svc.ID, nil
}

func (r *mongoCatalogRepo) GetByID(ctx context.Context, id string) (*models.ServiceDefinition, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var svc models.ServiceDefinition
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&svc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.NotFoundError{Resource: "service", ID: id}
		}
		return nil, fmt.Errorf("failed to fetch service with id %s: %w", id, err)
	}
	return &svc, nil
}

func (r *mongoCatalogRepo) GetAll(ctx context.Context, activeOnly bool) ([]models.ServiceDefinition, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	filter := bson.M{}
	if activeOnly {
		filter["active"] = true
	}
	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve services: %w", err)
	}
	defer cursor.Close(ctx)

	var services []models.ServiceDefinition
	if err := cursor.All(ctx, &services); err != nil {
		return nil, fmt.Errorf("failed to decode services: %w", err)
	}
	return services, nil
}

func (r *mongoCatalogRepo) Update(ctx context.Context, id string, set bson.M) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to update service with id %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return utils.NotFoundError{Resource: "service", ID: id}
	}
	return nil
}

func (r *mongoCatalogRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete service with id %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return utils.NotFoundError{Resource: "service", ID: id}
	}
	return nil
}
