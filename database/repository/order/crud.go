package orderRepo

import (
	"context"
	"fmt"
	"time"

	"washex/models"
	"washex/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Insert persists a new order. A code collision that slipped past the
// generation-time check surfaces as a ConflictError.
func (r *mongoOrderRepo) Insert(ctx context.Context, order models.Order) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, order); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return utils.ConflictError{Field: "code", Value: order.Code}
		}
		return utils.DependencyError{Op: "insert order", Err: err}
	}
	return nil
}

func (r *mongoOrderRepo) GetByCode(ctx context.Context, code string) (*models.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var order models.Order
	if err := r.coll.FindOne(ctx, bson.M{"code": code}).Decode(&order); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.NotFoundError{Resource: "order", ID: code}
		}
		return nil, fmt.Errorf("failed to fetch order %s: %w", code, err)
	}
	return &order, nil
}

func (r *mongoOrderRepo) CodeExists(ctx context.Context, code string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{"code": code})
	if err != nil {
		return false, fmt.Errorf("failed to check order code %s: %w", code, err)
	}
	return count > 0, nil
}

// UpdateByCode applies $set and $unset documents to one order.
func (r *mongoOrderRepo) UpdateByCode(ctx context.Context, code string, set, unset bson.M) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	set["updatedAt"] = time.Now()
	update := bson.M{"$set": set}
	if len(unset) > 0 {
		update["$unset"] = unset
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"code": code}, update)
	if err != nil {
		return utils.DependencyError{Op: fmt.Sprintf("update order %s", code), Err: err}
	}
	if res.MatchedCount == 0 {
		return utils.NotFoundError{Resource: "order", ID: code}
	}
	return nil
}
