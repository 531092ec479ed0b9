package customerRepo

import (
	"context"
	"fmt"
	"time"

	"washex/models"
	"washex/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Create inserts a new customer and returns its ID. A duplicate phone
// surfaces as a ConflictError.
func (r *mongoCustomerRepo) Create(ctx context.Context, customer models.Customer) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if customer.ID == "" {
		customer.ID = uuid.New().String()
	}
	customer.CreatedAt = time.Now()
	customer.UpdatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, customer); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", utils.ConflictError{Field: "phone", Value: customer.Phone}
		}
		return "", fmt.Errorf("failed to insert customer: %w", err)
	}
	return customer.ID, nil
}

func (r *mongoCustomerRepo) GetByID(ctx context.Context, id string) (*models.Customer, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var customer models.Customer
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&customer); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.NotFoundError{Resource: "customer", ID: id}
		}
		return nil, fmt.Errorf("failed to fetch customer with id %s: %w", id, err)
	}
	return &customer, nil
}

func (r *mongoCustomerRepo) GetByPhone(ctx context.Context, phone string) (*models.Customer, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var customer models.Customer
	if err := r.coll.FindOne(ctx, bson.M{"phone": phone}).Decode(&customer); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.NotFoundError{Resource: "customer", ID: phone}
		}
		return nil, fmt.Errorf("failed to fetch customer with phone %s: %w", phone, err)
	}
	return &customer, nil
}

func (r *mongoCustomerRepo) GetAll(ctx context.Context) ([]models.Customer, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve customers: %w", err)
	}
	defer cursor.Close(ctx)

	var customers []models.Customer
	if err := cursor.All(ctx, &customers); err != nil {
		return nil, fmt.Errorf("failed to decode customers: %w", err)
	}
	return customers, nil
}

func (r *mongoCustomerRepo) Update(ctx context.Context, id string, set bson.M) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	set["updatedAt"] = time.Now()
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return utils.ConflictError{Field: "phone", Value: fmt.Sprint(set["phone"])}
		}
		return fmt.Errorf("failed to update customer with id %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return utils.NotFoundError{Resource: "customer", ID: id}
	}
	return nil
}

func (r *mongoCustomerRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete customer with id %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return utils.NotFoundError{Resource: "customer", ID: id}
	}
	return nil
}
