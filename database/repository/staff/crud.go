package staffRepo

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

// Create inserts a new staff member and returns its ID.
func (r *mongoStaffRepo) Create(ctx context.Context, staff models.Staff) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if staff.ID == "" {
		staff.ID = uuid.New().String()
	}
	staff.CreatedAt = time.Now()
	staff.UpdatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, staff); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", utils.ConflictError{Field: "email", Value: staff.Email}
		}
		return "", fmt.Errorf("failed to insert staff member: %w", err)
	}
	return staff.ID, nil
}

func (r *mongoStaffRepo) GetByID(ctx context.Context, id string) (*models.Staff, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var staff models.Staff
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&staff); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.NotFoundError{Resource: "staff member", ID: id}
		}
		return nil, fmt.Errorf("failed to fetch staff member with id %s: %w", id, err)
	}
	return &staff, nil
}

func (r *mongoStaffRepo) GetByEmail(ctx context.Context, email string) (*models.Staff, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var staff models.Staff
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&staff); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.NotFoundError{Resource: "staff member", ID: email}
		}
		return nil, fmt.Errorf("failed to fetch staff member with email %s: %w", email, err)
	}
	return &staff, nil
}

func (r *mongoStaffRepo) GetAll(ctx context.Context) ([]models.Staff, error) {
	return r.find(ctx, bson.M{})
}

// GetAgents returns active staff assignable to pickups and deliveries.
func (r *mongoStaffRepo) GetAgents(ctx context.Context) ([]models.Staff, error) {
	return r.find(ctx, bson.M{"role": models.RoleAgent, "active": true})
}

func (r *mongoStaffRepo) find(ctx context.Context, filter bson.M) ([]models.Staff, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve staff: %w", err)
	}
	defer cursor.Close(ctx)

	var staff []models.Staff
	if err := cursor.All(ctx, &staff); err != nil {
		return nil, fmt.Errorf("failed to decode staff: %w", err)
	}
	return staff, nil
}

func (r *mongoStaffRepo) Update(ctx context.Context, id string, set bson.M) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	set["updatedAt"] = time.Now()
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to update staff member with id %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return utils.NotFoundError{Resource: "staff member", ID: id}
	}
	return nil
}

func (r *mongoStaffRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete staff member with id %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return utils.NotFoundError{Resource: "staff member", ID: id}
	}
	return nil
}
