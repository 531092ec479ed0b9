package staffRepo

import (
	"context"

	"washex/database"
	"washex/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// StaffRepository is the persistence boundary for staff members.
type StaffRepository interface {
	Create(ctx context.Context, staff models.Staff) (string, error)
	GetByID(ctx context.Context, id string) (*models.Staff, error)
	GetByEmail(ctx context.Context, email string) (*models.Staff, error)
	GetAll(ctx context.Context) ([]models.Staff, error)
	GetAgents(ctx context.Context) ([]models.Staff, error)
	Update(ctx context.Context, id string, set bson.M) error
	Delete(ctx context.Context, id string) error
}

type mongoStaffRepo struct {
	coll *mongo.Collection
}

// NewMongoStaffRepo returns a StaffRepository backed by MongoDB.
func NewMongoStaffRepo() StaffRepository {
	r := &mongoStaffRepo{coll: database.Collection("staff")}
	if err := r.ensureIndexes(); err != nil {
		panic(err)
	}
	return r
}
