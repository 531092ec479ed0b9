package staff

import (
	"context"
	"strings"

	staffRepo "washex/database/repository/staff"
	"washex/models"
	"washex/utils"

	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

// StaffService owns staff CRUD and authentication.
type StaffService interface {
	CreateStaff(ctx context.Context, staff models.Staff, password string) (*models.Staff, error)
	GetStaff(ctx context.Context, id string) (*models.Staff, error)
	ListStaff(ctx context.Context) ([]models.Staff, error)
	ListAgents(ctx context.Context) ([]models.Staff, error)
	UpdateStaff(ctx context.Context, id string, updates map[string]any) (*models.Staff, error)
	DeleteStaff(ctx context.Context, id string) error
	Authenticate(ctx context.Context, email, password string) (*models.Staff, string, error)
	RevokeToken(ctx context.Context, staffID string) error
}

// DefaultStaffService is the production StaffService.
type DefaultStaffService struct {
	Repo staffRepo.StaffRepository
}

func (s *DefaultStaffService) CreateStaff(ctx context.Context, staff models.Staff, password string) (*models.Staff, error) {
	staff.Name = strings.TrimSpace(staff.Name)
	staff.Email = strings.ToLower(strings.TrimSpace(staff.Email))
	if staff.Name == "" || staff.Email == "" || password == "" {
		return nil, utils.ValidationError{Message: "staff name, email and password are required"}
	}
	switch staff.Role {
	case models.RoleAdmin, models.RoleManager, models.RoleAgent:
	default:
		return nil, utils.ValidationError{Message: "role must be admin, manager or agent"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	staff.PasswordHash = string(hash)
	staff.Active = true

	id, err := s.Repo.Create(ctx, staff)
	if err != nil {
		return nil, err
	}
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultStaffService) GetStaff(ctx context.Context, id string) (*models.Staff, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultStaffService) ListStaff(ctx context.Context) ([]models.Staff, error) {
	return s.Repo.GetAll(ctx)
}

func (s *DefaultStaffService) ListAgents(ctx context.Context) ([]models.Staff, error) {
	return s.Repo.GetAgents(ctx)
}

func (s *DefaultStaffService) UpdateStaff(ctx context.Context, id string, updates map[string]any) (*models.Staff, error) {
	set := bson.M{}
	if v, ok := updates["name"].(string); ok && v != "" {
		set["name"] = strings.TrimSpace(v)
	}
	if v, ok := updates["phone"].(string); ok {
		set["phone"] = v
	}
	if v, ok := updates["role"].(string); ok && v != "" {
		switch v {
		case models.RoleAdmin, models.RoleManager, models.RoleAgent:
			set["role"] = v
		default:
			return nil, utils.ValidationError{Message: "role must be admin, manager or agent"}
		}
	}
	if v, ok := updates["active"].(bool); ok {
		set["active"] = v
	}
	if v, ok := updates["password"].(string); ok && v != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(v), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		set["passwordHash"] = string(hash)
	}
	if len(set) == 0 {
		return nil, utils.ValidationError{Message: "no updatable fields in payload"}
	}

	if err := s.Repo.Update(ctx, id, set); err != nil {
		return nil, err
	}
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultStaffService) DeleteStaff(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}
