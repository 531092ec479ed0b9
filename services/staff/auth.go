package staff

import (
	"context"
	"time"

	"washex/models"
	"washex/utils"

	"golang.org/x/crypto/bcrypt"
)

const sessionTTL = 24 * time.Hour

// Authenticate verifies staff credentials and returns a signed session
// token. The token hash is cached in Redis so it can be revoked.
func (s *DefaultStaffService) Authenticate(ctx context.Context, email, password string) (*models.Staff, string, error) {
	staff, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", utils.ValidationError{Message: "invalid email or password"}
	}
	if !staff.Active {
		return nil, "", utils.ValidationError{Message: "account is deactivated"}
	}
	if err := bcrypt.CompareHashAndPassword([]byte(staff.PasswordHash), []byte(password)); err != nil {
		return nil, "", utils.ValidationError{Message: "invalid email or password"}
	}

	token, err := utils.GenerateToken(staff.ID, staff.Email, staff.Role, sessionTTL)
	if err != nil {
		return nil, "", err
	}
	if err := utils.CacheSession(ctx, staff.ID, token, sessionTTL); err != nil {
		return nil, "", err
	}
	return staff, token, nil
}

// RevokeToken invalidates the staff member's current session.
func (s *DefaultStaffService) RevokeToken(ctx context.Context, staffID string) error {
	return utils.RevokeSession(ctx, staffID)
}
