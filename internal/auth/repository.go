package auth

import (
	"context"
	"crypto/subtle"

	"bandacious/internal/shared/config"
	"bandacious/internal/shared/middleware"
)

// Repository looks up administrator credentials.
type Repository interface {
	GetAdmin(ctx context.Context, username string) (*Admin, error)
}

type configRepository struct {
	admin Admin
}

// NewConfigRepository serves the single administrator configured in the environment.
func NewConfigRepository(cfg config.AdminConfig) Repository {
	return &configRepository{admin: Admin{
		Username:     cfg.Username,
		PasswordHash: cfg.PasswordHash,
		Role:         middleware.RoleAdmin,
	}}
}

func (r *configRepository) GetAdmin(ctx context.Context, username string) (*Admin, error) {
	if r.admin.PasswordHash == "" {
		return nil, ErrAdminDisabled
	}
	if subtle.ConstantTimeCompare([]byte(username), []byte(r.admin.Username)) != 1 {
		return nil, ErrUserNotFound
	}
	admin := r.admin
	return &admin, nil
}
