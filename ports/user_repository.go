package ports

import (
	"context"

	"reeladmin/models"
)

// UserRepository provides admin access to player accounts.
type UserRepository interface {
	ListUsers(ctx context.Context, page, perPage int, search string) (*models.UserPage, error)
	GetUser(ctx context.Context, userID string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) error
	UpdateUser(ctx context.Context, user *models.User) error
	DeleteUser(ctx context.Context, userID string) error
	SetUserZone(ctx context.Context, userID string, zoneID int64) error
}
