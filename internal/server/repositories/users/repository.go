package users

import (
	"context"

	"github.com/AbdullahMustajab711/cloudshare/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}
