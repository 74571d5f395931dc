package repository

import (
	"context"

	"github.com/polkiloo/agromart/internal/domain/model"
)

// UserRepository describes persistence operations for marketplace users.
type UserRepository interface {
	Create(ctx context.Context, login, passwordHash string, role model.Role, country string) (*model.User, error)
	GetByLogin(ctx context.Context, login string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
}
