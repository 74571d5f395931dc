package auth

import (
	"time"

	"github.com/polkiloo/agromart/internal/domain/model"
)

// Strategy issues and validates auth tokens carrying identity and role.
type Strategy interface {
	IssueToken(userID int64, role model.Role) (string, error)
	ParseToken(token string) (int64, model.Role, error)
	Name() string
}

type Options struct {
	TTL time.Duration
}
