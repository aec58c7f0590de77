package interfaces

import (
	"context"

	"propostas_api/internal/domain/entities"
)

// IRoleRepository looks up the role of a user. Users without a row get "".
type IRoleRepository interface {
	GetRole(ctx context.Context, userID string) (entities.Role, error)
	SetRole(ctx context.Context, r entities.UserRole) error
}
