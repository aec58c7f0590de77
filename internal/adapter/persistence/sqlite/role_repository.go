package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"propostas_api/internal/domain/entities"
	"propostas_api/internal/usecase/interfaces"
)

type RoleRepository struct {
	db *sql.DB
}

var _ interfaces.IRoleRepository = (*RoleRepository)(nil)

func NewRoleRepository(db *sql.DB) *RoleRepository {
	return &RoleRepository{db: db}
}

func (r *RoleRepository) GetRole(ctx context.Context, userID string) (entities.Role, error) {
	var role string
	err := r.db.QueryRowContext(ctx, "SELECT role FROM user_roles WHERE user_id = ?", userID).Scan(&role)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get user role: %w", err)
	}
	return entities.Role(role), nil
}

func (r *RoleRepository) SetRole(ctx context.Context, ur entities.UserRole) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO user_roles (user_id, role) VALUES (?, ?) ON CONFLICT(user_id) DO UPDATE SET role = excluded.role",
		ur.UserID, string(ur.Role),
	)
	if err != nil {
		return fmt.Errorf("failed to set user role: %w", err)
	}
	return nil
}
