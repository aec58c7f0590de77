package repository

import (
	"context"

	"propostas_api/internal/domain/entities"
	"propostas_api/internal/usecase/interfaces"
)

type userRoleItem struct {
	UserID string `dynamodbav:"user_id"`
	Role   string `dynamodbav:"role"`
}

// RoleDynamoRepository reads the user_roles table.
//
// Table requirements:
//   - PK: user_id (string)
type RoleDynamoRepository struct {
	table recordTable
}

var _ interfaces.IRoleRepository = (*RoleDynamoRepository)(nil)

func NewRoleDynamoRepository(ddb DynamoAPI, tableName string) *RoleDynamoRepository {
	return &RoleDynamoRepository{table: recordTable{ddb: ddb, name: tableName, pk: "user_id"}}
}

func (r *RoleDynamoRepository) GetRole(ctx context.Context, userID string) (entities.Role, error) {
	var it userRoleItem
	found, err := r.table.get(ctx, stringKey("user_id", userID), &it)
	if err != nil || !found {
		return "", err
	}
	return entities.Role(it.Role), nil
}

func (r *RoleDynamoRepository) SetRole(ctx context.Context, ur entities.UserRole) error {
	return r.table.put(ctx, userRoleItem{UserID: ur.UserID, Role: string(ur.Role)})
}
