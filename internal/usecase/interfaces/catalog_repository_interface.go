package interfaces

import (
	"context"

	"propostas_api/internal/domain/entities"
)

// ICatalogRepository reads and writes services and their plans.
// Services are returned without Plans populated.
type ICatalogRepository interface {
	CreateService(ctx context.Context, s entities.Service) (entities.Service, error)
	GetService(ctx context.Context, id string) (entities.Service, error)
	ListServices(ctx context.Context) ([]entities.Service, error)
	CreatePlan(ctx context.Context, p entities.ServicePlan) (entities.ServicePlan, error)
	GetPlan(ctx context.Context, id string) (entities.ServicePlan, error)
	ListPlans(ctx context.Context) ([]entities.ServicePlan, error)
}
