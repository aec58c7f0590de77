package repository

import (
	"context"

	"propostas_api/internal/domain/entities"
	"propostas_api/internal/usecase/interfaces"
)

type serviceItem struct {
	ID          string `dynamodbav:"id"`
	Name        string `dynamodbav:"name"`
	Description string `dynamodbav:"description,omitempty"`
	Category    string `dynamodbav:"category,omitempty"`
	CreatedAt   string `dynamodbav:"created_at"`
}

type planItem struct {
	ID               string  `dynamodbav:"id"`
	ServiceID        string  `dynamodbav:"service_id"`
	PlanName         string  `dynamodbav:"plan_name"`
	MonthlyFee       float64 `dynamodbav:"monthly_fee"`
	SetupFee         float64 `dynamodbav:"setup_fee"`
	Deliverables     string  `dynamodbav:"deliverables,omitempty"`
	DeliveryTimeDays int     `dynamodbav:"delivery_time_days"`
	CreatedAt        string  `dynamodbav:"created_at"`
}

// CatalogDynamoRepository persists services and their plans in two tables.
//
// Table requirements:
//   - services: PK id (string)
//   - service_plans: PK id (string)
//
// The catalog is small, so listings are table scans.
type CatalogDynamoRepository struct {
	services recordTable
	plans    recordTable
}

var _ interfaces.ICatalogRepository = (*CatalogDynamoRepository)(nil)

func NewCatalogDynamoRepository(ddb DynamoAPI, servicesTable, plansTable string) *CatalogDynamoRepository {
	return &CatalogDynamoRepository{
		services: recordTable{ddb: ddb, name: servicesTable, pk: "id"},
		plans:    recordTable{ddb: ddb, name: plansTable, pk: "id"},
	}
}

func (r *CatalogDynamoRepository) CreateService(ctx context.Context, s entities.Service) (entities.Service, error) {
	s.Plans = nil
	if err := r.services.insert(ctx, toServiceItem(s)); err != nil {
		return entities.Service{}, err
	}
	return s, nil
}

func (r *CatalogDynamoRepository) GetService(ctx context.Context, id string) (entities.Service, error) {
	var it serviceItem
	found, err := r.services.get(ctx, stringKey("id", id), &it)
	if err != nil || !found {
		return entities.Service{}, err
	}
	return fromServiceItem(it), nil
}

func (r *CatalogDynamoRepository) ListServices(ctx context.Context) ([]entities.Service, error) {
	var items []serviceItem
	if err := r.services.scan(ctx, &items); err != nil {
		return nil, err
	}
	out := make([]entities.Service, 0, len(items))
	for _, it := range items {
		out = append(out, fromServiceItem(it))
	}
	return out, nil
}

func (r *CatalogDynamoRepository) CreatePlan(ctx context.Context, p entities.ServicePlan) (entities.ServicePlan, error) {
	if err := r.plans.insert(ctx, toPlanItem(p)); err != nil {
		return entities.ServicePlan{}, err
	}
	return p, nil
}

func (r *CatalogDynamoRepository) GetPlan(ctx context.Context, id string) (entities.ServicePlan, error) {
	var it planItem
	found, err := r.plans.get(ctx, stringKey("id", id), &it)
	if err != nil || !found {
		return entities.ServicePlan{}, err
	}
	return fromPlanItem(it), nil
}

func (r *CatalogDynamoRepository) ListPlans(ctx context.Context) ([]entities.ServicePlan, error) {
	var items []planItem
	if err := r.plans.scan(ctx, &items); err != nil {
		return nil, err
	}
	out := make([]entities.ServicePlan, 0, len(items))
	for _, it := range items {
		out = append(out, fromPlanItem(it))
	}
	return out, nil
}

func toServiceItem(s entities.Service) serviceItem {
	return serviceItem{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Category:    s.Category,
		CreatedAt:   formatTime(s.CreatedAt),
	}
}

func fromServiceItem(it serviceItem) entities.Service {
	return entities.Service{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		Category:    it.Category,
		CreatedAt:   parseTime(it.CreatedAt),
	}
}

func toPlanItem(p entities.ServicePlan) planItem {
	return planItem{
		ID:               p.ID,
		ServiceID:        p.ServiceID,
		PlanName:         p.PlanName,
		MonthlyFee:       p.MonthlyFee,
		SetupFee:         p.SetupFee,
		Deliverables:     p.Deliverables,
		DeliveryTimeDays: p.DeliveryTimeDays,
		CreatedAt:        formatTime(p.CreatedAt),
	}
}

func fromPlanItem(it planItem) entities.ServicePlan {
	return entities.ServicePlan{
		ID:               it.ID,
		ServiceID:        it.ServiceID,
		PlanName:         it.PlanName,
		MonthlyFee:       it.MonthlyFee,
		SetupFee:         it.SetupFee,
		Deliverables:     it.Deliverables,
		DeliveryTimeDays: it.DeliveryTimeDays,
		CreatedAt:        parseTime(it.CreatedAt),
	}
}
