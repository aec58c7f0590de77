package usecase

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"sort"
	"strings"
	"time"

	"propostas_api/internal/domain/entities"
	"propostas_api/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrServiceNotFound     = errors.New("service not found")
	ErrPlanNotFound        = errors.New("service plan not found")
	ErrInvalidServiceID    = errors.New("invalid service id")
	ErrInvalidPlanID       = errors.New("invalid plan id")
	ErrInvalidServiceName  = errors.New("service name is required")
	ErrInvalidPlanName     = errors.New("plan name is required")
	ErrInvalidPlanFee      = errors.New("plan fees must be finite and not negative")
	ErrInvalidDeliveryDays = errors.New("delivery time must not be negative")
)

// ICatalogUseCase exposes the service catalog the builder picks plans from.
type ICatalogUseCase interface {
	ListServices(ctx context.Context) ([]entities.Service, error)
	CreateService(ctx context.Context, s entities.Service) (entities.Service, error)
	CreatePlan(ctx context.Context, p entities.ServicePlan) (entities.ServicePlan, error)
	GetPlan(ctx context.Context, id string) (entities.ServicePlan, error)
}

type CatalogUseCase struct {
	repo interfaces.ICatalogRepository
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(repo interfaces.ICatalogRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo}
}

// ListServices returns services newest first, each with its plans.
func (u *CatalogUseCase) ListServices(ctx context.Context) ([]entities.Service, error) {
	services, err := u.repo.ListServices(ctx)
	if err != nil {
		return nil, err
	}
	plans, err := u.repo.ListPlans(ctx)
	if err != nil {
		return nil, err
	}

	byService := make(map[string][]entities.ServicePlan, len(services))
	for _, p := range plans {
		byService[p.ServiceID] = append(byService[p.ServiceID], p)
	}
	for i := range services {
		ps := byService[services[i].ID]
		sort.SliceStable(ps, func(a, b int) bool { return ps[a].CreatedAt.Before(ps[b].CreatedAt) })
		services[i].Plans = ps
	}
	sort.SliceStable(services, func(a, b int) bool { return services[a].CreatedAt.After(services[b].CreatedAt) })
	return services, nil
}

func (u *CatalogUseCase) CreateService(ctx context.Context, s entities.Service) (entities.Service, error) {
	s.Name = strings.TrimSpace(s.Name)
	if s.Name == "" {
		return entities.Service{}, ErrInvalidServiceName
	}
	s.Description = strings.TrimSpace(s.Description)
	s.Category = strings.TrimSpace(s.Category)
	s.ID = uuid.NewString()
	s.CreatedAt = time.Now().UTC()
	s.Plans = nil

	created, err := u.repo.CreateService(ctx, s)
	if err != nil {
		return entities.Service{}, err
	}
	slog.Info("[catalog][usecase] service created", "service_id", created.ID, "name", created.Name)
	return created, nil
}

func (u *CatalogUseCase) CreatePlan(ctx context.Context, p entities.ServicePlan) (entities.ServicePlan, error) {
	p.ServiceID = strings.TrimSpace(p.ServiceID)
	p.PlanName = strings.TrimSpace(p.PlanName)
	if p.ServiceID == "" {
		return entities.ServicePlan{}, ErrInvalidServiceID
	}
	if p.PlanName == "" {
		return entities.ServicePlan{}, ErrInvalidPlanName
	}
	if !validFee(p.MonthlyFee) || !validFee(p.SetupFee) {
		return entities.ServicePlan{}, ErrInvalidPlanFee
	}
	if p.DeliveryTimeDays < 0 {
		return entities.ServicePlan{}, ErrInvalidDeliveryDays
	}

	svc, err := u.repo.GetService(ctx, p.ServiceID)
	if err != nil {
		return entities.ServicePlan{}, err
	}
	if svc.ID == "" {
		return entities.ServicePlan{}, ErrServiceNotFound
	}

	p.ID = uuid.NewString()
	p.CreatedAt = time.Now().UTC()
	created, err := u.repo.CreatePlan(ctx, p)
	if err != nil {
		return entities.ServicePlan{}, err
	}
	slog.Info("[catalog][usecase] plan created", "plan_id", created.ID, "service_id", created.ServiceID)
	return created, nil
}

func (u *CatalogUseCase) GetPlan(ctx context.Context, id string) (entities.ServicePlan, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ServicePlan{}, ErrInvalidPlanID
	}
	p, err := u.repo.GetPlan(ctx, id)
	if err != nil {
		return entities.ServicePlan{}, err
	}
	if p.ID == "" {
		return entities.ServicePlan{}, ErrPlanNotFound
	}
	return p, nil
}

func validFee(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}
