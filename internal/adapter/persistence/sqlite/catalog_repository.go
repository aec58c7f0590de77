package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"propostas_api/internal/domain/entities"
	"propostas_api/internal/usecase/interfaces"
)

type CatalogRepository struct {
	db *sql.DB
}

var _ interfaces.ICatalogRepository = (*CatalogRepository)(nil)

func NewCatalogRepository(db *sql.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

const (
	serviceColumns = "id, name, description, category, created_at"
	planColumns    = "id, service_id, plan_name, monthly_fee, setup_fee, deliverables, delivery_time_days, created_at"
)

func (r *CatalogRepository) CreateService(ctx context.Context, s entities.Service) (entities.Service, error) {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO services ("+serviceColumns+") VALUES (?, ?, ?, ?, ?)",
		s.ID, s.Name, s.Description, s.Category, formatTime(s.CreatedAt),
	)
	if err != nil {
		return entities.Service{}, fmt.Errorf("failed to insert service: %w", mapConstraint(err))
	}
	s.Plans = nil
	return s, nil
}

func (r *CatalogRepository) GetService(ctx context.Context, id string) (entities.Service, error) {
	s, err := scanService(r.db.QueryRowContext(ctx, "SELECT "+serviceColumns+" FROM services WHERE id = ?", id))
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Service{}, nil
	}
	if err != nil {
		return entities.Service{}, fmt.Errorf("failed to get service: %w", err)
	}
	return s, nil
}

func (r *CatalogRepository) ListServices(ctx context.Context) ([]entities.Service, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+serviceColumns+" FROM services ORDER BY created_at DESC")
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	defer rows.Close()

	out := []entities.Service{}
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan service: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *CatalogRepository) CreatePlan(ctx context.Context, p entities.ServicePlan) (entities.ServicePlan, error) {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO service_plans ("+planColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		p.ID, p.ServiceID, p.PlanName, p.MonthlyFee, p.SetupFee, p.Deliverables, p.DeliveryTimeDays, formatTime(p.CreatedAt),
	)
	if err != nil {
		return entities.ServicePlan{}, fmt.Errorf("failed to insert service plan: %w", mapConstraint(err))
	}
	return p, nil
}

func (r *CatalogRepository) GetPlan(ctx context.Context, id string) (entities.ServicePlan, error) {
	p, err := scanPlan(r.db.QueryRowContext(ctx, "SELECT "+planColumns+" FROM service_plans WHERE id = ?", id))
	if errors.Is(err, sql.ErrNoRows) {
		return entities.ServicePlan{}, nil
	}
	if err != nil {
		return entities.ServicePlan{}, fmt.Errorf("failed to get service plan: %w", err)
	}
	return p, nil
}

func (r *CatalogRepository) ListPlans(ctx context.Context) ([]entities.ServicePlan, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+planColumns+" FROM service_plans ORDER BY created_at")
	if err != nil {
		return nil, fmt.Errorf("failed to list service plans: %w", err)
	}
	defer rows.Close()

	out := []entities.ServicePlan{}
	for rows.Next() {
		p, err := scanPlan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan service plan: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func scanService(s scanner) (entities.Service, error) {
	var svc entities.Service
	var createdAt string
	if err := s.Scan(&svc.ID, &svc.Name, &svc.Description, &svc.Category, &createdAt); err != nil {
		return entities.Service{}, err
	}
	svc.CreatedAt = parseTime(createdAt)
	return svc, nil
}

func scanPlan(s scanner) (entities.ServicePlan, error) {
	var p entities.ServicePlan
	var createdAt string
	if err := s.Scan(&p.ID, &p.ServiceID, &p.PlanName, &p.MonthlyFee, &p.SetupFee, &p.Deliverables, &p.DeliveryTimeDays, &createdAt); err != nil {
		return entities.ServicePlan{}, err
	}
	p.CreatedAt = parseTime(createdAt)
	return p, nil
}
