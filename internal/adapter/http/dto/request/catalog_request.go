package request

import (
	"strings"

	"propostas_api/internal/domain/entities"
)

type CreateServiceRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

func (r CreateServiceRequest) ToEntity() entities.Service {
	return entities.Service{
		Name:        strings.TrimSpace(r.Name),
		Description: strings.TrimSpace(r.Description),
		Category:    strings.TrimSpace(r.Category),
	}
}

type CreatePlanRequest struct {
	PlanName         string  `json:"plan_name" binding:"required"`
	MonthlyFee       float64 `json:"monthly_fee" binding:"gte=0"`
	SetupFee         float64 `json:"setup_fee" binding:"gte=0"`
	Deliverables     string  `json:"deliverables"`
	DeliveryTimeDays int     `json:"delivery_time_days" binding:"gte=0"`
}

func (r CreatePlanRequest) ToEntity(serviceID string) entities.ServicePlan {
	return entities.ServicePlan{
		ServiceID:        strings.TrimSpace(serviceID),
		PlanName:         strings.TrimSpace(r.PlanName),
		MonthlyFee:       r.MonthlyFee,
		SetupFee:         r.SetupFee,
		Deliverables:     strings.TrimSpace(r.Deliverables),
		DeliveryTimeDays: r.DeliveryTimeDays,
	}
}
