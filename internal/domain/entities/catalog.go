package entities

import "time"

// Service is a catalog entry grouping one or more plans.
type Service struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	Category    string        `json:"category,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	Plans       []ServicePlan `json:"plans,omitempty"`
}

// ServicePlan is the priced unit added to proposals.
type ServicePlan struct {
	ID               string    `json:"id"`
	ServiceID        string    `json:"service_id"`
	PlanName         string    `json:"plan_name"`
	MonthlyFee       float64   `json:"monthly_fee"`
	SetupFee         float64   `json:"setup_fee"`
	Deliverables     string    `json:"deliverables,omitempty"`
	DeliveryTimeDays int       `json:"delivery_time_days"`
	CreatedAt        time.Time `json:"created_at"`
}
