package request

import (
	"strings"

	"propostas_api/internal/domain/entities"
)

type CreateClientRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"omitempty,email"`
	Phone   string `json:"phone"`
	Company string `json:"company"`
}

func (r CreateClientRequest) ToEntity() entities.Client {
	return entities.Client{
		Name:    strings.TrimSpace(r.Name),
		Email:   strings.TrimSpace(r.Email),
		Phone:   strings.TrimSpace(r.Phone),
		Company: strings.TrimSpace(r.Company),
	}
}
