package handlers

import (
	"errors"
	"net/http"

	request "propostas_api/internal/adapter/http/dto/request"
	"propostas_api/internal/usecase"
	"propostas_api/pkg"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves services and plans. Writes are admin only; the
// route group enforces it.
type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

// ListServices godoc
// @Summary  List services with their plans
// @Tags     catalog
// @Produce  json
// @Success  200 {array} entities.Service
// @Router   /services [get]
func (h *CatalogHandler) ListServices(c *gin.Context) {
	services, err := h.usecase.ListServices(c.Request.Context())
	if err != nil {
		writeError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, services)
}

// CreateService godoc
// @Summary  Create a service (admin)
// @Tags     catalog
// @Accept   json
// @Produce  json
// @Param    body body request.CreateServiceRequest true "service"
// @Success  201 {object} entities.Service
// @Failure  403 {object} pkg.HTTPError
// @Router   /services [post]
func (h *CatalogHandler) CreateService(c *gin.Context) {
	var payload request.CreateServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	created, err := h.usecase.CreateService(c.Request.Context(), payload.ToEntity())
	if err != nil {
		writeError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusCreated, created)
}

// CreatePlan godoc
// @Summary  Add a plan to a service (admin)
// @Tags     catalog
// @Accept   json
// @Produce  json
// @Param    id   path string                    true "service id"
// @Param    body body request.CreatePlanRequest true "plan"
// @Success  201 {object} entities.ServicePlan
// @Failure  404 {object} pkg.HTTPError
// @Router   /services/{id}/plans [post]
func (h *CatalogHandler) CreatePlan(c *gin.Context) {
	var payload request.CreatePlanRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	created, err := h.usecase.CreatePlan(c.Request.Context(), payload.ToEntity(c.Param("id")))
	if err != nil {
		writeError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusCreated, created)
}

func mapCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidServiceID), errors.Is(err, usecase.ErrInvalidPlanID),
		errors.Is(err, usecase.ErrInvalidServiceName), errors.Is(err, usecase.ErrInvalidPlanName),
		errors.Is(err, usecase.ErrInvalidPlanFee), errors.Is(err, usecase.ErrInvalidDeliveryDays):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPlanNotFound):
		return pkg.NewDomainErrorSimple("PLAN_NOT_FOUND", "Service plan not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
