package handlers

import (
	"errors"
	"net/http"

	request "propostas_api/internal/adapter/http/dto/request"
	"propostas_api/internal/usecase"
	"propostas_api/pkg"

	"github.com/gin-gonic/gin"
)

type ClientHandler struct {
	usecase usecase.IClientUseCase
}

func NewClientHandler(uc usecase.IClientUseCase) *ClientHandler {
	return &ClientHandler{usecase: uc}
}

// ListClients godoc
// @Summary  List clients
// @Tags     clients
// @Produce  json
// @Success  200 {array} entities.Client
// @Router   /clients [get]
func (h *ClientHandler) ListClients(c *gin.Context) {
	clients, err := h.usecase.List(c.Request.Context())
	if err != nil {
		writeError(c, mapClientError(err))
		return
	}
	c.JSON(http.StatusOK, clients)
}

// CreateClient godoc
// @Summary  Create a client
// @Tags     clients
// @Accept   json
// @Produce  json
// @Param    body body request.CreateClientRequest true "client"
// @Success  201 {object} entities.Client
// @Failure  400 {object} pkg.HTTPError
// @Router   /clients [post]
func (h *ClientHandler) CreateClient(c *gin.Context) {
	var payload request.CreateClientRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		writeError(c, mapClientError(err))
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetClient godoc
// @Summary  Get a client
// @Tags     clients
// @Produce  json
// @Param    id path string true "client id"
// @Success  200 {object} entities.Client
// @Failure  404 {object} pkg.HTTPError
// @Router   /clients/{id} [get]
func (h *ClientHandler) GetClient(c *gin.Context) {
	client, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapClientError(err))
		return
	}
	c.JSON(http.StatusOK, client)
}

func mapClientError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidClientID), errors.Is(err, usecase.ErrInvalidClientName):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrInvalidClientEmail):
		return pkg.NewDomainErrorSimple("INVALID_EMAIL", "Invalid email", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidClientPhone):
		return pkg.NewDomainErrorSimple("INVALID_PHONE", "Invalid phone number", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Client not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
