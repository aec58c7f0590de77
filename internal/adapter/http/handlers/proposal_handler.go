package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	request "propostas_api/internal/adapter/http/dto/request"
	response "propostas_api/internal/adapter/http/dto/response"
	"propostas_api/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ProposalHandler struct {
	usecase usecase.IProposalUseCase
}

func NewProposalHandler(uc usecase.IProposalUseCase) *ProposalHandler {
	return &ProposalHandler{usecase: uc}
}

// CreateProposal godoc
// @Summary      Create a proposal
// @Description  Without client_id the proposal is a simulation in Rascunho; with one it starts as Salva.
// @Tags         proposals
// @Accept       json
// @Produce      json
// @Param        body body request.CreateProposalRequest false "proposal"
// @Success      201 {object} response.ProposalResponse
// @Failure      404 {object} pkg.HTTPError
// @Router       /proposals [post]
func (h *ProposalHandler) CreateProposal(c *gin.Context) {
	var payload request.CreateProposalRequest
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		writeError(c, errInvalidRequest)
		return
	}
	session, ok := currentSession(c)
	if !ok {
		writeError(c, errUnauthenticated)
		return
	}

	slog.Info("[proposal][handler] create start", "user_id", session.UserID, "client_id", payload.ClientID)
	created, err := h.usecase.Create(c.Request.Context(), session.UserID, payload.ClientID)
	if err != nil {
		slog.Warn("[proposal][handler] create failed", "error", err)
		writeError(c, mapProposalError(err))
		return
	}

	slog.Info("[proposal][handler] create success", "proposal_id", created.ID, "status", created.Status)
	setVersion(c, created.Version)
	c.JSON(http.StatusCreated, response.FromProposal(created))
}

// ListProposals godoc
// @Summary  List proposals, newest first
// @Tags     proposals
// @Produce  json
// @Success  200 {array} response.ProposalResponse
// @Router   /proposals [get]
func (h *ProposalHandler) ListProposals(c *gin.Context) {
	list, err := h.usecase.List(c.Request.Context())
	if err != nil {
		writeError(c, mapProposalError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProposals(list))
}

// GetProposal godoc
// @Summary  Proposal with client, items and live totals
// @Tags     proposals
// @Produce  json
// @Param    id path string true "proposal id"
// @Success  200 {object} response.ProposalDetailsResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /proposals/{id} [get]
func (h *ProposalHandler) GetProposal(c *gin.Context) {
	details, err := h.usecase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapProposalError(err))
		return
	}
	setVersion(c, details.Proposal.Version)
	c.JSON(http.StatusOK, response.FromProposalDetails(details))
}

// DeleteProposal godoc
// @Summary  Delete a proposal and its items
// @Tags     proposals
// @Param    id path string true "proposal id"
// @Success  204
// @Failure  404 {object} pkg.HTTPError
// @Router   /proposals/{id} [delete]
func (h *ProposalHandler) DeleteProposal(c *gin.Context) {
	id := c.Param("id")
	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		slog.Warn("[proposal][handler] delete failed", "proposal_id", id, "error", err)
		writeError(c, mapProposalError(err))
		return
	}
	slog.Info("[proposal][handler] delete success", "proposal_id", id)
	c.Status(http.StatusNoContent)
}

// UpdateStatus godoc
// @Summary      Move a proposal to another status
// @Description  Saving a draft without client answers 409 CLIENT_REQUIRED.
// @Tags         proposals
// @Accept       json
// @Produce      json
// @Param        id       path   string                      true  "proposal id"
// @Param        If-Match header string                      false "expected version"
// @Param        body     body   request.UpdateStatusRequest true  "status"
// @Success      200 {object} response.ProposalResponse
// @Failure      409 {object} pkg.HTTPError
// @Failure      422 {object} pkg.HTTPError
// @Router       /proposals/{id}/status [patch]
func (h *ProposalHandler) UpdateStatus(c *gin.Context) {
	var payload request.UpdateStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	version, err := expectedVersion(c)
	if err != nil {
		writeError(c, errInvalidIfMatch)
		return
	}

	id := c.Param("id")
	slog.Info("[proposal][handler] status start", "proposal_id", id, "status", payload.Status)
	updated, err := h.usecase.UpdateStatus(c.Request.Context(), id, payload.ToStatus(), version)
	if err != nil {
		slog.Warn("[proposal][handler] status failed", "proposal_id", id, "error", err)
		writeError(c, mapProposalError(err))
		return
	}

	setVersion(c, updated.Version)
	c.JSON(http.StatusOK, response.FromProposal(updated))
}

// AttachClient godoc
// @Summary  Attach a client, saving a draft
// @Tags     proposals
// @Accept   json
// @Produce  json
// @Param    id       path   string                      true  "proposal id"
// @Param    If-Match header string                      false "expected version"
// @Param    body     body   request.AttachClientRequest true  "client"
// @Success  200 {object} response.ProposalResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /proposals/{id}/client [put]
func (h *ProposalHandler) AttachClient(c *gin.Context) {
	var payload request.AttachClientRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	version, err := expectedVersion(c)
	if err != nil {
		writeError(c, errInvalidIfMatch)
		return
	}

	updated, err := h.usecase.AttachClient(c.Request.Context(), c.Param("id"), payload.ClientID, version)
	if err != nil {
		writeError(c, mapProposalError(err))
		return
	}
	setVersion(c, updated.Version)
	c.JSON(http.StatusOK, response.FromProposal(updated))
}

// UpdateObservations godoc
// @Summary  Replace the observations text
// @Tags     proposals
// @Accept   json
// @Produce  json
// @Param    id       path   string                      true  "proposal id"
// @Param    If-Match header string                      false "expected version"
// @Param    body     body   request.ObservationsRequest true  "observations"
// @Success  200 {object} response.ProposalResponse
// @Router   /proposals/{id}/observations [put]
func (h *ProposalHandler) UpdateObservations(c *gin.Context) {
	var payload request.ObservationsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	version, err := expectedVersion(c)
	if err != nil {
		writeError(c, errInvalidIfMatch)
		return
	}

	updated, err := h.usecase.UpdateObservations(c.Request.Context(), c.Param("id"), payload.Observations, version)
	if err != nil {
		writeError(c, mapProposalError(err))
		return
	}
	setVersion(c, updated.Version)
	c.JSON(http.StatusOK, response.FromProposal(updated))
}
