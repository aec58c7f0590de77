package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	request "propostas_api/internal/adapter/http/dto/request"
	response "propostas_api/internal/adapter/http/dto/response"
	"propostas_api/internal/domain/pricing"
	"propostas_api/internal/usecase"

	"github.com/gin-gonic/gin"
)

// CartHandler is the proposal builder: items, discount preview and the
// final write of the totals.
type CartHandler struct {
	usecase usecase.ICartUseCase
}

func NewCartHandler(uc usecase.ICartUseCase) *CartHandler {
	return &CartHandler{usecase: uc}
}

// GetCart godoc
// @Summary      Cart with live totals
// @Description  Without a discount query the stored discount is used.
// @Tags         cart
// @Produce      json
// @Param        id               path  string true  "proposal id"
// @Param        discount_percent query number false "percentage discount (0-100)"
// @Param        discount_value   query number false "absolute discount"
// @Success      200 {object} response.CartResponse
// @Failure      400 {object} pkg.HTTPError
// @Router       /proposals/{id}/cart [get]
func (h *CartHandler) GetCart(c *gin.Context) {
	var query request.DiscountRequest
	if err := c.ShouldBindQuery(&query); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	var (
		state usecase.CartState
		err   error
	)
	if query.DiscountPercent == nil && query.DiscountValue == nil {
		state, err = h.usecase.Load(c.Request.Context(), c.Param("id"))
	} else {
		var d pricing.Discount
		if d, err = query.Resolve(); err == nil {
			state, err = h.usecase.Preview(c.Request.Context(), c.Param("id"), d)
		}
	}
	if err != nil {
		writeError(c, mapProposalError(err))
		return
	}
	setVersion(c, state.Version)
	c.JSON(http.StatusOK, response.FromCartState(state))
}

// AddItem godoc
// @Summary  Add a service plan to the proposal
// @Tags     cart
// @Accept   json
// @Produce  json
// @Param    id   path string                 true "proposal id"
// @Param    body body request.AddItemRequest true "plan"
// @Success  201 {object} response.CartResponse
// @Failure  409 {object} pkg.HTTPError
// @Router   /proposals/{id}/cart/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	var payload request.AddItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	state, err := h.usecase.AddItem(c.Request.Context(), c.Param("id"), payload.ServicePlanID)
	if err != nil {
		writeError(c, mapProposalError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromCartState(state))
}

// RemoveItem godoc
// @Summary  Remove a service plan from the proposal
// @Tags     cart
// @Produce  json
// @Param    id      path string true "proposal id"
// @Param    plan_id path string true "service plan id"
// @Success  200 {object} response.CartResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /proposals/{id}/cart/items/{plan_id} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	state, err := h.usecase.RemoveItem(c.Request.Context(), c.Param("id"), c.Param("plan_id"))
	if err != nil {
		writeError(c, mapProposalError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCartState(state))
}

// Finalize godoc
// @Summary      Persist the totals
// @Description  next is "select_client" for a draft, "view" otherwise.
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        id       path   string                  true  "proposal id"
// @Param        If-Match header string                  false "expected version"
// @Param        body     body   request.DiscountRequest false "discount"
// @Success      200 {object} response.FinalizeResponse
// @Failure      409 {object} pkg.HTTPError
// @Failure      422 {object} pkg.HTTPError
// @Router       /proposals/{id}/finalize [post]
func (h *CartHandler) Finalize(c *gin.Context) {
	var payload request.DiscountRequest
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		writeError(c, errInvalidRequest)
		return
	}
	discount, err := payload.Resolve()
	if err != nil {
		writeError(c, mapProposalError(err))
		return
	}
	version, err := expectedVersion(c)
	if err != nil {
		writeError(c, errInvalidIfMatch)
		return
	}

	id := c.Param("id")
	slog.Info("[cart][handler] finalize start", "proposal_id", id, "discount_kind", discount.Kind)
	result, err := h.usecase.Finalize(c.Request.Context(), id, discount, version)
	if err != nil {
		slog.Warn("[cart][handler] finalize failed", "proposal_id", id, "error", err)
		writeError(c, mapProposalError(err))
		return
	}

	slog.Info("[cart][handler] finalize success", "proposal_id", id, "final", result.Totals.Final)
	setVersion(c, result.Proposal.Version)
	c.JSON(http.StatusOK, response.FromFinalizeResult(result))
}
