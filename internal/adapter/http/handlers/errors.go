package handlers

import (
	"errors"
	"net/http"

	request "propostas_api/internal/adapter/http/dto/request"
	"propostas_api/internal/domain/cart"
	"propostas_api/internal/domain/lifecycle"
	"propostas_api/internal/domain/pricing"
	"propostas_api/internal/usecase"
	"propostas_api/pkg"
)

// mapProposalError covers the proposal, cart and document use cases, which
// share the proposal lookups and the compare-and-swap write.
func mapProposalError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProposalID), errors.Is(err, cart.ErrInvalidProposalID),
		errors.Is(err, usecase.ErrInvalidClientID), errors.Is(err, usecase.ErrInvalidPlanID),
		errors.Is(err, usecase.ErrObservationsTooLong):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, lifecycle.ErrUnknownStatus):
		return pkg.NewDomainError("INVALID_STATUS", "Unknown proposal status", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidTheme):
		return pkg.NewDomainError("INVALID_THEME", "Unknown document theme", err, http.StatusBadRequest)
	case errors.Is(err, pricing.ErrPercentOutOfRange), errors.Is(err, pricing.ErrNegativeAmount),
		errors.Is(err, pricing.ErrInvalidAmount), errors.Is(err, request.ErrAmbiguousDiscount):
		return pkg.NewDomainError("INVALID_DISCOUNT", "Invalid discount", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProposalNotFound):
		return pkg.NewDomainErrorSimple("PROPOSAL_NOT_FOUND", "Proposal not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Client not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPlanNotFound), errors.Is(err, cart.ErrInvalidPlan):
		return pkg.NewDomainErrorSimple("PLAN_NOT_FOUND", "Service plan not found", http.StatusNotFound)
	case errors.Is(err, cart.ErrPlanNotInCart):
		return pkg.NewDomainErrorSimple("PLAN_NOT_IN_CART", "Service plan is not in the proposal", http.StatusNotFound)
	case errors.Is(err, usecase.ErrClientRequired), errors.Is(err, lifecycle.ErrExportRequiresClient):
		return pkg.NewDomainErrorSimple("CLIENT_REQUIRED", "Attach a client to the proposal first", http.StatusConflict)
	case errors.Is(err, lifecycle.ErrExportRequiresSave):
		return pkg.NewDomainErrorSimple("PROPOSAL_NOT_SAVED", "Save the proposal before exporting it", http.StatusConflict)
	case errors.Is(err, usecase.ErrVersionConflict):
		return pkg.NewDomainErrorSimple("VERSION_CONFLICT", "Proposal was modified by another request", http.StatusConflict)
	case errors.Is(err, cart.ErrPlanAlreadyInCart):
		return pkg.NewDomainErrorSimple("PLAN_ALREADY_IN_CART", "Service plan is already in the proposal", http.StatusConflict)
	case errors.Is(err, lifecycle.ErrRevertToDraft):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "A proposal cannot return to draft", http.StatusUnprocessableEntity)
	case errors.Is(err, cart.ErrNegativeTotal):
		return pkg.NewDomainErrorSimple("NEGATIVE_TOTAL", "Discount exceeds the proposal subtotal", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrDocumentGeneration):
		return pkg.NewDomainError("DOCUMENT_GENERATION_FAILED", "Could not generate the document", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
