package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	response "propostas_api/internal/adapter/http/dto/response"
	"propostas_api/internal/adapter/http/handlers/mocks"
	"propostas_api/internal/domain/cart"
	"propostas_api/internal/domain/entities"
	"propostas_api/internal/domain/pricing"
	"propostas_api/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestCartHandler_GetCart(t *testing.T) {
	newRouter := func(h *CartHandler) *gin.Engine {
		r := gin.New()
		r.GET("/v1/proposals/:id/cart", h.GetCart)
		return r
	}

	t.Run("stored discount without query", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICartUseCase(ctrl)
		uc.EXPECT().Load(gomock.Any(), "p-1").Return(usecase.CartState{ProposalID: "p-1", Version: 3}, nil)

		w := httptest.NewRecorder()
		newRouter(NewCartHandler(uc)).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/proposals/p-1/cart", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("percent preview", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICartUseCase(ctrl)
		uc.EXPECT().Preview(gomock.Any(), "p-1", pricing.Percent(10)).Return(usecase.CartState{
			ProposalID: "p-1",
			Discount:   pricing.Percent(10),
			Totals:     pricing.Totals{Monthly: 100, Setup: 50, Subtotal: 150, DiscountAmount: 15, Final: 135},
		}, nil)

		w := httptest.NewRecorder()
		newRouter(NewCartHandler(uc)).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/proposals/p-1/cart?discount_percent=10", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body response.CartResponse
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.Totals.Final != 135 || body.Discount.Kind != "percentage" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("both discount fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICartUseCase(ctrl)

		w := httptest.NewRecorder()
		newRouter(NewCartHandler(uc)).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/proposals/p-1/cart?discount_percent=10&discount_value=5", nil))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if body := decodeError(t, w); body.Code != "INVALID_DISCOUNT" {
			t.Fatalf("expected INVALID_DISCOUNT, got %s", body.Code)
		}
	})

	t.Run("percent out of range", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICartUseCase(ctrl)
		uc.EXPECT().Preview(gomock.Any(), "p-1", pricing.Percent(120)).Return(usecase.CartState{}, pricing.ErrPercentOutOfRange)

		w := httptest.NewRecorder()
		newRouter(NewCartHandler(uc)).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/proposals/p-1/cart?discount_percent=120", nil))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestCartHandler_Items(t *testing.T) {
	t.Run("add duplicate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICartUseCase(ctrl)
		uc.EXPECT().AddItem(gomock.Any(), "p-1", "plan-1").Return(usecase.CartState{}, cart.ErrPlanAlreadyInCart)

		r := gin.New()
		r.POST("/v1/proposals/:id/cart/items", NewCartHandler(uc).AddItem)

		req := httptest.NewRequest(http.MethodPost, "/v1/proposals/p-1/cart/items", bytes.NewBufferString(`{"service_plan_id":"plan-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		if body := decodeError(t, w); body.Code != "PLAN_ALREADY_IN_CART" {
			t.Fatalf("expected PLAN_ALREADY_IN_CART, got %s", body.Code)
		}
	})

	t.Run("add", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICartUseCase(ctrl)
		uc.EXPECT().AddItem(gomock.Any(), "p-1", "plan-1").Return(usecase.CartState{
			ProposalID: "p-1",
			Items:      []entities.CartItem{{ServicePlan: entities.ServicePlan{ID: "plan-1", MonthlyFee: 100}, ServiceName: "Sites"}},
		}, nil)

		r := gin.New()
		r.POST("/v1/proposals/:id/cart/items", NewCartHandler(uc).AddItem)

		req := httptest.NewRequest(http.MethodPost, "/v1/proposals/p-1/cart/items", bytes.NewBufferString(`{"service_plan_id":"plan-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("remove missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICartUseCase(ctrl)
		uc.EXPECT().RemoveItem(gomock.Any(), "p-1", "plan-9").Return(usecase.CartState{}, cart.ErrPlanNotInCart)

		r := gin.New()
		r.DELETE("/v1/proposals/:id/cart/items/:plan_id", NewCartHandler(uc).RemoveItem)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/v1/proposals/p-1/cart/items/plan-9", nil))

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestCartHandler_Finalize(t *testing.T) {
	newRouter := func(h *CartHandler) *gin.Engine {
		r := gin.New()
		r.POST("/v1/proposals/:id/finalize", h.Finalize)
		return r
	}

	t.Run("negative total", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICartUseCase(ctrl)
		uc.EXPECT().Finalize(gomock.Any(), "p-1", pricing.Amount(500), nil).Return(cart.FinalizeResult{}, cart.ErrNegativeTotal)

		req := httptest.NewRequest(http.MethodPost, "/v1/proposals/p-1/finalize", bytes.NewBufferString(`{"discount_value":500}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newRouter(NewCartHandler(uc)).ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("draft goes to client selection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICartUseCase(ctrl)
		uc.EXPECT().Finalize(gomock.Any(), "p-1", pricing.Amount(0), intPtr(4)).Return(cart.FinalizeResult{
			Totals:   pricing.Totals{Monthly: 100, Setup: 50, Subtotal: 150, Final: 150},
			Proposal: entities.Proposal{ID: "p-1", Status: entities.ProposalStatusRascunho, Version: 5},
			Next:     cart.NextSelectClient,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/proposals/p-1/finalize", nil)
		req.Header.Set("If-Match", `"4"`)
		w := httptest.NewRecorder()
		newRouter(NewCartHandler(uc)).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body response.FinalizeResponse
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.Next != "select_client" || body.Proposal.Version != 5 {
			t.Fatalf("unexpected body: %+v", body)
		}
	})
}
