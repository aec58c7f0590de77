package routes

import (
	"net/http"

	"propostas_api/internal/adapter/http/handlers"
	"propostas_api/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathPing      = "/ping"
	PathClients   = "/clients"
	PathServices  = "/services"
	PathProposals = "/proposals"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET(PathPing, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func addClientRoutes(rg *gin.RouterGroup, h *handlers.ClientHandler) {
	clients := rg.Group(PathClients)
	{
		clients.GET("", h.ListClients)
		clients.POST("", h.CreateClient)
		clients.GET("/:id", h.GetClient)
	}
}

func addCatalogRoutes(rg *gin.RouterGroup, h *handlers.CatalogHandler) {
	services := rg.Group(PathServices)
	{
		services.GET("", h.ListServices)
		// Escrita no catálogo só para administradores.
		services.POST("", middleware.RequireAdmin(), h.CreateService)
		services.POST("/:id/plans", middleware.RequireAdmin(), h.CreatePlan)
	}
}

func addProposalRoutes(rg *gin.RouterGroup, app application) {
	proposals := rg.Group(PathProposals)
	{
		proposals.GET("", app.proposal.ListProposals)
		proposals.POST("", app.proposal.CreateProposal)
		proposals.GET("/export.xlsx", app.report.ExportProposals)
		proposals.GET("/:id", app.proposal.GetProposal)
		proposals.DELETE("/:id", app.proposal.DeleteProposal)
		proposals.PATCH("/:id/status", app.proposal.UpdateStatus)
		proposals.PUT("/:id/client", app.proposal.AttachClient)
		proposals.PUT("/:id/observations", app.proposal.UpdateObservations)

		proposals.GET("/:id/cart", app.cart.GetCart)
		proposals.POST("/:id/cart/items", app.cart.AddItem)
		proposals.DELETE("/:id/cart/items/:plan_id", app.cart.RemoveItem)
		proposals.POST("/:id/finalize", app.cart.Finalize)

		proposals.GET("/:id/document", app.document.DownloadDocument)
	}
}
