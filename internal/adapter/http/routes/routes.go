package routes

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	_ "propostas_api/docs"
	request "propostas_api/internal/adapter/http/dto/request"
	"propostas_api/internal/adapter/http/handlers"
	"propostas_api/internal/adapter/http/middleware"
	"propostas_api/internal/config"
	"propostas_api/internal/infrastructure/auth"
	"propostas_api/internal/infrastructure/metrics"
	"propostas_api/internal/render"
	"propostas_api/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router *gin.Engine

// Run wires the record store, the use cases and the HTTP routes, then
// serves until the listener fails.
func Run(cfg config.Config) error {
	ctx := context.Background()

	st, err := openStores(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.close()

	app, err := buildApplication(cfg, st)
	if err != nil {
		return err
	}
	router = newRouter(app)

	slog.Info("[routes] listening", "port", cfg.Port)
	if err := router.Run(":" + strconv.Itoa(cfg.Port)); err != nil {
		return fmt.Errorf("failed to startup the application: %w", err)
	}
	return nil
}

// application holds what the router needs.
type application struct {
	sessions middleware.SessionOpener
	clients  *handlers.ClientHandler
	catalog  *handlers.CatalogHandler
	proposal *handlers.ProposalHandler
	cart     *handlers.CartHandler
	document *handlers.DocumentHandler
	report   *handlers.ReportHandler
}

func buildApplication(cfg config.Config, st stores) (application, error) {
	if err := request.RegisterValidators(); err != nil {
		return application{}, err
	}

	sessions, err := auth.NewSessions(cfg.JWTSecret, st.roles)
	if err != nil {
		return application{}, err
	}

	theme, err := render.ParseTheme(cfg.Document.Theme)
	if err != nil {
		return application{}, fmt.Errorf("invalid DOCUMENT_THEME: %w", err)
	}
	loc, err := time.LoadLocation(cfg.Document.TimeZone)
	if err != nil {
		return application{}, fmt.Errorf("invalid DOCUMENT_TZ: %w", err)
	}
	renderer := render.NewRenderer(render.Brand{
		Name:     cfg.Brand.Name,
		Initials: cfg.Brand.Initials,
		Contact:  cfg.Brand.Contact,
	}, loc)

	return application{
		sessions: sessions,
		clients:  handlers.NewClientHandler(usecase.NewClientUseCase(st.clients)),
		catalog:  handlers.NewCatalogHandler(usecase.NewCatalogUseCase(st.catalog)),
		proposal: handlers.NewProposalHandler(usecase.NewProposalUseCase(st.proposals, st.items, st.catalog, st.clients)),
		cart:     handlers.NewCartHandler(usecase.NewCartUseCase(st.proposals, st.items, st.catalog, st.clients)),
		document: handlers.NewDocumentHandler(usecase.NewDocumentUseCase(st.proposals, st.items, st.catalog, st.clients, renderer, theme)),
		report:   handlers.NewReportHandler(usecase.NewReportUseCase(st.proposals, st.clients)),
	}, nil
}

func newRouter(app application) *gin.Engine {
	r := gin.New()
	setMiddlewares(r)

	// Swagger documentation endpoint
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	v1 := r.Group("/v1")
	addPingRoutes(v1)

	// Rotas autenticadas
	private := v1.Group("", middleware.RequireSession(app.sessions))
	private.GET("/me", handlers.Me)
	addClientRoutes(private, app.clients)
	addCatalogRoutes(private, app.catalog)
	addProposalRoutes(private, app)
	return r
}

func setMiddlewares(r *gin.Engine) {
	r.Use(middleware.RequestLogger())
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		slog.Error("[routes] recovered from panic", "panic", recovered, "path", c.Request.URL.Path)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
