// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"autonomax/internal/delivery/api/middleware"
	"autonomax/internal/delivery/api/router/handler"
)

type RouterParams struct {
	fx.In

	AuthHandler        *handler.AuthHandler
	BusinessHandler    *handler.BusinessHandler
	ClientHandler      *handler.ClientHandler
	ProductHandler     *handler.ProductHandler
	TransactionHandler *handler.TransactionHandler
	ReportHandler      *handler.ReportHandler
	HealthHandler      *handler.HealthHandler
	AuthMiddleware     *middleware.AuthMiddleware
	RateLimiters       *middleware.RateLimiters
	Metrics            *middleware.Metrics
}

// router holds all the handlers that need to be registered.
type router struct {
	auth         *handler.AuthHandler
	businesses   *handler.BusinessHandler
	clients      *handler.ClientHandler
	products     *handler.ProductHandler
	transactions *handler.TransactionHandler
	reports      *handler.ReportHandler
	health       *handler.HealthHandler
	authn        *middleware.AuthMiddleware
	limits       *middleware.RateLimiters
	metrics      *middleware.Metrics
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		auth:         params.AuthHandler,
		businesses:   params.BusinessHandler,
		clients:      params.ClientHandler,
		products:     params.ProductHandler,
		transactions: params.TransactionHandler,
		reports:      params.ReportHandler,
		health:       params.HealthHandler,
		authn:        params.AuthMiddleware,
		limits:       params.RateLimiters,
		metrics:      params.Metrics,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", r.health.Healthz)
	e.GET("/metrics", r.metrics.Handler())

	api := e.Group("/api", r.limits.Global)

	authGroup := api.Group("/Auth")
	{
		authGroup.POST("/login", r.auth.Login, r.limits.Login)
		authGroup.POST("/register", r.auth.Register)
		authGroup.GET("/me", r.auth.Me, r.authn.Authenticate)
	}

	businesses := api.Group("/Negocios", r.authn.Authenticate)
	{
		businesses.GET("", r.businesses.List)
		businesses.POST("", r.businesses.Create)
		businesses.GET("/:id", r.businesses.Get)
		businesses.PUT("/:id", r.businesses.Update)
		businesses.DELETE("/:id", r.businesses.Delete)
	}

	clients := api.Group("/Clientes", r.authn.Authenticate)
	{
		clients.GET("/por-negocio/:negocioId", r.clients.ListByBusiness)
		clients.GET("/ranking/:negocioId", r.clients.Ranking)
		clients.POST("", r.clients.Create)
		clients.GET("/:id", r.clients.Get)
		clients.PUT("/:id", r.clients.Update)
		clients.DELETE("/:id", r.clients.Delete)
	}

	products := api.Group("/ProdutosServicos", r.authn.Authenticate)
	{
		products.GET("/por-negocio/:negocioId", r.products.ListByBusiness)
		products.POST("", r.products.Create)
		products.DELETE("/:id", r.products.Delete)
	}

	transactions := api.Group("/Transacoes", r.authn.Authenticate)
	{
		transactions.POST("", r.transactions.Create)
		transactions.GET("/mensal", r.transactions.Monthly)
		transactions.GET("/por-periodo/:businessId", r.transactions.ListByPeriod)
		transactions.GET("/por-negocio/:businessId", r.transactions.ListByBusiness)
		transactions.GET("/por-cliente/:clientId", r.transactions.ListByClient)
		transactions.GET("/:id", r.transactions.Get)
		transactions.DELETE("/:id", r.transactions.Delete)
	}

	api.GET("/Dashboard/:negocioId", r.reports.Dashboard, r.authn.Authenticate)
	api.GET("/Relatorios/anual/:negocioId", r.reports.Annual, r.authn.Authenticate)
}
