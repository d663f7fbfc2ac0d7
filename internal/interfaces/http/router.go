package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Danielpnvs/usekaylla-api/internal/application/analytics"
	"github.com/Danielpnvs/usekaylla-api/internal/application/auth"
	"github.com/Danielpnvs/usekaylla-api/internal/application/cashflow"
	"github.com/Danielpnvs/usekaylla-api/internal/application/catalog"
	"github.com/Danielpnvs/usekaylla-api/internal/application/sales"
	"github.com/Danielpnvs/usekaylla-api/internal/domain"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	OutflowUC    *cashflow.OutflowUseCase
	AllocationUC *cashflow.AllocationUseCase
	ClothingUC   *catalog.ClothingUseCase
	SalesUC      *sales.RegisterSaleUseCase
	DashboardUC  *analytics.DashboardUseCase
	ReportUC     *analytics.ReportUseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth: login público; register protegido (solo admin, valida el caso de uso)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	protected.Post("/auth/register", RequireRole(domain.RoleAdmin), authHandler.Register)

	// Flujo de caja (protegido)
	cf := protected.Group("/cashflow")
	cashFlowHandler := NewCashFlowHandler(deps.OutflowUC, deps.AllocationUC)
	cf.Get("/snapshot", cashFlowHandler.GetSnapshot)
	cf.Get("/movements", cashFlowHandler.ListMovements)
	cf.Post("/movements", cashFlowHandler.RegisterOutflow)
	cf.Put("/movements/:id", cashFlowHandler.EditOutflow)
	cf.Delete("/movements/:id", cashFlowHandler.DeleteOutflow)
	cf.Get("/allocation", cashFlowHandler.GetAllocation)
	cf.Put("/allocation", cashFlowHandler.UpdateAllocation)

	// Catálogo de prendas (protegido)
	clothing := protected.Group("/clothing")
	catalogHandler := NewCatalogHandler(deps.ClothingUC)
	clothing.Post("/", catalogHandler.Create)
	clothing.Get("/", catalogHandler.List)
	clothing.Get("/:id", catalogHandler.GetByID)
	clothing.Put("/:id", catalogHandler.Update)
	clothing.Delete("/:id", catalogHandler.Delete)

	// Ventas (protegido)
	salesGroup := protected.Group("/sales")
	salesHandler := NewSalesHandler(deps.SalesUC)
	salesGroup.Post("/", salesHandler.Create)
	salesGroup.Get("/", salesHandler.List)
	salesGroup.Get("/:id", salesHandler.GetByID)
	salesGroup.Put("/:id/status", salesHandler.UpdateStatus)

	// Dashboard y reportes (protegido)
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.ReportUC)
	dashboard.Get("/summary", dashboardHandler.GetSummary)
	dashboard.Get("/cashflow-report", dashboardHandler.CashFlowReport)
}
