package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/ims-client/internal/application/analytics"
	"github.com/jhoicas/ims-client/internal/application/auth"
	"github.com/jhoicas/ims-client/internal/application/usecase"
	"github.com/jhoicas/ims-client/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	DashboardUC *appanalytics.DashboardUseCase
	ReportUC    *appanalytics.ReportUseCase
	SearchUC    *appanalytics.SearchUseCase
	FolderUC    *usecase.FolderUseCase
	BoxUC       *usecase.BoxUseCase
	ReturnUC    *usecase.ReturnUseCase
	SaleUC      *usecase.SaleUseCase
	ResetUC     *usecase.ResetUseCase
	JWTSecret   string
	ServiceName string
	Log         *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}
	app.Use(RequestLogger(log))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.ServiceName})
	})

	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token del gateway)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret, deps.AuthUC))

	authGroup := protected.Group("/auth")
	authGroup.Post("/logout", authHandler.Logout)
	authGroup.Get("/profile", authHandler.Profile)
	authGroup.Put("/profile", authHandler.UpdateProfile)
	authGroup.Put("/pin", authHandler.ChangePIN)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.GetSummary)

	// Reportes y búsqueda por fechas
	analyticsHandler := NewAnalyticsHandler(deps.ReportUC, deps.SearchUC)
	protected.Get("/reports", analyticsHandler.GetReport)
	protected.Get("/reports/pdf", analyticsHandler.GetReportPDF)
	protected.Get("/search", analyticsHandler.Search)

	// Carpetas
	folders := protected.Group("/folders")
	folderHandler := NewFolderHandler(deps.FolderUC)
	boxHandler := NewBoxHandler(deps.BoxUC)
	folders.Get("/", folderHandler.List)
	folders.Post("/", folderHandler.Create)
	folders.Get("/:id", folderHandler.GetByID)
	folders.Put("/:id", folderHandler.Update)
	folders.Delete("/:id", folderHandler.Delete)
	folders.Get("/:id/boxes", boxHandler.ListByFolder)
	folders.Post("/:id/boxes", boxHandler.Create)

	// Cajas
	boxes := protected.Group("/boxes")
	boxes.Put("/:id", boxHandler.Update)
	boxes.Delete("/:id", boxHandler.Delete)

	// Devoluciones
	returns := protected.Group("/returns")
	returnHandler := NewReturnHandler(deps.ReturnUC)
	returns.Get("/", returnHandler.List)
	returns.Post("/", returnHandler.Create)

	// Ventas
	sales := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC)
	sales.Get("/", saleHandler.List)
	sales.Put("/:id/status", saleHandler.UpdateStatus)
	sales.Delete("/:id", saleHandler.Delete)

	// Borrado total
	dataHandler := NewDataHandler(deps.ResetUC)
	protected.Post("/data/reset", dataHandler.Reset)
}
