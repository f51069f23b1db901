package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/jhoicas/ims-client/internal/application/analytics"
	"github.com/jhoicas/ims-client/internal/application/auth"
	"github.com/jhoicas/ims-client/internal/application/screen"
	"github.com/jhoicas/ims-client/internal/application/usecase"
	"github.com/jhoicas/ims-client/internal/domain/entity"
	"github.com/jhoicas/ims-client/internal/infrastructure/imsapi"
	infrapdf "github.com/jhoicas/ims-client/internal/infrastructure/pdf"
	"github.com/jhoicas/ims-client/internal/infrastructure/session"
	httpRouter "github.com/jhoicas/ims-client/internal/interfaces/http"
	"github.com/jhoicas/ims-client/pkg/config"
	"github.com/jhoicas/ims-client/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("configuración")
	}
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("upstream", cfg.Upstream.BaseURL).
		Msg("iniciando aplicación")

	ctx := context.Background()
	sessions, closer, err := session.New(ctx, cfg.Session)
	if err != nil {
		log.Fatal().Err(err).Str("backend", cfg.Session.Backend).Msg("almacén de sesiones")
	}
	defer closer.Close()

	// Cliente de la API remota: el token de cada petición llega por contexto (sesión).
	client := imsapi.NewClient(cfg.Upstream, nil, log)
	authRepo := imsapi.NewAuthRepository(client)
	categoryRepo := imsapi.NewCategoryRepository(client)
	productRepo := imsapi.NewProductRepository(client)
	saleRepo := imsapi.NewSaleRepository(client)
	returnRepo := imsapi.NewReturnRepository(client)

	authUC := auth.NewAuthUseCase(authRepo, sessions, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, log)

	// Estado por pantalla: último valor conocido por sesión
	dashboardState := screen.FromConfig[entity.ProductStats](cfg.Screen, log)
	reportState := screen.FromConfig[appanalytics.ReportData](cfg.Screen, log)
	searchState := screen.FromConfig[appanalytics.ReportData](cfg.Screen, log)
	folderState := screen.FromConfig[[]entity.Category](cfg.Screen, log)
	boxState := screen.FromConfig[usecase.FolderItems](cfg.Screen, log)
	returnState := screen.FromConfig[usecase.ReturnsData](cfg.Screen, log)
	saleState := screen.FromConfig[[]entity.Sale](cfg.Screen, log)

	pdfGenerator := infrapdf.NewMarotoPDFGenerator(cfg.App.Locale)

	deps := httpRouter.RouterDeps{
		AuthUC:      authUC,
		DashboardUC: appanalytics.NewDashboardUseCase(productRepo, dashboardState),
		ReportUC:    appanalytics.NewReportUseCase(productRepo, categoryRepo, reportState, pdfGenerator),
		SearchUC:    appanalytics.NewSearchUseCase(productRepo, categoryRepo, searchState),
		FolderUC:    usecase.NewFolderUseCase(categoryRepo, folderState),
		BoxUC:       usecase.NewBoxUseCase(productRepo, categoryRepo, boxState),
		ReturnUC:    usecase.NewReturnUseCase(returnRepo, categoryRepo, returnState),
		SaleUC:      usecase.NewSaleUseCase(saleRepo, saleState),
		ResetUC:     usecase.NewResetUseCase(saleRepo, productRepo, categoryRepo, log),
		JWTSecret:   cfg.JWT.Secret,
		ServiceName: cfg.App.Name,
		Log:         log,
	}

	// Limpieza periódica de entradas expiradas del estado por pantalla
	janitorCtx, stopJanitor := context.WithCancel(ctx)
	defer stopJanitor()
	go func() {
		ticker := time.NewTicker(cfg.Screen.StateTTL)
		defer ticker.Stop()
		for {
			select {
			case <-janitorCtx.Done():
				return
			case <-ticker.C:
				removed := dashboardState.CleanExpired() + reportState.CleanExpired() +
					searchState.CleanExpired() + folderState.CleanExpired() +
					boxState.CleanExpired() + returnState.CleanExpired() + saleState.CleanExpired()
				if removed > 0 {
					log.Debug().Int("removed", removed).Msg("estado por pantalla depurado")
				}
			}
		}
	}()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: cfg.Upstream.Timeout + 10*time.Second,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.ErrorHandler,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "IMS Client API",
		}))
	} else {
		log.Warn().Str("file", swaggerFile).Msg("swagger.json no encontrado; /docs deshabilitado")
	}

	httpRouter.Router(app, deps)

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
