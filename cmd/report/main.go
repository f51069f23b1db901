// report inicia sesión en la API remota con el PIN y genera el reporte mensual en PDF.
//
// Uso: IMS_PIN=1234 go run ./cmd/report [-folder <id|all>] [-out reporte.pdf]
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	appanalytics "github.com/jhoicas/ims-client/internal/application/analytics"
	"github.com/jhoicas/ims-client/internal/application/auth"
	"github.com/jhoicas/ims-client/internal/application/screen"
	"github.com/jhoicas/ims-client/internal/infrastructure/imsapi"
	infrapdf "github.com/jhoicas/ims-client/internal/infrastructure/pdf"
	"github.com/jhoicas/ims-client/pkg/config"
	"github.com/jhoicas/ims-client/pkg/logger"
)

func main() {
	folder := flag.String("folder", "all", "id de carpeta o all")
	out := flag.String("out", "", "archivo de salida (por defecto report-<mes>.pdf)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Output: os.Stderr})

	pin := strings.TrimSpace(os.Getenv("IMS_PIN"))
	if err := auth.ValidatePIN(pin); err != nil {
		fmt.Fprintf(os.Stderr, "IMS_PIN: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	tokens := &imsapi.TokenStore{}
	client := imsapi.NewClient(cfg.Upstream, tokens, log)

	login, err := imsapi.NewAuthRepository(client).Login(ctx, pin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Login: %s\n", messageOf(err))
		os.Exit(1)
	}
	tokens.Set(login.Token)

	uc := appanalytics.NewReportUseCase(
		imsapi.NewProductRepository(client),
		imsapi.NewCategoryRepository(client),
		screen.NewStore[appanalytics.ReportData](1, time.Minute, log),
		infrapdf.NewMarotoPDFGenerator(cfg.App.Locale),
	)
	pdfBytes, report, err := uc.ExportPDF(ctx, *folder)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Generar reporte: %s\n", messageOf(err))
		os.Exit(1)
	}

	path := *out
	if path == "" {
		path = "report-" + strings.ReplaceAll(strings.ToLower(report.MonthLabel), " ", "-") + ".pdf"
	}
	if err := os.WriteFile(path, pdfBytes, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir %s: %v\n", path, err)
		os.Exit(1)
	}
	fmt.Printf("Escrito %s (%s, %d cajas, %d bytes)\n", path, report.FolderLabel, report.Totals.TotalBoxes, len(pdfBytes))
}

// messageOf prefiere el mensaje del servidor cuando existe.
func messageOf(err error) string {
	if msg := imsapi.ServerMessage(err); msg != "" {
		return msg
	}
	return err.Error()
}
