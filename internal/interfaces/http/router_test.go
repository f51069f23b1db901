package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appanalytics "github.com/jhoicas/ims-client/internal/application/analytics"
	"github.com/jhoicas/ims-client/internal/application/apptest"
	"github.com/jhoicas/ims-client/internal/application/auth"
	"github.com/jhoicas/ims-client/internal/application/dto"
	"github.com/jhoicas/ims-client/internal/application/screen"
	"github.com/jhoicas/ims-client/internal/application/usecase"
	"github.com/jhoicas/ims-client/internal/domain"
	"github.com/jhoicas/ims-client/internal/domain/entity"
	"github.com/jhoicas/ims-client/internal/infrastructure/imsapi"
	"github.com/jhoicas/ims-client/internal/infrastructure/session"
	apphttp "github.com/jhoicas/ims-client/internal/interfaces/http"
	"github.com/jhoicas/ims-client/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type fakePDF struct{}

func (fakePDF) GenerateReportPDF(_ context.Context, _ *dto.ReportResponse) ([]byte, error) {
	return []byte("%PDF-1.3 test"), nil
}

type harness struct {
	app        *fiber.App
	auth       *apptest.Auth
	categories *apptest.Categories
	products   *apptest.Products
	sales      *apptest.Sales
	returns    *apptest.Returns
	logs       *bytes.Buffer
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		auth: &apptest.Auth{Token: "upstream-token", Profile: entity.Profile{ID: "u-1", FullName: "Asha"}},
		categories: &apptest.Categories{Items: []entity.Category{
			{ID: "c1", Name: "Norte", Description: "Bodega norte"},
			{ID: "c2", Name: "Sur"},
		}},
		products: &apptest.Products{
			Items: []entity.Product{
				{ID: "p1", Name: "Caja roja", SKU: "CAJ-1", Category: entity.CategoryRef{ID: "c1", Name: "Norte"}, TotalStock: 10, Sold: 4, Returned: 1, Stock: 6, Price: decimal.NewFromInt(10)},
				{ID: "p2", Name: "Caja azul", SKU: "CAJ-2", Category: entity.CategoryRef{ID: "c1", Name: "Norte"}, TotalStock: 2, Sold: 2, Stock: 0, Price: decimal.NewFromInt(5)},
				{ID: "p3", Name: "Caja verde", SKU: "CAJ-3", Category: entity.CategoryRef{ID: "c2", Name: "Sur"}, TotalStock: 3, Stock: 3, Price: decimal.NewFromInt(1)},
			},
			StatsResult: entity.ProductStats{TotalStockAdded: 15, TotalSold: 6, TotalReturned: 1, TotalRemaining: 9},
		},
		sales: &apptest.Sales{Items: []entity.Sale{
			{ID: "s1", SaleID: "SO-1", CustomerName: "Ravi", Status: entity.SaleStatusPending},
			{ID: "s2", SaleID: "SO-2", CustomerName: "Meera", Status: entity.SaleStatusPending},
		}},
		returns: &apptest.Returns{Products: []entity.Product{
			{ID: "p1", Name: "Caja roja", Category: entity.CategoryRef{ID: "c1", Name: "Norte"}, Returned: 2, Price: decimal.NewFromInt(10)},
		}},
		logs: &bytes.Buffer{},
	}

	sessions := session.NewMemoryStore()
	authUC := auth.NewAuthUseCase(h.auth, sessions, auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer}, nil)

	h.app = fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler})
	apphttp.Router(h.app, apphttp.RouterDeps{
		AuthUC:      authUC,
		DashboardUC: appanalytics.NewDashboardUseCase(h.products, screen.NewStore[entity.ProductStats](16, time.Minute, nil)),
		ReportUC:    appanalytics.NewReportUseCase(h.products, h.categories, screen.NewStore[appanalytics.ReportData](16, time.Minute, nil), fakePDF{}),
		SearchUC:    appanalytics.NewSearchUseCase(h.products, h.categories, screen.NewStore[appanalytics.ReportData](16, time.Minute, nil)),
		FolderUC:    usecase.NewFolderUseCase(h.categories, screen.NewStore[[]entity.Category](16, time.Minute, nil)),
		BoxUC:       usecase.NewBoxUseCase(h.products, h.categories, screen.NewStore[usecase.FolderItems](16, time.Minute, nil)),
		ReturnUC:    usecase.NewReturnUseCase(h.returns, h.categories, screen.NewStore[usecase.ReturnsData](16, time.Minute, nil)),
		SaleUC:      usecase.NewSaleUseCase(h.sales, screen.NewStore[[]entity.Sale](16, time.Minute, nil)),
		ResetUC:     usecase.NewResetUseCase(h.sales, h.products, h.categories, nil),
		JWTSecret:   testJWTSecret,
		ServiceName: "ims-client-test",
		Log:         logger.New(logger.Config{Level: "info", Output: h.logs}),
	})
	return h
}

// do lanza la petición y devuelve el estado y el cuerpo.
func (h *harness) do(t *testing.T, method, path string, body any, authHeader string) (int, []byte) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := h.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, out
}

// login inicia sesión con PIN y devuelve el header Authorization.
func (h *harness) login(t *testing.T) string {
	t.Helper()
	status, body := h.do(t, http.MethodPost, "/api/auth/login", map[string]string{"pin": "1234"}, "")
	require.Equal(t, http.StatusOK, status, string(body))

	var out dto.LoginResponse
	require.NoError(t, json.Unmarshal(body, &out))
	require.NotEmpty(t, out.Token)
	return "Bearer " + out.Token
}

func decode[T any](t *testing.T, body []byte) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(body, &out), string(body))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Auth
// ──────────────────────────────────────────────────────────────────────────────

func TestRouter_LoginYPerfil(t *testing.T) {
	h := newHarness(t)
	token := h.login(t)

	status, body := h.do(t, http.MethodGet, "/api/auth/profile", nil, token)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Asha", decode[dto.ProfileDTO](t, body).FullName)
}

func TestRouter_LoginPINInvalido(t *testing.T) {
	h := newHarness(t)

	status, body := h.do(t, http.MethodPost, "/api/auth/login", map[string]string{"pin": "12a"}, "")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION", decode[dto.ErrorResponse](t, body).Code)
}

func TestRouter_LoginRechazadoPorLaAPI(t *testing.T) {
	h := newHarness(t)
	h.auth.LoginErr = &imsapi.APIError{StatusCode: 401, Message: "Invalid PIN", Err: domain.ErrUnauthorized}

	status, body := h.do(t, http.MethodPost, "/api/auth/login", map[string]string{"pin": "9999"}, "")
	assert.Equal(t, http.StatusUnauthorized, status)
	got := decode[dto.ErrorResponse](t, body)
	assert.Equal(t, "UNAUTHORIZED", got.Code)
	assert.Equal(t, "Invalid PIN", got.Message, "se muestra el mensaje del servidor")
}

func TestRouter_LoginCuerpoInvalido(t *testing.T) {
	h := newHarness(t)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString("{"))
	req.Header.Set("Content-Type", "application/json")
	resp, err := h.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRouter_LogoutInvalidaElToken(t *testing.T) {
	h := newHarness(t)
	token := h.login(t)

	status, _ := h.do(t, http.MethodPost, "/api/auth/logout", nil, token)
	require.Equal(t, http.StatusOK, status)

	status, body := h.do(t, http.MethodGet, "/api/dashboard", nil, token)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "SESSION_EXPIRED", decode[dto.ErrorResponse](t, body).Code)
}

func TestRouter_CambioDePIN(t *testing.T) {
	h := newHarness(t)
	token := h.login(t)

	status, body := h.do(t, http.MethodPut, "/api/auth/pin", dto.ChangePINRequest{CurrentPIN: "1234", NewPIN: "5678", ConfirmPIN: "5679"}, token)
	assert.Equal(t, http.StatusBadRequest, status, string(body))
	assert.Empty(t, h.auth.PINCalls)

	status, _ = h.do(t, http.MethodPut, "/api/auth/pin", dto.ChangePINRequest{CurrentPIN: "1234", NewPIN: "5678", ConfirmPIN: "5678"}, token)
	assert.Equal(t, http.StatusOK, status)
	require.Len(t, h.auth.PINCalls, 1)
	assert.Equal(t, [2]string{"1234", "5678"}, h.auth.PINCalls[0])
}

func TestRouter_RutaProtegidaSinToken(t *testing.T) {
	h := newHarness(t)
	status, _ := h.do(t, http.MethodGet, "/api/folders", nil, "")
	assert.Equal(t, http.StatusUnauthorized, status)
}

// ──────────────────────────────────────────────────────────────────────────────
// Dashboard, reportes y búsqueda
// ──────────────────────────────────────────────────────────────────────────────

func TestRouter_Dashboard(t *testing.T) {
	h := newHarness(t)
	token := h.login(t)

	status, body := h.do(t, http.MethodGet, "/api/dashboard", nil, token)
	require.Equal(t, http.StatusOK, status)
	got := decode[dto.DashboardResponse](t, body)
	assert.Equal(t, 15, got.TotalStockAdded)
	assert.Equal(t, 9, got.TotalRemaining)
	assert.False(t, got.Stale)
}

func TestRouter_DashboardConservaUltimoValor(t *testing.T) {
	h := newHarness(t)
	token := h.login(t)

	status, _ := h.do(t, http.MethodGet, "/api/dashboard", nil, token)
	require.Equal(t, http.StatusOK, status)

	h.products.StatsErr = domain.ErrUpstream
	status, body := h.do(t, http.MethodGet, "/api/dashboard", nil, token)
	require.Equal(t, http.StatusOK, status)
	got := decode[dto.DashboardResponse](t, body)
	assert.True(t, got.Stale)
	assert.NotEmpty(t, got.Warning)
	assert.Equal(t, 6, got.TotalSold)
}

func TestRouter_DashboardSinDatosPrevios(t *testing.T) {
	h := newHarness(t)
	token := h.login(t)
	h.products.StatsErr = domain.ErrUpstream

	status, body := h.do(t, http.MethodGet, "/api/dashboard", nil, token)
	assert.Equal(t, http.StatusBadGateway, status)
	assert.Equal(t, "UPSTREAM", decode[dto.ErrorResponse](t, body).Code)
}

func TestRouter_ReportePorCarpeta(t *testing.T) {
	h := newHarness(t)
	token := h.login(t)

	status, body := h.do(t, http.MethodGet, "/api/reports?category=c1", nil, token)
	require.Equal(t, http.StatusOK, status)
	got := decode[dto.ReportResponse](t, body)
	assert.Equal(t, "Norte", got.FolderLabel)
	assert.Equal(t, 2, got.Totals.TotalBoxes)
	assert.Equal(t, 6, got.Totals.SoldBoxes)
	assert.True(t, decimal.NewFromInt(50).Equal(got.Totals.SoldValue))
}

func TestRouter_ReportePDF(t *testing.T) {
	h := newHarness(t)
	token := h.login(t)

	req := httptest.NewRequest(http.MethodGet, "/api/reports/pdf", nil)
	req.Header.Set("Authorization", token)
	resp, err := h.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "attachment")
	body, _ := io.ReadAll(resp.Body)
	assert.True(t, bytes.HasPrefix(body, []byte("%PDF")))
}

func TestRouter_BusquedaRangoInvalido(t *testing.T) {
	h := newHarness(t)
	token := h.login(t)

	status, body := h.do(t, http.MethodGet, "/api/search?start_date=2026-10-31&end_date=2026-10-01", nil, token)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION", decode[dto.ErrorResponse](t, body).Code)
}

func TestRouter_Busqueda(t *testing.T) {
	h := newHarness(t)
	token := h.login(t)

	status, body := h.do(t, http.MethodGet, "/api/search?start_date=2026-10-01&end_date=2026-10-31&status=returned", nil, token)
	require.Equal(t, http.StatusOK, status)
	got := decode[dto.SearchResponse](t, body)
	assert.Equal(t, "2026-10-01", got.Range.Start)
	assert.Equal(t, 3, got.Totals.TotalBoxes)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "p1", got.Items[0].ID)
	require.NotEmpty(t, h.products.Queries)
	assert.Equal(t, "2026-10-31", h.products.Queries[len(h.products.Queries)-1].EndDate)
}

// ──────────────────────────────────────────────────────────────────────────────
// Carpetas y cajas
// ──────────────────────────────────────────────────────────────────────────────

func TestRouter_CarpetasCRUD(t *testing.T) {
	h := newHarness(t)
	token := h.login(t)

	status, body := h.do(t, http.MethodGet, "/api/folders?q=norte", nil, token)
	require.Equal(t, http.StatusOK, status)
	list := decode[dto.FolderListResponse](t, body)
	require.Len(t, list.Folders, 1)
	assert.Equal(t, "c1", list.Folders[0].ID)

	status, body = h.do(t, http.MethodPost, "/api/folders", dto.FolderRequest{Name: "  Este "}, token)
	require.Equal(t, http.StatusCreated, status)
	created := decode[dto.FolderDTO](t, body)
	assert.Equal(t, "Este", created.Name)
	assert.Equal(t, entity.DefaultCategoryDescription, created.Description)

	status, _ = h.do(t, http.MethodPost, "/api/folders", dto.FolderRequest{Name: "  "}, token)
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = h.do(t, http.MethodGet, "/api/folders/zz", nil, token)
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = h.do(t, http.MethodDelete, "/api/folders/c2", nil, token)
	assert.Equal(t, http.StatusNoContent, status)
	assert.Equal(t, []string{"c2"}, h.categories.Deleted)
}

func TestRouter_CajasDeCarpeta(t *testing.T) {
	h := newHarness(t)
	token := h.login(t)

	status, body := h.do(t, http.MethodGet, "/api/folders/c1/boxes?q=roja", nil, token)
	require.Equal(t, http.StatusOK, status)
	got := decode[dto.FolderItemsResponse](t, body)
	assert.Equal(t, "Norte", got.Folder.Name)
	assert.Equal(t, 2, got.Totals.TotalBoxes, "los totales cubren toda la carpeta")
	require.Len(t, got.Items, 1)
	assert.Equal(t, "p1", got.Items[0].ID)

	status, _ = h.do(t, http.MethodGet, "/api/folders/c1/boxes?status=vendido", nil, token)
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = h.do(t, http.MethodGet, "/api/folders/zz/boxes", nil, token)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestRouter_CrearCajaConvierteNumeros(t *testing.T) {
	h := newHarness(t)
	token := h.login(t)

	payload := map[string]any{"name": "Caja nueva", "total_stock": "12", "sold": "", "returned": "abc", "price": "9.5"}
	status, body := h.do(t, http.MethodPost, "/api/folders/c1/boxes", payload, token)
	require.Equal(t, http.StatusCreated, status, string(body))

	require.Len(t, h.products.Created, 1)
	in := h.products.Created[0]
	assert.Equal(t, "c1", in.CategoryID)
	assert.Equal(t, 12, in.TotalStock)
	assert.Equal(t, 0, in.Sold)
	assert.Equal(t, 0, in.Returned)
	assert.True(t, decimal.RequireFromString("9.5").Equal(in.Price))
	assert.NotEmpty(t, in.SKU)
}

func TestRouter_EliminarCaja(t *testing.T) {
	h := newHarness(t)
	token := h.login(t)

	status, _ := h.do(t, http.MethodDelete, "/api/boxes/p3", nil, token)
	assert.Equal(t, http.StatusNoContent, status)
	assert.Equal(t, []string{"p3"}, h.products.Deleted)
}

// ──────────────────────────────────────────────────────────────────────────────
// Ventas, devoluciones y borrado total
// ──────────────────────────────────────────────────────────────────────────────

func TestRouter_Ventas(t *testing.T) {
	h := newHarness(t)
	token := h.login(t)

	status, body := h.do(t, http.MethodGet, "/api/sales?q=ravi", nil, token)
	require.Equal(t, http.StatusOK, status)
	list := decode[dto.SaleListResponse](t, body)
	require.Len(t, list.Sales, 1)
	assert.Equal(t, "s1", list.Sales[0].ID)
	assert.Len(t, list.Statuses, 5)

	status, _ = h.do(t, http.MethodPut, "/api/sales/s1/status", dto.UpdateSaleStatusRequest{Status: "Lost"}, token)
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = h.do(t, http.MethodPut, "/api/sales/s1/status", dto.UpdateSaleStatusRequest{Status: entity.SaleStatuses[len(entity.SaleStatuses)-1]}, token)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, entity.SaleStatuses[len(entity.SaleStatuses)-1], h.sales.Statuses["s1"])
}

func TestRouter_Devoluciones(t *testing.T) {
	h := newHarness(t)
	token := h.login(t)

	status, body := h.do(t, http.MethodGet, "/api/returns?q=norte", nil, token)
	require.Equal(t, http.StatusOK, status)
	got := decode[dto.ReturnsResponse](t, body)
	assert.Equal(t, 2, got.TotalReturns)
	assert.True(t, decimal.NewFromInt(20).Equal(got.TotalValue))
	assert.Len(t, got.Folders, 2)

	status, _ = h.do(t, http.MethodPost, "/api/returns", map[string]any{"box_id": "p1", "quantity": 0}, token)
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = h.do(t, http.MethodPost, "/api/returns", map[string]any{"box_id": "p1", "quantity": "2", "reason": "rota"}, token)
	assert.Equal(t, http.StatusCreated, status)
	require.Len(t, h.returns.Created, 1)
	assert.Equal(t, 2, h.returns.Created[0].Quantity)
}

func TestRouter_BorradoTotal(t *testing.T) {
	h := newHarness(t)
	token := h.login(t)
	h.products.DeleteErr = map[string]error{"p2": domain.ErrUpstream}

	status, body := h.do(t, http.MethodPost, "/api/data/reset", nil, token)
	require.Equal(t, http.StatusOK, status)
	got := decode[dto.ResetResponse](t, body)
	assert.Equal(t, 2, got.SalesDeleted)
	assert.Equal(t, 2, got.BoxesDeleted)
	assert.Equal(t, 2, got.FoldersDeleted)
	assert.Equal(t, 1, got.Failed)
}

func TestRouter_ErrorInternoNoExponeDetalle(t *testing.T) {
	h := newHarness(t)
	token := h.login(t)
	h.sales.ListErr = errors.New("dial tcp 10.0.0.7:443: connection refused")

	status, body := h.do(t, http.MethodPost, "/api/data/reset", nil, token)
	require.Equal(t, http.StatusInternalServerError, status)
	got := decode[dto.ErrorResponse](t, body)
	assert.Equal(t, "INTERNAL", got.Code)
	assert.NotContains(t, got.Message, "10.0.0.7")
	assert.NotEmpty(t, got.Message)
	assert.Contains(t, h.logs.String(), "10.0.0.7", "el detalle queda en el log")
}

func TestRouter_FalloDeTransporteMensajeGenerico(t *testing.T) {
	h := newHarness(t)
	token := h.login(t)
	h.sales.ListErr = fmt.Errorf("imsapi: GET /sales: %w", errors.Join(domain.ErrUpstream, errors.New("dial tcp 10.0.0.7:443")))

	status, body := h.do(t, http.MethodGet, "/api/sales", nil, token)
	require.Equal(t, http.StatusBadGateway, status)
	got := decode[dto.ErrorResponse](t, body)
	assert.Equal(t, "UPSTREAM", got.Code)
	assert.NotContains(t, got.Message, "10.0.0.7")
}

// ──────────────────────────────────────────────────────────────────────────────
// Infraestructura HTTP
// ──────────────────────────────────────────────────────────────────────────────

func TestRouter_HealthYRequestID(t *testing.T) {
	h := newHarness(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	resp, err := h.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(fiber.HeaderXRequestID))

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(fiber.HeaderXRequestID, "rid-1")
	resp, err = h.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "rid-1", resp.Header.Get(fiber.HeaderXRequestID))
}

func TestRouter_RutaInexistente(t *testing.T) {
	h := newHarness(t)
	status, body := h.do(t, http.MethodGet, "/nope", nil, "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", decode[dto.ErrorResponse](t, body).Code)
}
