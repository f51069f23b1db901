package imsapi_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ims-client/internal/domain"
	"github.com/jhoicas/ims-client/internal/domain/entity"
	"github.com/jhoicas/ims-client/internal/domain/repository"
	"github.com/jhoicas/ims-client/internal/infrastructure/imsapi"
	"github.com/jhoicas/ims-client/pkg/config"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// capture guarda la última petición recibida por el servidor falso.
type capture struct {
	mu     sync.Mutex
	method string
	path   string
	query  map[string]string
	auth   string
	body   map[string]any
}

func (c *capture) record(r *http.Request) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.method = r.Method
	c.path = r.URL.Path
	c.auth = r.Header.Get("Authorization")
	c.query = map[string]string{}
	for k := range r.URL.Query() {
		c.query[k] = r.URL.Query().Get(k)
	}
	c.body = nil
	if raw, _ := io.ReadAll(r.Body); len(raw) > 0 {
		_ = json.Unmarshal(raw, &c.body)
	}
}

// newServer levanta una API falsa que responde status y payload a cualquier ruta.
func newServer(t *testing.T, status int, payload string) (*httptest.Server, *capture) {
	t.Helper()
	c := &capture{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c.record(r)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, payload)
	}))
	t.Cleanup(srv.Close)
	return srv, c
}

func newClient(srv *httptest.Server, tokens imsapi.TokenSource) *imsapi.Client {
	return imsapi.NewClient(config.UpstreamConfig{BaseURL: srv.URL + "/", Timeout: 5 * time.Second}, tokens, nil)
}

// ──────────────────────────────────────────────────────────────────────────────
// Interceptor de token
// ──────────────────────────────────────────────────────────────────────────────

func TestBearer_TokenDelStoreSeAdjunta(t *testing.T) {
	srv, got := newServer(t, http.StatusOK, `[]`)
	store := &imsapi.TokenStore{}
	store.Set("tok-123")

	_, err := imsapi.NewCategoryRepository(newClient(srv, store)).List(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Bearer tok-123", got.auth)
	assert.Equal(t, "/categories", got.path)
}

func TestBearer_TokenDeContextoTienePrioridad(t *testing.T) {
	srv, got := newServer(t, http.StatusOK, `[]`)
	store := &imsapi.TokenStore{}
	store.Set("tok-store")

	ctx := imsapi.WithToken(context.Background(), "tok-ctx")
	_, err := imsapi.NewCategoryRepository(newClient(srv, store)).List(ctx)
	require.NoError(t, err)

	assert.Equal(t, "Bearer tok-ctx", got.auth)
}

func TestBearer_SinTokenNoEnviaHeader(t *testing.T) {
	srv, got := newServer(t, http.StatusOK, `[]`)

	_, err := imsapi.NewCategoryRepository(newClient(srv, nil)).List(context.Background())
	require.NoError(t, err)

	assert.Empty(t, got.auth)
}

// ──────────────────────────────────────────────────────────────────────────────
// Mapeo de errores HTTP
// ──────────────────────────────────────────────────────────────────────────────

func TestClient_ErroresHTTPMapeanADominio(t *testing.T) {
	cases := []struct {
		status int
		want   error
	}{
		{http.StatusBadRequest, domain.ErrInvalidInput},
		{http.StatusUnauthorized, domain.ErrUnauthorized},
		{http.StatusForbidden, domain.ErrForbidden},
		{http.StatusConflict, domain.ErrConflict},
		{http.StatusInternalServerError, domain.ErrUpstream},
		{http.StatusBadGateway, domain.ErrUpstream},
	}
	for _, tc := range cases {
		t.Run(http.StatusText(tc.status), func(t *testing.T) {
			srv, _ := newServer(t, tc.status, `{"message":"detalle del servidor"}`)
			_, err := imsapi.NewCategoryRepository(newClient(srv, nil)).List(context.Background())
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)
			assert.Equal(t, "detalle del servidor", imsapi.ServerMessage(err))

			var apiErr *imsapi.APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tc.status, apiErr.StatusCode)
		})
	}
}

func TestClient_ServidorCaido_ErrUpstream(t *testing.T) {
	srv, _ := newServer(t, http.StatusOK, `[]`)
	c := newClient(srv, nil)
	srv.Close()

	_, err := imsapi.NewCategoryRepository(c).List(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUpstream)
}

func TestGetByID_NoEncontrado_RetornaNil(t *testing.T) {
	srv, _ := newServer(t, http.StatusNotFound, `{"message":"Product not found"}`)

	p, err := imsapi.NewProductRepository(newClient(srv, nil)).GetByID(context.Background(), "x")
	require.NoError(t, err)
	assert.Nil(t, p)
}

// ──────────────────────────────────────────────────────────────────────────────
// Productos
// ──────────────────────────────────────────────────────────────────────────────

func TestProductList_ListaEnvueltaYParametros(t *testing.T) {
	srv, got := newServer(t, http.StatusOK, `{"products":[
		{"_id":"p1","name":"Caja A","category":{"_id":"c1","name":"Norte"},"totalStock":10,"sold":4,"returned":1,"stock":7,"price":12.5,"status":"In Stock"},
		{"_id":"p2","name":"Caja B","category":"c2","price":"3.10"},
		"basura"
	],"total":2}`)

	list, err := imsapi.NewProductRepository(newClient(srv, nil)).List(context.Background(), repository.ProductQuery{
		Limit: 1000, StartDate: "2026-10-01", EndDate: "2026-10-31",
	})
	require.NoError(t, err)
	require.Len(t, list, 2)

	assert.Equal(t, "1000", got.query["limit"])
	assert.Equal(t, "2026-10-01", got.query["startDate"])
	assert.Equal(t, "2026-10-31", got.query["endDate"])
	_, hasKeyword := got.query["keyword"]
	assert.False(t, hasKeyword, "keyword vacío no debe enviarse")

	assert.Equal(t, "c1", list[0].Category.ID)
	assert.Equal(t, "Norte", list[0].Category.Name)
	assert.Equal(t, 7, list[0].Stock)
	assert.True(t, decimal.RequireFromString("12.5").Equal(list[0].Price))
	assert.Equal(t, "c2", list[1].Category.ID)
	assert.True(t, decimal.RequireFromString("3.10").Equal(list[1].Price))
}

func TestProductList_ArregloDirecto(t *testing.T) {
	srv, _ := newServer(t, http.StatusOK, `[{"_id":"p1","name":"A"}]`)

	list, err := imsapi.NewProductRepository(newClient(srv, nil)).List(context.Background(), repository.ProductQuery{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "p1", list[0].ID)
}

func TestProductCreate_PrecioComoNumero(t *testing.T) {
	srv, got := newServer(t, http.StatusCreated, `{"_id":"p9","name":"Nueva","category":"c1","price":99.99}`)

	p, err := imsapi.NewProductRepository(newClient(srv, nil)).Create(context.Background(), repository.ProductInput{
		Name: "Nueva", SKU: "Nueva-1-abcde", CategoryID: "c1", TotalStock: 5,
		Price: decimal.RequireFromString("99.99"),
	})
	require.NoError(t, err)
	require.NotNil(t, p)

	assert.Equal(t, http.MethodPost, got.method)
	assert.Equal(t, 99.99, got.body["price"], "price debe viajar como número JSON")
	assert.Equal(t, "c1", got.body["category"])
	assert.Equal(t, float64(5), got.body["totalStock"])
	assert.Equal(t, "p9", p.ID)
}

func TestProductStats_Totales(t *testing.T) {
	srv, got := newServer(t, http.StatusOK, `{"totalStockAdded":100,"totalSold":40,"totalReturned":5,"totalRemaining":65}`)

	st, err := imsapi.NewProductRepository(newClient(srv, nil)).Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "/products/stats", got.path)
	assert.Equal(t, entity.ProductStats{TotalStockAdded: 100, TotalSold: 40, TotalReturned: 5, TotalRemaining: 65}, *st)
}

// ──────────────────────────────────────────────────────────────────────────────
// Ventas, devoluciones y auth
// ──────────────────────────────────────────────────────────────────────────────

func TestSaleList_ClienteComoObjeto(t *testing.T) {
	srv, got := newServer(t, http.StatusOK, `{"sales":[
		{"_id":"s1","saleId":"SO-1","customerName":"Ana","totalAmount":150,"status":"Pending"},
		{"_id":"s2","customer":{"name":"Luis"},"totalAmount":"20.5","status":"Shipped"}
	]}`)

	list, err := imsapi.NewSaleRepository(newClient(srv, nil)).List(context.Background(), repository.SaleQuery{Keyword: "an"})
	require.NoError(t, err)
	require.Len(t, list, 2)

	assert.Equal(t, "an", got.query["keyword"])
	assert.Equal(t, "Ana", list[0].CustomerName)
	assert.Equal(t, "Luis", list[1].CustomerName)
	assert.True(t, decimal.RequireFromString("20.5").Equal(list[1].TotalAmount))
}

func TestSaleUpdateStatus_SoloEnviaStatus(t *testing.T) {
	srv, got := newServer(t, http.StatusOK, `{}`)

	err := imsapi.NewSaleRepository(newClient(srv, nil)).UpdateStatus(context.Background(), "s1", entity.SaleStatusShipped)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPut, got.method)
	assert.Equal(t, "/sales/s1", got.path)
	assert.Equal(t, map[string]any{"status": "Shipped"}, got.body)
}

func TestReturnListProducts_Parametros(t *testing.T) {
	srv, got := newServer(t, http.StatusOK, `{"products":[{"_id":"p1","returned":2,"price":10}]}`)

	list, err := imsapi.NewReturnRepository(newClient(srv, nil)).ListProducts(context.Background(), "caja", 100)
	require.NoError(t, err)
	require.Len(t, list, 1)

	assert.Equal(t, "/returns/products", got.path)
	assert.Equal(t, "caja", got.query["keyword"])
	assert.Equal(t, "100", got.query["limit"])
}

func TestAuthLogin_TokenYPerfil(t *testing.T) {
	srv, got := newServer(t, http.StatusOK, `{"token":"jwt-remoto","_id":"u1","fullName":"Admin","email":"a@b.c"}`)

	res, err := imsapi.NewAuthRepository(newClient(srv, nil)).Login(context.Background(), "1234")
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"pin": "1234"}, got.body)
	assert.Equal(t, "jwt-remoto", res.Token)
	assert.Equal(t, "Admin", res.Profile.FullName)
}

func TestAuthLogin_PINIncorrecto(t *testing.T) {
	srv, _ := newServer(t, http.StatusUnauthorized, `{"message":"Invalid PIN"}`)

	_, err := imsapi.NewAuthRepository(newClient(srv, nil)).Login(context.Background(), "0000")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Equal(t, "Invalid PIN", imsapi.ServerMessage(err))
}

func TestAuthLogin_SinToken_ErrUpstream(t *testing.T) {
	srv, _ := newServer(t, http.StatusOK, `{"ok":true}`)

	_, err := imsapi.NewAuthRepository(newClient(srv, nil)).Login(context.Background(), "1234")
	assert.ErrorIs(t, err, domain.ErrUpstream)
}

func TestAuthUpdatePIN_Cuerpo(t *testing.T) {
	srv, got := newServer(t, http.StatusOK, `{"message":"PIN updated"}`)

	err := imsapi.NewAuthRepository(newClient(srv, nil)).UpdatePIN(context.Background(), "1234", "5678")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"currentPin": "1234", "newPin": "5678"}, got.body)
}
