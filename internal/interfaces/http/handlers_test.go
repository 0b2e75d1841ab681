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
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-dashboard/internal/application/auth"
	"github.com/jhoicas/Inventario-dashboard/internal/application/dashboard"
	"github.com/jhoicas/Inventario-dashboard/internal/application/dto"
	"github.com/jhoicas/Inventario-dashboard/internal/application/ports"
	"github.com/jhoicas/Inventario-dashboard/internal/application/report"
	"github.com/jhoicas/Inventario-dashboard/internal/application/session"
	"github.com/jhoicas/Inventario-dashboard/internal/domain"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
	apphttp "github.com/jhoicas/Inventario-dashboard/internal/interfaces/http"
	"github.com/jhoicas/Inventario-dashboard/internal/infrastructure/ledger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles de test
// ──────────────────────────────────────────────────────────────────────────────

// stubAPI API de inventario en memoria; los métodos no sobrescritos no se usan en estos tests.
type stubAPI struct {
	ports.InventoryAPI

	mu      sync.Mutex
	rows    []entity.InventoryRow
	whs     []entity.WarehouseRecord
	skus    []entity.SkuRecord
	err     error
	created []entity.InventoryRow
}

func (s *stubAPI) ListInventory(_ context.Context, f entity.InventoryFilter) ([]entity.InventoryRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	var out []entity.InventoryRow
	for _, r := range s.rows {
		if (f.SKU == "" || r.SKU == f.SKU) && (f.Location == "" || r.Location == f.Location) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *stubAPI) ListWarehouses(context.Context) ([]entity.WarehouseRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.whs, s.err
}

func (s *stubAPI) ListSkus(_ context.Context, f entity.SkuFilter) ([]entity.SkuRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	var out []entity.SkuRecord
	for _, k := range s.skus {
		if f.Query == "" || strings.Contains(k.SKU, f.Query) {
			out = append(out, k)
		}
	}
	return out, nil
}

func (s *stubAPI) CreateInventory(_ context.Context, r entity.InventoryRow) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.created = append(s.created, r)
	return nil
}

type stubFactory struct{ api *stubAPI }

func (f stubFactory) ForToken(string) ports.InventoryAPI { return f.api }

type stubAuthenticator struct{ err error }

func (a stubAuthenticator) Login(_ context.Context, email, _ string) (*ports.LoginResult, error) {
	if a.err != nil {
		return nil, a.err
	}
	return &ports.LoginResult{Token: "api-token", User: ports.UserInfo{ID: "u1", Name: "Ana", Email: email}}, nil
}

func (a stubAuthenticator) Register(context.Context, string, string, string) error { return a.err }

type stubGenerator struct{}

func (stubGenerator) Generate(_ context.Context, r *report.InventoryReport) ([]byte, error) {
	return []byte(fmt.Sprintf("filas=%d", len(r.Rows))), nil
}

func (stubGenerator) ContentType() string { return "text/plain" }

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type testServer struct {
	app      *fiber.App
	api      *stubAPI
	registry *dashboard.LiveRegistry
}

func newTestServer(t *testing.T, authErr error) *testServer {
	t.Helper()
	api := &stubAPI{
		rows: []entity.InventoryRow{
			{ID: "r1", SKU: "A1", Location: "W1", Available: 4, Reserved: 1},
			{ID: "r2", SKU: "A1", Location: "W2", Available: 3},
			{ID: "r3", SKU: "B2", Location: "W1", Available: 20, Reserved: 5},
		},
		whs: []entity.WarehouseRecord{
			{ID: "w1", Code: "W1", Name: "Central", City: "Bogotá", IsActive: true},
			{ID: "w2", Code: "W2", Name: "Norte", City: "Cali", IsActive: true},
		},
		skus: []entity.SkuRecord{{ID: "s1", SKU: "A1", Name: "Camisa"}, {ID: "s2", SKU: "B2", Name: "Pantalón"}},
	}
	registry := dashboard.NewLiveRegistry(dashboard.ViewDelays{Filter: 20 * time.Millisecond, Picker: 20 * time.Millisecond}, nil, nil)
	t.Cleanup(registry.CloseAll)

	authUC := auth.NewAuthUseCase(stubAuthenticator{err: authErr}, session.NewManager(session.NewMemoryStore()),
		auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer})

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:      authUC,
		APIs:        stubFactory{api: api},
		InventoryUC: dashboard.NewInventoryUseCase(nil),
		WarehouseUC: dashboard.NewWarehouseUseCase(nil),
		SkuUC:       dashboard.NewSkuUseCase(nil),
		SuggestUC:   dashboard.NewSuggestUseCase(),
		OverviewUC:  dashboard.NewOverviewUseCase(nil),
		LedgerUC:    dashboard.NewLedgerUseCase(ledger.NewSource("")),
		ReportUC:    report.NewUseCase(map[string]report.Generator{"txt": stubGenerator{}}, nil),
		Live:        registry,
		JWTSecret:   testJWTSecret,
	})
	return &testServer{app: app, api: api, registry: registry}
}

func (s *testServer) do(t *testing.T, method, target, token string, body interface{}) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, target, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func (s *testServer) login(t *testing.T) dto.LoginResponse {
	t.Helper()
	resp := s.do(t, http.MethodPost, "/auth/login", "", dto.LoginRequest{Email: testEmail, Password: "secreto"})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out dto.LoginResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Auth
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CredencialesRechazadas_Retorna401(t *testing.T) {
	s := newTestServer(t, &domain.APIError{Status: 401, Message: "Invalid credentials"})

	resp := s.do(t, http.MethodPost, "/auth/login", "", dto.LoginRequest{Email: testEmail, Password: "malo"})
	body := decode[dto.ErrorResponse](t, resp)

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "credenciales inválidas", body.Message)
}

func TestLogin_APICaido_Retorna503(t *testing.T) {
	s := newTestServer(t, fmt.Errorf("%w: connection refused", domain.ErrNetwork))

	resp := s.do(t, http.MethodPost, "/auth/login", "", dto.LoginRequest{Email: testEmail, Password: "x"})
	body := decode[dto.ErrorResponse](t, resp)

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, "No se pudo contactar el servidor de inventario", body.Message)
}

func TestRegister_ValidacionLocal(t *testing.T) {
	s := newTestServer(t, nil)

	resp := s.do(t, http.MethodPost, "/auth/register", "", dto.RegisterRequest{Name: "Ana", Email: testEmail, Password: "123456", ConfirmPassword: "1234567"})
	body := decode[dto.ErrorResponse](t, resp)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", body.Code)
	assert.Equal(t, "Las contraseñas no coinciden.", body.Message)
}

func TestLogout_InvalidaElToken(t *testing.T) {
	s := newTestServer(t, nil)
	lr := s.login(t)

	resp := s.do(t, http.MethodPost, "/auth/logout", lr.Token, nil)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = s.do(t, http.MethodGet, "/dashboard/inventory", lr.Token, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestSettings_GuardaYValida(t *testing.T) {
	s := newTestServer(t, nil)
	lr := s.login(t)

	got := decode[dto.SettingsResponse](t, s.do(t, http.MethodGet, "/dashboard/settings", lr.Token, nil))
	assert.Equal(t, session.ThemeDark, got.Theme)

	resp := s.do(t, http.MethodPut, "/dashboard/settings", lr.Token, dto.SettingsRequest{Name: "Ana", Email: testEmail, Theme: session.ThemeLight})
	got = decode[dto.SettingsResponse](t, resp)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, session.ThemeLight, got.Theme)

	resp = s.do(t, http.MethodPut, "/dashboard/settings", lr.Token, dto.SettingsRequest{Name: "", Email: testEmail, Theme: session.ThemeLight})
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Inventario, bodegas, sugerencias
// ──────────────────────────────────────────────────────────────────────────────

func TestInventoryList_TotalesPorSku(t *testing.T) {
	s := newTestServer(t, nil)
	lr := s.login(t)

	resp := s.do(t, http.MethodGet, "/dashboard/inventory", lr.Token, nil)
	out := decode[dto.InventoryListResponse](t, resp)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, out.Items, 3)
	assert.Equal(t, 7, out.Items[0].TotalForSku)
	assert.Equal(t, 2, out.Meta.DistinctSkus)
	assert.Equal(t, 27, out.Meta.TotalAvailable)
}

func TestInventoryList_SinToken_Retorna401(t *testing.T) {
	s := newTestServer(t, nil)

	resp := s.do(t, http.MethodGet, "/dashboard/inventory", "", nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestInventoryCreate_ValidacionAntesDeLaRed(t *testing.T) {
	s := newTestServer(t, nil)
	lr := s.login(t)

	resp := s.do(t, http.MethodPost, "/dashboard/inventory", lr.Token, dto.InventoryRequest{SKU: "A1", Location: "W1", Available: "diez"})
	body := decode[dto.ErrorResponse](t, resp)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, dashboard.MsgStocksNumeric, body.Message)
	assert.Empty(t, s.api.created)
}

func TestInventoryCreate_Valido(t *testing.T) {
	s := newTestServer(t, nil)
	lr := s.login(t)

	resp := s.do(t, http.MethodPost, "/dashboard/inventory", lr.Token, dto.InventoryRequest{SKU: "B2", Location: "W2", Available: "5", Reserved: ""})
	resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Len(t, s.api.created, 1)
	assert.Equal(t, 5, s.api.created[0].Available)
}

func TestInventoryList_ErrorDelAPI_Retorna502ConMensaje(t *testing.T) {
	s := newTestServer(t, nil)
	lr := s.login(t)
	s.api.err = &domain.APIError{Status: 500, Message: "Base de datos no disponible"}

	resp := s.do(t, http.MethodGet, "/dashboard/inventory", lr.Token, nil)
	body := decode[dto.ErrorResponse](t, resp)

	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.Equal(t, "Base de datos no disponible", body.Message)
}

func TestWarehouses_OrdenPorStockDescendente(t *testing.T) {
	s := newTestServer(t, nil)
	lr := s.login(t)

	resp := s.do(t, http.MethodGet, "/dashboard/warehouses?sort=totalStock&dir=desc", lr.Token, nil)
	out := decode[dto.WarehouseListResponse](t, resp)

	require.Len(t, out.Items, 2)
	assert.Equal(t, "W1", out.Items[0].Code)
	assert.Equal(t, 24, out.Items[0].TotalStock)
	assert.Equal(t, 2, out.Items[0].SkuCount)
}

func TestWarehouseBreakdown(t *testing.T) {
	s := newTestServer(t, nil)
	lr := s.login(t)

	out := decode[dto.WarehouseBreakdownResponse](t, s.do(t, http.MethodGet, "/dashboard/warehouses/W1/breakdown", lr.Token, nil))
	require.Len(t, out.Lines, 2)
	assert.Equal(t, "A1", out.Lines[0].SKU)
}

func TestSuggestSkus(t *testing.T) {
	s := newTestServer(t, nil)
	lr := s.login(t)

	out := decode[dto.SuggestionListResponse](t, s.do(t, http.MethodGet, "/dashboard/suggest/skus?q=B", lr.Token, nil))
	require.Len(t, out.Items, 1)
	assert.Equal(t, "B2", out.Items[0].Key)
}

func TestTransactions_DatosDeEjemplo(t *testing.T) {
	s := newTestServer(t, nil)
	lr := s.login(t)

	resp := s.do(t, http.MethodGet, "/dashboard/transactions", lr.Token, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Reportes
// ──────────────────────────────────────────────────────────────────────────────

func TestReport_FormatoDesconocido_Retorna400(t *testing.T) {
	s := newTestServer(t, nil)
	lr := s.login(t)

	resp := s.do(t, http.MethodGet, "/dashboard/reports/inventory.doc", lr.Token, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestReport_Adjunto(t *testing.T) {
	s := newTestServer(t, nil)
	lr := s.login(t)

	resp := s.do(t, http.MethodGet, "/dashboard/reports/inventory.txt?sku=A1", lr.Token, nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, "text/plain", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "attachment; filename=\"inventario_")
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "filas=2", string(body))
}

// ──────────────────────────────────────────────────────────────────────────────
// Vistas en vivo
// ──────────────────────────────────────────────────────────────────────────────

func TestLive_CicloDeVida(t *testing.T) {
	s := newTestServer(t, nil)
	lr := s.login(t)

	resp := s.do(t, http.MethodPost, "/dashboard/live/inventory", lr.Token, nil)
	view := decode[dto.LiveViewResponse](t, resp)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "/dashboard/live/"+view.ID+"/events", view.EventsURL)

	resp = s.do(t, http.MethodPost, "/dashboard/live/"+view.ID+"/picker/sku/input", lr.Token, dto.PickerInputRequest{Query: "A"})
	st := decode[dto.PickerStateResponse](t, resp)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "A", st.Query)
	assert.Equal(t, -1, st.HighlightIndex)

	resp = s.do(t, http.MethodPost, "/dashboard/live/"+view.ID+"/filter", lr.Token, dto.FilterRequest{SKU: "A1"})
	resp.Body.Close()
	assert.Equal(t, http.StatusAccepted, resp.StatusCode)

	resp = s.do(t, http.MethodDelete, "/dashboard/live/"+view.ID, lr.Token, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = s.do(t, http.MethodDelete, "/dashboard/live/"+view.ID, lr.Token, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestLive_SelectorDesconocido_Retorna404(t *testing.T) {
	s := newTestServer(t, nil)
	lr := s.login(t)
	view := decode[dto.LiveViewResponse](t, s.do(t, http.MethodPost, "/dashboard/live/inventory", lr.Token, nil))

	resp := s.do(t, http.MethodPost, "/dashboard/live/"+view.ID+"/picker/cliente/key", lr.Token, dto.PickerKeyRequest{Key: "ArrowDown"})
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestLive_VistaDeOtraSesion_Retorna404(t *testing.T) {
	s := newTestServer(t, nil)
	owner := s.login(t)
	other := s.login(t)
	view := decode[dto.LiveViewResponse](t, s.do(t, http.MethodPost, "/dashboard/live/inventory", owner.Token, nil))

	resp := s.do(t, http.MethodGet, "/dashboard/live/"+view.ID+"/picker/sku", other.Token, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestLive_LogoutCierraLasVistas(t *testing.T) {
	s := newTestServer(t, nil)
	lr := s.login(t)
	decode[dto.LiveViewResponse](t, s.do(t, http.MethodPost, "/dashboard/live/inventory", lr.Token, nil))
	require.Equal(t, 1, s.registry.Count())

	resp := s.do(t, http.MethodPost, "/auth/logout", lr.Token, nil)
	resp.Body.Close()

	assert.Equal(t, 0, s.registry.Count())
}

func TestErrorSinClasificar_Retorna500(t *testing.T) {
	s := newTestServer(t, nil)
	lr := s.login(t)
	s.api.err = errors.New("algo raro")

	resp := s.do(t, http.MethodGet, "/dashboard/warehouses", lr.Token, nil)
	body := decode[dto.ErrorResponse](t, resp)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "Error al cargar bodegas", body.Message)
}
