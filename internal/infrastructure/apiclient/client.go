// Package apiclient cliente REST del API de inventario (colaborador externo).
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Inventario-dashboard/internal/application/ports"
	"github.com/jhoicas/Inventario-dashboard/internal/domain"
	"github.com/jhoicas/Inventario-dashboard/internal/infrastructure/metrics"
	"github.com/jhoicas/Inventario-dashboard/pkg/logger"
)

// Verificar en tiempo de compilación que Client implementa los puertos.
var (
	_ ports.InventoryAPI  = (*Client)(nil)
	_ ports.Authenticator = (*Client)(nil)
	_ ports.APIFactory    = (*Client)(nil)
)

const maxBody = 4 << 20

// Client adaptador HTTP del API de inventario. Un Client sin token solo sirve para login/registro;
// ForToken devuelve una copia atada a la credencial de una sesión.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	log        *logger.Logger
	metrics    *metrics.Metrics
}

// New construye el cliente. timeout es el timeout de red por llamada.
func New(baseURL string, timeout time.Duration, log *logger.Logger, m *metrics.Metrics) *Client {
	if log == nil {
		log = logger.Nop()
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        log.Component("apiclient"),
		metrics:    m,
	}
}

// ForToken copia del cliente que envía Authorization: Bearer token.
func (c *Client) ForToken(token string) ports.InventoryAPI {
	cp := *c
	cp.token = token
	return &cp
}

// apiMessage cuerpo de error del API ({"message": "..."}).
type apiMessage struct {
	Message string `json:"message"`
}

// do ejecuta la llamada y decodifica out (si no es nil). Clasifica errores:
// transporte → ErrNetwork, no-2xx → *APIError, 2xx no-JSON → ErrMalformedResponse.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, in, out interface{}) error {
	endpoint := method + " " + path
	start := time.Now()
	outcome := "ok"
	defer func() { c.metrics.ObserveUpstream(routeOf(method, path), outcome, time.Since(start)) }()

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			outcome = "encode_error"
			return fmt.Errorf("apiclient: serializar %s: %w", endpoint, err)
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		outcome = "request_error"
		return fmt.Errorf("apiclient: crear request %s: %w", endpoint, err)
	}
	reqID := uuid.New().String()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", reqID)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		outcome = "network_error"
		if ctx.Err() != nil {
			return fmt.Errorf("apiclient: %s cancelado: %w", endpoint, ctx.Err())
		}
		c.log.Warn().Err(err).Str("endpoint", endpoint).Str("request_id", reqID).Msg("llamada fallida")
		return fmt.Errorf("%w: %s: %v", domain.ErrNetwork, endpoint, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		outcome = "network_error"
		return fmt.Errorf("%w: leer respuesta %s: %v", domain.ErrNetwork, endpoint, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		outcome = fmt.Sprintf("http_%d", resp.StatusCode)
		var msg apiMessage
		_ = json.Unmarshal(raw, &msg)
		c.log.Debug().Str("endpoint", endpoint).Int("status", resp.StatusCode).Str("request_id", reqID).Msg("respuesta no-2xx")
		return &domain.APIError{Status: resp.StatusCode, Message: msg.Message}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		outcome = "malformed"
		c.log.Warn().Str("endpoint", endpoint).Str("request_id", reqID).Msg("respuesta no es JSON")
		return fmt.Errorf("%w: %s: %v", domain.ErrMalformedResponse, endpoint, err)
	}
	return nil
}

// routeOf etiqueta de métrica sin ids (evita cardinalidad alta).
func routeOf(method, path string) string {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) > 2 {
		parts = append(parts[:2], ":id")
	}
	return method + " /" + strings.Join(parts, "/")
}
