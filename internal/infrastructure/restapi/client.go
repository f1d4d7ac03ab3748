// Package restapi implementa la fachada de acceso a datos contra el backend
// REST de gestión (API estilo Django). Es la única capa que habla HTTP hacia
// afuera: los repositorios de este paquete descargan las listas crudas,
// resuelven los joins que el backend no desnormaliza y entregan entidades de
// dominio listas para el motor de agregación.
package restapi

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/jhoicas/insights-api/internal/domain"
	"github.com/jhoicas/insights-api/pkg/config"
	"github.com/jhoicas/insights-api/pkg/logger"
)

// Client envuelve resty con la autenticación y la convención de URLs del backend.
type Client struct {
	http *resty.Client
	log  *logger.Logger
}

// NewClient construye el cliente HTTP del backend de datos.
// El token de servicio va fijo en el header (Django TokenAuth: "Token <...>");
// no hay estado de sesión ambiental.
func NewClient(cfg config.BackendConfig, log *logger.Logger) *Client {
	rc := resty.New().
		SetBaseURL(normalizeBaseURL(cfg.BaseURL)).
		SetHeader("Content-Type", "application/json").
		SetTimeout(cfg.Timeout)
	if cfg.ServiceToken != "" {
		rc.SetHeader("Authorization", "Token "+cfg.ServiceToken)
	}
	return &Client{http: rc, log: log.Component("restapi")}
}

// normalizeBaseURL asegura que la base termine en /api sin duplicarlo
// (el backend publica todo bajo ese prefijo).
func normalizeBaseURL(base string) string {
	base = strings.TrimSuffix(base, "/")
	if strings.Contains(base, "/api") {
		return base
	}
	return base + "/api"
}

// djangoError es el cuerpo de error habitual del backend ({"detail": "..."}).
type djangoError struct {
	Detail string `json:"detail"`
}

// get descarga un endpoint y deserializa el cuerpo en out.
// Cualquier fallo (red, status >= 400) se envuelve en domain.ErrUpstream:
// la vista que dependía de este fetch falla completa, nunca se agrega sobre
// datos parciales.
func (c *Client) get(ctx context.Context, endpoint string, out any) error {
	apiErr := new(djangoError)
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(out).
		SetError(apiErr).
		Get(endpoint)
	if err != nil {
		return fmt.Errorf("%w: GET %s: %v", domain.ErrUpstream, endpoint, err)
	}
	if resp.StatusCode() >= http.StatusBadRequest {
		msg := apiErr.Detail
		if msg == "" {
			msg = resp.Status()
		}
		c.log.Warn().
			Str("endpoint", endpoint).
			Int("status", resp.StatusCode()).
			Str("detail", msg).
			Msg("respuesta de error del backend")
		return fmt.Errorf("%w: GET %s: status %d: %s", domain.ErrUpstream, endpoint, resp.StatusCode(), msg)
	}
	return nil
}
