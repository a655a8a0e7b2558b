// Package rest implementa el cliente tipado del backend de la cafetería.
//
// Convención de error del contrato: cualquier campo "error" no vacío en el
// cuerpo JSON es un fallo a nivel de aplicación, sin importar el código HTTP
// de transporte; la ausencia de "error" es éxito.
package rest

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/beanbrews-backoffice/pkg/logger"
)

// Client cliente del backend REST del back-office.
type Client struct {
	baseURL string
	timeout time.Duration
	log     *logger.Logger
}

// New construye el cliente. timeout 0 deshabilita el timeout: una petición
// colgada deja la acción colgada, sin reintentos.
func New(baseURL string, timeout time.Duration, log *logger.Logger) *Client {
	if log == nil {
		log = logger.Nop()
	}
	return &Client{baseURL: baseURL, timeout: timeout, log: log}
}

// APIError fallo a nivel de aplicación reportado por el backend; el mensaje
// se muestra al usuario tal cual.
type APIError struct {
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// envelope forma mínima para detectar la convención {"error": "..."}.
type envelope struct {
	Error string `json:"error"`
}

// do ejecuta la petición y devuelve el cuerpo crudo. El error de aplicación
// se detecta SIEMPRE sobre la respuesta ya parseada, incluidos los deletes.
func (c *Client) do(method, path string, body any) ([]byte, error) {
	url := c.baseURL + path
	reqID := uuid.NewString()

	var agent *fiber.Agent
	switch method {
	case fiber.MethodGet:
		agent = fiber.Get(url)
	case fiber.MethodPost:
		agent = fiber.Post(url)
	case fiber.MethodPut:
		agent = fiber.Put(url)
	case fiber.MethodDelete:
		agent = fiber.Delete(url)
	default:
		return nil, fmt.Errorf("rest: método no soportado %q", method)
	}

	if body != nil {
		agent.JSON(body)
	}
	if c.timeout > 0 {
		agent.Timeout(c.timeout)
	}

	code, raw, errs := agent.Bytes()
	if len(errs) > 0 {
		c.log.Error().
			Str("request_id", reqID).
			Str("method", method).
			Str("path", path).
			Err(errs[0]).
			Msg("fallo de transporte")
		return nil, fmt.Errorf("%s %s: %w", method, path, errs[0])
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err == nil && env.Error != "" {
		c.log.Warn().
			Str("request_id", reqID).
			Str("method", method).
			Str("path", path).
			Str("error", env.Error).
			Msg("error de aplicación del backend")
		return nil, &APIError{Message: env.Error}
	}

	c.log.Debug().
		Str("request_id", reqID).
		Str("method", method).
		Str("path", path).
		Int("status", code).
		Msg("respuesta recibida")
	return raw, nil
}
