// Package dataclient implementa los puertos de repositorio contra la capa de
// datos HTTP (cmd/data), para el despliegue en dos procesos. Cada repositorio
// traduce el contrato de dataapi a entidades de dominio; un 404 de la capa de
// datos es (nil, nil), cualquier otra falla se propaga como error genérico.
package dataclient

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/agrotrace/trazabilidad-api/internal/infrastructure/dataapi"
)

// Client cliente resty compartido por los repositorios de la capa de datos.
type Client struct {
	http *resty.Client
}

// NewClient construye el cliente hacia la capa de datos.
func NewClient(baseURL string, timeout time.Duration) *Client {
	httpClient := resty.New().
		SetBaseURL(strings.TrimSuffix(baseURL, "/")).
		SetHeader("Content-Type", "application/json").
		SetTimeout(timeout)
	return &Client{http: httpClient}
}

// apiError convierte una respuesta de error de la capa de datos en un error Go.
func apiError(op string, resp *resty.Response) error {
	var body dataapi.ErrorBody
	if err := json.Unmarshal(resp.Body(), &body); err == nil && body.Message != "" {
		return fmt.Errorf("%s: capa de datos respondió %d: %s", op, resp.StatusCode(), body.Message)
	}
	return fmt.Errorf("%s: capa de datos respondió %d", op, resp.StatusCode())
}
