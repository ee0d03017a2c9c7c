package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/jhoicas/corpcrawl/internal/application/dto"
	"github.com/jhoicas/corpcrawl/internal/domain"
	"github.com/jhoicas/corpcrawl/pkg/config"
	"github.com/jhoicas/corpcrawl/pkg/logger"
)

// SessionBinding es lo mínimo que el gateway necesita de la sesión: la
// credencial vigente y el teardown global que dispara un 401.
type SessionBinding interface {
	Token() string
	Teardown()
}

// Client gateway HTTP tipado hacia el backend. Adjunta la credencial a cada
// operación y normaliza las respuestas a la taxonomía de domain. No reintenta
// nunca: un reintento es siempre una acción explícita del que llama.
type Client struct {
	base string
	http *http.Client
	log  *logger.Logger
	sess SessionBinding
}

// New construye el cliente. BindSession debe llamarse antes de usar
// operaciones autenticadas (la sesión y el cliente se construyen en dos pasos
// porque cada uno necesita al otro).
func New(cfg config.APIConfig, log *logger.Logger) *Client {
	return &Client{
		base: strings.TrimRight(cfg.BaseURL, "/"),
		http: &http.Client{Timeout: cfg.Timeout()},
		log:  log,
	}
}

// BindSession conecta la fuente de credencial y el teardown por 401.
func (c *Client) BindSession(s SessionBinding) {
	c.sess = s
}

// do ejecuta una petición JSON y decodifica la respuesta en out (si no es nil).
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("serializar petición: %w", err)
		}
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reader)
	if err != nil {
		return fmt.Errorf("construir petición: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(req, out)
}

// doMultipart ejecuta una petición multipart/form-data con un fichero y campos
// extra. El payload llega ya en memoria: las dos fases del flujo bulk envían
// exactamente los mismos bytes.
func (c *Client) doMultipart(ctx context.Context, path, filename string, file []byte, fields map[string]string, out any) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		return fmt.Errorf("preparar multipart: %w", err)
	}
	if _, err := part.Write(file); err != nil {
		return fmt.Errorf("preparar multipart: %w", err)
	}
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return fmt.Errorf("preparar multipart: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("preparar multipart: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+path, &buf)
	if err != nil {
		return fmt.Errorf("construir petición: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	return c.send(req, out)
}

func (c *Client) send(req *http.Request, out any) error {
	if c.sess != nil {
		if token := c.sess.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return domain.Transportf(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return c.normalize(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return domain.Transportf(fmt.Errorf("decodificar respuesta: %w", err))
	}
	return nil
}

// normalize traduce un estado HTTP de error a la taxonomía de domain.
// El 401 se maneja aquí, globalmente, una sola vez por rechazo: el teardown
// de sesión es idempotente ante 401 concurrentes.
func (c *Client) normalize(resp *http.Response) error {
	var e dto.ErrorResponse
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	_ = json.Unmarshal(raw, &e)
	reason := e.Reason()
	if reason == "" {
		reason = http.StatusText(resp.StatusCode)
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		if c.sess != nil {
			c.sess.Teardown()
		}
		c.log.Debug().Str("path", resp.Request.URL.Path).Msg("credencial rechazada, sesión desmontada")
		return fmt.Errorf("%w: %s", domain.ErrUnauthorized, reason)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", domain.ErrForbidden, reason)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", domain.ErrNotFound, reason)
	case http.StatusPaymentRequired:
		// Rechazo de negocio y, además, distinguible como falta de saldo.
		return fmt.Errorf("%w: %w: %s", domain.ErrRejected, domain.ErrInsufficientCredits, reason)
	default:
		return domain.Rejectedf("%s", reason)
	}
}
