package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/jhoicas/corpcrawl/internal/application/dto"
	"github.com/jhoicas/corpcrawl/internal/domain/entity"
)

// SubmitSingle crea una petición de crawl individual. El backend rechaza con
// 402 si el saldo es cero.
func (c *Client) SubmitSingle(ctx context.Context, inputType, inputValue string) (*entity.CrawlRequest, error) {
	var out entity.CrawlRequest
	in := dto.CrawlSubmitRequest{InputType: inputType, InputValue: inputValue}
	if err := c.do(ctx, http.MethodPost, "/crawl/single", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetRequest recupera una petición por id.
func (c *Client) GetRequest(ctx context.Context, id string) (*entity.CrawlRequest, error) {
	var out entity.CrawlRequest
	if err := c.do(ctx, http.MethodGet, "/crawl/request/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// History lista las peticiones del usuario, más recientes primero.
func (c *Client) History(ctx context.Context, limit int) ([]entity.CrawlRequest, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []entity.CrawlRequest
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/crawl/history?limit=%d", limit), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// BulkCheck valida un fichero sin comprometerlo y devuelve la proyección de
// coste calculada sobre el saldo fresco.
func (c *Client) BulkCheck(ctx context.Context, filename string, file []byte) (*entity.BulkCheckResult, error) {
	var out entity.BulkCheckResult
	if err := c.doMultipart(ctx, "/crawl/bulk-check", filename, file, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// BulkUpload compromete un fichero previamente comprobado. El backend vuelve a
// validar el saldo; el resultado puede reportar fallos por fila.
func (c *Client) BulkUpload(ctx context.Context, filename string, file []byte, inputType string) (*entity.BulkUploadResult, error) {
	var out entity.BulkUploadResult
	fields := map[string]string{"input_type": inputType}
	if err := c.doMultipart(ctx, "/crawl/bulk-upload", filename, file, fields, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
