package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/jhoicas/corpcrawl/internal/domain/entity"
	"github.com/jhoicas/corpcrawl/internal/domain/repository"
)

// Blogs lista las entradas de blog publicadas.
func (c *Client) Blogs(ctx context.Context) ([]entity.Blog, error) {
	var out []entity.Blog
	if err := c.do(ctx, http.MethodGet, "/content/blogs", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Blog recupera una entrada por slug.
func (c *Client) Blog(ctx context.Context, slug string) (*entity.Blog, error) {
	var out entity.Blog
	if err := c.do(ctx, http.MethodGet, "/content/blogs/"+url.PathEscape(slug), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateBlog alta de blog (admin).
func (c *Client) CreateBlog(ctx context.Context, b entity.Blog) (*entity.Blog, error) {
	var out entity.Blog
	if err := c.do(ctx, http.MethodPost, "/content/blogs", b, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateBlog actualización parcial por slug (admin).
func (c *Client) UpdateBlog(ctx context.Context, slug string, patch repository.BlogPatch) (*entity.Blog, error) {
	var out entity.Blog
	if err := c.do(ctx, http.MethodPut, "/content/blogs/"+url.PathEscape(slug), patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteBlog borrado por slug (admin).
func (c *Client) DeleteBlog(ctx context.Context, slug string) error {
	return c.do(ctx, http.MethodDelete, "/content/blogs/"+url.PathEscape(slug), nil, nil)
}

// FAQs lista las FAQs publicadas.
func (c *Client) FAQs(ctx context.Context) ([]entity.FAQ, error) {
	var out []entity.FAQ
	if err := c.do(ctx, http.MethodGet, "/content/faqs", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateFAQ alta de FAQ (admin).
func (c *Client) CreateFAQ(ctx context.Context, f entity.FAQ) (*entity.FAQ, error) {
	var out entity.FAQ
	if err := c.do(ctx, http.MethodPost, "/content/faqs", f, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateFAQ actualización parcial por id (admin).
func (c *Client) UpdateFAQ(ctx context.Context, id string, patch repository.FAQPatch) (*entity.FAQ, error) {
	var out entity.FAQ
	if err := c.do(ctx, http.MethodPut, "/content/faqs/"+url.PathEscape(id), patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteFAQ borrado por id (admin).
func (c *Client) DeleteFAQ(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/content/faqs/"+url.PathEscape(id), nil, nil)
}

// Plans lista los planes de precios públicos.
func (c *Client) Plans(ctx context.Context) ([]entity.Plan, error) {
	var out []entity.Plan
	if err := c.do(ctx, http.MethodGet, "/payment/plans", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
