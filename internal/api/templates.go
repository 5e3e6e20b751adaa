package api

import (
	"context"
	"fmt"
	"net/http"

	"specwiz/internal/project"
)

// FetchTemplate retrieves a template by id from GET /templates/{id}.
//
// A 404 maps to [project.ErrTemplateNotFound]; any other non-2xx status or
// transport failure is returned as an opaque error.
func (c *Client) FetchTemplate(ctx context.Context, id string) (project.Template, error) {
	var tmpl project.Template

	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("id", id).
		SetResult(&tmpl).
		Get("/templates/{id}")
	if err != nil {
		return project.Template{}, fmt.Errorf("template fetch failed: %w", err)
	}

	if resp.StatusCode() == http.StatusNotFound {
		return project.Template{}, fmt.Errorf("%w: %s", project.ErrTemplateNotFound, id)
	}
	if resp.IsError() {
		return project.Template{}, fmt.Errorf("template fetch failed: %s", resp.Status())
	}

	return tmpl, nil
}

// ListTemplates retrieves the browsable template catalog from GET /templates.
func (c *Client) ListTemplates(ctx context.Context) ([]project.Template, error) {
	var list []project.Template

	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&list).
		Get("/templates")
	if err != nil {
		return nil, fmt.Errorf("template listing failed: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("template listing failed: %s", resp.Status())
	}

	return list, nil
}
