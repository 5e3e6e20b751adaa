package api

import (
	"context"
	"fmt"

	"specwiz/internal/project"
)

// CreateProject submits a creation payload to POST /projects and returns the
// created project.
//
// Failures are not retried here; the wizard surfaces them and the user
// resubmits explicitly.
func (c *Client) CreateProject(ctx context.Context, payload project.CreatePayload) (project.Project, error) {
	var created project.Project

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(payload).
		SetResult(&created).
		Post("/projects")
	if err != nil {
		return project.Project{}, fmt.Errorf("project creation request failed: %w", err)
	}
	if resp.IsError() {
		return project.Project{}, fmt.Errorf("project creation rejected: %s", resp.Status())
	}

	return created, nil
}
