package wizard

import (
	"context"

	"specwiz/internal/project"
)

// MockTemplateStore is a mock for testing.
type MockTemplateStore struct {
	// Templates maps id to the template to return.
	Templates map[string]project.Template
	// Err, when set, is returned for every fetch.
	Err error
	// Requested records fetched ids in order.
	Requested []string
}

func (m *MockTemplateStore) FetchTemplate(ctx context.Context, id string) (project.Template, error) {
	m.Requested = append(m.Requested, id)
	if m.Err != nil {
		return project.Template{}, m.Err
	}
	tmpl, ok := m.Templates[id]
	if !ok {
		return project.Template{}, project.ErrTemplateNotFound
	}
	return tmpl, nil
}

// MockNavigator is a mock for testing.
type MockNavigator struct {
	// Paths records every navigation target in order.
	Paths []string
}

func (m *MockNavigator) GoTo(path string) {
	m.Paths = append(m.Paths, path)
}

// MockCreator is a mock for testing.
type MockCreator struct {
	// Payloads records every submitted payload.
	Payloads []project.CreatePayload
	// Created is returned on success.
	Created project.Project
	// Err, when set, makes every create fail.
	Err error
}

func (m *MockCreator) CreateProject(ctx context.Context, payload project.CreatePayload) (project.Project, error) {
	m.Payloads = append(m.Payloads, payload)
	if m.Err != nil {
		return project.Project{}, m.Err
	}
	return m.Created, nil
}
