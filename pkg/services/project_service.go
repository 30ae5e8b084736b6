package services

import (
	"context"
	"fmt"

	"github.com/conveyor-dev/conveyor/ent"
	"github.com/conveyor-dev/conveyor/ent/project"
	"github.com/conveyor-dev/conveyor/pkg/models"
)

// ProjectService manages the projects that bind requests to repositories.
type ProjectService struct {
	client *ent.Client
}

// NewProjectService creates a new ProjectService
func NewProjectService(client *ent.Client) *ProjectService {
	return &ProjectService{client: client}
}

// CreateProject registers a project. The (owner, repo) pair is unique.
func (s *ProjectService) CreateProject(ctx context.Context, in models.CreateProjectInput) (*ent.Project, error) {
	if in.Name == "" {
		return nil, NewValidationError("name", "required")
	}
	if in.Owner == "" {
		return nil, NewValidationError("owner", "required")
	}
	if in.Repo == "" {
		return nil, NewValidationError("repo", "required")
	}

	p, err := s.client.Project.Create().
		SetName(in.Name).
		SetOwner(in.Owner).
		SetRepo(in.Repo).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("%w: project %s/%s", ErrAlreadyExists, in.Owner, in.Repo)
		}
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return p, nil
}

// GetProject retrieves a project by ID.
func (s *ProjectService) GetProject(ctx context.Context, id int) (*ent.Project, error) {
	p, err := s.client.Project.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return p, nil
}

// ListProjects returns all active projects, oldest first.
func (s *ProjectService) ListProjects(ctx context.Context) ([]*ent.Project, error) {
	projects, err := s.client.Project.Query().
		Where(project.ActiveEQ(true)).
		Order(ent.Asc(project.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// SetActive toggles whether workers pick up a project's requests.
func (s *ProjectService) SetActive(ctx context.Context, id int, active bool) (*ent.Project, error) {
	p, err := s.client.Project.UpdateOneID(id).
		SetActive(active).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update project: %w", err)
	}
	return p, nil
}
