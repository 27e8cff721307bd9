package managers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mateenqamar1122/Hyperlans-sub002/internal/domain"

	"github.com/rs/xid"
)

type projectManager struct {
	projectRepository domain.ProjectRepository
	clientRepository  domain.ClientRepository
}

type ProjectManagerDependencies struct {
	ProjectRepository domain.ProjectRepository
	ClientRepository  domain.ClientRepository
}

func NewProjectManager(deps ProjectManagerDependencies) domain.ProjectService {
	return &projectManager{
		projectRepository: deps.ProjectRepository,
		clientRepository:  deps.ClientRepository,
	}
}

func (m *projectManager) ListProjects(ctx context.Context, userID string, status *domain.ProjectStatus) ([]domain.Project, error) {
	projects, err := m.projectRepository.List(ctx, userID, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

func (m *projectManager) GetProject(ctx context.Context, userID, projectID string) (domain.Project, error) {
	project, err := m.projectRepository.Get(ctx, userID, projectID)
	if err != nil {
		return domain.Project{}, fmt.Errorf("failed to get project: %w", err)
	}
	return project, nil
}

func (m *projectManager) CreateProject(ctx context.Context, project domain.Project) (domain.Project, error) {
	project.Name = strings.TrimSpace(project.Name)
	if project.Name == "" {
		return domain.Project{}, domain.NewValidationError("name", "must not be empty")
	}
	if project.Status == "" {
		project.Status = domain.ProjectStatusPlanned
	}
	if project.StartDate != nil && project.DueDate != nil && project.DueDate.Before(*project.StartDate) {
		return domain.Project{}, domain.NewValidationError("due_date", "must not precede start date")
	}

	if _, err := m.clientRepository.Get(ctx, project.UserID, project.ClientID); err != nil {
		return domain.Project{}, fmt.Errorf("failed to resolve client: %w", err)
	}

	project.ID = xid.New().String()
	now := time.Now().UTC()
	project.CreatedAt = now
	project.UpdatedAt = now

	if err := m.projectRepository.Insert(ctx, project); err != nil {
		return domain.Project{}, fmt.Errorf("failed to insert project: %w", err)
	}

	return project, nil
}

func (m *projectManager) UpdateProject(ctx context.Context, project domain.Project) (domain.Project, error) {
	project.Name = strings.TrimSpace(project.Name)
	if project.Name == "" {
		return domain.Project{}, domain.NewValidationError("name", "must not be empty")
	}

	existing, err := m.projectRepository.Get(ctx, project.UserID, project.ID)
	if err != nil {
		return domain.Project{}, fmt.Errorf("failed to get project: %w", err)
	}

	project.CreatedAt = existing.CreatedAt
	project.UpdatedAt = time.Now().UTC()

	if err := m.projectRepository.Update(ctx, project); err != nil {
		return domain.Project{}, fmt.Errorf("failed to update project: %w", err)
	}

	return project, nil
}

func (m *projectManager) DeleteProject(ctx context.Context, userID, projectID string) error {
	if err := m.projectRepository.Delete(ctx, userID, projectID); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}
