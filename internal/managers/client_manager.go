package managers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mateenqamar1122/Hyperlans-sub002/internal/domain"

	"github.com/rs/xid"
)

type clientManager struct {
	clientRepository  domain.ClientRepository
	projectRepository domain.ProjectRepository
}

type ClientManagerDependencies struct {
	ClientRepository  domain.ClientRepository
	ProjectRepository domain.ProjectRepository
}

func NewClientManager(deps ClientManagerDependencies) domain.ClientService {
	return &clientManager{
		clientRepository:  deps.ClientRepository,
		projectRepository: deps.ProjectRepository,
	}
}

func (m *clientManager) ListClients(ctx context.Context, userID string, status *domain.ClientStatus) ([]domain.Client, error) {
	clients, err := m.clientRepository.List(ctx, userID, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	return clients, nil
}

func (m *clientManager) GetClient(ctx context.Context, userID, clientID string) (domain.Client, error) {
	client, err := m.clientRepository.Get(ctx, userID, clientID)
	if err != nil {
		return domain.Client{}, fmt.Errorf("failed to get client: %w", err)
	}
	return client, nil
}

func (m *clientManager) CreateClient(ctx context.Context, client domain.Client) (domain.Client, error) {
	client.Name = strings.TrimSpace(client.Name)
	if client.Name == "" {
		return domain.Client{}, domain.NewValidationError("name", "must not be empty")
	}
	if client.Status == "" {
		client.Status = domain.ClientStatusLead
	}

	client.ID = xid.New().String()
	now := time.Now().UTC()
	client.CreatedAt = now
	client.UpdatedAt = now

	if err := m.clientRepository.Insert(ctx, client); err != nil {
		return domain.Client{}, fmt.Errorf("failed to insert client: %w", err)
	}

	return client, nil
}

func (m *clientManager) UpdateClient(ctx context.Context, client domain.Client) (domain.Client, error) {
	client.Name = strings.TrimSpace(client.Name)
	if client.Name == "" {
		return domain.Client{}, domain.NewValidationError("name", "must not be empty")
	}

	existing, err := m.clientRepository.Get(ctx, client.UserID, client.ID)
	if err != nil {
		return domain.Client{}, fmt.Errorf("failed to get client: %w", err)
	}

	client.CreatedAt = existing.CreatedAt
	client.UpdatedAt = time.Now().UTC()

	if err := m.clientRepository.Update(ctx, client); err != nil {
		return domain.Client{}, fmt.Errorf("failed to update client: %w", err)
	}

	return client, nil
}

// DeleteClient refuses to remove a client that still has projects.
func (m *clientManager) DeleteClient(ctx context.Context, userID, clientID string) error {
	count, err := m.projectRepository.CountByClient(ctx, userID, clientID)
	if err != nil {
		return fmt.Errorf("failed to count client projects: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("%w: client has %d projects", domain.ErrInvalidOperation, count)
	}

	if err := m.clientRepository.Delete(ctx, userID, clientID); err != nil {
		return fmt.Errorf("failed to delete client: %w", err)
	}

	return nil
}
