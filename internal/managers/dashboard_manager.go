package managers

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mateenqamar1122/Hyperlans-sub002/internal/domain"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const dashboardCacheTTL = time.Minute

type dashboardManager struct {
	clientRepository  domain.ClientRepository
	projectRepository domain.ProjectRepository
	invoiceRepository domain.InvoiceRepository
	expenseRepository domain.ExpenseRepository
	taskRepository    domain.TaskRepository
	redisClient       *redis.Client
}

type DashboardManagerDependencies struct {
	ClientRepository  domain.ClientRepository
	ProjectRepository domain.ProjectRepository
	InvoiceRepository domain.InvoiceRepository
	ExpenseRepository domain.ExpenseRepository
	TaskRepository    domain.TaskRepository
	RedisClient       *redis.Client // optional; nil disables caching
}

func NewDashboardManager(deps DashboardManagerDependencies) domain.DashboardService {
	return &dashboardManager{
		clientRepository:  deps.ClientRepository,
		projectRepository: deps.ProjectRepository,
		invoiceRepository: deps.InvoiceRepository,
		expenseRepository: deps.ExpenseRepository,
		taskRepository:    deps.TaskRepository,
		redisClient:       deps.RedisClient,
	}
}

// GetStats serves the dashboard snapshot, through a short-lived Redis cache
// when one is configured. Cache errors degrade to recomputation and are
// never user-visible.
func (m *dashboardManager) GetStats(ctx context.Context, userID string) (domain.DashboardStats, error) {
	cacheKey := fmt.Sprintf("dashboard:%s", userID)

	if m.redisClient != nil {
		cached, err := m.redisClient.Get(ctx, cacheKey).Bytes()
		if err == nil {
			var stats domain.DashboardStats
			if err := json.Unmarshal(cached, &stats); err == nil {
				return stats, nil
			}
		} else if err != redis.Nil {
			log.Warn().Err(err).Msg("Dashboard cache read failed")
		}
	}

	stats, err := m.computeStats(ctx, userID)
	if err != nil {
		return domain.DashboardStats{}, err
	}

	if m.redisClient != nil {
		if payload, err := json.Marshal(stats); err == nil {
			if err := m.redisClient.Set(ctx, cacheKey, payload, dashboardCacheTTL).Err(); err != nil {
				log.Warn().Err(err).Msg("Dashboard cache write failed")
			}
		}
	}

	return stats, nil
}

func (m *dashboardManager) computeStats(ctx context.Context, userID string) (domain.DashboardStats, error) {
	var stats domain.DashboardStats

	activeClient := domain.ClientStatusActive
	clients, err := m.clientRepository.List(ctx, userID, &activeClient)
	if err != nil {
		return domain.DashboardStats{}, fmt.Errorf("failed to count clients: %w", err)
	}
	stats.ActiveClients = int64(len(clients))

	activeProject := domain.ProjectStatusActive
	projects, err := m.projectRepository.List(ctx, userID, &activeProject)
	if err != nil {
		return domain.DashboardStats{}, fmt.Errorf("failed to count projects: %w", err)
	}
	stats.ActiveProjects = int64(len(projects))

	for _, status := range []domain.InvoiceStatus{domain.InvoiceStatusSent, domain.InvoiceStatusOverdue} {
		invoices, err := m.invoiceRepository.List(ctx, userID, &status)
		if err != nil {
			return domain.DashboardStats{}, fmt.Errorf("failed to list unpaid invoices: %w", err)
		}
		for _, invoice := range invoices {
			stats.UnpaidTotal += invoice.Total()
		}
	}

	now := time.Now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthSum, err := m.expenseRepository.SumSince(ctx, userID, monthStart)
	if err != nil {
		return domain.DashboardStats{}, fmt.Errorf("failed to sum expenses: %w", err)
	}
	stats.ExpensesThisMonth = monthSum

	openTasks, err := m.taskRepository.CountOpen(ctx, userID)
	if err != nil {
		return domain.DashboardStats{}, fmt.Errorf("failed to count open tasks: %w", err)
	}
	stats.OpenTasks = openTasks

	return stats, nil
}
