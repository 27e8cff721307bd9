package domain

import "context"

// DashboardStats is the aggregate snapshot rendered on the home screen.
// Values are computed from the repositories and may be served from a
// short-lived cache; cache failures degrade to recomputation.
type DashboardStats struct {
	ActiveProjects    int64   `json:"active_projects"`
	ActiveClients     int64   `json:"active_clients"`
	UnpaidTotal       float64 `json:"unpaid_total"`
	ExpensesThisMonth float64 `json:"expenses_this_month"`
	OpenTasks         int64   `json:"open_tasks"`
}

type DashboardService interface {
	GetStats(ctx context.Context, userID string) (DashboardStats, error)
}
