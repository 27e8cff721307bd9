package domain

import (
	"context"
	"time"
)

type ProjectStatus string

const (
	ProjectStatusPlanned   ProjectStatus = "planned"
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusOnHold    ProjectStatus = "on_hold"
	ProjectStatusCompleted ProjectStatus = "completed"
	ProjectStatusCancelled ProjectStatus = "cancelled"
)

type Project struct {
	ID          string        `bson:"id" json:"id"`
	UserID      string        `bson:"user_id" json:"user_id"`
	ClientID    string        `bson:"client_id" json:"client_id"`
	Name        string        `bson:"name" json:"name"`
	Description string        `bson:"description,omitempty" json:"description,omitempty"`
	Status      ProjectStatus `bson:"status" json:"status"`
	HourlyRate  float64       `bson:"hourly_rate,omitempty" json:"hourly_rate,omitempty"`
	FixedBudget float64       `bson:"fixed_budget,omitempty" json:"fixed_budget,omitempty"`
	StartDate   *time.Time    `bson:"start_date,omitempty" json:"start_date,omitempty"`
	DueDate     *time.Time    `bson:"due_date,omitempty" json:"due_date,omitempty"`
	CreatedAt   time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time     `bson:"updated_at" json:"updated_at"`
}

type ProjectService interface {
	ListProjects(ctx context.Context, userID string, status *ProjectStatus) ([]Project, error)
	GetProject(ctx context.Context, userID, projectID string) (Project, error)
	CreateProject(ctx context.Context, project Project) (Project, error)
	UpdateProject(ctx context.Context, project Project) (Project, error)
	DeleteProject(ctx context.Context, userID, projectID string) error
}

type ProjectRepository interface {
	Insert(ctx context.Context, project Project) error
	Get(ctx context.Context, userID, projectID string) (Project, error)
	List(ctx context.Context, userID string, status *ProjectStatus) ([]Project, error)
	CountByClient(ctx context.Context, userID, clientID string) (int64, error)
	Update(ctx context.Context, project Project) error
	Delete(ctx context.Context, userID, projectID string) error
}
