package domain

import (
	"context"
	"time"
)

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusDone       TaskStatus = "done"
)

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
)

type Task struct {
	ID          string       `bson:"id" json:"id"`
	UserID      string       `bson:"user_id" json:"user_id"`
	ProjectID   *string      `bson:"project_id,omitempty" json:"project_id,omitempty"`
	Title       string       `bson:"title" json:"title"`
	Notes       string       `bson:"notes,omitempty" json:"notes,omitempty"`
	Status      TaskStatus   `bson:"status" json:"status"`
	Priority    TaskPriority `bson:"priority" json:"priority"`
	DueDate     *time.Time   `bson:"due_date,omitempty" json:"due_date,omitempty"`
	CompletedAt *time.Time   `bson:"completed_at,omitempty" json:"completed_at,omitempty"`
	CreatedAt   time.Time    `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time    `bson:"updated_at" json:"updated_at"`
}

type TaskService interface {
	ListTasks(ctx context.Context, userID string, status *TaskStatus) ([]Task, error)
	GetTask(ctx context.Context, userID, taskID string) (Task, error)
	CreateTask(ctx context.Context, task Task) (Task, error)
	UpdateTask(ctx context.Context, task Task) (Task, error)
	CompleteTask(ctx context.Context, userID, taskID string) (Task, error)
	DeleteTask(ctx context.Context, userID, taskID string) error
}

type TaskRepository interface {
	Insert(ctx context.Context, task Task) error
	Get(ctx context.Context, userID, taskID string) (Task, error)
	List(ctx context.Context, userID string, status *TaskStatus) ([]Task, error)
	Update(ctx context.Context, task Task) error
	Delete(ctx context.Context, userID, taskID string) error
	CountOpen(ctx context.Context, userID string) (int64, error)
}
