package managers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mateenqamar1122/Hyperlans-sub002/internal/domain"

	"github.com/rs/xid"
)

type taskManager struct {
	taskRepository domain.TaskRepository
}

type TaskManagerDependencies struct {
	TaskRepository domain.TaskRepository
}

func NewTaskManager(deps TaskManagerDependencies) domain.TaskService {
	return &taskManager{
		taskRepository: deps.TaskRepository,
	}
}

func (m *taskManager) ListTasks(ctx context.Context, userID string, status *domain.TaskStatus) ([]domain.Task, error) {
	tasks, err := m.taskRepository.List(ctx, userID, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

func (m *taskManager) GetTask(ctx context.Context, userID, taskID string) (domain.Task, error) {
	task, err := m.taskRepository.Get(ctx, userID, taskID)
	if err != nil {
		return domain.Task{}, fmt.Errorf("failed to get task: %w", err)
	}
	return task, nil
}

func (m *taskManager) CreateTask(ctx context.Context, task domain.Task) (domain.Task, error) {
	task.Title = strings.TrimSpace(task.Title)
	if task.Title == "" {
		return domain.Task{}, domain.NewValidationError("title", "must not be empty")
	}
	if task.Status == "" {
		task.Status = domain.TaskStatusTodo
	}
	if task.Priority == "" {
		task.Priority = domain.TaskPriorityMedium
	}

	task.ID = xid.New().String()
	now := time.Now().UTC()
	task.CreatedAt = now
	task.UpdatedAt = now

	if err := m.taskRepository.Insert(ctx, task); err != nil {
		return domain.Task{}, fmt.Errorf("failed to insert task: %w", err)
	}

	return task, nil
}

func (m *taskManager) UpdateTask(ctx context.Context, task domain.Task) (domain.Task, error) {
	task.Title = strings.TrimSpace(task.Title)
	if task.Title == "" {
		return domain.Task{}, domain.NewValidationError("title", "must not be empty")
	}

	existing, err := m.taskRepository.Get(ctx, task.UserID, task.ID)
	if err != nil {
		return domain.Task{}, fmt.Errorf("failed to get task: %w", err)
	}

	task.CreatedAt = existing.CreatedAt
	task.CompletedAt = existing.CompletedAt
	task.UpdatedAt = time.Now().UTC()

	if err := m.taskRepository.Update(ctx, task); err != nil {
		return domain.Task{}, fmt.Errorf("failed to update task: %w", err)
	}

	return task, nil
}

func (m *taskManager) CompleteTask(ctx context.Context, userID, taskID string) (domain.Task, error) {
	task, err := m.taskRepository.Get(ctx, userID, taskID)
	if err != nil {
		return domain.Task{}, fmt.Errorf("failed to get task: %w", err)
	}

	now := time.Now().UTC()
	task.Status = domain.TaskStatusDone
	task.CompletedAt = &now
	task.UpdatedAt = now

	if err := m.taskRepository.Update(ctx, task); err != nil {
		return domain.Task{}, fmt.Errorf("failed to complete task: %w", err)
	}

	return task, nil
}

func (m *taskManager) DeleteTask(ctx context.Context, userID, taskID string) error {
	if err := m.taskRepository.Delete(ctx, userID, taskID); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}
