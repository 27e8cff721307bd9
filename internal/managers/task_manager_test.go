package managers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mateenqamar1122/Hyperlans-sub002/internal/domain"
)

func newTaskManagerForTest() (domain.TaskService, *fakeTaskRepository) {
	taskRepo := newFakeTaskRepository()
	service := NewTaskManager(TaskManagerDependencies{TaskRepository: taskRepo})
	return service, taskRepo
}

func TestCreateTask(t *testing.T) {
	service, _ := newTaskManagerForTest()

	created, err := service.CreateTask(context.Background(), domain.Task{
		UserID: testUserID,
		Title:  "  Send the Acme proposal ",
	})
	require.NoError(t, err)

	assert.Equal(t, "Send the Acme proposal", created.Title)
	assert.Equal(t, domain.TaskStatusTodo, created.Status)
	assert.Equal(t, domain.TaskPriorityMedium, created.Priority)

	_, err = service.CreateTask(context.Background(), domain.Task{UserID: testUserID, Title: "  "})
	assert.True(t, domain.IsValidation(err))
}

func TestCompleteTask(t *testing.T) {
	service, taskRepo := newTaskManagerForTest()

	created, err := service.CreateTask(context.Background(), domain.Task{
		UserID: testUserID,
		Title:  "Send the Acme proposal",
	})
	require.NoError(t, err)

	done, err := service.CompleteTask(context.Background(), testUserID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskStatusDone, done.Status)
	require.NotNil(t, done.CompletedAt)

	open, err := taskRepo.CountOpen(context.Background(), testUserID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), open)

	_, err = service.CompleteTask(context.Background(), testUserID, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateTaskKeepsCompletion(t *testing.T) {
	service, _ := newTaskManagerForTest()

	created, err := service.CreateTask(context.Background(), domain.Task{
		UserID: testUserID,
		Title:  "Send the Acme proposal",
	})
	require.NoError(t, err)

	done, err := service.CompleteTask(context.Background(), testUserID, created.ID)
	require.NoError(t, err)

	edited := done
	edited.Title = "Send the revised Acme proposal"

	updated, err := service.UpdateTask(context.Background(), edited)
	require.NoError(t, err)
	assert.Equal(t, done.CompletedAt, updated.CompletedAt)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
}
