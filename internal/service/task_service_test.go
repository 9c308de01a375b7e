package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "taskhub/internal/errors"
	"taskhub/internal/model"
)

// MockTaskRepository is a mock implementation of TaskRepository.
type MockTaskRepository struct {
	mock.Mock
}

func (m *MockTaskRepository) Create(ctx context.Context, task *model.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskRepository) FindByIDAndOwner(ctx context.Context, id, userID uint) (*model.Task, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Task), args.Error(1)
}

func (m *MockTaskRepository) ListByOwner(ctx context.Context, userID uint) ([]model.Task, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Task), args.Error(1)
}

func (m *MockTaskRepository) UpdateOwned(ctx context.Context, id, userID uint, title, description string) (int64, error) {
	args := m.Called(ctx, id, userID, title, description)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTaskRepository) DeleteOwned(ctx context.Context, id, userID uint) (int64, error) {
	args := m.Called(ctx, id, userID)
	return args.Get(0).(int64), args.Error(1)
}

func TestTaskService_CreateTask_StampsOwner(t *testing.T) {
	mockRepo := new(MockTaskRepository)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Task")).
		Run(func(args mock.Arguments) {
			task := args.Get(1).(*model.Task)
			assert.Equal(t, uint(5), task.UserID)
			task.ID = 11
		}).
		Return(nil)

	svc := NewTaskService(mockRepo, nil)
	task, err := svc.CreateTask(context.Background(), 5, "Write the report", "quarterly numbers")

	assert.NoError(t, err)
	assert.Equal(t, uint(11), task.ID)
	assert.Equal(t, uint(5), task.UserID)
	assert.Equal(t, "Write the report", task.Title)
	mockRepo.AssertExpectations(t)
}

func TestTaskService_ListTasks_ScopedToOwner(t *testing.T) {
	now := time.Now()
	mockRepo := new(MockTaskRepository)
	mockRepo.On("ListByOwner", mock.Anything, uint(5)).Return([]model.Task{
		{ID: 2, Title: "Newest task item", UserID: 5, CreatedAt: now},
		{ID: 1, Title: "Older task item", UserID: 5, CreatedAt: now.Add(-time.Hour)},
	}, nil)

	svc := NewTaskService(mockRepo, nil)
	tasks, err := svc.ListTasks(context.Background(), 5)

	assert.NoError(t, err)
	assert.Len(t, tasks, 2)
	// Repository ordering (created_at DESC) is passed through untouched.
	assert.True(t, tasks[0].CreatedAt.After(tasks[1].CreatedAt))
	for _, task := range tasks {
		assert.Equal(t, uint(5), task.UserID)
	}
	mockRepo.AssertExpectations(t)
}

func TestTaskService_GetTask(t *testing.T) {
	tests := []struct {
		name          string
		setupMock     func(*MockTaskRepository)
		expectedError error
	}{
		{
			name: "owned task is returned",
			setupMock: func(m *MockTaskRepository) {
				m.On("FindByIDAndOwner", mock.Anything, uint(10), uint(5)).
					Return(&model.Task{ID: 10, Title: "Owned task item", UserID: 5}, nil)
			},
			expectedError: nil,
		},
		{
			name: "missing or foreign task maps to not found",
			setupMock: func(m *MockTaskRepository) {
				m.On("FindByIDAndOwner", mock.Anything, uint(10), uint(5)).
					Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrTaskNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockTaskRepository)
			tt.setupMock(mockRepo)

			svc := NewTaskService(mockRepo, nil)
			task, err := svc.GetTask(context.Background(), 5, 10)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, task)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, uint(10), task.ID)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestTaskService_UpdateTask(t *testing.T) {
	tests := []struct {
		name          string
		setupMock     func(*MockTaskRepository)
		expectedError error
	}{
		{
			name: "owner updates the task",
			setupMock: func(m *MockTaskRepository) {
				m.On("UpdateOwned", mock.Anything, uint(10), uint(5), "Updated title text", "new body").
					Return(int64(1), nil)
				m.On("FindByIDAndOwner", mock.Anything, uint(10), uint(5)).
					Return(&model.Task{ID: 10, Title: "Updated title text", Description: "new body", UserID: 5}, nil)
			},
			expectedError: nil,
		},
		{
			name: "zero matched rows maps to forbidden",
			setupMock: func(m *MockTaskRepository) {
				m.On("UpdateOwned", mock.Anything, uint(10), uint(5), "Updated title text", "new body").
					Return(int64(0), nil)
			},
			expectedError: apperrors.ErrTaskForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockTaskRepository)
			tt.setupMock(mockRepo)

			svc := NewTaskService(mockRepo, nil)
			task, err := svc.UpdateTask(context.Background(), 5, 10, "Updated title text", "new body")

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, task)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "Updated title text", task.Title)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestTaskService_DeleteTask(t *testing.T) {
	tests := []struct {
		name          string
		setupMock     func(*MockTaskRepository)
		expectedError error
	}{
		{
			name: "owner deletes the task",
			setupMock: func(m *MockTaskRepository) {
				m.On("DeleteOwned", mock.Anything, uint(10), uint(5)).Return(int64(1), nil)
			},
			expectedError: nil,
		},
		{
			name: "zero matched rows maps to forbidden",
			setupMock: func(m *MockTaskRepository) {
				m.On("DeleteOwned", mock.Anything, uint(10), uint(5)).Return(int64(0), nil)
			},
			expectedError: apperrors.ErrTaskForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockTaskRepository)
			tt.setupMock(mockRepo)

			svc := NewTaskService(mockRepo, nil)
			err := svc.DeleteTask(context.Background(), 5, 10)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
			} else {
				assert.NoError(t, err)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}
