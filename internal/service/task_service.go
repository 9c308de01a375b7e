package service

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"taskhub/internal/cache"
	apperrors "taskhub/internal/errors"
	"taskhub/internal/model"
	"taskhub/internal/repository"
)

const taskListCacheTTL = 5 * time.Minute

// TaskService handles task CRUD on behalf of an authenticated user. Reads on
// missing or foreign tasks yield ErrTaskNotFound, mutations ErrTaskForbidden.
type TaskService interface {
	CreateTask(ctx context.Context, userID uint, title, description string) (*model.Task, error)
	ListTasks(ctx context.Context, userID uint) ([]model.Task, error)
	GetTask(ctx context.Context, userID, taskID uint) (*model.Task, error)
	UpdateTask(ctx context.Context, userID, taskID uint, title, description string) (*model.Task, error)
	DeleteTask(ctx context.Context, userID, taskID uint) error
}

type taskService struct {
	repo  repository.TaskRepository
	cache *cache.Client
}

// NewTaskService creates a new task service.
func NewTaskService(repo repository.TaskRepository, cache *cache.Client) TaskService {
	return &taskService{
		repo:  repo,
		cache: cache,
	}
}

func (s *taskService) listCacheKey(userID uint) string {
	return fmt.Sprintf("tasks:user:%d", userID)
}

// CreateTask stores a new task owned by userID.
func (s *taskService) CreateTask(ctx context.Context, userID uint, title, description string) (*model.Task, error) {
	task := &model.Task{
		Title:       title,
		Description: description,
		UserID:      userID,
	}
	if err := s.repo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}

	_ = s.cache.Delete(ctx, s.listCacheKey(userID))
	return task, nil
}

// ListTasks returns the user's tasks newest-first, served from cache when
// possible. Only the owner's tasks are ever visible.
func (s *taskService) ListTasks(ctx context.Context, userID uint) ([]model.Task, error) {
	var cached []model.Task
	if s.cache.GetJSON(ctx, s.listCacheKey(userID), &cached) {
		return cached, nil
	}

	tasks, err := s.repo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}

	s.cache.SetJSON(ctx, s.listCacheKey(userID), tasks, taskListCacheTTL)
	return tasks, nil
}

// GetTask fetches a single task owned by userID.
func (s *taskService) GetTask(ctx context.Context, userID, taskID uint) (*model.Task, error) {
	task, err := s.repo.FindByIDAndOwner(ctx, taskID, userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, err
	}
	return task, nil
}

// UpdateTask replaces title and description of a task owned by userID. The
// ownership condition is part of the UPDATE itself, so the check and the
// write cannot interleave with a concurrent delete.
func (s *taskService) UpdateTask(ctx context.Context, userID, taskID uint, title, description string) (*model.Task, error) {
	rows, err := s.repo.UpdateOwned(ctx, taskID, userID, title, description)
	if err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}
	if rows == 0 {
		return nil, apperrors.ErrTaskForbidden
	}

	_ = s.cache.Delete(ctx, s.listCacheKey(userID))

	task, err := s.repo.FindByIDAndOwner(ctx, taskID, userID)
	if err != nil {
		return nil, fmt.Errorf("reload task: %w", err)
	}
	return task, nil
}

// DeleteTask permanently removes a task owned by userID.
func (s *taskService) DeleteTask(ctx context.Context, userID, taskID uint) error {
	rows, err := s.repo.DeleteOwned(ctx, taskID, userID)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if rows == 0 {
		return apperrors.ErrTaskForbidden
	}

	_ = s.cache.Delete(ctx, s.listCacheKey(userID))
	return nil
}
