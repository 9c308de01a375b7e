package repository

import (
	"context"

	"gorm.io/gorm"

	"taskhub/internal/model"
)

// TaskRepository defines persistence operations for tasks. Every lookup and
// mutation is scoped to the owning user in a single statement, so the
// ownership check cannot race a concurrent write.
type TaskRepository interface {
	Create(ctx context.Context, task *model.Task) error
	FindByIDAndOwner(ctx context.Context, id, userID uint) (*model.Task, error)
	ListByOwner(ctx context.Context, userID uint) ([]model.Task, error)
	UpdateOwned(ctx context.Context, id, userID uint, title, description string) (int64, error)
	DeleteOwned(ctx context.Context, id, userID uint) (int64, error)
}

type taskRepository struct {
	db *gorm.DB
}

// NewTaskRepository builds a GORM-backed repository.
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &taskRepository{db: db}
}

func (r *taskRepository) Create(ctx context.Context, task *model.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

func (r *taskRepository) FindByIDAndOwner(ctx context.Context, id, userID uint) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&task).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *taskRepository) ListByOwner(ctx context.Context, userID uint) ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// UpdateOwned replaces title and description of a task owned by userID and
// reports how many rows matched. Zero rows means absent or foreign-owned.
func (r *taskRepository) UpdateOwned(ctx context.Context, id, userID uint, title, description string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&model.Task{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]interface{}{
			"title":       title,
			"description": description,
		})
	return res.RowsAffected, res.Error
}

// DeleteOwned removes a task owned by userID and reports how many rows
// matched. Zero rows means absent or foreign-owned.
func (r *taskRepository) DeleteOwned(ctx context.Context, id, userID uint) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.Task{})
	return res.RowsAffected, res.Error
}
