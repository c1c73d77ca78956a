package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/gummy1803-ai/assessment-system/internal/model"
)

// RecordRepository 干部子记录（比赛、贡献、指导、扣分）的数据访问接口
type RecordRepository[T any] interface {
	List(ctx context.Context) ([]T, error)
	ListByCadre(ctx context.Context, cadreID string) ([]T, error)
	// Create 插入新记录，ID 由数据库分配并回填
	Create(ctx context.Context, rec *T) error
	// Upsert 按 ID 插入或覆盖；ID 为 0 时等同 Create
	Upsert(ctx context.Context, rec *T) error
	Delete(ctx context.Context, id int64) error
	DeleteByCadre(ctx context.Context, cadreID string) error
	DeleteAll(ctx context.Context) error
}

type (
	CompetitionRepository  = RecordRepository[model.Competition]
	ContributionRepository = RecordRepository[model.Contribution]
	TrainingRepository     = RecordRepository[model.Training]
	DeductionRepository    = RecordRepository[model.Deduction]
)

// recordRepo RecordRepository 的 GORM 实现
type recordRepo[T any] struct {
	db *gorm.DB
}

func newRecordRepo[T any](db *gorm.DB) RecordRepository[T] {
	return &recordRepo[T]{db: db}
}

func (r *recordRepo[T]) List(ctx context.Context) ([]T, error) {
	rows := make([]T, 0)
	err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&rows).Error
	return rows, err
}

func (r *recordRepo[T]) ListByCadre(ctx context.Context, cadreID string) ([]T, error) {
	rows := make([]T, 0)
	err := r.db.WithContext(ctx).
		Where("cadreId = ?", cadreID).
		Order("id ASC").
		Find(&rows).Error
	return rows, err
}

func (r *recordRepo[T]) Create(ctx context.Context, rec *T) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *recordRepo[T]) Upsert(ctx context.Context, rec *T) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(rec).Error
}

func (r *recordRepo[T]) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(new(T), id).Error
}

func (r *recordRepo[T]) DeleteByCadre(ctx context.Context, cadreID string) error {
	return r.db.WithContext(ctx).
		Where("cadreId = ?", cadreID).
		Delete(new(T)).Error
}

func (r *recordRepo[T]) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(new(T)).Error
}
