package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/gummy1803-ai/assessment-system/internal/model"
)

// Repository 所有 Repository 的聚合入口
type Repository struct {
	Cadre        CadreRepository
	Competition  CompetitionRepository
	Contribution ContributionRepository
	Training     TrainingRepository
	Deduction    DeductionRepository
	Setting      SettingRepository

	db *gorm.DB
}

// NewRepository 创建 Repository 聚合
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Cadre:        NewCadreRepo(db),
		Competition:  newRecordRepo[model.Competition](db),
		Contribution: newRecordRepo[model.Contribution](db),
		Training:     newRecordRepo[model.Training](db),
		Deduction:    newRecordRepo[model.Deduction](db),
		Setting:      NewSettingRepo(db),
		db:           db,
	}
}

// Transaction 在单个数据库事务中执行 fn
// fn 收到的 Repository 绑定到该事务；fn 返回错误时整体回滚
func (r *Repository) Transaction(ctx context.Context, fn func(tx *Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepository(tx))
	})
}

// Step 事务内的一个有序写步骤
type Step struct {
	Name string
	Run  func(ctx context.Context, tx *Repository) error
}

// RunSteps 在同一事务中按顺序执行 steps
// 任一步骤失败立即停止并回滚，返回的错误带有步骤名
func (r *Repository) RunSteps(ctx context.Context, steps []Step) error {
	return r.Transaction(ctx, func(tx *Repository) error {
		for _, step := range steps {
			if err := step.Run(ctx, tx); err != nil {
				return fmt.Errorf("%s: %w", step.Name, err)
			}
		}
		return nil
	})
}

// ResetSequences 重置子表自增计数，之后插入的记录从 1 开始编号
func (r *Repository) ResetSequences(ctx context.Context, tables ...string) error {
	if len(tables) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Exec("DELETE FROM sqlite_sequence WHERE name IN ?", tables).Error
}
