package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/gummy1803-ai/assessment-system/internal/model"
)

// CadreRepository 干部数据访问接口
type CadreRepository interface {
	List(ctx context.Context) ([]model.Cadre, error)
	// GetByID 未找到时返回 (nil, nil)
	GetByID(ctx context.Context, id string) (*model.Cadre, error)
	// Upsert 按 ID 插入或整行覆盖
	Upsert(ctx context.Context, cadre *model.Cadre) error
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
}

// cadreRepo CadreRepository 的 GORM 实现
type cadreRepo struct {
	db *gorm.DB
}

// NewCadreRepo 创建 CadreRepository 实例
func NewCadreRepo(db *gorm.DB) CadreRepository {
	return &cadreRepo{db: db}
}

func (r *cadreRepo) List(ctx context.Context) ([]model.Cadre, error) {
	cadres := make([]model.Cadre, 0)
	err := r.db.WithContext(ctx).Find(&cadres).Error
	return cadres, err
}

func (r *cadreRepo) GetByID(ctx context.Context, id string) (*model.Cadre, error) {
	var cadre model.Cadre
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&cadre).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cadre, nil
}

func (r *cadreRepo) Upsert(ctx context.Context, cadre *model.Cadre) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(cadre).Error
}

func (r *cadreRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.Cadre{}).Error
}

func (r *cadreRepo) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&model.Cadre{}).Error
}
