package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/gummy1803-ai/assessment-system/internal/model"
)

// SettingRepository 键值设置数据访问接口
type SettingRepository interface {
	// Get 读取设置值，键不存在时 found 为 false
	Get(ctx context.Context, key string) (value string, found bool, err error)
	// Set 插入或覆盖设置值
	Set(ctx context.Context, key, value string) error
	// EnsureDefault 键不存在时写入默认值，已存在则保持不变
	EnsureDefault(ctx context.Context, key, value string) (created bool, err error)
}

type settingRepo struct {
	db *gorm.DB
}

// NewSettingRepo 创建 SettingRepository 实例
func NewSettingRepo(db *gorm.DB) SettingRepository {
	return &settingRepo{db: db}
}

func (r *settingRepo) Get(ctx context.Context, key string) (string, bool, error) {
	var s model.Setting
	err := r.db.WithContext(ctx).
		Where("key = ?", key).
		First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	if s.Value == nil {
		return "", true, nil
	}
	return *s.Value, true, nil
}

func (r *settingRepo) Set(ctx context.Context, key, value string) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value"}),
		}).
		Create(&model.Setting{Key: key, Value: &value}).Error
}

func (r *settingRepo) EnsureDefault(ctx context.Context, key, value string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&model.Setting{}).
		Where("key = ?", key).
		Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.Setting{Key: key, Value: &value})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
