// Package testutil 提供测试用的 SQLite 数据库
package testutil

import (
	"path/filepath"
	"testing"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/gummy1803-ai/assessment-system/config"
	"github.com/gummy1803-ai/assessment-system/pkg/database"
)

// NewDB 在临时目录创建已完成迁移的数据库文件，测试结束自动关闭
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "assessment_test.db")
	db, err := database.NewDB(&config.DatabaseConfig{Path: path}, "info", zap.NewNop())
	if err != nil {
		t.Fatalf("打开测试数据库失败: %v", err)
	}
	t.Cleanup(func() { _ = database.Close(db) })

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("获取底层 sql.DB 失败: %v", err)
	}
	if err := database.RunMigrations(sqlDB, zap.NewNop()); err != nil {
		t.Fatalf("执行迁移失败: %v", err)
	}
	return db
}

// FailInsertsOn 为表添加触发器：插入匹配 condition 的行时中止语句
// condition 使用 NEW 引用新行，例如 "NEW.reason = 'boom'"
func FailInsertsOn(t testing.TB, db *gorm.DB, table, condition string) {
	t.Helper()

	sql := "CREATE TRIGGER fail_insert_" + table + " BEFORE INSERT ON " + table +
		" WHEN " + condition + " BEGIN SELECT RAISE(ABORT, 'forced failure'); END"
	if err := db.Exec(sql).Error; err != nil {
		t.Fatalf("创建触发器失败: %v", err)
	}
}

// Ptr 返回值的指针
func Ptr[T any](v T) *T { return &v }
