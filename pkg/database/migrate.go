package database

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

const migrationsTable = "schema_migrations"

// RunMigrations 建表并补齐索引
//
// 旧版服务生成的数据库文件没有版本表，但已有 cadres 等表；
// 建表语句均为 CREATE TABLE IF NOT EXISTS，旧数据原样保留。
func RunMigrations(db *sql.DB, logger *zap.Logger) error {
	legacy, err := isLegacyFile(db)
	if err != nil {
		return fmt.Errorf("检查数据库文件失败: %w", err)
	}
	if legacy {
		logger.Info("检测到旧版数据库文件，将在现有数据上补齐表结构")
	}

	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("读取内嵌表结构失败: %w", err)
	}

	driver, err := sqlite3.WithInstance(db, &sqlite3.Config{MigrationsTable: migrationsTable})
	if err != nil {
		return fmt.Errorf("创建 SQLite 迁移驱动失败: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "sqlite3", driver)
	if err != nil {
		return fmt.Errorf("初始化迁移失败: %w", err)
	}
	m.Log = &migrateLogger{sugar: logger.Named("migrate").Sugar()}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("升级表结构失败: %w", err)
	}

	version, dirty, err := m.Version()
	switch {
	case err != nil:
		logger.Warn("读取表结构版本失败", zap.Error(err))
	case dirty:
		logger.Warn("表结构版本处于 dirty 状态，需人工确认", zap.Uint("version", version))
	default:
		logger.Info("表结构已是最新", zap.Uint("version", version), zap.Bool("legacy", legacy))
	}

	return nil
}

// isLegacyFile 已有干部表但没有版本表
func isLegacyFile(db *sql.DB) (bool, error) {
	rows, err := db.Query(
		"SELECT name FROM sqlite_master WHERE type = 'table' AND name IN (?, ?)",
		"cadres", migrationsTable,
	)
	if err != nil {
		return false, err
	}
	defer rows.Close()

	found := map[string]bool{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return false, err
		}
		found[name] = true
	}
	if err := rows.Err(); err != nil {
		return false, err
	}
	return found["cadres"] && !found[migrationsTable], nil
}

// migrateLogger 将 golang-migrate 的输出转到 zap
type migrateLogger struct {
	sugar *zap.SugaredLogger
}

func (l *migrateLogger) Printf(format string, v ...interface{}) {
	l.sugar.Debugf(strings.TrimSuffix(format, "\n"), v...)
}

func (l *migrateLogger) Verbose() bool { return false }
