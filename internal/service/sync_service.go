package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/gummy1803-ai/assessment-system/internal/dto"
	"github.com/gummy1803-ai/assessment-system/internal/model"
	"github.com/gummy1803-ai/assessment-system/internal/repository"
)

// SyncService 客户端全量同步业务接口
type SyncService interface {
	// Snapshot 在同一读事务中读取全部数据表
	Snapshot(ctx context.Context) (*dto.SyncSnapshot, error)
	// Upload 在单个事务中按固定顺序写入整批数据，任一行失败整批回滚
	Upload(ctx context.Context, req *dto.SyncUploadRequest) (*dto.SyncUploadResult, error)
	// Clear 清空全部数据表并重置子表自增编号
	Clear(ctx context.Context) error
}

type syncService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewSyncService 创建 SyncService 实例
func NewSyncService(repo *repository.Repository, logger *zap.Logger) SyncService {
	return &syncService{repo: repo, logger: logger}
}

// ────────────────────── Snapshot ──────────────────────

func (s *syncService) Snapshot(ctx context.Context) (*dto.SyncSnapshot, error) {
	var snap *dto.SyncSnapshot
	err := s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		var err error
		snap, err = readSnapshot(ctx, tx)
		return err
	})
	if err != nil {
		s.logger.Error("读取同步快照失败", zap.Error(err))
		return nil, err
	}
	return snap, nil
}

func readSnapshot(ctx context.Context, repo *repository.Repository) (*dto.SyncSnapshot, error) {
	var (
		snap dto.SyncSnapshot
		err  error
	)
	if snap.Cadres, err = repo.Cadre.List(ctx); err != nil {
		return nil, fmt.Errorf("读取干部: %w", err)
	}
	if snap.Competitions, err = repo.Competition.List(ctx); err != nil {
		return nil, fmt.Errorf("读取比赛成绩: %w", err)
	}
	if snap.Contributions, err = repo.Contribution.List(ctx); err != nil {
		return nil, fmt.Errorf("读取协会贡献: %w", err)
	}
	if snap.Trainings, err = repo.Training.List(ctx); err != nil {
		return nil, fmt.Errorf("读取新生指导: %w", err)
	}
	if snap.Deductions, err = repo.Deduction.List(ctx); err != nil {
		return nil, fmt.Errorf("读取职责扣分: %w", err)
	}
	return &snap, nil
}

// ────────────────────── Upload ──────────────────────
//
// 写入顺序：干部 → 比赛成绩 → 协会贡献 → 新生指导 → 职责扣分
// 每行按主键插入或覆盖，重复上传同一批数据结果不变

func (s *syncService) Upload(ctx context.Context, req *dto.SyncUploadRequest) (*dto.SyncUploadResult, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	err := s.repo.RunSteps(ctx, []repository.Step{
		{Name: "写入干部", Run: func(ctx context.Context, tx *repository.Repository) error {
			return upsertRows(ctx, req.Cadres, tx.Cadre.Upsert)
		}},
		{Name: "写入比赛成绩", Run: func(ctx context.Context, tx *repository.Repository) error {
			return upsertRows(ctx, req.Competitions, tx.Competition.Upsert)
		}},
		{Name: "写入协会贡献", Run: func(ctx context.Context, tx *repository.Repository) error {
			return upsertRows(ctx, req.Contributions, tx.Contribution.Upsert)
		}},
		{Name: "写入新生指导", Run: func(ctx context.Context, tx *repository.Repository) error {
			return upsertRows(ctx, req.Trainings, tx.Training.Upsert)
		}},
		{Name: "写入职责扣分", Run: func(ctx context.Context, tx *repository.Repository) error {
			return upsertRows(ctx, req.Deductions, tx.Deduction.Upsert)
		}},
	})
	if err != nil {
		s.logger.Error("数据同步失败，已回滚", zap.Error(err))
		return nil, err
	}

	result := &dto.SyncUploadResult{
		Cadres:        len(req.Cadres),
		Competitions:  len(req.Competitions),
		Contributions: len(req.Contributions),
		Trainings:     len(req.Trainings),
		Deductions:    len(req.Deductions),
	}
	s.logger.Info("数据同步成功",
		zap.Int("cadres", result.Cadres),
		zap.Int("competitions", result.Competitions),
		zap.Int("contributions", result.Contributions),
		zap.Int("trainings", result.Trainings),
		zap.Int("deductions", result.Deductions),
	)
	return result, nil
}

// upsertRows 逐行写入，错误信息带出失败行下标
func upsertRows[T any](ctx context.Context, rows []T, upsert func(context.Context, *T) error) error {
	for i := range rows {
		if err := upsert(ctx, &rows[i]); err != nil {
			return fmt.Errorf("第 %d 行: %w", i, err)
		}
	}
	return nil
}

// ────────────────────── Clear ──────────────────────

func (s *syncService) Clear(ctx context.Context) error {
	err := s.repo.RunSteps(ctx, []repository.Step{
		{Name: "清空职责扣分", Run: func(ctx context.Context, tx *repository.Repository) error {
			return tx.Deduction.DeleteAll(ctx)
		}},
		{Name: "清空新生指导", Run: func(ctx context.Context, tx *repository.Repository) error {
			return tx.Training.DeleteAll(ctx)
		}},
		{Name: "清空协会贡献", Run: func(ctx context.Context, tx *repository.Repository) error {
			return tx.Contribution.DeleteAll(ctx)
		}},
		{Name: "清空比赛成绩", Run: func(ctx context.Context, tx *repository.Repository) error {
			return tx.Competition.DeleteAll(ctx)
		}},
		{Name: "清空干部", Run: func(ctx context.Context, tx *repository.Repository) error {
			return tx.Cadre.DeleteAll(ctx)
		}},
		{Name: "重置自增编号", Run: func(ctx context.Context, tx *repository.Repository) error {
			return tx.ResetSequences(ctx, model.ChildTables...)
		}},
	})
	if err != nil {
		s.logger.Error("清除数据失败，已回滚", zap.Error(err))
		return err
	}

	s.logger.Warn("所有数据已清除")
	return nil
}
