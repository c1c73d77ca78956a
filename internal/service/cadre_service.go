package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/gummy1803-ai/assessment-system/internal/dto"
	"github.com/gummy1803-ai/assessment-system/internal/model"
	"github.com/gummy1803-ai/assessment-system/internal/repository"
	pkgerrors "github.com/gummy1803-ai/assessment-system/pkg/errors"
)

// CadreService 干部业务接口
type CadreService interface {
	List(ctx context.Context) ([]model.Cadre, error)
	// Get 干部不存在时返回 (nil, nil)
	Get(ctx context.Context, id string) (*model.Cadre, error)
	// Save 按干部 ID 插入或整行覆盖
	Save(ctx context.Context, req *dto.SaveCadreRequest) (*model.Cadre, error)
	// Delete 删除干部及其全部子记录
	Delete(ctx context.Context, id string) error
}

type cadreService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewCadreService 创建 CadreService 实例
func NewCadreService(repo *repository.Repository, logger *zap.Logger) CadreService {
	return &cadreService{repo: repo, logger: logger}
}

func (s *cadreService) List(ctx context.Context) ([]model.Cadre, error) {
	cadres, err := s.repo.Cadre.List(ctx)
	if err != nil {
		s.logger.Error("查询干部列表失败", zap.Error(err))
		return nil, err
	}
	return cadres, nil
}

func (s *cadreService) Get(ctx context.Context, id string) (*model.Cadre, error) {
	cadre, err := s.repo.Cadre.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("查询干部失败", zap.String("cadre_id", id), zap.Error(err))
		return nil, err
	}
	return cadre, nil
}

func (s *cadreService) Save(ctx context.Context, req *dto.SaveCadreRequest) (*model.Cadre, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	cadre := req.ToModel()
	if err := s.repo.Cadre.Upsert(ctx, cadre); err != nil {
		s.logger.Error("保存干部失败", zap.String("cadre_id", cadre.ID), zap.Error(err))
		return nil, err
	}
	return cadre, nil
}

// ────────────────────── Delete ──────────────────────
//
// 子记录先于干部删除，任一步失败整体回滚

func (s *cadreService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return pkgerrors.NewValidationError("id")
	}

	err := s.repo.RunSteps(ctx, []repository.Step{
		{Name: "删除比赛成绩", Run: func(ctx context.Context, tx *repository.Repository) error {
			return tx.Competition.DeleteByCadre(ctx, id)
		}},
		{Name: "删除协会贡献", Run: func(ctx context.Context, tx *repository.Repository) error {
			return tx.Contribution.DeleteByCadre(ctx, id)
		}},
		{Name: "删除新生指导", Run: func(ctx context.Context, tx *repository.Repository) error {
			return tx.Training.DeleteByCadre(ctx, id)
		}},
		{Name: "删除职责扣分", Run: func(ctx context.Context, tx *repository.Repository) error {
			return tx.Deduction.DeleteByCadre(ctx, id)
		}},
		{Name: "删除干部", Run: func(ctx context.Context, tx *repository.Repository) error {
			return tx.Cadre.Delete(ctx, id)
		}},
	})
	if err != nil {
		s.logger.Error("删除干部失败", zap.String("cadre_id", id), zap.Error(err))
		return err
	}

	s.logger.Info("干部已删除", zap.String("cadre_id", id))
	return nil
}
