package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/gummy1803-ai/assessment-system/internal/dto"
	"github.com/gummy1803-ai/assessment-system/internal/model"
	"github.com/gummy1803-ai/assessment-system/internal/repository"
)

// RecordService 干部子记录业务接口
// T 为记录模型，R 为创建请求
type RecordService[T any, R any] interface {
	List(ctx context.Context) ([]T, error)
	ListByCadre(ctx context.Context, cadreID string) ([]T, error)
	// Create 校验必填字段后插入，返回带新 ID 的记录
	Create(ctx context.Context, req *R) (*T, error)
	Delete(ctx context.Context, id int64) error
}

type (
	CompetitionService  = RecordService[model.Competition, dto.CreateCompetitionRequest]
	ContributionService = RecordService[model.Contribution, dto.CreateContributionRequest]
	TrainingService     = RecordService[model.Training, dto.CreateTrainingRequest]
	DeductionService    = RecordService[model.Deduction, dto.CreateDeductionRequest]
)

type recordService[T any, R any] struct {
	records repository.RecordRepository[T]
	kind    string
	toModel func(*R) *T
	logger  *zap.Logger
}

func newRecordService[T any, R any](
	records repository.RecordRepository[T],
	kind string,
	toModel func(*R) *T,
	logger *zap.Logger,
) *recordService[T, R] {
	return &recordService[T, R]{
		records: records,
		kind:    kind,
		toModel: toModel,
		logger:  logger,
	}
}

func (s *recordService[T, R]) List(ctx context.Context) ([]T, error) {
	rows, err := s.records.List(ctx)
	if err != nil {
		s.logger.Error("查询"+s.kind+"失败", zap.Error(err))
		return nil, err
	}
	return rows, nil
}

func (s *recordService[T, R]) ListByCadre(ctx context.Context, cadreID string) ([]T, error) {
	rows, err := s.records.ListByCadre(ctx, cadreID)
	if err != nil {
		s.logger.Error("按干部查询"+s.kind+"失败", zap.String("cadre_id", cadreID), zap.Error(err))
		return nil, err
	}
	return rows, nil
}

func (s *recordService[T, R]) Create(ctx context.Context, req *R) (*T, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	rec := s.toModel(req)
	if err := s.records.Create(ctx, rec); err != nil {
		s.logger.Error("添加"+s.kind+"失败", zap.Error(err))
		return nil, err
	}
	return rec, nil
}

func (s *recordService[T, R]) Delete(ctx context.Context, id int64) error {
	if err := s.records.Delete(ctx, id); err != nil {
		s.logger.Error("删除"+s.kind+"失败", zap.Int64("id", id), zap.Error(err))
		return err
	}
	return nil
}
