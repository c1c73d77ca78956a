package dto

import "github.com/gummy1803-ai/assessment-system/internal/model"

// ── 子记录 DTO ──
//
// 数值字段的 required 与旧版客户端约定一致：0 视为未填写。

// CreateCompetitionRequest 添加比赛成绩请求
type CreateCompetitionRequest struct {
	CadreID string  `json:"cadreId" binding:"required"`
	Name    *string `json:"name"`
	Level   *string `json:"level"`
	Award   *string `json:"award"`
	Score   float64 `json:"score"   binding:"required"`
}

// ToModel 转换为模型
func (r *CreateCompetitionRequest) ToModel() *model.Competition {
	return &model.Competition{
		CadreID: r.CadreID,
		Name:    r.Name,
		Level:   r.Level,
		Award:   r.Award,
		Score:   &r.Score,
	}
}

// CreateContributionRequest 添加协会贡献请求
type CreateContributionRequest struct {
	CadreID    string  `json:"cadreId"    binding:"required"`
	Type       *string `json:"type"`
	Count      float64 `json:"count"      binding:"required"`
	TotalScore float64 `json:"totalScore" binding:"required"`
}

// ToModel 转换为模型
func (r *CreateContributionRequest) ToModel() *model.Contribution {
	return &model.Contribution{
		CadreID:    r.CadreID,
		Type:       r.Type,
		Count:      &r.Count,
		TotalScore: &r.TotalScore,
	}
}

// CreateTrainingRequest 添加新生指导记录请求
type CreateTrainingRequest struct {
	CadreID     string  `json:"cadreId"     binding:"required"`
	TraineeName string  `json:"traineeName" binding:"required"`
	Hours       float64 `json:"hours"       binding:"required"`
	Score       float64 `json:"score"       binding:"required"`
}

// ToModel 转换为模型
func (r *CreateTrainingRequest) ToModel() *model.Training {
	return &model.Training{
		CadreID:     r.CadreID,
		TraineeName: &r.TraineeName,
		Hours:       &r.Hours,
		Score:       &r.Score,
	}
}

// CreateDeductionRequest 添加职责扣分请求
type CreateDeductionRequest struct {
	CadreID string  `json:"cadreId" binding:"required"`
	Score   float64 `json:"score"   binding:"required"`
	Reason  *string `json:"reason"`
}

// ToModel 转换为模型
func (r *CreateDeductionRequest) ToModel() *model.Deduction {
	return &model.Deduction{
		CadreID: r.CadreID,
		Score:   &r.Score,
		Reason:  r.Reason,
	}
}
