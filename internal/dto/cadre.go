package dto

import "github.com/gummy1803-ai/assessment-system/internal/model"

// ── 干部模块 DTO ──

// SaveCadreRequest 创建/覆盖干部请求
type SaveCadreRequest struct {
	ID             string   `json:"id"             binding:"required"`
	Name           string   `json:"name"           binding:"required"`
	Department     *string  `json:"department"`
	Position       *string  `json:"position"`
	Major          *string  `json:"major"`
	Class          *string  `json:"class"`
	Grade          *string  `json:"grade"`
	EquipmentScore *float64 `json:"equipmentScore"`
}

// ToModel 转换为模型，未提供装备分时使用 model.DefaultEquipmentScore
func (r *SaveCadreRequest) ToModel() *model.Cadre {
	score := model.DefaultEquipmentScore
	if r.EquipmentScore != nil {
		score = *r.EquipmentScore
	}
	return &model.Cadre{
		ID:             r.ID,
		Name:           r.Name,
		Department:     r.Department,
		Position:       r.Position,
		Major:          r.Major,
		Class:          r.Class,
		Grade:          r.Grade,
		EquipmentScore: score,
	}
}
