package dto

import "github.com/gummy1803-ai/assessment-system/internal/model"

// ── 数据同步 DTO ──

// SyncSnapshot 全量导出快照（GET /api/sync/all）
type SyncSnapshot struct {
	Cadres        []model.Cadre        `json:"cadres"`
	Competitions  []model.Competition  `json:"competitions"`
	Contributions []model.Contribution `json:"contributions"`
	Trainings     []model.Training     `json:"trainings"`
	Deductions    []model.Deduction    `json:"deductions"`
}

// SyncUploadRequest 批量上传请求，结构与快照一致
// 子记录携带 id 时按 id 覆盖，缺省时由数据库分配
type SyncUploadRequest struct {
	Cadres        []model.Cadre        `json:"cadres"        binding:"dive"`
	Competitions  []model.Competition  `json:"competitions"  binding:"dive"`
	Contributions []model.Contribution `json:"contributions" binding:"dive"`
	Trainings     []model.Training     `json:"trainings"     binding:"dive"`
	Deductions    []model.Deduction    `json:"deductions"    binding:"dive"`
}

// SyncUploadResult 批量上传结果
type SyncUploadResult struct {
	Cadres        int `json:"cadres"`
	Competitions  int `json:"competitions"`
	Contributions int `json:"contributions"`
	Trainings     int `json:"trainings"`
	Deductions    int `json:"deductions"`
}
