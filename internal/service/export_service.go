package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/gummy1803-ai/assessment-system/internal/dto"
	"github.com/gummy1803-ai/assessment-system/internal/model"
	"github.com/gummy1803-ai/assessment-system/internal/repository"
)

var (
	ErrExportGenerateFail = errors.New("生成 Excel 文件失败")
)

// 工作表名称
const (
	SheetCadres        = "干部"
	SheetCompetitions  = "比赛成绩"
	SheetContributions = "协会贡献"
	SheetTrainings     = "新生指导"
	SheetDeductions    = "职责扣分"
	SheetSummary       = "考核汇总"
)

// ExportService 导出业务接口
//
// 导出以 bytes.Buffer 返回，由 Handler 层设置响应头后写入 Response
type ExportService interface {
	// ExportWorkbook 导出全部数据表及考核汇总为 Excel
	ExportWorkbook(ctx context.Context) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

// CadreSummary 单个干部的考核汇总
// Total = 比赛 + 贡献 + 指导 + 装备分 - 扣分，空分值按 0 计
type CadreSummary struct {
	Cadre        model.Cadre
	Competition  float64
	Contribution float64
	Training     float64
	Deduction    float64
	Total        float64
}

// Summarize 按干部汇总各项得分，顺序与 snap.Cadres 一致
// 关联不到干部的子记录不计入汇总
func Summarize(snap *dto.SyncSnapshot) []CadreSummary {
	index := make(map[string]int, len(snap.Cadres))
	out := make([]CadreSummary, len(snap.Cadres))
	for i, c := range snap.Cadres {
		index[c.ID] = i
		out[i].Cadre = c
	}

	add := func(cadreID string, score *float64, field func(*CadreSummary) *float64) {
		i, ok := index[cadreID]
		if !ok || score == nil {
			return
		}
		*field(&out[i]) += *score
	}
	for _, r := range snap.Competitions {
		add(r.CadreID, r.Score, func(s *CadreSummary) *float64 { return &s.Competition })
	}
	for _, r := range snap.Contributions {
		add(r.CadreID, r.TotalScore, func(s *CadreSummary) *float64 { return &s.Contribution })
	}
	for _, r := range snap.Trainings {
		add(r.CadreID, r.Score, func(s *CadreSummary) *float64 { return &s.Training })
	}
	for _, r := range snap.Deductions {
		add(r.CadreID, r.Score, func(s *CadreSummary) *float64 { return &s.Deduction })
	}

	for i := range out {
		s := &out[i]
		s.Total = s.Competition + s.Contribution + s.Training + s.Cadre.EquipmentScore - s.Deduction
	}
	return out
}

// ═══════════════════════════════════════════════════════════
// ExportWorkbook 导出全部数据
// ═══════════════════════════════════════════════════════════
//
// 每张数据表一个 Sheet，首行为表头；最后一个 Sheet 为考核汇总

func (s *exportService) ExportWorkbook(ctx context.Context) (*bytes.Buffer, string, error) {
	var snap *dto.SyncSnapshot
	err := s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		var err error
		snap, err = readSnapshot(ctx, tx)
		return err
	})
	if err != nil {
		s.logger.Error("读取导出数据失败", zap.Error(err))
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#D9E1F2"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	sheets := []struct {
		name   string
		header []interface{}
		rows   [][]interface{}
	}{
		{SheetCadres, []interface{}{"编号", "姓名", "部门", "职务", "专业", "班级", "年级", "装备分"}, cadreRows(snap.Cadres)},
		{SheetCompetitions, []interface{}{"ID", "干部编号", "比赛名称", "级别", "奖项", "分数"}, competitionRows(snap.Competitions)},
		{SheetContributions, []interface{}{"ID", "干部编号", "类型", "次数", "总分"}, contributionRows(snap.Contributions)},
		{SheetTrainings, []interface{}{"ID", "干部编号", "新生姓名", "时长", "分数"}, trainingRows(snap.Trainings)},
		{SheetDeductions, []interface{}{"ID", "干部编号", "扣分", "原因"}, deductionRows(snap.Deductions)},
		{SheetSummary, []interface{}{"编号", "姓名", "部门", "比赛成绩", "协会贡献", "新生指导", "装备分", "职责扣分", "总分"}, summaryRows(Summarize(snap))},
	}

	for i, sh := range sheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sh.name); err != nil {
				return nil, "", s.generateFailed(err)
			}
		} else if _, err := f.NewSheet(sh.name); err != nil {
			return nil, "", s.generateFailed(err)
		}

		if err := writeSheet(f, sh.name, sh.header, sh.rows, headerStyle); err != nil {
			return nil, "", s.generateFailed(err)
		}
	}
	f.SetActiveSheet(0)

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		return nil, "", s.generateFailed(err)
	}

	filename := fmt.Sprintf("干部考核_%s.xlsx", time.Now().Format("20060102"))
	return buf, filename, nil
}

func (s *exportService) generateFailed(err error) error {
	s.logger.Error("写入 Excel 失败", zap.Error(err))
	return ErrExportGenerateFail
}

// ── 辅助函数 ──

func writeSheet(f *excelize.File, sheet string, header []interface{}, rows [][]interface{}, headerStyle int) error {
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	last, _ := excelize.ColumnNumberToName(len(header))
	if err := f.SetCellStyle(sheet, "A1", last+"1", headerStyle); err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, "A", last, 14); err != nil {
		return err
	}

	for i := range rows {
		axis, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheet, axis, &rows[i]); err != nil {
			return err
		}
	}
	return nil
}

// cellValue 空指针写为空单元格
func cellValue[T any](v *T) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

func cadreRows(cadres []model.Cadre) [][]interface{} {
	rows := make([][]interface{}, 0, len(cadres))
	for _, c := range cadres {
		rows = append(rows, []interface{}{
			c.ID, c.Name, cellValue(c.Department), cellValue(c.Position),
			cellValue(c.Major), cellValue(c.Class), cellValue(c.Grade), c.EquipmentScore,
		})
	}
	return rows
}

func competitionRows(list []model.Competition) [][]interface{} {
	rows := make([][]interface{}, 0, len(list))
	for _, r := range list {
		rows = append(rows, []interface{}{
			r.ID, r.CadreID, cellValue(r.Name), cellValue(r.Level), cellValue(r.Award), cellValue(r.Score),
		})
	}
	return rows
}

func contributionRows(list []model.Contribution) [][]interface{} {
	rows := make([][]interface{}, 0, len(list))
	for _, r := range list {
		rows = append(rows, []interface{}{
			r.ID, r.CadreID, cellValue(r.Type), cellValue(r.Count), cellValue(r.TotalScore),
		})
	}
	return rows
}

func trainingRows(list []model.Training) [][]interface{} {
	rows := make([][]interface{}, 0, len(list))
	for _, r := range list {
		rows = append(rows, []interface{}{
			r.ID, r.CadreID, cellValue(r.TraineeName), cellValue(r.Hours), cellValue(r.Score),
		})
	}
	return rows
}

func deductionRows(list []model.Deduction) [][]interface{} {
	rows := make([][]interface{}, 0, len(list))
	for _, r := range list {
		rows = append(rows, []interface{}{
			r.ID, r.CadreID, cellValue(r.Score), cellValue(r.Reason),
		})
	}
	return rows
}

func summaryRows(list []CadreSummary) [][]interface{} {
	rows := make([][]interface{}, 0, len(list))
	for _, s := range list {
		rows = append(rows, []interface{}{
			s.Cadre.ID, s.Cadre.Name, cellValue(s.Cadre.Department),
			s.Competition, s.Contribution, s.Training, s.Cadre.EquipmentScore, s.Deduction, s.Total,
		})
	}
	return rows
}
