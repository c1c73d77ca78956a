package model

// 子记录均以 CadreID 关联干部，ID 为数据库自增主键。
// 可空列使用指针类型，导出时原样保留 null。

// Competition 比赛成绩表，对应 competitions
type Competition struct {
	ID      int64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	CadreID string   `gorm:"column:cadreId;not null"            json:"cadreId" binding:"required"`
	Name    *string  `gorm:"column:name"                        json:"name"`
	Level   *string  `gorm:"column:level"                       json:"level"`
	Award   *string  `gorm:"column:award"                       json:"award"`
	Score   *float64 `gorm:"column:score"                       json:"score"`
}

// TableName 指定表名
func (Competition) TableName() string { return "competitions" }

// RecordID 记录主键
func (r Competition) RecordID() int64 { return r.ID }

// Contribution 协会贡献表，对应 contributions
type Contribution struct {
	ID         int64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	CadreID    string   `gorm:"column:cadreId;not null"            json:"cadreId" binding:"required"`
	Type       *string  `gorm:"column:type"                        json:"type"`
	// Count 列为 INTEGER 亲和，旧数据中可能存有小数
	Count      *float64 `gorm:"column:count"                       json:"count"`
	TotalScore *float64 `gorm:"column:totalScore"                  json:"totalScore"`
}

// TableName 指定表名
func (Contribution) TableName() string { return "contributions" }

func (r Contribution) RecordID() int64 { return r.ID }

// Training 新生指导表，对应 trainings
type Training struct {
	ID          int64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	CadreID     string   `gorm:"column:cadreId;not null"            json:"cadreId" binding:"required"`
	TraineeName *string  `gorm:"column:traineeName"                 json:"traineeName"`
	Hours       *float64 `gorm:"column:hours"                       json:"hours"`
	Score       *float64 `gorm:"column:score"                       json:"score"`
}

// TableName 指定表名
func (Training) TableName() string { return "trainings" }

func (r Training) RecordID() int64 { return r.ID }

// Deduction 职责扣分表，对应 deductions
type Deduction struct {
	ID      int64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	CadreID string   `gorm:"column:cadreId;not null"            json:"cadreId" binding:"required"`
	Score   *float64 `gorm:"column:score"                       json:"score"`
	Reason  *string  `gorm:"column:reason"                      json:"reason"`
}

// TableName 指定表名
func (Deduction) TableName() string { return "deductions" }

func (r Deduction) RecordID() int64 { return r.ID }

// ChildTables 子记录表名，顺序即清空时的删除顺序
var ChildTables = []string{"deductions", "trainings", "contributions", "competitions"}
