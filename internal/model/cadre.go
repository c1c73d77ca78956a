package model

// DefaultEquipmentScore 未提供装备分时使用的默认值
const DefaultEquipmentScore float64 = 0

// Cadre 干部表，对应 cadres
// ID 由客户端分配，是所有子记录的关联键
type Cadre struct {
	ID             string  `gorm:"column:id;primaryKey"      json:"id"             binding:"required"`
	Name           string  `gorm:"column:name;not null"      json:"name"           binding:"required"`
	Department     *string `gorm:"column:department"         json:"department"`
	Position       *string `gorm:"column:position"           json:"position"`
	Major          *string `gorm:"column:major"              json:"major"`
	Class          *string `gorm:"column:class"              json:"class"`
	Grade          *string `gorm:"column:grade"              json:"grade"`
	EquipmentScore float64 `gorm:"column:equipmentScore"     json:"equipmentScore"`
}

// TableName 指定表名
func (Cadre) TableName() string { return "cadres" }
