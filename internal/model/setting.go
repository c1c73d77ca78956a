package model

const (
	// SettingAdminPassword 管理员密码的设置键
	SettingAdminPassword = "adminPassword"
	// DefaultAdminPassword 首次初始化写入的默认密码
	DefaultAdminPassword = "123456"
)

// Setting 键值设置表，对应 settings
type Setting struct {
	Key   string  `gorm:"column:key;primaryKey" json:"key"`
	Value *string `gorm:"column:value"          json:"value"`
}

// TableName 指定表名
func (Setting) TableName() string { return "settings" }
