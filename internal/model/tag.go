package model

// Tag 标签模型，静态参考数据
type Tag struct {
	ID    int64  `gorm:"primaryKey;autoIncrement;comment:标签ID" json:"id"`
	Name  string `gorm:"size:100;not null;uniqueIndex;comment:标签名称" json:"name"`
	Color string `gorm:"size:7;not null;comment:十六进制颜色" json:"color"`
	Slug  string `gorm:"size:50;not null;uniqueIndex;comment:标签别名" json:"slug"`
}

func (Tag) TableName() string {
	return "tags"
}
