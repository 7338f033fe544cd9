package model

import "time"

// Subscribe 订阅关系模型，(user, author) 唯一
// 不允许订阅自己，在服务层校验
type Subscribe struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;comment:订阅记录ID" json:"id"`
	UserID    int64     `gorm:"not null;uniqueIndex:uq_user_author_subscribe;index:idx_subscribes_user_id;comment:订阅者ID" json:"user_id"`
	AuthorID  int64     `gorm:"not null;uniqueIndex:uq_user_author_subscribe;index:idx_subscribes_author_id;comment:作者ID" json:"author_id"`
	CreatedAt time.Time `gorm:"autoCreateTime;comment:订阅时间" json:"created_at"`
}

func (Subscribe) TableName() string {
	return "subscribes"
}
