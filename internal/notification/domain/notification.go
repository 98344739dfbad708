// Package domain 包含订单通知的领域模型。
package domain

import (
	"context"

	"gorm.io/gorm"
)

// Notification 订单确认通知记录
type Notification struct {
	gorm.Model
	UserID  uint   `gorm:"column:user_id;index;not null" json:"user_id"`
	OrderNo string `gorm:"column:order_no;type:varchar(32);index;not null" json:"order_no"`
	Channel string `gorm:"column:channel;type:varchar(20);not null" json:"channel"`
	Subject string `gorm:"column:subject;type:varchar(255);not null" json:"subject"`
	Body    string `gorm:"column:body;type:text" json:"body"`
}

func (Notification) TableName() string { return "notifications" }

// NotificationRepository 通知仓储接口
type NotificationRepository interface {
	Save(ctx context.Context, n *Notification) error
	ListByUser(ctx context.Context, userID uint, limit, offset int) ([]*Notification, error)
}
