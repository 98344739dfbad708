// Package mysql 提供通知仓储接口的 MySQL GORM 实现。
package mysql

import (
	"context"
	"fmt"

	"github.com/wyfcoding/pkg/logging"
	"github.com/wyfcoding/storefront/internal/notification/domain"
	"gorm.io/gorm"
)

type notificationRepositoryImpl struct {
	db *gorm.DB
}

// NewNotificationRepository 创建通知仓储实例
func NewNotificationRepository(db *gorm.DB) domain.NotificationRepository {
	return &notificationRepositoryImpl{db: db}
}

func (r *notificationRepositoryImpl) Save(ctx context.Context, n *domain.Notification) error {
	if err := r.db.WithContext(ctx).Create(n).Error; err != nil {
		logging.Error(ctx, "notification_repository.save failed", "order_no", n.OrderNo, "error", err)
		return fmt.Errorf("failed to save notification: %w", err)
	}
	return nil
}

func (r *notificationRepositoryImpl) ListByUser(ctx context.Context, userID uint, limit, offset int) ([]*domain.Notification, error) {
	var models []domain.Notification
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Limit(limit).Offset(offset).
		Find(&models).Error
	if err != nil {
		logging.Error(ctx, "notification_repository.list_by_user failed", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	notifications := make([]*domain.Notification, len(models))
	for i := range models {
		notifications[i] = &models[i]
	}
	return notifications, nil
}
