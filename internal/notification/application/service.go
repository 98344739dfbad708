package application

import (
	"context"
	"fmt"

	"github.com/wyfcoding/storefront/internal/notification/domain"
	orderdomain "github.com/wyfcoding/storefront/internal/order/domain"
)

// NotificationService 订单通知服务
type NotificationService struct {
	repo domain.NotificationRepository
}

// NewNotificationService 构造函数
func NewNotificationService(repo domain.NotificationRepository) *NotificationService {
	return &NotificationService{repo: repo}
}

// RecordOrderConfirmation 为一笔新订单记录确认通知。
func (s *NotificationService) RecordOrderConfirmation(ctx context.Context, event orderdomain.OrderPlacedEvent) error {
	n := &domain.Notification{
		UserID:  event.UserID,
		OrderNo: event.OrderNo,
		Channel: "EMAIL",
		Subject: fmt.Sprintf("Order %s confirmed", event.OrderNo),
		Body:    fmt.Sprintf("Your order %s totalling %s has been placed.", event.OrderNo, event.TotalPrice),
	}
	return s.repo.Save(ctx, n)
}

// ListByUser 列出用户的通知
func (s *NotificationService) ListByUser(ctx context.Context, userID uint, limit, offset int) ([]*domain.Notification, error) {
	return s.repo.ListByUser(ctx, userID, limit, offset)
}
