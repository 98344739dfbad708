package consumer

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/segmentio/kafka-go"
	"github.com/wyfcoding/storefront/internal/notification/application"
	orderdomain "github.com/wyfcoding/storefront/internal/order/domain"
)

// OrderPlacedHandler 消费 order.placed 事件并记录订单确认通知。
type OrderPlacedHandler struct {
	svc    *application.NotificationService
	logger *slog.Logger
}

func NewOrderPlacedHandler(svc *application.NotificationService, logger *slog.Logger) *OrderPlacedHandler {
	return &OrderPlacedHandler{svc: svc, logger: logger}
}

func (h *OrderPlacedHandler) Handle(ctx context.Context, msg kafka.Message) error {
	var event orderdomain.OrderPlacedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		h.logger.ErrorContext(ctx, "failed to unmarshal order placed event", "error", err)
		return err
	}

	if err := h.svc.RecordOrderConfirmation(ctx, event); err != nil {
		h.logger.ErrorContext(ctx, "failed to record order confirmation", "order_no", event.OrderNo, "error", err)
		return err
	}

	h.logger.InfoContext(ctx, "order confirmation recorded", "order_no", event.OrderNo, "user_id", event.UserID)
	return nil
}
