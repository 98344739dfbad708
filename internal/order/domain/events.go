package domain

import (
	"context"
	"time"
)

// OrderPlacedEventType 下单成功事件主题
const OrderPlacedEventType = "order.placed"

// OrderPlacedItem 事件中的订单条目快照
type OrderPlacedItem struct {
	ProductID uint   `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	Price     string `json:"price"`
}

// OrderPlacedEvent 下单成功事件，随订单写入同一事务落入 outbox。
type OrderPlacedEvent struct {
	OrderID    uint              `json:"order_id"`
	OrderNo    string            `json:"order_no"`
	UserID     uint              `json:"user_id"`
	TotalPrice string            `json:"total_price"`
	Items      []OrderPlacedItem `json:"items"`
	Timestamp  time.Time         `json:"timestamp"`
}

// EventPublisher 订单事件发布接口
type EventPublisher interface {
	Publish(ctx context.Context, topic string, key string, event any) error
	PublishInTx(ctx context.Context, tx any, topic string, key string, event any) error
}
