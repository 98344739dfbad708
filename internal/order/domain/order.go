// Package domain 包含订单的领域模型。
package domain

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	userdomain "github.com/wyfcoding/storefront/internal/user/domain"
)

// Order 订单实体。
// 创建时从购物车和用户档案整体拷贝，之后金额与条目不再变更。
type Order struct {
	gorm.Model
	OrderNo         string                   `gorm:"column:order_no;type:varchar(32);uniqueIndex;not null" json:"order_no"`
	UserID          uint                     `gorm:"column:user_id;index;not null" json:"user_id"`
	ShippingAddress userdomain.Address       `gorm:"column:shipping_address;type:json;serializer:json" json:"shipping_address"`
	PaymentMethod   userdomain.PaymentMethod `gorm:"column:payment_method;type:varchar(20);not null" json:"payment_method"`
	ItemsPrice      decimal.Decimal          `gorm:"column:items_price;type:decimal(12,2);not null" json:"items_price"`
	ShippingPrice   decimal.Decimal          `gorm:"column:shipping_price;type:decimal(12,2);not null" json:"shipping_price"`
	TaxPrice        decimal.Decimal          `gorm:"column:tax_price;type:decimal(12,2);not null" json:"tax_price"`
	TotalPrice      decimal.Decimal          `gorm:"column:total_price;type:decimal(12,2);not null" json:"total_price"`
	Items           []OrderItem              `gorm:"foreignKey:OrderID" json:"items"`
}

func (Order) TableName() string { return "orders" }

// OrderItem 订单条目，价格是下单时刻的快照，固定两位小数。
type OrderItem struct {
	gorm.Model
	OrderID   uint            `gorm:"column:order_id;index;not null" json:"order_id"`
	ProductID uint            `gorm:"column:product_id;not null" json:"product_id"`
	Name      string          `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Quantity  int             `gorm:"column:quantity;not null" json:"quantity"`
	Price     decimal.Decimal `gorm:"column:price;type:decimal(12,2);not null" json:"price"`
}

func (OrderItem) TableName() string { return "order_items" }

// BuyerProjection 订单归属用户的姓名/邮箱投影
type BuyerProjection struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// OrderDetail 订单详情聚合：订单、条目、归属用户投影。
type OrderDetail struct {
	Order *Order           `json:"order"`
	Buyer *BuyerProjection `json:"buyer"`
}

// OrderRepository 订单仓储接口。
// Insert/InsertItem 在结账事务内调用，必须尊重上下文中携带的事务。
type OrderRepository interface {
	Insert(ctx context.Context, order *Order) error
	InsertItem(ctx context.Context, item *OrderItem) error
	GetDetail(ctx context.Context, orderID uint) (*OrderDetail, error)
	ListByUser(ctx context.Context, userID uint, limit, offset int) ([]*Order, int64, error)
}
