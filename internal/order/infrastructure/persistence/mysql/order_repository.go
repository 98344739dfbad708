// Package mysql 提供订单仓储接口的 MySQL GORM 实现。
package mysql

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/wyfcoding/pkg/contextx"
	"github.com/wyfcoding/pkg/logging"
	"github.com/wyfcoding/storefront/internal/order/domain"
	userdomain "github.com/wyfcoding/storefront/internal/user/domain"
	"gorm.io/gorm"
)

// OrderModel 订单数据库模型，直接映射 orders 表。
// 金额以定点小数字符串落库，不经过浮点。
type OrderModel struct {
	gorm.Model
	OrderNo         string             `gorm:"column:order_no;type:varchar(32);uniqueIndex;not null"`
	UserID          uint               `gorm:"column:user_id;index;not null"`
	ShippingAddress userdomain.Address `gorm:"column:shipping_address;type:json;serializer:json"`
	PaymentMethod   string             `gorm:"column:payment_method;type:varchar(20);not null"`
	ItemsPrice      string             `gorm:"column:items_price;type:decimal(12,2);not null"`
	ShippingPrice   string             `gorm:"column:shipping_price;type:decimal(12,2);not null"`
	TaxPrice        string             `gorm:"column:tax_price;type:decimal(12,2);not null"`
	TotalPrice      string             `gorm:"column:total_price;type:decimal(12,2);not null"`
}

// TableName 指定表名
func (OrderModel) TableName() string { return "orders" }

// OrderItemModel 订单条目数据库模型，直接映射 order_items 表。
type OrderItemModel struct {
	gorm.Model
	OrderID   uint   `gorm:"column:order_id;index;not null"`
	ProductID uint   `gorm:"column:product_id;not null"`
	Name      string `gorm:"column:name;type:varchar(255);not null"`
	Quantity  int    `gorm:"column:quantity;not null"`
	Price     string `gorm:"column:price;type:decimal(12,2);not null"`
}

// TableName 指定表名
func (OrderItemModel) TableName() string { return "order_items" }

type orderRepositoryImpl struct {
	db *gorm.DB
}

// NewOrderRepository 创建订单仓储实例
func NewOrderRepository(db *gorm.DB) domain.OrderRepository {
	return &orderRepositoryImpl{db: db}
}

func (r *orderRepositoryImpl) dbWithCtx(ctx context.Context) *gorm.DB {
	if tx, ok := contextx.GetTx(ctx).(*gorm.DB); ok {
		return tx.WithContext(ctx)
	}
	return r.db.WithContext(ctx)
}

// Insert 实现 domain.OrderRepository.Insert
func (r *orderRepositoryImpl) Insert(ctx context.Context, order *domain.Order) error {
	model := toOrderModel(order)
	if err := r.dbWithCtx(ctx).Create(model).Error; err != nil {
		logging.Error(ctx, "order_repository.insert failed", "order_no", order.OrderNo, "error", err)
		return fmt.Errorf("failed to insert order: %w", err)
	}
	order.Model = model.Model
	return nil
}

// InsertItem 实现 domain.OrderRepository.InsertItem
func (r *orderRepositoryImpl) InsertItem(ctx context.Context, item *domain.OrderItem) error {
	model := toOrderItemModel(item)
	if err := r.dbWithCtx(ctx).Create(model).Error; err != nil {
		logging.Error(ctx, "order_repository.insert_item failed", "order_id", item.OrderID, "error", err)
		return fmt.Errorf("failed to insert order item: %w", err)
	}
	item.Model = model.Model
	return nil
}

// GetDetail 实现 domain.OrderRepository.GetDetail
func (r *orderRepositoryImpl) GetDetail(ctx context.Context, orderID uint) (*domain.OrderDetail, error) {
	db := r.dbWithCtx(ctx)

	var model OrderModel
	if err := db.First(&model, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		logging.Error(ctx, "order_repository.get_detail failed", "order_id", orderID, "error", err)
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	var itemModels []OrderItemModel
	if err := db.Where("order_id = ?", orderID).Order("id asc").Find(&itemModels).Error; err != nil {
		logging.Error(ctx, "order_repository.get_detail failed", "order_id", orderID, "error", err)
		return nil, fmt.Errorf("failed to get order items: %w", err)
	}

	order := toDomainOrder(&model)
	order.Items = make([]domain.OrderItem, len(itemModels))
	for i := range itemModels {
		order.Items[i] = *toDomainOrderItem(&itemModels[i])
	}

	detail := &domain.OrderDetail{Order: order}

	var buyer domain.BuyerProjection
	err := db.Table("users").Select("name", "email").Where("id = ?", model.UserID).Take(&buyer).Error
	if err == nil {
		detail.Buyer = &buyer
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to get order buyer: %w", err)
	}

	return detail, nil
}

// ListByUser 实现 domain.OrderRepository.ListByUser
func (r *orderRepositoryImpl) ListByUser(ctx context.Context, userID uint, limit, offset int) ([]*domain.Order, int64, error) {
	var models []OrderModel
	var total int64
	db := r.dbWithCtx(ctx).Model(&OrderModel{}).Where("user_id = ?", userID)
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := db.Order("created_at desc").Limit(limit).Offset(offset).Find(&models).Error; err != nil {
		logging.Error(ctx, "order_repository.list_by_user failed", "user_id", userID, "error", err)
		return nil, 0, fmt.Errorf("failed to list orders: %w", err)
	}

	orders := make([]*domain.Order, len(models))
	for i := range models {
		orders[i] = toDomainOrder(&models[i])
	}
	return orders, total, nil
}

func toOrderModel(o *domain.Order) *OrderModel {
	return &OrderModel{
		Model:           o.Model,
		OrderNo:         o.OrderNo,
		UserID:          o.UserID,
		ShippingAddress: o.ShippingAddress,
		PaymentMethod:   string(o.PaymentMethod),
		ItemsPrice:      o.ItemsPrice.StringFixed(2),
		ShippingPrice:   o.ShippingPrice.StringFixed(2),
		TaxPrice:        o.TaxPrice.StringFixed(2),
		TotalPrice:      o.TotalPrice.StringFixed(2),
	}
}

func toOrderItemModel(item *domain.OrderItem) *OrderItemModel {
	return &OrderItemModel{
		Model:     item.Model,
		OrderID:   item.OrderID,
		ProductID: item.ProductID,
		Name:      item.Name,
		Quantity:  item.Quantity,
		Price:     item.Price.StringFixed(2),
	}
}

func toDomainOrder(m *OrderModel) *domain.Order {
	return &domain.Order{
		Model:           m.Model,
		OrderNo:         m.OrderNo,
		UserID:          m.UserID,
		ShippingAddress: m.ShippingAddress,
		PaymentMethod:   userdomain.PaymentMethod(m.PaymentMethod),
		ItemsPrice:      mustDecimal(m.ItemsPrice),
		ShippingPrice:   mustDecimal(m.ShippingPrice),
		TaxPrice:        mustDecimal(m.TaxPrice),
		TotalPrice:      mustDecimal(m.TotalPrice),
	}
}

func toDomainOrderItem(m *OrderItemModel) *domain.OrderItem {
	return &domain.OrderItem{
		Model:     m.Model,
		OrderID:   m.OrderID,
		ProductID: m.ProductID,
		Name:      m.Name,
		Quantity:  m.Quantity,
		Price:     mustDecimal(m.Price),
	}
}

func mustDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
