package application

import (
	"time"

	"github.com/wyfcoding/storefront/internal/order/domain"
)

// OrderItemDTO 订单条目视图
type OrderItemDTO struct {
	ProductID uint   `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	Price     string `json:"price"`
}

// OrderDTO 订单视图，金额统一输出两位小数字符串。
type OrderDTO struct {
	ID            uint           `json:"id"`
	OrderNo       string         `json:"order_no"`
	UserID        uint           `json:"user_id"`
	PaymentMethod string         `json:"payment_method"`
	ItemsPrice    string         `json:"items_price"`
	ShippingPrice string         `json:"shipping_price"`
	TaxPrice      string         `json:"tax_price"`
	TotalPrice    string         `json:"total_price"`
	Items         []OrderItemDTO `json:"items,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
}

// OrderDetailDTO 订单详情视图：订单 + 归属用户投影。
type OrderDetailDTO struct {
	OrderDTO
	ShippingAddress any    `json:"shipping_address"`
	BuyerName       string `json:"buyer_name"`
	BuyerEmail      string `json:"buyer_email"`
}

// MyOrdersPage 我的订单分页结果
type MyOrdersPage struct {
	Orders     []*OrderDTO `json:"orders"`
	Page       int         `json:"page"`
	TotalPages int64       `json:"total_pages"`
}

func toOrderDTO(o *domain.Order) *OrderDTO {
	dto := &OrderDTO{
		ID:            o.ID,
		OrderNo:       o.OrderNo,
		UserID:        o.UserID,
		PaymentMethod: string(o.PaymentMethod),
		ItemsPrice:    o.ItemsPrice.StringFixed(2),
		ShippingPrice: o.ShippingPrice.StringFixed(2),
		TaxPrice:      o.TaxPrice.StringFixed(2),
		TotalPrice:    o.TotalPrice.StringFixed(2),
		CreatedAt:     o.CreatedAt,
	}
	for _, item := range o.Items {
		dto.Items = append(dto.Items, OrderItemDTO{
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			Price:     item.Price.StringFixed(2),
		})
	}
	return dto
}

func toOrderDTOs(orders []*domain.Order) []*OrderDTO {
	dtos := make([]*OrderDTO, len(orders))
	for i, o := range orders {
		dtos[i] = toOrderDTO(o)
	}
	return dtos
}

func toOrderDetailDTO(detail *domain.OrderDetail) *OrderDetailDTO {
	dto := &OrderDetailDTO{
		OrderDTO:        *toOrderDTO(detail.Order),
		ShippingAddress: detail.Order.ShippingAddress,
	}
	if detail.Buyer != nil {
		dto.BuyerName = detail.Buyer.Name
		dto.BuyerEmail = detail.Buyer.Email
	}
	return dto
}
