// Package domain 包含购物车的领域模型。
package domain

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// 购物车金额规则：订单满 100 免运费，否则收取固定运费；税率 15%。
var (
	freeShippingThreshold = decimal.NewFromInt(100)
	flatShippingPrice     = decimal.NewFromInt(10)
	taxRate               = decimal.NewFromFloat(0.15)
)

// Cart 购物车聚合。
// 金额字段是下单时刻的快照来源，结账流程只读取、不重算。
type Cart struct {
	gorm.Model
	UserID        uint            `gorm:"column:user_id;uniqueIndex;not null" json:"user_id"`
	Items         []CartItem      `gorm:"foreignKey:CartID" json:"items"`
	ItemsPrice    decimal.Decimal `gorm:"column:items_price;type:decimal(12,2);not null" json:"items_price"`
	ShippingPrice decimal.Decimal `gorm:"column:shipping_price;type:decimal(12,2);not null" json:"shipping_price"`
	TaxPrice      decimal.Decimal `gorm:"column:tax_price;type:decimal(12,2);not null" json:"tax_price"`
	TotalPrice    decimal.Decimal `gorm:"column:total_price;type:decimal(12,2);not null" json:"total_price"`
}

func (Cart) TableName() string { return "carts" }

// CartItem 购物车条目，单价为加入时刻的商品价格。
type CartItem struct {
	gorm.Model
	CartID    uint            `gorm:"column:cart_id;index;not null" json:"cart_id"`
	ProductID uint            `gorm:"column:product_id;not null" json:"product_id"`
	Name      string          `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Quantity  int             `gorm:"column:quantity;not null" json:"quantity"`
	Price     decimal.Decimal `gorm:"column:price;type:decimal(12,2);not null" json:"price"`
}

func (CartItem) TableName() string { return "cart_items" }

// IsEmpty 是否为空车
func (c *Cart) IsEmpty() bool { return len(c.Items) == 0 }

// AddItem 加入商品；同一商品合并数量，单价保留首次加入时的值。
func (c *Cart) AddItem(productID uint, name string, qty int, price decimal.Decimal) {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity += qty
			c.Recalculate()
			return
		}
	}
	c.Items = append(c.Items, CartItem{ProductID: productID, Name: name, Quantity: qty, Price: price})
	c.Recalculate()
}

// RemoveItem 移除商品
func (c *Cart) RemoveItem(productID uint) {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			c.Recalculate()
			return
		}
	}
}

// Recalculate 按当前条目重算四项金额，全部保留两位小数。
func (c *Cart) Recalculate() {
	items := decimal.Zero
	for _, item := range c.Items {
		items = items.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	c.ItemsPrice = items.Round(2)

	if len(c.Items) == 0 {
		c.ShippingPrice = decimal.Zero.Round(2)
	} else if items.GreaterThanOrEqual(freeShippingThreshold) {
		c.ShippingPrice = decimal.Zero.Round(2)
	} else {
		c.ShippingPrice = flatShippingPrice.Round(2)
	}

	c.TaxPrice = items.Mul(taxRate).Round(2)
	c.TotalPrice = c.ItemsPrice.Add(c.ShippingPrice).Add(c.TaxPrice).Round(2)
}

// Clear 清空条目并将金额全部归零
func (c *Cart) Clear() {
	c.Items = nil
	c.Recalculate()
}
