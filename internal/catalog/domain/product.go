// Package domain 包含商品目录的领域模型。
package domain

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product 商品实体
type Product struct {
	gorm.Model
	Name        string          `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Slug        string          `gorm:"column:slug;type:varchar(255);uniqueIndex;not null" json:"slug"`
	Description string          `gorm:"column:description;type:text" json:"description"`
	Price       decimal.Decimal `gorm:"column:price;type:decimal(12,2);not null" json:"price"`
	Stock       int             `gorm:"column:stock;not null;default:0" json:"stock"`
	Category    string          `gorm:"column:category;type:varchar(100);index" json:"category"`
}

func (Product) TableName() string { return "products" }

// InStock 是否有足够库存
func (p *Product) InStock(qty int) bool { return p.Stock >= qty }

// ProductRepository 商品仓储接口
type ProductRepository interface {
	Save(ctx context.Context, product *Product) error
	GetByID(ctx context.Context, id uint) (*Product, error)
	GetBySlug(ctx context.Context, slug string) (*Product, error)
	List(ctx context.Context, category string, limit, offset int) ([]*Product, int64, error)
}
