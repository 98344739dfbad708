// Package mysql 提供购物车仓储接口的 MySQL GORM 实现。
package mysql

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/wyfcoding/pkg/contextx"
	"github.com/wyfcoding/pkg/logging"
	"github.com/wyfcoding/storefront/internal/cart/domain"
	"gorm.io/gorm"
)

type cartRepositoryImpl struct {
	db *gorm.DB
}

// NewCartRepository 创建购物车仓储实例
func NewCartRepository(db *gorm.DB) domain.CartRepository {
	return &cartRepositoryImpl{db: db}
}

func (r *cartRepositoryImpl) dbWithCtx(ctx context.Context) *gorm.DB {
	if tx, ok := contextx.GetTx(ctx).(*gorm.DB); ok {
		return tx.WithContext(ctx)
	}
	return r.db.WithContext(ctx)
}

// GetByUserID 取用户购物车；不存在时返回 (nil, nil)。
func (r *cartRepositoryImpl) GetByUserID(ctx context.Context, userID uint) (*domain.Cart, error) {
	var cart domain.Cart
	err := r.dbWithCtx(ctx).Preload("Items").Where("user_id = ?", userID).First(&cart).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		logging.Error(ctx, "cart_repository.get_by_user_id failed", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}
	return &cart, nil
}

func (r *cartRepositoryImpl) Save(ctx context.Context, cart *domain.Cart) error {
	err := r.dbWithCtx(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(cart).Error
	if err != nil {
		logging.Error(ctx, "cart_repository.save failed", "user_id", cart.UserID, "error", err)
		return fmt.Errorf("failed to save cart: %w", err)
	}
	return nil
}

// DeleteItem 删除单个商品条目。
func (r *cartRepositoryImpl) DeleteItem(ctx context.Context, cartID, productID uint) error {
	err := r.dbWithCtx(ctx).Where("cart_id = ? AND product_id = ?", cartID, productID).Delete(&domain.CartItem{}).Error
	if err != nil {
		logging.Error(ctx, "cart_repository.delete_item failed", "cart_id", cartID, "product_id", productID, "error", err)
		return fmt.Errorf("failed to delete cart item: %w", err)
	}
	return nil
}

// Reset 删除全部条目并把四项金额归零。
// 结账事务通过上下文把 *gorm.DB 事务句柄传进来，保证与订单写入同生共死。
func (r *cartRepositoryImpl) Reset(ctx context.Context, cartID uint) error {
	db := r.dbWithCtx(ctx)

	if err := db.Where("cart_id = ?", cartID).Delete(&domain.CartItem{}).Error; err != nil {
		logging.Error(ctx, "cart_repository.reset failed", "cart_id", cartID, "error", err)
		return fmt.Errorf("failed to clear cart items: %w", err)
	}

	zero := decimal.Zero.StringFixed(2)
	err := db.Model(&domain.Cart{}).Where("id = ?", cartID).Updates(map[string]any{
		"items_price":    zero,
		"shipping_price": zero,
		"tax_price":      zero,
		"total_price":    zero,
	}).Error
	if err != nil {
		logging.Error(ctx, "cart_repository.reset failed", "cart_id", cartID, "error", err)
		return fmt.Errorf("failed to reset cart totals: %w", err)
	}
	return nil
}
