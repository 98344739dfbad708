package domain

import "context"

// CartRepository 购物车仓储接口。
// Reset 在结账事务内调用，必须尊重上下文中携带的事务。
type CartRepository interface {
	GetByUserID(ctx context.Context, userID uint) (*Cart, error)
	Save(ctx context.Context, cart *Cart) error
	DeleteItem(ctx context.Context, cartID, productID uint) error
	Reset(ctx context.Context, cartID uint) error
}
