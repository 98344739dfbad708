package application

import (
	"context"

	"github.com/wyfcoding/storefront/internal/cart/domain"
)

// CartQueryService 购物车查询服务
type CartQueryService struct {
	repo domain.CartRepository
}

// NewCartQueryService 创建购物车查询服务实例
func NewCartQueryService(repo domain.CartRepository) *CartQueryService {
	return &CartQueryService{repo: repo}
}

// GetCart 根据用户 ID 获取购物车；从未建车的用户得到一个空车。
func (s *CartQueryService) GetCart(ctx context.Context, userID uint) (*domain.Cart, error) {
	cart, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		cart = &domain.Cart{UserID: userID}
		cart.Recalculate()
	}
	return cart, nil
}

// GetItemCount 获取购物车商品条目数
func (s *CartQueryService) GetItemCount(ctx context.Context, userID uint) (int, error) {
	cart, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return 0, err
	}
	if cart == nil {
		return 0, nil
	}
	return len(cart.Items), nil
}
