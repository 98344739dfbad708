package application

import (
	"context"

	"github.com/wyfcoding/storefront/internal/order/domain"
)

// DefaultPageSize 我的订单默认分页大小
const DefaultPageSize = 10

// OrderQueryService 处理所有订单相关的查询操作（Queries）。
type OrderQueryService struct {
	repo domain.OrderRepository
}

// NewOrderQueryService 构造函数。
func NewOrderQueryService(repo domain.OrderRepository) *OrderQueryService {
	return &OrderQueryService{repo: repo}
}

// GetOrder 获取订单详情（含条目与归属用户投影）；不存在时返回 (nil, nil)。
func (s *OrderQueryService) GetOrder(ctx context.Context, orderID uint) (*OrderDetailDTO, error) {
	detail, err := s.repo.GetDetail(ctx, orderID)
	if err != nil || detail == nil {
		return nil, err
	}
	return toOrderDetailDTO(detail), nil
}

// ListMyOrders 列出调用者自己的订单，按创建时间倒序分页。
// page 从 1 起，pageSize 不合法时取默认值；未认证直接返回错误。
func (s *OrderQueryService) ListMyOrders(ctx context.Context, userID uint, page, pageSize int) (*MyOrdersPage, error) {
	if userID == 0 {
		return nil, ErrNotAuthenticated
	}
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	offset := (page - 1) * pageSize
	orders, total, err := s.repo.ListByUser(ctx, userID, pageSize, offset)
	if err != nil {
		return nil, err
	}

	totalPages := total / int64(pageSize)
	if total%int64(pageSize) != 0 {
		totalPages++
	}

	return &MyOrdersPage{
		Orders:     toOrderDTOs(orders),
		Page:       page,
		TotalPages: totalPages,
	}, nil
}
