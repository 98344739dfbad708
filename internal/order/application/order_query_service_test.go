package application

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wyfcoding/storefront/internal/order/domain"
	"gorm.io/gorm"
)

// fakeOrderRepository 内存订单仓储，记录分页参数并按切片返回。
type fakeOrderRepository struct {
	orders     []*domain.Order
	detail     *domain.OrderDetail
	gotLimit   int
	gotOffset  int
	totalCount int64
}

func (f *fakeOrderRepository) Insert(ctx context.Context, order *domain.Order) error { return nil }
func (f *fakeOrderRepository) InsertItem(ctx context.Context, item *domain.OrderItem) error {
	return nil
}

func (f *fakeOrderRepository) GetDetail(ctx context.Context, orderID uint) (*domain.OrderDetail, error) {
	return f.detail, nil
}

func (f *fakeOrderRepository) ListByUser(ctx context.Context, userID uint, limit, offset int) ([]*domain.Order, int64, error) {
	f.gotLimit = limit
	f.gotOffset = offset
	return f.orders, f.totalCount, nil
}

func makeOrders(n int) []*domain.Order {
	orders := make([]*domain.Order, n)
	for i := range orders {
		orders[i] = &domain.Order{
			Model:      gorm.Model{ID: uint(i + 1)},
			OrderNo:    "ORD-1",
			UserID:     7,
			TotalPrice: decimal.NewFromFloat(229.97),
		}
	}
	return orders
}

func TestListMyOrders_Unauthenticated(t *testing.T) {
	svc := NewOrderQueryService(&fakeOrderRepository{})

	_, err := svc.ListMyOrders(context.Background(), 0, 1, 10)

	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestListMyOrders_LastPartialPage(t *testing.T) {
	repo := &fakeOrderRepository{orders: makeOrders(5), totalCount: 25}
	svc := NewOrderQueryService(repo)

	page, err := svc.ListMyOrders(context.Background(), 7, 3, 10)

	require.NoError(t, err)
	assert.Equal(t, 10, repo.gotLimit)
	assert.Equal(t, 20, repo.gotOffset)
	assert.Equal(t, 3, page.Page)
	assert.Equal(t, int64(3), page.TotalPages)
	assert.Len(t, page.Orders, 5)
	assert.Equal(t, "229.97", page.Orders[0].TotalPrice)
}

func TestListMyOrders_ExactMultipleOfPageSize(t *testing.T) {
	repo := &fakeOrderRepository{orders: makeOrders(10), totalCount: 20}
	svc := NewOrderQueryService(repo)

	page, err := svc.ListMyOrders(context.Background(), 7, 1, 10)

	require.NoError(t, err)
	assert.Equal(t, int64(2), page.TotalPages)
}

func TestListMyOrders_CoercesInvalidPaging(t *testing.T) {
	repo := &fakeOrderRepository{orders: nil, totalCount: 0}
	svc := NewOrderQueryService(repo)

	page, err := svc.ListMyOrders(context.Background(), 7, 0, 0)

	require.NoError(t, err)
	assert.Equal(t, DefaultPageSize, repo.gotLimit)
	assert.Equal(t, 0, repo.gotOffset)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, int64(0), page.TotalPages)
}

func TestGetOrder_NotFoundReturnsNil(t *testing.T) {
	svc := NewOrderQueryService(&fakeOrderRepository{detail: nil})

	dto, err := svc.GetOrder(context.Background(), 999)

	require.NoError(t, err)
	assert.Nil(t, dto)
}

func TestGetOrder_IncludesBuyerProjection(t *testing.T) {
	detail := &domain.OrderDetail{
		Order: &domain.Order{
			Model:      gorm.Model{ID: 42},
			OrderNo:    "ORD-42",
			UserID:     7,
			TotalPrice: decimal.NewFromFloat(229.97),
			Items: []domain.OrderItem{
				{ProductID: 10, Name: "Polo Shirt", Quantity: 2, Price: decimal.NewFromFloat(59.99)},
			},
		},
		Buyer: &domain.BuyerProjection{Name: "Jane Doe", Email: "jane@example.com"},
	}
	svc := NewOrderQueryService(&fakeOrderRepository{detail: detail})

	dto, err := svc.GetOrder(context.Background(), 42)

	require.NoError(t, err)
	require.NotNil(t, dto)
	assert.Equal(t, "Jane Doe", dto.BuyerName)
	assert.Equal(t, "jane@example.com", dto.BuyerEmail)
	require.Len(t, dto.Items, 1)
	assert.Equal(t, "59.99", dto.Items[0].Price)
	assert.Equal(t, "229.97", dto.TotalPrice)
}
