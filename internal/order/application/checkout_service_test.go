package application

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cartdomain "github.com/wyfcoding/storefront/internal/cart/domain"
	cartmysql "github.com/wyfcoding/storefront/internal/cart/infrastructure/persistence/mysql"
	"github.com/wyfcoding/storefront/internal/order/domain"
	ordermysql "github.com/wyfcoding/storefront/internal/order/infrastructure/persistence/mysql"
	userdomain "github.com/wyfcoding/storefront/internal/user/domain"
	usermysql "github.com/wyfcoding/storefront/internal/user/infrastructure/persistence/mysql"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&userdomain.User{},
		&cartdomain.Cart{},
		&cartdomain.CartItem{},
		&ordermysql.OrderModel{},
		&ordermysql.OrderItemModel{},
	))
	return db
}

func newTestCheckout(db *gorm.DB) *CheckoutService {
	return NewCheckoutService(
		db,
		ordermysql.NewOrderRepository(db),
		cartmysql.NewCartRepository(db),
		usermysql.NewUserRepository(db),
		nil,
	)
}

// assertMoney 断言落库金额与期望的两位小数值相等。
// SQLite 的列亲和性可能把 "30.00" 存成 30，所以先归一化再比较。
func assertMoney(t *testing.T, want, got string) {
	t.Helper()
	d, err := decimal.NewFromString(got)
	require.NoError(t, err)
	assert.Equal(t, want, d.StringFixed(2))
}

func seedUser(t *testing.T, db *gorm.DB, withAddress, withPayment bool) *userdomain.User {
	t.Helper()
	user := userdomain.NewUser("Jane Doe", "jane@example.com", "$2a$10$hash")
	if withAddress {
		user.Address = &userdomain.Address{
			FullName:      "Jane Doe",
			StreetAddress: "123 Main St",
			City:          "Anytown",
			PostalCode:    "12345",
			Country:       "US",
		}
	}
	if withPayment {
		user.PaymentMethod = userdomain.PaymentMethodPayPal
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedCart(t *testing.T, db *gorm.DB, userID uint) *cartdomain.Cart {
	t.Helper()
	cart := &cartdomain.Cart{UserID: userID}
	cart.AddItem(10, "Polo Shirt", 2, decimal.NewFromFloat(59.99))
	cart.AddItem(11, "Oxford Shirt", 1, decimal.NewFromFloat(79.99))
	require.NoError(t, db.Create(cart).Error)
	return cart
}

func TestPlaceOrder_Unauthenticated(t *testing.T) {
	svc := newTestCheckout(newTestDB(t))

	result := svc.PlaceOrder(context.Background(), 0)

	assert.Equal(t, OutcomeFailure, result.Kind)
	assert.Contains(t, result.Message, "not authenticated")
}

func TestPlaceOrder_EmptyCart_RedirectsToCart(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, true, true)
	svc := newTestCheckout(db)

	result := svc.PlaceOrder(context.Background(), user.ID)

	assert.Equal(t, OutcomeRedirect, result.Kind)
	assert.Equal(t, CartPath, result.RedirectPath)

	var count int64
	require.NoError(t, db.Model(&ordermysql.OrderModel{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestPlaceOrder_MissingAddress_RedirectsToShippingAddress(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, false, true)
	seedCart(t, db, user.ID)
	svc := newTestCheckout(db)

	result := svc.PlaceOrder(context.Background(), user.ID)

	assert.Equal(t, OutcomeRedirect, result.Kind)
	assert.Equal(t, ShippingAddressPath, result.RedirectPath)
}

func TestPlaceOrder_MissingPaymentMethod_RedirectsToPaymentMethod(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, true, false)
	seedCart(t, db, user.ID)
	svc := newTestCheckout(db)

	result := svc.PlaceOrder(context.Background(), user.ID)

	assert.Equal(t, OutcomeRedirect, result.Kind)
	assert.Equal(t, PaymentMethodPath, result.RedirectPath)
}

func TestPlaceOrder_Success(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, true, true)
	cart := seedCart(t, db, user.ID)
	svc := newTestCheckout(db)

	result := svc.PlaceOrder(context.Background(), user.ID)

	require.Equal(t, OutcomeRedirect, result.Kind)
	require.NotZero(t, result.OrderID)
	assert.Equal(t, fmt.Sprintf("/order/%d", result.OrderID), result.RedirectPath)

	// 订单落库，金额为购物车快照，固定两位小数
	var order ordermysql.OrderModel
	require.NoError(t, db.First(&order, result.OrderID).Error)
	assert.Equal(t, user.ID, order.UserID)
	assert.Equal(t, "PAYPAL", order.PaymentMethod)
	assertMoney(t, "199.97", order.ItemsPrice)
	assertMoney(t, "0.00", order.ShippingPrice)
	assertMoney(t, "30.00", order.TaxPrice)
	assertMoney(t, "229.97", order.TotalPrice)

	var items []ordermysql.OrderItemModel
	require.NoError(t, db.Where("order_id = ?", order.ID).Order("id asc").Find(&items).Error)
	require.Len(t, items, 2)
	assertMoney(t, "59.99", items[0].Price)
	assert.Equal(t, 2, items[0].Quantity)
	assertMoney(t, "79.99", items[1].Price)

	// 购物车清空，金额归零
	var reloaded cartdomain.Cart
	require.NoError(t, db.Preload("Items").First(&reloaded, cart.ID).Error)
	assert.Empty(t, reloaded.Items)
	assert.Equal(t, "0.00", reloaded.ItemsPrice.StringFixed(2))
	assert.Equal(t, "0.00", reloaded.TotalPrice.StringFixed(2))
}

// failingOrderRepository 在第 N 次插入条目时失败，用于验证事务回滚。
type failingOrderRepository struct {
	domain.OrderRepository
	failOn int
	calls  int
}

func (f *failingOrderRepository) InsertItem(ctx context.Context, item *domain.OrderItem) error {
	f.calls++
	if f.calls >= f.failOn {
		return errors.New("simulated insert failure")
	}
	return f.OrderRepository.InsertItem(ctx, item)
}

func TestPlaceOrder_ItemInsertFailure_RollsBackEverything(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, true, true)
	cart := seedCart(t, db, user.ID)

	svc := NewCheckoutService(
		db,
		&failingOrderRepository{OrderRepository: ordermysql.NewOrderRepository(db), failOn: 2},
		cartmysql.NewCartRepository(db),
		usermysql.NewUserRepository(db),
		nil,
	)

	result := svc.PlaceOrder(context.Background(), user.ID)

	require.Equal(t, OutcomeFailure, result.Kind)
	assert.Contains(t, result.Message, "simulated insert failure")

	// 订单与条目都不应存在
	var orderCount, itemCount int64
	require.NoError(t, db.Model(&ordermysql.OrderModel{}).Count(&orderCount).Error)
	require.NoError(t, db.Model(&ordermysql.OrderItemModel{}).Count(&itemCount).Error)
	assert.Zero(t, orderCount)
	assert.Zero(t, itemCount)

	// 购物车保持原样
	var reloaded cartdomain.Cart
	require.NoError(t, db.Preload("Items").First(&reloaded, cart.ID).Error)
	assert.Len(t, reloaded.Items, 2)
	assert.Equal(t, "199.97", reloaded.ItemsPrice.StringFixed(2))
	assert.Equal(t, "229.97", reloaded.TotalPrice.StringFixed(2))
}
