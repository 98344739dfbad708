package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/wyfcoding/pkg/contextx"
	"github.com/wyfcoding/pkg/idgen"
	"github.com/wyfcoding/pkg/logging"
	cartdomain "github.com/wyfcoding/storefront/internal/cart/domain"
	"github.com/wyfcoding/storefront/internal/order/domain"
	userdomain "github.com/wyfcoding/storefront/internal/user/domain"
	"gorm.io/gorm"
)

// 错误定义
var (
	ErrNotAuthenticated = errors.New("user is not authenticated")
	ErrOrderNotCreated  = errors.New("order not created")
)

// orderDraft 订单落库前的结构化校验对象。
// 金额以两位小数字符串参与校验，避免浮点参与任何环节。
type orderDraft struct {
	UserID          uint                `validate:"required"`
	ShippingAddress *userdomain.Address `validate:"required"`
	PaymentMethod   string              `validate:"required"`
	ItemsPrice      string              `validate:"required"`
	ShippingPrice   string              `validate:"required"`
	TaxPrice        string              `validate:"required"`
	TotalPrice      string              `validate:"required"`
}

// CheckoutService 结账服务：把用户购物车原子地转换为一张订单。
//
// 前置检查按固定顺序短路：身份 → 空车 → 收货地址 → 支付方式。
// 前三类未满足都是正常的导航结果而非错误；其余失败统一格式化为
// 失败结果返回，不向外抛出。
type CheckoutService struct {
	db        *gorm.DB
	orders    domain.OrderRepository
	carts     cartdomain.CartRepository
	users     userdomain.UserRepository
	publisher domain.EventPublisher
	validate  *validator.Validate
}

// NewCheckoutService 构造函数
func NewCheckoutService(
	db *gorm.DB,
	orders domain.OrderRepository,
	carts cartdomain.CartRepository,
	users userdomain.UserRepository,
	publisher domain.EventPublisher,
) *CheckoutService {
	return &CheckoutService{
		db:        db,
		orders:    orders,
		carts:     carts,
		users:     users,
		publisher: publisher,
		validate:  validator.New(),
	}
}

// PlaceOrder 执行下单工作流。
func (s *CheckoutService) PlaceOrder(ctx context.Context, userID uint) *CheckoutResult {
	// 1. 身份
	if userID == 0 {
		return failureResult(formatError(ErrNotAuthenticated))
	}

	// 2. 购物车：空车回购物车页，属于导航而非错误
	cart, err := s.carts.GetByUserID(ctx, userID)
	if err != nil {
		return failureResult(formatError(err))
	}
	if cart == nil || cart.IsEmpty() {
		return redirectResult(CartPath)
	}

	// 3. 用户档案：先查地址，再查支付方式
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return failureResult(formatError(err))
	}
	if user == nil {
		return failureResult(formatError(ErrNotAuthenticated))
	}
	if !user.HasAddress() {
		return redirectResult(ShippingAddressPath)
	}
	if !user.HasPaymentMethod() {
		return redirectResult(PaymentMethodPath)
	}

	// 4. 构造订单草案并做结构化校验
	draft := orderDraft{
		UserID:          user.ID,
		ShippingAddress: user.Address,
		PaymentMethod:   string(user.PaymentMethod),
		ItemsPrice:      cart.ItemsPrice.StringFixed(2),
		ShippingPrice:   cart.ShippingPrice.StringFixed(2),
		TaxPrice:        cart.TaxPrice.StringFixed(2),
		TotalPrice:      cart.TotalPrice.StringFixed(2),
	}
	if err := s.validate.Struct(draft); err != nil {
		return failureResult(formatError(err))
	}

	// 5. 单事务：插入订单、逐条插入条目、清空购物车、写入 outbox 事件
	order := &domain.Order{
		OrderNo:         fmt.Sprintf("ORD-%d", idgen.GenID()),
		UserID:          user.ID,
		ShippingAddress: *user.Address,
		PaymentMethod:   user.PaymentMethod,
		ItemsPrice:      cart.ItemsPrice,
		ShippingPrice:   cart.ShippingPrice,
		TaxPrice:        cart.TaxPrice,
		TotalPrice:      cart.TotalPrice,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		txCtx := contextx.WithTx(ctx, tx)

		if err := s.orders.Insert(txCtx, order); err != nil {
			return err
		}
		if order.ID == 0 {
			return ErrOrderNotCreated
		}

		eventItems := make([]domain.OrderPlacedItem, 0, len(cart.Items))
		for _, cartItem := range cart.Items {
			item := &domain.OrderItem{
				OrderID:   order.ID,
				ProductID: cartItem.ProductID,
				Name:      cartItem.Name,
				Quantity:  cartItem.Quantity,
				Price:     cartItem.Price.Round(2),
			}
			if err := s.orders.InsertItem(txCtx, item); err != nil {
				return err
			}
			eventItems = append(eventItems, domain.OrderPlacedItem{
				ProductID: item.ProductID,
				Name:      item.Name,
				Quantity:  item.Quantity,
				Price:     item.Price.StringFixed(2),
			})
		}

		if err := s.carts.Reset(txCtx, cart.ID); err != nil {
			return err
		}

		if s.publisher == nil {
			return nil
		}
		event := domain.OrderPlacedEvent{
			OrderID:    order.ID,
			OrderNo:    order.OrderNo,
			UserID:     order.UserID,
			TotalPrice: order.TotalPrice.StringFixed(2),
			Items:      eventItems,
			Timestamp:  time.Now(),
		}
		return s.publisher.PublishInTx(ctx, contextx.GetTx(txCtx), domain.OrderPlacedEventType, order.OrderNo, event)
	})
	if err != nil {
		logging.Error(ctx, "checkout transaction failed", "user_id", userID, "error", err)
		return failureResult(formatError(err))
	}

	logging.Info(ctx, "order placed", "user_id", userID, "order_id", order.ID, "order_no", order.OrderNo)

	// 6. 成功本身也是一次导航：去新订单的详情页
	return placedResult(order.ID)
}

// formatError 把内部错误整理成可读的提示文案。
func formatError(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		msgs := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			msgs = append(msgs, fmt.Sprintf("%s is %s", fe.Field(), fe.Tag()))
		}
		return strings.Join(msgs, "; ")
	}
	return err.Error()
}
