package application

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/wyfcoding/pkg/logging"
	"github.com/wyfcoding/storefront/internal/cart/domain"
	catalogdomain "github.com/wyfcoding/storefront/internal/catalog/domain"
)

var (
	// ErrProductNotFound 商品不存在
	ErrProductNotFound = errors.New("product not found")
	// ErrInsufficientStock 库存不足
	ErrInsufficientStock = errors.New("insufficient stock")
)

// AddItemCommand 添加商品到购物车命令
type AddItemCommand struct {
	UserID    uint
	ProductID uint
	Quantity  int
}

// RemoveItemCommand 从购物车移除商品命令
type RemoveItemCommand struct {
	UserID    uint
	ProductID uint
}

// CartCommandService 购物车命令服务。
// 加入购物车时从商品目录读取单价，此后条目价格即与商品价格解耦。
type CartCommandService struct {
	repo      domain.CartRepository
	products  catalogdomain.ProductRepository
	publisher domain.EventPublisher
}

// NewCartCommandService 创建购物车命令服务实例
func NewCartCommandService(
	repo domain.CartRepository,
	products catalogdomain.ProductRepository,
	publisher domain.EventPublisher,
) *CartCommandService {
	return &CartCommandService{
		repo:      repo,
		products:  products,
		publisher: publisher,
	}
}

// AddItem 处理添加商品到购物车
func (s *CartCommandService) AddItem(ctx context.Context, cmd AddItemCommand) error {
	product, err := s.products.GetByID(ctx, cmd.ProductID)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrProductNotFound
	}
	if !product.InStock(cmd.Quantity) {
		return ErrInsufficientStock
	}

	cart, err := s.repo.GetByUserID(ctx, cmd.UserID)
	if err != nil {
		return err
	}
	if cart == nil {
		cart = &domain.Cart{UserID: cmd.UserID}
		cart.Recalculate()
	}

	cart.AddItem(product.ID, product.Name, cmd.Quantity, product.Price)
	if err := s.repo.Save(ctx, cart); err != nil {
		return err
	}

	event := domain.CartItemAddedEvent{
		CartID:    cart.ID,
		UserID:    cart.UserID,
		ProductID: product.ID,
		Quantity:  cmd.Quantity,
		Price:     product.Price.StringFixed(2),
		Timestamp: time.Now(),
	}
	if err := s.publisher.Publish(ctx, domain.CartItemAddedEventType, product.Slug, event); err != nil {
		logging.Error(ctx, "failed to publish cart event", "topic", domain.CartItemAddedEventType, "error", err)
	}
	return nil
}

// RemoveItem 处理从购物车移除商品
func (s *CartCommandService) RemoveItem(ctx context.Context, cmd RemoveItemCommand) error {
	cart, err := s.repo.GetByUserID(ctx, cmd.UserID)
	if err != nil {
		return err
	}
	if cart == nil {
		return nil
	}

	cart.RemoveItem(cmd.ProductID)
	if err := s.repo.DeleteItem(ctx, cart.ID, cmd.ProductID); err != nil {
		return err
	}
	if err := s.repo.Save(ctx, cart); err != nil {
		return err
	}

	event := domain.CartItemRemovedEvent{
		CartID:    cart.ID,
		UserID:    cart.UserID,
		ProductID: cmd.ProductID,
		Timestamp: time.Now(),
	}
	if err := s.publisher.Publish(ctx, domain.CartItemRemovedEventType, strconv.FormatUint(uint64(cart.UserID), 10), event); err != nil {
		logging.Error(ctx, "failed to publish cart event", "topic", domain.CartItemRemovedEventType, "error", err)
	}
	return nil
}
