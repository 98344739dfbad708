package application

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/wyfcoding/storefront/internal/catalog/domain"
)

// CatalogService 商品目录服务
type CatalogService struct {
	repo domain.ProductRepository
}

// NewCatalogService 构造函数
func NewCatalogService(repo domain.ProductRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

// CreateProductCommand 创建商品命令
type CreateProductCommand struct {
	Name        string
	Slug        string
	Description string
	Price       decimal.Decimal
	Stock       int
	Category    string
}

// CreateProduct 创建商品
func (s *CatalogService) CreateProduct(ctx context.Context, cmd CreateProductCommand) (uint, error) {
	product := &domain.Product{
		Name:        cmd.Name,
		Slug:        cmd.Slug,
		Description: cmd.Description,
		Price:       cmd.Price,
		Stock:       cmd.Stock,
		Category:    cmd.Category,
	}
	if err := s.repo.Save(ctx, product); err != nil {
		return 0, err
	}
	return product.ID, nil
}

// GetProduct 获取商品详情
func (s *CatalogService) GetProduct(ctx context.Context, id uint) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// GetProductBySlug 按 slug 获取商品
func (s *CatalogService) GetProductBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	return s.repo.GetBySlug(ctx, slug)
}

// ListProducts 列出商品
func (s *CatalogService) ListProducts(ctx context.Context, category string, limit, offset int) ([]*domain.Product, int64, error) {
	return s.repo.List(ctx, category, limit, offset)
}
