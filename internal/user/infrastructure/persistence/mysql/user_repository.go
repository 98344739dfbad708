// Package mysql 提供用户仓储接口的 MySQL GORM 实现。
package mysql

import (
	"context"
	"errors"
	"fmt"

	"github.com/wyfcoding/pkg/contextx"
	"github.com/wyfcoding/pkg/logging"
	"github.com/wyfcoding/storefront/internal/user/domain"
	"gorm.io/gorm"
)

type userRepositoryImpl struct {
	db *gorm.DB
}

// NewUserRepository 创建用户仓储实例
func NewUserRepository(db *gorm.DB) domain.UserRepository {
	return &userRepositoryImpl{db: db}
}

func (r *userRepositoryImpl) dbWithCtx(ctx context.Context) *gorm.DB {
	if tx, ok := contextx.GetTx(ctx).(*gorm.DB); ok {
		return tx.WithContext(ctx)
	}
	return r.db.WithContext(ctx)
}

func (r *userRepositoryImpl) Save(ctx context.Context, user *domain.User) error {
	if err := r.dbWithCtx(ctx).Save(user).Error; err != nil {
		logging.Error(ctx, "user_repository.save failed", "email", user.Email, "error", err)
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

func (r *userRepositoryImpl) GetByID(ctx context.Context, id uint) (*domain.User, error) {
	var user domain.User
	if err := r.dbWithCtx(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		logging.Error(ctx, "user_repository.get_by_id failed", "user_id", id, "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

func (r *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	if err := r.dbWithCtx(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		logging.Error(ctx, "user_repository.get_by_email failed", "email", email, "error", err)
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return &user, nil
}

func (r *userRepositoryImpl) UpdateAddress(ctx context.Context, id uint, address *domain.Address) error {
	err := r.dbWithCtx(ctx).Model(&domain.User{}).Where("id = ?", id).Update("address", address).Error
	if err != nil {
		logging.Error(ctx, "user_repository.update_address failed", "user_id", id, "error", err)
		return fmt.Errorf("failed to update address: %w", err)
	}
	return nil
}

func (r *userRepositoryImpl) UpdatePaymentMethod(ctx context.Context, id uint, method domain.PaymentMethod) error {
	err := r.dbWithCtx(ctx).Model(&domain.User{}).Where("id = ?", id).Update("payment_method", string(method)).Error
	if err != nil {
		logging.Error(ctx, "user_repository.update_payment_method failed", "user_id", id, "error", err)
		return fmt.Errorf("failed to update payment method: %w", err)
	}
	return nil
}
