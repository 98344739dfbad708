package application

import (
	"context"
	"errors"

	"github.com/wyfcoding/storefront/internal/user/domain"
)

// ErrUserNotFound 用户不存在
var ErrUserNotFound = errors.New("user not found")

// SetAddressCommand 设置收货地址命令
type SetAddressCommand struct {
	UserID  uint
	Address domain.Address
}

// SetPaymentMethodCommand 设置支付方式命令
type SetPaymentMethodCommand struct {
	UserID uint
	Method domain.PaymentMethod
}

// UserService 用户档案服务，提供结账前的档案维护与查询。
type UserService struct {
	repo domain.UserRepository
}

// NewUserService 构造函数
func NewUserService(repo domain.UserRepository) *UserService {
	return &UserService{repo: repo}
}

// GetProfile 获取用户档案
func (s *UserService) GetProfile(ctx context.Context, userID uint) (*domain.User, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// SetAddress 设置收货地址
func (s *UserService) SetAddress(ctx context.Context, cmd SetAddressCommand) error {
	user, err := s.repo.GetByID(ctx, cmd.UserID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	addr := cmd.Address
	return s.repo.UpdateAddress(ctx, cmd.UserID, &addr)
}

// SetPaymentMethod 设置支付方式
func (s *UserService) SetPaymentMethod(ctx context.Context, cmd SetPaymentMethodCommand) error {
	user, err := s.repo.GetByID(ctx, cmd.UserID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	return s.repo.UpdatePaymentMethod(ctx, cmd.UserID, cmd.Method)
}
