package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/wyfcoding/pkg/idgen"
	"github.com/wyfcoding/storefront/internal/auth/domain"
	userdomain "github.com/wyfcoding/storefront/internal/user/domain"
	"golang.org/x/crypto/bcrypt"
)

// 会话有效期
const sessionTTL = 24 * time.Hour

var (
	// ErrEmailTaken 邮箱已被注册
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials 邮箱或密码错误
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// RegisterCommand 注册命令
type RegisterCommand struct {
	Name     string
	Email    string
	Password string
}

// LoginCommand 登录命令
type LoginCommand struct {
	Email    string
	Password string
}

// AuthCommandService 认证命令服务
type AuthCommandService struct {
	users    userdomain.UserRepository
	sessions domain.SessionRepository
}

// NewAuthCommandService 创建认证命令服务实例
func NewAuthCommandService(users userdomain.UserRepository, sessions domain.SessionRepository) *AuthCommandService {
	return &AuthCommandService{users: users, sessions: sessions}
}

// Register 处理用户注册
func (s *AuthCommandService) Register(ctx context.Context, cmd RegisterCommand) (uint, error) {
	existing, err := s.users.GetByEmail(ctx, cmd.Email)
	if err != nil {
		return 0, err
	}
	if existing != nil {
		return 0, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password), bcrypt.DefaultCost)
	if err != nil {
		return 0, fmt.Errorf("failed to hash password: %w", err)
	}

	user := userdomain.NewUser(cmd.Name, cmd.Email, string(hash))
	if err := s.users.Save(ctx, user); err != nil {
		return 0, err
	}
	return user.ID, nil
}

// Login 处理用户登录，成功后在 Redis 中建立会话。
func (s *AuthCommandService) Login(ctx context.Context, cmd LoginCommand) (string, time.Time, error) {
	user, err := s.users.GetByEmail(ctx, cmd.Email)
	if err != nil {
		return "", time.Time{}, err
	}
	if user == nil {
		return "", time.Time{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(cmd.Password)) != nil {
		return "", time.Time{}, ErrInvalidCredentials
	}

	now := time.Now()
	session := &domain.StoreSession{
		Token:     fmt.Sprintf("SES-%s", idgen.GenIDString()),
		UserID:    user.ID,
		Email:     user.Email,
		CreatedAt: now,
		ExpiresAt: now.Add(sessionTTL),
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return "", time.Time{}, err
	}
	return session.Token, session.ExpiresAt, nil
}

// Logout 注销会话
func (s *AuthCommandService) Logout(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}
