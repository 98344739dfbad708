package application

import (
	"context"

	"github.com/wyfcoding/storefront/internal/auth/domain"
)

// AuthQueryService 认证查询服务
type AuthQueryService struct {
	sessions domain.SessionRepository
}

// NewAuthQueryService 创建认证查询服务实例
func NewAuthQueryService(sessions domain.SessionRepository) *AuthQueryService {
	return &AuthQueryService{sessions: sessions}
}

// CurrentSession 根据令牌解析当前会话；无效或过期时返回 nil。
func (s *AuthQueryService) CurrentSession(ctx context.Context, token string) (*domain.StoreSession, error) {
	if token == "" {
		return nil, nil
	}
	session, err := s.sessions.Get(ctx, token)
	if err != nil {
		return nil, err
	}
	if session == nil || session.IsExpired() {
		return nil, nil
	}
	return session, nil
}
