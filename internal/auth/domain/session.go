// Package domain 包含认证会话的领域模型。
package domain

import (
	"context"
	"time"
)

// StoreSession 商城用户会话
type StoreSession struct {
	Token     string    `json:"token"`
	UserID    uint      `json:"user_id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (s *StoreSession) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

// SessionRepository 会话仓储接口（仅实现 Redis 版本）
type SessionRepository interface {
	Save(ctx context.Context, session *StoreSession) error
	Get(ctx context.Context, token string) (*StoreSession, error)
	Delete(ctx context.Context, token string) error
}
