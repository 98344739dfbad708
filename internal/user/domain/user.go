// Package domain 包含用户档案的领域模型。
package domain

import (
	"context"

	"gorm.io/gorm"
)

// Address 收货地址，按 JSON 整体存储在 users 表中。
type Address struct {
	FullName      string `json:"full_name"`
	StreetAddress string `json:"street_address"`
	City          string `json:"city"`
	PostalCode    string `json:"postal_code"`
	Country       string `json:"country"`
}

// PaymentMethod 支付方式
type PaymentMethod string

const (
	PaymentMethodPayPal         PaymentMethod = "PAYPAL"
	PaymentMethodStripe         PaymentMethod = "STRIPE"
	PaymentMethodCashOnDelivery PaymentMethod = "CASH_ON_DELIVERY"
)

// User 用户档案实体。
// 下单前必须已填写收货地址和支付方式。
type User struct {
	gorm.Model
	Name          string        `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Email         string        `gorm:"column:email;type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash  string        `gorm:"column:password_hash;type:varchar(255);not null" json:"-"`
	Address       *Address      `gorm:"column:address;type:json;serializer:json" json:"address"`
	PaymentMethod PaymentMethod `gorm:"column:payment_method;type:varchar(20)" json:"payment_method"`
}

func (User) TableName() string { return "users" }

// NewUser 创建用户，地址与支付方式留待结账前补齐。
func NewUser(name, email, passwordHash string) *User {
	return &User{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
	}
}

// HasAddress 是否已填写收货地址
func (u *User) HasAddress() bool { return u.Address != nil }

// HasPaymentMethod 是否已选择支付方式
func (u *User) HasPaymentMethod() bool { return u.PaymentMethod != "" }

// UserRepository 用户仓储接口
type UserRepository interface {
	Save(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id uint) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	UpdateAddress(ctx context.Context, id uint, address *Address) error
	UpdatePaymentMethod(ctx context.Context, id uint, method PaymentMethod) error
}
