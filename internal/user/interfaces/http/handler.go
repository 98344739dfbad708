package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wyfcoding/pkg/logging"
	"github.com/wyfcoding/pkg/response"
	authhttp "github.com/wyfcoding/storefront/internal/auth/interfaces/http"
	"github.com/wyfcoding/storefront/internal/user/application"
	"github.com/wyfcoding/storefront/internal/user/domain"
)

// UserHandler 用户档案 HTTP 处理器
type UserHandler struct {
	svc *application.UserService
}

// NewUserHandler 创建 HTTP 处理器实例
func NewUserHandler(svc *application.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// RegisterRoutes 注册路由
func (h *UserHandler) RegisterRoutes(router *gin.RouterGroup) {
	api := router.Group("/v1/users/me")
	{
		api.GET("", h.GetProfile)
		api.PUT("/address", h.SetAddress)
		api.PUT("/payment-method", h.SetPaymentMethod)
	}
}

// GetProfile 获取当前用户档案
func (h *UserHandler) GetProfile(c *gin.Context) {
	userID := authhttp.CurrentUserID(c)
	if userID == 0 {
		response.ErrorWithStatus(c, http.StatusUnauthorized, "user is not authenticated", "")
		return
	}

	user, err := h.svc.GetProfile(c.Request.Context(), userID)
	if err != nil {
		logging.Error(c.Request.Context(), "Failed to get profile", "user_id", userID, "error", err)
		response.ErrorWithStatus(c, http.StatusInternalServerError, err.Error(), "")
		return
	}
	response.Success(c, user)
}

// SetAddressRequest 设置收货地址请求
type SetAddressRequest struct {
	FullName      string `json:"full_name" binding:"required"`
	StreetAddress string `json:"street_address" binding:"required"`
	City          string `json:"city" binding:"required"`
	PostalCode    string `json:"postal_code" binding:"required"`
	Country       string `json:"country" binding:"required"`
}

// SetAddress 设置收货地址
func (h *UserHandler) SetAddress(c *gin.Context) {
	userID := authhttp.CurrentUserID(c)
	if userID == 0 {
		response.ErrorWithStatus(c, http.StatusUnauthorized, "user is not authenticated", "")
		return
	}

	var req SetAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, err.Error(), "")
		return
	}

	cmd := application.SetAddressCommand{
		UserID: userID,
		Address: domain.Address{
			FullName:      req.FullName,
			StreetAddress: req.StreetAddress,
			City:          req.City,
			PostalCode:    req.PostalCode,
			Country:       req.Country,
		},
	}
	if err := h.svc.SetAddress(c.Request.Context(), cmd); err != nil {
		logging.Error(c.Request.Context(), "Failed to set address", "user_id", userID, "error", err)
		response.ErrorWithStatus(c, http.StatusInternalServerError, err.Error(), "")
		return
	}
	response.Success(c, gin.H{"status": "updated"})
}

// SetPaymentMethodRequest 设置支付方式请求
type SetPaymentMethodRequest struct {
	Method string `json:"method" binding:"required"`
}

// SetPaymentMethod 设置支付方式
func (h *UserHandler) SetPaymentMethod(c *gin.Context) {
	userID := authhttp.CurrentUserID(c)
	if userID == 0 {
		response.ErrorWithStatus(c, http.StatusUnauthorized, "user is not authenticated", "")
		return
	}

	var req SetPaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, err.Error(), "")
		return
	}

	cmd := application.SetPaymentMethodCommand{
		UserID: userID,
		Method: domain.PaymentMethod(req.Method),
	}
	if err := h.svc.SetPaymentMethod(c.Request.Context(), cmd); err != nil {
		logging.Error(c.Request.Context(), "Failed to set payment method", "user_id", userID, "error", err)
		response.ErrorWithStatus(c, http.StatusInternalServerError, err.Error(), "")
		return
	}
	response.Success(c, gin.H{"status": "updated"})
}
