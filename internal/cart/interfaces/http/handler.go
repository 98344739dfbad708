package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/wyfcoding/pkg/logging"
	"github.com/wyfcoding/pkg/response"
	authhttp "github.com/wyfcoding/storefront/internal/auth/interfaces/http"
	"github.com/wyfcoding/storefront/internal/cart/application"
)

// CartHandler 购物车 HTTP 处理器
type CartHandler struct {
	cmd   *application.CartCommandService
	query *application.CartQueryService
}

// NewCartHandler 创建 HTTP 处理器实例
func NewCartHandler(cmd *application.CartCommandService, query *application.CartQueryService) *CartHandler {
	return &CartHandler{cmd: cmd, query: query}
}

// RegisterRoutes 注册路由
func (h *CartHandler) RegisterRoutes(router *gin.RouterGroup) {
	api := router.Group("/v1/cart")
	{
		api.GET("", h.GetCart)
		api.POST("/items", h.AddItem)
		api.DELETE("/items/:productId", h.RemoveItem)
	}
}

// GetCart 获取当前用户购物车
func (h *CartHandler) GetCart(c *gin.Context) {
	userID := authhttp.CurrentUserID(c)
	if userID == 0 {
		response.ErrorWithStatus(c, http.StatusUnauthorized, "user is not authenticated", "")
		return
	}

	cart, err := h.query.GetCart(c.Request.Context(), userID)
	if err != nil {
		logging.Error(c.Request.Context(), "Failed to get cart", "user_id", userID, "error", err)
		response.ErrorWithStatus(c, http.StatusInternalServerError, err.Error(), "")
		return
	}
	response.Success(c, cart)
}

// AddItemRequest 添加商品请求
type AddItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

// AddItem 添加商品到购物车
func (h *CartHandler) AddItem(c *gin.Context) {
	userID := authhttp.CurrentUserID(c)
	if userID == 0 {
		response.ErrorWithStatus(c, http.StatusUnauthorized, "user is not authenticated", "")
		return
	}

	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, err.Error(), "")
		return
	}

	err := h.cmd.AddItem(c.Request.Context(), application.AddItemCommand{
		UserID:    userID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		if errors.Is(err, application.ErrProductNotFound) {
			response.ErrorWithStatus(c, http.StatusNotFound, err.Error(), "")
			return
		}
		if errors.Is(err, application.ErrInsufficientStock) {
			response.ErrorWithStatus(c, http.StatusConflict, err.Error(), "")
			return
		}
		logging.Error(c.Request.Context(), "Failed to add cart item", "user_id", userID, "product_id", req.ProductID, "error", err)
		response.ErrorWithStatus(c, http.StatusInternalServerError, err.Error(), "")
		return
	}
	response.Success(c, gin.H{"status": "added"})
}

// RemoveItem 从购物车移除商品
func (h *CartHandler) RemoveItem(c *gin.Context) {
	userID := authhttp.CurrentUserID(c)
	if userID == 0 {
		response.ErrorWithStatus(c, http.StatusUnauthorized, "user is not authenticated", "")
		return
	}

	productID, err := strconv.ParseUint(c.Param("productId"), 10, 64)
	if err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, "invalid product id", "")
		return
	}

	err = h.cmd.RemoveItem(c.Request.Context(), application.RemoveItemCommand{
		UserID:    userID,
		ProductID: uint(productID),
	})
	if err != nil {
		logging.Error(c.Request.Context(), "Failed to remove cart item", "user_id", userID, "product_id", productID, "error", err)
		response.ErrorWithStatus(c, http.StatusInternalServerError, err.Error(), "")
		return
	}
	response.Success(c, gin.H{"status": "removed"})
}
