package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/wyfcoding/pkg/logging"
	"github.com/wyfcoding/pkg/response"
	authhttp "github.com/wyfcoding/storefront/internal/auth/interfaces/http"
	"github.com/wyfcoding/storefront/internal/order/application"
)

// OrderHandler 订单 HTTP 处理器。
// 结账结果按变体分流：导航变体转 303 跳转，失败变体以
// {success:false, message} 返回给页面内联展示。
type OrderHandler struct {
	checkout *application.CheckoutService
	query    *application.OrderQueryService
}

// NewOrderHandler 创建 HTTP 处理器实例
func NewOrderHandler(checkout *application.CheckoutService, query *application.OrderQueryService) *OrderHandler {
	return &OrderHandler{checkout: checkout, query: query}
}

// RegisterRoutes 注册路由
func (h *OrderHandler) RegisterRoutes(router *gin.RouterGroup) {
	api := router.Group("/v1/orders")
	{
		api.POST("/checkout", h.Checkout)
		api.GET("/mine", h.ListMyOrders)
		api.GET("/:id", h.GetOrder)
	}
}

// Checkout 结账下单
func (h *OrderHandler) Checkout(c *gin.Context) {
	userID := authhttp.CurrentUserID(c)

	result := h.checkout.PlaceOrder(c.Request.Context(), userID)
	switch result.Kind {
	case application.OutcomeRedirect:
		c.Redirect(http.StatusSeeOther, result.RedirectPath)
	case application.OutcomeFailure:
		c.JSON(http.StatusOK, gin.H{"success": false, "message": result.Message})
	default:
		logging.Error(c.Request.Context(), "unexpected checkout outcome", "kind", string(result.Kind))
		response.ErrorWithStatus(c, http.StatusInternalServerError, "unexpected checkout outcome", "")
	}
}

// GetOrder 获取订单详情
func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, "invalid order id", "")
		return
	}

	dto, err := h.query.GetOrder(c.Request.Context(), uint(id))
	if err != nil {
		logging.Error(c.Request.Context(), "Failed to get order", "order_id", id, "error", err)
		response.ErrorWithStatus(c, http.StatusInternalServerError, err.Error(), "")
		return
	}
	if dto == nil {
		response.ErrorWithStatus(c, http.StatusNotFound, "order not found", "")
		return
	}
	response.Success(c, dto)
}

// ListMyOrders 分页列出当前用户订单
func (h *OrderHandler) ListMyOrders(c *gin.Context) {
	userID := authhttp.CurrentUserID(c)

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(application.DefaultPageSize)))

	result, err := h.query.ListMyOrders(c.Request.Context(), userID, page, pageSize)
	if err != nil {
		if errors.Is(err, application.ErrNotAuthenticated) {
			response.ErrorWithStatus(c, http.StatusUnauthorized, err.Error(), "")
			return
		}
		logging.Error(c.Request.Context(), "Failed to list my orders", "user_id", userID, "error", err)
		response.ErrorWithStatus(c, http.StatusInternalServerError, err.Error(), "")
		return
	}
	response.Success(c, result)
}
