package application

import "fmt"

// OutcomeKind 结账结果的变体标签。
// 导航与失败是两类不同的控制流：导航由 HTTP 层转成 3xx 跳转，
// 失败以 {success:false, message} 返回给页面内联展示，绝不混用。
type OutcomeKind string

const (
	// OutcomeRedirect 让调用方把用户带去别的页面（含下单成功后的订单详情页）
	OutcomeRedirect OutcomeKind = "REDIRECT"
	// OutcomeFailure 结账失败，携带可读的失败原因
	OutcomeFailure OutcomeKind = "FAILURE"
)

// 导航目标
const (
	CartPath            = "/cart"
	ShippingAddressPath = "/shipping-address"
	PaymentMethodPath   = "/payment-method"
)

// CheckoutResult 结账的带标签结果。
// Kind 为 OutcomeRedirect 时 RedirectPath 有效；下单成功时 OrderID 同时给出。
// Kind 为 OutcomeFailure 时 Message 有效。
type CheckoutResult struct {
	Kind         OutcomeKind `json:"kind"`
	RedirectPath string      `json:"redirect_path,omitempty"`
	OrderID      uint        `json:"order_id,omitempty"`
	Message      string      `json:"message,omitempty"`
}

func redirectResult(path string) *CheckoutResult {
	return &CheckoutResult{Kind: OutcomeRedirect, RedirectPath: path}
}

func placedResult(orderID uint) *CheckoutResult {
	return &CheckoutResult{
		Kind:         OutcomeRedirect,
		RedirectPath: fmt.Sprintf("/order/%d", orderID),
		OrderID:      orderID,
	}
}

func failureResult(message string) *CheckoutResult {
	return &CheckoutResult{Kind: OutcomeFailure, Message: message}
}
