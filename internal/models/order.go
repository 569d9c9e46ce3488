package models

import (
	"github.com/shopspring/decimal"
)

// OrderStatus описывает статус заказа в платёжной системе.
type OrderStatus string

const (
	OrderStatusCreate     OrderStatus = "CREATE"
	OrderStatusPayWait    OrderStatus = "PAY_WAIT"
	OrderStatusPaySuccess OrderStatus = "PAY_SUCCESS"
	OrderStatusDealDone   OrderStatus = "DEAL_DONE"
	OrderStatusClose      OrderStatus = "CLOSE"
	OrderStatusWaitRefund OrderStatus = "WAIT_REFUND"
)

const defaultProductName = "商品名称"

var statusLabels = map[OrderStatus]string{
	OrderStatusCreate:     "新创建",
	OrderStatusPayWait:    "等待支付",
	OrderStatusPaySuccess: "支付成功",
	OrderStatusDealDone:   "交易完成",
	OrderStatusClose:      "已关闭",
	OrderStatusWaitRefund: "退款中",
}

// Label возвращает подпись статуса для страницы. Неизвестный статус возвращается как есть.
func (s OrderStatus) Label() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return string(s)
}

// Refundable сообщает, можно ли запросить возврат по заказу.
func (s OrderStatus) Refundable() bool {
	return s != OrderStatusClose
}

// Order представляет заказ пользователя в том виде, в каком его отдаёт pay-mall.
type Order struct {
	OrderID     string              `json:"orderId"`
	Status      OrderStatus         `json:"status"`
	ProductName string              `json:"productName,omitempty"`
	OrderTime   string              `json:"orderTime,omitempty"`
	PayAmount   decimal.NullDecimal `json:"payAmount"`
	TotalAmount decimal.NullDecimal `json:"totalAmount"`
}

// DisplayProductName возвращает название товара или заглушку.
func (o Order) DisplayProductName() string {
	if o.ProductName == "" {
		return defaultProductName
	}
	return o.ProductName
}

// Amount возвращает сумму к показу: payAmount, а если её нет или она нулевая, totalAmount.
func (o Order) Amount() decimal.Decimal {
	if o.PayAmount.Valid && !o.PayAmount.Decimal.IsZero() {
		return o.PayAmount.Decimal
	}
	if o.TotalAmount.Valid {
		return o.TotalAmount.Decimal
	}
	return decimal.Zero
}
