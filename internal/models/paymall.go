package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// SuccessCode: код успешного ответа pay-mall.
const SuccessCode = "0000"

// Response: общий конверт ответа pay-mall.
type Response[T any] struct {
	Code string `json:"code"`
	Info string `json:"info,omitempty"`
	Data *T     `json:"data,omitempty"`
}

// OK сообщает, что код ответа успешный.
func (r *Response[T]) OK() bool {
	return r != nil && r.Code == SuccessCode
}

// Cursor: непрозрачный курсор постраничной выдачи.
// Сервер может прислать его строкой или числом, обратно он всегда уходит строкой.
type Cursor string

func (c *Cursor) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*c = Cursor(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("cursor must be a string or a number: %w", err)
	}
	*c = Cursor(n.String())
	return nil
}

// OrderListRequest: запрос страницы заказов пользователя.
type OrderListRequest struct {
	UserID   string  `json:"userId"`
	LastID   *Cursor `json:"lastId"`
	PageSize int     `json:"pageSize"`
}

// OrderListData: страница заказов.
type OrderListData struct {
	OrderList []Order `json:"orderList"`
	HasMore   bool    `json:"hasMore"`
	LastID    *Cursor `json:"lastId"`
}

// RefundRequest: запрос на возврат заказа.
type RefundRequest struct {
	UserID  string `json:"userId"`
	OrderID string `json:"orderId"`
}

// RefundData: результат возврата.
type RefundData struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// NotifyResponse: ответ на повторную отправку уведомления об оплате.
// Поле data отдаётся как есть и показывается текстом.
type NotifyResponse struct {
	Code string          `json:"code"`
	Info string          `json:"info,omitempty"`
	Data json.RawMessage `json:"data,omitempty"`
}

// DataText возвращает data в виде текста: строки без кавычек, прочий JSON как есть.
func (r NotifyResponse) DataText() string {
	raw := bytes.TrimSpace(r.Data)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return s
		}
	}
	return string(raw)
}
