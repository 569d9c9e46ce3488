package paymall

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/agamariel/paymall-console/internal/models"
)

const (
	QueryUserOrderListPath = "/api/v1/alipay/query_user_order_list"
	RefundOrderPath        = "/api/v1/alipay/refund_order"
	ActivePayNotifyPath    = "/api/v1/alipay/active_pay_notify"
)

// StatusError возвращается, когда pay-mall ответил не 2xx.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// Client интерфейс вызовов pay-mall.
// Ошибка возвращается только при сбое транспорта: сеть, не-2xx статус, битый JSON.
// Прикладной результат (код ответа) разбирает вызывающая сторона.
type Client interface {
	QueryUserOrderList(ctx context.Context, req models.OrderListRequest) (*models.Response[models.OrderListData], error)
	RefundOrder(ctx context.Context, req models.RefundRequest) (*models.Response[models.RefundData], error)
	ActivePayNotify(ctx context.Context, outTradeNo string) (*models.NotifyResponse, error)
}

type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewHTTPClient создаёт HTTP-клиент pay-mall. Нулевой timeout означает отсутствие таймаута.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	if timeout < 0 {
		timeout = 0
	}
	return &HTTPClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// QueryUserOrderList запрашивает страницу заказов пользователя.
func (c *HTTPClient) QueryUserOrderList(ctx context.Context, req models.OrderListRequest) (*models.Response[models.OrderListData], error) {
	var out models.Response[models.OrderListData]
	if err := c.postJSON(ctx, QueryUserOrderListPath, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RefundOrder отправляет запрос на возврат заказа.
func (c *HTTPClient) RefundOrder(ctx context.Context, req models.RefundRequest) (*models.Response[models.RefundData], error) {
	var out models.Response[models.RefundData]
	if err := c.postJSON(ctx, RefundOrderPath, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ActivePayNotify повторно запускает уведомление об оплате для номера заказа продавца.
func (c *HTTPClient) ActivePayNotify(ctx context.Context, outTradeNo string) (*models.NotifyResponse, error) {
	form := url.Values{}
	form.Set("outTradeNo", outTradeNo)

	var out models.NotifyResponse
	err := c.post(ctx, ActivePayNotifyPath, "application/x-www-form-urlencoded", strings.NewReader(form.Encode()), &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) postJSON(ctx context.Context, path string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}
	return c.post(ctx, path, "application/json", bytes.NewReader(body), out)
}

func (c *HTTPClient) post(ctx context.Context, path, contentType string, body io.Reader, out any) error {
	endpoint, err := c.endpoint(path)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return &StatusError{StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode pay-mall response: %w", err)
	}
	return nil
}

func (c *HTTPClient) endpoint(path string) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid pay-mall base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("invalid pay-mall base url %q", c.baseURL)
	}
	u.Path = strings.TrimRight(u.Path, "/") + path
	return u.String(), nil
}
