package controllers

import (
	"context"
	"log"
	"net/url"
	"sync"

	"github.com/agamariel/paymall-console/internal/models"
	"github.com/agamariel/paymall-console/internal/paymall"
	"github.com/agamariel/paymall-console/internal/utils"
	"github.com/agamariel/paymall-console/internal/view"
)

// PageSize: размер страницы списка заказов.
const PageSize = 10

// OrderListDeps: зависимости контроллера списка заказов.
type OrderListDeps struct {
	Client    paymall.Client
	View      OrderListView
	Alerts    Alerter
	Toaster   Toaster
	Copier    Copier
	Formatter view.Formatter
	Logger    *log.Logger
}

// OrderListController ведёт постраничный список заказов пользователя и возвраты.
type OrderListController struct {
	client    paymall.Client
	view      OrderListView
	alerts    Alerter
	toaster   Toaster
	copier    Copier
	formatter view.Formatter
	logger    *log.Logger

	mu        sync.Mutex
	userID    string
	lastID    *models.Cursor
	hasMore   bool
	loading   bool
	refunding bool
	// generation растёт при сбросе списка; ответ на запрос старого поколения отбрасывается
	generation           uint64
	currentRefundOrderID string
}

func NewOrderListController(deps OrderListDeps) *OrderListController {
	logger := deps.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &OrderListController{
		client:    deps.Client,
		view:      deps.View,
		alerts:    deps.Alerts,
		toaster:   deps.Toaster,
		copier:    deps.Copier,
		formatter: deps.Formatter,
		logger:    logger,
		hasMore:   true,
	}
}

// Initialize берёт ID пользователя из адреса страницы, выводит его в маскированном
// виде и загружает первую страницу.
func (c *OrderListController) Initialize(ctx context.Context, pageURL *url.URL) {
	userID := utils.UserIDFromURL(pageURL)

	c.mu.Lock()
	c.userID = userID
	c.mu.Unlock()

	if userID != "" {
		c.view.SetBanner(userBannerPrefix + utils.ObfuscateUserID(userID))
	}
	c.LoadNextPage(ctx)
}

// UserID возвращает ID пользователя страницы.
func (c *OrderListController) UserID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.userID
}

// LoadNextPage загружает следующую страницу. Вызов во время загрузки или после
// последней страницы ничего не делает.
func (c *OrderListController) LoadNextPage(ctx context.Context) {
	if reload := c.fetchPage(ctx); reload {
		c.LoadNextPage(ctx)
	}
}

// fetchPage возвращает true, если пока шёл запрос список был сброшен
// и первую страницу нужно загрузить заново.
func (c *OrderListController) fetchPage(ctx context.Context) (reload bool) {
	c.mu.Lock()
	if c.loading || !c.hasMore {
		c.mu.Unlock()
		return false
	}
	c.loading = true
	gen := c.generation
	req := models.OrderListRequest{
		UserID:   c.userID,
		LastID:   c.lastID,
		PageSize: PageSize,
	}
	c.mu.Unlock()

	c.view.SetLoading(true)
	defer func() {
		c.mu.Lock()
		c.loading = false
		c.mu.Unlock()
		c.view.SetLoading(false)
	}()

	resp, err := c.client.QueryUserOrderList(ctx, req)

	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.generation {
		c.logger.Printf("discarding stale order page for user %s", req.UserID)
		return true
	}
	if err != nil {
		c.logger.Printf("load order list for user %s: %v", req.UserID, err)
		c.alerts.Error(networkErrorMessage)
		return false
	}
	if !resp.OK() || resp.Data == nil {
		c.alerts.Error(loadOrdersFailedPrefix + firstNonEmpty(resp.Info, unknownErrorMessage))
		return false
	}

	c.RenderPage(resp.Data.OrderList, req.LastID == nil)
	c.hasMore = resp.Data.HasMore
	c.lastID = resp.Data.LastID
	c.view.SetLoadMore(c.hasMore, loadMoreLabel)
	return false
}

// RenderPage выводит заказы страницы. Список очищается только для первой страницы,
// заглушка пустого списка показывается только для пустой первой страницы.
func (c *OrderListController) RenderPage(orders []models.Order, isFirstPage bool) {
	if isFirstPage {
		c.view.ClearOrders()
	}

	switch {
	case len(orders) > 0:
		c.view.SetEmptyState(false)
		c.view.AppendOrders(c.formatter.OrderCards(orders))
	case isFirstPage:
		c.view.SetEmptyState(true)
	}
}

// OpenRefundDialog выбирает заказ для возврата и открывает диалог.
func (c *OrderListController) OpenRefundDialog(orderID string) {
	c.mu.Lock()
	c.currentRefundOrderID = orderID
	c.mu.Unlock()
	c.view.SetRefundDialog(true)
}

// CloseRefundDialog закрывает диалог и снимает выбор заказа.
func (c *OrderListController) CloseRefundDialog() {
	c.view.SetRefundDialog(false)
	c.mu.Lock()
	c.currentRefundOrderID = ""
	c.mu.Unlock()
}

// CurrentRefundOrderID возвращает выбранный для возврата заказ.
func (c *OrderListController) CurrentRefundOrderID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.currentRefundOrderID
}

// SubmitRefund отправляет возврат выбранного заказа. После успеха список
// загружается заново с первой страницы. При ошибке выбор сохраняется,
// чтобы открытый диалог можно было подтвердить повторно.
func (c *OrderListController) SubmitRefund(ctx context.Context) {
	c.mu.Lock()
	if c.currentRefundOrderID == "" || c.refunding {
		c.mu.Unlock()
		return
	}
	c.refunding = true
	req := models.RefundRequest{
		UserID:  c.userID,
		OrderID: c.currentRefundOrderID,
	}
	c.mu.Unlock()

	c.view.SetLoading(true)
	defer func() {
		c.mu.Lock()
		c.refunding = false
		c.mu.Unlock()
		c.view.SetLoading(false)
	}()

	resp, err := c.client.RefundOrder(ctx, req)
	if err != nil {
		c.logger.Printf("refund order %s: %v", req.OrderID, err)
		c.alerts.Error(networkErrorMessage)
		return
	}

	if resp.OK() && resp.Data != nil && resp.Data.Success {
		c.alerts.Success(refundSucceeded)
		c.CloseRefundDialog()
		c.refresh(ctx)
		return
	}

	var message string
	if resp.Data != nil {
		message = resp.Data.Message
	}
	c.alerts.Error(refundFailedPrefix + firstNonEmpty(resp.Info, message, unknownErrorMessage))
}

func (c *OrderListController) refresh(ctx context.Context) {
	c.mu.Lock()
	c.lastID = nil
	c.hasMore = true
	c.generation++
	c.view.ClearOrders()
	c.mu.Unlock()

	c.LoadNextPage(ctx)
}

// CopyOrderID копирует номер заказа и сообщает результат.
func (c *OrderListController) CopyOrderID(ctx context.Context, orderID string) {
	if err := c.copier.Copy(ctx, orderID); err != nil {
		c.logger.Printf("copy order id %s: %v", orderID, err)
		c.toaster.Show(copyFailed)
		return
	}
	c.toaster.Show(orderIDCopied)
}

// StatusLabel возвращает подпись статуса заказа.
func StatusLabel(status string) string {
	return models.OrderStatus(status).Label()
}
