package handlers

import (
	"net/http"
	"strings"

	"github.com/agamariel/paymall-console/internal/auth"
	"github.com/agamariel/paymall-console/internal/models"
	"github.com/agamariel/paymall-console/internal/services"
	"github.com/agamariel/paymall-console/internal/templates"
	"github.com/agamariel/paymall-console/internal/view"
	"github.com/labstack/echo/v4"
)

const ordersViewPath = "/orders/view"

// OrderListHandler обрабатывает запросы страницы списка заказов.
type OrderListHandler struct {
	pageService services.PageService
}

func NewOrderListHandler(pageService services.PageService) *OrderListHandler {
	return &OrderListHandler{pageService: pageService}
}

type orderListData struct {
	Token         string
	Page          view.OrderListSnapshot
	RefundOrderID string
}

// Open обрабатывает GET /orders: открывает страницу и загружает первую страницу заказов.
func (h *OrderListHandler) Open(c echo.Context) error {
	req := c.Request()
	_, token, err := h.pageService.OpenOrderList(req.Context(), req.URL, req.Host)
	if err != nil {
		c.Logger().Errorf("open order list: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}

	auth.SetPageCookie(c, models.PageKindOrders, token)
	return redirectToView(c, ordersViewPath, token)
}

// View обрабатывает GET /orders/view.
func (h *OrderListHandler) View(c echo.Context) error {
	page, err := loadPage(c, h.pageService, models.PageKindOrders)
	if err != nil {
		return err
	}

	return c.Render(http.StatusOK, templates.OrderList, orderListData{
		Token:         requestToken(c),
		Page:          page.OrdersView.Snapshot(),
		RefundOrderID: page.Orders.CurrentRefundOrderID(),
	})
}

// LoadMore обрабатывает POST /orders/load-more.
func (h *OrderListHandler) LoadMore(c echo.Context) error {
	page, err := loadPage(c, h.pageService, models.PageKindOrders)
	if err != nil {
		return err
	}

	page.Orders.LoadNextPage(c.Request().Context())
	return redirectToView(c, ordersViewPath, requestToken(c))
}

// OpenRefund обрабатывает POST /orders/refund/open.
func (h *OrderListHandler) OpenRefund(c echo.Context) error {
	page, err := loadPage(c, h.pageService, models.PageKindOrders)
	if err != nil {
		return err
	}

	orderID, err := orderIDFromForm(c)
	if err != nil {
		return err
	}

	page.Orders.OpenRefundDialog(orderID)
	return redirectToView(c, ordersViewPath, requestToken(c))
}

// CloseRefund обрабатывает POST /orders/refund/close.
func (h *OrderListHandler) CloseRefund(c echo.Context) error {
	page, err := loadPage(c, h.pageService, models.PageKindOrders)
	if err != nil {
		return err
	}

	page.Orders.CloseRefundDialog()
	return redirectToView(c, ordersViewPath, requestToken(c))
}

// ConfirmRefund обрабатывает POST /orders/refund/confirm.
func (h *OrderListHandler) ConfirmRefund(c echo.Context) error {
	page, err := loadPage(c, h.pageService, models.PageKindOrders)
	if err != nil {
		return err
	}

	page.Orders.SubmitRefund(c.Request().Context())
	return redirectToView(c, ordersViewPath, requestToken(c))
}

// Copy обрабатывает POST /orders/copy.
func (h *OrderListHandler) Copy(c echo.Context) error {
	page, err := loadPage(c, h.pageService, models.PageKindOrders)
	if err != nil {
		return err
	}

	orderID, err := orderIDFromForm(c)
	if err != nil {
		return err
	}

	page.Orders.CopyOrderID(c.Request().Context(), orderID)
	return redirectToView(c, ordersViewPath, requestToken(c))
}

func orderIDFromForm(c echo.Context) (string, error) {
	orderID := strings.TrimSpace(c.FormValue("orderId"))
	if orderID == "" {
		return "", echo.NewHTTPError(http.StatusBadRequest, "missing orderId")
	}
	return orderID, nil
}
