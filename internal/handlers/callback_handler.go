package handlers

import (
	"net/http"

	"github.com/agamariel/paymall-console/internal/auth"
	"github.com/agamariel/paymall-console/internal/models"
	"github.com/agamariel/paymall-console/internal/services"
	"github.com/agamariel/paymall-console/internal/templates"
	"github.com/agamariel/paymall-console/internal/view"
	"github.com/labstack/echo/v4"
)

const callbackViewPath = "/callback/view"

// CallbackTestHandler обрабатывает запросы страницы проверки уведомлений об оплате.
type CallbackTestHandler struct {
	pageService services.PageService
}

func NewCallbackTestHandler(pageService services.PageService) *CallbackTestHandler {
	return &CallbackTestHandler{pageService: pageService}
}

type callbackData struct {
	Token string
	Page  view.CallbackTestSnapshot
}

// Open обрабатывает GET /callback.
func (h *CallbackTestHandler) Open(c echo.Context) error {
	req := c.Request()
	_, token, err := h.pageService.OpenCallbackTest(req.Context(), req.Host)
	if err != nil {
		c.Logger().Errorf("open callback test: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}

	auth.SetPageCookie(c, models.PageKindCallback, token)
	return redirectToView(c, callbackViewPath, token)
}

// View обрабатывает GET /callback/view.
func (h *CallbackTestHandler) View(c echo.Context) error {
	page, err := loadPage(c, h.pageService, models.PageKindCallback)
	if err != nil {
		return err
	}

	return c.Render(http.StatusOK, templates.Callback, callbackData{
		Token: requestToken(c),
		Page:  page.CallbackView.Snapshot(),
	})
}

// Submit обрабатывает POST /callback/submit. Проверка номера заказа выполняется контроллером.
func (h *CallbackTestHandler) Submit(c echo.Context) error {
	page, err := loadPage(c, h.pageService, models.PageKindCallback)
	if err != nil {
		return err
	}

	page.Callback.Submit(c.Request().Context(), c.FormValue("outTradeNo"))
	return redirectToView(c, callbackViewPath, requestToken(c))
}

// Copy обрабатывает POST /callback/copy.
func (h *CallbackTestHandler) Copy(c echo.Context) error {
	page, err := loadPage(c, h.pageService, models.PageKindCallback)
	if err != nil {
		return err
	}

	page.Callback.CopyResult(c.Request().Context())
	return redirectToView(c, callbackViewPath, requestToken(c))
}
