package handlers

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/agamariel/paymall-console/internal/auth"
	"github.com/agamariel/paymall-console/internal/models"
	"github.com/agamariel/paymall-console/internal/services"
	"github.com/labstack/echo/v4"
)

// loadPage возвращает страницу, адресованную токеном запроса.
func loadPage(c echo.Context, pageService services.PageService, kind models.PageKind) (*services.Page, error) {
	claims, err := auth.GetPageClaimsFromContext(c)
	if err != nil {
		return nil, err
	}

	page, err := pageService.Get(c.Request().Context(), claims, kind)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPageNotFound), errors.Is(err, services.ErrPageKindMismatch):
			return nil, echo.NewHTTPError(http.StatusNotFound, "page not found or expired")
		default:
			c.Logger().Errorf("load page: %v", err)
			return nil, echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
		}
	}
	return page, nil
}

// redirectToView возвращает браузер на страницу после действия.
func redirectToView(c echo.Context, path, token string) error {
	if token != "" {
		path += "?" + url.Values{auth.TokenParam: {token}}.Encode()
	}
	return c.Redirect(http.StatusSeeOther, path)
}

// requestToken возвращает токен, пришедший в форме или query, если он был.
func requestToken(c echo.Context) string {
	return c.FormValue(auth.TokenParam)
}

// Health обрабатывает GET /healthz.
func Health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}
