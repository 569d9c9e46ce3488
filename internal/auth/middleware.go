package auth

import (
	"net/http"

	"github.com/agamariel/paymall-console/internal/models"
	"github.com/labstack/echo/v4"
)

// ContextKey - тип для ключей контекста.
type ContextKey string

const (
	// PageClaimsKey - ключ для хранения claims страницы в контексте.
	PageClaimsKey ContextKey = "page_claims"

	// TokenParam - поле формы или query с токеном страницы.
	TokenParam = "p"
)

// PageTokenMiddleware создаёт middleware для проверки токена страницы.
// Токен берётся из поля формы или query "p", затем из cookie страницы.
func PageTokenMiddleware(secret string, kind models.PageKind) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := c.FormValue(TokenParam)

			if token == "" {
				token = extractTokenFromCookie(c, kind)
			}

			if token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing page token")
			}

			claims, err := ValidatePageToken(token, secret)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid page token")
			}

			c.Set(string(PageClaimsKey), claims)

			return next(c)
		}
	}
}

// CookieName возвращает имя cookie с токеном страницы данного типа.
func CookieName(kind models.PageKind) string {
	return "paymall_" + string(kind)
}

// SetPageCookie сохраняет токен страницы в cookie.
func SetPageCookie(c echo.Context, kind models.PageKind, token string) {
	c.SetCookie(&http.Cookie{
		Name:     CookieName(kind),
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// extractTokenFromCookie извлекает токен из cookie.
func extractTokenFromCookie(c echo.Context, kind models.PageKind) string {
	cookie, err := c.Cookie(CookieName(kind))
	if err != nil {
		return ""
	}
	return cookie.Value
}

// GetPageClaimsFromContext извлекает claims страницы из контекста.
func GetPageClaimsFromContext(c echo.Context) (*PageClaims, error) {
	claims, ok := c.Get(string(PageClaimsKey)).(*PageClaims)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "page not found in context")
	}
	return claims, nil
}
