package auth

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/agamariel/paymall-console/internal/models"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func TestPageTokenMiddleware(t *testing.T) {
	secret := "test-secret"
	pageID := uuid.New()

	validToken, _ := GeneratePageToken(pageID, models.PageKindOrders, secret, time.Hour)
	expiredToken, _ := GeneratePageToken(pageID, models.PageKindOrders, secret, -time.Hour)

	tests := []struct {
		name           string
		token          string
		tokenLocation  string // "query", "form", "cookie", "other-cookie"
		expectedStatus int
	}{
		{
			name:           "valid token in query",
			token:          validToken,
			tokenLocation:  "query",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "valid token in form",
			token:          validToken,
			tokenLocation:  "form",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "valid token in cookie",
			token:          validToken,
			tokenLocation:  "cookie",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "cookie of another page kind",
			token:          validToken,
			tokenLocation:  "other-cookie",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "missing token",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "invalid token",
			token:          "invalid.token.here",
			tokenLocation:  "query",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "expired token",
			token:          expiredToken,
			tokenLocation:  "form",
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			var req *http.Request

			switch tt.tokenLocation {
			case "query":
				req = httptest.NewRequest(http.MethodGet, "/?p="+url.QueryEscape(tt.token), nil)
			case "form":
				form := url.Values{TokenParam: {tt.token}}
				req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
				req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
			case "cookie":
				req = httptest.NewRequest(http.MethodGet, "/", nil)
				req.AddCookie(&http.Cookie{Name: CookieName(models.PageKindOrders), Value: tt.token})
			case "other-cookie":
				req = httptest.NewRequest(http.MethodGet, "/", nil)
				req.AddCookie(&http.Cookie{Name: CookieName(models.PageKindCallback), Value: tt.token})
			default:
				req = httptest.NewRequest(http.MethodGet, "/", nil)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			handler := func(c echo.Context) error {
				return c.String(http.StatusOK, "success")
			}
			h := PageTokenMiddleware(secret, models.PageKindOrders)(handler)

			err := h(c)

			if tt.expectedStatus == http.StatusOK {
				if err != nil {
					t.Fatalf("Expected no error, got %v", err)
				}
				claims, err := GetPageClaimsFromContext(c)
				if err != nil {
					t.Fatalf("GetPageClaimsFromContext() error = %v", err)
				}
				if claims.PageID != pageID {
					t.Errorf("PageID mismatch: got %v, want %v", claims.PageID, pageID)
				}
				return
			}

			he, ok := err.(*echo.HTTPError)
			if !ok {
				t.Fatalf("Expected *echo.HTTPError, got %v", err)
			}
			if he.Code != tt.expectedStatus {
				t.Errorf("Expected status %d, got %d", tt.expectedStatus, he.Code)
			}
		})
	}
}

func TestPageTokenMiddlewarePriority(t *testing.T) {
	// Токен из запроса имеет приоритет над cookie
	secret := "test-secret"
	validToken, _ := GeneratePageToken(uuid.New(), models.PageKindCallback, secret, time.Hour)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/?p="+url.QueryEscape(validToken), nil)
	req.AddCookie(&http.Cookie{Name: CookieName(models.PageKindCallback), Value: "invalid.token"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := PageTokenMiddleware(secret, models.PageKindCallback)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	if err := h(c); err != nil {
		t.Errorf("Expected no error with valid query token, got %v", err)
	}
}

func TestGetPageClaimsFromContext(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	claims := &PageClaims{PageID: uuid.New(), Kind: models.PageKindOrders}

	tests := []struct {
		name    string
		value   interface{}
		wantErr bool
	}{
		{name: "claims in context", value: claims},
		{name: "nothing in context", value: nil, wantErr: true},
		{name: "wrong type in context", value: "not-claims", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := e.NewContext(req, rec)
			if tt.value != nil {
				c.Set(string(PageClaimsKey), tt.value)
			}

			got, err := GetPageClaimsFromContext(c)
			if (err != nil) != tt.wantErr {
				t.Fatalf("GetPageClaimsFromContext() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != claims {
				t.Errorf("GetPageClaimsFromContext() = %v, want %v", got, claims)
			}
		})
	}
}

func TestSetPageCookie(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	SetPageCookie(c, models.PageKindOrders, "token123")

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("Expected 1 cookie, got %d", len(cookies))
	}
	if cookies[0].Name != "paymall_orders" || cookies[0].Value != "token123" {
		t.Errorf("cookie = %s=%s, want paymall_orders=token123", cookies[0].Name, cookies[0].Value)
	}
	if !cookies[0].HttpOnly {
		t.Error("cookie must be HttpOnly")
	}
}
