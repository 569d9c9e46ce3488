package auth

import (
	"errors"
	"time"

	"github.com/agamariel/paymall-console/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// PageClaims адресует открытую страницу в подписанном токене.
type PageClaims struct {
	PageID uuid.UUID       `json:"page_id"`
	Kind   models.PageKind `json:"kind"`
	jwt.RegisteredClaims
}

var (
	// ErrInvalidToken возвращается при невалидном токене.
	ErrInvalidToken = errors.New("invalid token")
)

// GeneratePageToken подписывает токен страницы.
func GeneratePageToken(pageID uuid.UUID, kind models.PageKind, secret string, expiration time.Duration) (string, error) {
	now := time.Now()
	claims := PageClaims{
		PageID: pageID,
		Kind:   kind,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(expiration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ValidatePageToken проверяет подпись и срок токена и возвращает claims.
// Любая ошибка разбора оборачивает ErrInvalidToken.
func ValidatePageToken(tokenString, secret string) (*PageClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &PageClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Проверка метода подписи
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, errors.Join(ErrInvalidToken, err)
	}

	if claims, ok := token.Claims.(*PageClaims); ok && token.Valid && claims.PageID != uuid.Nil {
		return claims, nil
	}

	return nil, ErrInvalidToken
}
