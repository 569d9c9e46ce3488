package utils

import (
	"net/url"
	"strings"
)

// UserIDParam: имя параметра адреса страницы с ID пользователя.
const UserIDParam = "userId"

// UserIDFromURL извлекает ID пользователя из адреса страницы.
func UserIDFromURL(u *url.URL) string {
	if u == nil {
		return ""
	}
	return strings.TrimSpace(u.Query().Get(UserIDParam))
}

// ObfuscateUserID маскирует ID пользователя для показа на странице:
// оставляет по два символа с краёв, у коротких ID остаётся только первый символ.
func ObfuscateUserID(userID string) string {
	runes := []rune(userID)
	n := len(runes)
	switch {
	case n == 0:
		return ""
	case n <= 4:
		return string(runes[0]) + strings.Repeat("*", n-1)
	default:
		return string(runes[:2]) + strings.Repeat("*", n-4) + string(runes[n-2:])
	}
}
