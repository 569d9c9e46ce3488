package utils

import (
	"net"
	"strings"
)

const fallbackAPIPort = "8080"

// ResolveBaseURL возвращает адрес pay-mall для страницы.
// Настроенный адрес всегда в приоритете. Без него адрес строится от хоста страницы,
// и degraded = true: это аварийный режим на случай незагруженной конфигурации.
func ResolveBaseURL(configured, pageHost string) (baseURL string, degraded bool) {
	if configured = strings.TrimSpace(configured); configured != "" {
		return strings.TrimRight(configured, "/"), false
	}

	hostname := hostnameOf(pageHost)
	if hostname == "" || hostname == "localhost" || hostname == "127.0.0.1" {
		return "http://localhost:" + fallbackAPIPort, true
	}
	return "http://" + net.JoinHostPort(hostname, fallbackAPIPort), true
}

func hostnameOf(host string) string {
	host = strings.TrimSpace(host)
	if h, _, err := net.SplitHostPort(host); err == nil {
		return h
	}
	return strings.TrimSuffix(strings.TrimPrefix(host, "["), "]")
}
