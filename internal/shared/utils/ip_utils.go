package utils

import (
	"net"
	"net/http"
	"strings"
)

// ExtractClientIP lấy IP thật của client.
// Thứ tự: X-Forwarded-For (IP đầu tiên), X-Real-IP, RemoteAddr.
func ExtractClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		clientIP := strings.TrimSpace(strings.Split(xff, ",")[0])
		if isValidIP(clientIP) {
			return clientIP
		}
	}

	if xri := strings.TrimSpace(r.Header.Get("X-Real-IP")); isValidIP(xri) {
		return xri
	}

	// RemoteAddr format: "IP:port" or "[IPv6]:port"
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		ip = r.RemoteAddr
	}
	if isValidIP(ip) {
		return ip
	}
	return ""
}

func isValidIP(ip string) bool {
	return ip != "" && net.ParseIP(ip) != nil
}
