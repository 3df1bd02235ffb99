package helpers

import (
	"net"
	"net/http"
	"strings"
)

// GetClientIP returns the client address of r. X-Forwarded-For is only
// honored when the direct peer is one of trustedProxies.
func GetClientIP(r *http.Request, trustedProxies []string) string {
	peer, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		peer = r.RemoteAddr
	}

	forwarded := r.Header.Get("X-Forwarded-For")
	if forwarded == "" || !isTrustedProxy(peer, trustedProxies) {
		return peer
	}

	first, _, _ := strings.Cut(forwarded, ",")
	return strings.TrimSpace(first)
}

func isTrustedProxy(ip string, trustedProxies []string) bool {
	parsed := net.ParseIP(ip)
	if parsed == nil {
		return false
	}

	for _, proxy := range trustedProxies {
		if strings.Contains(proxy, "/") {
			_, network, err := net.ParseCIDR(proxy)
			if err == nil && network.Contains(parsed) {
				return true
			}
			continue
		}
		if parsed.Equal(net.ParseIP(proxy)) {
			return true
		}
	}
	return false
}
