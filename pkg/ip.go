package pkg

import (
	"net"
	"net/http"
	"strings"
)

// ClientIP returns the address of the caller, preferring the headers set by
// the reverse proxy. The port, if any, is dropped.
func ClientIP(r *http.Request) string {
	addr := r.Header.Get("X-Real-Ip")
	if addr == "" {
		// the first entry is the original client
		if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
			addr, _, _ = strings.Cut(forwarded, ",")
		}
	}
	if addr == "" {
		addr = r.RemoteAddr
	}
	addr = strings.TrimSpace(addr)

	if host, _, err := net.SplitHostPort(addr); err == nil {
		addr = host
	}
	if net.ParseIP(addr) == nil {
		return "unknown"
	}
	return addr
}
