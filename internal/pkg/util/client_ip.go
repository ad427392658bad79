package util

import (
	"net"
	"net/http"
	"strings"
)

// UnknownIP 无法解析客户端地址时的兜底标识
const UnknownIP = "unknown"

// ResolveClientIP 按 X-Forwarded-For / X-Real-IP / RemoteAddr 的顺序解析客户端 IP
//
// X-Forwarded-For 可能包含逗号分隔的代理链，取第一个条目
func ResolveClientIP(headers http.Header, remoteAddr string) string {
	if xfwd := headers.Get("X-Forwarded-For"); xfwd != "" {
		if ip := strings.TrimSpace(strings.Split(xfwd, ",")[0]); ip != "" {
			return ip
		}
	}

	if xreal := strings.TrimSpace(headers.Get("X-Real-Ip")); xreal != "" {
		return xreal
	}

	if remoteAddr != "" {
		if host, _, err := net.SplitHostPort(remoteAddr); err == nil && host != "" {
			return host
		}
		return remoteAddr
	}

	return UnknownIP
}
