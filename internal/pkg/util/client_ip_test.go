package util

import (
	"net/http"
	"testing"
)

func TestResolveClientIP(t *testing.T) {
	tests := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		want       string
	}{
		{"forwarded single", map[string]string{"X-Forwarded-For": "1.2.3.4"}, "10.0.0.1:5000", "1.2.3.4"},
		{"forwarded chain takes first", map[string]string{"X-Forwarded-For": "1.2.3.4, 5.6.7.8"}, "10.0.0.1:5000", "1.2.3.4"},
		{"forwarded with spaces", map[string]string{"X-Forwarded-For": "  1.2.3.4 , 5.6.7.8"}, "", "1.2.3.4"},
		{"real ip fallback", map[string]string{"X-Real-Ip": "9.9.9.9"}, "10.0.0.1:5000", "9.9.9.9"},
		{"forwarded wins over real ip", map[string]string{"X-Forwarded-For": "1.2.3.4", "X-Real-Ip": "9.9.9.9"}, "", "1.2.3.4"},
		{"remote addr strips port", nil, "10.0.0.1:5000", "10.0.0.1"},
		{"remote addr without port", nil, "10.0.0.1", "10.0.0.1"},
		{"ipv6 remote addr", nil, "[2001:db8::1]:5000", "2001:db8::1"},
		{"nothing resolves", nil, "", "unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			headers := http.Header{}
			for k, v := range tt.headers {
				headers.Set(k, v)
			}
			if got := ResolveClientIP(headers, tt.remoteAddr); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
