package middleware

import (
	"context"
	"fmt"
	"net"
	"net/http"

	"github.com/passandplay/gamestore/api/web"
	"github.com/passandplay/gamestore/api/weberr"
	"github.com/passandplay/gamestore/rate"
)

// RateLimit rejects clients, keyed by remote IP, that exceed lim.
func RateLimit(lim *rate.Limiter) web.Middleware {
	m := func(handler web.Handler) web.Handler {
		h := func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}

			if !lim.Allow(ip) {
				return weberr.TooManyRequests(fmt.Errorf("rate limit exceeded for %s", ip))
			}

			return handler(ctx, w, r)
		}
		return h
	}
	return m
}
