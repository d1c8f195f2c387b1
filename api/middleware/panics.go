package middleware

import (
	"context"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/passandplay/gamestore/api/web"
	"github.com/passandplay/gamestore/api/weberr"
)

// Panics converts a panic in the handler into an internal error so the
// Errors middleware can report it.
func Panics() web.Middleware {
	m := func(handler web.Handler) web.Handler {
		h := func(ctx context.Context, w http.ResponseWriter, r *http.Request) (err error) {
			defer func() {
				if rec := recover(); rec != nil {
					err = weberr.InternalError(
						fmt.Errorf("panic: %v", rec),
						weberr.WithFields(map[string]any{"trace": string(debug.Stack())}),
					)
				}
			}()

			return handler(ctx, w, r)
		}
		return h
	}
	return m
}
