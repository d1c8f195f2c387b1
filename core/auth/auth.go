package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/alexedwards/scs/v2"
	"github.com/passandplay/gamestore/api/web"
	"github.com/passandplay/gamestore/api/weberr"
	"github.com/passandplay/gamestore/core/claims"
)

const emailKey = "email"

// LoadAndSave loads the session of the request and commits any change made
// to it once the handler returns.
func LoadAndSave(sm *scs.SessionManager) web.Middleware {
	m := func(handler web.Handler) web.Handler {
		h := func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
			var err error
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				err = handler(r.Context(), w, r)
			})

			sm.LoadAndSave(next).ServeHTTP(w, r.WithContext(ctx))
			return err
		}
		return h
	}
	return m
}

// Authenticate lets through only sessions that have logged in, and puts
// their claims in the context.
func Authenticate(sm *scs.SessionManager) web.Middleware {
	m := func(handler web.Handler) web.Handler {
		h := func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
			email := sm.GetString(ctx, emailKey)
			if email == "" {
				return weberr.NotAuthorized(errors.New("session is not logged in"))
			}

			ctx = claims.Set(ctx, claims.Claims{Email: email})
			return handler(ctx, w, r)
		}
		return h
	}
	return m
}
