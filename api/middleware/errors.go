package middleware

import (
	"context"
	"net/http"

	"github.com/passandplay/gamestore/api/web"
	"github.com/passandplay/gamestore/api/weberr"
	"github.com/sirupsen/logrus"
)

// Errors logs any error returned by the handler chain and turns it into a
// JSON response. Errors carrying no response of their own become a 500.
func Errors(log logrus.FieldLogger) web.Middleware {
	m := func(handler web.Handler) web.Handler {
		h := func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {

			err := handler(ctx, w, r)
			if err == nil {
				return nil
			}

			fields := logrus.Fields{
				"req_id":  ContextRequestID(ctx),
				"message": err,
			}
			if f, ok := weberr.Fields(err); ok {
				for k, v := range f {
					fields[k] = v
				}
			}

			if body, code, ok := weberr.Response(err); ok {
				if code < http.StatusInternalServerError {
					log.WithFields(fields).Warn("request rejected")
				} else {
					log.WithFields(fields).Error("ERROR")
				}
				return web.Respond(ctx, w, body, code)
			}

			log.WithFields(fields).Error("ERROR")

			er := weberr.ErrorResponse{
				Error: http.StatusText(http.StatusInternalServerError),
			}
			return web.Respond(ctx, w, er, http.StatusInternalServerError)
		}
		return h
	}
	return m
}
