package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/passandplay/gamestore/api/web"
	"github.com/sirupsen/logrus"
	"github.com/zenazn/goji/web/mutil"
)

// Logger writes one "completed" entry per request with its status, size and
// duration. Requests answered with a server error are logged at warn level.
func Logger(log logrus.FieldLogger) web.Middleware {
	m := func(handler web.Handler) web.Handler {
		h := func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
			fields := logrus.Fields{
				"req_id": ContextRequestID(ctx),
				"method": r.Method,
				"path":   r.URL.Path,
				"remote": r.RemoteAddr,
			}
			if q := r.URL.RawQuery; q != "" {
				fields["query"] = q
			}
			if r.Header.Get(RequestIDHeader) != "" {
				fields["req_id_source"] = "client"
			}
			if ua := r.UserAgent(); ua != "" {
				fields["user_agent"] = ua
			}

			entry := log.WithFields(fields)
			entry.Debug("started")
			start := time.Now()

			lw := mutil.WrapWriter(w)
			err := handler(ctx, lw, r)

			status := lw.Status()
			if status == 0 {
				status = http.StatusOK
			}

			entry = entry.WithFields(logrus.Fields{
				"status": status,
				"bytes":  lw.BytesWritten(),
				"took":   time.Since(start).String(),
			})
			if status >= http.StatusInternalServerError {
				entry.Warn("completed")
			} else {
				entry.Info("completed")
			}
			return err
		}
		return h
	}
	return m
}
