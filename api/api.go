package api

import (
	"context"
	"net/http"

	"github.com/alexedwards/scs/v2"
	"github.com/gorilla/mux"
	"github.com/passandplay/gamestore/api/middleware"
	"github.com/passandplay/gamestore/api/web"
	"github.com/passandplay/gamestore/core/auth"
	"github.com/passandplay/gamestore/core/cart"
	"github.com/passandplay/gamestore/core/catalog"
	"github.com/passandplay/gamestore/core/checkout"
	"github.com/passandplay/gamestore/rate"
	"github.com/sirupsen/logrus"
)

type APIConfig struct {
	CorsOrigin  string
	Log         logrus.FieldLogger
	Session     *scs.SessionManager
	Catalog     *catalog.Catalog
	Pricing     checkout.Pricing
	AuthLimiter *rate.Limiter
}

type api struct {
	*mux.Router
	mw  []web.Middleware
	log logrus.FieldLogger
}

func APIMux(cfg APIConfig) http.Handler {
	a := &api{
		Router: mux.NewRouter(),
		log:    cfg.Log,
	}

	a.mw = append(a.mw, auth.LoadAndSave(cfg.Session))
	a.mw = append(a.mw, middleware.RequestID())
	a.mw = append(a.mw, middleware.Logger(cfg.Log))
	a.mw = append(a.mw, middleware.Errors(cfg.Log))
	a.mw = append(a.mw, middleware.Panics())

	if cfg.CorsOrigin != "" {
		a.mw = append(a.mw, middleware.Cors(cfg.CorsOrigin))

		h := func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
			w.WriteHeader(http.StatusNoContent)
			return nil
		}

		a.Handle(http.MethodOptions, "/{path:.*}", h)
	}

	authen := auth.Authenticate(cfg.Session)

	var limit web.Middleware
	if cfg.AuthLimiter != nil {
		limit = middleware.RateLimit(cfg.AuthLimiter)
	}

	a.Handle(http.MethodPost, "/auth/login", auth.HandleLogin(cfg.Session), limit)
	a.Handle(http.MethodPost, "/auth/register", auth.HandleRegister(cfg.Log), limit)
	a.Handle(http.MethodPost, "/auth/logout", auth.HandleLogout(cfg.Session))

	a.Handle(http.MethodGet, "/games", catalog.HandleList(cfg.Catalog), authen)
	a.Handle(http.MethodGet, "/games/{id}", catalog.HandleShow(cfg.Catalog), authen)
	a.Handle(http.MethodPost, "/games/{id}/buy", checkout.HandleBuyNow(cfg.Session, cfg.Catalog, cfg.Pricing), authen)

	a.Handle(http.MethodGet, "/cart", cart.HandleShow(cfg.Session), authen)
	a.Handle(http.MethodDelete, "/cart", cart.HandleDelete(cfg.Session), authen)
	a.Handle(http.MethodPut, "/cart/items", cart.HandleCreateItem(cfg.Session, cfg.Catalog), authen)
	a.Handle(http.MethodDelete, "/cart/items/{game_id}", cart.HandleDeleteItem(cfg.Session), authen)
	a.Handle(http.MethodPost, "/cart/items/{game_id}/increase", cart.HandleIncreaseItem(cfg.Session), authen)
	a.Handle(http.MethodPost, "/cart/items/{game_id}/decrease", cart.HandleDecreaseItem(cfg.Session), authen)

	a.Handle(http.MethodPost, "/checkout", checkout.HandleBegin(cfg.Session, cfg.Pricing), authen)
	a.Handle(http.MethodGet, "/checkout", checkout.HandleShow(cfg.Session, cfg.Pricing), authen)
	a.Handle(http.MethodPut, "/checkout/shipping", checkout.HandleUpdateShipping(cfg.Session, cfg.Pricing), authen)
	a.Handle(http.MethodPut, "/checkout/payment", checkout.HandleUpdatePayment(cfg.Session, cfg.Pricing), authen)
	a.Handle(http.MethodPost, "/checkout/continue", checkout.HandleContinue(cfg.Session, cfg.Pricing, cfg.Log), authen)
	a.Handle(http.MethodPost, "/checkout/back", checkout.HandleBack(cfg.Session, cfg.Pricing), authen)

	return a.Router
}

func (a *api) Handle(method string, path string, handler web.Handler, mw ...web.Middleware) {

	handler = web.WrapMiddleware(mw, handler)

	handler = web.WrapMiddleware(a.mw, handler)

	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		ctx := r.Context()

		if err := handler(ctx, w, r); err != nil {

			a.log.WithFields(logrus.Fields{
				"req_id":  middleware.ContextRequestID(ctx),
				"message": err,
			}).Error("ERROR")
		}
	})

	a.Router.Handle(path, h).Methods(method)
}
