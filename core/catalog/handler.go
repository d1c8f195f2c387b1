package catalog

import (
	"context"
	"errors"
	"net/http"

	"github.com/passandplay/gamestore/api/web"
	"github.com/passandplay/gamestore/api/weberr"
)

func HandleList(cat *Catalog) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		tab := r.URL.Query().Get("tab")
		if tab == "" {
			tab = string(KindUsed)
		}

		games, err := cat.List(Kind(tab))
		if err != nil {
			return weberr.BadRequest(err)
		}

		return web.Respond(ctx, w, games, http.StatusOK)
	}
}

func HandleShow(cat *Catalog) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		g, err := cat.Find(web.Param(r, "id"))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return weberr.NotFound(err)
			}
			return err
		}

		return web.Respond(ctx, w, g, http.StatusOK)
	}
}
