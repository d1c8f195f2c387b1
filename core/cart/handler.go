package cart

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/alexedwards/scs/v2"
	"github.com/passandplay/gamestore/api/web"
	"github.com/passandplay/gamestore/api/weberr"
	"github.com/passandplay/gamestore/core/catalog"
	"github.com/passandplay/gamestore/validate"
)

type ItemNew struct {
	GameID string `json:"gameId" validate:"required"`
}

type ItemView struct {
	Item
	LineTotal string `json:"lineTotal"`
}

type View struct {
	Items []ItemView `json:"items"`
	Count int        `json:"count"`
	Total string     `json:"total"`
}

func NewView(c *Cart) View {
	items := make([]ItemView, 0, c.Len())
	for _, it := range c.Items() {
		items = append(items, ItemView{Item: it, LineTotal: it.LineTotal().StringFixed(2)})
	}

	return View{
		Items: items,
		Count: c.Count(),
		Total: c.Total().StringFixed(2),
	}
}

func HandleShow(sm *scs.SessionManager) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		return web.Respond(ctx, w, NewView(Load(ctx, sm)), http.StatusOK)
	}
}

func HandleDelete(sm *scs.SessionManager) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		c := Load(ctx, sm)
		if c.Empty() {
			return web.Respond(ctx, w, nil, http.StatusNoContent)
		}

		c.Clear()
		Save(ctx, sm, c)

		return web.Respond(ctx, w, nil, http.StatusNoContent)
	}
}

func HandleCreateItem(sm *scs.SessionManager, cat *catalog.Catalog) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		var in ItemNew
		if err := web.Decode(w, r, &in); err != nil {
			return weberr.BadRequest(fmt.Errorf("unable to decode payload: %w", err))
		}

		if err := validate.Check(in); err != nil {
			return weberr.NewError(err, err.Error(), http.StatusUnprocessableEntity)
		}

		g, err := cat.Find(in.GameID)
		if err != nil {
			if errors.Is(err, catalog.ErrNotFound) {
				return weberr.NotFound(err)
			}
			return fmt.Errorf("looking up game[%s]: %w", in.GameID, err)
		}

		c := Load(ctx, sm)
		c.Add(g)
		Save(ctx, sm, c)

		return web.Respond(ctx, w, NewView(c), http.StatusOK)
	}
}

// mutate applies op to the item named in the route. Unknown items are a
// no-op, the same as in the cart itself.
func mutate(sm *scs.SessionManager, op func(c *Cart, id string)) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		c := Load(ctx, sm)
		op(c, web.Param(r, "game_id"))
		Save(ctx, sm, c)

		return web.Respond(ctx, w, NewView(c), http.StatusOK)
	}
}

func HandleDeleteItem(sm *scs.SessionManager) web.Handler {
	return mutate(sm, (*Cart).Remove)
}

func HandleIncreaseItem(sm *scs.SessionManager) web.Handler {
	return mutate(sm, (*Cart).Increase)
}

func HandleDecreaseItem(sm *scs.SessionManager) web.Handler {
	return mutate(sm, (*Cart).Decrease)
}
