package checkout

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/alexedwards/scs/v2"
	"github.com/passandplay/gamestore/api/middleware"
	"github.com/passandplay/gamestore/api/web"
	"github.com/passandplay/gamestore/api/weberr"
	"github.com/passandplay/gamestore/core/cart"
	"github.com/passandplay/gamestore/core/catalog"
	"github.com/passandplay/gamestore/core/claims"
	"github.com/sirupsen/logrus"
)

const (
	msgMissing   = "Please fill in all required fields."
	msgEmptyCart = "Your cart is empty. Add items before checking out."
)

type PaymentView struct {
	CardNumber string `json:"cardNumber"`
	CardName   string `json:"cardName"`
	ExpiryDate string `json:"expiryDate"`
	CVVSet     bool   `json:"cvvSet"`
}

type View struct {
	Step     Step        `json:"step"`
	Shipping Shipping    `json:"shipping"`
	Payment  PaymentView `json:"payment"`
	Cart     cart.View   `json:"cart"`
	Summary  SummaryView `json:"summary"`
}

func NewView(f *Flow, c *cart.Cart, p Pricing) View {
	return View{
		Step:     f.Step,
		Shipping: f.Shipping,
		Payment: PaymentView{
			CardNumber: mask(f.Payment.CardNumber),
			CardName:   f.Payment.CardName,
			ExpiryDate: f.Payment.ExpiryDate,
			CVVSet:     f.Payment.CVV != "",
		},
		Cart:    cart.NewView(c),
		Summary: p.Summarize(c).View(),
	}
}

// mask hides all but the last four characters of a card number.
func mask(s string) string {
	r := []rune(s)
	if len(r) <= 4 {
		return s
	}
	return strings.Repeat("*", len(r)-4) + string(r[len(r)-4:])
}

func respondError(err error) error {
	var mf *MissingFieldsError
	switch {
	case errors.As(err, &mf):
		return weberr.Unprocessable(err, msgMissing, mf.Fields...)
	case errors.Is(err, ErrEmptyCart):
		return weberr.NewError(err, msgEmptyCart, http.StatusUnprocessableEntity)
	case errors.Is(err, ErrNoFlow), errors.Is(err, ErrWrongStep), errors.Is(err, ErrPlaced):
		return weberr.NewError(err, err.Error(), http.StatusConflict)
	}
	return err
}

func begin(ctx context.Context, sm *scs.SessionManager, c *cart.Cart) (*Flow, error) {
	f, err := Begin(c)
	if err != nil {
		return nil, respondError(err)
	}
	Save(ctx, sm, f)
	return f, nil
}

func HandleBegin(sm *scs.SessionManager, p Pricing) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		c := cart.Load(ctx, sm)

		f, err := begin(ctx, sm, c)
		if err != nil {
			return err
		}

		return web.Respond(ctx, w, NewView(f, c, p), http.StatusCreated)
	}
}

// HandleBuyNow adds a single game to the cart and starts a checkout.
func HandleBuyNow(sm *scs.SessionManager, cat *catalog.Catalog, p Pricing) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		id := web.Param(r, "id")
		g, err := cat.Find(id)
		if err != nil {
			if errors.Is(err, catalog.ErrNotFound) {
				return weberr.NotFound(err)
			}
			return fmt.Errorf("looking up game[%s]: %w", id, err)
		}

		c := cart.Load(ctx, sm)
		c.Add(g)
		cart.Save(ctx, sm, c)

		f, err := begin(ctx, sm, c)
		if err != nil {
			return err
		}

		return web.Respond(ctx, w, NewView(f, c, p), http.StatusCreated)
	}
}

func HandleShow(sm *scs.SessionManager, p Pricing) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		f, err := Load(ctx, sm)
		if err != nil {
			return respondError(err)
		}

		return web.Respond(ctx, w, NewView(f, cart.Load(ctx, sm), p), http.StatusOK)
	}
}

func HandleUpdateShipping(sm *scs.SessionManager, p Pricing) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		f, err := Load(ctx, sm)
		if err != nil {
			return respondError(err)
		}

		var in Shipping
		if err := web.Decode(w, r, &in); err != nil {
			return weberr.BadRequest(fmt.Errorf("unable to decode payload: %w", err))
		}

		if err := f.SetShipping(in); err != nil {
			return respondError(err)
		}
		Save(ctx, sm, f)

		return web.Respond(ctx, w, NewView(f, cart.Load(ctx, sm), p), http.StatusOK)
	}
}

func HandleUpdatePayment(sm *scs.SessionManager, p Pricing) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		f, err := Load(ctx, sm)
		if err != nil {
			return respondError(err)
		}

		var in Payment
		if err := web.Decode(w, r, &in); err != nil {
			return weberr.BadRequest(fmt.Errorf("unable to decode payload: %w", err))
		}

		if err := f.SetPayment(in); err != nil {
			return respondError(err)
		}
		Save(ctx, sm, f)

		return web.Respond(ctx, w, NewView(f, cart.Load(ctx, sm), p), http.StatusOK)
	}
}

// HandleContinue moves the checkout forward. Placing the order clears the
// cart, ends the checkout and responds with the confirmation.
func HandleContinue(sm *scs.SessionManager, p Pricing, log logrus.FieldLogger) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		f, err := Load(ctx, sm)
		if err != nil {
			return respondError(err)
		}
		c := cart.Load(ctx, sm)

		conf, err := f.Continue(c, p)
		if err != nil {
			return respondError(err)
		}

		if conf == nil {
			Save(ctx, sm, f)
			return web.Respond(ctx, w, NewView(f, c, p), http.StatusOK)
		}

		cart.Save(ctx, sm, c)
		Drop(ctx, sm)

		var email string
		if clm, err := claims.Get(ctx); err == nil {
			email = clm.Email
		}

		log.WithFields(logrus.Fields{
			"req_id":    middleware.ContextRequestID(ctx),
			"email":     email,
			"order_id":  conf.OrderID,
			"reference": conf.Reference,
			"items":     len(conf.Items),
			"total":     conf.Summary.Total,
		}).Info("order placed")

		return web.Respond(ctx, w, conf, http.StatusCreated)
	}
}

func HandleBack(sm *scs.SessionManager, p Pricing) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		f, err := Load(ctx, sm)
		if err != nil {
			return respondError(err)
		}

		if !f.Back() {
			Drop(ctx, sm)
			return web.Respond(ctx, w, nil, http.StatusNoContent)
		}
		Save(ctx, sm, f)

		return web.Respond(ctx, w, NewView(f, cart.Load(ctx, sm), p), http.StatusOK)
	}
}
