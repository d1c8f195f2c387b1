package checkout

import (
	"context"
	"errors"
	"testing"

	"github.com/alexedwards/scs/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/passandplay/gamestore/core/cart"
	"github.com/passandplay/gamestore/core/catalog"
	"github.com/passandplay/gamestore/validate"
	"github.com/shopspring/decimal"
)

func game(id, price string) catalog.Game {
	return catalog.Game{
		ID:        id,
		Title:     "Game " + id,
		Platform:  "PS4",
		Price:     decimal.RequireFromString(price),
		Kind:      catalog.KindUsed,
		Condition: "Good",
		Cover:     catalog.LocalAsset{Name: id + ".jpg"},
	}
}

func cartOf(games ...catalog.Game) *cart.Cart {
	var c cart.Cart
	for _, g := range games {
		c.Add(g)
	}
	return &c
}

var fullShipping = Shipping{
	FirstName: "John",
	LastName:  "Doe",
	Address:   "123 Main St",
	City:      "New York",
	State:     "NY",
	ZipCode:   "10001",
	Country:   "United States",
	Phone:     "(123) 456-7890",
}

var fullPayment = Payment{
	CardNumber: "1234 5678 9012 3456",
	CardName:   "John Doe",
	ExpiryDate: "12/29",
	CVV:        "123",
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name string
		cart *cart.Cart
		want SummaryView
	}{
		{
			name: "free shipping",
			cart: cartOf(game("a", "60.00")),
			want: SummaryView{Subtotal: "60.00", Tax: "4.20", Shipping: "0.00", FreeShipping: true, Total: "64.20"},
		},
		{
			name: "paid shipping",
			cart: cartOf(game("a", "30.00")),
			want: SummaryView{Subtotal: "30.00", Tax: "2.10", Shipping: "5.99", Total: "38.09"},
		},
		{
			name: "threshold is exclusive",
			cart: cartOf(game("a", "25.00"), game("a", "25.00")),
			want: SummaryView{Subtotal: "50.00", Tax: "3.50", Shipping: "5.99", Total: "59.49"},
		},
		{
			name: "empty cart",
			cart: cartOf(),
			want: SummaryView{Subtotal: "0.00", Tax: "0.00", Shipping: "5.99", Total: "5.99"},
		},
	}

	p := DefaultPricing()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, p.Summarize(tt.cart).View()); diff != "" {
				t.Fatalf("unexpected summary (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSummarizeExact(t *testing.T) {
	s := DefaultPricing().Summarize(cartOf(game("a", "30")))

	if exp := decimal.RequireFromString("38.09"); !s.Total.Equal(exp) {
		t.Fatalf("expected exact total %s, got %s", exp, s.Total)
	}
}

func TestSummarizeFollowsCart(t *testing.T) {
	p := DefaultPricing()
	c := cartOf(game("a", "30"))

	if s := p.Summarize(c); s.FreeShipping() {
		t.Fatal("30.00 should not ship free")
	}

	c.Add(game("b", "25"))
	if s := p.Summarize(c); !s.FreeShipping() {
		t.Fatalf("55.00 should ship free, got shipping %s", s.Shipping)
	}
}

func TestBeginEmptyCart(t *testing.T) {
	f, err := Begin(cartOf())
	if !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
	if f != nil {
		t.Fatalf("expected no flow, got %+v", f)
	}
}

func TestFlow(t *testing.T) {
	p := DefaultPricing()
	c := cartOf(game("a", "20.00"), game("b", "45.00"), game("b", "45.00"))

	f, err := Begin(c)
	if err != nil {
		t.Fatal(err)
	}
	if f.Step != StepShipping {
		t.Fatalf("expected to start at %s, got %s", StepShipping, f.Step)
	}

	// Incomplete shipping.
	if err := f.SetShipping(Shipping{FirstName: "John", LastName: "Doe"}); err != nil {
		t.Fatal(err)
	}
	conf, err := f.Continue(c, p)
	var mf *MissingFieldsError
	if !errors.As(err, &mf) {
		t.Fatalf("expected MissingFieldsError, got %v", err)
	}
	if diff := cmp.Diff([]string{"address", "city", "state", "zipCode", "country", "phone"}, mf.Fields); diff != "" {
		t.Fatalf("unexpected missing fields (-want +got):\n%s", diff)
	}
	if conf != nil || f.Step != StepShipping {
		t.Fatalf("expected to stay at %s, got %s", StepShipping, f.Step)
	}

	// Complete shipping.
	if err := f.SetShipping(fullShipping); err != nil {
		t.Fatal(err)
	}
	if conf, err := f.Continue(c, p); err != nil || conf != nil {
		t.Fatalf("expected to move on without a confirmation, got %v, %v", conf, err)
	}
	if f.Step != StepPayment {
		t.Fatalf("expected %s, got %s", StepPayment, f.Step)
	}

	// Incomplete payment.
	if err := f.SetPayment(Payment{CardNumber: "4111"}); err != nil {
		t.Fatal(err)
	}
	_, err = f.Continue(c, p)
	if !errors.As(err, &mf) {
		t.Fatalf("expected MissingFieldsError, got %v", err)
	}
	if diff := cmp.Diff([]string{"cardName", "expiryDate", "cvv"}, mf.Fields); diff != "" {
		t.Fatalf("unexpected missing fields (-want +got):\n%s", diff)
	}
	if f.Step != StepPayment || c.Empty() {
		t.Fatal("a rejected payment step must leave the flow and cart untouched")
	}

	// Complete payment places the order.
	if err := f.SetPayment(fullPayment); err != nil {
		t.Fatal(err)
	}
	conf, err = f.Continue(c, p)
	if err != nil {
		t.Fatal(err)
	}

	if f.Step != StepPlaced {
		t.Fatalf("expected %s, got %s", StepPlaced, f.Step)
	}
	if !c.Empty() {
		t.Fatalf("expected the cart to be cleared, %d items left", c.Len())
	}
	if err := validate.CheckID(conf.OrderID); err != nil {
		t.Fatalf("order id %q: %v", conf.OrderID, err)
	}
	if len(conf.Reference) != 8 {
		t.Fatalf("expected an 8 character reference, got %q", conf.Reference)
	}
	if conf.ShipTo != "John Doe" || conf.Message != PlacedMessage {
		t.Fatalf("unexpected confirmation %+v", conf)
	}
	if len(conf.Items) != 2 {
		t.Fatalf("expected 2 confirmed lines, got %d", len(conf.Items))
	}
	want := SummaryView{Subtotal: "110.00", Tax: "7.70", Shipping: "0.00", FreeShipping: true, Total: "117.70"}
	if diff := cmp.Diff(want, conf.Summary); diff != "" {
		t.Fatalf("unexpected summary (-want +got):\n%s", diff)
	}
	if f.Payment != (Payment{}) || f.Shipping != (Shipping{}) {
		t.Fatal("form data should be discarded once the order is placed")
	}

	if _, err := f.Continue(c, p); !errors.Is(err, ErrPlaced) {
		t.Fatalf("expected ErrPlaced, got %v", err)
	}
}

func TestBack(t *testing.T) {
	f := &Flow{Step: StepShipping}
	if err := f.SetShipping(fullShipping); err != nil {
		t.Fatal(err)
	}
	if _, err := f.Continue(cartOf(game("a", "1")), DefaultPricing()); err != nil {
		t.Fatal(err)
	}

	if !f.Back() {
		t.Fatal("back from payment should keep the flow")
	}
	if f.Step != StepShipping {
		t.Fatalf("expected %s, got %s", StepShipping, f.Step)
	}
	if diff := cmp.Diff(fullShipping, f.Shipping); diff != "" {
		t.Fatalf("shipping form lost on back (-want +got):\n%s", diff)
	}

	if f.Back() {
		t.Fatal("back from shipping should abandon the flow")
	}
}

func TestSetWrongStep(t *testing.T) {
	f := &Flow{Step: StepShipping}
	if err := f.SetPayment(fullPayment); !errors.Is(err, ErrWrongStep) {
		t.Fatalf("expected ErrWrongStep, got %v", err)
	}

	f.Step = StepPayment
	if err := f.SetShipping(fullShipping); !errors.Is(err, ErrWrongStep) {
		t.Fatalf("expected ErrWrongStep, got %v", err)
	}
}

func TestPlaceEmptiedCart(t *testing.T) {
	c := cartOf(game("a", "10"))
	f := &Flow{Step: StepPayment, Shipping: fullShipping, Payment: fullPayment}

	c.Clear()
	if _, err := f.Continue(c, DefaultPricing()); !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
	if f.Step != StepPayment {
		t.Fatalf("expected to stay at %s, got %s", StepPayment, f.Step)
	}
}

func TestMask(t *testing.T) {
	tests := map[string]string{
		"":                    "",
		"123":                 "123",
		"4111111111111111":    "************1111",
		"1234 5678 9012 3456": "***************3456",
	}
	for in, want := range tests {
		if got := mask(in); got != want {
			t.Fatalf("mask(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSession(t *testing.T) {
	sm := scs.New()
	ctx, err := sm.Load(context.Background(), "")
	if err != nil {
		t.Fatal(err)
	}

	if _, err := Load(ctx, sm); !errors.Is(err, ErrNoFlow) {
		t.Fatalf("expected ErrNoFlow, got %v", err)
	}

	f := &Flow{Step: StepPayment, Shipping: fullShipping}
	Save(ctx, sm, f)

	token, _, err := sm.Commit(ctx)
	if err != nil {
		t.Fatal(err)
	}
	ctx, err = sm.Load(context.Background(), token)
	if err != nil {
		t.Fatal(err)
	}

	got, err := Load(ctx, sm)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(f, got); diff != "" {
		t.Fatalf("flow changed across the session store (-want +got):\n%s", diff)
	}

	Drop(ctx, sm)
	if _, err := Load(ctx, sm); !errors.Is(err, ErrNoFlow) {
		t.Fatalf("expected ErrNoFlow after drop, got %v", err)
	}
}
