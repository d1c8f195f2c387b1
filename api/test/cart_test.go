package test

import (
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type cartTest struct {
	*TestEnv
}

func (ct *cartTest) addItemOK(t *testing.T, gameID string) cartView {
	t.Helper()

	var v cartView
	if code := ct.Do(t, http.MethodPut, "/cart/items", map[string]string{"gameId": gameID}, &v); code != http.StatusOK {
		t.Fatalf("can't add game[%s] to cart: status code %d", gameID, code)
	}
	return v
}

func (ct *cartTest) showOK(t *testing.T) cartView {
	t.Helper()

	var v cartView
	if code := ct.Do(t, http.MethodGet, "/cart", nil, &v); code != http.StatusOK {
		t.Fatalf("can't show cart: status code %d", code)
	}
	return v
}

func quantities(v cartView) map[string]int {
	out := make(map[string]int)
	for _, it := range v.Items {
		out[it.ID] = it.Quantity
	}
	return out
}

func TestCart(t *testing.T) {
	env := NewTestEnv(t, nil)
	env.Login(t)
	ct := &cartTest{env}

	if v := ct.showOK(t); v.Count != 0 || v.Total != "0.00" || len(v.Items) != 0 {
		t.Fatalf("expected an empty cart, got %+v", v)
	}

	ct.addItemOK(t, "u-001")
	ct.addItemOK(t, "n-002")
	v := ct.addItemOK(t, "u-001")

	if v.Count != 3 || v.Total != "69.97" {
		t.Fatalf("expected 3 copies for 69.97, got %d for %s", v.Count, v.Total)
	}
	if diff := cmp.Diff([]string{"u-001", "n-002"}, []string{v.Items[0].ID, v.Items[1].ID}); diff != "" {
		t.Fatalf("unexpected order (-want +got):\n%s", diff)
	}
	if v.Items[0].LineTotal != "39.98" {
		t.Fatalf("expected line total 39.98, got %s", v.Items[0].LineTotal)
	}

	steps := []struct {
		method string
		path   string
		want   map[string]int
	}{
		{http.MethodPost, "/cart/items/n-002/increase", map[string]int{"u-001": 2, "n-002": 2}},
		{http.MethodPost, "/cart/items/u-001/decrease", map[string]int{"u-001": 1, "n-002": 2}},
		{http.MethodPost, "/cart/items/u-001/decrease", map[string]int{"n-002": 2}},
		{http.MethodPost, "/cart/items/u-001/increase", map[string]int{"n-002": 2}},
		{http.MethodDelete, "/cart/items/u-999", map[string]int{"n-002": 2}},
		{http.MethodDelete, "/cart/items/n-002", map[string]int{}},
	}

	for _, s := range steps {
		var v cartView
		if code := ct.Do(t, s.method, s.path, nil, &v); code != http.StatusOK {
			t.Fatalf("%s %s: status code %d", s.method, s.path, code)
		}
		if diff := cmp.Diff(s.want, quantities(v)); diff != "" {
			t.Fatalf("%s %s: unexpected cart (-want +got):\n%s", s.method, s.path, diff)
		}
	}

	// The session keeps the cart between requests.
	ct.addItemOK(t, "n-001")
	if v := ct.showOK(t); v.Count != 1 {
		t.Fatalf("expected 1 copy in the stored cart, got %d", v.Count)
	}

	if code := ct.Do(t, http.MethodDelete, "/cart", nil, nil); code != http.StatusNoContent {
		t.Fatalf("can't clear cart: status code %d", code)
	}
	if v := ct.showOK(t); v.Count != 0 || v.Total != "0.00" {
		t.Fatalf("expected an empty cart after clear, got %+v", v)
	}
}

func TestCartErrors(t *testing.T) {
	env := NewTestEnv(t, nil)
	env.Login(t)

	tests := []struct {
		name string
		body any
		code int
	}{
		{"unknown game", map[string]string{"gameId": "u-999"}, http.StatusNotFound},
		{"missing id", map[string]string{"gameId": ""}, http.StatusUnprocessableEntity},
		{"unknown field", map[string]string{"game": "u-001"}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if code := env.Do(t, http.MethodPut, "/cart/items", tt.body, nil); code != tt.code {
				t.Fatalf("expected status %d, got %d", tt.code, code)
			}
		})
	}
}

func TestCartsAreSeparate(t *testing.T) {
	a := NewTestEnv(t, nil)
	a.Login(t)
	(&cartTest{a}).addItemOK(t, "u-001")

	b := a.NewClient(t)
	b.Login(t)

	if v := (&cartTest{b}).showOK(t); v.Count != 0 {
		t.Fatalf("expected a fresh cart for another session, got %d copies", v.Count)
	}
	if v := (&cartTest{a}).showOK(t); v.Count != 1 {
		t.Fatalf("expected the first session to keep its cart, got %d copies", v.Count)
	}
}
