package test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/passandplay/gamestore/api"
	"github.com/passandplay/gamestore/core/catalog"
	"github.com/passandplay/gamestore/core/checkout"
	"github.com/passandplay/gamestore/rate"
	"github.com/sirupsen/logrus"
)

const (
	UserEmail = "player@passandplay.example"
	UserPass  = "hunter22"
)

type TestEnv struct {
	*httptest.Server
	client *http.Client
}

func NewTestEnv(t *testing.T, lim *rate.Limiter) *TestEnv {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	if lim == nil {
		lim = rate.NewLimiter(1000, time.Millisecond, time.Minute)
	}

	mux := api.APIMux(api.APIConfig{
		Log:         log,
		Session:     scs.New(),
		Catalog:     catalog.Default(),
		Pricing:     checkout.DefaultPricing(),
		AuthLimiter: lim,
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return (&TestEnv{Server: srv}).NewClient(t)
}

// NewClient returns an env talking to the same server from a client with
// its own cookie jar, and so its own session.
func (env *TestEnv) NewClient(t *testing.T) *TestEnv {
	t.Helper()

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatal(err)
	}

	return &TestEnv{
		Server: env.Server,
		client: &http.Client{Transport: env.Server.Client().Transport, Jar: jar},
	}
}

// Do sends body as JSON and decodes the response into out when out is not
// nil. It returns the status code.
func (env *TestEnv) Do(t *testing.T, method, path string, body, out any) int {
	t.Helper()

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		rd = bytes.NewReader(b)
	}

	r, err := http.NewRequest(method, env.URL+path, rd)
	if err != nil {
		t.Fatal(err)
	}
	if body != nil {
		r.Header.Set("Content-Type", "application/json")
	}

	w, err := env.client.Do(r)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Body.Close()

	if out != nil && w.StatusCode != http.StatusNoContent {
		if err := json.NewDecoder(w.Body).Decode(out); err != nil {
			t.Fatalf("%s %s: cannot decode response: %v", method, path, err)
		}
	}

	return w.StatusCode
}

func (env *TestEnv) Login(t *testing.T) {
	t.Helper()

	in := map[string]string{"email": UserEmail, "password": UserPass}
	if code := env.Do(t, http.MethodPost, "/auth/login", in, nil); code != http.StatusOK {
		t.Fatalf("can't login: status code %d", code)
	}
}

type errorResponse struct {
	Error  string   `json:"error"`
	Fields []string `json:"fields"`
}

type cartItem struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Price     string `json:"price"`
	Quantity  int    `json:"quantity"`
	LineTotal string `json:"lineTotal"`
}

type cartView struct {
	Items []cartItem `json:"items"`
	Count int        `json:"count"`
	Total string     `json:"total"`
}

type summaryView struct {
	Subtotal     string `json:"subtotal"`
	Tax          string `json:"tax"`
	Shipping     string `json:"shipping"`
	FreeShipping bool   `json:"freeShipping"`
	Total        string `json:"total"`
}

type checkoutView struct {
	Step     string            `json:"step"`
	Shipping map[string]string `json:"shipping"`
	Payment  struct {
		CardNumber string `json:"cardNumber"`
		CardName   string `json:"cardName"`
		ExpiryDate string `json:"expiryDate"`
		CVVSet     bool   `json:"cvvSet"`
	} `json:"payment"`
	Cart    cartView    `json:"cart"`
	Summary summaryView `json:"summary"`
}

type confirmation struct {
	OrderID   string      `json:"orderId"`
	Reference string      `json:"reference"`
	ShipTo    string      `json:"shipTo"`
	Items     []cartItem  `json:"items"`
	Summary   summaryView `json:"summary"`
	Message   string      `json:"message"`
}
