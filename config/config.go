package config

import "time"

type Config struct {
	Web     Web
	Cors    Cors
	Session Session
	Auth    Auth
	Pricing Pricing
}

type Web struct {
	Address         string        `conf:"default:0.0.0.0:8000"`
	ReadTimeout     time.Duration `conf:"default:5s"`
	WriteTimeout    time.Duration `conf:"default:10s"`
	IdleTimeout     time.Duration `conf:"default:120s"`
	ShutdownTimeout time.Duration `conf:"default:20s"`
}

type Cors struct {
	Origin string
}

type Session struct {
	Lifetime    time.Duration `conf:"default:24h"`
	IdleTimeout time.Duration `conf:"default:2h"`
	CookieName  string        `conf:"default:gamestore_session"`
	Secure      bool          `conf:"default:false"`
}

// Auth limits login and registration attempts per client IP.
type Auth struct {
	Burst       int           `conf:"default:5"`
	Interval    time.Duration `conf:"default:2s"`
	Expiry      time.Duration `conf:"default:10m"`
	PrunePeriod time.Duration `conf:"default:1m"`
}

type Pricing struct {
	TaxRate          float64 `conf:"default:0.07"`
	FreeShippingOver float64 `conf:"default:50"`
	ShippingFee      float64 `conf:"default:5.99"`
}
