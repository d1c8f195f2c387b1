package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/alexedwards/scs/v2"
	"github.com/passandplay/gamestore/api/web"
	"github.com/passandplay/gamestore/api/weberr"
	"github.com/passandplay/gamestore/validate"
	"github.com/sirupsen/logrus"
)

var ErrPasswordMismatch = errors.New("passwords do not match")

const msgMissing = "Please fill in all fields"

type Login struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type Register struct {
	Username        string `json:"username" validate:"required"`
	Email           string `json:"email" validate:"required"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

// Check reports missing fields first, then a password mismatch.
func (in Register) Check() error {
	if err := required(in); err != nil {
		return err
	}
	if in.Password != in.ConfirmPassword {
		return weberr.NewError(ErrPasswordMismatch, "Passwords do not match", http.StatusUnprocessableEntity)
	}
	return nil
}

type Session struct {
	Email string `json:"email"`
}

func required(in any) error {
	fields, err := validate.Fields(in)
	if err != nil {
		return fmt.Errorf("validating input: %w", err)
	}
	if len(fields) == 0 {
		return nil
	}

	names := make([]string, 0, len(fields))
	for _, fe := range fields {
		names = append(names, fe.Field)
	}
	return weberr.Unprocessable(errors.New(fields[0].Message), msgMissing, names...)
}

// HandleLogin accepts any non-empty email and password. There is no account
// store behind it.
func HandleLogin(sm *scs.SessionManager) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		var in Login
		if err := web.Decode(w, r, &in); err != nil {
			return weberr.BadRequest(fmt.Errorf("unable to decode payload: %w", err))
		}

		if err := required(in); err != nil {
			return err
		}

		if err := sm.RenewToken(ctx); err != nil {
			return fmt.Errorf("renewing session token: %w", err)
		}
		sm.Put(ctx, emailKey, in.Email)

		return web.Respond(ctx, w, Session{Email: in.Email}, http.StatusOK)
	}
}

// HandleRegister validates a registration form. It does not log the new
// user in.
func HandleRegister(log logrus.FieldLogger) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		var in Register
		if err := web.Decode(w, r, &in); err != nil {
			return weberr.BadRequest(fmt.Errorf("unable to decode payload: %w", err))
		}

		if err := in.Check(); err != nil {
			return err
		}

		log.WithField("username", in.Username).Info("registration accepted")

		resp := struct {
			Message string `json:"message"`
		}{"Registration successful"}
		return web.Respond(ctx, w, resp, http.StatusCreated)
	}
}

// HandleLogout destroys the session, and the cart and checkout with it.
func HandleLogout(sm *scs.SessionManager) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		if err := sm.Destroy(ctx); err != nil {
			return fmt.Errorf("destroying session: %w", err)
		}
		return web.Respond(ctx, w, nil, http.StatusNoContent)
	}
}
