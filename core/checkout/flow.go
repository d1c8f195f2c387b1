package checkout

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/passandplay/gamestore/core/cart"
	"github.com/passandplay/gamestore/random"
	"github.com/passandplay/gamestore/validate"
)

type Step string

const (
	StepShipping Step = "shipping"
	StepPayment  Step = "payment"
	StepPlaced   Step = "placed"
)

const PlacedMessage = "Your order has been placed successfully!"

var (
	ErrEmptyCart = errors.New("cart is empty")
	ErrWrongStep = errors.New("form not editable at this step")
	ErrPlaced    = errors.New("order already placed")
)

// MissingFieldsError is returned when a step is continued with required
// fields left blank.
type MissingFieldsError struct {
	Step   Step
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("missing required %s fields: %s", e.Step, strings.Join(e.Fields, ", "))
}

// Shipping and Payment fields are checked for presence only. Formats (card
// checksum, phone, zip) are not validated.
type Shipping struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Address   string `json:"address" validate:"required"`
	City      string `json:"city" validate:"required"`
	State     string `json:"state" validate:"required"`
	ZipCode   string `json:"zipCode" validate:"required"`
	Country   string `json:"country" validate:"required"`
	Phone     string `json:"phone" validate:"required"`
}

func (s Shipping) Name() string {
	return strings.TrimSpace(s.FirstName + " " + s.LastName)
}

type Payment struct {
	CardNumber string `json:"cardNumber" validate:"required"`
	CardName   string `json:"cardName" validate:"required"`
	ExpiryDate string `json:"expiryDate" validate:"required"`
	CVV        string `json:"cvv" validate:"required"`
}

// Confirmation is produced once when an order is placed.
type Confirmation struct {
	OrderID   string          `json:"orderId"`
	Reference string          `json:"reference"`
	PlacedAt  time.Time       `json:"placedAt"`
	ShipTo    string          `json:"shipTo"`
	Items     []cart.ItemView `json:"items"`
	Summary   SummaryView     `json:"summary"`
	Message   string          `json:"message"`
}

// Flow is the two-step checkout of one session: shipping, then payment.
// Continuing a complete payment step places the order.
type Flow struct {
	Step     Step
	Shipping Shipping
	Payment  Payment
}

// Begin starts a checkout. An empty cart cannot be checked out.
func Begin(c *cart.Cart) (*Flow, error) {
	if c.Empty() {
		return nil, ErrEmptyCart
	}
	return &Flow{Step: StepShipping}, nil
}

func (f *Flow) SetShipping(s Shipping) error {
	if f.Step != StepShipping {
		return fmt.Errorf("shipping: %w", ErrWrongStep)
	}
	f.Shipping = s
	return nil
}

func (f *Flow) SetPayment(p Payment) error {
	if f.Step != StepPayment {
		return fmt.Errorf("payment: %w", ErrWrongStep)
	}
	f.Payment = p
	return nil
}

// Continue advances the flow. From shipping it moves to payment. From
// payment it places the order: the cart is cleared and a Confirmation is
// returned. On any error the flow and the cart are left untouched.
func (f *Flow) Continue(c *cart.Cart, p Pricing) (*Confirmation, error) {
	switch f.Step {
	case StepShipping:
		if err := missing(StepShipping, f.Shipping); err != nil {
			return nil, err
		}
		f.Step = StepPayment
		return nil, nil

	case StepPayment:
		if err := missing(StepPayment, f.Payment); err != nil {
			return nil, err
		}
		if c.Empty() {
			return nil, ErrEmptyCart
		}

		ref, err := random.Code(8)
		if err != nil {
			return nil, fmt.Errorf("generating order reference: %w", err)
		}

		cv := cart.NewView(c)
		conf := &Confirmation{
			OrderID:   validate.GenerateID(),
			Reference: ref,
			PlacedAt:  time.Now().UTC(),
			ShipTo:    f.Shipping.Name(),
			Items:     cv.Items,
			Summary:   p.Summarize(c).View(),
			Message:   PlacedMessage,
		}

		c.Clear()
		f.Step = StepPlaced
		f.Shipping = Shipping{}
		f.Payment = Payment{}
		return conf, nil
	}

	return nil, ErrPlaced
}

// Back steps from payment to shipping, keeping what was entered. From the
// shipping step there is nowhere to go back to, so the flow is abandoned
// and Back reports false.
func (f *Flow) Back() bool {
	if f.Step == StepPayment {
		f.Step = StepShipping
		return true
	}
	return false
}

func missing(step Step, form any) error {
	fields, err := validate.Fields(form)
	if err != nil {
		return fmt.Errorf("validating %s form: %w", step, err)
	}
	if len(fields) == 0 {
		return nil
	}

	names := make([]string, 0, len(fields))
	for _, fe := range fields {
		names = append(names, fe.Field)
	}
	return &MissingFieldsError{Step: step, Fields: names}
}
