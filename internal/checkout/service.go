package checkout

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/trinhquocthinh/foodhub/internal/cart"
	"github.com/trinhquocthinh/foodhub/pkg/config"
	"github.com/trinhquocthinh/foodhub/pkg/enums"
	pkgerrors "github.com/trinhquocthinh/foodhub/pkg/errors"
)

// Quote is the order summary for the current cart. Tax and service fee
// are zero for an empty cart and always recomputed from the live lines;
// nothing caches an emptiness flag between reads.
type Quote struct {
	Lines      []cart.Line     `json:"lines"`
	ItemCount  int             `json:"item_count"`
	Subtotal   decimal.Decimal `json:"subtotal"`
	Tax        decimal.Decimal `json:"tax"`
	ServiceFee decimal.Decimal `json:"service_fee"`
	Total      decimal.Decimal `json:"total"`
}

// SubmitInput carries the checkout form fields.
type SubmitInput struct {
	FullName     string
	Email        string
	Phone        string
	DiningOption enums.DiningOption
	ArrivalTime  string
	Notes        string
}

// Confirmation is returned for an accepted order request. Accepting an
// order clears the cart, the service-side analog of the site's form
// reset and redirect.
type Confirmation struct {
	OrderID      uuid.UUID          `json:"order_id"`
	DiningOption enums.DiningOption `json:"dining_option"`
	ArrivalTime  string             `json:"arrival_time,omitempty"`
	Quote        Quote              `json:"quote"`
	SubmittedAt  time.Time          `json:"submitted_at"`
}

// Service prices the cart and accepts order requests.
type Service struct {
	serviceFee decimal.Decimal
	taxRate    decimal.Decimal
}

// NewService parses the configured fee and tax rate.
func NewService(cfg config.CheckoutConfig) (*Service, error) {
	fee, err := decimal.NewFromString(cfg.ServiceFee)
	if err != nil {
		return nil, fmt.Errorf("parsing service fee: %w", err)
	}
	rate, err := decimal.NewFromString(cfg.TaxRate)
	if err != nil {
		return nil, fmt.Errorf("parsing tax rate: %w", err)
	}
	if fee.IsNegative() || rate.IsNegative() {
		return nil, fmt.Errorf("service fee and tax rate must be non-negative")
	}
	return &Service{serviceFee: fee, taxRate: rate}, nil
}

// QuoteFor computes the order summary from the engine's current lines.
func (s *Service) QuoteFor(engine *cart.Engine) Quote {
	lines := engine.Items()

	subtotal := decimal.Zero
	count := 0
	for _, line := range lines {
		subtotal = subtotal.Add(line.LineTotal())
		count += line.Quantity
	}

	tax := decimal.Zero
	fee := decimal.Zero
	if len(lines) > 0 {
		tax = subtotal.Mul(s.taxRate).Round(2)
		fee = s.serviceFee
	}

	return Quote{
		Lines:      lines,
		ItemCount:  count,
		Subtotal:   subtotal,
		Tax:        tax,
		ServiceFee: fee,
		Total:      subtotal.Add(tax).Add(fee),
	}
}

// Submit validates the order request against the live cart, clears the
// cart on success, and returns the confirmation.
func (s *Service) Submit(ctx context.Context, engine *cart.Engine, input SubmitInput) (*Confirmation, error) {
	if engine == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "cart engine is required")
	}
	if !input.DiningOption.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid dining option")
	}
	if input.ArrivalTime != "" {
		if _, err := time.Parse("15:04", input.ArrivalTime); err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "arrival time must be HH:MM")
		}
	}

	quote := s.QuoteFor(engine)
	if len(quote.Lines) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
	}

	engine.Clear(ctx)

	return &Confirmation{
		OrderID:      uuid.New(),
		DiningOption: input.DiningOption,
		ArrivalTime:  input.ArrivalTime,
		Quote:        quote,
		SubmittedAt:  time.Now().UTC(),
	}, nil
}
