package checkout

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/trinhquocthinh/foodhub/internal/cart"
	"github.com/trinhquocthinh/foodhub/internal/catalog"
	"github.com/trinhquocthinh/foodhub/pkg/config"
	"github.com/trinhquocthinh/foodhub/pkg/enums"
	pkgerrors "github.com/trinhquocthinh/foodhub/pkg/errors"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	svc, err := NewService(config.CheckoutConfig{ServiceFee: "4.50", TaxRate: "0.08"})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

func newTestEngine(t *testing.T) *cart.Engine {
	t.Helper()
	engine, err := cart.NewEngine(cart.EngineParams{
		Storage: cart.StorageFor(cart.NewMemoryBackend(), "session-test"),
	})
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	engine.Hydrate(context.Background())
	return engine
}

func menuItem(t *testing.T, id string) catalog.Item {
	t.Helper()
	item, ok := catalog.NewStore().FindItem(id)
	if !ok {
		t.Fatalf("unknown menu item %q", id)
	}
	return item
}

func validInput() SubmitInput {
	return SubmitInput{
		FullName:     "Emma Newman",
		Email:        "emma@example.com",
		Phone:        "+1 555 0100",
		DiningOption: enums.DiningOptionDineIn,
		ArrivalTime:  "18:30",
	}
}

func TestNewServiceRejectsBadConfig(t *testing.T) {
	t.Parallel()

	if _, err := NewService(config.CheckoutConfig{ServiceFee: "abc", TaxRate: "0.08"}); err == nil {
		t.Fatal("expected error for unparsable fee")
	}
	if _, err := NewService(config.CheckoutConfig{ServiceFee: "4.50", TaxRate: "-0.08"}); err == nil {
		t.Fatal("expected error for negative tax rate")
	}
}

func TestQuoteEmptyCartHasNoFees(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	quote := svc.QuoteFor(newTestEngine(t))

	if quote.ItemCount != 0 {
		t.Fatalf("expected empty quote, got %+v", quote)
	}
	if !quote.Tax.IsZero() || !quote.ServiceFee.IsZero() || !quote.Total.IsZero() {
		t.Fatalf("expected zero tax, fee, and total for empty cart, got %+v", quote)
	}
}

func TestQuoteComputesTaxAndFee(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	engine := newTestEngine(t)

	risotto := menuItem(t, "menu-black-garlic-risotto") // $24
	engine.AddToCart(context.Background(), risotto)
	engine.AddToCart(context.Background(), risotto)

	quote := svc.QuoteFor(engine)
	if quote.ItemCount != 2 {
		t.Fatalf("expected item count 2, got %d", quote.ItemCount)
	}
	if !quote.Subtotal.Equal(decimal.NewFromInt(48)) {
		t.Fatalf("expected subtotal 48, got %s", quote.Subtotal)
	}
	if !quote.Tax.Equal(decimal.RequireFromString("3.84")) {
		t.Fatalf("expected tax 3.84, got %s", quote.Tax)
	}
	if !quote.ServiceFee.Equal(decimal.RequireFromString("4.50")) {
		t.Fatalf("expected service fee 4.50, got %s", quote.ServiceFee)
	}
	if !quote.Total.Equal(decimal.RequireFromString("56.34")) {
		t.Fatalf("expected total 56.34, got %s", quote.Total)
	}
}

func TestQuoteRecomputesAfterEmptying(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	engine := newTestEngine(t)

	engine.AddToCart(context.Background(), menuItem(t, "menu-crispy-potatoes"))
	if quote := svc.QuoteFor(engine); quote.ServiceFee.IsZero() {
		t.Fatal("expected service fee on non-empty cart")
	}

	engine.RemoveItem(context.Background(), "menu-crispy-potatoes")
	if quote := svc.QuoteFor(engine); !quote.ServiceFee.IsZero() || !quote.Tax.IsZero() {
		t.Fatalf("expected fees to drop with the last line, got %+v", quote)
	}
}

func TestSubmitRejectsEmptyCart(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	_, err := svc.Submit(context.Background(), newTestEngine(t), validInput())
	if err == nil {
		t.Fatal("expected error for empty cart")
	}
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("unexpected error code: %v", err)
	}
}

func TestSubmitRejectsInvalidDiningOption(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	engine := newTestEngine(t)
	engine.AddToCart(context.Background(), menuItem(t, "menu-crispy-potatoes"))

	input := validInput()
	input.DiningOption = "delivery"
	if _, err := svc.Submit(context.Background(), engine, input); err == nil {
		t.Fatal("expected error for unknown dining option")
	}
}

func TestSubmitRejectsMalformedArrivalTime(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	engine := newTestEngine(t)
	engine.AddToCart(context.Background(), menuItem(t, "menu-crispy-potatoes"))

	input := validInput()
	input.ArrivalTime = "6pm"
	if _, err := svc.Submit(context.Background(), engine, input); err == nil {
		t.Fatal("expected error for malformed arrival time")
	}
}

func TestSubmitClearsCartAndCapturesQuote(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	engine := newTestEngine(t)
	engine.AddToCart(context.Background(), menuItem(t, "menu-black-garlic-risotto"))

	confirmation, err := svc.Submit(context.Background(), engine, validInput())
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if confirmation.OrderID.String() == "00000000-0000-0000-0000-000000000000" {
		t.Fatal("expected a generated order id")
	}
	if confirmation.DiningOption != enums.DiningOptionDineIn {
		t.Fatalf("unexpected dining option %s", confirmation.DiningOption)
	}
	if confirmation.Quote.ItemCount != 1 {
		t.Fatalf("expected quote captured before clearing, got %+v", confirmation.Quote)
	}
	if count := engine.CartCount(); count != 0 {
		t.Fatalf("expected cart cleared after submit, got count %d", count)
	}
}
