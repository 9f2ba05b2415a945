package sessions

import (
	"context"
	"testing"

	"github.com/trinhquocthinh/foodhub/internal/cart"
	"github.com/trinhquocthinh/foodhub/internal/catalog"
	pkgerrors "github.com/trinhquocthinh/foodhub/pkg/errors"
)

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	registry, err := NewRegistry(RegistryParams{Backend: cart.NewMemoryBackend()})
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	return registry
}

func TestNewRegistryRequiresBackend(t *testing.T) {
	t.Parallel()

	if _, err := NewRegistry(RegistryParams{}); err == nil {
		t.Fatal("expected error for nil backend")
	}
}

func TestEngineForRejectsEmptySessionID(t *testing.T) {
	t.Parallel()

	registry := newTestRegistry(t)
	_, err := registry.EngineFor(context.Background(), "  ")
	if err == nil {
		t.Fatal("expected error for blank session id")
	}
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("unexpected error code: %v", err)
	}
}

func TestEngineForReturnsSameEnginePerSession(t *testing.T) {
	t.Parallel()

	registry := newTestRegistry(t)
	first, err := registry.EngineFor(context.Background(), "session-1")
	if err != nil {
		t.Fatalf("EngineFor: %v", err)
	}
	second, err := registry.EngineFor(context.Background(), "session-1")
	if err != nil {
		t.Fatalf("EngineFor: %v", err)
	}
	if first != second {
		t.Fatal("expected the same engine for one session")
	}
	if !first.IsHydrated() {
		t.Fatal("expected engine hydrated on first touch")
	}
}

func TestEngineForIsolatesSessions(t *testing.T) {
	t.Parallel()

	registry := newTestRegistry(t)
	store := catalog.NewStore()
	item, _ := store.FindItem("menu-crispy-potatoes")

	first, err := registry.EngineFor(context.Background(), "session-1")
	if err != nil {
		t.Fatalf("EngineFor: %v", err)
	}
	first.AddToCart(context.Background(), item)

	second, err := registry.EngineFor(context.Background(), "session-2")
	if err != nil {
		t.Fatalf("EngineFor: %v", err)
	}
	if count := second.CartCount(); count != 0 {
		t.Fatalf("expected empty cart for fresh session, got %d", count)
	}
}
