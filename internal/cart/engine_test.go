package cart

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/trinhquocthinh/foodhub/internal/catalog"
)

type stubStorage struct {
	data    []byte
	ok      bool
	loadErr error
	saveErr error
	saves   [][]byte
}

func (s *stubStorage) Load(context.Context) ([]byte, bool, error) {
	return s.data, s.ok, s.loadErr
}

func (s *stubStorage) Save(_ context.Context, data []byte) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	buf := make([]byte, len(data))
	copy(buf, data)
	s.saves = append(s.saves, buf)
	s.data = buf
	s.ok = true
	return nil
}

func newTestEngine(t *testing.T, storage Storage, ttl time.Duration) *Engine {
	t.Helper()
	engine, err := NewEngine(EngineParams{Storage: storage, NotificationTTL: ttl})
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return engine
}

func testItem(id, name string, price int64) catalog.Item {
	return catalog.Item{ID: id, Name: name, Price: decimal.NewFromInt(price), Image: "/images/" + id + ".jpg"}
}

func TestNewEngineRequiresStorage(t *testing.T) {
	t.Parallel()

	if _, err := NewEngine(EngineParams{}); err == nil {
		t.Fatal("expected error for nil storage")
	}
}

func TestAddToCartAccumulatesQuantity(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t, &stubStorage{}, 0)
	engine.Hydrate(context.Background())

	item := testItem("menu-1", "Burrata", 13)
	engine.AddToCart(context.Background(), item)

	first, ok := engine.Notification()
	if !ok {
		t.Fatal("expected notification after first add")
	}
	if first.Quantity != 1 {
		t.Fatalf("expected notification quantity 1, got %d", first.Quantity)
	}

	engine.AddToCart(context.Background(), item)

	lines := engine.Items()
	if len(lines) != 1 {
		t.Fatalf("expected one line, got %d", len(lines))
	}
	if lines[0].Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", lines[0].Quantity)
	}

	second, ok := engine.Notification()
	if !ok {
		t.Fatal("expected notification after second add")
	}
	if second.Quantity != 2 {
		t.Fatalf("expected notification quantity 2, got %d", second.Quantity)
	}
	if second.Seq <= first.Seq {
		t.Fatalf("expected increasing seq, got %d then %d", first.Seq, second.Seq)
	}
}

func TestAddToCartPreservesInsertionOrder(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t, &stubStorage{}, 0)
	engine.Hydrate(context.Background())

	engine.AddToCart(context.Background(), testItem("menu-a", "A", 10))
	engine.AddToCart(context.Background(), testItem("menu-b", "B", 12))
	engine.AddToCart(context.Background(), testItem("menu-a", "A", 10))

	lines := engine.Items()
	if len(lines) != 2 {
		t.Fatalf("expected two lines, got %d", len(lines))
	}
	if lines[0].ID != "menu-a" || lines[1].ID != "menu-b" {
		t.Fatalf("unexpected line order: %s, %s", lines[0].ID, lines[1].ID)
	}
	if engine.CartCount() != 3 {
		t.Fatalf("expected cart count 3, got %d", engine.CartCount())
	}
}

func TestDecrementRemovesLineAtQuantityOne(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t, &stubStorage{}, 0)
	engine.Hydrate(context.Background())

	engine.AddToCart(context.Background(), testItem("menu-a", "A", 10))
	engine.AddToCart(context.Background(), testItem("menu-a", "A", 10))

	engine.DecrementItem(context.Background(), "menu-a")
	if lines := engine.Items(); len(lines) != 1 || lines[0].Quantity != 1 {
		t.Fatalf("expected single line at quantity 1, got %+v", lines)
	}

	engine.DecrementItem(context.Background(), "menu-a")
	if lines := engine.Items(); len(lines) != 0 {
		t.Fatalf("expected empty cart, got %+v", lines)
	}
}

func TestMutationsIgnoreUnknownID(t *testing.T) {
	t.Parallel()

	storage := &stubStorage{}
	engine := newTestEngine(t, storage, 0)
	engine.Hydrate(context.Background())

	engine.AddToCart(context.Background(), testItem("menu-a", "A", 10))
	saves := len(storage.saves)

	engine.IncrementItem(context.Background(), "menu-missing")
	engine.DecrementItem(context.Background(), "menu-missing")
	engine.RemoveItem(context.Background(), "menu-missing")

	if lines := engine.Items(); len(lines) != 1 || lines[0].Quantity != 1 {
		t.Fatalf("expected cart untouched, got %+v", lines)
	}
	if len(storage.saves) != saves {
		t.Fatalf("expected no writes for unknown ids, got %d extra", len(storage.saves)-saves)
	}
}

func TestRemoveItemDropsFullQuantity(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t, &stubStorage{}, 0)
	engine.Hydrate(context.Background())

	item := testItem("menu-a", "A", 10)
	engine.AddToCart(context.Background(), item)
	engine.AddToCart(context.Background(), item)
	engine.AddToCart(context.Background(), item)

	engine.RemoveItem(context.Background(), "menu-a")
	if count := engine.CartCount(); count != 0 {
		t.Fatalf("expected empty cart, got count %d", count)
	}
}

func TestSubtotalUsesCapturedPrices(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t, &stubStorage{}, 0)
	engine.Hydrate(context.Background())

	engine.AddToCart(context.Background(), testItem("menu-a", "A", 24))
	engine.AddToCart(context.Background(), testItem("menu-a", "A", 24))
	engine.AddToCart(context.Background(), testItem("menu-b", "B", 9))

	want := decimal.NewFromInt(57)
	if got := engine.Subtotal(); !got.Equal(want) {
		t.Fatalf("expected subtotal %s, got %s", want, got)
	}
}

func TestHydrateRoundTrip(t *testing.T) {
	t.Parallel()

	storage := &stubStorage{}
	engine := newTestEngine(t, storage, 0)
	engine.Hydrate(context.Background())

	engine.AddToCart(context.Background(), testItem("menu-a", "A", 10))
	engine.AddToCart(context.Background(), testItem("menu-b", "B", 12))
	engine.IncrementItem(context.Background(), "menu-b")

	reloaded := newTestEngine(t, storage, 0)
	reloaded.Hydrate(context.Background())

	lines := reloaded.Items()
	if len(lines) != 2 {
		t.Fatalf("expected two restored lines, got %d", len(lines))
	}
	if lines[0].ID != "menu-a" || lines[0].Quantity != 1 {
		t.Fatalf("unexpected first line: %+v", lines[0])
	}
	if lines[1].ID != "menu-b" || lines[1].Quantity != 2 {
		t.Fatalf("unexpected second line: %+v", lines[1])
	}
}

func TestHydrateCorruptBlobStartsEmpty(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t, &stubStorage{data: []byte("{not json"), ok: true}, 0)
	engine.Hydrate(context.Background())

	if !engine.IsHydrated() {
		t.Fatal("expected hydrated flag after corrupt load")
	}
	if lines := engine.Items(); len(lines) != 0 {
		t.Fatalf("expected empty cart, got %+v", lines)
	}
}

func TestHydrateLoadErrorStartsEmpty(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t, &stubStorage{loadErr: errors.New("backend down")}, 0)
	engine.Hydrate(context.Background())

	if !engine.IsHydrated() {
		t.Fatal("expected hydrated flag after failed load")
	}
	if count := engine.CartCount(); count != 0 {
		t.Fatalf("expected empty cart, got count %d", count)
	}
}

func TestPersistSkippedBeforeHydration(t *testing.T) {
	t.Parallel()

	storage := &stubStorage{data: []byte(`[{"id":"menu-saved","name":"Saved","price":"10","quantity":1}]`), ok: true}
	engine := newTestEngine(t, storage, 0)

	// A mutation before hydration must not clobber the stored blob.
	engine.AddToCart(context.Background(), testItem("menu-early", "Early", 5))
	if len(storage.saves) != 0 {
		t.Fatalf("expected no writes before hydration, got %d", len(storage.saves))
	}

	reloaded := newTestEngine(t, storage, 0)
	reloaded.Hydrate(context.Background())
	lines := reloaded.Items()
	if len(lines) != 1 || lines[0].ID != "menu-saved" {
		t.Fatalf("expected persisted line to survive, got %+v", lines)
	}
}

func TestSaveFailureKeepsInMemoryState(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t, &stubStorage{saveErr: errors.New("disk full")}, 0)
	engine.Hydrate(context.Background())

	engine.AddToCart(context.Background(), testItem("menu-a", "A", 10))
	if lines := engine.Items(); len(lines) != 1 {
		t.Fatalf("expected line despite save failure, got %+v", lines)
	}
}

func TestClearEmptiesCart(t *testing.T) {
	t.Parallel()

	storage := &stubStorage{}
	engine := newTestEngine(t, storage, 0)
	engine.Hydrate(context.Background())

	engine.AddToCart(context.Background(), testItem("menu-a", "A", 10))
	engine.Clear(context.Background())

	if count := engine.CartCount(); count != 0 {
		t.Fatalf("expected empty cart, got count %d", count)
	}
	if len(storage.saves) == 0 {
		t.Fatal("expected clear to persist")
	}
}

func TestNotificationExpiresAfterTTL(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t, &stubStorage{}, 30*time.Millisecond)
	engine.Hydrate(context.Background())

	engine.AddToCart(context.Background(), testItem("menu-a", "A", 10))
	if _, ok := engine.Notification(); !ok {
		t.Fatal("expected live notification")
	}

	deadline := time.Now().Add(2 * time.Second)
	for {
		if _, ok := engine.Notification(); !ok {
			return
		}
		if time.Now().After(deadline) {
			t.Fatal("notification never expired")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestStaleDismissalDoesNotClearNewerNotification(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t, &stubStorage{}, 80*time.Millisecond)
	engine.Hydrate(context.Background())

	engine.AddToCart(context.Background(), testItem("menu-a", "A", 10))
	time.Sleep(50 * time.Millisecond)
	engine.AddToCart(context.Background(), testItem("menu-b", "B", 12))

	// Past the first toast's TTL, the second must still be live.
	time.Sleep(60 * time.Millisecond)
	notification, ok := engine.Notification()
	if !ok {
		t.Fatal("expected newer notification to survive the stale timer")
	}
	if notification.Name != "B" {
		t.Fatalf("expected notification for B, got %q", notification.Name)
	}
}

func TestClearNotificationIsIdempotent(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t, &stubStorage{}, 0)
	engine.Hydrate(context.Background())

	engine.AddToCart(context.Background(), testItem("menu-a", "A", 10))
	engine.ClearNotification()
	engine.ClearNotification()

	if _, ok := engine.Notification(); ok {
		t.Fatal("expected notification cleared")
	}
}
