package cart

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/trinhquocthinh/foodhub/internal/catalog"
	pkgerrors "github.com/trinhquocthinh/foodhub/pkg/errors"
	"github.com/trinhquocthinh/foodhub/pkg/logger"
	"github.com/trinhquocthinh/foodhub/pkg/metrics"
)

// DefaultNotificationTTL matches the toast display window of the menu UI.
const DefaultNotificationTTL = 3200 * time.Millisecond

// EngineParams groups dependencies for a session cart engine.
type EngineParams struct {
	Storage         Storage
	Logger          *logger.Logger
	Metrics         *metrics.CartMetrics
	NotificationTTL time.Duration
}

// Engine owns one session's cart lines and the transient add-to-cart
// notification. All mutations persist through the storage port after
// hydration; a failed save leaves the in-memory state authoritative.
type Engine struct {
	mu           sync.Mutex
	lines        []Line
	seq          uint64
	notification *Notification
	dismiss      *time.Timer
	hydrated     bool

	storage         Storage
	logg            *logger.Logger
	metrics         *metrics.CartMetrics
	notificationTTL time.Duration
}

// NewEngine builds a cart engine bound to the provided storage.
func NewEngine(params EngineParams) (*Engine, error) {
	if params.Storage == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart storage is required")
	}
	ttl := params.NotificationTTL
	if ttl <= 0 {
		ttl = DefaultNotificationTTL
	}
	return &Engine{
		storage:         params.Storage,
		logg:            params.Logger,
		metrics:         params.Metrics,
		notificationTTL: ttl,
	}, nil
}

// Hydrate performs the one-time load of persisted lines. Storage errors
// and corrupt blobs degrade to an empty cart; the hydrated flag flips
// regardless so callers can start trusting the in-memory state. Safe to
// call more than once.
func (e *Engine) Hydrate(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.hydrated {
		return
	}

	data, ok, err := e.storage.Load(ctx)
	switch {
	case err != nil:
		e.metrics.IncStorageFailure("load")
		if e.logg != nil {
			e.logg.Warn(ctx, "cart load failed, starting empty")
		}
	case ok:
		e.lines = decodeLines(data)
	}
	e.hydrated = true
}

// IsHydrated reports whether the initial load attempt has completed.
// Callers must not treat an empty cart as authoritative before then.
func (e *Engine) IsHydrated() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.hydrated
}

// AddToCart increments the matching line or appends a new quantity-1
// line, then emits a notification carrying the resulting quantity.
func (e *Engine) AddToCart(ctx context.Context, item catalog.Item) {
	e.mu.Lock()
	defer e.mu.Unlock()

	quantity := 1
	if idx := e.indexOf(item.ID); idx >= 0 {
		e.lines[idx].Quantity++
		quantity = e.lines[idx].Quantity
	} else {
		e.lines = append(e.lines, Line{
			ID:       item.ID,
			Name:     item.Name,
			Price:    item.Price,
			Image:    item.Image,
			Quantity: 1,
		})
	}

	e.notifyLocked(item, quantity)
	e.metrics.IncMutation("add")
	e.persistLocked(ctx)
}

// IncrementItem bumps the quantity of an existing line. Unknown ids are
// a no-op: the presentation layer only references lines it has rendered.
func (e *Engine) IncrementItem(ctx context.Context, id string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	idx := e.indexOf(id)
	if idx < 0 {
		return
	}
	e.lines[idx].Quantity++
	e.metrics.IncMutation("increment")
	e.persistLocked(ctx)
}

// DecrementItem lowers the quantity of an existing line, removing it
// entirely when the quantity would drop below one.
func (e *Engine) DecrementItem(ctx context.Context, id string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	idx := e.indexOf(id)
	if idx < 0 {
		return
	}
	if e.lines[idx].Quantity == 1 {
		e.lines = append(e.lines[:idx], e.lines[idx+1:]...)
	} else {
		e.lines[idx].Quantity--
	}
	e.metrics.IncMutation("decrement")
	e.persistLocked(ctx)
}

// RemoveItem deletes the line regardless of quantity; no-op if absent.
func (e *Engine) RemoveItem(ctx context.Context, id string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	idx := e.indexOf(id)
	if idx < 0 {
		return
	}
	e.lines = append(e.lines[:idx], e.lines[idx+1:]...)
	e.metrics.IncMutation("remove")
	e.persistLocked(ctx)
}

// Clear drops every line, used when a submitted order empties the cart.
func (e *Engine) Clear(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if len(e.lines) == 0 {
		return
	}
	e.lines = nil
	e.metrics.IncMutation("clear")
	e.persistLocked(ctx)
}

// Items returns a copy of the current lines in insertion order.
func (e *Engine) Items() []Line {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]Line, len(e.lines))
	copy(out, e.lines)
	return out
}

// CartCount sums the quantities of all lines.
func (e *Engine) CartCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	total := 0
	for _, line := range e.lines {
		total += line.Quantity
	}
	return total
}

// Subtotal sums price times quantity across all lines using the price
// captured when each line was first added.
func (e *Engine) Subtotal() decimal.Decimal {
	e.mu.Lock()
	defer e.mu.Unlock()

	total := decimal.Zero
	for _, line := range e.lines {
		total = total.Add(line.LineTotal())
	}
	return total
}

// Notification returns the live toast payload, if any.
func (e *Engine) Notification() (Notification, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.notification == nil {
		return Notification{}, false
	}
	return *e.notification, true
}

// ClearNotification dismisses the current toast. Idempotent.
func (e *Engine) ClearNotification() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.clearNotificationLocked()
}

func (e *Engine) notifyLocked(item catalog.Item, quantity int) {
	e.seq++
	e.notification = &Notification{
		ID:       time.Now().UnixMilli(),
		Name:     item.Name,
		Image:    item.Image,
		Quantity: quantity,
		Seq:      e.seq,
	}
	e.metrics.IncNotification()

	// A pending dismissal from an earlier toast must not fire after this
	// one appears.
	if e.dismiss != nil {
		e.dismiss.Stop()
	}
	seq := e.seq
	e.dismiss = time.AfterFunc(e.notificationTTL, func() {
		e.dismissIfCurrent(seq)
	})
}

func (e *Engine) dismissIfCurrent(seq uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.notification != nil && e.notification.Seq == seq {
		e.clearNotificationLocked()
	}
}

func (e *Engine) clearNotificationLocked() {
	e.notification = nil
	if e.dismiss != nil {
		e.dismiss.Stop()
		e.dismiss = nil
	}
}

// persistLocked writes the full line array, fire-and-forget. Before
// hydration nothing is written so an empty in-memory cart cannot
// clobber previously saved data.
func (e *Engine) persistLocked(ctx context.Context) {
	if !e.hydrated {
		return
	}
	data, err := encodeLines(e.lines)
	if err != nil {
		e.metrics.IncStorageFailure("save")
		if e.logg != nil {
			e.logg.Warn(ctx, "cart encode failed, keeping in-memory state")
		}
		return
	}
	if err := e.storage.Save(ctx, data); err != nil {
		e.metrics.IncStorageFailure("save")
		if e.logg != nil {
			e.logg.Warn(ctx, "cart save failed, keeping in-memory state")
		}
	}
}

func (e *Engine) indexOf(id string) int {
	for i, line := range e.lines {
		if line.ID == id {
			return i
		}
	}
	return -1
}
