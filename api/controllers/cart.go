package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/trinhquocthinh/foodhub/api/middleware"
	"github.com/trinhquocthinh/foodhub/api/responses"
	"github.com/trinhquocthinh/foodhub/api/validators"
	"github.com/trinhquocthinh/foodhub/internal/cart"
	"github.com/trinhquocthinh/foodhub/internal/catalog"
	"github.com/trinhquocthinh/foodhub/internal/sessions"
	pkgerrors "github.com/trinhquocthinh/foodhub/pkg/errors"
	"github.com/trinhquocthinh/foodhub/pkg/logger"
)

// CartView is the cart payload returned after every read or mutation.
type CartView struct {
	Items        []cart.Line        `json:"items"`
	CartCount    int                `json:"cart_count"`
	Subtotal     decimal.Decimal    `json:"subtotal"`
	IsHydrated   bool               `json:"is_hydrated"`
	Notification *cart.Notification `json:"notification,omitempty"`
}

type addItemRequest struct {
	ItemID string `json:"item_id" validate:"required"`
}

func newCartView(engine *cart.Engine) CartView {
	view := CartView{
		Items:      engine.Items(),
		CartCount:  engine.CartCount(),
		Subtotal:   engine.Subtotal(),
		IsHydrated: engine.IsHydrated(),
	}
	if notification, ok := engine.Notification(); ok {
		view.Notification = &notification
	}
	return view
}

func engineFromRequest(r *http.Request, registry *sessions.Registry) (*cart.Engine, error) {
	sessionID, ok := middleware.SessionIDFromContext(r.Context())
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "session missing from request context")
	}
	return registry.EngineFor(r.Context(), sessionID)
}

// CartFetch returns the session's cart.
func CartFetch(registry *sessions.Registry, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		engine, err := engineFromRequest(r, registry)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newCartView(engine))
	}
}

// CartAddItem adds one unit of a catalog item to the session's cart.
func CartAddItem(registry *sessions.Registry, store *catalog.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body addItemRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		item, ok := store.FindItem(body.ItemID)
		if !ok {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.New(pkgerrors.CodeNotFound, "menu item not found").
					WithDetails(map[string]any{"item_id": body.ItemID}))
			return
		}

		engine, err := engineFromRequest(r, registry)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		engine.AddToCart(r.Context(), item)
		responses.WriteSuccess(w, newCartView(engine))
	}
}

// CartIncrementItem bumps the quantity of an existing line. Unknown line
// ids leave the cart unchanged.
func CartIncrementItem(registry *sessions.Registry, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		engine, err := engineFromRequest(r, registry)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		engine.IncrementItem(r.Context(), chi.URLParam(r, "itemId"))
		responses.WriteSuccess(w, newCartView(engine))
	}
}

// CartDecrementItem lowers a line's quantity, removing it at one.
func CartDecrementItem(registry *sessions.Registry, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		engine, err := engineFromRequest(r, registry)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		engine.DecrementItem(r.Context(), chi.URLParam(r, "itemId"))
		responses.WriteSuccess(w, newCartView(engine))
	}
}

// CartRemoveItem drops a line regardless of quantity.
func CartRemoveItem(registry *sessions.Registry, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		engine, err := engineFromRequest(r, registry)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		engine.RemoveItem(r.Context(), chi.URLParam(r, "itemId"))
		responses.WriteSuccess(w, newCartView(engine))
	}
}

// CartNotificationFetch returns the live add-to-cart toast, if any.
func CartNotificationFetch(registry *sessions.Registry, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		engine, err := engineFromRequest(r, registry)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		notification, ok := engine.Notification()
		if !ok {
			responses.WriteSuccess(w, map[string]any{"notification": nil})
			return
		}
		responses.WriteSuccess(w, map[string]any{"notification": notification})
	}
}

// CartNotificationClear dismisses the live toast immediately.
func CartNotificationClear(registry *sessions.Registry, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		engine, err := engineFromRequest(r, registry)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		engine.ClearNotification()
		responses.WriteSuccess(w, map[string]any{"notification": nil})
	}
}
