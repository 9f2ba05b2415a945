package controllers

import (
	"net/http"

	"github.com/trinhquocthinh/foodhub/api/responses"
	"github.com/trinhquocthinh/foodhub/api/validators"
	"github.com/trinhquocthinh/foodhub/internal/checkout"
	"github.com/trinhquocthinh/foodhub/internal/sessions"
	"github.com/trinhquocthinh/foodhub/pkg/enums"
	pkgerrors "github.com/trinhquocthinh/foodhub/pkg/errors"
	"github.com/trinhquocthinh/foodhub/pkg/logger"
)

type submitOrderRequest struct {
	FullName     string `json:"full_name" validate:"required,max=120"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone" validate:"required,max=32"`
	DiningOption string `json:"dining_option" validate:"required,oneof=dine-in takeaway"`
	ArrivalTime  string `json:"arrival_time" validate:"required"`
	Notes        string `json:"notes" validate:"omitempty,max=500"`
}

// CheckoutQuote prices the session's cart with tax and service fee.
func CheckoutQuote(registry *sessions.Registry, svc *checkout.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		engine, err := engineFromRequest(r, registry)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, svc.QuoteFor(engine))
	}
}

// CheckoutSubmit places the order and clears the session's cart.
func CheckoutSubmit(registry *sessions.Registry, svc *checkout.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body submitOrderRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		diningOption, err := enums.ParseDiningOption(body.DiningOption)
		if err != nil {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid dining option"))
			return
		}

		engine, err := engineFromRequest(r, registry)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		confirmation, err := svc.Submit(r.Context(), engine, checkout.SubmitInput{
			FullName:     body.FullName,
			Email:        body.Email,
			Phone:        body.Phone,
			DiningOption: diningOption,
			ArrivalTime:  body.ArrivalTime,
			Notes:        body.Notes,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, confirmation)
	}
}
