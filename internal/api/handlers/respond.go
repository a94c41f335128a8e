package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Cheertaboi/storefront-checkout/internal/checkout"
	"github.com/Cheertaboi/storefront-checkout/internal/core/errx"
	"github.com/Cheertaboi/storefront-checkout/internal/service"
	logx "github.com/Cheertaboi/storefront-checkout/pkg/logger"
)

type errorBody struct {
	Error   string         `json:"error"`
	Field   string         `json:"field,omitempty"`
	Session *checkout.View `json:"session,omitempty"`
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func decode(r *http.Request, v interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, errorBody{Error: msg})
}

// toAppError maps service and checkout errors to an HTTP status and a
// message that is safe to show the shopper.
func toAppError(err error) *errx.AppError {
	var verr *checkout.ValidationError
	switch {
	case errors.As(err, &verr):
		return errx.New(err, http.StatusUnprocessableEntity, verr.Message)
	case errors.Is(err, checkout.ErrNoPaymentMethod):
		return errx.New(err, http.StatusUnprocessableEntity, "Please select a payment method.")
	case errors.Is(err, checkout.ErrWrongStep):
		return errx.New(err, http.StatusConflict, "This action is not available at the current checkout step.")
	case errors.Is(err, service.ErrEmptyCart):
		return errx.New(err, http.StatusUnprocessableEntity, "Your cart is empty.")
	case errors.Is(err, service.ErrSessionNotFound),
		errors.Is(err, service.ErrCartNotFound),
		errors.Is(err, service.ErrProductNotFound),
		errors.Is(err, service.ErrItemNotInCart):
		return errx.New(err, http.StatusNotFound, err.Error())
	default:
		return errx.From(err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error, view *checkout.View) {
	ae := toAppError(err)
	if ae.Status >= http.StatusInternalServerError {
		logx.Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
	}
	body := errorBody{Error: ae.Message, Session: view}
	var verr *checkout.ValidationError
	if errors.As(err, &verr) {
		body.Field = verr.Field
	}
	writeJSON(w, ae.Status, body)
}

func intParam(r *http.Request, name string) (int, bool) {
	n, err := strconv.Atoi(chi.URLParam(r, name))
	return n, err == nil
}
