package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Cheertaboi/storefront-checkout/internal/checkout"
	"github.com/Cheertaboi/storefront-checkout/internal/models"
	"github.com/Cheertaboi/storefront-checkout/internal/service"
)

type CheckoutHandler struct {
	service *service.CheckoutService
}

func NewCheckoutHandler(svc *service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{service: svc}
}

type openRequest struct {
	CartID string `json:"cart_id"`
}

type otpRequest struct {
	OTP string `json:"otp"`
}

type paymentMethodRequest struct {
	Method models.PaymentMethod `json:"method"`
}

type couponRequest struct {
	CouponCode string `json:"coupon_code"`
}

type confirmResponse struct {
	Receipt models.Receipt `json:"receipt"`
	Session checkout.View  `json:"session"`
}

// Open handles POST /checkout
func (h *CheckoutHandler) Open(w http.ResponseWriter, r *http.Request) {
	var req openRequest
	if err := decode(r, &req); err != nil || req.CartID == "" {
		badRequest(w, "cart_id required")
		return
	}
	v, err := h.service.Open(r.Context(), req.CartID)
	if err != nil {
		writeError(w, r, err, nil)
		return
	}
	writeJSON(w, http.StatusCreated, v)
}

// Get handles GET /checkout/{sessionID}
func (h *CheckoutHandler) Get(w http.ResponseWriter, r *http.Request) {
	v, err := h.service.Get(r.Context(), chi.URLParam(r, "sessionID"))
	h.respond(w, r, v, err)
}

// SubmitAddress handles POST /checkout/{sessionID}/address
func (h *CheckoutHandler) SubmitAddress(w http.ResponseWriter, r *http.Request) {
	var req models.Address
	if err := decode(r, &req); err != nil {
		badRequest(w, "invalid_body")
		return
	}
	v, err := h.service.SubmitAddress(r.Context(), chi.URLParam(r, "sessionID"), req)
	h.respond(w, r, v, err)
}

// SubmitOTP handles POST /checkout/{sessionID}/otp
func (h *CheckoutHandler) SubmitOTP(w http.ResponseWriter, r *http.Request) {
	var req otpRequest
	if err := decode(r, &req); err != nil {
		badRequest(w, "invalid_body")
		return
	}
	v, err := h.service.SubmitOTP(r.Context(), chi.URLParam(r, "sessionID"), req.OTP)
	h.respond(w, r, v, err)
}

// SelectPayment handles POST /checkout/{sessionID}/payment-method
func (h *CheckoutHandler) SelectPayment(w http.ResponseWriter, r *http.Request) {
	var req paymentMethodRequest
	if err := decode(r, &req); err != nil {
		badRequest(w, "invalid_body")
		return
	}
	v, err := h.service.SelectPayment(r.Context(), chi.URLParam(r, "sessionID"), req.Method)
	h.respond(w, r, v, err)
}

// ApplyCoupon handles POST /checkout/{sessionID}/coupon
func (h *CheckoutHandler) ApplyCoupon(w http.ResponseWriter, r *http.Request) {
	var req couponRequest
	if err := decode(r, &req); err != nil {
		badRequest(w, "invalid_body")
		return
	}
	v, err := h.service.ApplyCoupon(r.Context(), chi.URLParam(r, "sessionID"), req.CouponCode)
	h.respond(w, r, v, err)
}

// Confirm handles POST /checkout/{sessionID}/confirm
func (h *CheckoutHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	receipt, v, err := h.service.ConfirmPayment(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		h.respond(w, r, v, err)
		return
	}
	writeJSON(w, http.StatusOK, confirmResponse{Receipt: receipt, Session: v})
}

// Close handles DELETE /checkout/{sessionID}
func (h *CheckoutHandler) Close(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Close(r.Context(), chi.URLParam(r, "sessionID")); err != nil {
		writeError(w, r, err, nil)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CheckoutHandler) respond(w http.ResponseWriter, r *http.Request, v checkout.View, err error) {
	if err != nil {
		var view *checkout.View
		if v.ID != "" {
			view = &v
		}
		writeError(w, r, err, view)
		return
	}
	writeJSON(w, http.StatusOK, v)
}
