package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Cheertaboi/storefront-checkout/internal/coupon"
	"github.com/Cheertaboi/storefront-checkout/internal/models"
	"github.com/Cheertaboi/storefront-checkout/internal/service"
)

type CouponHandler struct {
	service *service.CouponService
}

func NewCouponHandler(svc *service.CouponService) *CouponHandler {
	return &CouponHandler{service: svc}
}

type couponDetail struct {
	Code            string      `json:"code"`
	IsValid         bool        `json:"is_valid"`
	DiscountPercent int         `json:"discount_percent"`
	Info            coupon.Info `json:"info"`
}

// ListCoupons handles GET /coupons?view=featured|popular|all
func (h *CouponHandler) ListCoupons(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"coupons": h.service.List(r.URL.Query().Get("view")),
	})
}

// GetCoupon handles GET /coupons/{code}. Unknown codes answer 200 with the
// sentinel info; an unknown coupon is not an error.
func (h *CouponHandler) GetCoupon(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	c, info, ok := h.service.Info(code)
	writeJSON(w, http.StatusOK, couponDetail{
		Code:            code,
		IsValid:         ok,
		DiscountPercent: c.Percent,
		Info:            info,
	})
}

// ValidateCoupon handles POST /coupons/validate
func (h *CouponHandler) ValidateCoupon(w http.ResponseWriter, r *http.Request) {
	var req models.QuoteRequest
	if err := decode(r, &req); err != nil {
		badRequest(w, "invalid_body")
		return
	}
	if req.OrderTotal.IsNegative() {
		badRequest(w, "order_total must not be negative")
		return
	}
	writeJSON(w, http.StatusOK, h.service.Quote(req))
}
