package service

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Cheertaboi/storefront-checkout/internal/coupon"
	"github.com/Cheertaboi/storefront-checkout/internal/models"
)

type CouponService struct {
	resolver *coupon.Resolver
}

func NewCouponService(r *coupon.Resolver) *CouponService {
	return &CouponService{resolver: r}
}

// Quote prices code against an order total without touching any session.
func (s *CouponService) Quote(req models.QuoteRequest) models.QuoteResponse {
	code := req.CouponCode
	if strings.TrimSpace(code) == "" {
		return models.QuoteResponse{
			Discount:    decimal.Zero,
			FinalAmount: req.OrderTotal,
			Message:     "Please enter a coupon code",
		}
	}
	if !s.resolver.IsValid(code) {
		return models.QuoteResponse{
			CouponCode:  code,
			Discount:    decimal.Zero,
			FinalAmount: req.OrderTotal,
			Message:     "Invalid coupon code. Please check and try again.",
		}
	}
	discount := s.resolver.DiscountAmount(req.OrderTotal, code)
	return models.QuoteResponse{
		IsValid:         true,
		CouponCode:      coupon.Normalize(code),
		DiscountPercent: s.resolver.Percent(code),
		Discount:        discount,
		FinalAmount:     req.OrderTotal.Sub(discount),
		Message:         "coupon_applied",
	}
}

func (s *CouponService) Info(code string) (models.Coupon, coupon.Info, bool) {
	c, ok := s.resolver.Lookup(code)
	return c, s.resolver.Info(code), ok
}

func (s *CouponService) List(view string) []models.Coupon {
	switch view {
	case "popular":
		return s.resolver.Popular()
	case "all":
		return s.resolver.All()
	default:
		return s.resolver.Featured()
	}
}
