package models

import "github.com/shopspring/decimal"

type QuoteRequest struct {
	CouponCode string          `json:"coupon_code"`
	OrderTotal decimal.Decimal `json:"order_total"`
}

type QuoteResponse struct {
	IsValid         bool            `json:"is_valid"`
	CouponCode      string          `json:"coupon_code"`
	DiscountPercent int             `json:"discount_percent"`
	Discount        decimal.Decimal `json:"discount"`
	FinalAmount     decimal.Decimal `json:"final_amount"`
	Message         string          `json:"message"`
}
