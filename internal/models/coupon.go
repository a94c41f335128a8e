package models

type Coupon struct {
	Code        string `json:"code"`
	Percent     int    `json:"discount_percent"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
}
